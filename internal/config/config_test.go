package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/vim-cmd/internal/logger"
	"github.com/MKhiriev/vim-cmd/internal/validators"
	"github.com/MKhiriev/vim-cmd/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"VIMCMD_CONFIG", "VIMCMD_MODE", "VIMCMD_SOCKET", "VIMCMD_HOST", "VIMCMD_PORT"} {
		t.Setenv(name, "")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func captureLogger() (*logger.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return logger.NewClientLogger("test", &buf, false), &buf
}

// ── Resolve ───────────────────────────────────────────────────────────────────

func TestResolve_DefaultsWithoutConfigFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "missing")

	target, err := Resolve(unixCaps, Overrides{ConfigPath: path}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, models.Target{
		Transport:  models.TransportLocalSocket,
		LocalPath:  "/tmp/hostd.sock",
		ConfigFile: path,
	}, target)

	target, err = Resolve(tcpCaps, Overrides{ConfigPath: path}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, models.Target{
		Transport:  models.TransportTCP,
		Host:       "127.0.0.1",
		Port:       9000,
		ConfigFile: path,
	}, target)
}

func TestResolve_DefaultConfigPathFromXDG(t *testing.T) {
	clearEnv(t)
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	dir := filepath.Join(xdg, "vim-cmd")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config"), []byte("mode=tcp\nhost=xdg.local\nport=1234\n"), 0o600))

	target, err := Resolve(unixCaps, Overrides{}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config"), target.ConfigFile)
	assert.Equal(t, models.TransportTCP, target.Transport)
	assert.Equal(t, "xdg.local", target.Host)
	assert.Equal(t, 1234, target.Port)
}

func TestResolve_FileOverridesDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfigFile(t, "mode=tcp\nhost=files.example\nport=7001\n")

	target, err := Resolve(unixCaps, Overrides{ConfigPath: path}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, models.TransportTCP, target.Transport)
	assert.Equal(t, "files.example", target.Host)
	assert.Equal(t, 7001, target.Port)
	assert.Equal(t, "/tmp/hostd.sock", target.LocalPath, "fields absent from the file keep their defaults")
}

func TestResolve_UnknownKeysAndMalformedLinesAreSkipped(t *testing.T) {
	clearEnv(t)
	log, buf := captureLogger()
	path := writeConfigFile(t, "# comment\n\ncolour=blue\njust text\nmode=bogus\nsocket=/run/hostd.sock\n")

	target, err := Resolve(unixCaps, Overrides{ConfigPath: path}, log)
	require.NoError(t, err)
	assert.Equal(t, models.Target{
		Transport:  models.TransportLocalSocket,
		LocalPath:  "/run/hostd.sock",
		ConfigFile: path,
	}, target)
	assert.Contains(t, buf.String(), "colour")
	assert.Contains(t, buf.String(), "skipping config line")
}

func TestResolve_CorruptPortProducesUnusableTarget(t *testing.T) {
	clearEnv(t)
	path := writeConfigFile(t, "mode=tcp\nhost=localhost\nport=eighty\n")

	target, err := Resolve(tcpCaps, Overrides{ConfigPath: path}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, models.PortInvalid, target.Port)

	err = validators.NewTargetValidator().Validate(t.Context(), target)
	assert.ErrorIs(t, err, validators.ErrInvalidPort)
}

func TestResolve_UnixModeRejectedWithoutLocalSockets(t *testing.T) {
	clearEnv(t)
	path := writeConfigFile(t, "mode=unix\nsocket=/tmp/x.sock\n")

	target, err := Resolve(tcpCaps, Overrides{ConfigPath: path}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, models.TransportTCP, target.Transport)
	assert.Empty(t, target.LocalPath)
}

func TestResolve_TCPOverrideWinsOverFile(t *testing.T) {
	clearEnv(t)
	path := writeConfigFile(t, "mode=unix\nsocket=/tmp/file.sock\nhost=file-host\nport=1\n")

	for _, addr := range []string{"127.0.0.1:9000", "hostd.internal:65535", "[::1]:22"} {
		t.Run(addr, func(t *testing.T) {
			target, err := Resolve(unixCaps, Overrides{ConfigPath: path, TCPAddress: addr}, logger.Nop())
			require.NoError(t, err)

			host, port, err := ParseTCPAddress(addr)
			require.NoError(t, err)
			assert.Equal(t, models.TransportTCP, target.Transport)
			assert.Equal(t, host, target.Host)
			assert.Equal(t, port, target.Port)
		})
	}
}

func TestResolve_SocketOverride(t *testing.T) {
	clearEnv(t)
	path := writeConfigFile(t, "mode=tcp\nhost=file-host\nport=1\n")

	target, err := Resolve(unixCaps, Overrides{ConfigPath: path, SocketPath: "/run/cli.sock"}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, models.TransportLocalSocket, target.Transport)
	assert.Equal(t, "/run/cli.sock", target.LocalPath)

	_, err = Resolve(tcpCaps, Overrides{ConfigPath: path, SocketPath: "/run/cli.sock"}, logger.Nop())
	assert.ErrorIs(t, err, ErrLocalSocketUnsupported)
}

func TestResolve_BothOverridesTCPWins(t *testing.T) {
	clearEnv(t)

	target, err := Resolve(unixCaps, Overrides{
		ConfigPath: filepath.Join(t.TempDir(), "config"),
		SocketPath: "/run/cli.sock",
		TCPAddress: "localhost:9100",
	}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, models.TransportTCP, target.Transport)
	assert.Equal(t, "/run/cli.sock", target.LocalPath)
	assert.Equal(t, 9100, target.Port)
}

func TestResolve_MalformedTCPOverride(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config")

	for _, addr := range []string{"localhost", "localhost:", ":9000", "a:b:c"} {
		t.Run(addr, func(t *testing.T) {
			_, err := Resolve(unixCaps, Overrides{ConfigPath: path, TCPAddress: addr}, logger.Nop())
			assert.ErrorIs(t, err, ErrMalformedTarget)
		})
	}

	_, err := Resolve(unixCaps, Overrides{ConfigPath: path, TCPAddress: "localhost:99999"}, logger.Nop())
	assert.ErrorIs(t, err, validators.ErrInvalidPort)
}

func TestResolve_EnvLayerBetweenFileAndCLI(t *testing.T) {
	clearEnv(t)
	path := writeConfigFile(t, "mode=tcp\nhost=file-host\nport=1000\n")
	t.Setenv("VIMCMD_CONFIG", path)
	t.Setenv("VIMCMD_PORT", "2000")

	target, err := Resolve(unixCaps, Overrides{}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, path, target.ConfigFile)
	assert.Equal(t, "file-host", target.Host)
	assert.Equal(t, 2000, target.Port)

	target, err = Resolve(unixCaps, Overrides{TCPAddress: "cli-host:3000"}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "cli-host", target.Host)
	assert.Equal(t, 3000, target.Port)
}

func TestResolve_InvalidEnvValueIsIgnored(t *testing.T) {
	clearEnv(t)
	log, buf := captureLogger()
	t.Setenv("VIMCMD_PORT", "99999")
	t.Setenv("VIMCMD_MODE", "tcp")

	target, err := Resolve(tcpCaps, Overrides{ConfigPath: filepath.Join(t.TempDir(), "config")}, log)
	require.NoError(t, err)
	assert.Equal(t, 9000, target.Port)
	assert.Contains(t, buf.String(), "ignoring environment setting")
}

func TestResolve_ConfigPathFlagBeatsEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("VIMCMD_CONFIG", "/nonexistent/env/config")
	path := filepath.Join(t.TempDir(), "config")

	target, err := Resolve(unixCaps, Overrides{ConfigPath: path}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, path, target.ConfigFile)
}

func TestResolve_TruncatesLongValuesWithWarning(t *testing.T) {
	clearEnv(t)
	log, buf := captureLogger()
	longHost := strings.Repeat("h", MaxHostLen+1)
	path := writeConfigFile(t, "mode=tcp\nhost="+longHost+"\nport=9000\n")

	target, err := Resolve(tcpCaps, Overrides{ConfigPath: path}, log)
	require.NoError(t, err)
	assert.Len(t, target.Host, MaxHostLen)
	assert.Contains(t, buf.String(), "value truncated")

	buf.Reset()
	longPath := "/" + strings.Repeat("p", MaxConfigPathLen+5)
	target, err = Resolve(tcpCaps, Overrides{ConfigPath: longPath}, log)
	require.NoError(t, err)
	assert.Len(t, target.ConfigFile, MaxConfigPathLen)
	assert.Contains(t, buf.String(), "config path truncated")
}
