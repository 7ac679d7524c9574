package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/vim-cmd/internal/logger"
	"github.com/MKhiriev/vim-cmd/internal/store"
	"github.com/MKhiriev/vim-cmd/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntries(t *testing.T) {
	tests := []struct {
		name   string
		target models.Target
		want   []store.KV
	}{
		{
			name:   "unix writes only the socket",
			target: models.Target{Transport: models.TransportLocalSocket, LocalPath: "/tmp/hostd.sock", Host: "ignored", Port: 1},
			want:   []store.KV{{Key: "mode", Value: "unix"}, {Key: "socket", Value: "/tmp/hostd.sock"}},
		},
		{
			name:   "tcp writes host and port",
			target: models.Target{Transport: models.TransportTCP, Host: "10.1.1.1", Port: 8080, LocalPath: "/ignored"},
			want:   []store.KV{{Key: "mode", Value: "tcp"}, {Key: "host", Value: "10.1.1.1"}, {Key: "port", Value: "8080"}},
		},
		{
			name:   "tcp fills loopback defaults",
			target: models.Target{Transport: models.TransportTCP, Port: models.PortInvalid},
			want:   []store.KV{{Key: "mode", Value: "tcp"}, {Key: "host", Value: "127.0.0.1"}, {Key: "port", Value: "9000"}},
		},
		{
			name:   "unset writes nothing",
			target: models.Target{},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Entries(tt.target))
		})
	}
}

func TestSave_ThenResolveRoundTrips(t *testing.T) {
	clearEnv(t)

	targets := []models.Target{
		{Transport: models.TransportTCP, Host: "hostd.example", Port: 4242},
		{Transport: models.TransportLocalSocket, LocalPath: "/var/run/hostd/hostd.sock"},
	}

	for _, want := range targets {
		t.Run(want.Address(), func(t *testing.T) {
			want.ConfigFile = filepath.Join(t.TempDir(), "nested", "vim-cmd", "config")
			require.NoError(t, NewFileTargetStore().Save(want))

			got, err := Resolve(unixCaps, Overrides{ConfigPath: want.ConfigFile}, logger.Nop())
			require.NoError(t, err)
			assert.Equal(t, want.Transport, got.Transport)
			assert.Equal(t, want.ConfigFile, got.ConfigFile)
			if want.Transport == models.TransportTCP {
				assert.Equal(t, want.Host, got.Host)
				assert.Equal(t, want.Port, got.Port)
			} else {
				assert.Equal(t, want.LocalPath, got.LocalPath)
			}
		})
	}
}

func TestSave_EmptyConfigPathFails(t *testing.T) {
	err := Save(models.Target{Transport: models.TransportTCP, Host: "h", Port: 1})
	assert.ErrorIs(t, err, store.ErrEmptyPath)
}

func TestSave_OverwritesPreviousFile(t *testing.T) {
	path := writeConfigFile(t, "mode=unix\nsocket=/tmp/a.sock\n# note\n")

	require.NoError(t, Save(models.Target{Transport: models.TransportTCP, Host: "b", Port: 2, ConfigFile: path}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "mode=tcp\nhost=b\nport=2\n", string(data))
}
