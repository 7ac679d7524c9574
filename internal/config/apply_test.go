package config

import (
	"strings"
	"testing"

	"github.com/MKhiriev/vim-cmd/internal/validators"
	"github.com/MKhiriev/vim-cmd/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	unixCaps = models.Capabilities{LocalSocket: true}
	tcpCaps  = models.Capabilities{}
)

func TestApplyKV(t *testing.T) {
	start := models.Target{Transport: models.TransportTCP, Host: "old", Port: 7000, LocalPath: "/tmp/old.sock"}

	tests := []struct {
		name    string
		key     string
		value   string
		src     Source
		caps    models.Capabilities
		want    models.Target
		wantErr error
	}{
		{
			name:  "mode is case-insensitive",
			key:   "MODE",
			value: "Unix",
			src:   SourceSession,
			caps:  unixCaps,
			want:  models.Target{Transport: models.TransportLocalSocket, Host: "old", Port: 7000, LocalPath: "/tmp/old.sock"},
		},
		{
			name:    "unix mode rejected without local sockets",
			key:     "mode",
			value:   "unix",
			src:     SourceFile,
			caps:    tcpCaps,
			want:    start,
			wantErr: validators.ErrInvalidMode,
		},
		{
			name:    "unknown mode",
			key:     "mode",
			value:   "udp",
			src:     SourceCLI,
			caps:    unixCaps,
			want:    start,
			wantErr: validators.ErrInvalidMode,
		},
		{
			name:  "host",
			key:   "host",
			value: " example.org ",
			src:   SourceSession,
			caps:  unixCaps,
			want:  models.Target{Transport: models.TransportTCP, Host: "example.org", Port: 7000, LocalPath: "/tmp/old.sock"},
		},
		{
			name:    "empty host",
			key:     "host",
			value:   "",
			src:     SourceSession,
			caps:    unixCaps,
			want:    start,
			wantErr: validators.ErrEmptyHost,
		},
		{
			name:  "valid port",
			key:   "port",
			value: "8080",
			src:   SourceSession,
			caps:  unixCaps,
			want:  models.Target{Transport: models.TransportTCP, Host: "old", Port: 8080, LocalPath: "/tmp/old.sock"},
		},
		{
			name:    "out of range port from session leaves port unchanged",
			key:     "port",
			value:   "99999",
			src:     SourceSession,
			caps:    unixCaps,
			want:    start,
			wantErr: validators.ErrInvalidPort,
		},
		{
			name:    "non-numeric port from cli leaves port unchanged",
			key:     "port",
			value:   "http",
			src:     SourceCLI,
			caps:    unixCaps,
			want:    start,
			wantErr: validators.ErrInvalidPort,
		},
		{
			name:    "bad port from config file marks port invalid",
			key:     "port",
			value:   "http",
			src:     SourceFile,
			caps:    unixCaps,
			want:    models.Target{Transport: models.TransportTCP, Host: "old", Port: models.PortInvalid, LocalPath: "/tmp/old.sock"},
			wantErr: validators.ErrInvalidPort,
		},
		{
			name:    "socket rejected from session",
			key:     "socket",
			value:   "/tmp/new.sock",
			src:     SourceSession,
			caps:    unixCaps,
			want:    start,
			wantErr: ErrSocketNotSettable,
		},
		{
			name:  "socket from cli",
			key:   "socket",
			value: "/tmp/new.sock",
			src:   SourceCLI,
			caps:  unixCaps,
			want:  models.Target{Transport: models.TransportTCP, Host: "old", Port: 7000, LocalPath: "/tmp/new.sock"},
		},
		{
			name:    "socket without local sockets",
			key:     "socket",
			value:   "/tmp/new.sock",
			src:     SourceFile,
			caps:    tcpCaps,
			want:    start,
			wantErr: ErrLocalSocketUnsupported,
		},
		{
			name:    "unknown key",
			key:     "colour",
			value:   "blue",
			src:     SourceSession,
			caps:    unixCaps,
			want:    start,
			wantErr: ErrUnknownKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := start
			_, err := ApplyKV(&target, tt.key, tt.value, tt.src, tt.caps)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, target)
		})
	}
}

func TestApplyKV_TruncatesLongValues(t *testing.T) {
	var target models.Target

	a, err := ApplyKV(&target, "host", strings.Repeat("h", MaxHostLen+10), SourceSession, unixCaps)
	require.NoError(t, err)
	assert.True(t, a.Truncated)
	assert.Equal(t, MaxHostLen, a.Limit)
	assert.Len(t, target.Host, MaxHostLen)

	a, err = ApplyKV(&target, "socket", "/"+strings.Repeat("s", MaxSocketPathLen), SourceCLI, unixCaps)
	require.NoError(t, err)
	assert.True(t, a.Truncated)
	assert.Len(t, target.LocalPath, MaxSocketPathLen)

	a, err = ApplyKV(&target, "host", "short", SourceSession, unixCaps)
	require.NoError(t, err)
	assert.False(t, a.Truncated)
}

func TestApplyTokens_EachTokenIndependent(t *testing.T) {
	target := models.Target{Transport: models.TransportLocalSocket, LocalPath: "/tmp/hostd.sock", Port: 9000}

	results, changed := ApplyTokens(&target, []string{"port=99999", "garbage", "mode=tcp", "host=10.0.0.1", "socket=/x"}, SourceSession, unixCaps)

	assert.True(t, changed)
	require.Len(t, results, 5)
	assert.ErrorIs(t, results[0].Err, validators.ErrInvalidPort)
	assert.ErrorIs(t, results[1].Err, ErrMalformedToken)
	assert.NoError(t, results[2].Err)
	assert.NoError(t, results[3].Err)
	assert.ErrorIs(t, results[4].Err, ErrSocketNotSettable)
	assert.Contains(t, results[4].Err.Error(), "socket:")

	assert.Equal(t, models.Target{
		Transport: models.TransportTCP,
		LocalPath: "/tmp/hostd.sock",
		Host:      "10.0.0.1",
		Port:      9000,
	}, target)
}

func TestApplyTokens_NothingApplied(t *testing.T) {
	var target models.Target

	results, changed := ApplyTokens(&target, []string{"port=0", "nope=1"}, SourceSession, unixCaps)

	assert.False(t, changed)
	assert.Len(t, results, 2)
	assert.Equal(t, models.Target{}, target)
}

func TestBounded_DoesNotSplitRunes(t *testing.T) {
	got, cut := bounded("abé", 3)
	assert.True(t, cut)
	assert.Equal(t, "ab", got)

	got, cut = bounded("abc", 3)
	assert.False(t, cut)
	assert.Equal(t, "abc", got)
}
