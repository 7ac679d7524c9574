package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/vim-cmd/internal/validators"
	"github.com/MKhiriev/vim-cmd/models"
)

// Recognised configuration keys.
const (
	KeyMode   = "mode"
	KeySocket = "socket"
	KeyHost   = "host"
	KeyPort   = "port"
)

// Source identifies where a key=value assignment comes from. The accepted
// key set and the strictness of port parsing depend on it.
type Source int

const (
	// SourceFile is a line of the config file. An unparsable port does not
	// leave the field untouched: it becomes models.PortInvalid, so the
	// resulting Target is rejected at connect time.
	SourceFile Source = iota
	// SourceCLI is the `set` subcommand or an environment variable.
	SourceCLI
	// SourceSession is the interactive /set built-in. It cannot change the
	// socket path.
	SourceSession
)

func (s Source) String() string {
	switch s {
	case SourceFile:
		return "config"
	case SourceCLI:
		return "cli"
	case SourceSession:
		return "session"
	default:
		return "unknown"
	}
}

// Assignment reports what ApplyKV wrote.
type Assignment struct {
	Key       string
	Truncated bool
	Limit     int
}

// ApplyKV validates one key=value pair and applies it to t.
//
// Except for the SourceFile port case, a failed assignment leaves t
// unchanged. Over-long values are truncated and reported through
// Assignment.Truncated rather than rejected.
func ApplyKV(t *models.Target, key, value string, src Source, caps models.Capabilities) (Assignment, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	value = strings.TrimSpace(value)
	a := Assignment{Key: key}

	switch key {
	case KeyMode:
		transport, err := validators.ValidateMode(value, caps)
		if err != nil {
			return a, err
		}
		t.Transport = transport

	case KeySocket:
		if src == SourceSession {
			return a, ErrSocketNotSettable
		}
		if !caps.LocalSocket {
			return a, ErrLocalSocketUnsupported
		}
		if value == "" {
			return a, validators.ErrEmptySocketPath
		}
		t.LocalPath, a.Truncated = bounded(value, MaxSocketPathLen)
		a.Limit = MaxSocketPathLen

	case KeyHost:
		if value == "" {
			return a, validators.ErrEmptyHost
		}
		t.Host, a.Truncated = bounded(value, MaxHostLen)
		a.Limit = MaxHostLen

	case KeyPort:
		port, err := validators.ValidatePort(value)
		if err != nil {
			if src == SourceFile {
				t.Port = models.PortInvalid
			}
			return a, err
		}
		t.Port = port

	default:
		return a, ErrUnknownKey
	}

	return a, nil
}

// TokenResult is the outcome of applying one key=value token.
type TokenResult struct {
	Token string
	Assignment
	Err error
}

// ApplyTokens applies whitespace-separated key=value tokens left to right.
// Each token is independent: a failing token does not stop the rest. The
// returned flag is true when at least one token was applied.
func ApplyTokens(t *models.Target, tokens []string, src Source, caps models.Capabilities) ([]TokenResult, bool) {
	results := make([]TokenResult, 0, len(tokens))
	changed := false

	for _, token := range tokens {
		key, value, ok := strings.Cut(token, "=")
		if !ok {
			results = append(results, TokenResult{
				Token: token,
				Err:   fmt.Errorf("%w near %q", ErrMalformedToken, token),
			})
			continue
		}

		a, err := ApplyKV(t, key, value, src, caps)
		if err != nil {
			err = fmt.Errorf("%s: %w", a.Key, err)
		} else {
			changed = true
		}
		results = append(results, TokenResult{Token: token, Assignment: a, Err: err})
	}

	return results, changed
}
