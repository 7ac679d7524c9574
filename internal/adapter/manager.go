package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/vim-cmd/internal/logger"
	"github.com/MKhiriev/vim-cmd/internal/validators"
	"github.com/MKhiriev/vim-cmd/models"
	"github.com/rs/zerolog"
)

// DefaultReadBufferSize is the size of the single read that makes up one
// response.
const DefaultReadBufferSize = 8191

// Option configures a [Manager].
type Option func(*Manager)

// WithDialer replaces the net.Dialer used to open connections.
func WithDialer(d Dialer) Option {
	return func(m *Manager) { m.dialer = d }
}

// WithResolver replaces net.DefaultResolver for TCP host lookups.
func WithResolver(r Resolver) Option {
	return func(m *Manager) { m.resolver = r }
}

// WithCapabilities overrides the platform capabilities.
func WithCapabilities(caps models.Capabilities) Option {
	return func(m *Manager) { m.caps = caps }
}

// WithReadBufferSize sets the response read size. Non-positive sizes are
// ignored.
func WithReadBufferSize(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.readSize = n
		}
	}
}

// DefaultCapabilities reports the transports available on the running
// platform.
func DefaultCapabilities() models.Capabilities {
	return models.Capabilities{LocalSocket: runtime.GOOS != "windows"}
}

// Manager owns at most one open connection to hostd.
type Manager struct {
	dialer    Dialer
	resolver  Resolver
	validator validators.Validator
	caps      models.Capabilities
	readSize  int
	log       *logger.Logger

	mu      sync.Mutex
	conn    net.Conn
	addr    string
	connLog *logger.Logger
}

// NewManager returns a disconnected Manager.
func NewManager(log *logger.Logger, opts ...Option) *Manager {
	m := &Manager{
		dialer:    &net.Dialer{},
		resolver:  net.DefaultResolver,
		validator: validators.NewTargetValidator(),
		caps:      DefaultCapabilities(),
		readSize:  DefaultReadBufferSize,
		log:       log,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetLogger replaces the logger used for connection lifecycle events.
func (m *Manager) SetLogger(log *logger.Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.log = log
}

// Capabilities reports which transports Connect can open.
func (m *Manager) Capabilities() models.Capabilities {
	return m.caps
}

// IsConnected reports whether a connection is open.
func (m *Manager) IsConnected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.conn != nil
}

// Connect opens a connection for t. It fails with ErrAlreadyConnected if one
// is already open; the caller must Close first. There is no retry.
func (m *Manager) Connect(ctx context.Context, t models.Target) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.conn != nil {
		return ErrAlreadyConnected
	}

	switch t.Transport {
	case models.TransportLocalSocket:
		if !m.caps.LocalSocket {
			return fmt.Errorf("%w: unix sockets are not supported on this platform", ErrNoValidMode)
		}
	case models.TransportTCP:
	default:
		return ErrNoValidMode
	}

	if err := m.validator.Validate(ctx, t); err != nil {
		return fmt.Errorf("%w: %w", ErrIncompleteTarget, err)
	}

	m.log.Debug().Str("target", t.Address()).Msg("connecting")

	var (
		conn net.Conn
		err  error
	)
	if t.Transport == models.TransportLocalSocket {
		conn, err = m.dialLocal(ctx, t.LocalPath)
	} else {
		conn, err = m.dialTCP(ctx, t.Host, t.Port)
	}
	if err != nil {
		m.log.Debug().Err(err).Str("target", t.Address()).Msg("connect failed")
		return err
	}

	m.conn = conn
	m.addr = t.Address()
	m.connLog = m.log.GetChildLogger()
	m.connLog.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("target", m.addr).Str("transport", t.Transport.String())
	})
	m.connLog.Debug().Msg("connected")

	return nil
}

func (m *Manager) dialLocal(ctx context.Context, path string) (net.Conn, error) {
	if limit := maxLocalPathLen(); len(path) > limit {
		return nil, fmt.Errorf("%w: %d bytes, limit is %d", ErrPathTooLong, len(path), limit)
	}

	conn, err := m.dialer.DialContext(ctx, "unix", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", mapDialError(err), path, err)
	}
	return conn, nil
}

// dialTCP tries every resolved address in order and fails only after all of
// them have been refused.
func (m *Manager) dialTCP(ctx context.Context, host string, port int) (net.Conn, error) {
	candidates := []string{host}
	if net.ParseIP(host) == nil {
		addrs, err := m.resolver.LookupHost(ctx, host)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", mapDialError(err), host, err)
		}
		if len(addrs) == 0 {
			return nil, fmt.Errorf("%w: %s has no addresses", ErrNotFound, host)
		}
		candidates = addrs
	}

	var errs []error
	for _, candidate := range candidates {
		address := net.JoinHostPort(candidate, strconv.Itoa(port))
		conn, err := m.dialer.DialContext(ctx, "tcp", address)
		if err == nil {
			return conn, nil
		}
		m.log.Debug().Err(err).Str("address", address).Msg("candidate failed")
		errs = append(errs, err)
	}

	return nil, fmt.Errorf("%w: %s: %w", ErrConnectRefused, net.JoinHostPort(host, strconv.Itoa(port)), errors.Join(errs...))
}

// Close closes the open connection, if any. Calling it again is a no-op.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closeLocked()
}

func (m *Manager) closeLocked() error {
	if m.conn == nil {
		return nil
	}

	err := m.conn.Close()
	m.connLog.Debug().Msg("connection closed")
	m.conn = nil
	m.addr = ""
	m.connLog = nil

	return err
}

// RoundTrip sends line, newline-terminated, and returns whatever a single read
// yields. Responses larger than the read buffer or split across packets are
// returned only up to the first read.
//
// A zero-length read means the peer closed the stream: the connection is
// closed and ErrRemoteClosed returned. A write failure, or a read failure
// with no data, closes the connection and returns ErrIO.
func (m *Manager) RoundTrip(ctx context.Context, line string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.conn == nil {
		return nil, ErrNotConnected
	}

	if deadline, ok := ctx.Deadline(); ok {
		_ = m.conn.SetDeadline(deadline)
	}

	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}

	if _, err := io.WriteString(m.conn, line); err != nil {
		m.connLog.Debug().Err(err).Msg("send failed")
		_ = m.closeLocked()
		return nil, fmt.Errorf("%w: send: %w", ErrIO, err)
	}

	buf := make([]byte, m.readSize)
	n, err := m.conn.Read(buf)
	if n > 0 {
		m.connLog.Debug().Int("bytes", n).Msg("response read")
		return buf[:n], nil
	}

	if err == nil || errors.Is(err, io.EOF) {
		_ = m.closeLocked()
		return nil, ErrRemoteClosed
	}
	m.connLog.Debug().Err(err).Msg("receive failed")
	_ = m.closeLocked()
	return nil, fmt.Errorf("%w: receive: %w", ErrIO, err)
}

// maxLocalPathLen is the usable length of sockaddr_un.sun_path.
func maxLocalPathLen() int {
	switch runtime.GOOS {
	case "darwin", "ios", "freebsd", "openbsd", "netbsd", "dragonfly":
		return 103
	default:
		return 107
	}
}
