package config

import "errors"

// Errors returned while resolving or mutating a [models.Target]. Value-level
// validation errors (invalid port, invalid mode, empty host) come from the
// validators package and are wrapped, so both can be matched with errors.Is.
var (
	// ErrUnknownKey indicates a key outside the recognised set
	// (mode, socket, host, port).
	ErrUnknownKey = errors.New("unknown key")
	// ErrMalformedToken indicates a token that is not of the form key=value.
	ErrMalformedToken = errors.New("expected key=value")
	// ErrMalformedTarget indicates a -T argument that is not host:port.
	ErrMalformedTarget = errors.New("malformed target, expected host:port")
	// ErrSocketNotSettable indicates an attempt to change the socket path
	// from the interactive session; only -S and the config file may do so.
	ErrSocketNotSettable = errors.New("socket path cannot be changed from the session, use -S or edit the config file")
	// ErrLocalSocketUnsupported indicates a local-socket setting on a
	// platform without local-socket support.
	ErrLocalSocketUnsupported = errors.New("unix sockets are not supported on this platform")
	// ErrUsage indicates malformed command-line usage.
	ErrUsage = errors.New("invalid usage")
)
