package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidPort      = errors.New("invalid port")
	ErrInvalidMode      = errors.New("invalid mode")
	ErrEmptyHost        = errors.New("host is required")
	ErrEmptySocketPath  = errors.New("socket path is required")
	ErrTransportMissing = errors.New("no transport selected")
)
