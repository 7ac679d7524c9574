package validators

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/vim-cmd/models"
)

const (
	FieldTransport = "transport"
	FieldLocalPath = "socket"
	FieldHost      = "host"
	FieldPort      = "port"
)

const (
	minPort = 1
	maxPort = 65535
)

// TargetValidator checks that a [models.Target] carries everything needed to
// open a connection with its transport.
type TargetValidator struct {
}

func NewTargetValidator() Validator {
	return &TargetValidator{}
}

// Validate checks a models.Target (or *models.Target). Without fields it
// validates the fields relevant to the target's transport.
func (v *TargetValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Target:
		return v.validateTarget(ctx, value, fields...)
	case *models.Target:
		return v.validateTarget(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *TargetValidator) validateTarget(_ context.Context, t models.Target, fields ...string) error {
	if len(fields) == 0 {
		switch t.Transport {
		case models.TransportLocalSocket:
			fields = []string{FieldLocalPath}
		case models.TransportTCP:
			fields = []string{FieldHost, FieldPort}
		default:
			fields = []string{FieldTransport}
		}
	}

	for _, field := range fields {
		switch field {
		case FieldTransport:
			if t.Transport != models.TransportLocalSocket && t.Transport != models.TransportTCP {
				return ErrTransportMissing
			}
		case FieldLocalPath:
			if t.LocalPath == "" {
				return ErrEmptySocketPath
			}
		case FieldHost:
			if strings.TrimSpace(t.Host) == "" {
				return ErrEmptyHost
			}
		case FieldPort:
			if err := ValidatePortNumber(t.Port); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

// ValidatePort parses a decimal port and checks it is within 1-65535.
func ValidatePort(raw string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidPort, raw)
	}
	if err := ValidatePortNumber(port); err != nil {
		return 0, err
	}

	return port, nil
}

// ValidatePortNumber checks that port is within 1-65535.
func ValidatePortNumber(port int) error {
	if port < minPort || port > maxPort {
		return fmt.Errorf("%w: %d is outside %d-%d", ErrInvalidPort, port, minPort, maxPort)
	}
	return nil
}

// ValidateMode parses a transport name and rejects transports the platform
// cannot open.
func ValidateMode(raw string, caps models.Capabilities) (models.Transport, error) {
	transport, ok := models.ParseTransport(raw)
	if !ok {
		return models.TransportUnset, fmt.Errorf("%w: %q (want tcp or unix)", ErrInvalidMode, raw)
	}
	if transport == models.TransportLocalSocket && !caps.LocalSocket {
		return models.TransportUnset, fmt.Errorf("%w: unix sockets are not supported on this platform", ErrInvalidMode)
	}

	return transport, nil
}
