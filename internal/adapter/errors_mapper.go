package adapter

import (
	"errors"
	"io/fs"
	"net"
)

// mapDialError classifies a failed dial. A missing socket file or an
// unresolvable host is ErrNotFound; anything else is ErrConnectRefused.
func mapDialError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return ErrNotFound
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return ErrNotFound
	}

	return ErrConnectRefused
}
