// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/vim-cmd/internal/adapter"
)

// connectHint suggests what the operator can do about a failed connect.
func connectHint(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, adapter.ErrNoValidMode):
		return "no usable mode; try /set mode=tcp or /connect"
	case errors.Is(err, adapter.ErrIncompleteTarget):
		return "target is incomplete; check it with /show"
	case errors.Is(err, adapter.ErrPathTooLong):
		return "socket path is longer than this platform allows"
	case errors.Is(err, adapter.ErrNotFound):
		return "socket or host does not exist"
	case errors.Is(err, adapter.ErrConnectRefused):
		return "hostd is not listening or is unreachable"
	default:
		return ""
	}
}
