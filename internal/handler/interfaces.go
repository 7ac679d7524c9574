// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"context"

	"github.com/MKhiriev/vim-cmd/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/handler_mock.go -package=mock

// ConnectionManager owns the connection the dispatcher forwards remote
// commands over. *adapter.Manager implements it.
type ConnectionManager interface {
	// Capabilities reports which transports Connect can open.
	Capabilities() models.Capabilities

	// Connect opens a connection for the target. It fails if one is already
	// open.
	Connect(ctx context.Context, t models.Target) error

	// Close closes the open connection. Closing twice is a no-op.
	Close() error

	// IsConnected reports whether a connection is open.
	IsConnected() bool

	// RoundTrip sends one line and returns the response to it. On
	// remote closure or I/O failure the connection is left closed.
	RoundTrip(ctx context.Context, line string) ([]byte, error)
}

// TargetStore persists a target to its config file.
type TargetStore interface {
	Save(t models.Target) error
}
