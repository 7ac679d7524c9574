// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter owns the single stream connection to hostd.
//
// The primary type is [Manager], which opens a local-domain socket or a TCP
// connection for a [models.Target], performs one-line request/response round
// trips over it, and closes it. At most one connection is open at a time.
//
// Error values defined in errors.go are mapped from dial and I/O failures by
// mapDialError so that callers can use [errors.Is] regardless of transport
// (e.g. [ErrNotFound] for a missing socket file or unknown host).
package adapter

import (
	"context"
	"net"
)

// Dialer opens a stream connection. *net.Dialer satisfies it.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// Resolver turns a host name into candidate addresses, in the order they
// should be tried. *net.Resolver satisfies it.
type Resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}
