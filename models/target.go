// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// Transport is the stream mechanism used to reach hostd.
type Transport int

const (
	// TransportUnset means no usable transport was configured. Connecting
	// with an unset transport always fails.
	TransportUnset Transport = iota
	// TransportLocalSocket is a local-domain (unix) stream socket.
	TransportLocalSocket
	// TransportTCP is a TCP stream to host:port.
	TransportTCP
)

// PortInvalid marks a port that was present in a config file but could not
// be parsed. It survives layering so the Target is rejected at connect time.
const PortInvalid = -1

// String returns the config-file spelling of the transport.
func (t Transport) String() string {
	switch t {
	case TransportLocalSocket:
		return "unix"
	case TransportTCP:
		return "tcp"
	default:
		return "unset"
	}
}

// ParseTransport parses a case-insensitive transport name ("tcp" or "unix").
func ParseTransport(s string) (Transport, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tcp":
		return TransportTCP, true
	case "unix":
		return TransportLocalSocket, true
	default:
		return TransportUnset, false
	}
}

// Target is the resolved connection descriptor.
//
// Only the address fields matching Transport are meaningful: LocalPath for
// TransportLocalSocket, Host and Port for TransportTCP. ConfigFile is the
// path used to load and persist the configuration and is independent of the
// transport.
//
// Zero values mean "not specified", which lets partial Targets be layered
// on top of each other.
type Target struct {
	Transport  Transport
	LocalPath  string
	Host       string
	Port       int
	ConfigFile string
}

// Address returns a human-readable address for the active transport.
func (t Target) Address() string {
	switch t.Transport {
	case TransportLocalSocket:
		return "unix:" + t.LocalPath
	case TransportTCP:
		return fmt.Sprintf("tcp:%s:%d", t.Host, t.Port)
	default:
		return "unset"
	}
}

// Capabilities describes which transports the running platform supports.
type Capabilities struct {
	LocalSocket bool
}
