// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler classifies interactive input lines and executes them.
//
// A line is either a local built-in (exit aliases, version, /help, /show,
// /set, /connect, /reconnect) or a remote command forwarded verbatim to
// hostd over the open connection. Built-ins never touch the network except
// /connect and /reconnect, which reopen the connection.
package handler

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/vim-cmd/internal/adapter"
	"github.com/MKhiriev/vim-cmd/internal/app"
	"github.com/MKhiriev/vim-cmd/internal/logger"
	"github.com/MKhiriev/vim-cmd/internal/tui"
	"github.com/MKhiriev/vim-cmd/models"
)

// Action tells the session loop what to do after a line was dispatched.
type Action int

const (
	ActionContinue Action = iota
	ActionExit
)

// Dispatcher executes interactive input lines against a session target.
type Dispatcher struct {
	conns   ConnectionManager
	store   TargetStore
	console *tui.Console
	build   models.AppBuildInfo
	log     *logger.Logger
}

func NewDispatcher(conns ConnectionManager, store TargetStore, console *tui.Console, build models.AppBuildInfo, log *logger.Logger) *Dispatcher {
	return &Dispatcher{
		conns:   conns,
		store:   store,
		console: console,
		build:   build,
		log:     log,
	}
}

// Dispatch handles one input line. Built-ins are matched case-insensitively
// in fixed priority order; anything unmatched is sent to hostd. target is the
// session target and is updated in place by /set and /connect.
func (d *Dispatcher) Dispatch(ctx context.Context, line string, target *models.Target) Action {
	line = strings.TrimSpace(line)
	if line == "" {
		return ActionContinue
	}

	fields := strings.Fields(line)
	word := strings.ToLower(fields[0])
	whole := strings.ToLower(line)

	switch {
	case isExit(whole):
		return ActionExit
	case whole == "version" || whole == "/version":
		d.console.Println(d.build.String())
	case whole == "/help":
		d.Help()
	case whole == "/show":
		d.Show(*target)
	case word == "/set":
		d.set(fields[1:], target)
	case word == "/connect":
		d.connect(ctx, fields[1:], target)
	case word == "/reconnect":
		d.reconnect(ctx, *target)
	default:
		d.remote(ctx, line)
	}

	return ActionContinue
}

func isExit(s string) bool {
	switch s {
	case "quit", "exit", "/quit", "/exit":
		return true
	default:
		return false
	}
}

// remote forwards line to hostd. A closed peer or failed round trip leaves
// the connection closed; nothing reconnects automatically.
func (d *Dispatcher) remote(ctx context.Context, line string) {
	if !d.conns.IsConnected() {
		d.console.Warn(app.MsgNotConnected)
		return
	}

	resp, err := d.conns.RoundTrip(ctx, line)
	switch {
	case err == nil:
		d.console.Response(resp)
	case errors.Is(err, adapter.ErrRemoteClosed):
		d.log.Debug().Msg("remote closed the connection")
		d.console.Info(app.MsgRemoteClosed)
	case errors.Is(err, adapter.ErrNotConnected):
		d.console.Warn(app.MsgNotConnected)
	default:
		d.log.Debug().Err(err).Msg("round trip failed")
		d.console.Error(app.MsgSendFailed, err)
	}
}
