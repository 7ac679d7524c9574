// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains operator-facing message strings shared by the
// vim-cmd dispatcher and session loop.
//
// Keeping them in one place keeps the wording of notices consistent between
// one-shot and interactive mode, and lets tests match on them.
package app

const (
	// MsgBanner is printed when the interactive shell starts; the argument
	// is the config file path.
	MsgBanner = "vim-cmd shell. Type /help. Using config: %s"

	// MsgPrompt is written before each interactive read on a terminal.
	MsgPrompt = "vim-cmd> "

	// MsgNotConnected is printed when a remote command is entered without an
	// open connection.
	MsgNotConnected = "not connected; try /connect or /set"

	// MsgRemoteClosed is printed after the peer closed its side.
	MsgRemoteClosed = "server closed connection; use /connect or /reconnect"

	MsgConnectUsage     = "usage: /connect tcp <host> [port] | /connect unix <socket>"
	MsgConnectUsageTCP  = "usage: /connect tcp <host> [port]"
	MsgSetUsage         = "usage: /set key=value [key=value ...]"
	MsgBadPort          = "bad port"
	MsgConfigWritten    = "[cfg] wrote %s"
	MsgConnected        = "connected to %s"
	MsgUnableToConnect  = "unable to connect to %s: %v"
	MsgSendFailed       = "send failed: %v"
	MsgSaveFailed       = "could not write config: %v"
	MsgValueTruncated   = "%s truncated to %d bytes"
	MsgSetTokenRejected = "ignored %q: %v"
)
