// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors used throughout vim-cmd.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer.
package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewClientLogger constructs the *Logger used by the command-line client.
//
// Output is human-readable (zerolog.ConsoleWriter) and goes to w, which is
// normally os.Stderr so that it never mixes with remote responses on stdout.
// Only warnings and errors are emitted unless verbose is set, in which case
// debug events about the connection lifecycle are shown as well.
func NewClientLogger(role string, w io.Writer, verbose bool) *Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.TimeOnly,
	}

	logger := zerolog.New(out).Level(level).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithSession returns a child logger tagging every event with the session id.
func (l *Logger) WithSession(id string) *Logger {
	return &Logger{l.With().Str("session", id).Logger()}
}
