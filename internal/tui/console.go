// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui prints operator-facing output for vim-cmd.
//
// Remote responses go to the output stream verbatim. Prompts, notices,
// warnings and errors go to the diagnostic stream so that piping stdout
// captures only what hostd returned. Styling is applied through a lipgloss
// renderer bound to the diagnostic writer, which degrades to plain text when
// the writer is not a terminal.
package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/vim-cmd/internal/app"
)

// Console writes vim-cmd output.
type Console struct {
	out    io.Writer
	errOut io.Writer
	st     styles
}

// NewConsole returns a Console writing responses to out and everything else
// to errOut.
func NewConsole(out, errOut io.Writer) *Console {
	return &Console{
		out:    out,
		errOut: errOut,
		st:     newStyles(lipgloss.NewRenderer(errOut)),
	}
}

// Prompt writes the interactive prompt without a trailing newline.
func (c *Console) Prompt() {
	fmt.Fprint(c.errOut, c.st.prompt.Render(app.MsgPrompt))
}

// Title writes a bold heading line.
func (c *Console) Title(text string) {
	fmt.Fprintln(c.errOut, c.st.title.Render(text))
}

// Notice writes an unstyled informational line.
func (c *Console) Notice(format string, args ...any) {
	fmt.Fprintf(c.errOut, format+"\n", args...)
}

func (c *Console) Info(format string, args ...any) {
	c.line(c.st.info.Render("[info]"), format, args...)
}

func (c *Console) Warn(format string, args ...any) {
	c.line(c.st.warn.Render("warning:"), format, args...)
}

func (c *Console) Error(format string, args ...any) {
	c.line(c.st.err.Render("error:"), format, args...)
}

// ConnectFailed reports a failed connect with a hint when one applies.
func (c *Console) ConnectFailed(address string, err error) {
	c.Error(app.MsgUnableToConnect, address, err)
	if hint := connectHint(err); hint != "" {
		c.Info("%s", hint)
	}
}

// Response writes bytes received from hostd exactly as they arrived.
func (c *Console) Response(b []byte) {
	_, _ = c.out.Write(b)
}

// Println writes a line to the output stream.
func (c *Console) Println(text string) {
	fmt.Fprintln(c.out, text)
}

func (c *Console) line(prefix, format string, args ...any) {
	fmt.Fprintf(c.errOut, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}
