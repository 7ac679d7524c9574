// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the vim-cmd process lifecycle.
//
// [Main] parses the command line, resolves the connection target and then
// runs exactly one of: the "set" subcommand (persist and exit), the
// "version" subcommand, a one-shot remote command, or the interactive shell.
// The returned value is the process exit code:
//
//	0  success, help, version
//	1  malformed command line or target override
//	2  one-shot connect failure
//	3  one-shot send/receive failure
package client
