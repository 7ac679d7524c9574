// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config resolves the connection target of vim-cmd and persists it.
//
// # Layers
//
// [Resolve] merges partial targets with mergo, lowest precedence first:
//
//  1. platform defaults ([DefaultTarget]): /tmp/hostd.sock where unix
//     sockets exist, 127.0.0.1:9000 otherwise;
//  2. the config file at -c, $VIMCMD_CONFIG or [DefaultConfigPath];
//  3. VIMCMD_MODE, VIMCMD_SOCKET, VIMCMD_HOST, VIMCMD_PORT;
//  4. -S socket and -T host:port.
//
// Interactive /set and /connect mutate the resolved target in place through
// [ApplyKV] and [ApplyTokens]; only /set and the `set` subcommand call
// [Save].
//
// # Config file
//
//	# comment
//	mode=tcp
//	host=127.0.0.1
//	port=9000
//
// Keys are case-insensitive. Unknown keys and bad lines are logged and
// skipped. A port that cannot be parsed is kept as models.PortInvalid so the
// target fails at connect time instead of silently falling back.
//
// # Limits
//
// Socket paths, hosts and the config path are cut to [MaxSocketPathLen],
// [MaxHostLen] and [MaxConfigPathLen] bytes with a warning.
package config
