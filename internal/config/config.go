// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/MKhiriev/vim-cmd/internal/logger"
	"github.com/MKhiriev/vim-cmd/models"
)

// Resolve computes the effective [models.Target] from all available sources
// in the following priority order (last source wins for fields it sets):
//  1. Platform defaults
//  2. Config file (missing file is not an error)
//  3. Environment variables (VIMCMD_*)
//  4. Command-line overrides (-S, -T)
//
// Bad config lines, unknown keys and over-long values only produce
// warnings. An error is returned only for unusable command-line overrides,
// such as a -T value that is not host:port.
func Resolve(caps models.Capabilities, ov Overrides, log *logger.Logger) (models.Target, error) {
	return newTargetBuilder(caps, log).
		withDefaults().
		withEnv().
		withConfigPath(ov.ConfigPath).
		withFile().
		withCLI(ov).
		build()
}
