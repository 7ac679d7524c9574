// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envConfig is the environment layer. Values are kept as raw strings so that
// they go through the same validation as every other source.
//
//	VIMCMD_CONFIG  config file path (when -c is not given)
//	VIMCMD_MODE    tcp | unix
//	VIMCMD_SOCKET  local socket path
//	VIMCMD_HOST    TCP host
//	VIMCMD_PORT    TCP port
type envConfig struct {
	Target envTarget `envPrefix:"VIMCMD_"`
}

type envTarget struct {
	ConfigPath string `env:"CONFIG"`
	Mode       string `env:"MODE"`
	Socket     string `env:"SOCKET"`
	Host       string `env:"HOST"`
	Port       string `env:"PORT"`
}

// pairs returns the set target variables in application order.
func (e envTarget) pairs() [][2]string {
	var out [][2]string
	for _, kv := range [][2]string{
		{KeyMode, e.Mode},
		{KeySocket, e.Socket},
		{KeyHost, e.Host},
		{KeyPort, e.Port},
	} {
		if kv[1] != "" {
			out = append(out, kv)
		}
	}
	return out
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
