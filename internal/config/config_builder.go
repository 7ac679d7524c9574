package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"

	"github.com/MKhiriev/vim-cmd/internal/logger"
	"github.com/MKhiriev/vim-cmd/internal/store"
	"github.com/MKhiriev/vim-cmd/models"
)

// targetBuilder collects one partial Target per precedence layer and merges
// them, lowest first. Zero fields of a layer leave lower layers in place.
type targetBuilder struct {
	caps models.Capabilities
	log  *logger.Logger

	defaults models.Target
	file     models.Target
	env      models.Target
	cli      models.Target

	envConfigPath string
	configPath    string

	err error
}

func newTargetBuilder(caps models.Capabilities, log *logger.Logger) *targetBuilder {
	return &targetBuilder{caps: caps, log: log}
}

func (b *targetBuilder) build() (models.Target, error) {
	if b.err != nil {
		return models.Target{}, fmt.Errorf("error occured during resolving target: %w", b.err)
	}

	var target models.Target
	for _, layer := range []models.Target{b.defaults, b.file, b.env, b.cli} {
		if err := mergo.Merge(&target, layer, mergo.WithOverride); err != nil {
			return models.Target{}, fmt.Errorf("error merging targets: %w", err)
		}
	}
	target.ConfigFile = b.configPath

	return target, nil
}

func (b *targetBuilder) withDefaults() *targetBuilder {
	b.defaults = DefaultTarget(b.caps)
	return b
}

// withEnv must run before withConfigPath, which may use VIMCMD_CONFIG.
func (b *targetBuilder) withEnv() *targetBuilder {
	var cfg envConfig
	if err := parseEnv(&cfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.envConfigPath = cfg.Target.ConfigPath
	for _, kv := range cfg.Target.pairs() {
		a, err := ApplyKV(&b.env, kv[0], kv[1], SourceCLI, b.caps)
		if err != nil {
			b.log.Warn().Err(err).Str("key", kv[0]).Str("source", "env").Msg("ignoring environment setting")
			continue
		}
		b.warnTruncated(a, "env")
	}

	return b
}

func (b *targetBuilder) withConfigPath(override string) *targetBuilder {
	path := override
	if path == "" {
		path = b.envConfigPath
	}
	if path == "" {
		path = DefaultConfigPath()
	}

	var truncated bool
	b.configPath, truncated = bounded(path, MaxConfigPathLen)
	if truncated {
		b.log.Warn().Int("limit", MaxConfigPathLen).Str("key", "config").Msg("config path truncated")
	}

	return b
}

// withFile loads the config file. A missing or unreadable file and bad lines
// are never fatal.
func (b *targetBuilder) withFile() *targetBuilder {
	entries, err := store.LoadKV(b.configPath)
	if err != nil {
		b.log.Warn().Err(err).Str("path", b.configPath).Msg("config file not loaded")
		return b
	}

	for _, e := range entries {
		a, err := ApplyKV(&b.file, e.Key, e.Value, SourceFile, b.caps)
		if err != nil {
			b.log.Warn().Err(err).Str("key", e.Key).Str("path", b.configPath).Msg("skipping config line")
			continue
		}
		b.warnTruncated(a, "config")
	}

	return b
}

// withCLI applies -S then -T, so -T wins when both are given.
func (b *targetBuilder) withCLI(ov Overrides) *targetBuilder {
	if ov.SocketPath != "" {
		if !b.caps.LocalSocket {
			b.err = errors.Join(b.err, ErrLocalSocketUnsupported)
			return b
		}
		var truncated bool
		b.cli.Transport = models.TransportLocalSocket
		b.cli.LocalPath, truncated = bounded(ov.SocketPath, MaxSocketPathLen)
		b.warnTruncated(Assignment{Key: KeySocket, Truncated: truncated, Limit: MaxSocketPathLen}, "cli")
	}

	if ov.TCPAddress != "" {
		host, port, err := ParseTCPAddress(ov.TCPAddress)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		var truncated bool
		b.cli.Transport = models.TransportTCP
		b.cli.Host, truncated = bounded(host, MaxHostLen)
		b.cli.Port = port
		b.warnTruncated(Assignment{Key: KeyHost, Truncated: truncated, Limit: MaxHostLen}, "cli")
	}

	return b
}

func (b *targetBuilder) warnTruncated(a Assignment, source string) {
	if !a.Truncated {
		return
	}
	b.log.Warn().Str("key", a.Key).Int("limit", a.Limit).Str("source", source).Msg("value truncated")
}
