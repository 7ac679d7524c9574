package handler

import (
	"context"
	"strconv"
	"strings"

	"github.com/MKhiriev/vim-cmd/internal/app"
	"github.com/MKhiriev/vim-cmd/internal/config"
	"github.com/MKhiriev/vim-cmd/internal/validators"
	"github.com/MKhiriev/vim-cmd/models"
)

// Help prints the built-in command list.
func (d *Dispatcher) Help() {
	d.console.Title("Built-ins:")
	d.console.Notice("  /help")
	d.console.Notice("  /show")
	d.console.Notice("  /set key=value [key=value ...]   (mode, host, port; writes config)")
	d.console.Notice("  /connect tcp <host> [port]")
	if d.conns.Capabilities().LocalSocket {
		d.console.Notice("  /connect unix <socket>")
	}
	d.console.Notice("  /reconnect")
	d.console.Notice("  version")
	d.console.Notice("  /quit | /exit")
	d.console.Notice("Anything else is sent to hostd.")
}

// Show prints the fields of t.
func (d *Dispatcher) Show(t models.Target) {
	d.console.Notice("%s", FormatTarget(t))
}

// FormatTarget renders t the way /show prints it.
func FormatTarget(t models.Target) string {
	var b strings.Builder
	b.WriteString("[cfg] mode=")
	b.WriteString(t.Transport.String())
	b.WriteString(" socket=")
	b.WriteString(orDefault(t.LocalPath, "(n/a)"))
	b.WriteString(" host=")
	b.WriteString(orDefault(t.Host, "(n/a)"))
	b.WriteString(" port=")
	b.WriteString(portString(t.Port))
	b.WriteString(" cfg=")
	b.WriteString(orDefault(t.ConfigFile, "(none)"))
	return b.String()
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func portString(p int) string {
	if p == models.PortInvalid {
		return "(invalid)"
	}
	return strconv.Itoa(p)
}

// set applies each key=value token on its own and persists the target if at
// least one of them took effect.
func (d *Dispatcher) set(tokens []string, target *models.Target) {
	if len(tokens) == 0 {
		d.console.Notice(app.MsgSetUsage)
		return
	}

	results, changed := config.ApplyTokens(target, tokens, config.SourceSession, d.conns.Capabilities())
	for _, r := range results {
		if r.Err != nil {
			d.log.Debug().Err(r.Err).Str("token", r.Token).Msg("set token rejected")
			d.console.Warn(app.MsgSetTokenRejected, r.Token, r.Err)
			continue
		}
		if r.Assignment.Truncated {
			d.console.Warn(app.MsgValueTruncated, r.Assignment.Key, r.Assignment.Limit)
		}
	}

	if !changed {
		return
	}

	if err := d.store.Save(*target); err != nil {
		d.console.Error(app.MsgSaveFailed, err)
		return
	}
	d.console.Notice(app.MsgConfigWritten, target.ConfigFile)
}

// connect handles "/connect tcp <host> [port]" and "/connect unix <socket>".
// The target changes for this session only; the config file is untouched.
func (d *Dispatcher) connect(ctx context.Context, args []string, target *models.Target) {
	caps := d.conns.Capabilities()
	usage := app.MsgConnectUsage
	if !caps.LocalSocket {
		usage = app.MsgConnectUsageTCP
	}

	if len(args) < 2 {
		d.console.Notice("%s", usage)
		return
	}

	next := *target
	var (
		a   config.Assignment
		err error
	)

	switch strings.ToLower(args[0]) {
	case "tcp":
		port := target.Port
		if len(args) >= 3 {
			if port, err = validators.ValidatePort(args[2]); err != nil {
				d.console.Warn(app.MsgBadPort)
				return
			}
		}
		if validators.ValidatePortNumber(port) != nil {
			d.console.Warn(app.MsgBadPort)
			return
		}
		if a, err = config.ApplyKV(&next, config.KeyHost, args[1], config.SourceSession, caps); err != nil {
			d.console.Warn("%v", err)
			return
		}
		next.Transport = models.TransportTCP
		next.Port = port
	case "unix":
		if !caps.LocalSocket {
			d.console.Notice("%s", usage)
			return
		}
		if a, err = config.ApplyKV(&next, config.KeySocket, args[1], config.SourceCLI, caps); err != nil {
			d.console.Warn("%v", err)
			return
		}
		next.Transport = models.TransportLocalSocket
	default:
		d.console.Notice("%s", usage)
		return
	}

	if a.Truncated {
		d.console.Warn(app.MsgValueTruncated, a.Key, a.Limit)
	}

	*target = next
	d.reconnect(ctx, next)
}

// reconnect drops any open connection and connects to t.
func (d *Dispatcher) reconnect(ctx context.Context, t models.Target) {
	if err := d.conns.Close(); err != nil {
		d.log.Debug().Err(err).Msg("close before reconnect")
	}

	if err := d.conns.Connect(ctx, t); err != nil {
		d.console.ConnectFailed(t.Address(), err)
		return
	}
	d.console.Info(app.MsgConnected, t.Address())
}
