package client

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/MKhiriev/vim-cmd/internal/adapter"
	"github.com/MKhiriev/vim-cmd/internal/app"
	"github.com/MKhiriev/vim-cmd/internal/config"
	"github.com/MKhiriev/vim-cmd/internal/handler"
	"github.com/MKhiriev/vim-cmd/internal/logger"
	"github.com/MKhiriev/vim-cmd/internal/tui"
	"github.com/MKhiriev/vim-cmd/internal/utils"
	"github.com/MKhiriev/vim-cmd/models"
)

const (
	ExitOK      = 0
	ExitUsage   = 1
	ExitConnect = 2
	ExitIO      = 3
)

var _ handler.ConnectionManager = (*adapter.Manager)(nil)

// maxInputLine bounds a single interactive input line.
const maxInputLine = 1 << 20

// Streams are the process standard streams. Interactive is true when In is a
// terminal; the prompt is only written then.
type Streams struct {
	In          io.Reader
	Out         io.Writer
	Err         io.Writer
	Interactive bool
}

// App is one resolved vim-cmd session.
type App struct {
	target     models.Target
	conns      *adapter.Manager
	dispatcher *handler.Dispatcher
	console    *tui.Console
	log        *logger.Logger
}

// Main runs vim-cmd with args (without the program name) and returns the
// process exit code.
func Main(ctx context.Context, args []string, streams Streams, build models.AppBuildInfo, opts ...adapter.Option) int {
	conns := adapter.NewManager(logger.Nop(), opts...)
	caps := conns.Capabilities()
	console := tui.NewConsole(streams.Out, streams.Err)

	options, err := config.ParseFlags(args, caps)
	if err != nil {
		console.Error("%v", err)
		config.Usage(streams.Err, caps)
		return ExitUsage
	}
	if options.ShowHelp {
		config.Usage(streams.Out, caps)
		return ExitOK
	}
	if options.ShowVersion {
		console.Println(build.String())
		return ExitOK
	}

	log := logger.NewClientLogger("vim-cmd", streams.Err, options.Verbose).WithSession(utils.NewSessionID())
	conns.SetLogger(log)

	target, err := config.Resolve(caps, options.Overrides, log)
	if err != nil {
		console.Error("%v", err)
		return ExitUsage
	}
	log.Debug().Str("target", target.Address()).Str("config", target.ConfigFile).Msg("target resolved")

	if len(options.Args) > 0 {
		switch strings.ToLower(options.Args[0]) {
		case "set":
			return runSet(options.Args[1:], target, caps, console)
		case "version":
			console.Println(build.String())
			return ExitOK
		}
	}

	a := &App{
		target:     target,
		conns:      conns,
		dispatcher: handler.NewDispatcher(conns, config.NewFileTargetStore(), console, build, log),
		console:    console,
		log:        log,
	}

	if len(options.Args) > 0 {
		return a.RunOneShot(ctx, strings.Join(options.Args, " "))
	}
	return a.RunInteractive(ctx, streams.In, streams.Interactive)
}

// runSet applies key=value tokens on top of the resolved target and always
// writes the config file, even when every token was rejected. Only a failed
// write is an error.
func runSet(tokens []string, target models.Target, caps models.Capabilities, console *tui.Console) int {
	results, _ := config.ApplyTokens(&target, tokens, config.SourceCLI, caps)
	for _, r := range results {
		if r.Err != nil {
			console.Warn(app.MsgSetTokenRejected, r.Token, r.Err)
			continue
		}
		if r.Assignment.Truncated {
			console.Warn(app.MsgValueTruncated, r.Assignment.Key, r.Assignment.Limit)
		}
	}

	if err := config.Save(target); err != nil {
		console.Error(app.MsgSaveFailed, err)
		return ExitUsage
	}
	console.Notice(app.MsgConfigWritten, target.ConfigFile)

	return ExitOK
}

// RunOneShot connects once, sends line, prints the response and closes.
func (a *App) RunOneShot(ctx context.Context, line string) int {
	if err := a.conns.Connect(ctx, a.target); err != nil {
		a.console.ConnectFailed(a.target.Address(), err)
		return ExitConnect
	}
	defer func() { _ = a.conns.Close() }()

	resp, err := a.conns.RoundTrip(ctx, line)
	switch {
	case err == nil:
		a.console.Response(resp)
		return ExitOK
	case errors.Is(err, adapter.ErrRemoteClosed):
		a.console.Info(app.MsgRemoteClosed)
		return ExitOK
	default:
		a.console.Error(app.MsgSendFailed, err)
		return ExitIO
	}
}

// RunInteractive reads lines from in until end of input or an exit alias.
// No connection is opened until the operator asks for one.
func (a *App) RunInteractive(ctx context.Context, in io.Reader, prompt bool) int {
	defer func() { _ = a.conns.Close() }()

	a.console.Notice(app.MsgBanner, a.target.ConfigFile)
	a.dispatcher.Show(a.target)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), maxInputLine)

	for {
		if prompt {
			a.console.Prompt()
		}
		if !scanner.Scan() {
			break
		}
		if a.dispatcher.Dispatch(ctx, scanner.Text(), &a.target) == handler.ActionExit {
			return ExitOK
		}
	}

	if prompt {
		a.console.Notice("")
	}
	if err := scanner.Err(); err != nil {
		a.log.Warn().Err(err).Msg("reading input")
	}

	return ExitOK
}
