package config

import (
	"fmt"
	"io"
	"net"
	"strings"

	"github.com/spf13/pflag"

	"github.com/MKhiriev/vim-cmd/internal/validators"
	"github.com/MKhiriev/vim-cmd/models"
)

// Overrides are the command-line values that take part in resolution.
type Overrides struct {
	// ConfigPath is the -c value; empty derives the per-user default.
	ConfigPath string
	// SocketPath is the -S value; non-empty forces the local-socket transport.
	SocketPath string
	// TCPAddress is the -T host:port value; non-empty forces TCP.
	TCPAddress string
}

// Options is the parsed command line.
type Options struct {
	Overrides   Overrides
	Verbose     bool
	ShowVersion bool
	ShowHelp    bool
	// Args are the positional arguments: a subcommand (set, version) or the
	// words of a remote command.
	Args []string
}

// ParseFlags parses the vim-cmd command line (without the program name).
//
// Flags:
//
//	-c, --config   config file path
//	-S, --socket   local socket path (platforms with local sockets only)
//	-T, --tcp      TCP target in form host:port
//	-v, --verbose  debug logging
//	-V, --version  print version and exit
//	-h, --help     print usage and exit
//
// Parsing stops at the first positional argument, so the words of a remote
// command are never taken for flags.
func ParseFlags(args []string, caps models.Capabilities) (Options, error) {
	var opts Options
	fs := newFlagSet(&opts, caps)

	if err := fs.Parse(args); err != nil {
		return Options{}, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	opts.Args = fs.Args()

	return opts, nil
}

func newFlagSet(opts *Options, caps models.Capabilities) *pflag.FlagSet {
	fs := pflag.NewFlagSet(appName, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SetInterspersed(false)
	fs.SortFlags = false

	fs.StringVarP(&opts.Overrides.ConfigPath, "config", "c", "", "config file path")
	if caps.LocalSocket {
		fs.StringVarP(&opts.Overrides.SocketPath, "socket", "S", "", "connect to this unix socket")
	}
	fs.StringVarP(&opts.Overrides.TCPAddress, "tcp", "T", "", "connect over TCP to `host:port`")
	fs.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")
	fs.BoolVarP(&opts.ShowVersion, "version", "V", false, "print version and exit")
	fs.BoolVarP(&opts.ShowHelp, "help", "h", false, "print this help and exit")

	return fs
}

// Usage writes the command-line synopsis to w.
func Usage(w io.Writer, caps models.Capabilities) {
	target := "[-T host:port]"
	configHint := "$XDG_CONFIG_HOME/vim-cmd/config or ~/.config/vim-cmd/config"
	if caps.LocalSocket {
		target = "[-S socket] [-T host:port]"
	} else {
		configHint = `%APPDATA%\vim-cmd\config`
	}

	fmt.Fprintf(w, "Usage:\n")
	fmt.Fprintf(w, "  %s [-c cfgfile] %s set key=value [key=value ...]\n", appName, target)
	fmt.Fprintf(w, "  %s [-c cfgfile] %s version\n", appName, target)
	fmt.Fprintf(w, "  %s [-c cfgfile] %s COMMAND [ARGS...]\n", appName, target)
	fmt.Fprintf(w, "  %s [-c cfgfile] %s\n", appName, target)
	fmt.Fprintf(w, "Config: %s\n", configHint)
	fmt.Fprintf(w, "Flags:\n%s", newFlagSet(&Options{}, caps).FlagUsages())
}

// ParseTCPAddress splits a -T argument into host and port.
func ParseTCPAddress(s string) (string, int, error) {
	host, rawPort, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil || host == "" || rawPort == "" {
		return "", 0, fmt.Errorf("%w: %q", ErrMalformedTarget, s)
	}

	port, err := validators.ValidatePort(rawPort)
	if err != nil {
		return "", 0, err
	}

	return host, port, nil
}
