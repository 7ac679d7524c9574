package main

import (
	"context"
	"os"

	"golang.org/x/term"

	"github.com/MKhiriev/vim-cmd/internal/client"
	"github.com/MKhiriev/vim-cmd/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	streams := client.Streams{
		In:          os.Stdin,
		Out:         os.Stdout,
		Err:         os.Stderr,
		Interactive: term.IsTerminal(int(os.Stdin.Fd())),
	}
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	os.Exit(client.Main(context.Background(), os.Args[1:], streams, build))
}
