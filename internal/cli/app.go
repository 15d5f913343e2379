// Package cli implements a small operator console for the DataChart API. It
// talks to a running server over HTTP and covers account registration and a
// quick look at the stored datasets.
package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const defaultEndpoint = "http://localhost:8080"

type App struct {
	endpoint string
	client   *http.Client
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(endpoint string) *App {
	return &App{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
}

// ParseArgs reads the endpoint flag and returns the command name.
func ParseArgs(args []string) (endpoint, command string) {
	fs := flag.NewFlagSet("datachart-cli", flag.ExitOnError)
	fs.StringVar(&endpoint, "e", defaultEndpoint, "server endpoint")
	_ = fs.Parse(args)
	return endpoint, fs.Arg(0)
}

func (a *App) Run(ctx context.Context, command string) error {
	switch command {
	case "register":
		return a.Register(ctx)
	case "datasets":
		return a.Datasets(ctx)
	case "health":
		return a.Health(ctx)
	default:
		fmt.Fprintln(a.out, "usage: datachart-cli [-e endpoint] register|datasets|health")
		return nil
	}
}
