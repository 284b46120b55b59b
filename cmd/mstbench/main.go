package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/kruskal/internal/cli"
)

// version is set at link time (-ldflags "-X main.version=...").
var version = "dev"

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

func main() {
	ctx, stop := signalContext(context.Background())
	defer stop()

	cli.Execute(ctx, version)
}
