package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/opsdesk/opsdesk/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	os.Exit(cli.Execute(ctx))
}
