package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"lrucache/internal/cli"
)

func main() {
	// Signal-aware context is the root for the whole run: SIGINT/SIGTERM stop a replay between lines.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "lrucache:", err)
		stop()
		os.Exit(1)
	}
}
