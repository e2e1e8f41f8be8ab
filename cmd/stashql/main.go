// Package main is the entry point for the stashql client.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.trai.ch/stashql/cmd/stashql/commands"
	"go.trai.ch/stashql/internal/app"
	_ "go.trai.ch/stashql/internal/wiring"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, app.NewApp))
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider commands.Provider,
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Interface - CLI; components are resolved by the first command needing them
	cli := commands.New(provider)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	// 2. Execution
	if err := cli.Execute(ctx); err != nil {
		if components := cli.Components(); components != nil && components.Logger != nil {
			components.Logger.Error(err)
			return 1
		}
		// Logger is not available if initialization failed
		_, _ = fmt.Fprintf(stderr, "Error: %+v\n", err)
		return 1
	}
	return 0
}
