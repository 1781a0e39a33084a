// Package main is the entry point for the tracker CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"tracker/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// After the first signal, restore default handling so a second one kills the process.
	go func() {
		<-ctx.Done()
		stop()
	}()

	app := cli.NewApp(cli.DefaultStoreFactory)

	code := app.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
