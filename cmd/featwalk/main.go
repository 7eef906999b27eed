// Command featwalk enumerates the feature occurrences of a camera node map
// and checks them against the published property catalogs.
//
// Usage:
//
//	featwalk <command> [flags]
//
// Commands:
//
//	list     Walk groups and print their identifiers
//	drift    Compare walks with the published catalogs
//	capture  Snapshot a group's node map
//	trace    Inspect walk trace files
//
// Examples:
//
//	# List the proxy-visible features of a camera map
//	featwalk list --map camera.yaml --group cam --proxy
//
//	# Check every configured group, tracing the walks
//	featwalk drift -c featwalk.yaml --trace-file walk.ftrace
//
//	# Why was LineInverter skipped?
//	featwalk trace view --node LineInverter walk.ftrace
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/featwalk/featwalk/cmd/featwalk/commands"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := commands.NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)
	switch {
	case err == nil:
	case errors.Is(err, commands.ErrDrift):
		os.Exit(1)
	case errors.Is(err, context.Canceled):
		os.Exit(130)
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}
}
