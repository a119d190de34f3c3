// Package main provides the boxflow command line tool.
//
// Usage:
//
//	boxflow layout [file...]    Print the computed geometry of each document
//	boxflow render file         Draw the computed boxes of a document to PNG
//	boxflow version             Print version information
//
// Documents are YAML, JSON or TOML files; see internal/docfile for their
// shape. Configuration comes from ./boxflow.yaml (or --config) and BOXFLOW_*
// environment variables.
//
// Examples:
//
//	boxflow layout page.yaml                 Geometry as JSON
//	boxflow layout -o yaml a.yaml b.toml     Several documents as YAML
//	boxflow layout --width 1280 page.json    Lay out against a wider viewport
//	boxflow render --scale 2 page.yaml       Write page.png at twice the size
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/grindlemire/boxflow/pkg/debug"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		debug.L().Error("command failed", zap.Error(err))
		_ = debug.Sync()
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	_ = debug.Sync()
}
