// Package main provides the CLI entrypoint for mock-generator.
//
// mock-generator analyzes Go packages for declarations marked with
// //mockgen:generate and writes deterministic mock values for them:
//   - generate: synthesize every marked declaration and write mock_gen.go
//   - check: report diagnostics without writing
//   - synth: print values for shapes declared in the YAML config
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"mock-generator/cmd/internal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := internal.Run(ctx, os.Getenv)

	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
