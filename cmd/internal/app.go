// Package internal wires the CLI to the process environment.
package internal

import (
	"context"

	"mock-generator/internal/commands"
)

// Run executes the root command with the given context and environment lookup.
func Run(ctx context.Context, getenv func(string) string) error {
	return commands.NewRootCmd(getenv).ExecuteContext(ctx)
}
