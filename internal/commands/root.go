// Package commands contains all CLI command definitions.
package commands

import (
	"errors"

	"github.com/spf13/cobra"
)

// ErrDiagnostics is returned when a run reported error diagnostics.
var ErrDiagnostics = errors.New("mock generation reported errors")

// EnvConfig names the environment variable holding the default config path.
const EnvConfig = "MOCKGEN_CONFIG"

// DefaultConfigFile is read when present and no config is named.
const DefaultConfigFile = "mockgen.yaml"

type rootOptions struct {
	configPath string
	verbose    bool
	strict     bool
	seed       uint64
	format     string
	dump       bool
}

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(getenv func(string) string) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "mock-generator",
		Short: "Generate mock values for Go types",
		Long: `mock-generator synthesizes mock values for Go declarations marked with
//mockgen:generate and writes MockX / MockXBatch functions next to them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Config file (default $"+EnvConfig+" or ./"+DefaultConfigFile+" when present)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log progress and show info diagnostics")
	flags.BoolVar(&opts.strict, "strict", false, "Treat unresolved fields as errors")
	flags.Uint64Var(&opts.seed, "seed", 0, "Random seed (0 picks one from the clock)")
	flags.StringVar(&opts.format, "format", "text", "Report format (text, json)")
	flags.BoolVar(&opts.dump, "dump", false, "Dump the analyzed declarations to stderr")

	registerGenerateCmd(rootCmd, opts, getenv)
	registerCheckCmd(rootCmd, opts, getenv)
	registerSynthCmd(rootCmd, opts, getenv)
	registerVersionCmd(rootCmd)

	return rootCmd
}
