package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"mock-generator/internal/gen"
	"mock-generator/internal/report"
)

type generateOptions struct {
	outputDir string
	dryRun    bool
}

func registerGenerateCmd(parent *cobra.Command, root *rootOptions, getenv func(string) string) {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [packages...]",
		Short: "Write mock functions for marked declarations",
		Long: `Loads the given packages (default: the config's packages, else ./...),
synthesizes every declaration marked with //mockgen:generate and writes one
mock file per package.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, root, opts, getenv, args)
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "Write every file to this directory instead of its package directory")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Report without writing files")

	parent.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, root *rootOptions, opts *generateOptions, getenv func(string) string, args []string) error {
	s, err := newSession(cmd, root, getenv)
	if err != nil {
		return err
	}

	pkgs, err := s.analyze(cmd.Context(), args)
	if err != nil {
		return err
	}

	g := s.generator()

	plan, err := g.Plan(cmd.Context(), pkgs)
	if err != nil {
		return err
	}

	files, err := g.Generate(plan)
	if err != nil {
		return err
	}

	var written []string

	if !opts.dryRun {
		if err := gen.WriteFiles(files, opts.outputDir); err != nil {
			return err
		}

		for _, f := range files {
			dir := f.Dir
			if opts.outputDir != "" {
				dir = opts.outputDir
			}

			written = append(written, filepath.Join(dir, f.Filename))
		}
	}

	return s.report(report.New(plan.Results, written), false)
}
