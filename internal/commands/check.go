package commands

import (
	"github.com/spf13/cobra"

	"mock-generator/internal/report"
)

func registerCheckCmd(parent *cobra.Command, root *rootOptions, getenv func(string) string) {
	cmd := &cobra.Command{
		Use:   "check [packages...]",
		Short: "Synthesize marked declarations and report diagnostics without writing",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, root, getenv)
			if err != nil {
				return err
			}

			pkgs, err := s.analyze(cmd.Context(), args)
			if err != nil {
				return err
			}

			plan, err := s.generator().Plan(cmd.Context(), pkgs)
			if err != nil {
				return err
			}

			return s.report(report.New(plan.Results, nil), root.verbose)
		},
	}

	parent.AddCommand(cmd)
}
