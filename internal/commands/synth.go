package commands

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"mock-generator/internal/model"
	"mock-generator/internal/report"
	"mock-generator/internal/synth"
)

func registerSynthCmd(parent *cobra.Command, root *rootOptions, getenv func(string) string) {
	cmd := &cobra.Command{
		Use:   "synth [shapes...]",
		Short: "Print mock values for the shapes declared in the config",
		Long: `Synthesizes the shapes listed under "shapes:" in the config file and
prints the resulting values. Naming shapes limits the output to them; the
other shapes remain available as peers.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, root, getenv)
			if err != nil {
				return err
			}

			decls, err := s.cfg.Declarations()
			if err != nil {
				return err
			}

			if len(decls) == 0 {
				return errors.New("no shapes in config")
			}

			for _, name := range args {
				if !slices.ContainsFunc(decls, func(d *model.Declaration) bool { return d.Name == name }) {
					return fmt.Errorf("unknown shape %q", name)
				}
			}

			s.dump(decls)

			results, err := s.generator().Synthesize(cmd.Context(), decls)
			if err != nil {
				return err
			}

			if len(args) > 0 {
				results = slices.DeleteFunc(results, func(r *synth.Result) bool {
					return !slices.Contains(args, r.Decl.Name)
				})
			}

			return s.report(report.New(results, nil), true)
		},
	}

	parent.AddCommand(cmd)
}
