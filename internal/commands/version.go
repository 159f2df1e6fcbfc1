package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"mock-generator/internal/version"
)

func registerVersionCmd(parent *cobra.Command) {
	parent.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Info())
			return err
		},
	})
}
