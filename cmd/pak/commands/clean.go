package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pak/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove output files not referenced by the current build state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := cmd.Flags().GetString("state")
			if err != nil {
				return err
			}
			out, err := cmd.Flags().GetString("out")
			if err != nil {
				return err
			}
			return c.app.Clean(app.CleanOptions{
				StatePath: state,
				OutputDir: out,
			})
		},
	}
}
