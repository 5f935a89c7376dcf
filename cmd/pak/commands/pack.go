package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newPackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Pack all assets declared in the manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := packOptions(cmd)
			if err != nil {
				return err
			}
			opts.Jobs, err = cmd.Flags().GetInt("jobs")
			if err != nil {
				return err
			}
			return c.app.Pack(cmd.Context(), opts)
		},
	}
	cmd.Flags().IntP("jobs", "j", 0, "Maximum concurrent filter executions (0 = number of CPUs)")
	return cmd
}
