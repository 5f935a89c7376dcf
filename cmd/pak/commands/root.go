// Package commands implements the CLI commands for the pak asset packer.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.trai.ch/pak/internal/app"
	"go.trai.ch/pak/internal/core/domain"
)

// CLI represents the command line interface for pak.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "pak",
		Short:         "An incremental, content-addressed web asset packer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("manifest", "m", "pak.yaml", "Path to the asset manifest")
	rootCmd.PersistentFlags().String("source", ".", "Root directory of the source files")
	rootCmd.PersistentFlags().String("out", "dist", "Root directory for packed output")
	rootCmd.PersistentFlags().String("state", "pak_state.json", "Path to the build state file")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newPackCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// packOptions collects the persistent flags into the app-level options.
func packOptions(cmd *cobra.Command) (app.PackOptions, error) {
	manifest, err := cmd.Flags().GetString("manifest")
	if err != nil {
		return app.PackOptions{}, err
	}
	source, err := cmd.Flags().GetString("source")
	if err != nil {
		return app.PackOptions{}, err
	}
	out, err := cmd.Flags().GetString("out")
	if err != nil {
		return app.PackOptions{}, err
	}
	state, err := cmd.Flags().GetString("state")
	if err != nil {
		return app.PackOptions{}, err
	}

	return app.PackOptions{
		ManifestPath: manifest,
		StatePath:    state,
		Layout: domain.Layout{
			SourceDir: source,
			OutputDir: out,
		},
	}, nil
}
