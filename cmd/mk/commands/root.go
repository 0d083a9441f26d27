// Package commands implements the CLI commands for the mk build driver.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.trai.ch/mk/internal/adapters/config"
	"go.trai.ch/mk/internal/app"
)

// CLI represents the command line interface for mk.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "mk",
		Short:         "A build driver for native benchmark programs",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		// Bare mk compiles everything, like the classic driver scripts.
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.Build(cmd.Context(), nil, app.BuildOptions{})
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultFilename, "Path to configuration file")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newTimeCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetConfigHook sets up a PersistentPreRun function that retrieves the config
// flag and calls the provided callback with the config path.
func (c *CLI) SetConfigHook(fn func(string)) {
	c.rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		configPath, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}
		fn(configPath)
		return nil
	}
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// addToolchainFlags registers the mutually exclusive toolchain restriction flags.
func addToolchainFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("c-only", false, "Restrict the action to gcc targets")
	cmd.Flags().Bool("rust-only", false, "Restrict the action to rustc targets")
	cmd.MarkFlagsMutuallyExclusive("c-only", "rust-only")
}

// toolchainFilter maps the restriction flags to a toolchain name.
func toolchainFilter(cmd *cobra.Command) string {
	if only, _ := cmd.Flags().GetBool("c-only"); only {
		return "gcc"
	}
	if only, _ := cmd.Flags().GetBool("rust-only"); only {
		return "rustc"
	}
	return ""
}
