package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/mk/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean [targets...]",
		Short: "Remove the artifacts of the specified targets (default: all)",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Clean(cmd.Context(), args, app.CleanOptions{
				Only: toolchainFilter(cmd),
			})
		},
	}

	addToolchainFlags(cmd)

	return cmd
}
