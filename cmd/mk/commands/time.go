package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/mk/internal/app"
)

func (c *CLI) newTimeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "time [targets...]",
		Short: "Compile the specified targets and report per-target timing",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Time(cmd.Context(), args, app.BuildOptions{
				Only: toolchainFilter(cmd),
			})
		},
	}

	addToolchainFlags(cmd)

	return cmd
}
