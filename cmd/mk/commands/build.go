package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/mk/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [targets...]",
		Short: "Compile the specified targets (default: all)",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			jobs, _ := cmd.Flags().GetInt("jobs")

			return c.app.Build(cmd.Context(), args, app.BuildOptions{
				Only:  toolchainFilter(cmd),
				Force: force,
				Jobs:  jobs,
			})
		},
	}

	cmd.Flags().BoolP("force", "f", false, "Rebuild even when targets are up to date")
	cmd.Flags().IntP("jobs", "j", 0, "Maximum concurrent compiler invocations (default: number of CPUs)")
	addToolchainFlags(cmd)

	return cmd
}
