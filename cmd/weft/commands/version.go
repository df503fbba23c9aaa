package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/weft/internal/build"
)

// versionLine describes the running build. It backs both "weft version" and --version.
func versionLine() string {
	return fmt.Sprintf("weft version %s (commit: %s, date: %s)", build.Version, build.Commit, build.Date)
}

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), versionLine())
			return err
		},
	}
}
