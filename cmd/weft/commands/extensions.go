package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newExtensionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extensions",
		Short: "Print the file extensions handled by the configured plugins",
		Long: "Print the file extensions handled by the configured plugins, one per line.\n" +
			"Nothing is printed when the configuration cannot be read.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			extensions, err := c.app.FileExtensions(cmd.Context(), c.opts)
			if err != nil {
				return err
			}
			for _, ext := range extensions {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), ext)
			}
			return nil
		},
	}
}
