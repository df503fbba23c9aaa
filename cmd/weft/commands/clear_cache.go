package commands

import "github.com/spf13/cobra"

func (c *CLI) newClearCacheCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-cache [locator...]",
		Short: "Remove cached plugins and the cache manifest",
		Long: "Remove the whole plugin cache, or only the plugins with the given locators.\n" +
			"Local locators are resolved against the working directory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.ClearCache(cmd.Context(), args)
		},
	}
}
