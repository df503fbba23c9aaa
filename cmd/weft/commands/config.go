package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"go.trai.ch/weft/internal/core/domain"
)

// resolvedConfig is the document printed by "weft config".
type resolvedConfig struct {
	Global  domain.GlobalConfiguration  `json:"global"`
	Plugins map[string]domain.ConfigMap `json:"plugins"`
}

func (c *CLI) newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the configuration each plugin receives",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plugins, err := c.app.Plugins(cmd.Context(), c.opts)
			if err != nil {
				return err
			}

			out := resolvedConfig{Plugins: make(map[string]domain.ConfigMap, len(plugins))}
			for _, p := range plugins {
				out.Plugins[p.Info().ConfigKey] = p.Config()
				// Every plugin receives the same global configuration.
				out.Global = p.GlobalConfig()
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
}
