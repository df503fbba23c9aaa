package commands

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.trai.ch/weft/internal/core/ports"
)

func (c *CLI) newPluginsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plugins",
		Short: "List the configured plugins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plugins, err := c.app.Plugins(cmd.Context(), c.opts)
			if err != nil {
				return err
			}
			renderPluginTable(cmd.OutOrStdout(), plugins)
			return nil
		},
	}
}

func renderPluginTable(w io.Writer, plugins []ports.Plugin) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Name", "Version", "Config Key", "Extensions"})
	for _, p := range plugins {
		info := p.Info()
		t.AppendRow(table.Row{info.Name, info.Version, info.ConfigKey, strings.Join(info.FileExtensions, ", ")})
	}
	style := table.StyleLight
	style.Options.DrawBorder = false
	t.SetStyle(style)
	t.Render()
}
