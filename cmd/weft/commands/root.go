// Package commands implements the CLI commands for weft.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/weft/internal/app"
	"go.trai.ch/weft/internal/build"
	"go.trai.ch/weft/internal/core/ports"
)

// CLI represents the command line interface for weft.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	opts    app.Options
}

// Application represents the application logic interface.
type Application interface {
	Configure(opts app.Options) func(context.Context) error
	Plugins(ctx context.Context, opts app.Options) ([]ports.Plugin, error)
	FileExtensions(ctx context.Context, opts app.Options) ([]string, error)
	ClearCache(ctx context.Context, locators []string) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "weft",
		Short:         "Resolve and inspect formatter plugins",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(versionLine() + "\n")
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.opts.ConfigPath, "config", "c", "", "Path to the configuration file (default: weft.yaml or weft.json)")
	flags.StringSliceVar(&c.opts.Plugins, "plugins", nil, "Plugin locators to use instead of the configured ones")
	flags.BoolVar(&c.opts.LogJSON, "log-json", false, "Write logs as JSON")
	flags.BoolVar(&c.opts.Trace, "trace", false, "Log the duration of each resolution stage")

	rootCmd.AddCommand(c.newPluginsCmd())
	rootCmd.AddCommand(c.newConfigCmd())
	rootCmd.AddCommand(c.newExtensionsCmd())
	rootCmd.AddCommand(c.newClearCacheCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	var flush func(context.Context) error
	c.rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		flush = c.app.Configure(c.opts)
	}

	c.rootCmd.SetContext(ctx)
	err := c.rootCmd.Execute()
	if flush != nil {
		_ = flush(ctx)
	}
	return err
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
