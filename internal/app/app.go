// Package app implements the application layer for weft.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"go.trai.ch/weft/internal/adapters/telemetry"
	"go.trai.ch/weft/internal/core/domain"
	"go.trai.ch/weft/internal/core/ports"
	"go.trai.ch/weft/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configResolver ports.ConfigResolver
	pipeline       *pipeline.Pipeline
	cache          ports.PluginCache
	env            ports.Environment
	logger         ports.Logger
}

// New creates a new App instance.
func New(
	configResolver ports.ConfigResolver,
	p *pipeline.Pipeline,
	cache ports.PluginCache,
	env ports.Environment,
	log ports.Logger,
) *App {
	return &App{
		configResolver: configResolver,
		pipeline:       p,
		cache:          cache,
		env:            env,
		logger:         log,
	}
}

// Options are the global command line options.
type Options struct {
	ConfigPath string
	Plugins    []string
	LogJSON    bool
	Trace      bool
}

func (o Options) configArgs() domain.ConfigArgs {
	return domain.ConfigArgs{ConfigPath: o.ConfigPath, Plugins: o.Plugins}
}

// jsonSwitcher is implemented by loggers that can switch to JSON output.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// Configure applies the logging and tracing options. The returned function flushes
// the tracer and must be called once the command finished.
func (a *App) Configure(opts Options) func(context.Context) error {
	if s, ok := a.logger.(jsonSwitcher); ok {
		s.SetJSON(opts.LogJSON)
	}
	if !opts.Trace {
		return func(context.Context) error { return nil }
	}
	return telemetry.Install(telemetry.NewBridge(a.logger))
}

// Plugins resolves the configured plugins. It fails with domain.ErrNoPluginsFound when
// the configuration lists none.
func (a *App) Plugins(ctx context.Context, opts Options) ([]ports.Plugin, error) {
	var plugins []ports.Plugin
	err := a.session(func() error {
		args := opts.configArgs()
		cfg, err := a.configResolver.ResolveFromArgs(args)
		if err != nil {
			return zerr.Wrap(err, "failed to load configuration")
		}

		plugins, err = a.pipeline.ResolvePluginsAndErrIfEmpty(ctx, args, cfg)
		return err
	})
	if err != nil {
		return nil, err
	}
	return plugins, nil
}

// FileExtensions returns the sorted union of the file extensions handled by the
// configured plugins. An unreadable configuration yields no extensions.
func (a *App) FileExtensions(ctx context.Context, opts Options) ([]string, error) {
	var extensions []string
	err := a.session(func() error {
		plugins, err := a.pipeline.GetPluginsFromArgs(ctx, opts.configArgs())
		if err != nil {
			return err
		}

		for _, p := range plugins {
			extensions = append(extensions, p.Info().FileExtensions...)
		}
		slices.Sort(extensions)
		extensions = slices.Compact(extensions)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return extensions, nil
}

// ClearCache removes the cache root with every cached plugin. When locators are given
// only their entries and artifacts are removed.
func (a *App) ClearCache(_ context.Context, locators []string) error {
	if len(locators) > 0 {
		return a.session(func() error {
			for _, locator := range locators {
				if !domain.IsURLLocator(locator) {
					abs, err := filepath.Abs(locator)
					if err != nil {
						return zerr.With(zerr.Wrap(err, domain.ErrCacheClearFailed.Error()), "locator", locator)
					}
					locator = abs
				}
				a.cache.ForgetPlugin(locator)
				a.logger.Info(fmt.Sprintf("removed %s from the plugin cache", locator))
			}
			return nil
		})
	}

	dir := a.env.CacheDir()
	if err := a.env.RemoveDirAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheClearFailed.Error()), "path", dir)
	}
	a.logger.Info(fmt.Sprintf("removed plugin cache %s", dir))
	return nil
}

// session runs fn and then writes the plugin cache manifest back, even when fn failed.
func (a *App) session(fn func() error) (err error) {
	defer func() {
		if persistErr := a.cache.Persist(); persistErr != nil {
			err = errors.Join(err, persistErr)
		}
	}()
	return fn()
}
