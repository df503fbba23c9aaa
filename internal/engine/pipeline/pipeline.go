// Package pipeline turns a resolved configuration into configured plugin instances.
package pipeline

import (
	"context"
	"errors"

	"go.trai.ch/weft/internal/core/domain"
	"go.trai.ch/weft/internal/core/ports"
	"go.trai.ch/zerr"
)

// Span names, one per stage.
const (
	spanConfig      = "config.resolve"
	spanMaterialize = "plugins.materialize"
	spanExtract     = "plugins.extract_config"
	spanGlobal      = "config.global"
)

// Pipeline resolves plugins and hands each one its configuration.
type Pipeline struct {
	configResolver ports.ConfigResolver
	pluginResolver ports.PluginResolver
	globalResolver ports.GlobalConfigResolver
	tracer         ports.Tracer
}

// New creates a Pipeline with the given dependencies.
func New(
	configResolver ports.ConfigResolver,
	pluginResolver ports.PluginResolver,
	globalResolver ports.GlobalConfigResolver,
	tracer ports.Tracer,
) *Pipeline {
	return &Pipeline{
		configResolver: configResolver,
		pluginResolver: pluginResolver,
		globalResolver: globalResolver,
		tracer:         tracer,
	}
}

// GetPluginsFromArgs resolves the configuration selected by args and runs the pipeline.
// A configuration that cannot be resolved yields no plugins and no error; callers that
// need the configuration report that failure themselves.
func (p *Pipeline) GetPluginsFromArgs(ctx context.Context, args domain.ConfigArgs) ([]ports.Plugin, error) {
	_, span := p.tracer.Start(ctx, spanConfig)
	cfg, err := p.configResolver.ResolveFromArgs(args)
	if err != nil {
		span.RecordError(err)
		span.End()
		return nil, nil
	}
	span.End()

	return p.ResolvePlugins(ctx, args, cfg)
}

// ResolvePluginsAndErrIfEmpty runs the pipeline and fails with domain.ErrNoPluginsFound
// when it yields no plugins.
func (p *Pipeline) ResolvePluginsAndErrIfEmpty(
	ctx context.Context,
	args domain.ConfigArgs,
	cfg *domain.ResolvedConfig,
) ([]ports.Plugin, error) {
	plugins, err := p.ResolvePlugins(ctx, args, cfg)
	if err != nil {
		return nil, err
	}
	if len(plugins) == 0 {
		return nil, domain.ErrNoPluginsFound
	}
	return plugins, nil
}

// ResolvePlugins materializes the plugins of cfg in order, gives each plugin the
// configuration under its config key and computes the global configuration from the
// properties left over. cfg.ConfigMap is not modified.
//
// Every failure matches domain.ErrResolvePlugins.
func (p *Pipeline) ResolvePlugins(
	ctx context.Context,
	args domain.ConfigArgs,
	cfg *domain.ResolvedConfig,
) ([]ports.Plugin, error) {
	plugins, err := p.materialize(ctx, cfg.Plugins)
	if err != nil {
		return nil, errors.Join(domain.ErrResolvePlugins, err)
	}

	configMap := cfg.ConfigMap.Clone()

	fragments, err := p.extract(ctx, plugins, configMap)
	if err != nil {
		return nil, errors.Join(domain.ErrResolvePlugins, err)
	}

	globalConfig, err := p.global(ctx, configMap, domain.GlobalConfigOptions{
		// Leftover properties may belong to plugins filtered out on the command line.
		CheckUnknownPropertyDiagnostics: len(args.Plugins) == 0,
	})
	if err != nil {
		return nil, errors.Join(domain.ErrResolvePlugins, err)
	}

	for i, plugin := range plugins {
		plugin.SetConfig(fragments[i], globalConfig)
	}
	return plugins, nil
}

func (p *Pipeline) materialize(ctx context.Context, locators []string) ([]ports.Plugin, error) {
	ctx, span := p.tracer.Start(ctx, spanMaterialize)
	defer span.End()
	span.SetAttribute("locators", locators)

	plugins, err := p.pluginResolver.ResolvePlugins(ctx, locators)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("count", len(plugins))
	return plugins, nil
}

func (p *Pipeline) extract(
	ctx context.Context,
	plugins []ports.Plugin,
	configMap domain.ConfigMap,
) ([]domain.ConfigMap, error) {
	_, span := p.tracer.Start(ctx, spanExtract)
	defer span.End()

	fragments := make([]domain.ConfigMap, len(plugins))
	for i, plugin := range plugins {
		fragment, err := takePluginConfig(configMap, plugin.Info().ConfigKey)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		fragments[i] = fragment
	}
	return fragments, nil
}

func (p *Pipeline) global(
	ctx context.Context,
	configMap domain.ConfigMap,
	opts domain.GlobalConfigOptions,
) (domain.GlobalConfiguration, error) {
	_, span := p.tracer.Start(ctx, spanGlobal)
	defer span.End()
	span.SetAttribute("check_unknown_properties", opts.CheckUnknownPropertyDiagnostics)

	globalConfig, err := p.globalResolver.Resolve(configMap, opts)
	if err != nil {
		span.RecordError(err)
		return domain.GlobalConfiguration{}, err
	}
	return globalConfig, nil
}

// takePluginConfig removes the object stored under key. A missing key yields an empty map.
func takePluginConfig(configMap domain.ConfigMap, key string) (domain.ConfigMap, error) {
	raw, ok := configMap.Take(key)
	if !ok {
		return domain.ConfigMap{}, nil
	}

	switch v := raw.(type) {
	case map[string]any:
		return domain.ConfigMap(v), nil
	case domain.ConfigMap:
		return v, nil
	default:
		return nil, zerr.With(domain.ErrPluginConfigNotObject, "property", key)
	}
}
