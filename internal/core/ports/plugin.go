package ports

import (
	"context"

	"go.trai.ch/weft/internal/core/domain"
)

// Plugin is a materialized formatting plugin.
//
//go:generate go run go.uber.org/mock/mockgen -source=plugin.go -destination=mocks/mock_plugin.go -package=mocks
type Plugin interface {
	// Info returns the plugin descriptor.
	Info() domain.PluginInfo

	// SetConfig attaches the plugin's own configuration fragment and the shared global configuration.
	SetConfig(pluginConfig domain.ConfigMap, globalConfig domain.GlobalConfiguration)

	// Config returns the fragment passed to SetConfig.
	Config() domain.ConfigMap

	// GlobalConfig returns the global configuration passed to SetConfig.
	GlobalConfig() domain.GlobalConfiguration
}

// PluginResolver materializes plugin instances from locators.
type PluginResolver interface {
	// ResolvePlugins returns one plugin per locator, in the same order.
	ResolvePlugins(ctx context.Context, locators []string) ([]Plugin, error)
}

// PluginCache holds the session's view of the plugin cache manifest.
type PluginCache interface {
	// ForgetPlugin drops the entry for locator and its artifact.
	ForgetPlugin(locator string)

	// Persist writes the manifest back to the cache root.
	Persist() error
}
