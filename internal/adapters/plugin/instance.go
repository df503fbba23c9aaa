package plugin

import (
	"sync"

	"go.trai.ch/weft/internal/core/domain"
	"go.trai.ch/weft/internal/core/ports"
)

var _ ports.Plugin = (*Instance)(nil)

// Instance is a resolved plugin carrying the configuration assigned by the pipeline.
type Instance struct {
	info domain.PluginInfo

	mu           sync.RWMutex
	config       domain.ConfigMap
	globalConfig domain.GlobalConfiguration
}

// NewInstance creates an unconfigured plugin for info.
func NewInstance(info domain.PluginInfo) *Instance {
	return &Instance{info: info, config: domain.ConfigMap{}}
}

// Info returns the plugin descriptor.
func (i *Instance) Info() domain.PluginInfo {
	return i.info
}

// SetConfig replaces the plugin's configuration.
func (i *Instance) SetConfig(pluginConfig domain.ConfigMap, globalConfig domain.GlobalConfiguration) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.config = pluginConfig
	i.globalConfig = globalConfig
}

// Config returns the plugin's own configuration fragment.
func (i *Instance) Config() domain.ConfigMap {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.config
}

// GlobalConfig returns the shared global configuration.
func (i *Instance) GlobalConfig() domain.GlobalConfiguration {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.globalConfig
}
