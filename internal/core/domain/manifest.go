package domain

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// ManifestSchemaVersion is the only plugin cache manifest schema version this build understands.
const ManifestSchemaVersion = 1

// PluginCacheManifest records metadata about previously resolved plugins, keyed by plugin identity
// (usually the locator the plugin was resolved from).
type PluginCacheManifest struct {
	SchemaVersion uint16                             `json:"schemaVersion"`
	Plugins       map[string]PluginCacheManifestItem `json:"plugins"`
}

// NewPluginCacheManifest returns an empty manifest at the current schema version.
func NewPluginCacheManifest() *PluginCacheManifest {
	return &PluginCacheManifest{
		SchemaVersion: ManifestSchemaVersion,
		Plugins:       make(map[string]PluginCacheManifestItem),
	}
}

// AddItem inserts item under key, replacing any previous entry.
func (m *PluginCacheManifest) AddItem(key string, item PluginCacheManifestItem) {
	if m.Plugins == nil {
		m.Plugins = make(map[string]PluginCacheManifestItem)
	}
	m.Plugins[key] = item
}

// GetItem returns the entry stored under key.
func (m *PluginCacheManifest) GetItem(key string) (PluginCacheManifestItem, bool) {
	item, ok := m.Plugins[key]
	return item, ok
}

// RemoveItem deletes the entry stored under key and returns it.
func (m *PluginCacheManifest) RemoveItem(key string) (PluginCacheManifestItem, bool) {
	item, ok := m.Plugins[key]
	if ok {
		delete(m.Plugins, key)
	}
	return item, ok
}

// Keys returns the identities of all entries in sorted order.
func (m *PluginCacheManifest) Keys() []string {
	return slices.Sorted(maps.Keys(m.Plugins))
}

// Len returns the number of entries.
func (m *PluginCacheManifest) Len() int {
	return len(m.Plugins)
}

// PluginCacheManifestItem is the cached metadata of one plugin.
type PluginCacheManifestItem struct {
	// CreatedTime is in seconds since the Unix epoch.
	CreatedTime uint64 `json:"createdTime"`
	// FileHash is the xxhash of the plugin source, nil when not computed.
	FileHash *uint64    `json:"fileHash,omitempty"`
	Info     PluginInfo `json:"info"`
}

// PluginInfo describes a plugin.
type PluginInfo struct {
	Name            string   `json:"name"            yaml:"name"`
	Version         string   `json:"version"         yaml:"version"`
	ConfigKey       string   `json:"configKey"       yaml:"configKey"`
	FileExtensions  []string `json:"fileExtensions"  yaml:"fileExtensions"`
	HelpURL         string   `json:"helpUrl"         yaml:"helpUrl"`
	ConfigSchemaURL string   `json:"configSchemaUrl" yaml:"configSchemaUrl"`
}

// Validate checks that the descriptor names the plugin, its config key and a semantic version.
func (p PluginInfo) Validate() error {
	if p.Name == "" {
		return zerr.With(ErrPluginDescriptorInvalid, "reason", "missing name")
	}
	for field, value := range map[string]string{"name": p.Name, "version": p.Version} {
		if strings.ContainsAny(value, `/\`) || strings.Contains(value, "..") {
			return zerr.With(zerr.With(ErrPluginDescriptorInvalid, "reason", field+" must not contain path elements"), "plugin", p.Name)
		}
	}
	if p.ConfigKey == "" {
		return zerr.With(zerr.With(ErrPluginDescriptorInvalid, "reason", "missing configKey"), "plugin", p.Name)
	}
	if _, err := semver.NewVersion(p.Version); err != nil {
		return zerr.With(zerr.Wrap(err, ErrPluginDescriptorInvalid.Error()), "plugin", p.Name)
	}
	return nil
}

// ArtifactName returns the file name of the artifact cached for the plugin under key.
// The key's hash keeps plugins with the same name and version apart.
func (p PluginInfo) ArtifactName(key string) string {
	return fmt.Sprintf("%s-%s-%016x.json", p.Name, p.Version, xxhash.Sum64String(key))
}
