// Package manifest loads and saves the plugin cache manifest.
package manifest

import (
	"encoding/json"
	"fmt"

	"go.trai.ch/weft/internal/core/domain"
	"go.trai.ch/weft/internal/core/ports"
	"go.trai.ch/zerr"
)

const corruptPrefix = "failed to deserialize plugin cache manifest, ignoring: "

// Read loads the manifest from the cache root of env. It never fails.
//
// A missing or unreadable file yields an empty manifest. A file that is not valid manifest JSON is
// logged and the whole cache root is removed. A well-formed manifest with another schema
// version is logged and only the plugins directory is removed.
func Read(env ports.Environment) *domain.PluginCacheManifest {
	cacheDir := env.CacheDir()

	manifest, err := decode(env)
	if err != nil {
		env.LogError(corruptPrefix + err.Error())
		_ = env.RemoveDirAll(cacheDir)
		return domain.NewPluginCacheManifest()
	}

	if manifest.SchemaVersion != domain.ManifestSchemaVersion {
		env.LogError(corruptPrefix + fmt.Sprintf(
			"schema version was %d, but expected %d",
			manifest.SchemaVersion, domain.ManifestSchemaVersion,
		))
		_ = env.RemoveDirAll(domain.PluginsDir(cacheDir))
		return domain.NewPluginCacheManifest()
	}

	return manifest
}

func decode(env ports.Environment) (*domain.PluginCacheManifest, error) {
	// An unreadable manifest is treated like a missing one.
	data, err := env.ReadFile(domain.ManifestPath(env.CacheDir()))
	if err != nil {
		return domain.NewPluginCacheManifest(), nil
	}

	if err := validateShape(data); err != nil {
		return nil, err
	}

	var manifest domain.PluginCacheManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, err
	}
	if manifest.Plugins == nil {
		manifest.Plugins = make(map[string]domain.PluginCacheManifestItem)
	}
	return &manifest, nil
}

// Write serializes manifest and replaces the manifest file in the cache root of env.
func Write(manifest *domain.PluginCacheManifest, env ports.Environment) error {
	out := *manifest
	if out.Plugins == nil {
		out.Plugins = make(map[string]domain.PluginCacheManifestItem)
	}

	data, err := json.MarshalIndent(&out, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrManifestMarshalFailed.Error())
	}

	path := domain.ManifestPath(env.CacheDir())
	if err := env.WriteFile(path, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "path", path)
	}
	return nil
}
