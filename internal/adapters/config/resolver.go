// Package config resolves the weft configuration file and the global configuration.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/weft/internal/core/domain"
	"go.trai.ch/weft/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigResolver = (*Resolver)(nil)

// Properties that are consumed while resolving the file and never reach plugins.
const (
	pluginsProperty  = "plugins"
	includesProperty = "includes"
	excludesProperty = "excludes"
	schemaProperty   = "$schema"
)

// Resolver implements ports.ConfigResolver for YAML and JSON configuration files.
type Resolver struct {
	fs    FileSystem
	getwd func() (string, error)
}

// NewResolver creates a Resolver reading from the local filesystem relative to the process
// working directory.
func NewResolver() *Resolver {
	return &Resolver{fs: NewOSFS(), getwd: os.Getwd}
}

// NewResolverWithFS creates a Resolver over fsys with a fixed working directory.
func NewResolverWithFS(fsys FileSystem, cwd string) *Resolver {
	return &Resolver{fs: fsys, getwd: func() (string, error) { return cwd, nil }}
}

// ResolveFromArgs finds the configuration file selected by args and parses it.
func (r *Resolver) ResolveFromArgs(args domain.ConfigArgs) (*domain.ResolvedConfig, error) {
	cwd, err := r.getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to get working directory")
	}

	path, err := r.configPath(cwd, args.ConfigPath)
	if err != nil {
		return nil, err
	}

	configMap, err := r.readConfigMap(path)
	if err != nil {
		return nil, err
	}

	baseDir := filepath.Dir(path)
	resolved := &domain.ResolvedConfig{BaseDir: baseDir}

	configMap.Take(schemaProperty)
	if resolved.Plugins, err = takeStringList(configMap, pluginsProperty); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	if resolved.Includes, err = takeStringList(configMap, includesProperty); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	if resolved.Excludes, err = takeStringList(configMap, excludesProperty); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	resolved.ConfigMap = configMap

	for i, locator := range resolved.Plugins {
		resolved.Plugins[i] = resolveLocator(baseDir, locator)
	}

	// Plugins given on the command line replace the configured list and are relative to cwd.
	if len(args.Plugins) > 0 {
		resolved.Plugins = make([]string, len(args.Plugins))
		for i, locator := range args.Plugins {
			resolved.Plugins[i] = resolveLocator(cwd, locator)
		}
	}

	return resolved, nil
}

// configPath returns the explicit path made absolute, or walks up from cwd looking for
// weft.yaml and then weft.json in each directory.
func (r *Resolver) configPath(cwd, explicit string) (string, error) {
	if explicit != "" {
		if !filepath.IsAbs(explicit) {
			explicit = filepath.Join(cwd, explicit)
		}
		return explicit, nil
	}

	currentDir := cwd
	for {
		for _, name := range []string{domain.YAMLConfigFileName, domain.JSONConfigFileName} {
			candidate := filepath.Join(currentDir, name)
			if _, err := r.fs.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func (r *Resolver) readConfigMap(path string) (domain.ConfigMap, error) {
	data, err := r.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrConfigNotFound, "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	// yaml.v3 also accepts JSON documents.
	var configMap domain.ConfigMap
	if err := yaml.Unmarshal(data, &configMap); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	if configMap == nil {
		configMap = make(domain.ConfigMap)
	}
	return configMap, nil
}

func takeStringList(configMap domain.ConfigMap, key string) ([]string, error) {
	raw, ok := configMap.Take(key)
	if !ok || raw == nil {
		return nil, nil
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, zerr.With(domain.ErrInvalidStringList, "property", key)
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, zerr.With(domain.ErrInvalidStringList, "property", key)
		}
		out = append(out, s)
	}
	return out, nil
}

// resolveLocator keeps URLs as they are and makes file paths absolute against baseDir.
func resolveLocator(baseDir, locator string) string {
	if domain.IsURLLocator(locator) || filepath.IsAbs(locator) {
		return locator
	}
	return filepath.Join(baseDir, locator)
}
