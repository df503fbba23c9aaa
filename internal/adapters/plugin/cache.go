// Package plugin materializes plugins from descriptor files and keeps the plugin cache current.
package plugin

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"go.trai.ch/weft/internal/adapters/manifest"
	"go.trai.ch/weft/internal/core/domain"
	"go.trai.ch/weft/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PluginCache = (*Cache)(nil)

// Cache is the plugin cache for one session. The manifest is read on first use and
// written back by Persist.
type Cache struct {
	env     ports.Environment
	fetcher *Fetcher
	now     func() time.Time

	load     sync.Once
	mu       sync.Mutex
	manifest *domain.PluginCacheManifest
}

// NewCache returns a Cache over the cache root of env that fetches through fetcher.
func NewCache(env ports.Environment, fetcher *Fetcher) *Cache {
	return &Cache{
		env:     env,
		fetcher: fetcher,
		now:     time.Now,
	}
}

// items returns the session manifest, reading it on the first call.
func (c *Cache) items() *domain.PluginCacheManifest {
	c.load.Do(func() {
		c.manifest = manifest.Read(c.env)
	})
	return c.manifest
}

// GetPluginInfo returns the descriptor for locator, materializing it into the cache
// when no usable entry exists.
//
// Local files are re-read on every call and reused only while their content hash
// matches. URLs are assumed immutable and never fetched again once their artifact exists.
func (c *Cache) GetPluginInfo(ctx context.Context, locator string) (domain.PluginInfo, error) {
	if domain.IsURLLocator(locator) {
		if info, ok := c.cachedInfo(locator, nil); ok {
			return info, nil
		}
		data, err := c.fetcher.Download(ctx, locator)
		if err != nil {
			return domain.PluginInfo{}, err
		}
		return c.materialize(locator, data, nil)
	}

	data, hash, err := c.fetcher.ReadLocal(locator)
	if err != nil {
		return domain.PluginInfo{}, err
	}
	if info, ok := c.cachedInfo(locator, &hash); ok {
		return info, nil
	}
	return c.materialize(locator, data, &hash)
}

// ForgetPlugin drops the entry for locator along with its artifact.
func (c *Cache) ForgetPlugin(locator string) {
	m := c.items()
	c.mu.Lock()
	item, ok := m.RemoveItem(locator)
	c.mu.Unlock()

	if !ok {
		return
	}
	if path, inside := c.artifactPath(locator, item.Info); inside {
		_ = c.env.RemoveDirAll(path)
	}
}

// Persist writes the manifest back to the cache root.
func (c *Cache) Persist() error {
	m := c.items()
	c.mu.Lock()
	defer c.mu.Unlock()
	return manifest.Write(m, c.env)
}

// cachedInfo returns the entry for locator when its artifact still exists and, for
// local sources, its recorded hash equals hash. Entries whose artifact is gone are removed.
func (c *Cache) cachedInfo(locator string, hash *uint64) (domain.PluginInfo, bool) {
	m := c.items()
	c.mu.Lock()
	item, ok := m.GetItem(locator)
	c.mu.Unlock()
	if !ok {
		return domain.PluginInfo{}, false
	}

	path, inside := c.artifactPath(locator, item.Info)
	if _, err := c.env.ReadFile(path); !inside || err != nil {
		c.mu.Lock()
		m.RemoveItem(locator)
		c.mu.Unlock()
		return domain.PluginInfo{}, false
	}

	if hash != nil && (item.FileHash == nil || *item.FileHash != *hash) {
		return domain.PluginInfo{}, false
	}
	return item.Info, true
}

func (c *Cache) materialize(locator string, data []byte, hash *uint64) (domain.PluginInfo, error) {
	info, err := decodeDescriptor(data)
	if err != nil {
		return domain.PluginInfo{}, zerr.With(err, "locator", locator)
	}

	artifact, err := encodeArtifact(info)
	if err != nil {
		return domain.PluginInfo{}, err
	}
	path, inside := c.artifactPath(locator, info)
	if !inside {
		return domain.PluginInfo{}, zerr.With(zerr.With(domain.ErrPluginDescriptorInvalid, "reason", "artifact path leaves the cache"), "locator", locator)
	}
	if err := c.env.WriteFile(path, artifact); err != nil {
		return domain.PluginInfo{}, zerr.With(zerr.Wrap(err, domain.ErrPluginArtifactWriteFailed.Error()), "path", path)
	}

	m := c.items()
	c.mu.Lock()
	defer c.mu.Unlock()
	if previous, ok := m.GetItem(locator); ok {
		if old, inside := c.artifactPath(locator, previous.Info); inside && old != path {
			_ = c.env.RemoveDirAll(old)
		}
	}
	m.AddItem(locator, domain.PluginCacheManifestItem{
		CreatedTime: uint64(c.now().Unix()), //nolint:gosec // wall clock is after the epoch
		FileHash:    hash,
		Info:        info,
	})
	return info, nil
}

// artifactPath returns where the artifact of the plugin under locator lives. It reports
// false when the path would leave the plugins directory, which only a hand-edited
// manifest or an unvalidated descriptor can cause.
func (c *Cache) artifactPath(locator string, info domain.PluginInfo) (string, bool) {
	dir := domain.PluginsDir(c.env.CacheDir())
	path := filepath.Join(dir, info.ArtifactName(locator))
	return path, filepath.Dir(path) == dir
}
