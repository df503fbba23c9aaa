package plugin

import (
	"context"

	"go.trai.ch/weft/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

var _ ports.PluginResolver = (*Resolver)(nil)

// Resolver implements ports.PluginResolver on top of a Cache.
type Resolver struct {
	cache *Cache
}

// NewResolver creates a Resolver backed by cache.
func NewResolver(cache *Cache) *Resolver {
	return &Resolver{cache: cache}
}

// ResolvePlugins materializes every locator concurrently. The result has the order of locators.
func (r *Resolver) ResolvePlugins(ctx context.Context, locators []string) ([]ports.Plugin, error) {
	plugins := make([]ports.Plugin, len(locators))

	g, ctx := errgroup.WithContext(ctx)
	for i, locator := range locators {
		g.Go(func() error {
			info, err := r.cache.GetPluginInfo(ctx, locator)
			if err != nil {
				return err
			}
			plugins[i] = NewInstance(info)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return plugins, nil
}
