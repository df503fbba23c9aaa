package plugin

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/weft/internal/adapters/environment"
	"go.trai.ch/weft/internal/core/ports"
)

const (
	// CacheNodeID is the unique identifier for the plugin cache Graft node.
	CacheNodeID graft.ID = "adapter.plugin_cache"
	// ResolverNodeID is the unique identifier for the plugin resolver Graft node.
	ResolverNodeID graft.ID = "adapter.plugin_resolver"
)

func init() {
	graft.Register(graft.Node[*Cache]{
		ID:        CacheNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{environment.NodeID},
		Run: func(ctx context.Context) (*Cache, error) {
			env, err := graft.Dep[ports.Environment](ctx)
			if err != nil {
				return nil, err
			}
			return NewCache(env, NewFetcher(env)), nil
		},
	})

	graft.Register(graft.Node[ports.PluginResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{CacheNodeID},
		Run: func(ctx context.Context) (ports.PluginResolver, error) {
			cache, err := graft.Dep[*Cache](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(cache), nil
		},
	})
}
