package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/weft/internal/adapters/config"
	"go.trai.ch/weft/internal/adapters/plugin"
	"go.trai.ch/weft/internal/adapters/telemetry"
	"go.trai.ch/weft/internal/core/ports"
)

// NodeID is the unique identifier for the resolution pipeline Graft node.
const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			plugin.ResolverNodeID,
			config.GlobalNodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Pipeline, error) {
			configResolver, err := graft.Dep[ports.ConfigResolver](ctx)
			if err != nil {
				return nil, err
			}
			pluginResolver, err := graft.Dep[ports.PluginResolver](ctx)
			if err != nil {
				return nil, err
			}
			globalResolver, err := graft.Dep[ports.GlobalConfigResolver](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return New(configResolver, pluginResolver, globalResolver, tracer), nil
		},
	})
}
