package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/weft/internal/adapters/logger"
	"go.trai.ch/weft/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the config resolver Graft node.
	NodeID graft.ID = "adapter.config_resolver"
	// GlobalNodeID is the unique identifier for the global config resolver Graft node.
	GlobalNodeID graft.ID = "adapter.global_config_resolver"
)

func init() {
	graft.Register(graft.Node[ports.ConfigResolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigResolver, error) {
			return NewResolver(), nil
		},
	})

	graft.Register(graft.Node[ports.GlobalConfigResolver]{
		ID:        GlobalNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.GlobalConfigResolver, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewGlobalResolver(log), nil
		},
	})
}
