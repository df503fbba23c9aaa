package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/weft/internal/adapters/config"      //nolint:depguard // Wired in app layer
	"go.trai.ch/weft/internal/adapters/environment" //nolint:depguard // Wired in app layer
	"go.trai.ch/weft/internal/adapters/logger"      //nolint:depguard // Wired in app layer
	"go.trai.ch/weft/internal/adapters/plugin"      //nolint:depguard // Wired in app layer
	"go.trai.ch/weft/internal/core/ports"
	"go.trai.ch/weft/internal/engine/pipeline"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds what the command line entry point needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			pipeline.NodeID,
			plugin.CacheNodeID,
			environment.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	configResolver, err := graft.Dep[ports.ConfigResolver](ctx)
	if err != nil {
		return nil, err
	}
	p, err := graft.Dep[*pipeline.Pipeline](ctx)
	if err != nil {
		return nil, err
	}
	cache, err := graft.Dep[*plugin.Cache](ctx)
	if err != nil {
		return nil, err
	}
	env, err := graft.Dep[ports.Environment](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return New(configResolver, p, cache, env, log), nil
}
