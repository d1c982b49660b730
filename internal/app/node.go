package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xrepo/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/xrepo/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/xrepo/internal/adapters/nuget"  //nolint:depguard // Wired in app layer
	"go.trai.ch/xrepo/internal/core/ports"
	"go.trai.ch/xrepo/internal/engine/registry"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			config.NodeID,
			nuget.NodeID,
			registry.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[ports.SettingsLoader](ctx)
	if err != nil {
		return nil, err
	}

	normalizer, err := graft.Dep[ports.VersionNormalizer](ctx)
	if err != nil {
		return nil, err
	}

	registries, err := graft.Dep[*registry.Factory](ctx)
	if err != nil {
		return nil, err
	}

	return New(log, settings, normalizer, registries), nil
}
