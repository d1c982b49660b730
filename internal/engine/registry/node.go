package registry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xrepo/internal/adapters/logger" //nolint:depguard // Wired in engine layer
	"go.trai.ch/xrepo/internal/core/ports"
)

// NodeID is the unique identifier for the registry factory Graft node.
const NodeID graft.ID = "engine.registry"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Factory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(log), nil
		},
	})
}
