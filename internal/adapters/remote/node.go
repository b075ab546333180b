package remote

import (
	"context"

	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.source.http"

func init() {
	// Registered as the concrete type: the app layer wires one Source
	// per repository kind, so the nodes must stay distinguishable.
	graft.Register(graft.Node[*Source]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Source, error) {
			return NewSource(), nil
		},
	})
}
