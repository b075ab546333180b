package cas

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/haul/internal/core/ports"
)

const NodeID graft.ID = "adapter.file_store"

func init() {
	graft.Register(graft.Node[ports.FileStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.FileStore, error) {
			root := os.Getenv("HAUL_STORE_DIR")
			if root == "" {
				root = "."
			}
			store, err := NewStore(root)
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}
