package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/haul/internal/adapters/cas"
	"go.trai.ch/haul/internal/adapters/config"
	"go.trai.ch/haul/internal/adapters/fs"
	"go.trai.ch/haul/internal/adapters/logger"
	"go.trai.ch/haul/internal/adapters/objstore"
	"go.trai.ch/haul/internal/adapters/remote"
	"go.trai.ch/haul/internal/adapters/telemetry"
	"go.trai.ch/haul/internal/adapters/telemetry/progrock"
	"go.trai.ch/haul/internal/core/domain"
	"go.trai.ch/haul/internal/core/ports"
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
			config.NodeID,
			cas.NodeID,
			fs.HasherNodeID,
			logger.NodeID,
			remote.NodeID,
			objstore.NodeID,
			telemetry.TracerNodeID,
			progrock.NodeID,
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
	loader, err := graft.Dep[ports.ManifestLoader](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.FileStore](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	httpSource, err := graft.Dep[*remote.Source](ctx)
	if err != nil {
		return nil, err
	}

	s3Source, err := graft.Dep[*objstore.Source](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	progress, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	sources := map[domain.RepositoryKind]ports.Source{
		domain.RepositoryKindHTTP: httpSource,
		domain.RepositoryKindS3:   s3Source,
	}

	return New(loader, sources, store, hasher, log, tracer, progress), nil
}
