// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/haul/internal/core/domain"
)

// Artifact is a single resolved artifact whose local file may not exist yet.
//
//go:generate go run go.uber.org/mock/mockgen -source=artifact.go -destination=mocks/mock_artifact.go -package=mocks
type Artifact interface {
	// ID returns the artifact's identity. Stable across calls and safe
	// to use as a map key.
	ID() domain.ArtifactID

	// File materializes the artifact and returns the path of the local file.
	//
	// The first call does the work; repeated and concurrent calls return
	// the memoized outcome, success or failure alike.
	File(ctx context.Context) (string, error)

	// BuildDependencies returns the build tasks that produce this artifact
	// locally. Empty for artifacts fetched from repositories.
	BuildDependencies() []domain.TaskRef
}
