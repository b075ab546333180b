package ports

import (
	"context"
	"io"

	"go.trai.ch/haul/internal/core/domain"
)

// Source fetches artifact bytes from one kind of repository.
//
//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type Source interface {
	// Fetch streams the object at path within repo into dst.
	// Returns domain.ErrArtifactNotFound if the repository has no such object.
	Fetch(ctx context.Context, repo domain.Repository, path string, dst io.Writer) error
}
