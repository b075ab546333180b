package ports

import "go.trai.ch/haul/internal/core/domain"

// FileStore is the local landing area for fetched artifact files.
//
// A fetch writes into a staged file first; only a verified staged file is
// committed to its final location. Failed fetches discard their staging.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type FileStore interface {
	// Stage creates an empty staging file for the artifact and returns its path.
	Stage(id domain.ArtifactID) (string, error)

	// Commit moves a staged file into its final location and returns that path.
	Commit(id domain.ArtifactID, staged string) (string, error)

	// Discard removes a staged file after a failed fetch.
	Discard(staged string) error
}
