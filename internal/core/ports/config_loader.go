package ports

import "go.trai.ch/haul/internal/core/domain"

// ManifestLoader defines the interface for loading the dependency manifest.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ManifestLoader interface {
	// Load discovers and reads the manifest starting from the given working
	// directory and returns the resolved dependency snapshot.
	Load(cwd string) (*domain.Manifest, error)
}
