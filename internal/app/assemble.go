package app

import (
	"go.trai.ch/haul/internal/core/domain"
	"go.trai.ch/haul/internal/core/ports"
	"go.trai.ch/haul/internal/engine/resolve"
	"go.trai.ch/zerr"
)

// assemble builds one artifact set per selected variant. Each artifact
// is bound to the source matching its repository's kind and to the
// shared file store; nothing is fetched here.
func (a *App) assemble(manifest *domain.Manifest, variants []string) ([]resolve.ArtifactSet, error) {
	var filter map[string]bool
	if len(variants) > 0 {
		filter = make(map[string]bool, len(variants))
		for _, name := range variants {
			filter[name] = false
		}
	}

	var sets []resolve.ArtifactSet
	for _, module := range manifest.Modules {
		for _, variant := range module.Variants {
			if filter != nil {
				if _, wanted := filter[variant.Name.String()]; !wanted {
					continue
				}
				filter[variant.Name.String()] = true
			}

			artifacts, err := a.variantArtifacts(manifest, module.Component, variant)
			if err != nil {
				return nil, err
			}
			sets = append(sets, resolve.ForVariant(variant.Attributes, artifacts))
		}
	}

	for name, matched := range filter {
		if !matched {
			return nil, zerr.With(domain.ErrUnknownVariant, "variant", name)
		}
	}
	return sets, nil
}

func (a *App) variantArtifacts(manifest *domain.Manifest, component domain.ComponentRef, variant domain.Variant) ([]ports.Artifact, error) {
	artifacts := make([]ports.Artifact, 0, len(variant.Artifacts))
	for _, spec := range variant.Artifacts {
		repo, err := manifest.Repository(spec.Repository.String())
		if err != nil {
			return nil, err
		}

		source, ok := a.sources[repo.Kind]
		if !ok {
			err := zerr.With(domain.ErrUnknownRepositoryKind, "repository", repo.Name.String())
			return nil, zerr.With(err, "kind", string(repo.Kind))
		}

		artifacts = append(artifacts, resolve.NewArtifact(
			spec.ID(component),
			resolve.FetchSpec{
				Repository: repo,
				Path:       spec.Path.String(),
				SHA256:     spec.SHA256.String(),
				BuiltBy:    spec.BuiltBy,
			},
			source,
			a.store,
		))
	}
	return artifacts, nil
}
