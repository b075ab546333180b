package ports

import "go.trai.ch/haul/internal/core/domain"

// ArtifactVisitor receives the outcome of visiting an artifact set.
//
//go:generate mockgen -source=visitor.go -destination=mocks/mock_visitor.go -package=mocks
type ArtifactVisitor interface {
	// RequiresArtifactFiles reports whether the visitor will consume
	// artifact files. When false, sets skip scheduling fetch work and
	// every artifact is visited as a success.
	RequiresArtifactFiles() bool

	// VisitArtifact is called once per available artifact, together with
	// the attributes of the variant that owns it.
	VisitArtifact(variant domain.Attributes, artifact Artifact)

	// VisitFailure is called once per artifact whose materialization failed.
	VisitFailure(err error)
}
