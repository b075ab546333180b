package domain

import (
	"go.trai.ch/zerr"
)

// RepositoryKind selects the transport used to fetch from a repository.
type RepositoryKind string

const (
	// RepositoryKindHTTP fetches artifacts over plain HTTP(S) GET.
	RepositoryKindHTTP RepositoryKind = "http"

	// RepositoryKindS3 fetches artifacts from an S3-compatible object store.
	RepositoryKindS3 RepositoryKind = "s3"
)

// Repository describes one artifact source declared in the manifest.
type Repository struct {
	// Name is the key under which modules reference this repository.
	Name InternedString

	// Kind selects the transport ("http" or "s3").
	Kind RepositoryKind

	// Endpoint is the base URL for http repositories, or the host:port
	// of the object store for s3 repositories.
	Endpoint InternedString

	// Bucket is the object store bucket. Only meaningful for s3.
	Bucket InternedString

	// Region is the object store region. Only meaningful for s3.
	Region InternedString

	// Secure enables TLS for s3 endpoints.
	Secure bool
}

// Manifest represents the resolved dependency snapshot loaded from haul.yaml.
// It is a reproducible record: every artifact is pinned to a repository
// path and, optionally, a checksum.
type Manifest struct {
	// Version is the manifest format version. This allows for future
	// schema migrations and backward compatibility.
	Version int

	// Repositories maps repository names to their declarations.
	Repositories map[string]Repository

	// Modules lists the resolved components with their variants.
	Modules []Module
}

// Module is one resolved component together with its published variants.
type Module struct {
	// Component is the component's coordinates.
	Component ComponentRef

	// Variants are the component's published variants.
	Variants []Variant
}

// Variant is one consumable flavour of a component: a named attribute
// bag plus the artifacts that realise it.
type Variant struct {
	// Name is the variant name (e.g., "runtime", "sources").
	Name InternedString

	// Attributes describes the variant (e.g., os=linux, kind=release).
	Attributes Attributes

	// Artifacts are the artifact declarations belonging to this variant.
	Artifacts []ArtifactSpec
}

// ArtifactSpec declares a single artifact of a variant: its identity
// fragments plus where and how to fetch it.
type ArtifactSpec struct {
	// Name is the artifact base name.
	Name InternedString

	// Classifier distinguishes sibling artifacts. May be empty.
	Classifier InternedString

	// Extension is the file extension without the dot.
	Extension InternedString

	// Repository names the repository to fetch from.
	Repository InternedString

	// Path is the object path within the repository.
	Path InternedString

	// SHA256 is the hex-encoded expected checksum. Empty disables verification.
	SHA256 InternedString

	// BuiltBy lists tasks that produce this artifact locally.
	BuiltBy []TaskRef
}

// ID derives the artifact's identity within the given component.
func (s ArtifactSpec) ID(component ComponentRef) ArtifactID {
	return ArtifactID{
		Component:  component,
		Name:       s.Name,
		Classifier: s.Classifier,
		Extension:  s.Extension,
	}
}

// Repository retrieves the repository declaration for the given name.
// Returns ErrUnknownRepository if the manifest does not declare it.
func (m *Manifest) Repository(name string) (Repository, error) {
	repo, exists := m.Repositories[name]
	if !exists {
		err := zerr.With(ErrUnknownRepository, "repository", name)
		return Repository{}, err
	}
	return repo, nil
}
