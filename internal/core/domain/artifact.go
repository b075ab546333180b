// Package domain contains the core domain model: artifact identities,
// variant attributes and the dependency manifest loaded from haul.yaml.
package domain

import "strings"

// ComponentRef identifies a published component by its coordinates.
// It uses InternedString so that the many artifacts of one component
// share a single copy of each coordinate.
type ComponentRef struct {
	// Group is the publishing organisation (e.g., "org.example").
	Group InternedString

	// Module is the component name within the group (e.g., "engine").
	Module InternedString

	// Version is the resolved version string (e.g., "2.1.0").
	Version InternedString
}

// NewComponentRef creates a ComponentRef from raw coordinate strings.
func NewComponentRef(group, module, version string) ComponentRef {
	return ComponentRef{
		Group:   NewInternedString(group),
		Module:  NewInternedString(module),
		Version: NewInternedString(version),
	}
}

// String returns the coordinates in "group:module:version" form.
func (c ComponentRef) String() string {
	return c.Group.String() + ":" + c.Module.String() + ":" + c.Version.String()
}

// ArtifactID is the identity of a single artifact within a component.
// It is comparable and safe to use as a map key; two IDs are equal
// exactly when all coordinate fields are equal.
type ArtifactID struct {
	// Component is the owning component's coordinates.
	Component ComponentRef

	// Name is the artifact base name (e.g., "engine").
	Name InternedString

	// Classifier distinguishes sibling artifacts of one component
	// (e.g., "sources", "linux-amd64"). Empty for the main artifact.
	Classifier InternedString

	// Extension is the file extension without the dot (e.g., "jar", "tar.gz").
	Extension InternedString
}

// FileName returns the artifact's conventional file name,
// "name[-classifier][.extension]".
func (id ArtifactID) FileName() string {
	var b strings.Builder
	b.WriteString(id.Name.String())
	if c := id.Classifier.String(); c != "" {
		b.WriteString("-")
		b.WriteString(c)
	}
	if e := id.Extension.String(); e != "" {
		b.WriteString(".")
		b.WriteString(e)
	}
	return b.String()
}

// String returns a display form combining the file name and the owning
// component, e.g. "engine-sources.jar (org.example:engine:2.1.0)".
func (id ArtifactID) String() string {
	return id.FileName() + " (" + id.Component.String() + ")"
}
