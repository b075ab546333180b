package resolve

import (
	"go.trai.ch/haul/internal/core/domain"
	"go.trai.ch/haul/internal/core/ports"
)

// Compose combines per-variant sets into one resolution-wide set.
// Empty members are elided and nested composites are inlined; composing
// nothing yields Empty and a single surviving member is returned as-is.
func Compose(sets []ArtifactSet) ArtifactSet {
	flat := make([]ArtifactSet, 0, len(sets))
	for _, s := range sets {
		switch m := s.(type) {
		case emptySet:
			continue
		case *compositeSet:
			flat = append(flat, m.members...)
		default:
			flat = append(flat, s)
		}
	}

	switch len(flat) {
	case 0:
		return Empty
	case 1:
		return flat[0]
	default:
		return &compositeSet{members: flat}
	}
}

// compositeSet delegates every operation to its members in order.
// Scheduling still happens per member set, so failure isolation and
// failure-map ownership stay with the member that owns the artifact.
type compositeSet struct {
	members []ArtifactSet
}

func (c *compositeSet) Artifacts() []ports.Artifact {
	var out []ports.Artifact
	for _, m := range c.members {
		out = append(out, m.Artifacts()...)
	}
	return out
}

func (c *compositeSet) AddPrepareActions(q ports.OperationQueue, v ports.ArtifactVisitor) {
	for _, m := range c.members {
		m.AddPrepareActions(q, v)
	}
}

func (c *compositeSet) Visit(v ports.ArtifactVisitor) {
	for _, m := range c.members {
		m.Visit(v)
	}
}

func (c *compositeSet) CollectBuildDependencies(dest *[]domain.TaskRef) {
	for _, m := range c.members {
		m.CollectBuildDependencies(dest)
	}
}
