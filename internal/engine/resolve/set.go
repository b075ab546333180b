// Package resolve implements variant-scoped artifact sets with deferred
// materialization.
//
// A set is consumed in two phases: AddPrepareActions schedules fetch work
// onto a shared queue, and Visit replays per-artifact outcomes once the
// queue has been drained. The split keeps all I/O on the queue's workers
// and turns partial failure into data instead of control flow.
package resolve

import (
	"slices"

	"go.trai.ch/haul/internal/core/domain"
	"go.trai.ch/haul/internal/core/ports"
)

// ArtifactSet is a resolved group of artifacts sharing one variant.
type ArtifactSet interface {
	// Artifacts returns the set's artifacts. The contents never change
	// after construction, whatever the outcome of materialization.
	Artifacts() []ports.Artifact

	// AddPrepareActions schedules one fetch operation per artifact onto q.
	// It is a no-op when v does not require artifact files. Call it once
	// per visit cycle; a second call schedules the work again.
	AddPrepareActions(q ports.OperationQueue, v ports.ArtifactVisitor)

	// Visit replays each artifact's outcome to v in the set's order.
	// Failed artifacts are reported through v.VisitFailure; Visit itself
	// never fails. Callers drain the queue before visiting.
	Visit(v ports.ArtifactVisitor)

	// CollectBuildDependencies appends the build tasks backing the set's
	// artifacts to dest.
	CollectBuildDependencies(dest *[]domain.TaskRef)
}

// Empty is the shared set with no artifacts. Both phases are no-ops.
var Empty ArtifactSet = emptySet{}

// ForVariant creates the artifact set for one variant.
//
// Zero artifacts yield the shared Empty set and exactly one a singleton;
// anything else gets a snapshot with duplicate identities collapsed. The
// choice is made on the raw input length, so an input whose duplicates
// collapse to a single entry still gets the general form.
func ForVariant(attrs domain.Attributes, artifacts []ports.Artifact) ArtifactSet {
	switch len(artifacts) {
	case 0:
		return Empty
	case 1:
		return &singletonSet{
			attrs:    attrs,
			artifact: artifacts[0],
			failures: newFailureMap(),
		}
	default:
		return &variantSet{
			attrs:     attrs,
			artifacts: dedupeByID(artifacts),
			failures:  newFailureMap(),
		}
	}
}

// dedupeByID collapses duplicate artifact identities, keeping the
// first-seen instance and order.
func dedupeByID(artifacts []ports.Artifact) []ports.Artifact {
	seen := make(map[domain.ArtifactID]struct{}, len(artifacts))
	out := make([]ports.Artifact, 0, len(artifacts))
	for _, a := range artifacts {
		id := a.ID()
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, a)
	}
	return out
}

// emptySet is the do-nothing set returned for variants without artifacts.
type emptySet struct{}

func (emptySet) Artifacts() []ports.Artifact { return nil }

func (emptySet) AddPrepareActions(ports.OperationQueue, ports.ArtifactVisitor) {}

func (emptySet) Visit(ports.ArtifactVisitor) {}

func (emptySet) CollectBuildDependencies(*[]domain.TaskRef) {}

// singletonSet holds exactly one artifact.
type singletonSet struct {
	attrs    domain.Attributes
	artifact ports.Artifact
	failures *failureMap
}

func (s *singletonSet) Artifacts() []ports.Artifact {
	return []ports.Artifact{s.artifact}
}

func (s *singletonSet) AddPrepareActions(q ports.OperationQueue, v ports.ArtifactVisitor) {
	if !v.RequiresArtifactFiles() {
		return
	}
	q.Add(newFetchOperation(s.artifact, s.failures))
}

func (s *singletonSet) Visit(v ports.ArtifactVisitor) {
	visitOne(v, s.attrs, s.artifact, s.failures)
}

func (s *singletonSet) CollectBuildDependencies(dest *[]domain.TaskRef) {
	*dest = append(*dest, s.artifact.BuildDependencies()...)
}

// variantSet holds the deduplicated snapshot of two or more raw artifacts.
type variantSet struct {
	attrs     domain.Attributes
	artifacts []ports.Artifact
	failures  *failureMap
}

func (s *variantSet) Artifacts() []ports.Artifact {
	return slices.Clone(s.artifacts)
}

func (s *variantSet) AddPrepareActions(q ports.OperationQueue, v ports.ArtifactVisitor) {
	if !v.RequiresArtifactFiles() {
		return
	}
	for _, a := range s.artifacts {
		q.Add(newFetchOperation(a, s.failures))
	}
}

func (s *variantSet) Visit(v ports.ArtifactVisitor) {
	for _, a := range s.artifacts {
		visitOne(v, s.attrs, a, s.failures)
	}
}

func (s *variantSet) CollectBuildDependencies(dest *[]domain.TaskRef) {
	for _, a := range s.artifacts {
		*dest = append(*dest, a.BuildDependencies()...)
	}
}

// visitOne replays a single artifact's outcome. A recorded failure wins
// over the artifact itself.
func visitOne(v ports.ArtifactVisitor, attrs domain.Attributes, a ports.Artifact, failures *failureMap) {
	if err := failures.failure(a.ID()); err != nil {
		v.VisitFailure(err)
		return
	}
	v.VisitArtifact(attrs, a)
}
