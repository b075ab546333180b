package resolve

import (
	"context"
	"fmt"
	"sync"

	"go.trai.ch/haul/internal/core/domain"
	"go.trai.ch/haul/internal/core/ports"
	"go.trai.ch/zerr"
)

// failureMap is the per-set concurrent record of materialization failures,
// keyed by artifact identity. Fetch operations write it from queue workers;
// Visit reads it after the caller's drain barrier.
type failureMap struct {
	m sync.Map // map[domain.ArtifactID]error
}

func newFailureMap() *failureMap {
	return &failureMap{}
}

func (f *failureMap) put(id domain.ArtifactID, err error) {
	f.m.Store(id, err)
}

// failure returns the recorded failure for id, or nil.
func (f *failureMap) failure(id domain.ArtifactID) error {
	if v, ok := f.m.Load(id); ok {
		return v.(error)
	}
	return nil
}

// fetchOperation forces one artifact's file on a queue worker. Failures
// land in the owning set's failure map and are never propagated, so one
// broken artifact cannot abort sibling fetches.
type fetchOperation struct {
	artifact ports.Artifact
	failures *failureMap
}

func newFetchOperation(artifact ports.Artifact, failures *failureMap) *fetchOperation {
	return &fetchOperation{
		artifact: artifact,
		failures: failures,
	}
}

// Run materializes the artifact. Panics are captured like errors.
func (op *fetchOperation) Run(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			err := zerr.With(zerr.New("artifact fetch panicked"), "panic", fmt.Sprint(r))
			op.failures.put(op.artifact.ID(), err)
		}
	}()

	if _, err := op.artifact.File(ctx); err != nil {
		op.failures.put(op.artifact.ID(), err)
	}
}

// Description returns the label shown in queue diagnostics.
func (op *fetchOperation) Description() string {
	return "Fetch " + op.artifact.ID().String()
}

// Failure returns the failure recorded for this operation's artifact, if any.
// The queue uses it to close progress vertices with the right outcome.
func (op *fetchOperation) Failure() error {
	return op.failures.failure(op.artifact.ID())
}
