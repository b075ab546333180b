// Package queue implements the shared work queue that artifact sets
// schedule their fetch operations onto.
package queue

import (
	"context"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"go.trai.ch/haul/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Queue is a buffered operation queue drained in batches.
//
// Add and Drain may be called from different goroutines. Operations
// added while a drain runs land in the next batch, and a drained queue
// is empty and ready for reuse.
type Queue struct {
	tracer      ports.Tracer
	telemetry   ports.Telemetry
	parallelism int

	mu      sync.Mutex
	backlog []ports.Operation
}

// New creates a queue running up to parallelism operations concurrently
// per drain. Zero or negative parallelism means one worker per CPU.
func New(tracer ports.Tracer, telemetry ports.Telemetry, parallelism int) *Queue {
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	return &Queue{
		tracer:      tracer,
		telemetry:   telemetry,
		parallelism: parallelism,
	}
}

// Add enqueues the operation for the next drain.
func (q *Queue) Add(op ports.Operation) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.backlog = append(q.backlog, op)
}

// take removes and returns the current batch.
func (q *Queue) take() []ports.Operation {
	q.mu.Lock()
	defer q.mu.Unlock()
	batch := q.backlog
	q.backlog = nil
	return batch
}

// Drain runs every operation added since the previous drain and blocks
// until all of them have finished. Operation failures stay with the
// operations that captured them; Drain reports only queue-level
// problems such as cancellation.
func (q *Queue) Drain(ctx context.Context) error {
	batch := q.take()
	if len(batch) == 0 {
		return nil
	}

	descriptions := make([]string, len(batch))
	for i, op := range batch {
		descriptions[i] = op.Description()
	}

	ctx, span := q.tracer.Start(ctx, "Draining queue")
	defer span.End()
	span.SetAttribute("haul.run_id", uuid.NewString())
	span.SetAttribute("haul.operations", len(batch))

	q.tracer.EmitPlan(ctx, descriptions)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(q.parallelism)

	for _, op := range batch {
		op := op // capture loop var
		g.Go(func() error {
			return q.runOne(ctx, op)
		})
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// runOne executes a single operation under its own span and vertex.
func (q *Queue) runOne(ctx context.Context, op ports.Operation) error {
	// Operations skipped by cancellation must not run at all; their
	// artifacts read as unfetched rather than failed.
	if err := ctx.Err(); err != nil {
		return err
	}

	ctx, span := q.tracer.Start(ctx, op.Description())
	defer span.End()

	ctx, vertex := q.telemetry.Record(ctx, op.Description())
	op.Run(ctx)

	err := operationFailure(op)
	if err != nil {
		span.RecordError(err)
	}
	vertex.Complete(err)
	return nil
}

// operationFailure reads the outcome from operations that expose one.
func operationFailure(op ports.Operation) error {
	if f, ok := op.(interface{ Failure() error }); ok {
		return f.Failure()
	}
	return nil
}
