package resolve

import (
	"context"

	"go.trai.ch/haul/internal/core/ports"
)

// DrainQueue is an operation queue whose backlog can be awaited.
type DrainQueue interface {
	ports.OperationQueue

	// Drain runs every operation added since the previous drain and blocks
	// until all of them have finished. It returns an error only for
	// queue-level problems such as cancellation; operation failures are
	// captured by the operations themselves.
	Drain(ctx context.Context) error
}

// MaterializeAll runs one full visit cycle over set: schedule all fetch
// work, drain the queue, then replay the outcomes to v.
//
// The single drain between the two phases is the barrier that guarantees
// Visit observes completed fetches only. When the drain is cut short by
// cancellation, artifacts whose operations never ran are visited as
// successes; the returned error tells the caller the cycle was incomplete.
func MaterializeAll(ctx context.Context, q DrainQueue, set ArtifactSet, v ports.ArtifactVisitor) error {
	set.AddPrepareActions(q, v)

	if err := q.Drain(ctx); err != nil {
		return err
	}

	set.Visit(v)
	return nil
}
