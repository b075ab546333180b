package ports

import "context"

//go:generate mockgen -source=queue.go -destination=mocks/mock_queue.go -package=mocks

// Operation is a deferred unit of fetch work.
type Operation interface {
	// Run executes the operation. Implementations capture their own
	// failures; Run never reports one.
	Run(ctx context.Context)

	// Description returns a human-readable label for queue diagnostics.
	Description() string
}

// OperationQueue accepts operations for later concurrent execution.
//
// Scheduling and execution are decoupled: Add never blocks on the
// operation running. Callers that need completion drain the concrete
// queue before reading any state the operations write.
type OperationQueue interface {
	// Add enqueues the operation.
	Add(op Operation)
}
