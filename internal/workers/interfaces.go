// Package workers provides the background execution primitives of the
// application: a Scheduler that owns every goroutine started on behalf of
// the vault, periodic Jobs, and the Workers aggregate for one-shot sweeps.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that performs one pass of work.
//
// Implementations are expected to block for the duration of their work and
// to return early when ctx is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    // one pass of background processing
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts an ordinary function to the Worker interface.
type WorkerFunc func(ctx context.Context) error

// Run calls f(ctx).
func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
