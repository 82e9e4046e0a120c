package workers

import (
	"context"
	"errors"
)

type Workers struct {
	workers []Worker
}

// NewWorkers groups workers so they can be run as a single pass.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run runs every worker in order. A failing worker does not stop the rest;
// the failures are joined. Workers not yet started when ctx is cancelled
// are skipped.
func (w *Workers) Run(ctx context.Context) error {
	var errs []error
	for _, worker := range w.workers {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := worker.Run(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
