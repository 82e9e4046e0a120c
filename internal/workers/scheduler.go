// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-vault-guard/internal/logger"
)

// Scheduler tracks every goroutine it starts. All of them observe the
// scheduler context, which is cancelled by Shutdown.
type Scheduler struct {
	ctx    context.Context
	cancel context.CancelFunc
	logger *logger.Logger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewScheduler creates a Scheduler whose goroutines are cancelled when
// parent is done or Shutdown is called.
func NewScheduler(parent context.Context, log *logger.Logger) *Scheduler {
	ctx, cancel := context.WithCancel(parent)
	return &Scheduler{
		ctx:    ctx,
		cancel: cancel,
		logger: log,
	}
}

// Go runs fn on a tracked goroutine. It reports false and does nothing once
// the scheduler is shut down. A panic in fn is logged and swallowed.
func (s *Scheduler) Go(fn func(ctx context.Context)) bool {
	return s.start(s.ctx, func(ctx context.Context) {
		s.safeCall(ctx, fn)
	}, nil)
}

// Every runs fn immediately and then once per interval until the returned
// Job is stopped or the scheduler shuts down. A non-positive interval is
// treated as one second.
func (s *Scheduler) Every(interval time.Duration, fn func(ctx context.Context)) *Job {
	if interval <= 0 {
		interval = time.Second
	}

	jobCtx, cancel := context.WithCancel(s.ctx)
	job := &Job{cancel: cancel, done: make(chan struct{})}

	started := s.start(jobCtx, func(ctx context.Context) {
		s.safeCall(ctx, fn)

		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.safeCall(ctx, fn)
			}
		}
	}, job.done)

	if !started {
		cancel()
		close(job.done)
	}
	return job
}

// Submit runs fn on the scheduler and delivers its result on the returned
// channel, which has a buffer of one and is closed after the result.
// When the scheduler is already shut down the channel is closed without a
// value.
func Submit[T any](s *Scheduler, fn func(ctx context.Context) T) <-chan T {
	out := make(chan T, 1)
	started := s.Go(func(ctx context.Context) {
		defer close(out)
		out <- fn(ctx)
	})
	if !started {
		close(out)
	}
	return out
}

// Shutdown cancels every goroutine and waits for them to return. Later
// calls are no-ops.
func (s *Scheduler) Shutdown() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
}

// Context returns the scheduler context.
func (s *Scheduler) Context() context.Context {
	return s.ctx
}

func (s *Scheduler) start(ctx context.Context, fn func(ctx context.Context), done chan struct{}) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if done != nil {
			defer close(done)
		}
		fn(ctx)
	}()
	return true
}

func (s *Scheduler) safeCall(ctx context.Context, fn func(ctx context.Context)) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().Interface("panic", r).Msg("background task panicked")
		}
	}()
	fn(ctx)
}

// Job is a periodic task started by [Scheduler.Every].
type Job struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Stop cancels the job and waits until its goroutine has returned. After
// Stop returns fn is never called again. Stop is idempotent and must not be
// called from inside the job's own fn.
func (j *Job) Stop() {
	j.cancel()
	<-j.done
}

// Done is closed once the job goroutine has exited.
func (j *Job) Done() <-chan struct{} {
	return j.done
}
