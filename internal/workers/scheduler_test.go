package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-guard/internal/logger"
)

func newTestScheduler(t *testing.T) *Scheduler {
	t.Helper()
	s := NewScheduler(context.Background(), logger.Nop())
	t.Cleanup(s.Shutdown)
	return s
}

// ── Go ────────────────────────────────────────────────────────────────────────

func TestScheduler_Go_RunsFunction(t *testing.T) {
	s := newTestScheduler(t)
	done := make(chan struct{})

	ok := s.Go(func(context.Context) { close(done) })

	require.True(t, ok)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("function was not run")
	}
}

func TestScheduler_Go_RecoversPanic(t *testing.T) {
	s := newTestScheduler(t)
	done := make(chan struct{})

	s.Go(func(context.Context) { panic("boom") })
	s.Go(func(context.Context) { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler stopped after a panic")
	}
}

func TestScheduler_Go_AfterShutdown(t *testing.T) {
	s := NewScheduler(context.Background(), logger.Nop())
	s.Shutdown()

	var called atomic.Bool
	ok := s.Go(func(context.Context) { called.Store(true) })

	assert.False(t, ok)
	assert.False(t, called.Load())
}

// ── Every ─────────────────────────────────────────────────────────────────────

func TestScheduler_Every_EmitsImmediately(t *testing.T) {
	s := newTestScheduler(t)
	first := make(chan struct{}, 1)

	job := s.Every(time.Hour, func(context.Context) {
		select {
		case first <- struct{}{}:
		default:
		}
	})
	defer job.Stop()

	select {
	case <-first:
	case <-time.After(time.Second):
		t.Fatal("job did not run immediately")
	}
}

func TestScheduler_Every_TicksUntilStopped(t *testing.T) {
	s := newTestScheduler(t)
	var count atomic.Int32

	job := s.Every(5*time.Millisecond, func(context.Context) { count.Add(1) })

	require.Eventually(t, func() bool { return count.Load() >= 3 }, time.Second, time.Millisecond)

	job.Stop()
	after := count.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, after, count.Load(), "job ran after Stop returned")
}

func TestScheduler_Every_StopIsIdempotent(t *testing.T) {
	s := newTestScheduler(t)
	job := s.Every(time.Millisecond, func(context.Context) {})

	job.Stop()
	job.Stop()

	select {
	case <-job.Done():
	default:
		t.Fatal("Done is not closed after Stop")
	}
}

func TestScheduler_Every_AfterShutdown(t *testing.T) {
	s := NewScheduler(context.Background(), logger.Nop())
	s.Shutdown()

	var called atomic.Bool
	job := s.Every(time.Millisecond, func(context.Context) { called.Store(true) })
	job.Stop()

	assert.False(t, called.Load())
}

func TestScheduler_Shutdown_StopsJobs(t *testing.T) {
	s := NewScheduler(context.Background(), logger.Nop())
	var count atomic.Int32
	job := s.Every(time.Millisecond, func(context.Context) { count.Add(1) })

	s.Shutdown()
	after := count.Load()
	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, after, count.Load())
	<-job.Done()
}

// ── Submit ────────────────────────────────────────────────────────────────────

func TestSubmit_DeliversResult(t *testing.T) {
	s := newTestScheduler(t)

	result := Submit(s, func(context.Context) int { return 42 })

	v, ok := <-result
	require.True(t, ok)
	assert.Equal(t, 42, v)

	_, ok = <-result
	assert.False(t, ok, "channel should be closed after the result")
}

func TestSubmit_AfterShutdown(t *testing.T) {
	s := NewScheduler(context.Background(), logger.Nop())
	s.Shutdown()

	_, ok := <-Submit(s, func(context.Context) string { return "never" })
	assert.False(t, ok)
}

func TestSubmit_ContextCancelledOnShutdown(t *testing.T) {
	s := NewScheduler(context.Background(), logger.Nop())
	started := make(chan struct{})

	result := Submit(s, func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	})
	<-started
	s.Shutdown()

	assert.ErrorIs(t, <-result, context.Canceled)
}
