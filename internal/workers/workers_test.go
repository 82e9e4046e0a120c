// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
	err      error
}

func (m *mockWorker) Run(context.Context) error {
	m.runCount++
	return m.err
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	require.NoError(t, ws.Run(context.Background()))

	for i, w := range []*mockWorker{w1, w2, w3} {
		assert.Equal(t, 1, w.runCount, "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	assert.NoError(t, ws.Run(context.Background()))
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	assert.NoError(t, ws.Run(context.Background()))
}

func TestWorkers_Run_Order(t *testing.T) {
	order := []int{}

	// orderWorker records its index into the shared order slice
	newOrderWorker := func(id int) Worker {
		return &orderWorker{id: id, order: &order}
	}

	ws := NewWorkers(
		newOrderWorker(1),
		newOrderWorker(2),
		newOrderWorker(3),
	)
	require.NoError(t, ws.Run(context.Background()))

	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestWorkers_Run_ContinuesPastFailures(t *testing.T) {
	errFirst := errors.New("first")
	errThird := errors.New("third")

	w1 := &mockWorker{err: errFirst}
	w2 := &mockWorker{}
	w3 := &mockWorker{err: errThird}

	err := NewWorkers(w1, w2, w3).Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, errFirst)
	assert.ErrorIs(t, err, errThird)
	assert.Equal(t, 1, w2.runCount)
	assert.Equal(t, 1, w3.runCount)
}

func TestWorkers_Run_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := &mockWorker{}
	err := NewWorkers(w).Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, w.runCount)
}

func TestWorkers_Run_MultipleRuns(t *testing.T) {
	w := &mockWorker{}
	ws := NewWorkers(w)

	for range 3 {
		require.NoError(t, ws.Run(context.Background()))
	}

	assert.Equal(t, 3, w.runCount)
}

func TestWorkerFunc(t *testing.T) {
	called := false
	var w Worker = WorkerFunc(func(context.Context) error {
		called = true
		return nil
	})

	require.NoError(t, w.Run(context.Background()))
	assert.True(t, called)
}

// orderWorker is a helper that appends its ID to a shared slice on Run.
type orderWorker struct {
	id    int
	order *[]int
}

func (o *orderWorker) Run(context.Context) error {
	*o.order = append(*o.order, o.id)
	return nil
}
