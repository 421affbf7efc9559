// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingWorker tracks how many times Run was called.
type countingWorker struct {
	runCount atomic.Int32
	err      error
}

func (m *countingWorker) Run(context.Context) error {
	m.runCount.Add(1)
	return m.err
}

func TestPool_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &countingWorker{}, &countingWorker{}, &countingWorker{}

	err := NewPool(2).Run(context.Background(), w1, w2, w3)
	require.NoError(t, err)

	for i, w := range []*countingWorker{w1, w2, w3} {
		assert.Equal(t, int32(1), w.runCount.Load(), "worker[%d]", i)
	}
}

func TestPool_Run_Empty(t *testing.T) {
	assert.NoError(t, NewPool(4).Run(context.Background()))
}

func TestPool_Run_SequentialKeepsOrder(t *testing.T) {
	var order []int
	newOrderWorker := func(id int) Worker {
		return WorkerFunc(func(context.Context) error {
			order = append(order, id)
			return nil
		})
	}

	err := NewPool(1).Run(context.Background(), newOrderWorker(1), newOrderWorker(2), newOrderWorker(3))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestPool_Run_FailureDoesNotStopSiblings(t *testing.T) {
	errA := errors.New("a failed")
	errC := errors.New("c failed")
	a := &countingWorker{err: errA}
	b := &countingWorker{}
	c := &countingWorker{err: errC}

	err := NewPool(1).Run(context.Background(), a, b, c)
	require.Error(t, err)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errC)
	assert.Equal(t, int32(1), b.runCount.Load())
}

func TestPool_Run_RespectsLimit(t *testing.T) {
	const limit = 3
	var (
		inFlight atomic.Int32
		peak     atomic.Int32
		mu       sync.Mutex
	)

	ws := make([]Worker, 12)
	for i := range ws {
		ws[i] = WorkerFunc(func(context.Context) error {
			n := inFlight.Add(1)
			mu.Lock()
			if n > peak.Load() {
				peak.Store(n)
			}
			mu.Unlock()
			time.Sleep(5 * time.Millisecond)
			inFlight.Add(-1)
			return nil
		})
	}

	require.NoError(t, NewPool(limit).Run(context.Background(), ws...))
	assert.LessOrEqual(t, peak.Load(), int32(limit))
	assert.GreaterOrEqual(t, peak.Load(), int32(1))
}

func TestPool_Run_PassesContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewPool(1).Run(ctx, WorkerFunc(func(ctx context.Context) error {
		return ctx.Err()
	}))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewPool_ClampsLimit(t *testing.T) {
	assert.Equal(t, 1, NewPool(0).Limit())
	assert.Equal(t, 1, NewPool(-5).Limit())
	assert.Equal(t, 8, NewPool(8).Limit())
}
