package signaling_test

import (
	"sync"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/turbo/internal/core/domain"
	"go.trai.ch/turbo/internal/engine/signaling"
)

func TestEnvelope_Less(t *testing.T) {
	a := &signaling.Envelope{Priority: -2}
	d := &signaling.Envelope{Priority: -1}
	assert.True(t, a.Less(d))
	assert.False(t, d.Less(a))
}

// recorder collects labels from concurrently running work.
type recorder struct {
	mu    sync.Mutex
	order []string
}

func (r *recorder) add(label string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = append(r.order, label)
}

func (r *recorder) get() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.order...)
}

func TestPool_DequeuesHighestPriorityFirst(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		pool := signaling.NewPool(1)
		rec := &recorder{}

		started := make(chan struct{})
		gate := make(chan struct{})
		require.NoError(t, pool.Submit(0, func() {
			close(started)
			<-gate
		}))
		<-started

		// D has one dependent, A has two.
		require.NoError(t, pool.Submit(-1, func() { rec.add("D") }))
		require.NoError(t, pool.Submit(-2, func() { rec.add("A") }))
		require.NoError(t, pool.Submit(-1, func() { rec.add("E") }))
		require.NoError(t, pool.Submit(0, func() { rec.add("F") }))
		assert.Equal(t, 4, pool.Pending())

		close(gate)
		require.NoError(t, pool.Shutdown())

		assert.Equal(t, []string{"A", "D", "E", "F"}, rec.get())
	})
}

func TestPool_ShutdownDrainsQueue(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		pool := signaling.NewPool(3)
		rec := &recorder{}

		for range 20 {
			require.NoError(t, pool.Submit(0, func() { rec.add("x") }))
		}
		require.NoError(t, pool.Shutdown())

		assert.Len(t, rec.get(), 20)
		assert.Zero(t, pool.Pending())
	})
}

func TestPool_SubmitAfterShutdown(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		pool := signaling.NewPool(0)
		require.NoError(t, pool.Shutdown())

		err := pool.Submit(0, func() {})
		require.ErrorIs(t, err, domain.ErrPoolClosed)
	})
}

func TestPool_RunsConcurrently(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		pool := signaling.NewPool(2)

		var wg sync.WaitGroup
		wg.Add(2)
		release := make(chan struct{})
		for range 2 {
			require.NoError(t, pool.Submit(0, func() {
				wg.Done()
				<-release
			}))
		}

		// Both envelopes must be running at the same time for the wait group to drain.
		wg.Wait()
		close(release)
		require.NoError(t, pool.Shutdown())
	})
}
