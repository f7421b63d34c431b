package signaling

import (
	"container/heap"
	"sync"

	"go.trai.ch/turbo/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

// Pool is a fixed-size set of workers draining a priority queue.
// A worker runs one envelope to completion before taking the next one.
type Pool struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  envelopeQueue
	seq    uint64
	closed bool
	group  errgroup.Group
}

// NewPool starts a pool with the given number of workers, at least one.
func NewPool(workers int) *Pool {
	p := &Pool{}
	p.cond = sync.NewCond(&p.mu)
	for range max(workers, 1) {
		p.group.Go(p.work)
	}
	return p
}

// Submit queues run with the given priority.
func (p *Pool) Submit(priority int, run func()) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return domain.ErrPoolClosed
	}
	p.seq++
	heap.Push(&p.queue, &Envelope{Priority: priority, seq: p.seq, run: run})
	p.cond.Signal()
	return nil
}

// Pending returns the number of envelopes waiting for a worker.
func (p *Pool) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue)
}

// Shutdown stops accepting work and waits until every queued envelope has run.
func (p *Pool) Shutdown() error {
	p.mu.Lock()
	p.closed = true
	p.cond.Broadcast()
	p.mu.Unlock()

	return p.group.Wait()
}

func (p *Pool) work() error {
	for {
		p.mu.Lock()
		for len(p.queue) == 0 && !p.closed {
			p.cond.Wait()
		}
		if len(p.queue) == 0 {
			p.mu.Unlock()
			return nil
		}
		e := heap.Pop(&p.queue).(*Envelope) //nolint:forcetypeassert // only envelopes are queued
		p.mu.Unlock()

		e.Run()
	}
}
