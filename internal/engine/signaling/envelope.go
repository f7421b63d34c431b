// Package signaling runs unit work on a priority-ordered worker pool and reports, for every
// submitted unit, the moment its artifact became available to dependents.
package signaling

import "container/heap"

// Envelope pairs a unit of work with its scheduling priority.
// Lower priorities dequeue first; equal priorities dequeue in submission order.
type Envelope struct {
	Priority int
	seq      uint64
	run      func()
}

// Less reports whether e must dequeue before other.
func (e *Envelope) Less(other *Envelope) bool {
	if e.Priority != other.Priority {
		return e.Priority < other.Priority
	}
	return e.seq < other.seq
}

// Run executes the wrapped work.
func (e *Envelope) Run() {
	e.run()
}

// envelopeQueue is a binary heap of pending envelopes.
type envelopeQueue []*Envelope

var _ heap.Interface = (*envelopeQueue)(nil)

func (q envelopeQueue) Len() int           { return len(q) }
func (q envelopeQueue) Less(i, j int) bool { return q[i].Less(q[j]) }
func (q envelopeQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *envelopeQueue) Push(x any) {
	*q = append(*q, x.(*Envelope)) //nolint:forcetypeassert // only envelopes are pushed
}

func (q *envelopeQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return e
}
