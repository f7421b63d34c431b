package signaling

import (
	"context"

	"go.trai.ch/turbo/internal/core/domain"
)

// Future is the handle of a submitted unit. It completes when the unit's work has
// terminated, which may be long after the unit signaled.
type Future struct {
	unit domain.InternedString
	done chan struct{}
	err  error
}

func newFuture(unit domain.InternedString) *Future {
	return &Future{
		unit: unit,
		done: make(chan struct{}),
	}
}

// Unit returns the unit the future belongs to.
func (f *Future) Unit() domain.InternedString {
	return f.unit
}

// Done is closed once the work has terminated.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the work terminated and returns its error.
func (f *Future) Wait(ctx context.Context) error {
	select {
	case <-f.done:
		return f.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *Future) complete(err error) {
	f.err = err
	close(f.done)
}
