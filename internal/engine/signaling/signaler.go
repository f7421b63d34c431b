package signaling

import (
	"sync"

	"go.trai.ch/turbo/internal/core/domain"
	"go.trai.ch/turbo/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Signaler = (*Signaler)(nil)

// Signaler is handed to the work of exactly one unit. It is active while that work runs.
type Signaler struct {
	mu       sync.Mutex
	unit     domain.InternedString
	events   *eventQueue
	active   bool
	signaled bool
}

// Signal publishes the unit's artifact-ready event. Calls after the first are no-ops.
// It fails once the unit's work has returned.
func (s *Signaler) Signal() error {
	if s == nil {
		return domain.ErrNoActiveExecution
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return zerr.With(zerr.Wrap(domain.ErrNoActiveExecution, "signal after unit execution ended"), "unit", s.unit.String())
	}
	if s.signaled {
		return nil
	}
	s.signaled = true
	s.events.push(domain.Signal{Unit: s.unit, Early: true})
	return nil
}

// Signaled reports whether the unit already signaled.
func (s *Signaler) Signaled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.signaled
}

// Unit returns the unit the signaler belongs to.
func (s *Signaler) Unit() domain.InternedString {
	return s.unit
}

// finish deactivates the signaler and reports whether it signaled.
func (s *Signaler) finish() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = false
	return s.signaled
}
