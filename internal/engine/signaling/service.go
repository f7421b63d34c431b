package signaling

import (
	"context"
	"fmt"
	"sync"

	"go.trai.ch/turbo/internal/core/domain"
	"go.trai.ch/zerr"
)

// Work is the execution of one unit. It may call sig.Signal once its artifact is ready.
type Work func(ctx context.Context, sig *Signaler) error

// Service decouples "a unit's artifact became available" from "a unit's work terminated".
//
// Every submitted unit produces exactly one event on TakeSignal: the explicit signal raised by
// its work, a ready event when the work returned without signaling, or a failure event when the
// work failed before signaling. A failure after the unit signaled is reported by Failure and by
// the unit's Future only.
type Service struct {
	pool   *Pool
	events *eventQueue

	mu      sync.Mutex
	failure error
}

// NewService starts a service backed by a pool of the given size.
func NewService(workers int) *Service {
	return &Service{
		pool:   NewPool(workers),
		events: newEventQueue(),
	}
}

// Submit queues the work of unit with the given priority.
func (s *Service) Submit(ctx context.Context, priority int, unit domain.InternedString, work Work) (*Future, error) {
	f := newFuture(unit)
	err := s.pool.Submit(priority, func() {
		s.execute(ctx, unit, work, f)
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "cannot submit unit"), "unit", unit.String())
	}
	return f, nil
}

// TakeSignal blocks until the next ready or failure event is available.
// It must only be called by a single consumer.
func (s *Service) TakeSignal(ctx context.Context) (domain.Signal, error) {
	return s.events.take(ctx)
}

// Failure returns the first error of any terminated work, including failures raised after
// the unit signaled.
func (s *Service) Failure() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failure
}

// Shutdown waits for every submitted work to terminate and stops the workers.
func (s *Service) Shutdown() error {
	return s.pool.Shutdown()
}

func (s *Service) execute(ctx context.Context, unit domain.InternedString, work Work, f *Future) {
	sig := &Signaler{
		unit:   unit,
		events: s.events,
		active: true,
	}

	err := invoke(ctx, work, sig)
	signaled := sig.finish()

	if err != nil {
		s.recordFailure(err)
	}
	if !signaled {
		s.events.push(domain.Signal{Unit: unit, Err: err})
	}
	f.complete(err)
}

func (s *Service) recordFailure(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failure == nil {
		s.failure = err
	}
}

func invoke(ctx context.Context, work Work, sig *Signaler) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = zerr.With(zerr.Wrap(domain.ErrUnitFailed, "unit work panicked"), "panic", fmt.Sprint(r))
		}
	}()
	return work(ctx, sig)
}
