package signaling

import (
	"context"
	"sync"

	"go.trai.ch/turbo/internal/core/domain"
)

// eventQueue is an unbounded multi-producer, single-consumer queue of signals.
type eventQueue struct {
	mu     sync.Mutex
	events []domain.Signal
	notify chan struct{}
}

func newEventQueue() *eventQueue {
	return &eventQueue{notify: make(chan struct{}, 1)}
}

func (q *eventQueue) push(s domain.Signal) {
	q.mu.Lock()
	q.events = append(q.events, s)
	q.mu.Unlock()

	select {
	case q.notify <- struct{}{}:
	default:
	}
}

func (q *eventQueue) take(ctx context.Context) (domain.Signal, error) {
	for {
		q.mu.Lock()
		if len(q.events) > 0 {
			s := q.events[0]
			q.events[0] = domain.Signal{}
			q.events = q.events[1:]
			q.mu.Unlock()
			return s, nil
		}
		q.mu.Unlock()

		select {
		case <-q.notify:
		case <-ctx.Done():
			return domain.Signal{}, ctx.Err()
		}
	}
}
