// Package tracker releases build units once every unit they depend on is finished.
package tracker

import (
	"go.trai.ch/turbo/internal/core/domain"
	"go.trai.ch/turbo/internal/core/ports"
)

var _ ports.DependencyTracker = (*Tracker)(nil)

// Tracker counts the unfinished upstream units of every unit of a validated graph.
// It is not safe for concurrent use.
type Tracker struct {
	graph    *domain.Graph
	pending  map[domain.InternedString]int
	finished map[domain.InternedString]bool
}

// New creates a tracker over graph. The graph must have been validated.
func New(graph *domain.Graph) *Tracker {
	pending := make(map[domain.InternedString]int, graph.UnitCount())
	for u := range graph.Walk() {
		pending[u.ID()] = len(u.Upstream())
	}
	return &Tracker{
		graph:    graph,
		pending:  pending,
		finished: make(map[domain.InternedString]bool, graph.UnitCount()),
	}
}

// RootSchedulable returns the units without upstream dependencies, in execution order.
func (t *Tracker) RootSchedulable() []domain.InternedString {
	var roots []domain.InternedString
	for u := range t.graph.Walk() {
		if len(u.Upstream()) == 0 {
			roots = append(roots, u.ID())
		}
	}
	return roots
}

// MarkFinished releases unit. Releasing the same unit twice has no effect.
func (t *Tracker) MarkFinished(unit domain.InternedString) []domain.InternedString {
	if t.finished[unit] {
		return nil
	}
	t.finished[unit] = true

	var ready []domain.InternedString
	for _, dep := range t.graph.Dependents(unit) {
		t.pending[dep]--
		if t.pending[dep] == 0 {
			ready = append(ready, dep)
		}
	}
	return ready
}

// Total returns the number of units in the graph.
func (t *Tracker) Total() int {
	return t.graph.UnitCount()
}

// Downstream returns the direct dependents of unit.
func (t *Tracker) Downstream(unit domain.InternedString) []domain.InternedString {
	return t.graph.Dependents(unit)
}
