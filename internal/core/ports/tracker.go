package ports

import "go.trai.ch/turbo/internal/core/domain"

// DependencyTracker knows which units may start given the units already released.
//
// It is mutated by a single scheduling goroutine only.
//
//go:generate mockgen -source=tracker.go -destination=mocks/mock_tracker.go -package=mocks
type DependencyTracker interface {
	// RootSchedulable returns the units without pending upstream dependencies.
	RootSchedulable() []domain.InternedString
	// MarkFinished releases the unit and returns the units that became schedulable.
	MarkFinished(unit domain.InternedString) []domain.InternedString
	// Total returns the number of units of the pass.
	Total() int
	// Downstream returns the direct dependents of the unit.
	Downstream(unit domain.InternedString) []domain.InternedString
}
