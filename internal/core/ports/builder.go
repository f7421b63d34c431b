package ports

import (
	"context"

	"go.trai.ch/turbo/internal/core/domain"
)

//go:generate mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks

// Signaler announces that the unit currently executing has produced its artifact.
type Signaler interface {
	// Signal releases the unit's dependents. Only the first call has an effect.
	Signal() error
}

// UnitRunner executes the plan of one unit.
type UnitRunner interface {
	// RunUnit runs every task of the unit, calling sig once the artifact is ready.
	RunUnit(ctx context.Context, unit domain.InternedString, sig Signaler) error
}

// Builder drives a whole build pass over the units known to the tracker.
type Builder interface {
	// Build runs every unit of the tracker with at most threads units in flight.
	Build(ctx context.Context, tracker DependencyTracker, runner UnitRunner, threads int) error
}

// BuildReporter observes the lifecycle of every unit of a build.
type BuildReporter interface {
	// UnitSubmitted is called when the unit is handed to the worker pool.
	UnitSubmitted(unit domain.InternedString, priority int)
	// UnitReady is called when the unit's dependents were released.
	UnitReady(unit domain.InternedString, early bool)
	// UnitCompleted is called when the unit's work terminated.
	UnitCompleted(unit domain.InternedString, err error)
}
