package orchestrator

import (
	"context"
	"fmt"

	"go.trai.ch/turbo/internal/core/domain"
	"go.trai.ch/turbo/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Builder = (*Sequential)(nil)

// Sequential builds one unit at a time in dependency order. Units are released on completion.
type Sequential struct {
	logger   ports.Logger
	reporter ports.BuildReporter
}

// NewSequential creates a sequential builder. A nil reporter disables reporting.
func NewSequential(logger ports.Logger, reporter ports.BuildReporter) *Sequential {
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &Sequential{
		logger:   logger,
		reporter: reporter,
	}
}

// Build runs every unit of tracker. The thread count is ignored.
func (s *Sequential) Build(ctx context.Context, tracker ports.DependencyTracker, runner ports.UnitRunner, _ int) error {
	total := tracker.Total()
	s.logger.Info(fmt.Sprintf("sequential builder will build %d units", total))

	queue := tracker.RootSchedulable()
	built := 0
	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		unit := queue[0]
		queue = queue[1:]

		s.reporter.UnitSubmitted(unit, 0)
		err := runner.RunUnit(ctx, unit, completionOnly{})
		if err != nil {
			err = zerr.With(zerr.Wrap(err, "unit execution failed"), "unit", unit.String())
		}
		s.reporter.UnitCompleted(unit, err)
		if err != nil {
			return err
		}
		s.reporter.UnitReady(unit, false)

		built++
		queue = append(queue, tracker.MarkFinished(unit)...)
	}

	if built < total {
		return zerr.With(zerr.Wrap(domain.ErrSchedulingStalled, "units left without pending work"), "built", built)
	}
	return nil
}

// completionOnly accepts signals without acting on them.
type completionOnly struct{}

func (completionOnly) Signal() error {
	return nil
}
