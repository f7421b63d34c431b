// Package orchestrator schedules build units on a worker pool, releasing dependents as soon as
// an upstream unit has produced its artifact.
package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/turbo/internal/core/domain"
	"go.trai.ch/turbo/internal/core/ports"
	"go.trai.ch/turbo/internal/engine/signaling"
	"go.trai.ch/zerr"
)

var _ ports.Builder = (*Orchestrator)(nil)

// Orchestrator is the early-release builder.
type Orchestrator struct {
	logger   ports.Logger
	reporter ports.BuildReporter
}

// New creates an orchestrator. A nil reporter disables reporting.
func New(logger ports.Logger, reporter ports.BuildReporter) *Orchestrator {
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &Orchestrator{
		logger:   logger,
		reporter: reporter,
	}
}

// Build runs every unit known to tracker on at most threads workers.
//
// A unit is submitted once every unit it depends on has signaled or completed. The first
// failure stops further submissions; units already submitted still run to completion.
func (o *Orchestrator) Build(ctx context.Context, tracker ports.DependencyTracker, runner ports.UnitRunner, threads int) error {
	total := tracker.Total()
	if total == 0 {
		return nil
	}
	workers := max(min(threads, total), 1)
	o.logger.Info(fmt.Sprintf("turbo builder will use %d workers to build %d units", workers, total))

	b := &buildRun{
		o:       o,
		tracker: tracker,
		runner:  runner,
		svc:     signaling.NewService(workers),
	}

	loopErr := b.loop(ctx)
	b.join(context.WithoutCancel(ctx))
	shutdownErr := b.svc.Shutdown()

	return errors.Join(b.svc.Failure(), loopErr, shutdownErr)
}

// buildRun is the state of one Build call. It is confined to the calling goroutine.
type buildRun struct {
	o       *Orchestrator
	tracker ports.DependencyTracker
	runner  ports.UnitRunner
	svc     *signaling.Service
	futures []*signaling.Future
	pending int
}

// loop consumes exactly one signal per unit. It returns early on the first failure, in which
// case the failure is reported by the service, or with the context error.
func (b *buildRun) loop(ctx context.Context) error {
	for _, unit := range b.tracker.RootSchedulable() {
		if err := b.submit(ctx, unit); err != nil {
			return err
		}
	}

	for range b.tracker.Total() {
		if b.pending == 0 {
			return zerr.With(zerr.Wrap(domain.ErrSchedulingStalled, "units left without pending work"), "submitted", len(b.futures))
		}

		sig, err := b.svc.TakeSignal(ctx)
		if err != nil {
			return err
		}
		b.pending--

		if sig.Failed() {
			b.o.logger.Debug("unit " + sig.Unit.String() + " failed, no further units are scheduled")
			return nil
		}
		b.o.reporter.UnitReady(sig.Unit, sig.Early)
		if sig.Early {
			b.o.logger.Debug("released dependents of " + sig.Unit.String() + " early")
		}
		if b.svc.Failure() != nil {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		for _, unit := range b.tracker.MarkFinished(sig.Unit) {
			if err := b.submit(ctx, unit); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *buildRun) submit(ctx context.Context, unit domain.InternedString) error {
	priority := -len(b.tracker.Downstream(unit))
	b.o.logger.Debug(fmt.Sprintf("scheduling %s (priority %d)", unit, priority))
	b.o.reporter.UnitSubmitted(unit, priority)

	f, err := b.svc.Submit(ctx, priority, unit, func(ctx context.Context, sig *signaling.Signaler) error {
		err := b.runner.RunUnit(ctx, unit, sig)
		if err != nil {
			err = zerr.With(zerr.Wrap(err, "unit execution failed"), "unit", unit.String())
		}
		b.o.reporter.UnitCompleted(unit, err)
		return err
	})
	if err != nil {
		return err
	}
	b.futures = append(b.futures, f)
	b.pending++
	return nil
}

// join waits until every submitted unit terminated, including units that signaled early.
func (b *buildRun) join(ctx context.Context) {
	for _, f := range b.futures {
		_ = f.Wait(ctx)
	}
}

type nopReporter struct{}

func (nopReporter) UnitSubmitted(domain.InternedString, int)  {}
func (nopReporter) UnitReady(domain.InternedString, bool)     {}
func (nopReporter) UnitCompleted(domain.InternedString, error) {}
