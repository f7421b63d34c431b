package execution

import (
	"context"

	"go.trai.ch/turbo/internal/core/domain"
	"go.trai.ch/turbo/internal/core/ports"
)

// Mode selects how a unit's plan is reordered and signaled.
type Mode string

const (
	// ModeHooks runs plans that were reordered while planning and signals from the task hooks.
	ModeHooks Mode = "hooks"
	// ModeInline reorders each plan right before running it and signals synchronously.
	ModeInline Mode = "inline"
)

// ParseMode validates an execution mode name. The empty name selects ModeHooks.
func ParseMode(name string) (Mode, error) {
	switch Mode(name) {
	case "", ModeHooks:
		return ModeHooks, nil
	case ModeInline:
		return ModeInline, nil
	default:
		return "", unknownMode(name)
	}
}

// Strategy executes one unit's plan in a single call. It reorders the plan, runs it and puts
// the plan back into its original order afterwards.
type Strategy struct {
	runner *Runner
	strict bool
}

// NewStrategy creates a new Strategy.
func NewStrategy(runner *Runner, strict bool) *Strategy {
	return &Strategy{
		runner: runner,
		strict: strict,
	}
}

// Execute runs plan and calls sig once its artifact is ready.
func (s *Strategy) Execute(
	ctx context.Context,
	plan *domain.ExecutionPlan,
	sig ports.Signaler,
	skipSignal bool,
	skip SkipPolicy,
	vertex ports.Vertex,
) (err error) {
	snapshot := plan.Reorder(s.strict)
	defer func() {
		if restoreErr := plan.Restore(snapshot); restoreErr != nil && err == nil {
			err = restoreErr
		}
	}()

	return s.runner.Run(ctx, plan, NewState(plan, sig, skipSignal), skip, vertex)
}
