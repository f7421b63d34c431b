package execution

import (
	"context"

	"go.trai.ch/turbo/internal/core/domain"
	"go.trai.ch/turbo/internal/core/ports"
	"go.trai.ch/zerr"
)

// SkipPolicy selects the tasks of a plan that are not executed.
// Skipped tasks still pass through the hooks, so signaling is unaffected.
type SkipPolicy struct {
	// SkipTests skips the test execution phase.
	SkipTests bool
	// SkipTestGroup skips every test phase, test compilation included.
	SkipTestGroup bool
}

// Skips reports whether the task is not executed under the policy.
func (p SkipPolicy) Skips(task *domain.Task) bool {
	phase := task.PhaseName()
	if p.SkipTestGroup && domain.IsTestPhase(phase, false) {
		return true
	}
	return p.SkipTests && phase == domain.PhaseTest
}

// Runner executes the tasks of a plan in order.
type Runner struct {
	executor ports.Executor
}

// NewRunner creates a new Runner.
func NewRunner(executor ports.Executor) *Runner {
	return &Runner{executor: executor}
}

// Run executes every task of plan, invoking hooks around each of them.
// It stops at the first failing task.
func (r *Runner) Run(ctx context.Context, plan *domain.ExecutionPlan, hooks Hooks, skip SkipPolicy, vertex ports.Vertex) error {
	for i := range plan.Tasks {
		task := &plan.Tasks[i]
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := hooks.BeforeTask(task); err != nil {
			return err
		}
		if err := r.runTask(ctx, task, skip, vertex); err != nil {
			return err
		}
		if err := hooks.AfterTask(task); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) runTask(ctx context.Context, task *domain.Task, skip SkipPolicy, vertex ports.Vertex) error {
	if skip.Skips(task) {
		vertex.Log(domain.LogLevelInfo, "skipping "+task.ID.String())
		return nil
	}

	vertex.Log(domain.LogLevelDebug, "running "+task.ID.String()+" ("+task.PhaseName()+")")
	if err := r.executor.Execute(ctx, task, vertex.Stdout(), vertex.Stderr()); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrTaskExecutionFailed.Error()), "task", task.ID.String())
	}
	return nil
}
