// Package execution runs the plan of a single unit and decides when its artifact is ready.
package execution

import (
	"slices"

	"go.trai.ch/turbo/internal/core/domain"
	"go.trai.ch/turbo/internal/core/ports"
)

// Hooks are invoked around every task of a unit's plan.
type Hooks interface {
	// BeforeTask is called right before the task runs, or is skipped.
	BeforeTask(task *domain.Task) error
	// AfterTask is called once the task completed successfully, or was skipped.
	AfterTask(task *domain.Task) error
}

var _ Hooks = (*State)(nil)

// State is the execution context of one unit. It is owned by the goroutine running the unit
// and must not be shared.
type State struct {
	signaler     ports.Signaler
	signaled     bool
	packageTasks []domain.InternedString
	executed     []domain.InternedString
	hasTests     bool
}

// NewState prepares the execution context of plan. With skipSignal set neither hook ever
// signals and the unit is released when its work terminates.
func NewState(plan *domain.ExecutionPlan, sig ports.Signaler, skipSignal bool) *State {
	s := &State{
		signaler: sig,
		signaled: skipSignal,
	}
	for _, t := range plan.PackageTasks() {
		s.packageTasks = append(s.packageTasks, t.ID)
	}
	for i := range plan.Tasks {
		if domain.IsTestPhase(plan.Tasks[i].PhaseName(), false) {
			s.hasTests = true
			break
		}
	}
	return s
}

// BeforeTask signals in front of the first test task of a plan without package tasks.
func (s *State) BeforeTask(task *domain.Task) error {
	if s.signaled || len(s.packageTasks) > 0 {
		return nil
	}
	if !domain.IsTestPhase(task.PhaseName(), false) {
		return nil
	}
	return s.signal()
}

// AfterTask signals once every package task of the plan has run. A plan without test tasks
// never signals here: nothing runs between its artifact and its completion that could
// invalidate the artifact.
func (s *State) AfterTask(task *domain.Task) error {
	if s.signaled || !s.hasTests {
		return nil
	}
	if !slices.Contains(s.packageTasks, task.ID) || slices.Contains(s.executed, task.ID) {
		return nil
	}
	s.executed = append(s.executed, task.ID)
	if len(s.executed) < len(s.packageTasks) {
		return nil
	}
	return s.signal()
}

// Signaled reports whether the unit was released by one of the hooks, or opted out.
func (s *State) Signaled() bool {
	return s.signaled
}

func (s *State) signal() error {
	s.signaled = true
	return s.signaler.Signal()
}
