package domain

import (
	"slices"

	"github.com/cespare/xxhash/v2"
)

// ExecutionPlan is the ordered task sequence of one unit's run.
type ExecutionPlan struct {
	Unit  InternedString
	Tasks []Task
}

// PlanSnapshot records the order of a plan before it was reordered.
type PlanSnapshot []Task

// NewExecutionPlan creates a plan for the given unit.
func NewExecutionPlan(unit InternedString, tasks []Task) *ExecutionPlan {
	return &ExecutionPlan{
		Unit:  unit,
		Tasks: tasks,
	}
}

// Reorder moves the package-group tasks of the plan in front of its first test-group task.
// It returns the order the plan had before the call.
func (p *ExecutionPlan) Reorder(strict bool) PlanSnapshot {
	return Reorder(p.Tasks, taskPhase, strict)
}

// Restore puts the plan back into the order recorded by snapshot.
func (p *ExecutionPlan) Restore(snapshot PlanSnapshot) error {
	return Restore(snapshot, p.Tasks)
}

// PackageTasks returns the package-group tasks of the plan in plan order.
func (p *ExecutionPlan) PackageTasks() []Task {
	var res []Task
	for _, t := range p.Tasks {
		if IsPackagePhase(t.Phase.String()) {
			res = append(res, t)
		}
	}
	return res
}

// Phases returns the distinct phase names of the plan in order of first appearance.
func (p *ExecutionPlan) Phases() []string {
	res := make([]string, 0, len(p.Tasks))
	for _, t := range p.Tasks {
		if name := t.Phase.String(); !slices.Contains(res, name) {
			res = append(res, name)
		}
	}
	return res
}

// Fingerprint hashes the task order of the plan.
// Two plans with the same tasks in the same order have the same fingerprint.
func (p *ExecutionPlan) Fingerprint() uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(p.Unit.String())
	_, _ = h.Write([]byte{0})
	for _, t := range p.Tasks {
		_, _ = h.WriteString(t.ID.String())
		_, _ = h.Write([]byte{0})
		_, _ = h.WriteString(t.Phase.String())
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}
