// Package planner resolves goals into the ordered execution plan of every unit.
package planner

import (
	"go.trai.ch/turbo/internal/core/domain"
	"go.trai.ch/zerr"
)

// ReorderMode names a way of moving package tasks in front of the test tasks.
type ReorderMode string

const (
	// ReorderAuto relocates the lifecycle when every unit shares it, and reorders each plan
	// otherwise.
	ReorderAuto ReorderMode = "auto"
	// ReorderLifecycle relocates the package phases inside the lifecycle once, before goals are
	// resolved.
	ReorderLifecycle ReorderMode = "lifecycle"
	// ReorderPlan keeps the lifecycle and reorders every unit's plan after it was built.
	ReorderPlan ReorderMode = "plan"
)

// ParseReorderMode validates a reorder mode name. The empty name selects ReorderAuto.
func ParseReorderMode(name string) (ReorderMode, error) {
	switch ReorderMode(name) {
	case "", ReorderAuto:
		return ReorderAuto, nil
	case ReorderLifecycle, ReorderPlan:
		return ReorderMode(name), nil
	default:
		return "", zerr.With(zerr.Wrap(domain.ErrUnknownReorderMode, "cannot select reorder mode"), "mode", name)
	}
}

// PlanReorderer moves package tasks in front of test tasks while plans are built.
type PlanReorderer interface {
	// Name identifies the reorderer in logs.
	Name() string
	// Lifecycle returns the lifecycle goals are resolved against.
	Lifecycle(base *domain.Lifecycle) *domain.Lifecycle
	// Arrange reorders a plan built from the lifecycle.
	Arrange(plan *domain.ExecutionPlan)
}

// Select picks the reorderer for project. ReorderAuto falls back to per-plan reordering when
// a unit overrides the project lifecycle.
func Select(mode ReorderMode, project *domain.Project, strict bool) (PlanReorderer, error) {
	switch mode {
	case ReorderLifecycle:
		return NewLifecycleReorderer(strict), nil
	case ReorderPlan:
		return NewPlanReorderer(strict), nil
	case ReorderAuto, "":
		if project.SharesLifecycle() {
			return NewLifecycleReorderer(strict), nil
		}
		return NewPlanReorderer(strict), nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownReorderMode, "cannot select reorder mode"), "mode", string(mode))
	}
}

// LifecycleReorderer relocates the package phases of the lifecycle itself, so that a goal such
// as "package" no longer implies the test phases.
type LifecycleReorderer struct {
	strict bool
	cache  map[*domain.Lifecycle]*domain.Lifecycle
}

// NewLifecycleReorderer creates a new LifecycleReorderer.
func NewLifecycleReorderer(strict bool) *LifecycleReorderer {
	return &LifecycleReorderer{
		strict: strict,
		cache:  make(map[*domain.Lifecycle]*domain.Lifecycle),
	}
}

// Name implements PlanReorderer.
func (r *LifecycleReorderer) Name() string {
	return string(ReorderLifecycle)
}

// Lifecycle returns the relocated copy of base.
func (r *LifecycleReorderer) Lifecycle(base *domain.Lifecycle) *domain.Lifecycle {
	if lc, ok := r.cache[base]; ok {
		return lc
	}
	lc := base.Relocated(r.strict)
	r.cache[base] = lc
	return lc
}

// Arrange is a no-op: plans built from a relocated lifecycle are already in order.
func (r *LifecycleReorderer) Arrange(*domain.ExecutionPlan) {}

// planReorderer reorders each plan after it was resolved against the unchanged lifecycle.
type planReorderer struct {
	strict bool
}

// NewPlanReorderer returns a reorderer that reorders each plan individually.
func NewPlanReorderer(strict bool) PlanReorderer {
	return &planReorderer{strict: strict}
}

func (r *planReorderer) Name() string {
	return string(ReorderPlan)
}

func (r *planReorderer) Lifecycle(base *domain.Lifecycle) *domain.Lifecycle {
	return base
}

func (r *planReorderer) Arrange(plan *domain.ExecutionPlan) {
	plan.Reorder(r.strict)
}

type keepOrder struct{}

// KeepOrder returns a reorderer that leaves lifecycles and plans untouched.
func KeepOrder() PlanReorderer {
	return keepOrder{}
}

func (keepOrder) Name() string {
	return "none"
}

func (keepOrder) Lifecycle(base *domain.Lifecycle) *domain.Lifecycle {
	return base
}

func (keepOrder) Arrange(*domain.ExecutionPlan) {}
