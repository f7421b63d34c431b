package planner

import (
	"slices"

	"go.trai.ch/turbo/internal/core/domain"
	"go.trai.ch/zerr"
)

// Plans maps every unit id to its execution plan.
type Plans map[domain.InternedString]*domain.ExecutionPlan

// Planner builds the execution plans of a project for a set of goals.
type Planner struct {
	reorderer PlanReorderer
}

// New creates a planner using the given reorderer.
func New(reorderer PlanReorderer) *Planner {
	return &Planner{reorderer: reorderer}
}

// Reorderer returns the reorderer of the planner.
func (p *Planner) Reorderer() PlanReorderer {
	return p.reorderer
}

// Plan resolves goals against the lifecycle of every unit of project. A unit's plan holds the
// tasks bound to the phases up to the furthest goal, in lifecycle order.
func (p *Planner) Plan(project *domain.Project, goals []string) (Plans, error) {
	plans := make(Plans, project.Graph.UnitCount())
	for u := range project.Graph.Walk() {
		plan, err := p.planUnit(project.LifecycleOf(u), u, goals)
		if err != nil {
			return nil, err
		}
		plans[u.ID()] = plan
	}
	return plans, nil
}

func (p *Planner) planUnit(base *domain.Lifecycle, u *domain.Unit, goals []string) (*domain.ExecutionPlan, error) {
	lc := p.reorderer.Lifecycle(base)

	prefix, err := lc.Prefix(goals)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "cannot resolve goals"), "unit", u.ID().String())
	}
	last := len(prefix) - 1

	type indexed struct {
		task  domain.Task
		index int
	}
	selected := make([]indexed, 0, len(u.Tasks))
	for _, t := range u.Tasks {
		i, ok := lc.Index(t.PhaseName())
		if !ok {
			err := zerr.With(zerr.Wrap(domain.ErrUnknownPhase, "task is bound to phase "+t.PhaseName()), "phase", t.PhaseName())
			err = zerr.With(err, "task", t.ID.String())
			return nil, zerr.With(err, "unit", u.ID().String())
		}
		if i <= last {
			selected = append(selected, indexed{task: t, index: i})
		}
	}
	slices.SortStableFunc(selected, func(a, b indexed) int {
		return a.index - b.index
	})

	tasks := make([]domain.Task, 0, len(selected))
	for _, s := range selected {
		tasks = append(tasks, s.task)
	}

	plan := domain.NewExecutionPlan(u.ID(), tasks)
	p.reorderer.Arrange(plan)
	return plan, nil
}
