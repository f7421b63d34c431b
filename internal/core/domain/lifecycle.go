package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// Lifecycle is an ordered list of phase names.
type Lifecycle struct {
	phases []string
	index  map[string]int
}

// DefaultPhases returns the phases of the default lifecycle.
func DefaultPhases() []string {
	return []string{
		PhaseValidate,
		PhaseInitialize,
		PhaseGenerateSources,
		PhaseProcessSources,
		PhaseGenerateResources,
		PhaseProcessResources,
		PhaseCompile,
		PhaseProcessClasses,
		PhaseGenerateTestSources,
		PhaseProcessTestSources,
		PhaseGenerateTestResources,
		PhaseProcessTestResources,
		PhaseTestCompile,
		PhaseProcessTestClasses,
		PhaseTest,
		PhasePreparePackage,
		PhasePackage,
		PhasePreIntegrationTest,
		PhaseIntegrationTest,
		PhasePostIntegrationTest,
		PhaseVerify,
		PhaseInstall,
		PhaseDeploy,
	}
}

// DefaultLifecycle returns the default lifecycle.
func DefaultLifecycle() *Lifecycle {
	lc, _ := NewLifecycle(DefaultPhases())
	return lc
}

// NewLifecycle creates a lifecycle from an ordered list of phases.
func NewLifecycle(phases []string) (*Lifecycle, error) {
	index := make(map[string]int, len(phases))
	for i, p := range phases {
		if _, exists := index[p]; exists {
			return nil, zerr.With(ErrDuplicatePhase, "phase", p)
		}
		index[p] = i
	}
	return &Lifecycle{
		phases: slices.Clone(phases),
		index:  index,
	}, nil
}

// Phases returns a copy of the ordered phase names.
func (l *Lifecycle) Phases() []string {
	return slices.Clone(l.phases)
}

// Index returns the position of the phase in the lifecycle.
func (l *Lifecycle) Index(phase string) (int, bool) {
	i, ok := l.index[phase]
	return i, ok
}

// Has reports whether the lifecycle defines the phase.
func (l *Lifecycle) Has(phase string) bool {
	_, ok := l.index[phase]
	return ok
}

// Equal reports whether both lifecycles list the same phases in the same order.
func (l *Lifecycle) Equal(other *Lifecycle) bool {
	return slices.Equal(l.phases, other.phases)
}

// Prefix returns the phases up to and including the furthest of the given goals.
func (l *Lifecycle) Prefix(goals []string) ([]string, error) {
	if len(goals) == 0 {
		return nil, ErrNoGoalsSpecified
	}
	furthest := -1
	for _, g := range goals {
		i, ok := l.index[g]
		if !ok {
			return nil, zerr.With(zerr.Wrap(ErrUnknownGoal, "goal is not a lifecycle phase"), "goal", g)
		}
		furthest = max(furthest, i)
	}
	return slices.Clone(l.phases[:furthest+1]), nil
}

// Relocated returns a copy of the lifecycle with the package phases moved in front of its
// first test phase.
func (l *Lifecycle) Relocated(strict bool) *Lifecycle {
	phases := slices.Clone(l.phases)
	Reorder(phases, func(p string) string { return p }, strict)
	lc, _ := NewLifecycle(phases)
	return lc
}
