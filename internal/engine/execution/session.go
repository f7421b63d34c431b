package execution

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/turbo/internal/core/domain"
	"go.trai.ch/turbo/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.UnitRunner = (*Session)(nil)

// Session runs the units of one build, each according to its prepared plan.
type Session struct {
	project    *domain.Project
	plans      map[domain.InternedString]*domain.ExecutionPlan
	labels     map[domain.InternedString]string
	mode       Mode
	runner     *Runner
	strategy   *Strategy
	properties ports.PropertySource
	telemetry  ports.Telemetry
	verifier   ports.Verifier
	hasher     ports.Hasher
}

// NewSession creates a session over the plans of project.
// With strict set, the inline mode relocates package tasks in front of the test phase only.
func NewSession(
	project *domain.Project,
	plans map[domain.InternedString]*domain.ExecutionPlan,
	runner *Runner,
	properties ports.PropertySource,
	telemetry ports.Telemetry,
	verifier ports.Verifier,
	hasher ports.Hasher,
	mode Mode,
	strict bool,
) *Session {
	return &Session{
		project:    project,
		plans:      plans,
		labels:     project.Graph.Labels(),
		mode:       mode,
		runner:     runner,
		strategy:   NewStrategy(runner, strict),
		properties: properties,
		telemetry:  telemetry,
		verifier:   verifier,
		hasher:     hasher,
	}
}

// RunUnit runs the plan of unit. Its artifact is verified before sig releases the dependents.
func (s *Session) RunUnit(ctx context.Context, unit domain.InternedString, sig ports.Signaler) error {
	plan, ok := s.plans[unit]
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrUnitNotFound, "no execution plan for unit"), "unit", unit.String())
	}
	u, ok := s.project.Graph.GetUnit(unit)
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrUnitNotFound, "unit is not part of the graph"), "unit", unit.String())
	}

	ctx, vertex := s.telemetry.Record(ctx, s.label(unit))

	skipSignal := domain.IsEmptyOrTrue(s.properties.Lookup(u, domain.PropSkipTurboSignal))
	skip := SkipPolicy{
		SkipTests:     domain.IsEmptyOrTrue(s.properties.Lookup(u, domain.PropSkipTests)),
		SkipTestGroup: domain.IsEmptyOrTrue(s.properties.Lookup(u, domain.PropTestSkip)),
	}
	release := &artifactSignal{
		next:     sig,
		unit:     u,
		root:     s.project.Root,
		verifier: s.verifier,
		hasher:   s.hasher,
		vertex:   vertex,
	}

	var err error
	if s.mode == ModeInline {
		err = s.strategy.Execute(ctx, plan, release, skipSignal, skip, vertex)
	} else {
		err = s.runner.Run(ctx, plan, NewState(plan, release, skipSignal), skip, vertex)
	}

	vertex.Complete(err)
	return err
}

func (s *Session) label(unit domain.InternedString) string {
	if l, ok := s.labels[unit]; ok {
		return l
	}
	return unit.String()
}

// artifactSignal checks that the unit's artifact exists before releasing its dependents.
type artifactSignal struct {
	next     ports.Signaler
	unit     *domain.Unit
	root     string
	verifier ports.Verifier
	hasher   ports.Hasher
	vertex   ports.Vertex
}

func (a *artifactSignal) Signal() error {
	if a.unit.Artifact != "" {
		dir := filepath.Join(a.root, a.unit.Dir)
		ok, err := a.verifier.VerifyOutputs(dir, []string{a.unit.Artifact})
		if err != nil {
			return err
		}
		path := filepath.Join(dir, a.unit.Artifact)
		if !ok {
			return zerr.With(zerr.Wrap(domain.ErrArtifactMissing, "artifact not produced before release"), "path", path)
		}
		sum, err := a.hasher.ComputeFileHash(path)
		if err != nil {
			return err
		}
		a.vertex.Log(domain.LogLevelDebug, fmt.Sprintf("artifact %s ready (%016x)", path, sum))
	}
	return a.next.Signal()
}

func unknownMode(name string) error {
	return zerr.With(zerr.Wrap(domain.ErrUnknownExecutionMode, "cannot select execution mode"), "mode", name)
}
