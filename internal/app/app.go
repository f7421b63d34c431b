// Package app implements the application layer for turbo.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/turbo/internal/adapters/properties" //nolint:depguard // Wired in app layer
	"go.trai.ch/turbo/internal/adapters/report"     //nolint:depguard // Wired in app layer
	"go.trai.ch/turbo/internal/adapters/telemetry"  //nolint:depguard // Wired in app layer
	"go.trai.ch/turbo/internal/core/domain"
	"go.trai.ch/turbo/internal/core/ports"
	"go.trai.ch/turbo/internal/engine/execution"
	"go.trai.ch/turbo/internal/engine/orchestrator"
	"go.trai.ch/turbo/internal/engine/planner"
	"go.trai.ch/turbo/internal/engine/tracker"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	executor     ports.Executor
	logger       ports.Logger
	verifier     ports.Verifier
	hasher       ports.Hasher
	registry     *orchestrator.Registry
	out          io.Writer
	newRunID     func() uuid.UUID
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	executor ports.Executor,
	log ports.Logger,
	verifier ports.Verifier,
	hasher ports.Hasher,
) *App {
	return &App{
		configLoader: loader,
		executor:     executor,
		logger:       log,
		verifier:     verifier,
		hasher:       hasher,
		registry:     orchestrator.NewRegistry(log),
		out:          os.Stdout,
		newRunID:     uuid.New,
	}
}

// WithOutput sets the writer plans are rendered to.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// WithRunID makes every run use id. It is primarily used for testing.
func (a *App) WithRunID(id uuid.UUID) *App {
	a.newRunID = func() uuid.UUID { return id }
	return a
}

// RunOptions configuration for the Run and Plan methods.
type RunOptions struct {
	// File is the project file or the directory holding it.
	File string
	// Threads bounds the number of units built at once. Zero selects the CPU count.
	Threads int
	// Builder is the builder id, turbo when empty.
	Builder string
	// Defines override every other property layer.
	Defines map[string]string
	// ReorderMode selects how plans are reordered for the turbo builder.
	ReorderMode string
	// ExecutionMode selects hook-driven or inline early release.
	ExecutionMode string
	// Telemetry names the telemetry backend.
	Telemetry string
	// ReportPath, when set, receives the JSON build report.
	ReportPath string
}

// build is a project prepared for one pass.
type build struct {
	project   *domain.Project
	props     ports.PropertySource
	builderID string
	builder   ports.Builder
	mode      execution.Mode
	reorderer planner.PlanReorderer
	plans     planner.Plans
	strict    bool
	skipTests bool
	testSkip  bool
}

// Run builds the goals over every unit of the project.
func (a *App) Run(ctx context.Context, goals []string, opts RunOptions) error {
	runID := a.newRunID()
	builderID := builderOrDefault(opts.Builder)

	var recorder *report.Recorder
	var reporter ports.BuildReporter
	if opts.ReportPath != "" {
		recorder = report.NewRecorder(runID, builderID)
		reporter = recorder
	}

	b, err := a.prepare(goals, opts, reporter)
	if err != nil {
		return err
	}

	tel, err := telemetry.New(opts.Telemetry, a.logger)
	if err != nil {
		return err
	}

	warning := b.packageWarning(goals)
	if warning != "" {
		a.logger.Warn(warning)
	}
	a.logger.Debug(fmt.Sprintf("run %s: %s with the %s builder, %s reordering",
		runID, strings.Join(goals, " "), builderID, b.reorderer.Name()))

	session := execution.NewSession(
		b.project,
		b.plans,
		execution.NewRunner(a.executor),
		b.props,
		tel,
		a.verifier,
		a.hasher,
		b.mode,
		b.strict,
	)

	threads := opts.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	start := time.Now()
	done := make(chan struct{})
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(done)
		if err := b.builder.Build(gctx, tracker.New(b.project.Graph), session, threads); err != nil {
			return errors.Join(domain.ErrBuildExecutionFailed, err)
		}
		return nil
	})

	// Telemetry is flushed once every unit has completed.
	g.Go(func() error {
		<-done
		return tel.Close()
	})

	err = g.Wait()

	if recorder != nil {
		if werr := recorder.WriteFile(opts.ReportPath); werr != nil {
			err = errors.Join(err, werr)
		} else {
			a.logger.Debug(fmt.Sprintf("build report written to %s", opts.ReportPath))
		}
	}

	if warning != "" {
		a.logger.Warn(warning)
	}
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("built %d units in %s", b.project.Graph.UnitCount(), time.Since(start).Round(time.Millisecond)))
	return nil
}

// Plan prints the execution plan of every unit without running it.
func (a *App) Plan(_ context.Context, goals []string, opts RunOptions) error {
	b, err := a.prepare(goals, opts, nil)
	if err != nil {
		return err
	}
	return RenderPlans(a.out, b.project, b.plans, b.reorderer.Name())
}

func (a *App) prepare(goals []string, opts RunOptions, reporter ports.BuildReporter) (*build, error) {
	if len(goals) == 0 {
		return nil, domain.ErrNoGoalsSpecified
	}

	file := opts.File
	if file == "" {
		file = "."
	}
	project, err := a.configLoader.Load(file)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	props, err := properties.Load(project, opts.Defines)
	if err != nil {
		return nil, err
	}

	b := &build{
		project:   project,
		props:     props,
		builderID: builderOrDefault(opts.Builder),
		strict:    domain.IsTrue(props.Lookup(nil, domain.PropTurboTestCompile)),
		skipTests: domain.IsEmptyOrTrue(props.Lookup(nil, domain.PropSkipTests)),
		testSkip:  domain.IsEmptyOrTrue(props.Lookup(nil, domain.PropTestSkip)),
	}

	b.builder, err = a.registry.Get(b.builderID, reporter)
	if err != nil {
		return nil, err
	}
	b.mode, err = execution.ParseMode(opts.ExecutionMode)
	if err != nil {
		return nil, err
	}
	if !orchestrator.Reorders(b.builderID) {
		b.mode = execution.ModeHooks
	}

	if domain.IsTrue(props.Lookup(nil, domain.PropTestModuleSkip)) {
		if err := a.skipTestModules(project); err != nil {
			return nil, err
		}
	}

	b.reorderer = planner.KeepOrder()
	if orchestrator.Reorders(b.builderID) {
		if !b.strict {
			if err := CheckTestJars(project); err != nil {
				return nil, err
			}
		}
		if b.mode == execution.ModeHooks {
			mode, err := planner.ParseReorderMode(opts.ReorderMode)
			if err != nil {
				return nil, err
			}
			if b.reorderer, err = planner.Select(mode, project, b.strict); err != nil {
				return nil, err
			}
		}
	}

	b.plans, err = planner.New(b.reorderer).Plan(project, goals)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (a *App) skipTestModules(project *domain.Project) error {
	graph, skip, err := planner.SkipTestModules(project.Graph)
	if err != nil {
		return err
	}
	project.Graph = graph
	a.logger.Info(fmt.Sprintf("test module skip removed %d units and %d test dependency edges", len(skip.Units), skip.Edges))
	if len(skip.Units) > 0 {
		a.logger.Debug("skipped test modules: " + strings.Join(skip.Units, ", "))
	}
	return nil
}

// packageWarning applies only when the lifecycle itself is reordered.
func (b *build) packageWarning(goals []string) string {
	if _, ok := b.reorderer.(*planner.LifecycleReorderer); !ok {
		return ""
	}
	return PackageWarning(goals, b.strict, b.skipTests, b.testSkip)
}

func builderOrDefault(id string) string {
	if id == "" {
		return orchestrator.BuilderTurbo
	}
	return id
}
