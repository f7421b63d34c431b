package execution_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/turbo/internal/core/domain"
	"go.trai.ch/turbo/internal/core/ports"
	"go.trai.ch/turbo/internal/core/ports/mocks"
	"go.trai.ch/turbo/internal/engine/execution"
	"go.uber.org/mock/gomock"
)

type sessionFixture struct {
	project    *domain.Project
	plans      map[domain.InternedString]*domain.ExecutionPlan
	properties *mocks.MockPropertySource
	telemetry  *mocks.MockTelemetry
	vertex     *mocks.MockVertex
	verifier   *mocks.MockVerifier
	hasher     *mocks.MockHasher
	tr         *trace
	ctrl       *gomock.Controller
}

func newSessionFixture(t *testing.T, artifact string, phases ...string) *sessionFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	g := domain.NewGraph()
	require.NoError(t, g.AddUnit(&domain.Unit{Name: "app", Dir: "app", Artifact: artifact}))
	require.NoError(t, g.Validate())

	f := &sessionFixture{
		project: &domain.Project{
			Root:      "/ws",
			Lifecycle: domain.DefaultLifecycle(),
			Graph:     g,
		},
		plans: map[domain.InternedString]*domain.ExecutionPlan{
			domain.NewInternedString("app"): planOf(phases...),
		},
		properties: mocks.NewMockPropertySource(ctrl),
		telemetry:  mocks.NewMockTelemetry(ctrl),
		vertex:     quietVertex(ctrl),
		verifier:   mocks.NewMockVerifier(ctrl),
		hasher:     mocks.NewMockHasher(ctrl),
		tr:         &trace{},
		ctrl:       ctrl,
	}
	f.telemetry.EXPECT().Record(gomock.Any(), "app").
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ctx, f.vertex
		}).AnyTimes()
	return f
}

func (f *sessionFixture) withProperties(props map[string]string) {
	f.properties.EXPECT().Lookup(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ *domain.Unit, key string) (string, bool) {
			v, ok := props[key]
			return v, ok
		}).AnyTimes()
}

func (f *sessionFixture) session(mode execution.Mode) *execution.Session {
	return execution.NewSession(
		f.project,
		f.plans,
		execution.NewRunner(f.tr.executor(f.ctrl)),
		f.properties,
		f.telemetry,
		f.verifier,
		f.hasher,
		mode,
		false,
	)
}

func TestSession_VerifiesArtifactBeforeSignal(t *testing.T) {
	f := newSessionFixture(t, "target/app.jar", "compile", "package", "test")
	f.withProperties(nil)

	f.verifier.EXPECT().VerifyOutputs(filepath.Join("/ws", "app"), []string{"target/app.jar"}).Return(true, nil)
	f.hasher.EXPECT().ComputeFileHash(filepath.Join("/ws", "app", "target/app.jar")).Return(uint64(42), nil)
	f.vertex.EXPECT().Complete(nil)

	err := f.session(execution.ModeHooks).RunUnit(context.Background(), domain.NewInternedString("app"), f.tr.signaler(f.ctrl))

	require.NoError(t, err)
	assert.Equal(t, []string{"compile", "package", signalMark, "test"}, f.tr.events)
}

func TestSession_MissingArtifactFailsUnit(t *testing.T) {
	f := newSessionFixture(t, "target/app.jar", "compile", "package", "test")
	f.withProperties(nil)

	f.verifier.EXPECT().VerifyOutputs(gomock.Any(), gomock.Any()).Return(false, nil)
	f.vertex.EXPECT().Complete(gomock.Any())

	err := f.session(execution.ModeHooks).RunUnit(context.Background(), domain.NewInternedString("app"), f.tr.signaler(f.ctrl))

	require.ErrorIs(t, err, domain.ErrArtifactMissing)
	assert.Equal(t, []string{"compile", "package"}, f.tr.events)
}

func TestSession_SkipSignalProperty(t *testing.T) {
	f := newSessionFixture(t, "", "compile", "test")
	f.withProperties(map[string]string{domain.PropSkipTurboSignal: ""})
	f.vertex.EXPECT().Complete(nil)

	err := f.session(execution.ModeHooks).RunUnit(context.Background(), domain.NewInternedString("app"), f.tr.signaler(f.ctrl))

	require.NoError(t, err)
	assert.Zero(t, f.tr.signals())
}

func TestSession_SkipTestsProperty(t *testing.T) {
	f := newSessionFixture(t, "", "compile", "test-compile", "test")
	f.withProperties(map[string]string{domain.PropSkipTests: "true"})
	f.vertex.EXPECT().Complete(nil)

	err := f.session(execution.ModeHooks).RunUnit(context.Background(), domain.NewInternedString("app"), f.tr.signaler(f.ctrl))

	require.NoError(t, err)
	assert.Equal(t, []string{"compile", signalMark, "test-compile"}, f.tr.events)
}

func TestSession_InlineMode(t *testing.T) {
	f := newSessionFixture(t, "", "compile", "test", "package")
	f.withProperties(nil)
	f.vertex.EXPECT().Complete(nil)

	err := f.session(execution.ModeInline).RunUnit(context.Background(), domain.NewInternedString("app"), f.tr.signaler(f.ctrl))

	require.NoError(t, err)
	assert.Equal(t, []string{"compile", "package", signalMark, "test"}, f.tr.events)
	assert.Equal(t, planOf("compile", "test", "package").Tasks, f.plans[domain.NewInternedString("app")].Tasks)
}

func TestSession_UnknownUnit(t *testing.T) {
	f := newSessionFixture(t, "", "compile")

	err := f.session(execution.ModeHooks).RunUnit(context.Background(), domain.NewInternedString("lib"), f.tr.signaler(f.ctrl))

	require.ErrorIs(t, err, domain.ErrUnitNotFound)
}
