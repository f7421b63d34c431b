package orchestrator_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"slices"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/turbo/internal/core/domain"
	"go.trai.ch/turbo/internal/core/ports"
	"go.trai.ch/turbo/internal/core/ports/mocks"
	"go.trai.ch/turbo/internal/engine/orchestrator"
	"go.trai.ch/turbo/internal/engine/tracker"
	"go.uber.org/mock/gomock"
)

// journal records what the units did, in order.
type journal struct {
	mu     sync.Mutex
	events []string
}

func (j *journal) add(e string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.events = append(j.events, e)
}

func (j *journal) index(e string) int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return slices.Index(j.events, e)
}

func (j *journal) count(e string) int {
	j.mu.Lock()
	defer j.mu.Unlock()
	n := 0
	for _, x := range j.events {
		if x == e {
			n++
		}
	}
	return n
}

type unitFunc func(ctx context.Context, unit string, sig ports.Signaler) error

func runner(ctrl *gomock.Controller, fn unitFunc) *mocks.MockUnitRunner {
	r := mocks.NewMockUnitRunner(ctrl)
	r.EXPECT().RunUnit(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, unit domain.InternedString, sig ports.Signaler) error {
			return fn(ctx, unit.String(), sig)
		}).AnyTimes()
	return r
}

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	l := mocks.NewMockLogger(ctrl)
	l.EXPECT().Debug(gomock.Any()).AnyTimes()
	l.EXPECT().Info(gomock.Any()).AnyTimes()
	l.EXPECT().Warn(gomock.Any()).AnyTimes()
	l.EXPECT().Error(gomock.Any()).AnyTimes()
	return l
}

// graphOf builds a graph from "unit: deps..." pairs.
func graphOf(t *testing.T, deps map[string][]string) *domain.Graph {
	t.Helper()
	g := domain.NewGraph()
	for name, d := range deps {
		require.NoError(t, g.AddUnit(&domain.Unit{Name: name, Dependencies: domain.NewInternedStrings(d)}))
	}
	require.NoError(t, g.Validate())
	return g
}

func TestOrchestrator_DownstreamWaitsForUpstreamSignal(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for i := range 50 {
		before := time.Duration(rng.IntN(100)) * time.Millisecond
		after := time.Duration(rng.IntN(100)) * time.Millisecond
		signals := rng.IntN(2) == 0

		synctest.Test(t, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			j := &journal{}
			g := graphOf(t, map[string][]string{"A": nil, "B": {"A"}})

			r := runner(ctrl, func(_ context.Context, unit string, sig ports.Signaler) error {
				j.add(unit + ":start")
				if unit == "A" {
					time.Sleep(before)
					if signals {
						j.add("A:signal")
						if err := sig.Signal(); err != nil {
							return err
						}
					}
					time.Sleep(after)
				}
				j.add(unit + ":end")
				return nil
			})

			err := orchestrator.New(quietLogger(ctrl), nil).Build(context.Background(), tracker.New(g), r, 2)
			require.NoError(t, err)

			release := "A:end"
			if signals {
				release = "A:signal"
			}
			assert.Less(t, j.index(release), j.index("B:start"), "iteration %d", i)
			assert.Equal(t, 1, j.count("A:end"))
			assert.Equal(t, 1, j.count("B:end"))
		})
	}
}

func TestOrchestrator_EarlySignalOverlapsUpstreamTail(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		j := &journal{}
		g := graphOf(t, map[string][]string{"A": nil, "B": {"A"}})

		r := runner(ctrl, func(_ context.Context, unit string, sig ports.Signaler) error {
			if unit == "A" {
				if err := sig.Signal(); err != nil {
					return err
				}
				// Tests of A take long; B must not wait for them.
				time.Sleep(time.Minute)
			}
			j.add(unit + ":end")
			return nil
		})

		err := orchestrator.New(quietLogger(ctrl), nil).Build(context.Background(), tracker.New(g), r, 2)
		require.NoError(t, err)
		assert.Less(t, j.index("B:end"), j.index("A:end"))
	})
}

func TestOrchestrator_FailureStopsScheduling(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		j := &journal{}
		boom := errors.New("compilation failure")
		g := graphOf(t, map[string][]string{"A": nil, "B": {"A"}, "C": {"B"}})

		r := runner(ctrl, func(_ context.Context, unit string, _ ports.Signaler) error {
			j.add(unit)
			if unit == "A" {
				return boom
			}
			return nil
		})

		err := orchestrator.New(quietLogger(ctrl), nil).Build(context.Background(), tracker.New(g), r, 4)
		require.ErrorIs(t, err, boom)
		assert.ErrorContains(t, err, "unit execution failed")
		assert.Equal(t, -1, j.index("B"))
		assert.Equal(t, -1, j.index("C"))
	})
}

func TestOrchestrator_FailureAfterSignalIsJoined(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		j := &journal{}
		boom := errors.New("tests failed")
		g := graphOf(t, map[string][]string{"A": nil, "B": {"A"}})

		r := runner(ctrl, func(_ context.Context, unit string, sig ports.Signaler) error {
			if unit == "A" {
				if err := sig.Signal(); err != nil {
					return err
				}
				time.Sleep(time.Second)
				j.add("A:end")
				return boom
			}
			time.Sleep(time.Minute)
			j.add("B:end")
			return nil
		})

		err := orchestrator.New(quietLogger(ctrl), nil).Build(context.Background(), tracker.New(g), r, 2)
		require.ErrorIs(t, err, boom)
		// B was released before A failed and was joined before Build returned.
		assert.Equal(t, 1, j.count("B:end"))
	})
}

func TestOrchestrator_ReportsEveryUnit(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		g := graphOf(t, map[string][]string{
			"core": nil,
			"api":  {"core"},
			"db":   {"core"},
			"app":  {"api", "db"},
		})

		rep := mocks.NewMockBuildReporter(ctrl)
		rep.EXPECT().UnitSubmitted(domain.NewInternedString("core"), -2)
		rep.EXPECT().UnitSubmitted(domain.NewInternedString("api"), -1)
		rep.EXPECT().UnitSubmitted(domain.NewInternedString("db"), -1)
		rep.EXPECT().UnitSubmitted(domain.NewInternedString("app"), 0)
		rep.EXPECT().UnitReady(gomock.Any(), gomock.Any()).Times(4)
		rep.EXPECT().UnitCompleted(gomock.Any(), nil).Times(4)

		r := runner(ctrl, func(context.Context, string, ports.Signaler) error { return nil })

		err := orchestrator.New(quietLogger(ctrl), rep).Build(context.Background(), tracker.New(g), r, 8)
		require.NoError(t, err)
	})
}

func TestOrchestrator_Cancellation(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		g := graphOf(t, map[string][]string{"A": nil, "B": {"A"}})
		ctx, cancel := context.WithCancel(context.Background())

		r := runner(ctrl, func(ctx context.Context, unit string, _ ports.Signaler) error {
			if unit == "B" {
				t.Error("B must not run after cancellation")
			}
			cancel()
			<-ctx.Done()
			return ctx.Err()
		})

		err := orchestrator.New(quietLogger(ctrl), nil).Build(ctx, tracker.New(g), r, 1)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestOrchestrator_EmptyGraph(t *testing.T) {
	ctrl := gomock.NewController(t)
	err := orchestrator.New(quietLogger(ctrl), nil).Build(context.Background(), tracker.New(graphOf(t, nil)), mocks.NewMockUnitRunner(ctrl), 4)
	require.NoError(t, err)
}

func TestOrchestrator_StalledTracker(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tr := mocks.NewMockDependencyTracker(ctrl)
		tr.EXPECT().Total().Return(2).AnyTimes()
		tr.EXPECT().RootSchedulable().Return(domain.NewInternedStrings([]string{"A"}))
		tr.EXPECT().Downstream(gomock.Any()).Return(nil).AnyTimes()
		tr.EXPECT().MarkFinished(domain.NewInternedString("A")).Return(nil)

		r := runner(ctrl, func(context.Context, string, ports.Signaler) error { return nil })

		err := orchestrator.New(quietLogger(ctrl), nil).Build(context.Background(), tr, r, 2)
		require.ErrorIs(t, err, domain.ErrSchedulingStalled)
	})
}
