package execution_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/turbo/internal/core/domain"
	"go.trai.ch/turbo/internal/core/ports/mocks"
	"go.trai.ch/turbo/internal/engine/execution"
	"go.uber.org/mock/gomock"
)

func TestParseMode(t *testing.T) {
	m, err := execution.ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, execution.ModeHooks, m)

	m, err = execution.ParseMode("inline")
	require.NoError(t, err)
	assert.Equal(t, execution.ModeInline, m)

	_, err = execution.ParseMode("threads")
	require.ErrorIs(t, err, domain.ErrUnknownExecutionMode)
}

func TestStrategy_ReordersRunsAndRestores(t *testing.T) {
	tests := []struct {
		name   string
		strict bool
		want   []string
	}{
		{
			name: "non-strict",
			want: []string{
				"validate", "compile", "prepare-package", "package", signalMark,
				"generate-test-sources", "test-compile", "test", "verify",
			},
		},
		{
			name:   "strict",
			strict: true,
			want: []string{
				"validate", "compile", "generate-test-sources", "test-compile",
				"prepare-package", "package", signalMark, "test", "verify",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			tr := &trace{}
			phases := []string{
				"validate", "compile", "generate-test-sources", "test-compile",
				"test", "prepare-package", "package", "verify",
			}
			plan := planOf(phases...)
			original := planOf(phases...)

			strategy := execution.NewStrategy(execution.NewRunner(tr.executor(ctrl)), tt.strict)
			err := strategy.Execute(context.Background(), plan, tr.signaler(ctrl), false, execution.SkipPolicy{}, quietVertex(ctrl))

			require.NoError(t, err)
			assert.Equal(t, tt.want, tr.events)
			assert.Equal(t, original.Tasks, plan.Tasks)
		})
	}
}

func TestStrategy_RestoresAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	boom := errors.New("tests failed")

	exec := mocks.NewMockExecutor(ctrl)
	exec.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, task *domain.Task, _, _ io.Writer) error {
			if task.PhaseName() == "test" {
				return boom
			}
			return nil
		}).AnyTimes()
	sig := mocks.NewMockSignaler(ctrl)
	sig.EXPECT().Signal().Return(nil).Times(1)

	plan := planOf("compile", "test", "package")
	strategy := execution.NewStrategy(execution.NewRunner(exec), false)
	err := strategy.Execute(context.Background(), plan, sig, false, execution.SkipPolicy{}, quietVertex(ctrl))

	require.ErrorIs(t, err, boom)
	assert.Equal(t, planOf("compile", "test", "package").Tasks, plan.Tasks)
}

func TestStrategy_OptOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	tr := &trace{}

	plan := planOf("compile", "test", "package")
	strategy := execution.NewStrategy(execution.NewRunner(tr.executor(ctrl)), false)
	err := strategy.Execute(context.Background(), plan, tr.signaler(ctrl), true, execution.SkipPolicy{}, quietVertex(ctrl))

	require.NoError(t, err)
	assert.Zero(t, tr.signals())
	// The reordering still applies.
	assert.Equal(t, []string{"compile", "package", "test"}, tr.events)
}
