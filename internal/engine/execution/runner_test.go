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

func TestSkipPolicy_Skips(t *testing.T) {
	tests := []struct {
		phase  string
		policy execution.SkipPolicy
		want   bool
	}{
		{"test", execution.SkipPolicy{}, false},
		{"test", execution.SkipPolicy{SkipTests: true}, true},
		{"test-compile", execution.SkipPolicy{SkipTests: true}, false},
		{"test-compile", execution.SkipPolicy{SkipTestGroup: true}, true},
		{"integration-test", execution.SkipPolicy{SkipTestGroup: true}, true},
		{"compile", execution.SkipPolicy{SkipTests: true, SkipTestGroup: true}, false},
		{"package", execution.SkipPolicy{SkipTestGroup: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.phase, func(t *testing.T) {
			task := &domain.Task{Phase: domain.NewInternedString(tt.phase)}
			assert.Equal(t, tt.want, tt.policy.Skips(task))
		})
	}
}

func TestRunner_SkippedTasksStillSignal(t *testing.T) {
	ctrl := gomock.NewController(t)
	tr := &trace{}
	plan := planOf("compile", "test-compile", "test")

	state := execution.NewState(plan, tr.signaler(ctrl), false)
	runner := execution.NewRunner(tr.executor(ctrl))
	err := runner.Run(context.Background(), plan, state, execution.SkipPolicy{SkipTestGroup: true}, quietVertex(ctrl))

	require.NoError(t, err)
	assert.Equal(t, []string{"compile", signalMark}, tr.events)
}

func TestRunner_StopsAtFirstFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	boom := errors.New("exit status 1")

	var ran []string
	exec := mocks.NewMockExecutor(ctrl)
	exec.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, task *domain.Task, _, _ io.Writer) error {
			ran = append(ran, task.ID.String())
			if task.ID.String() == "compile" {
				return boom
			}
			return nil
		}).Times(2)

	// A failure before any hook fired never reaches the signaler.
	sig := mocks.NewMockSignaler(ctrl)
	plan := planOf("validate", "compile", "test")

	runner := execution.NewRunner(exec)
	err := runner.Run(context.Background(), plan, execution.NewState(plan, sig, false), execution.SkipPolicy{}, quietVertex(ctrl))

	require.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, domain.ErrTaskExecutionFailed.Error())
	assert.Equal(t, []string{"validate", "compile"}, ran)
}

func TestRunner_HonoursCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockExecutor(ctrl)
	sig := mocks.NewMockSignaler(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	plan := planOf("compile")
	runner := execution.NewRunner(exec)
	err := runner.Run(ctx, plan, execution.NewState(plan, sig, false), execution.SkipPolicy{}, quietVertex(ctrl))

	require.ErrorIs(t, err, context.Canceled)
}
