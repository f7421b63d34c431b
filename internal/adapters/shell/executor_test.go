package shell_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/turbo/internal/adapters/shell"
	"go.trai.ch/turbo/internal/core/domain"
	"go.trai.ch/turbo/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newTask(dir string, cmd ...string) *domain.Task {
	return &domain.Task{
		ID:         domain.NewInternedString("compile"),
		Phase:      domain.NewInternedString("compile"),
		Command:    cmd,
		WorkingDir: domain.NewInternedString(dir),
	}
}

func TestExecutor_Execute_MultiLineOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	gomock.InOrder(
		mockLogger.EXPECT().Debug("line1"),
		mockLogger.EXPECT().Debug("line2"),
	)

	executor := shell.NewExecutor(mockLogger)
	var stdout bytes.Buffer

	err := executor.Execute(context.Background(), newTask(t.TempDir(), "sh", "-c", "echo line1; echo line2"), &stdout, nil)
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2\n", stdout.String())
}

func TestExecutor_Execute_FragmentedOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug("part1part2").Times(1)

	executor := shell.NewExecutor(mockLogger)
	task := newTask(t.TempDir(), "sh", "-c", "printf part1; sleep 0.1; echo part2")

	require.NoError(t, executor.Execute(context.Background(), task, nil, nil))
}

func TestExecutor_Execute_TrailingPartialLine(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug("no newline").Times(1)

	executor := shell.NewExecutor(mockLogger)
	task := newTask(t.TempDir(), "sh", "-c", "printf 'no newline'")

	require.NoError(t, executor.Execute(context.Background(), task, nil, nil))
}

func TestExecutor_Execute_Stderr(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug("oops").Times(1)

	executor := shell.NewExecutor(mockLogger)
	var stdout, stderr bytes.Buffer

	err := executor.Execute(context.Background(), newTask(t.TempDir(), "sh", "-c", "echo oops >&2"), &stdout, &stderr)
	require.NoError(t, err)
	assert.Empty(t, stdout.String())
	assert.Equal(t, "oops\n", stderr.String())
}

func TestExecutor_Execute_EnvironmentVariables(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug("test-value-123").Times(1)

	executor := shell.NewExecutor(mockLogger)
	task := newTask(t.TempDir(), "sh", "-c", "echo $MY_TEST_VAR")
	task.Environment = map[string]string{"MY_TEST_VAR": "test-value-123"}

	require.NoError(t, executor.Execute(context.Background(), task, nil, nil))
}

func TestExecutor_Execute_WorkingDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	executor := shell.NewExecutor(mockLogger)
	dir := t.TempDir()
	var stdout bytes.Buffer

	require.NoError(t, executor.Execute(context.Background(), newTask(dir, "pwd"), &stdout, nil))

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(strings.TrimSpace(stdout.String()))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestExecutor_Execute_TaskPathSearchedFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug("success").Times(1)

	executor := shell.NewExecutor(mockLogger)

	binDir := t.TempDir()
	cmdName := "my-build-tool"
	//nolint:gosec // Test requires executable file
	require.NoError(t, os.WriteFile(filepath.Join(binDir, cmdName), []byte("#!/bin/sh\necho success\n"), 0o700))

	task := newTask(binDir, cmdName)
	task.Environment = map[string]string{"PATH": binDir}

	require.NoError(t, executor.Execute(context.Background(), task, nil, nil))
}

func TestExecutor_Execute_InvalidCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	executor := shell.NewExecutor(mockLogger)

	err := executor.Execute(context.Background(), newTask(t.TempDir(), "nonexistent-command-xyz123"), nil, nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, "command failed")
}

func TestExecutor_Execute_CommandFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	executor := shell.NewExecutor(mockLogger)

	err := executor.Execute(context.Background(), newTask(t.TempDir(), "sh", "-c", "exit 42"), nil, nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, "command failed")
	assert.ErrorContains(t, err, "exit status 42")
}

func TestExecutor_Execute_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	executor := shell.NewExecutor(mockLogger)

	require.NoError(t, executor.Execute(context.Background(), newTask(t.TempDir()), nil, nil))
}

func TestExecutor_Execute_AbsolutePath(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug("test").Times(1)

	executor := shell.NewExecutor(mockLogger)

	require.NoError(t, executor.Execute(context.Background(), newTask(t.TempDir(), "/bin/sh", "-c", "echo test"), nil, nil))
}

func TestExecutor_Execute_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	executor := shell.NewExecutor(mockLogger)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := executor.Execute(ctx, newTask(t.TempDir(), "sleep", "5"), nil, nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, "command failed")
}
