package domain

import "go.trai.ch/zerr"

var (
	// ErrUnitAlreadyExists is returned when attempting to add a unit whose id is already in the graph.
	ErrUnitAlreadyExists = zerr.New("unit already exists")

	// ErrMissingDependency is returned when a unit references a dependency that doesn't exist in the graph.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when a cycle is detected in the unit dependency graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrUnitNotFound is returned when a requested unit is not found in the graph.
	ErrUnitNotFound = zerr.New("unit not found")

	// ErrAmbiguousReference is returned when a unit reference matches units of several groups.
	ErrAmbiguousReference = zerr.New("ambiguous unit reference")

	// ErrInvalidUnitName is returned when a unit name is empty or contains a separator.
	ErrInvalidUnitName = zerr.New("invalid unit name")

	// ErrDuplicatePhase is returned when a lifecycle lists the same phase twice.
	ErrDuplicatePhase = zerr.New("duplicate lifecycle phase")

	// ErrDuplicateTask is returned when a unit declares the same task id twice.
	ErrDuplicateTask = zerr.New("duplicate task id")

	// ErrUnknownPhase is returned when a task is bound to a phase its unit's lifecycle does not define.
	ErrUnknownPhase = zerr.New("unknown phase")

	// ErrUnknownGoal is returned when a requested goal is not a phase of the lifecycle.
	ErrUnknownGoal = zerr.New("unknown goal")

	// ErrNoGoalsSpecified is returned when a build is requested without any goal.
	ErrNoGoalsSpecified = zerr.New("no goals specified")

	// ErrSnapshotLengthMismatch is returned when a plan is restored from a snapshot of a different size.
	ErrSnapshotLengthMismatch = zerr.New("snapshot and plan differ in length")

	// ErrUnknownBuilder is returned when the requested builder id is not registered.
	ErrUnknownBuilder = zerr.New("unknown builder")

	// ErrUnknownReorderMode is returned when the requested reorder mode is not recognised.
	ErrUnknownReorderMode = zerr.New("unknown reorder mode, expected 'auto', 'lifecycle' or 'plan'")

	// ErrUnknownExecutionMode is returned when the requested execution mode is not recognised.
	ErrUnknownExecutionMode = zerr.New("unknown execution mode, expected 'hooks' or 'inline'")

	// ErrUnknownTelemetry is returned when the requested telemetry backend is not recognised.
	ErrUnknownTelemetry = zerr.New("unknown telemetry backend, expected 'none', 'progrock', 'otel' or 'tui'")

	// ErrTestJarIncompatible is returned when a unit publishes a test jar while test phases are relocated.
	ErrTestJarIncompatible = zerr.New("test-jar packaging is incompatible with test phase relocation")

	// ErrInvalidProperty is returned when a property definition cannot be parsed.
	ErrInvalidProperty = zerr.New("invalid property definition, expected key=value")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrPropertiesReadFailed is returned when the properties file cannot be read.
	ErrPropertiesReadFailed = zerr.New("failed to read properties file")

	// ErrTaskExecutionFailed is returned when a task execution fails.
	ErrTaskExecutionFailed = zerr.New("task execution failed")

	// ErrUnitFailed is returned when the work of a unit fails or panics.
	ErrUnitFailed = zerr.New("unit execution failed")

	// ErrBuildExecutionFailed is returned when the build execution fails.
	ErrBuildExecutionFailed = zerr.New("build execution failed")

	// ErrSchedulingStalled is returned when units remain but none of them can be released.
	ErrSchedulingStalled = zerr.New("no unit can be scheduled")

	// ErrArtifactMissing is returned when a unit reaches its artifact-ready point without its artifact on disk.
	ErrArtifactMissing = zerr.New("artifact missing")

	// ErrNoActiveExecution is returned when a signal is raised outside of a running unit execution.
	ErrNoActiveExecution = zerr.New("no active unit execution")

	// ErrPoolClosed is returned when work is submitted to a pool that has been shut down.
	ErrPoolClosed = zerr.New("worker pool is closed")

	// ErrReportWriteFailed is returned when the build report cannot be written.
	ErrReportWriteFailed = zerr.New("failed to write build report")
)
