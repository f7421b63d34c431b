package domain

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// UnitStatus is the state a unit reaches during a build, as reported to telemetry and the
// build report.
type UnitStatus string

const (
	// UnitStatusPending indicates the unit has not been submitted yet.
	UnitStatusPending UnitStatus = "pending"
	// UnitStatusQueued indicates the unit was submitted and waits for a worker.
	UnitStatusQueued UnitStatus = "queued"
	// UnitStatusReady indicates the unit's artifact is available to dependents.
	UnitStatusReady UnitStatus = "ready"
	// UnitStatusCompleted indicates the unit's work finished successfully.
	UnitStatusCompleted UnitStatus = "completed"
	// UnitStatusFailed indicates the unit's work failed.
	UnitStatusFailed UnitStatus = "failed"
)

// IsTerminal checks if a status is a terminal state.
func (s UnitStatus) IsTerminal() bool {
	return s == UnitStatusCompleted || s == UnitStatusFailed
}
