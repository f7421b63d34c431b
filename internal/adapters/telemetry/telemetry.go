// Package telemetry provides the recording backends for unit progress.
package telemetry

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/turbo/internal/adapters/telemetry/progrock"
	"go.trai.ch/turbo/internal/core/domain"
	"go.trai.ch/turbo/internal/core/ports"
	"go.trai.ch/zerr"
)

// Backend names accepted by New.
const (
	BackendNone     = "none"
	BackendProgrock = "progrock"
	BackendOTel     = "otel"
	BackendTUI      = "tui"
)

// InstrumentationName is the name of the tracer recording unit spans.
const InstrumentationName = "turbo"

// New creates the telemetry backend named by backend. An empty name selects BackendNone.
// The otel backend reports span lifecycles to logger.
func New(backend string, logger ports.Logger) (ports.Telemetry, error) {
	switch backend {
	case "", BackendNone:
		return NewNoop(), nil
	case BackendProgrock:
		return progrock.New(), nil
	case BackendOTel:
		return NewOTel(InstrumentationName, NewLogBridge(logger)), nil
	case BackendTUI:
		return NewTUI(tea.WithOutput(os.Stderr)), nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownTelemetry, "cannot select telemetry"), "backend", backend)
	}
}
