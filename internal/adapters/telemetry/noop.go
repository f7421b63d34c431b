package telemetry

import (
	"context"
	"io"

	"go.trai.ch/turbo/internal/core/domain"
	"go.trai.ch/turbo/internal/core/ports"
)

// Noop is a ports.Telemetry that records nothing.
type Noop struct{}

// NewNoop creates a new Noop.
func NewNoop() *Noop {
	return &Noop{}
}

// Record returns a vertex discarding everything written to it.
func (n *Noop) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	v := NoopVertex{}
	return ports.ContextWithVertex(ctx, v), v
}

// Close does nothing.
func (n *Noop) Close() error {
	return nil
}

// NoopVertex is a ports.Vertex that discards its output.
type NoopVertex struct{}

// Stdout returns io.Discard.
func (NoopVertex) Stdout() io.Writer { return io.Discard }

// Stderr returns io.Discard.
func (NoopVertex) Stderr() io.Writer { return io.Discard }

// Log does nothing.
func (NoopVertex) Log(domain.LogLevel, string) {}

// Complete does nothing.
func (NoopVertex) Complete(error) {}
