package telemetry

import (
	"context"
	"io"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/turbo/internal/core/domain"
	"go.trai.ch/turbo/internal/core/ports"
)

// OTel implements ports.Telemetry with one OpenTelemetry span per recorded unit.
type OTel struct {
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
}

// NewOTel creates an OTel recorder whose spans are handed to processors.
func NewOTel(name string, processors ...sdktrace.SpanProcessor) *OTel {
	opts := make([]sdktrace.TracerProviderOption, 0, len(processors))
	for _, p := range processors {
		opts = append(opts, sdktrace.WithSpanProcessor(p))
	}
	tp := sdktrace.NewTracerProvider(opts...)
	return &OTel{
		provider: tp,
		tracer:   tp.Tracer(name),
	}
}

// Record starts a span named name.
func (o *OTel) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	ctx, span := o.tracer.Start(ctx, name)
	v := &OTelVertex{
		span:   span,
		stdout: newStreamBatcher(span, "stdout"),
		stderr: newStreamBatcher(span, "stderr"),
	}
	return ports.ContextWithVertex(ctx, v), v
}

// Close flushes and shuts down the tracer provider.
func (o *OTel) Close() error {
	return o.provider.Shutdown(context.Background())
}

func newStreamBatcher(span trace.Span, stream string) *BatchProcessor {
	return NewBatchProcessor(0, 0, func(data []byte) {
		span.AddEvent("output", trace.WithAttributes(
			attribute.String("stream", stream),
			attribute.String("data", string(data)),
		))
	})
}

// OTelVertex is a ports.Vertex backed by a span. Output is batched into span events.
type OTelVertex struct {
	span   trace.Span
	stdout *BatchProcessor
	stderr *BatchProcessor
	once   sync.Once
}

// Stdout returns a writer recording standard output as span events.
func (v *OTelVertex) Stdout() io.Writer {
	return v.stdout
}

// Stderr returns a writer recording error output as span events.
func (v *OTelVertex) Stderr() io.Writer {
	return v.stderr
}

// Log adds a log event to the span.
func (v *OTelVertex) Log(level domain.LogLevel, msg string) {
	v.span.AddEvent("log", trace.WithAttributes(
		attribute.String("level", level.String()),
		attribute.String("message", msg),
	))
}

// Complete flushes the output and ends the span, marking it failed when err is not nil.
func (v *OTelVertex) Complete(err error) {
	v.once.Do(func() {
		_ = v.stdout.Close()
		_ = v.stderr.Close()
		if err != nil {
			v.span.RecordError(err)
			v.span.SetStatus(codes.Error, err.Error())
		} else {
			v.span.SetStatus(codes.Ok, "")
		}
		v.span.End()
	})
}
