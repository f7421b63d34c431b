package orchestrator

import (
	"slices"

	"go.trai.ch/turbo/internal/core/domain"
	"go.trai.ch/turbo/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// BuilderTurbo selects the early-release orchestrator.
	BuilderTurbo = "turbo"
	// BuilderSequential selects the one-unit-at-a-time builder.
	BuilderSequential = "sequential"
)

type factory func(logger ports.Logger, reporter ports.BuildReporter) ports.Builder

// Registry resolves builders by id.
type Registry struct {
	logger    ports.Logger
	factories map[string]factory
}

// NewRegistry creates a registry holding the turbo and sequential builders.
func NewRegistry(logger ports.Logger) *Registry {
	return &Registry{
		logger: logger,
		factories: map[string]factory{
			BuilderTurbo: func(l ports.Logger, r ports.BuildReporter) ports.Builder {
				return New(l, r)
			},
			BuilderSequential: func(l ports.Logger, r ports.BuildReporter) ports.Builder {
				return NewSequential(l, r)
			},
		},
	}
}

// Get returns the builder registered under id, reporting to reporter.
func (r *Registry) Get(id string, reporter ports.BuildReporter) (ports.Builder, error) {
	f, ok := r.factories[id]
	if !ok {
		err := zerr.Wrap(domain.ErrUnknownBuilder, "cannot select builder")
		return nil, zerr.With(err, "builder", id)
	}
	return f(r.logger, reporter), nil
}

// Names returns the registered builder ids in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for id := range r.factories {
		names = append(names, id)
	}
	slices.Sort(names)
	return names
}

// Reorders reports whether the builder relies on package tasks running before test tasks.
func Reorders(id string) bool {
	return id == BuilderTurbo
}
