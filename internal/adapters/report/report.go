// Package report records the scheduling history of a build and writes it as JSON.
package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/turbo/internal/core/domain"
	"go.trai.ch/turbo/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildReporter = (*Recorder)(nil)

// UnitRecord is the history of one unit.
type UnitRecord struct {
	Unit          string     `json:"unit"`
	Priority      int        `json:"priority"`
	SubmittedAt   *time.Time `json:"submittedAt,omitempty"`
	ReadyAt       *time.Time `json:"readyAt,omitempty"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
	EarlyReleased bool       `json:"earlyReleased"`
	Error         string     `json:"error,omitempty"`
}

// Report is the JSON document written after a build.
type Report struct {
	RunID      string       `json:"runId"`
	Builder    string       `json:"builder"`
	StartedAt  time.Time    `json:"startedAt"`
	FinishedAt time.Time    `json:"finishedAt"`
	Units      []UnitRecord `json:"units"`
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithClock replaces the time source.
func WithClock(now func() time.Time) Option {
	return func(r *Recorder) {
		r.now = now
	}
}

// Recorder implements ports.BuildReporter, keeping the history in memory.
type Recorder struct {
	mu      sync.Mutex
	runID   uuid.UUID
	builder string
	now     func() time.Time
	started time.Time
	units   map[domain.InternedString]*UnitRecord
	order   []domain.InternedString
}

// NewRecorder creates a Recorder for the run identified by runID.
func NewRecorder(runID uuid.UUID, builder string, opts ...Option) *Recorder {
	r := &Recorder{
		runID:   runID,
		builder: builder,
		now:     time.Now,
		units:   make(map[domain.InternedString]*UnitRecord),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.started = r.now()
	return r
}

// UnitSubmitted records the submission of the unit.
func (r *Recorder) UnitSubmitted(unit domain.InternedString, priority int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := r.entry(unit)
	rec.Priority = priority
	rec.SubmittedAt = r.stamp()
}

// UnitReady records the release of the unit's dependents.
func (r *Recorder) UnitReady(unit domain.InternedString, early bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := r.entry(unit)
	rec.ReadyAt = r.stamp()
	rec.EarlyReleased = early
}

// UnitCompleted records the end of the unit's work.
func (r *Recorder) UnitCompleted(unit domain.InternedString, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := r.entry(unit)
	rec.CompletedAt = r.stamp()
	if err != nil {
		rec.Error = err.Error()
	}
}

// Snapshot returns the report so far, units in submission order.
func (r *Recorder) Snapshot() Report {
	r.mu.Lock()
	defer r.mu.Unlock()

	units := make([]UnitRecord, 0, len(r.order))
	for _, id := range r.order {
		units = append(units, *r.units[id])
	}
	return Report{
		RunID:      r.runID.String(),
		Builder:    r.builder,
		StartedAt:  r.started,
		FinishedAt: r.now(),
		Units:      units,
	}
}

// WriteFile writes the report to path, creating parent directories.
func (r *Recorder) WriteFile(path string) error {
	data, err := json.MarshalIndent(r.Snapshot(), "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrReportWriteFailed.Error())
	}

	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "path", path)
	}
	//nolint:gosec // Path is provided by the user
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "path", path)
	}
	return nil
}

// entry must be called with r.mu held.
func (r *Recorder) entry(unit domain.InternedString) *UnitRecord {
	rec, ok := r.units[unit]
	if !ok {
		rec = &UnitRecord{Unit: unit.String()}
		r.units[unit] = rec
		r.order = append(r.order, unit)
	}
	return rec
}

func (r *Recorder) stamp() *time.Time {
	t := r.now()
	return &t
}
