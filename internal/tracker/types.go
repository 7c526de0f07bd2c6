package tracker

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mauv0809/volleystat/internal/metrics"
	"github.com/mauv0809/volleystat/internal/report"
)

const (
	recentLimit        = 5
	topPerformersLimit = 3
)

// ErrNoSink is returned by exports when no report sink is configured.
var ErrNoSink = errors.New("no report sink configured")

// Tracker handles the business logic of recording and reporting volleyball data.
type Tracker struct {
	store     Store
	publisher Publisher
	metrics   metrics.Metrics
	sink      report.Sink
	validate  *validator.Validate
	now       func() time.Time
}

// Option configures optional Tracker collaborators.
type Option func(*Tracker)

// WithSink enables spreadsheet exports.
func WithSink(sink report.Sink) Option {
	return func(t *Tracker) {
		t.sink = sink
	}
}
