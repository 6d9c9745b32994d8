package tracker

import (
	"github.com/sirupsen/logrus"

	"github.com/Yandex-Practicum/go-fitness-tracker/internal/observability"
)

type Option = func(t *Tracker)

// WithLogger sets the logger used for batch progress
func WithLogger(log logrus.FieldLogger) Option {
	return func(t *Tracker) {
		if log != nil {
			t.log = log
		}
	}
}

// WithWorkers limits how many packages are computed at once
func WithWorkers(n int) Option {
	return func(t *Tracker) {
		if n < 1 {
			n = 1
		}
		t.workers = n
	}
}

// WithMetrics sets collectors updated for every reported or rejected package
func WithMetrics(m *observability.Metrics) Option {
	return func(t *Tracker) {
		t.metrics = m
	}
}
