// Package observability exposes Prometheus collectors for the tracker.
package observability

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Yandex-Practicum/go-fitness-tracker/internal/sensors"
	"github.com/Yandex-Practicum/go-fitness-tracker/internal/training"
)

// Failure reasons used as label values.
const (
	ReasonUnknownType     = "unknown_type"
	ReasonArity           = "arity"
	ReasonInvalidValue    = "invalid_value"
	ReasonInvalidDuration = "invalid_duration"
	ReasonInvalidHeight   = "invalid_height"
	ReasonOther           = "other"
)

// Metrics groups counters updated by the tracker.
type Metrics struct {
	processed *prometheus.CounterVec
	failed    *prometheus.CounterVec
}

// NewMetrics creates tracker collectors and registers them with reg.
// A nil reg leaves collectors unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		processed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fitness_tracker",
			Subsystem: "packages",
			Name:      "processed_total",
			Help:      "Number of sensor packages turned into a workout report.",
		}, []string{"workout_type"}),
		failed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fitness_tracker",
			Subsystem: "packages",
			Name:      "failed_total",
			Help:      "Number of sensor packages rejected, grouped by reason.",
		}, []string{"reason"}),
	}

	if reg != nil {
		for _, c := range []prometheus.Collector{m.processed, m.failed} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// RecordProcessed counts a successfully reported package.
func (m *Metrics) RecordProcessed(workoutType string) {
	if m == nil {
		return
	}
	m.processed.WithLabelValues(workoutType).Inc()
}

// RecordFailed counts a rejected package.
func (m *Metrics) RecordFailed(err error) {
	if m == nil {
		return
	}
	m.failed.WithLabelValues(Reason(err)).Inc()
}

// Processed returns the processed counter for workoutType.
func (m *Metrics) Processed(workoutType string) prometheus.Counter {
	return m.processed.WithLabelValues(workoutType)
}

// Failed returns the failure counter for reason.
func (m *Metrics) Failed(reason string) prometheus.Counter {
	return m.failed.WithLabelValues(reason)
}

// Reason maps a package error to its failure label.
func Reason(err error) string {
	switch {
	case errors.Is(err, sensors.ErrUnknownWorkoutType):
		return ReasonUnknownType
	case errors.Is(err, sensors.ErrArityMismatch):
		return ReasonArity
	case errors.Is(err, sensors.ErrInvalidValue):
		return ReasonInvalidValue
	case errors.Is(err, training.ErrInvalidDuration):
		return ReasonInvalidDuration
	case errors.Is(err, training.ErrInvalidHeight):
		return ReasonInvalidHeight
	default:
		return ReasonOther
	}
}
