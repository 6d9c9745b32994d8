// Package training implements workout records and the formulas used to
// compute distance, mean speed and spent calories for each of them.
package training

import (
	"errors"
	"fmt"
)

const (
	// MInKm is the number of meters in a kilometer.
	MInKm = 1000
	// MinInH is the number of minutes in an hour.
	MinInH = 60
	// LenStep is the length of one running or walking step in meters.
	LenStep = 0.65
)

var (
	// ErrInvalidDuration is returned for a workout with non-positive duration.
	ErrInvalidDuration = errors.New("workout duration must be positive")
	// ErrInvalidHeight is returned for a sports walking with non-positive height.
	ErrInvalidHeight = errors.New("athlete height must be positive")
)

// Training is a completed workout able to report its derived metrics.
type Training interface {
	// Name returns the workout type name used in reports.
	Name() string
	// Hours returns workout duration in hours.
	Hours() float64
	// Distance returns covered distance in kilometers.
	Distance() float64
	// MeanSpeed returns mean speed in km/h.
	MeanSpeed() float64
	// SpentCalories returns burned kilocalories.
	SpentCalories() float64
}

// base holds sensor readings shared by every workout type.
type base struct {
	Action   int
	Duration float64
	Weight   float64
}

func newBase(action int, duration, weight float64) (base, error) {
	if !(duration > 0) {
		return base{}, fmt.Errorf("%w: got %v h", ErrInvalidDuration, duration)
	}
	return base{Action: action, Duration: duration, Weight: weight}, nil
}

// distance is shared by step based workouts.
func (b base) distance(lenStep float64) float64 {
	return float64(b.Action) * lenStep / MInKm
}

func (b base) Hours() float64 {
	return b.Duration
}

func (b base) durationMin() float64 {
	return b.Duration * MinInH
}

// Info builds a report snapshot of the given workout.
func Info(t Training) InfoMessage {
	return InfoMessage{
		TrainingType: t.Name(),
		Duration:     t.Hours(),
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     t.SpentCalories(),
	}
}
