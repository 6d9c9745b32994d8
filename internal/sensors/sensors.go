// Package sensors turns raw sensor packages into workout records.
package sensors

import (
	"errors"
	"fmt"
	"math"

	"github.com/Yandex-Practicum/go-fitness-tracker/internal/training"
)

const (
	WorkoutSwimming = "SWM"
	WorkoutRunning  = "RUN"
	WorkoutWalking  = "WLK"
)

var (
	ErrUnknownWorkoutType = errors.New("unknown workout type")
	ErrArityMismatch      = errors.New("unexpected number of sensor values")
	ErrInvalidValue       = errors.New("invalid sensor value")
)

// Package is a single reading received from a tracker: the workout type code
// and its values in the order the workout type defines.
type Package struct {
	Type string
	Data []float64
}

// PackageError reports a package that could not be read.
type PackageError struct {
	Type string
	Data []float64
	Err  error
}

func (e *PackageError) Error() string {
	return fmt.Sprintf("cannot read %q package %v: %s", e.Type, e.Data, e.Err)
}

func (e *PackageError) Unwrap() error {
	return e.Err
}

type reader struct {
	arity int
	read  func(data []float64) (training.Training, error)
}

var readers = map[string]reader{
	WorkoutSwimming: {
		arity: 5,
		read: func(data []float64) (training.Training, error) {
			action, err := count("action", data[0])
			if err != nil {
				return nil, err
			}
			countPool, err := count("count_pool", data[4])
			if err != nil {
				return nil, err
			}
			return training.NewSwimming(action, data[1], data[2], data[3], countPool)
		},
	},
	WorkoutRunning: {
		arity: 3,
		read: func(data []float64) (training.Training, error) {
			action, err := count("action", data[0])
			if err != nil {
				return nil, err
			}
			return training.NewRunning(action, data[1], data[2])
		},
	},
	WorkoutWalking: {
		arity: 4,
		read: func(data []float64) (training.Training, error) {
			action, err := count("action", data[0])
			if err != nil {
				return nil, err
			}
			return training.NewSportsWalking(action, data[1], data[2], data[3])
		},
	},
}

// ReadPackage builds the workout record matching workoutType from its sensor values.
func ReadPackage(workoutType string, data []float64) (training.Training, error) {
	r, ok := readers[workoutType]
	if !ok {
		return nil, &PackageError{Type: workoutType, Data: data, Err: ErrUnknownWorkoutType}
	}
	if len(data) != r.arity {
		return nil, &PackageError{
			Type: workoutType,
			Data: data,
			Err:  fmt.Errorf("%w: want %d, got %d", ErrArityMismatch, r.arity, len(data)),
		}
	}

	t, err := r.read(data)
	if err != nil {
		return nil, &PackageError{Type: workoutType, Data: data, Err: err}
	}
	return t, nil
}

// Read is ReadPackage for a Package value.
func Read(p Package) (training.Training, error) {
	return ReadPackage(p.Type, p.Data)
}

// WorkoutTypes returns known workout type codes.
func WorkoutTypes() []string {
	return []string{WorkoutSwimming, WorkoutRunning, WorkoutWalking}
}

// DefaultPackages returns the sample batch processed by the tracker binary.
func DefaultPackages() []Package {
	return []Package{
		{Type: WorkoutSwimming, Data: []float64{720, 1, 80, 25, 40}},
		{Type: WorkoutRunning, Data: []float64{15000, 1, 75}},
		{Type: WorkoutWalking, Data: []float64{9000, 1, 75, 180}},
	}
}

func count(name string, v float64) (int, error) {
	if v < 0 || v != math.Trunc(v) || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer, got %v", ErrInvalidValue, name, v)
	}
	return int(v), nil
}
