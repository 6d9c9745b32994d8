package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yandex-Practicum/go-fitness-tracker/internal/sensors"
)

func TestRandomPackage(t *testing.T) {
	for _, workoutType := range sensors.WorkoutTypes() {
		p, err := randomPackage(workoutType)
		require.NoError(t, err)

		_, err = sensors.Read(p)
		assert.NoError(t, err, "generated package must be readable: %v", p)

		fields := strings.Fields(formatPackage(p))
		assert.Equal(t, workoutType, fields[0])
		assert.Len(t, fields, len(p.Data)+1)
	}

	_, err := randomPackage("XYZ")
	assert.Error(t, err)
}

func TestFormatPackage(t *testing.T) {
	p := sensors.Package{Type: sensors.WorkoutSwimming, Data: []float64{720, 1.5, 80, 25, 40}}
	assert.Equal(t, "SWM 720 1.5 80 25 40", formatPackage(p))
}

func TestUnknownWorkoutType(t *testing.T) {
	for i := 0; i < 100; i++ {
		tr, err := sensors.ReadPackage(unknownWorkoutType(), nil)
		assert.Nil(t, tr)
		assert.ErrorIs(t, err, sensors.ErrUnknownWorkoutType)
	}
}
