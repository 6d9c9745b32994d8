package main

import (
	"fmt"

	"github.com/Yandex-Practicum/go-fitness-tracker/internal/random"
	"github.com/Yandex-Practicum/go-fitness-tracker/internal/sensors"
)

var unknownTypeCmd = cmd{
	name:      "unknown-type",
	shortHelp: "generates a workout type code the tracker rejects",
	do:        generateUnknownType,
}

func generateUnknownType() {
	fmt.Print(unknownWorkoutType())
}

func unknownWorkoutType() string {
	known := make(map[string]struct{})
	for _, code := range sensors.WorkoutTypes() {
		known[code] = struct{}{}
	}

	for {
		code := random.ASCIIString(3, 15)
		if _, ok := known[code]; !ok {
			return code
		}
	}
}
