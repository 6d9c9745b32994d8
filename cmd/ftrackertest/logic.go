package ftrackertest

import (
	"fmt"
	"math"
)

const (
	lenStep = 0.65
	mInKm   = 1000
	minInH  = 60

	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 20

	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029

	swimmingLenStep                  = 1.38
	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

func distance(action int, step float64) float64 {
	return float64(action) * step / mInKm
}

func meanSpeed(action int, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	return distance(action, lenStep) / duration
}

func swimmingMeanSpeed(lengthPool float64, countPool int, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	return lengthPool * float64(countPool) / mInKm / duration
}

func runningSpentCalories(action int, duration, weight float64) float64 {
	return (runningCaloriesMeanSpeedMultiplier*meanSpeed(action, duration) - runningCaloriesMeanSpeedShift) *
		weight / mInKm * duration * minInH
}

func walkingSpentCalories(action int, duration, weight, height float64) float64 {
	speed := meanSpeed(action, duration)
	// speed²/height rounded toward negative infinity
	coefficient := math.Floor(speed * speed / height)
	return (walkingCaloriesWeightMultiplier*weight + coefficient*walkingSpeedHeightMultiplier*weight) * duration * minInH
}

func swimmingSpentCalories(lengthPool float64, countPool int, duration, weight float64) float64 {
	return (swimmingMeanSpeed(lengthPool, countPool, duration) + swimmingCaloriesMeanSpeedShift) *
		swimmingCaloriesWeightMultiplier * weight
}

func infoMessage(trainingType string, duration, distance, speed, calories float64) string {
	return fmt.Sprintf("Workout type: %s; Duration: %.3f h.; Distance: %.3f km; Avg. speed: %.3f km/h; Calories burned: %.3f.",
		trainingType, duration, distance, speed, calories)
}

// expectedDefaultOutput returns lines the binary prints for its built-in batch.
func expectedDefaultOutput() []string {
	return []string{
		infoMessage("Swimming", 1, distance(720, swimmingLenStep),
			swimmingMeanSpeed(25, 40, 1), swimmingSpentCalories(25, 40, 1, 80)),
		infoMessage("Running", 1, distance(15000, lenStep),
			meanSpeed(15000, 1), runningSpentCalories(15000, 1, 75)),
		infoMessage("SportsWalking", 1, distance(9000, lenStep),
			meanSpeed(9000, 1), walkingSpentCalories(9000, 1, 75, 180)),
	}
}
