package training

import "fmt"

const (
	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029
)

// SportsWalking is a sports walking workout. Height is in centimeters.
type SportsWalking struct {
	base
	Height float64
}

// NewSportsWalking returns a sports walking workout for the given sensor readings.
func NewSportsWalking(action int, duration, weight, height float64) (*SportsWalking, error) {
	b, err := newBase(action, duration, weight)
	if err != nil {
		return nil, err
	}
	if !(height > 0) {
		return nil, fmt.Errorf("%w: got %v cm", ErrInvalidHeight, height)
	}
	return &SportsWalking{base: b, Height: height}, nil
}

func (w *SportsWalking) Name() string {
	return "SportsWalking"
}

func (w *SportsWalking) Distance() float64 {
	return w.distance(LenStep)
}

func (w *SportsWalking) MeanSpeed() float64 {
	return w.Distance() / w.Duration
}

// SpentCalories uses the floored ratio of squared speed to height as an
// empirical coefficient, so it stays zero for any realistic walking pace.
func (w *SportsWalking) SpentCalories() float64 {
	speed := w.MeanSpeed()
	return (walkingCaloriesWeightMultiplier*w.Weight +
		FloorDiv(speed*speed, w.Height)*walkingSpeedHeightMultiplier*w.Weight) *
		w.durationMin()
}
