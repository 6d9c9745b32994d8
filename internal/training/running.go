package training

const (
	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 20
)

// Running is a running workout.
type Running struct {
	base
}

// NewRunning returns a running workout for the given sensor readings.
func NewRunning(action int, duration, weight float64) (*Running, error) {
	b, err := newBase(action, duration, weight)
	if err != nil {
		return nil, err
	}
	return &Running{base: b}, nil
}

func (r *Running) Name() string {
	return "Running"
}

func (r *Running) Distance() float64 {
	return r.distance(LenStep)
}

func (r *Running) MeanSpeed() float64 {
	return r.Distance() / r.Duration
}

func (r *Running) SpentCalories() float64 {
	return (runningCaloriesMeanSpeedMultiplier*r.MeanSpeed() - runningCaloriesMeanSpeedShift) *
		r.Weight / MInKm * r.durationMin()
}
