package training

const (
	// SwimmingLenStep is the distance covered by one stroke in meters.
	SwimmingLenStep = 1.38

	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// Swimming is a pool swimming workout. Action counts strokes, LengthPool is
// in meters and CountPool is the number of pool lengths swum.
type Swimming struct {
	base
	LengthPool float64
	CountPool  int
}

// NewSwimming returns a swimming workout for the given sensor readings.
func NewSwimming(action int, duration, weight, lengthPool float64, countPool int) (*Swimming, error) {
	b, err := newBase(action, duration, weight)
	if err != nil {
		return nil, err
	}
	return &Swimming{base: b, LengthPool: lengthPool, CountPool: countPool}, nil
}

func (s *Swimming) Name() string {
	return "Swimming"
}

func (s *Swimming) Distance() float64 {
	return s.distance(SwimmingLenStep)
}

// MeanSpeed is derived from pool metrics, not from stroke count.
func (s *Swimming) MeanSpeed() float64 {
	return s.LengthPool * float64(s.CountPool) / MInKm / s.Duration
}

func (s *Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiplier * s.Weight
}
