package random

// Value ranges follow what a wrist tracker reports for a single workout.
const (
	minAction, maxAction         = 1000, 10000
	maxDurationHours             = 3
	minWeight, maxWeight         = 80, 140
	minHeight, maxHeight         = 150, 220
	minLengthPool, maxLengthPool = 10, 50
	minCountPool, maxCountPool   = 1, 10
)

// Action returns random number of steps or strokes
func Action() int {
	return int(rnd.Int63n(maxAction-minAction) + minAction)
}

// Duration returns random positive workout duration in hours
func Duration() float64 {
	for {
		d := float64(rnd.Int63n(maxDurationHours)) + rnd.Float64()
		if d > 0 {
			return d
		}
	}
}

// Weight returns random athlete weight in kilograms
func Weight() float64 {
	return float64(rnd.Int63n(maxWeight-minWeight) + minWeight)
}

// Height returns random athlete height in centimeters
func Height() float64 {
	return float64(rnd.Int63n(maxHeight-minHeight) + minHeight)
}

// LengthPool returns random pool length in meters
func LengthPool() float64 {
	return float64(rnd.Int63n(maxLengthPool-minLengthPool) + minLengthPool)
}

// CountPool returns random number of pool lengths
func CountPool() int {
	return int(rnd.Int63n(maxCountPool-minCountPool) + minCountPool)
}

// RunningData returns sensor values in the order a RUN package carries them
func RunningData() []float64 {
	return []float64{float64(Action()), Duration(), Weight()}
}

// WalkingData returns sensor values in the order a WLK package carries them
func WalkingData() []float64 {
	return []float64{float64(Action()), Duration(), Weight(), Height()}
}

// SwimmingData returns sensor values in the order a SWM package carries them
func SwimmingData() []float64 {
	return []float64{float64(Action()), Duration(), Weight(), LengthPool(), float64(CountPool())}
}
