package training

import "math"

// FloorDiv returns a/b rounded toward negative infinity.
//
// The quotient is computed from the remainder of a by b rather than by
// flooring a/b directly, which keeps results exact when a/b rounds up to
// the next integer in floating point.
func FloorDiv(a, b float64) float64 {
	mod := math.Mod(a, b)
	div := (a - mod) / b
	if mod != 0 && (b < 0) != (mod < 0) {
		div -= 1
	}
	if div == 0 {
		// keep the sign of the true quotient
		return math.Copysign(0, a/b)
	}
	floor := math.Floor(div)
	if div-floor > 0.5 {
		floor += 1
	}
	return floor
}
