package hh

import "math"

// AlphaN returns the opening rate of the potassium activation gate at
// voltage v. The expression has a 0/0 form at v=10; the raw evaluation is
// kept, so AlphaN(10) is NaN.
func AlphaN(v float64) float64 {
	return 0.01 * (10.0 - v) / (math.Exp((10.0-v)/10.0) - 1.0)
}

// BetaN returns the closing rate of the potassium activation gate.
func BetaN(v float64) float64 {
	return 0.125 * math.Exp(-v/80.0)
}

// AlphaM returns the opening rate of the sodium activation gate. Like
// AlphaN, it has a 0/0 form, here at v=25.
func AlphaM(v float64) float64 {
	return 0.1 * (25.0 - v) / (math.Exp((25.0-v)/10.0) - 1.0)
}

// BetaM returns the closing rate of the sodium activation gate.
func BetaM(v float64) float64 {
	return 4.0 * math.Exp(-v/18.0)
}

// AlphaH returns the opening rate of the sodium inactivation gate.
func AlphaH(v float64) float64 {
	return 0.07 * math.Exp(-v/20.0)
}

// BetaH returns the closing rate of the sodium inactivation gate.
func BetaH(v float64) float64 {
	return 1.0 / (math.Exp((30.0-v)/10.0) + 1.0)
}

// Heaviside is the stimulus gate. The threshold is at 1, not at 0: the
// gate opens only when x >= 1, which delays the stimulus edges by one
// full time unit on each side of the window.
func Heaviside(x float64) float64 {
	if x >= 1.0 {
		return 1.0
	}

	return 0.0
}
