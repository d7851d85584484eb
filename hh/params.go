// Package hh implements the Hodgkin-Huxley membrane model for a single
// excitable cell: the voltage-dependent rate functions, the gating
// kinetics, and the ionic currents that together define the vector field
// of the four-variable system (V, n, m, h).
package hh

import "math"

// Params holds the constants of the membrane model and of the stimulus
// protocol. A Params value is fixed for the whole duration of a run and is
// shared, unmodified, by both stages of every integration step.
type Params struct {
	// Cm is the membrane capacitance (uF/cm^2).
	Cm float64

	// GK, GNa, and GL are the maximal potassium, sodium, and leak
	// conductances (mS/cm^2).
	GK  float64
	GNa float64
	GL  float64

	// EK, ENa, and EL are the reversal potentials of the three channel
	// types (mV, relative to the resting potential).
	EK  float64
	ENa float64
	EL  float64

	// TMax is the simulation horizon and Dt the integration step (ms).
	TMax float64
	Dt   float64

	// IStart and IEnd delimit the stimulus window (ms). IAmp is the
	// amplitude of the injected current (uA/cm^2).
	IStart float64
	IEnd   float64
	IAmp   float64
}

// DefaultParams returns the stock squid-axon parameter set with a
// 12 uA/cm^2 pulse applied between t=1000 and t=5000 ms.
func DefaultParams() Params {
	return Params{
		Cm: 1.0,

		GK:  36.0,
		GNa: 120.0,
		GL:  0.3,

		EK:  -12.0,
		ENa: 115.0,
		EL:  10.6,

		TMax: 10000.0,
		Dt:   0.01,

		IStart: 1000.0,
		IEnd:   5000.0,
		IAmp:   12.0,
	}
}

// NumSamples returns the number of entries on the time grid, including the
// initial condition.
func (p Params) NumSamples() int {
	return int(math.Ceil(p.TMax / p.Dt))
}
