package hh

// State is the instantaneous state of the membrane: the voltage and the
// three gating variables. The same struct doubles as the value of the
// vector field, holding one time derivative per state variable.
type State struct {
	// V is the membrane voltage (mV, relative to rest).
	V float64

	// N is the potassium activation gate.
	N float64

	// M and H are the sodium activation and inactivation gates.
	M float64
	H float64
}

// AppliedCurrent returns the stimulus current at time t. The pulse edges
// inherit Heaviside's threshold at 1: the current switches on one full
// millisecond after IStart and off one full millisecond before IEnd.
func (p Params) AppliedCurrent(t float64) float64 {
	return p.IAmp * Heaviside(t-p.IStart) * Heaviside(p.IEnd-t)
}

// Derivatives evaluates the vector field at time t and state s. It is a
// pure function of its arguments and the parameter constants.
func (p Params) Derivatives(t float64, s State) State {
	iApp := p.AppliedCurrent(t)

	n4 := s.N * s.N * s.N * s.N
	m3 := s.M * s.M * s.M

	iK := p.GK * n4 * (s.V - p.EK)
	iNa := p.GNa * m3 * s.H * (s.V - p.ENa)
	iL := p.GL * (s.V - p.EL)

	return State{
		V: (iApp - iK - iNa - iL) / p.Cm,
		N: AlphaN(s.V)*(1.0-s.N) - BetaN(s.V)*s.N,
		M: AlphaM(s.V)*(1.0-s.M) - BetaM(s.V)*s.M,
		H: AlphaH(s.V)*(1.0-s.H) - BetaH(s.V)*s.H,
	}
}

// InitialState returns the starting point of a run: the voltage at the
// leak reversal potential, and each gate set to its alpha rate evaluated
// there. The gates are deliberately not the steady-state alpha/(alpha+beta)
// values; the off-rest start makes the model fire once before the stimulus.
func (p Params) InitialState() State {
	v := p.EL

	return State{
		V: v,
		N: AlphaN(v),
		M: AlphaM(v),
		H: AlphaH(v),
	}
}
