package heun

import "github.com/sarchlab/hhsim/hh"

// A Trajectory stores the time grid and the four state sequences of a
// finished run. All five slices have the same length. The integrator fills
// them strictly forward; entries are never revisited once written.
type Trajectory struct {
	Time []float64
	V    []float64
	N    []float64
	M    []float64
	H    []float64
}

func newTrajectory(n int) *Trajectory {
	return &Trajectory{
		Time: make([]float64, n),
		V:    make([]float64, n),
		N:    make([]float64, n),
		M:    make([]float64, n),
		H:    make([]float64, n),
	}
}

func (tr *Trajectory) set(i int, s hh.State) {
	tr.V[i] = s.V
	tr.N[i] = s.N
	tr.M[i] = s.M
	tr.H[i] = s.H
}

// Len returns the number of samples in the trajectory.
func (tr *Trajectory) Len() int {
	return len(tr.Time)
}

// StateAt returns the state at sample index i.
func (tr *Trajectory) StateAt(i int) hh.State {
	return hh.State{V: tr.V[i], N: tr.N[i], M: tr.M[i], H: tr.H[i]}
}

// FinalVoltage returns the membrane voltage at the last sample.
func (tr *Trajectory) FinalVoltage() float64 {
	return tr.V[len(tr.V)-1]
}
