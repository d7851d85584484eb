// Package heun integrates the Hodgkin-Huxley system over a fixed time grid
// with Heun's second-order predictor-corrector scheme.
package heun

import "github.com/sarchlab/hhsim/hh"

// An Integrator drives a Hodgkin-Huxley run from the initial condition to
// the end of the time grid. It is hookable: hooks fire as each trajectory
// sample is finalized and once when the run completes.
type Integrator struct {
	HookableBase

	params hh.Params
}

// NewIntegrator creates an Integrator for the given parameter set.
func NewIntegrator(params hh.Params) *Integrator {
	return &Integrator{params: params}
}

// Params returns the parameter set the integrator runs with.
func (it *Integrator) Params() hh.Params {
	return it.params
}

// Step advances state s at time t by one step of size Dt. The corrector
// stage is evaluated at t, not t+Dt: the stimulus term is the only time
// dependence of the field, so both stages see the same applied current.
func (it *Integrator) Step(t float64, s hh.State) hh.State {
	p := it.params

	d1 := p.Derivatives(t, s)

	predicted := hh.State{
		V: s.V + d1.V*p.Dt,
		N: s.N + d1.N*p.Dt,
		M: s.M + d1.M*p.Dt,
		H: s.H + d1.H*p.Dt,
	}

	d2 := p.Derivatives(t, predicted)

	return hh.State{
		V: s.V + (d1.V+d2.V)*p.Dt/2.0,
		N: s.N + (d1.N+d2.N)*p.Dt/2.0,
		M: s.M + (d1.M+d2.M)*p.Dt/2.0,
		H: s.H + (d1.H+d2.H)*p.Dt/2.0,
	}
}

// Run integrates the full trajectory and returns it. The time grid is
// built by accumulation, t[i] = t[i-1] + Dt, matching the grid the steps
// are evaluated on.
func (it *Integrator) Run() *Trajectory {
	p := it.params
	numSamples := p.NumSamples()

	tr := newTrajectory(numSamples)

	tr.Time[0] = 0.0
	for i := 1; i < numSamples; i++ {
		tr.Time[i] = tr.Time[i-1] + p.Dt
	}

	state := p.InitialState()
	tr.set(0, state)
	it.invokeSample(0, tr.Time[0], state)

	for i := 0; i < numSamples-1; i++ {
		state = it.Step(tr.Time[i], state)
		tr.set(i+1, state)
		it.invokeSample(i+1, tr.Time[i+1], state)
	}

	it.InvokeHook(HookCtx{
		Domain: it,
		Pos:    HookPosRunEnd,
		Item:   tr,
	})

	return tr
}

func (it *Integrator) invokeSample(index int, time float64, s hh.State) {
	it.InvokeHook(HookCtx{
		Domain: it,
		Pos:    HookPosSample,
		Item:   Sample{Index: index, Time: time, State: s},
	})
}
