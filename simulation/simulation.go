// Package simulation wires the Hodgkin-Huxley integrator to its output
// backends and drives complete runs.
package simulation

import (
	"github.com/sarchlab/hhsim/heun"
	"github.com/sarchlab/hhsim/hh"
	"github.com/sarchlab/hhsim/recording"
)

// A Simulation owns the parameter set, the integrator, and the output
// backends of one Hodgkin-Huxley run.
type Simulation struct {
	id     string
	params hh.Params

	integrator *heun.Integrator
	recorder   recording.DataRecorder
	runLog     *recording.RunLogger

	trajectory *heun.Trajectory
}

// ID returns the ID of the simulation.
func (s *Simulation) ID() string {
	return s.id
}

// Params returns the model parameters of the simulation.
func (s *Simulation) Params() hh.Params {
	return s.params
}

// Integrator returns the integrator used by the simulation.
func (s *Simulation) Integrator() *heun.Integrator {
	return s.integrator
}

// Run integrates the full trajectory and returns the final membrane
// voltage. Re-running with the same parameters yields identical output;
// the simulation holds no hidden state across runs.
func (s *Simulation) Run() float64 {
	if s.runLog != nil {
		s.runLog.LogStart(s.params)
	}

	s.trajectory = s.integrator.Run()
	finalVoltage := s.trajectory.FinalVoltage()

	if s.runLog != nil {
		s.runLog.LogEnd(finalVoltage)
	}

	return finalVoltage
}

// Trajectory returns the trajectory of the last finished run, or nil if
// the simulation has not run yet.
func (s *Simulation) Trajectory() *heun.Trajectory {
	return s.trajectory
}

// Terminate terminates the simulation, flushing and closing the recorder.
func (s *Simulation) Terminate() {
	if s.recorder != nil {
		s.recorder.Close()
	}
}
