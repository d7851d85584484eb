package hh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sarchlab/hhsim/hh"
)

// The stimulus window is narrowed by one millisecond on each side because
// of the Heaviside threshold at 1.
func TestAppliedCurrentWindow(t *testing.T) {
	p := hh.DefaultParams()

	assert.Equal(t, 0.0, p.AppliedCurrent(0.0))
	assert.Equal(t, 0.0, p.AppliedCurrent(1000.0))
	assert.Equal(t, 0.0, p.AppliedCurrent(1000.999999))
	assert.Equal(t, 12.0, p.AppliedCurrent(1001.0))
	assert.Equal(t, 12.0, p.AppliedCurrent(3000.0))
	assert.Equal(t, 12.0, p.AppliedCurrent(4999.0))
	assert.Equal(t, 0.0, p.AppliedCurrent(4999.000001))
	assert.Equal(t, 0.0, p.AppliedCurrent(5000.0))
	assert.Equal(t, 0.0, p.AppliedCurrent(10000.0))
}

// The gating variables start at the alpha rates evaluated at the leak
// reversal potential, not at the alpha/(alpha+beta) steady state.
func TestInitialState(t *testing.T) {
	p := hh.DefaultParams()
	s := p.InitialState()

	assert.Equal(t, 10.6, s.V)
	assert.Equal(t, hh.AlphaN(10.6), s.N)
	assert.Equal(t, hh.AlphaM(10.6), s.M)
	assert.Equal(t, hh.AlphaH(10.6), s.H)
}

func TestDerivativesAtInitialState(t *testing.T) {
	p := hh.DefaultParams()
	d := p.Derivatives(0.0, p.InitialState())

	assert.InDelta(t, 46.04454704094989, d.V, 1e-9)
	assert.InDelta(t, 0.08113428295547145, d.N, 1e-12)
	assert.InDelta(t, -0.7452771047209661, d.M, 1e-12)
	assert.InDelta(t, 0.03432772771266201, d.H, 1e-12)
}

func TestDerivativesArePure(t *testing.T) {
	p := hh.DefaultParams()
	s := hh.State{V: 30.0, N: 0.4, M: 0.2, H: 0.5}

	d1 := p.Derivatives(2000.0, s)
	d2 := p.Derivatives(2000.0, s)

	assert.Equal(t, d1, d2)
}

func TestNumSamples(t *testing.T) {
	p := hh.DefaultParams()
	assert.Equal(t, 1000000, p.NumSamples())

	p.TMax = 5.0
	assert.Equal(t, 500, p.NumSamples())

	p.TMax = 0.015
	assert.Equal(t, 2, p.NumSamples())
}
