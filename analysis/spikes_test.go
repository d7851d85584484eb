package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarchlab/hhsim/analysis"
	"github.com/sarchlab/hhsim/heun"
	"github.com/sarchlab/hhsim/hh"
)

func TestAnalyzeSyntheticTrace(t *testing.T) {
	time := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	voltage := []float64{0, 30, 80, 95, 20, -5, 60, 70, 10, 0}

	detector := analysis.NewSpikeDetector()
	report := detector.Analyze(time, voltage)

	assert.Equal(t, 2, report.Count)
	assert.Equal(t, []float64{2, 6}, report.Times)
	assert.Equal(t, 95.0, report.PeakVoltage)
	assert.Equal(t, 4.0, report.MeanISI)
}

func TestAnalyzeRequiresHysteresis(t *testing.T) {
	// The voltage stays above threshold for several samples. It is one
	// spike, not three.
	time := []float64{0, 1, 2, 3, 4}
	voltage := []float64{0, 60, 70, 65, 0}

	report := analysis.NewSpikeDetector().Analyze(time, voltage)

	assert.Equal(t, 1, report.Count)
	assert.Equal(t, 0.0, report.MeanISI)
}

func TestAnalyzeEmptyTrace(t *testing.T) {
	report := analysis.NewSpikeDetector().Analyze(nil, nil)

	assert.Equal(t, 0, report.Count)
	assert.Empty(t, report.Times)
}

func TestAnalyzeMismatchedTracesPanics(t *testing.T) {
	assert.Panics(t, func() {
		analysis.NewSpikeDetector().Analyze(
			[]float64{0, 1}, []float64{0})
	})
}

// The stock run fires once at startup (the initial conditions sit off
// rest) and 292 more times during the stimulus window.
func TestAnalyzeStockRun(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping the full-horizon run in short mode")
	}

	tr := heun.NewIntegrator(hh.DefaultParams()).Run()

	report := analysis.NewSpikeDetector().Analyze(tr.Time, tr.V)

	require.Equal(t, 293, report.Count)
	assert.InDelta(t, 1.11, report.Times[0], 0.05)
	assert.Greater(t, report.Times[1], 1001.0)
	assert.Less(t, report.Times[report.Count-1], 4999.0)
	assert.InDelta(t, 105.517, report.PeakVoltage, 0.01)
}
