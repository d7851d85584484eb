// Package analysis provides post-run analysis of simulated voltage traces.
package analysis

// A SpikeReport summarizes the action potentials found in a voltage trace.
type SpikeReport struct {
	// Count is the number of detected spikes.
	Count int

	// Times holds the time of the upward threshold crossing of each spike.
	Times []float64

	// PeakVoltage is the maximum voltage reached anywhere in the trace.
	PeakVoltage float64

	// MeanISI is the mean inter-spike interval. It is 0 when fewer than
	// two spikes are detected.
	MeanISI float64
}

// A SpikeDetector finds action potentials by upward threshold crossings
// with hysteresis: after a crossing, no new spike is counted until the
// voltage has fallen back below the threshold.
type SpikeDetector struct {
	// Threshold is the detection voltage (mV).
	Threshold float64
}

// NewSpikeDetector creates a SpikeDetector with a 50 mV threshold, roughly
// half the action-potential amplitude of the stock parameter set.
func NewSpikeDetector() *SpikeDetector {
	return &SpikeDetector{Threshold: 50.0}
}

// Analyze scans a voltage trace and reports the spikes it contains. The
// two slices must have the same length.
func (d *SpikeDetector) Analyze(time, voltage []float64) SpikeReport {
	if len(time) != len(voltage) {
		panic("time and voltage traces must have the same length")
	}

	report := SpikeReport{}

	above := false
	for i, v := range voltage {
		if i == 0 || v > report.PeakVoltage {
			report.PeakVoltage = v
		}

		switch {
		case !above && v >= d.Threshold:
			above = true
			report.Count++
			report.Times = append(report.Times, time[i])
		case above && v < d.Threshold:
			above = false
		}
	}

	if report.Count >= 2 {
		first := report.Times[0]
		last := report.Times[report.Count-1]
		report.MeanISI = (last - first) / float64(report.Count-1)
	}

	return report
}
