package recording

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sarchlab/hhsim/hh"
)

// RunInfo is one property/value pair describing a run.
type RunInfo struct {
	Property string
	Value    string
}

// A RunLogger records the metadata of one run: the command line, the
// parameter set, and the wall-clock start and end times.
type RunLogger struct {
	tableName string
	recorder  DataRecorder
}

// NewRunLogger creates a RunLogger writing to the given recorder.
func NewRunLogger(recorder DataRecorder) *RunLogger {
	l := &RunLogger{
		tableName: "run_log",
		recorder:  recorder,
	}

	l.recorder.CreateTable(l.tableName, RunInfo{})

	return l
}

// LogStart records the start time, the command line, and the parameter
// set of the run.
func (l *RunLogger) LogStart(p hh.Params) {
	startTime := time.Now().Format("2006-01-02 15:04:05")
	l.insert("Start Time", startTime)

	l.insert("Command", strings.Join(os.Args, " "))

	l.insert("Cm", formatFloat(p.Cm))
	l.insert("GK", formatFloat(p.GK))
	l.insert("GNa", formatFloat(p.GNa))
	l.insert("GL", formatFloat(p.GL))
	l.insert("EK", formatFloat(p.EK))
	l.insert("ENa", formatFloat(p.ENa))
	l.insert("EL", formatFloat(p.EL))
	l.insert("TMax", formatFloat(p.TMax))
	l.insert("Dt", formatFloat(p.Dt))
	l.insert("IStart", formatFloat(p.IStart))
	l.insert("IEnd", formatFloat(p.IEnd))
	l.insert("IAmp", formatFloat(p.IAmp))
}

// LogEnd records the end time and the final voltage, and flushes the
// recorder.
func (l *RunLogger) LogEnd(finalVoltage float64) {
	endTime := time.Now().Format("2006-01-02 15:04:05")
	l.insert("End Time", endTime)

	l.insert("Final Voltage", formatFloat(finalVoltage))

	l.recorder.Flush()
}

func (l *RunLogger) insert(property, value string) {
	l.recorder.InsertData(l.tableName, RunInfo{
		Property: property,
		Value:    value,
	})
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}
