package simulation

import (
	"github.com/rs/xid"

	"github.com/sarchlab/hhsim/heun"
	"github.com/sarchlab/hhsim/hh"
	"github.com/sarchlab/hhsim/monitoring"
	"github.com/sarchlab/hhsim/recording"
)

// progressLogInterval is the number of samples between two progress log
// lines when progress reporting is enabled.
const progressLogInterval = 100000

// Builder can be used to build a simulation.
type Builder struct {
	params         hh.Params
	recordingOn    bool
	csvOn          bool
	progressOn     bool
	outputFileName string
	sampleEvery    int
}

// MakeBuilder creates a builder with the stock parameter set and all
// output backends disabled.
func MakeBuilder() Builder {
	return Builder{
		params:      hh.DefaultParams(),
		sampleEvery: 1,
	}
}

// WithParams sets the model parameters of the simulation.
func (b Builder) WithParams(p hh.Params) Builder {
	b.params = p
	return b
}

// WithRecording enables trajectory recording to a SQLite database.
func (b Builder) WithRecording() Builder {
	b.recordingOn = true
	return b
}

// WithCSV enables trajectory output to a CSV file.
func (b Builder) WithCSV() Builder {
	b.csvOn = true
	return b
}

// WithProgress enables progress and resource logging during the run.
func (b Builder) WithProgress() Builder {
	b.progressOn = true
	return b
}

// WithOutputFileName sets the custom output file name, without extension,
// shared by the database and the CSV file.
func (b Builder) WithOutputFileName(filename string) Builder {
	b.outputFileName = filename
	return b
}

// WithSampleInterval records only every n-th trajectory sample.
func (b Builder) WithSampleInterval(n int) Builder {
	b.sampleEvery = n
	return b
}

func (b Builder) parametersMustBeValid() {
	if b.sampleEvery < 1 {
		panic("sample interval must be positive")
	}

	if b.outputFileName != "" && !b.recordingOn && !b.csvOn {
		panic("output file name set, but no output backend is enabled")
	}
}

// Build builds the simulation.
func (b Builder) Build() *Simulation {
	b.parametersMustBeValid()

	s := &Simulation{
		id:         xid.New().String(),
		params:     b.params,
		integrator: heun.NewIntegrator(b.params),
	}

	outputPath := b.outputFileName
	if outputPath == "" {
		outputPath = "hhsim_" + s.id
	}

	if b.recordingOn {
		s.recorder = recording.NewDataRecorder(outputPath)
		s.runLog = recording.NewRunLogger(s.recorder)
		s.integrator.AcceptHook(newTrajectoryHook(s.recorder, b.sampleEvery))
	}

	if b.csvOn {
		csvWriter := recording.NewCSVWriter(outputPath)
		csvWriter.Init()
		s.integrator.AcceptHook(newCSVHook(csvWriter, b.sampleEvery))
	}

	if b.progressOn {
		reporter := monitoring.NewResourceReporter(
			b.params.NumSamples(), progressLogInterval)
		s.integrator.AcceptHook(reporter)
	}

	return s
}
