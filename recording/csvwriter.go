package recording

import (
	"fmt"
	"os"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// CSVWriter stores trajectory samples in a CSV file.
type CSVWriter struct {
	path string
	file *os.File

	samples    []TrajectorySample
	bufferSize int
}

// NewCSVWriter creates a CSVWriter targeting path (the ".csv" extension is
// appended). An empty path picks a generated name.
func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{
		path:       path,
		bufferSize: 1000,
	}
}

// Init creates the CSV file and writes the header. It panics if the file
// already exists.
func (w *CSVWriter) Init() {
	if w.path == "" {
		w.path = "hhsim_" + xid.New().String()
	}

	filename := w.path + ".csv"
	_, err := os.Stat(filename)
	if err == nil {
		panic(fmt.Errorf("file %s already exists", filename))
	}

	file, err := os.Create(filename)
	if err != nil {
		panic(err)
	}
	w.file = file

	fmt.Fprintf(file, "Step, Time, Voltage, NGate, MGate, HGate\n")

	atexit.Register(func() {
		w.Flush()
		err := w.file.Close()
		if err != nil {
			panic(err)
		}
	})
}

// Write buffers one sample, flushing when the buffer fills up.
func (w *CSVWriter) Write(sample TrajectorySample) {
	w.samples = append(w.samples, sample)
	if len(w.samples) >= w.bufferSize {
		w.Flush()
	}
}

// Flush writes the buffered samples to the CSV file.
func (w *CSVWriter) Flush() {
	for _, s := range w.samples {
		fmt.Fprintf(w.file, "%d, %.10f, %.10f, %.10f, %.10f, %.10f\n",
			s.Step,
			s.Time,
			s.Voltage,
			s.NGate,
			s.MGate,
			s.HGate,
		)
	}

	w.samples = nil
}
