package simulation

import (
	"github.com/sarchlab/hhsim/heun"
	"github.com/sarchlab/hhsim/recording"
)

// trajectoryTable is the database table trajectory samples are written to.
const trajectoryTable = "trajectory"

// A trajectoryHook persists every n-th finalized trajectory sample into
// the data recorder, and flushes when the run ends.
type trajectoryHook struct {
	recorder recording.DataRecorder
	every    int
}

func newTrajectoryHook(
	recorder recording.DataRecorder,
	every int,
) *trajectoryHook {
	recorder.CreateTable(trajectoryTable, recording.TrajectorySample{})

	return &trajectoryHook{
		recorder: recorder,
		every:    every,
	}
}

// Func implements the heun.Hook interface.
func (h *trajectoryHook) Func(ctx heun.HookCtx) {
	switch ctx.Pos {
	case heun.HookPosSample:
		sample := ctx.Item.(heun.Sample)
		if sample.Index%h.every != 0 {
			return
		}

		h.recorder.InsertData(trajectoryTable, toRecordedSample(sample))
	case heun.HookPosRunEnd:
		h.recorder.Flush()
	}
}

// A csvHook writes every n-th finalized trajectory sample to a CSV file.
type csvHook struct {
	writer *recording.CSVWriter
	every  int
}

func newCSVHook(writer *recording.CSVWriter, every int) *csvHook {
	return &csvHook{
		writer: writer,
		every:  every,
	}
}

// Func implements the heun.Hook interface.
func (h *csvHook) Func(ctx heun.HookCtx) {
	switch ctx.Pos {
	case heun.HookPosSample:
		sample := ctx.Item.(heun.Sample)
		if sample.Index%h.every != 0 {
			return
		}

		h.writer.Write(toRecordedSample(sample))
	case heun.HookPosRunEnd:
		h.writer.Flush()
	}
}

func toRecordedSample(s heun.Sample) recording.TrajectorySample {
	return recording.TrajectorySample{
		Step:    s.Index,
		Time:    s.Time,
		Voltage: s.State.V,
		NGate:   s.State.N,
		MGate:   s.State.M,
		HGate:   s.State.H,
	}
}
