package monitoring

import (
	"log"
	"os"

	"github.com/shirou/gopsutil/process"

	"github.com/sarchlab/hhsim/heun"
)

// A ResourceReporter logs run progress and process resource usage to
// stderr at a fixed sample interval. It attaches to the integrator as a
// hook.
type ResourceReporter struct {
	bar   *ProgressBar
	every int
	proc  *process.Process
}

// NewResourceReporter creates a ResourceReporter that logs every n-th
// sample of a run with the given total sample count.
func NewResourceReporter(totalSamples int, every int) *ResourceReporter {
	if every < 1 {
		panic("reporting interval must be positive")
	}

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		panic(err)
	}

	return &ResourceReporter{
		bar:   NewProgressBar("simulation", uint64(totalSamples)),
		every: every,
		proc:  proc,
	}
}

// Progress returns the underlying progress bar.
func (r *ResourceReporter) Progress() *ProgressBar {
	return r.bar
}

// Func logs progress and process stats on every n-th finalized sample.
func (r *ResourceReporter) Func(ctx heun.HookCtx) {
	if ctx.Pos != heun.HookPosSample {
		return
	}

	sample := ctx.Item.(heun.Sample)
	r.bar.IncrementFinished(1)

	if sample.Index == 0 || sample.Index%r.every != 0 {
		return
	}

	cpuPercent, err := r.proc.CPUPercent()
	if err != nil {
		cpuPercent = 0
	}

	var rssMB uint64
	memInfo, err := r.proc.MemoryInfo()
	if err == nil {
		rssMB = memInfo.RSS / (1024 * 1024)
	}

	log.Printf("sample %d/%d (%.1f%%), t=%.2f ms, cpu=%.1f%%, rss=%d MB",
		sample.Index,
		r.bar.Total,
		r.bar.Fraction()*100,
		sample.Time,
		cpuPercent,
		rssMB,
	)
}
