// Package monitoring reports the progress and the resource usage of long
// simulation runs.
package monitoring

import "sync"

// A ProgressBar is a tracker of the progress of a run.
type ProgressBar struct {
	sync.Mutex

	Name     string
	Total    uint64
	Finished uint64
}

// NewProgressBar creates a ProgressBar with the given name and total.
func NewProgressBar(name string, total uint64) *ProgressBar {
	return &ProgressBar{
		Name:  name,
		Total: total,
	}
}

// IncrementFinished adds a certain amount to the finished count.
func (b *ProgressBar) IncrementFinished(amount uint64) {
	b.Lock()
	defer b.Unlock()

	b.Finished += amount
}

// Fraction returns the completed fraction, in [0, 1].
func (b *ProgressBar) Fraction() float64 {
	b.Lock()
	defer b.Unlock()

	if b.Total == 0 {
		return 0
	}

	return float64(b.Finished) / float64(b.Total)
}
