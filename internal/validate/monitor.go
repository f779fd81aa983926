package validate

// monitor.go holds the two shared cells the embedding application observes
// during a run: the progress percentage and the cancellation flag. Both are
// read and written without locks; the engine is the only writer of progress
// and the application is the only writer of the cancel flag.

import "sync/atomic"

// Monitor is the shared progress/cancellation surface for a single run.
// The application holds a reference to read Percent and to request
// cancellation; the engine updates progress once per completed step and
// observes the cancel flag at the start of every row and every constraint
// group.
type Monitor struct {
	percent   atomic.Int32
	cancelled atomic.Bool
}

// NewMonitor returns a monitor with zero progress and a clear cancel flag.
func NewMonitor() *Monitor { return &Monitor{} }

// Percent returns the current progress percentage in [0,100].
func (m *Monitor) Percent() int { return int(m.percent.Load()) }

// Cancel requests cooperative cancellation. The engine finishes the row it
// is working on and stops at the next checkpoint, returning a *Cancelled
// signal carrying the findings so far.
func (m *Monitor) Cancel() { m.cancelled.Store(true) }

// Cancelled reports whether cancellation has been requested.
func (m *Monitor) Cancelled() bool { return m.cancelled.Load() }

// resetProgress zeroes the progress cell at the start of a run. The cancel
// flag is deliberately left alone: a cancel that races run startup must be
// honored, not cleared.
func (m *Monitor) resetProgress() { m.percent.Store(0) }

func (m *Monitor) setPercent(p int) { m.percent.Store(int32(p)) }

// ProgressUpdate is the per-step progress snapshot passed to a Runner's
// OnStep callback.
type ProgressUpdate struct {
	CompletedSteps int
	TotalSteps     int
	Percent        int
	ErrorCount     int
}

// StepFunc receives one ProgressUpdate per completed step (row or
// constraint group). It runs on the engine's goroutine between steps.
type StepFunc func(ProgressUpdate)
