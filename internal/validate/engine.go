package validate

// engine.go is the run orchestrator. It drives per-row validation, feeds
// the uniqueness tracker, advances progress one step per row and per
// constraint group, and yields between steps so a concurrent observer can
// read progress or request cancellation.

import (
	"math"
	"runtime"

	"github.com/sheetcheck/sheetcheck/internal/sheet"
)

// Runner validates row sets against a schema. Monitor and OnStep are
// optional: a nil Monitor gets a private one, and a nil OnStep skips the
// per-step callback.
type Runner struct {
	Schema  Schema
	Groups  []UniqueGroup
	Monitor *Monitor
	OnStep  StepFunc
}

// Run validates rows strictly in input order and returns the accumulated
// errors plus one processed row per input row.
//
// Progress starts at 0 and advances once per row and once per constraint
// group; total steps = rows + groups. The cancellation flag is observed at
// the start of every row and every group resolution: once seen set, Run
// stops and returns a *Cancelled carrying the errors found so far. The
// current row is always finished before cancellation is honored.
func (r *Runner) Run(rows []sheet.Record) (*Result, error) {
	m := r.Monitor
	if m == nil {
		m = NewMonitor()
	}
	m.resetProgress()

	total := len(rows) + len(r.Groups)
	completed := 0

	tracker := newUniqueTracker(r.Groups)
	res := &Result{Processed: make([]sheet.Record, 0, len(rows))}

	for i, row := range rows {
		if m.Cancelled() {
			return nil, &Cancelled{Errors: res.Errors}
		}

		rowNum := i + 2 // one-based, header occupies row 1
		errs, processed := validateRow(row, r.Schema, rowNum)
		res.Errors = append(res.Errors, errs...)
		res.Processed = append(res.Processed, processed)
		tracker.add(row, rowNum)

		completed++
		r.step(m, completed, total, len(res.Errors))
	}

	for gi := range r.Groups {
		if m.Cancelled() {
			return nil, &Cancelled{Errors: res.Errors}
		}

		res.Errors = append(res.Errors, tracker.resolveGroup(gi)...)

		completed++
		r.step(m, completed, total, len(res.Errors))
	}

	return res, nil
}

// step publishes progress for one completed step and yields control so an
// interleaved observer gets a chance to run before the next step.
func (r *Runner) step(m *Monitor, completed, total, errCount int) {
	pct := percent(completed, total)
	m.setPercent(pct)
	if r.OnStep != nil {
		r.OnStep(ProgressUpdate{
			CompletedSteps: completed,
			TotalSteps:     total,
			Percent:        pct,
			ErrorCount:     errCount,
		})
	}
	runtime.Gosched()
}

func percent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
