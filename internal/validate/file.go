package validate

// file.go is the file-level orchestrator: decode, gate on structure, then
// hand the rows to the run orchestrator.

import (
	"fmt"

	"github.com/sheetcheck/sheetcheck/internal/sheet"
)

// RunFile decodes an XLSX file and validates its rows against the runner's
// schema and uniqueness groups.
//
// Structural failures abort before row processing: a decode error, an empty
// dataset (ErrNoData), or a header missing expected columns
// (*HeaderMismatchError). Cancellation propagates as *Cancelled. Cell and
// cross-row findings never fail the call; they are returned as data in the
// FileResult alongside the untouched raw rows.
func (r *Runner) RunFile(data []byte) (*FileResult, error) {
	rows, header, err := sheet.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode spreadsheet: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNoData
	}

	if !ReconcileHeaders(r.Schema, header) {
		missing, _, found := headerDiff(r.Schema, header)
		return nil, &HeaderMismatchError{
			Missing:  missing,
			Expected: r.Schema.Columns(),
			Found:    found,
		}
	}

	res, err := r.Run(rows)
	if err != nil {
		return nil, err
	}

	return &FileResult{
		Raw:       rows,
		Processed: res.Processed,
		Errors:    res.Errors,
	}, nil
}
