package core

import (
	"time"

	"github.com/sheetcheck/sheetcheck/internal/sheet"
	"github.com/sheetcheck/sheetcheck/internal/validate"
)

// SheetDefinition pairs a registered sheet type with its validation rules.
type SheetDefinition struct {
	Key          string // Unique identifier: "employee_roster"
	Label        string // Display name: "Employee Roster"
	Schema       validate.Schema
	UniqueGroups []validate.UniqueGroup
}

// SheetInfo is the client-facing description of a registered sheet type.
type SheetInfo struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Columns []string `json:"columns"`
}

// Info returns the client-facing description of the definition.
func (d SheetDefinition) Info() SheetInfo {
	return SheetInfo{
		Key:     d.Key,
		Label:   d.Label,
		Columns: d.Schema.Columns(),
	}
}

// RunPhase indicates the current stage of a validation run.
type RunPhase string

const (
	PhaseStarting   RunPhase = "starting"
	PhaseValidating RunPhase = "validating"
	PhaseComplete   RunPhase = "complete"
	PhaseFailed     RunPhase = "failed"
	PhaseCancelled  RunPhase = "cancelled"
)

// RunProgress is one progress snapshot of a validation run.
type RunProgress struct {
	RunID          string   `json:"runId"`
	SheetKey       string   `json:"sheetKey"`
	FileName       string   `json:"fileName"`
	Phase          RunPhase `json:"phase"`
	Percent        int      `json:"percent"`
	CompletedSteps int      `json:"completedSteps"`
	TotalSteps     int      `json:"totalSteps"`
	ErrorCount     int      `json:"errorCount"`
	Error          string   `json:"error,omitempty"` // Non-empty if Phase is PhaseFailed
}

// RunResult is the final outcome of a validation run.
type RunResult struct {
	RunID     string              `json:"runId"`
	SheetKey  string              `json:"sheetKey"`
	FileName  string              `json:"fileName"`
	RowCount  int                 `json:"rowCount"`
	Errors    []validate.RowError `json:"errors"`
	Processed []sheet.Record      `json:"processedRows,omitempty"`
	Cancelled bool                `json:"cancelled"`
	Duration  time.Duration       `json:"-"`
	Error     string              `json:"error,omitempty"` // Non-empty if the run failed structurally
}
