package schema

import (
	"github.com/sheetcheck/sheetcheck/internal/sheet"
	"github.com/sheetcheck/sheetcheck/internal/validate"
)

// LeaveLedger describes the leave booking sheet. The day counts carry a
// cross-field rule: days_taken can never exceed days_allocated.
var LeaveLedger = validate.Schema{
	{Column: "employee_no", Type: validate.TypeString, Required: true, Checks: validate.Checks{EmployeeNumber: true}},
	{Column: "year", Type: validate.TypeNumber, Required: true},
	{Column: "days_allocated", Type: validate.TypeNumber, Required: true},
	{Column: "days_taken", Type: validate.TypeNumber, Custom: daysTakenWithinAllocation},
}

// LeaveLedgerUnique: one ledger row per employee per year.
var LeaveLedgerUnique = []validate.UniqueGroup{
	{"employee_no", "year"},
}

func daysTakenWithinAllocation(v sheet.Value, row sheet.Record) validate.CheckResult {
	allocated := row.Get("days_allocated")
	if allocated.Kind != sheet.KindNumber || v.Kind != sheet.KindNumber {
		// Type errors are reported by the type check, not here.
		return validate.Pass()
	}
	if v.Num > allocated.Num {
		return validate.Fail("days_taken exceeds days_allocated")
	}
	return validate.Pass()
}
