// Package schema defines the bundled field-rule sets for the spreadsheet
// types this service validates out of the box.
package schema

import (
	"github.com/sheetcheck/sheetcheck/internal/sheet"
	"github.com/sheetcheck/sheetcheck/internal/validate"
)

// Departments lists the accepted values for the department column.
var Departments = []sheet.Value{
	sheet.String("Engineering"),
	sheet.String("Finance"),
	sheet.String("HR"),
	sheet.String("Operations"),
	sheet.String("Sales"),
}

// EmployeeRoster describes the master employee sheet.
var EmployeeRoster = validate.Schema{
	{Column: "employee_no", Type: validate.TypeString, Required: true, Checks: validate.Checks{EmployeeNumber: true}},
	{Column: "full_name", Type: validate.TypeString, Required: true},
	{Column: "email", Type: validate.TypeString, Required: true, Checks: validate.Checks{Email: true}},
	{Column: "mobile", Checks: validate.Checks{Mobile: true}},
	{Column: "department", Type: validate.TypeString, AcceptedValues: Departments},
	{Column: "grade", Type: validate.TypeNumber, AcceptedValues: []sheet.Value{
		sheet.Number(1), sheet.Number(2), sheet.Number(3), sheet.Number(4), sheet.Number(5),
	}},
	{Column: "manager_email", Type: validate.TypeString, Checks: validate.Checks{Email: true}},
}

// EmployeeRosterUnique holds the cross-row constraints for the roster:
// employee numbers and email addresses must each be unique.
var EmployeeRosterUnique = []validate.UniqueGroup{
	{"employee_no"},
	{"email"},
}
