// Package validate implements the schema-driven validation engine for
// tabular spreadsheet data.
//
// The engine takes decoded rows, a declarative Schema describing expected
// columns and per-column rules, and a set of cross-row uniqueness groups.
// It returns structured row errors plus a cleaned copy of the data, reports
// incremental progress through a shared Monitor, and honors cooperative
// cancellation between rows.
package validate

import (
	"strings"

	"github.com/sheetcheck/sheetcheck/internal/sheet"
)

// FieldType is the expected primitive kind for a column. The zero value
// (TypeAny) disables the type check.
type FieldType int

const (
	TypeAny FieldType = iota
	TypeString
	TypeNumber
	TypeBoolean
	TypeNull
)

// String returns the type name used in mismatch messages.
func (t FieldType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeNumber:
		return "number"
	case TypeBoolean:
		return "boolean"
	case TypeNull:
		return "null"
	default:
		return "any"
	}
}

// matches reports whether a cell kind satisfies the declared type.
func (t FieldType) matches(k sheet.Kind) bool {
	switch t {
	case TypeString:
		return k == sheet.KindString
	case TypeNumber:
		return k == sheet.KindNumber
	case TypeBoolean:
		return k == sheet.KindBool
	case TypeNull:
		return k == sheet.KindNull
	default:
		return true
	}
}

// Checks enables the built-in format validators for a column. Each check is
// evaluated independently; one failing check does not suppress the others.
type Checks struct {
	Email          bool
	Mobile         bool
	EmployeeNumber bool
}

// ErrorType classifies a validation error.
type ErrorType string

const (
	ErrorRequired       ErrorType = "required"
	ErrorTypeMismatch   ErrorType = "type_mismatch"
	ErrorEmail          ErrorType = "invalid_email"
	ErrorMobile         ErrorType = "invalid_mobile"
	ErrorEmployeeNumber ErrorType = "invalid_employee_number"
	ErrorAcceptedValues ErrorType = "accepted_values"
	ErrorCustom         ErrorType = "custom_validation"
	ErrorDuplicate      ErrorType = "duplicate"
)

// RowError is a single validation finding with row and column context.
// Row numbers are one-based spreadsheet rows: data row i reports as i+2,
// accounting for the header row occupying row 1.
type RowError struct {
	Row     int       `json:"row"`
	Column  string    `json:"column"`
	Message string    `json:"message"`
	Type    ErrorType `json:"errorType"`
}

// CheckResult is the tagged return of a custom validator. A passing check
// returns OK; a failing check carries the message and classification that
// the engine merges with row and column context.
type CheckResult struct {
	OK      bool
	Message string
	Type    ErrorType
}

// Pass returns a passing check result.
func Pass() CheckResult { return CheckResult{OK: true} }

// Fail returns a failing check result classified as a custom validation
// error.
func Fail(message string) CheckResult {
	return CheckResult{Message: message, Type: ErrorCustom}
}

// CustomFunc is a user-supplied per-cell validator. It is invoked only when
// the cell has a value, and receives the full row for cross-field rules.
type CustomFunc func(v sheet.Value, row sheet.Record) CheckResult

// FieldRule declares the validation rules for a single column.
type FieldRule struct {
	Column         string
	Type           FieldType
	Required       bool
	Checks         Checks
	AcceptedValues []sheet.Value
	Custom         CustomFunc
}

// Schema is an ordered set of field rules. Declaration order drives
// per-column evaluation and the column set of processed rows.
type Schema []FieldRule

// Columns returns the declared column names in schema order.
func (s Schema) Columns() []string {
	cols := make([]string, len(s))
	for i, rule := range s {
		cols[i] = rule.Column
	}
	return cols
}

// UniqueGroup is an ordered set of column names whose combined values must
// be distinct across all rows.
type UniqueGroup []string

// Key returns the constraint key reported on duplicate errors.
func (g UniqueGroup) Key() string {
	return strings.Join(g, "-")
}

// Result is the outcome of a completed validation run.
type Result struct {
	Errors    []RowError
	Processed []sheet.Record
}

// FileResult is the outcome of validating a whole spreadsheet file: the
// untouched decoded rows, the cleaned rows, and all accumulated errors.
type FileResult struct {
	Raw       []sheet.Record
	Processed []sheet.Record
	Errors    []RowError
}
