package validate

// row.go evaluates every schema rule against a single data row. Required
// and type failures stop further checks on that column; format, accepted
// value and custom failures accumulate without short-circuiting.

import (
	"fmt"
	"strings"

	"github.com/sheetcheck/sheetcheck/internal/sheet"
)

// validateRow checks one row against the schema in declaration order and
// returns its errors plus the processed copy. The processed row contains
// exactly the schema's columns, with string values trimmed; the raw row is
// never modified.
func validateRow(row sheet.Record, schema Schema, rowNum int) ([]RowError, sheet.Record) {
	var errs []RowError
	processed := make(sheet.Record, len(schema))

	for _, rule := range schema {
		v := row.Get(rule.Column).Trimmed()
		processed[rule.Column] = v

		if rule.Required && isBlank(v) {
			errs = append(errs, RowError{
				Row:     rowNum,
				Column:  rule.Column,
				Message: "This field is required",
				Type:    ErrorRequired,
			})
			continue
		}

		if v.IsNull() {
			continue
		}

		if rule.Type != TypeAny && !rule.Type.matches(v.Kind) {
			errs = append(errs, RowError{
				Row:     rowNum,
				Column:  rule.Column,
				Message: fmt.Sprintf("Expected type %s, got %s", rule.Type, v.Kind),
				Type:    ErrorTypeMismatch,
			})
			continue
		}

		if rule.Checks.Email && !IsEmail(v) {
			errs = append(errs, RowError{
				Row:     rowNum,
				Column:  rule.Column,
				Message: "Invalid email address",
				Type:    ErrorEmail,
			})
		}
		if rule.Checks.Mobile && !IsMobileNumber(v) {
			errs = append(errs, RowError{
				Row:     rowNum,
				Column:  rule.Column,
				Message: "Invalid mobile number",
				Type:    ErrorMobile,
			})
		}
		if rule.Checks.EmployeeNumber && !IsEmployeeNumber(v) {
			errs = append(errs, RowError{
				Row:     rowNum,
				Column:  rule.Column,
				Message: "Invalid employee number",
				Type:    ErrorEmployeeNumber,
			})
		}

		if len(rule.AcceptedValues) > 0 && !isAccepted(v, rule.AcceptedValues) {
			errs = append(errs, RowError{
				Row:     rowNum,
				Column:  rule.Column,
				Message: "Value must be one of: " + renderAccepted(rule.AcceptedValues),
				Type:    ErrorAcceptedValues,
			})
		}

		if rule.Custom != nil {
			if res := rule.Custom(v, row); !res.OK {
				t := res.Type
				if t == "" {
					t = ErrorCustom
				}
				errs = append(errs, RowError{
					Row:     rowNum,
					Column:  rule.Column,
					Message: res.Message,
					Type:    t,
				})
			}
		}
	}

	return errs, processed
}

// isBlank reports whether a value fails a required check: the null cell or
// an empty string.
func isBlank(v sheet.Value) bool {
	return v.IsNull() || (v.Kind == sheet.KindString && v.Str == "")
}

func isAccepted(v sheet.Value, accepted []sheet.Value) bool {
	for _, a := range accepted {
		if v.Equal(a) {
			return true
		}
	}
	return false
}

func renderAccepted(accepted []sheet.Value) string {
	parts := make([]string, len(accepted))
	for i, a := range accepted {
		parts[i] = a.Text()
	}
	return strings.Join(parts, ", ")
}
