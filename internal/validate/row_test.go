package validate

import (
	"testing"

	"github.com/sheetcheck/sheetcheck/internal/sheet"
)

func TestValidateRow_Required(t *testing.T) {
	schema := Schema{{Column: "name", Type: TypeString, Required: true, Checks: Checks{Email: true}}}

	tests := []struct {
		name string
		row  sheet.Record
	}{
		{"absent column", sheet.Record{}},
		{"null cell", sheet.Record{"name": sheet.Null()}},
		{"empty string", sheet.Record{"name": sheet.String("")}},
		{"whitespace only", sheet.Record{"name": sheet.String("   ")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs, _ := validateRow(tt.row, schema, 2)
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want exactly 1: %v", len(errs), errs)
			}
			e := errs[0]
			if e.Type != ErrorRequired {
				t.Errorf("error type = %s, want %s", e.Type, ErrorRequired)
			}
			if e.Message != "This field is required" {
				t.Errorf("message = %q", e.Message)
			}
			if e.Row != 2 || e.Column != "name" {
				t.Errorf("context = row %d column %q", e.Row, e.Column)
			}
		})
	}
}

func TestValidateRow_TypeMismatch(t *testing.T) {
	schema := Schema{{Column: "age", Type: TypeNumber, Checks: Checks{EmployeeNumber: true}}}

	errs, _ := validateRow(sheet.Record{"age": sheet.String("forty")}, schema, 5)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1 (mismatch must skip later checks): %v", len(errs), errs)
	}
	if errs[0].Type != ErrorTypeMismatch {
		t.Errorf("error type = %s, want %s", errs[0].Type, ErrorTypeMismatch)
	}
	if errs[0].Message != "Expected type number, got string" {
		t.Errorf("message = %q", errs[0].Message)
	}
}

func TestValidateRow_TypeCheckSkippedForNull(t *testing.T) {
	// A declared type is only checked when a value is present.
	schema := Schema{{Column: "age", Type: TypeNumber}}

	errs, _ := validateRow(sheet.Record{}, schema, 2)
	if len(errs) != 0 {
		t.Errorf("optional missing value produced errors: %v", errs)
	}
}

func TestValidateRow_FormatChecksAreIndependent(t *testing.T) {
	// A value that fails several enabled checks reports each failure.
	schema := Schema{{
		Column: "contact",
		Checks: Checks{Email: true, Mobile: true, EmployeeNumber: true},
	}}

	errs, _ := validateRow(sheet.Record{"contact": sheet.String("nonsense")}, schema, 3)
	if len(errs) != 3 {
		t.Fatalf("got %d errors, want 3: %v", len(errs), errs)
	}
	types := map[ErrorType]bool{}
	for _, e := range errs {
		types[e.Type] = true
	}
	for _, want := range []ErrorType{ErrorEmail, ErrorMobile, ErrorEmployeeNumber} {
		if !types[want] {
			t.Errorf("missing error type %s", want)
		}
	}
}

func TestValidateRow_AcceptedValues(t *testing.T) {
	schema := Schema{{
		Column:         "department",
		AcceptedValues: []sheet.Value{sheet.String("HR"), sheet.String("Engineering")},
	}}

	errs, _ := validateRow(sheet.Record{"department": sheet.String("  HR ")}, schema, 2)
	if len(errs) != 0 {
		t.Errorf("trimmed member value rejected: %v", errs)
	}

	errs, _ = validateRow(sheet.Record{"department": sheet.String("Sales")}, schema, 2)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	if errs[0].Type != ErrorAcceptedValues {
		t.Errorf("error type = %s", errs[0].Type)
	}
	if errs[0].Message != "Value must be one of: HR, Engineering" {
		t.Errorf("message = %q", errs[0].Message)
	}
}

func TestValidateRow_AcceptedNumericValues(t *testing.T) {
	schema := Schema{{
		Column:         "grade",
		AcceptedValues: []sheet.Value{sheet.Number(1), sheet.Number(2)},
	}}

	if errs, _ := validateRow(sheet.Record{"grade": sheet.Number(2)}, schema, 2); len(errs) != 0 {
		t.Errorf("member number rejected: %v", errs)
	}
	if errs, _ := validateRow(sheet.Record{"grade": sheet.Number(3)}, schema, 2); len(errs) != 1 {
		t.Errorf("non-member number accepted")
	}
}

func TestValidateRow_CustomValidator(t *testing.T) {
	schema := Schema{{
		Column: "code",
		Custom: func(v sheet.Value, row sheet.Record) CheckResult {
			if v.Text() == "ok" {
				return Pass()
			}
			return Fail("code must be ok")
		},
	}}

	if errs, _ := validateRow(sheet.Record{"code": sheet.String("ok")}, schema, 2); len(errs) != 0 {
		t.Errorf("passing custom validator produced errors: %v", errs)
	}

	errs, _ := validateRow(sheet.Record{"code": sheet.String("bad")}, schema, 4)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	e := errs[0]
	if e.Type != ErrorCustom || e.Message != "code must be ok" {
		t.Errorf("error = %+v", e)
	}
	if e.Row != 4 || e.Column != "code" {
		t.Errorf("row/column context not merged: %+v", e)
	}
}

func TestValidateRow_CustomValidatorSkippedForNull(t *testing.T) {
	called := false
	schema := Schema{{
		Column: "code",
		Custom: func(v sheet.Value, row sheet.Record) CheckResult {
			called = true
			return Pass()
		},
	}}

	validateRow(sheet.Record{}, schema, 2)
	if called {
		t.Error("custom validator must not run for absent values")
	}
}

func TestValidateRow_CustomValidatorSeesFullRow(t *testing.T) {
	schema := Schema{
		{Column: "start"},
		{Column: "end", Custom: func(v sheet.Value, row sheet.Record) CheckResult {
			if v.Num < row.Get("start").Num {
				return Fail("end before start")
			}
			return Pass()
		}},
	}

	errs, _ := validateRow(sheet.Record{
		"start": sheet.Number(10),
		"end":   sheet.Number(5),
	}, schema, 2)
	if len(errs) != 1 || errs[0].Message != "end before start" {
		t.Errorf("cross-field rule not applied: %v", errs)
	}
}

func TestValidateRow_ProcessedRowShape(t *testing.T) {
	schema := Schema{
		{Column: "name", Type: TypeString},
		{Column: "email", Type: TypeString},
	}
	raw := sheet.Record{
		"name":  sheet.String("  Ada  "),
		"extra": sheet.String("dropped"),
	}

	_, processed := validateRow(raw, schema, 2)

	if len(processed) != len(schema) {
		t.Fatalf("processed has %d columns, want %d", len(processed), len(schema))
	}
	if got := processed["name"]; got.Str != "Ada" {
		t.Errorf("name = %q, want trimmed %q", got.Str, "Ada")
	}
	if !processed["email"].IsNull() {
		t.Errorf("absent schema column should be null in processed row")
	}
	if _, ok := processed["extra"]; ok {
		t.Error("processed row must not carry undeclared columns")
	}
	// The raw row is untouched.
	if raw["name"].Str != "  Ada  " {
		t.Error("raw row was mutated")
	}
}
