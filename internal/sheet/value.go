// Package sheet provides the cell value model and XLSX decoding for
// spreadsheet validation.
//
// Every decoded cell carries an explicit Kind tag assigned at decode time.
// Downstream validation compares these tags directly instead of reflecting
// on dynamic types.
package sheet

import (
	"strconv"
	"strings"
)

// Kind identifies the primitive kind of a decoded cell value.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
)

// String returns the human-readable name of the kind, as used in
// type-mismatch error messages.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	default:
		return "null"
	}
}

// Value is a single kind-tagged cell value.
// The zero value is the null cell.
type Value struct {
	Kind Kind
	Str  string
	Num  float64
	Bool bool
}

// Null returns the null cell value.
func Null() Value { return Value{} }

// String returns a string-kinded value.
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// Number returns a number-kinded value.
func Number(f float64) Value { return Value{Kind: KindNumber, Num: f} }

// Boolean returns a boolean-kinded value.
func Boolean(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// IsNull reports whether the value is the null cell.
func (v Value) IsNull() bool { return v.Kind == KindNull }

// Text returns the stringified form of the value. Numbers use the shortest
// representation that round-trips; booleans render as "true"/"false"; the
// null cell renders as the empty string.
func (v Value) Text() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	default:
		return ""
	}
}

// Trimmed returns the value with surrounding whitespace removed from string
// cells. Non-string cells pass through unchanged.
func (v Value) Trimmed() Value {
	if v.Kind == KindString {
		v.Str = strings.TrimSpace(v.Str)
	}
	return v
}

// Equal reports whether two values have the same kind and content.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindString:
		return v.Str == o.Str
	case KindNumber:
		return v.Num == o.Num
	case KindBool:
		return v.Bool == o.Bool
	default:
		return true
	}
}

// MarshalJSON renders the value as its natural JSON type.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindString:
		return []byte(strconv.Quote(v.Str)), nil
	case KindNumber:
		return []byte(strconv.FormatFloat(v.Num, 'f', -1, 64)), nil
	case KindBool:
		return []byte(strconv.FormatBool(v.Bool)), nil
	default:
		return []byte("null"), nil
	}
}

// Record is one decoded data row, keyed by header column name.
// Columns absent from the row are treated as null cells.
type Record map[string]Value

// Get returns the value for a column, or the null cell if the column is
// absent from the record.
func (r Record) Get(column string) Value {
	if v, ok := r[column]; ok {
		return v
	}
	return Null()
}
