package validate

import "testing"

func TestReconcileHeaders(t *testing.T) {
	schema := Schema{
		{Column: "employee_no"},
		{Column: "email"},
	}

	tests := []struct {
		name    string
		headers []string
		want    bool
	}{
		{"exact match", []string{"employee_no", "email"}, true},
		{"different order", []string{"email", "employee_no"}, true},
		{"headers need trimming", []string{"  employee_no ", "email  "}, true},
		{"extra columns are ignored", []string{"employee_no", "email", "notes"}, true},
		{"one column missing", []string{"employee_no"}, false},
		{"all columns missing", []string{"foo", "bar"}, false},
		{"empty header row", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReconcileHeaders(schema, tt.headers); got != tt.want {
				t.Errorf("ReconcileHeaders(%v) = %v, want %v", tt.headers, got, tt.want)
			}
		})
	}
}

func TestReconcileHeaders_EmptySchema(t *testing.T) {
	if !ReconcileHeaders(Schema{}, []string{"anything"}) {
		t.Error("empty schema should accept any header row")
	}
}

func TestHeaderDiff(t *testing.T) {
	schema := Schema{{Column: "a"}, {Column: "b"}}

	missing, extra, found := headerDiff(schema, []string{" b ", "c"})

	if len(missing) != 1 || missing[0] != "a" {
		t.Errorf("missing = %v, want [a]", missing)
	}
	if len(extra) != 1 || extra[0] != "c" {
		t.Errorf("extra = %v, want [c]", extra)
	}
	if len(found) != 2 || found[0] != "b" {
		t.Errorf("found = %v, want trimmed headers", found)
	}
}
