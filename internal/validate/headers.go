package validate

// headers.go reconciles the schema's expected columns against the literal
// header row of the spreadsheet. Missing columns are fatal; extra columns
// are ignored with a diagnostic.

import (
	"log/slog"
	"strings"
)

// ReconcileHeaders reports whether the header row is structurally
// acceptable for the schema. Header cells are trimmed before comparison.
// Missing expected columns are logged and make the result false; extra
// columns are logged as ignored but do not fail reconciliation.
func ReconcileHeaders(schema Schema, headers []string) bool {
	missing, extra, found := headerDiff(schema, headers)

	if len(missing) > 0 {
		slog.Error("header validation failed",
			"missing", missing,
			"expected", schema.Columns(),
			"found", found,
		)
		return false
	}

	if len(extra) > 0 {
		slog.Warn("ignoring columns not declared in schema", "columns", extra)
	}

	return true
}

// headerDiff computes the order-independent set differences between the
// schema's columns and the trimmed actual headers.
func headerDiff(schema Schema, headers []string) (missing, extra, found []string) {
	found = make([]string, 0, len(headers))
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		h = strings.TrimSpace(h)
		found = append(found, h)
		present[h] = true
	}

	expected := make(map[string]bool, len(schema))
	for _, rule := range schema {
		expected[rule.Column] = true
		if !present[rule.Column] {
			missing = append(missing, rule.Column)
		}
	}

	for _, h := range found {
		if h != "" && !expected[h] {
			extra = append(extra, h)
		}
	}

	return missing, extra, found
}
