package validate

// unique.go tracks composite keys per uniqueness group across all rows and
// resolves duplicates once the full value distribution has been seen.

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sheetcheck/sheetcheck/internal/sheet"
)

// nullSentinel stands in for null or absent cells when building composite
// keys, so two rows both missing a column compare as equal.
const nullSentinel = "NULL"

// keySeparator joins a group's column values into a composite key.
const keySeparator = "|"

// uniqueTracker accumulates one composite-key map per constraint group.
// Keys remember insertion order so duplicate errors come out in first-seen
// order.
type uniqueTracker struct {
	groups []UniqueGroup
	seen   []map[string][]int
	order  [][]string
}

func newUniqueTracker(groups []UniqueGroup) *uniqueTracker {
	t := &uniqueTracker{
		groups: groups,
		seen:   make([]map[string][]int, len(groups)),
		order:  make([][]string, len(groups)),
	}
	for i := range groups {
		t.seen[i] = make(map[string][]int)
	}
	return t
}

// add records the row's composite key for every group. Called once per row
// after per-column validation, even when the row produced errors.
func (t *uniqueTracker) add(row sheet.Record, rowNum int) {
	for i, group := range t.groups {
		key := compositeKey(row, group)
		if _, exists := t.seen[i][key]; !exists {
			t.order[i] = append(t.order[i], key)
		}
		t.seen[i][key] = append(t.seen[i][key], rowNum)
	}
}

// resolveGroup emits duplicate errors for one group: every composite key
// shared by more than one row produces one error per involved row.
func (t *uniqueTracker) resolveGroup(i int) []RowError {
	var errs []RowError
	constraintKey := t.groups[i].Key()

	for _, key := range t.order[i] {
		rows := t.seen[i][key]
		if len(rows) <= 1 {
			continue
		}
		msg := fmt.Sprintf("Duplicate value found: %s in rows %s", key, joinRowNumbers(rows))
		for _, rowNum := range rows {
			errs = append(errs, RowError{
				Row:     rowNum,
				Column:  constraintKey,
				Message: msg,
				Type:    ErrorDuplicate,
			})
		}
	}

	return errs
}

// compositeKey builds the normalized joined key for a row under a group:
// trimmed string values, the NULL sentinel for missing cells, in the
// group's declared column order.
func compositeKey(row sheet.Record, group UniqueGroup) string {
	parts := make([]string, len(group))
	for i, col := range group {
		v := row.Get(col).Trimmed()
		if v.IsNull() {
			parts[i] = nullSentinel
		} else {
			parts[i] = v.Text()
		}
	}
	return strings.Join(parts, keySeparator)
}

func joinRowNumbers(rows []int) string {
	parts := make([]string, len(rows))
	for i, r := range rows {
		parts[i] = strconv.Itoa(r)
	}
	return strings.Join(parts, ",")
}
