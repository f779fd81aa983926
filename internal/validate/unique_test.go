package validate

import (
	"testing"

	"github.com/sheetcheck/sheetcheck/internal/sheet"
)

func TestUniqueTracker_SingleColumnDuplicates(t *testing.T) {
	rows := []sheet.Record{
		{"id": sheet.String("1")},
		{"id": sheet.String("2")},
		{"id": sheet.String("1")},
	}

	tracker := newUniqueTracker([]UniqueGroup{{"id"}})
	for i, row := range rows {
		tracker.add(row, i+2)
	}

	errs := tracker.resolveGroup(0)
	if len(errs) != 2 {
		t.Fatalf("got %d duplicate errors, want 2: %v", len(errs), errs)
	}

	wantMsg := "Duplicate value found: 1 in rows 2,4"
	for i, e := range errs {
		if e.Type != ErrorDuplicate {
			t.Errorf("errs[%d].Type = %s", i, e.Type)
		}
		if e.Column != "id" {
			t.Errorf("errs[%d].Column = %q, want constraint key %q", i, e.Column, "id")
		}
		if e.Message != wantMsg {
			t.Errorf("errs[%d].Message = %q, want %q", i, e.Message, wantMsg)
		}
	}
	if errs[0].Row != 2 || errs[1].Row != 4 {
		t.Errorf("rows = %d,%d want 2,4", errs[0].Row, errs[1].Row)
	}
}

func TestUniqueTracker_CompositeKey(t *testing.T) {
	tests := []struct {
		name  string
		row   sheet.Record
		group UniqueGroup
		want  string
	}{
		{
			"values joined in group order",
			sheet.Record{"a": sheet.String("x"), "b": sheet.String("y")},
			UniqueGroup{"b", "a"},
			"y|x",
		},
		{
			"strings trimmed",
			sheet.Record{"a": sheet.String("  x  ")},
			UniqueGroup{"a"},
			"x",
		},
		{
			"missing column uses sentinel",
			sheet.Record{"a": sheet.String("x")},
			UniqueGroup{"a", "b"},
			"x|NULL",
		},
		{
			"numbers stringified",
			sheet.Record{"a": sheet.Number(42)},
			UniqueGroup{"a"},
			"42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := compositeKey(tt.row, tt.group); got != tt.want {
				t.Errorf("compositeKey = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUniqueTracker_RowsMissingAllColumnsCollide(t *testing.T) {
	// Two rows both missing the key column share the sentinel key.
	tracker := newUniqueTracker([]UniqueGroup{{"id"}})
	tracker.add(sheet.Record{}, 2)
	tracker.add(sheet.Record{}, 3)

	errs := tracker.resolveGroup(0)
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2", len(errs))
	}
	if errs[0].Message != "Duplicate value found: NULL in rows 2,3" {
		t.Errorf("message = %q", errs[0].Message)
	}
}

func TestUniqueTracker_IndependentGroups(t *testing.T) {
	rows := []sheet.Record{
		{"id": sheet.String("1"), "email": sheet.String("a@b.com")},
		{"id": sheet.String("1"), "email": sheet.String("c@d.com")},
	}

	tracker := newUniqueTracker([]UniqueGroup{{"id"}, {"email"}})
	for i, row := range rows {
		tracker.add(row, i+2)
	}

	if errs := tracker.resolveGroup(0); len(errs) != 2 {
		t.Errorf("id group: got %d errors, want 2", len(errs))
	}
	if errs := tracker.resolveGroup(1); len(errs) != 0 {
		t.Errorf("email group: got %d errors, want 0: %v", len(errs), errs)
	}
}

func TestUniqueTracker_FirstSeenKeyOrder(t *testing.T) {
	rows := []sheet.Record{
		{"id": sheet.String("b")},
		{"id": sheet.String("a")},
		{"id": sheet.String("b")},
		{"id": sheet.String("a")},
	}

	tracker := newUniqueTracker([]UniqueGroup{{"id"}})
	for i, row := range rows {
		tracker.add(row, i+2)
	}

	errs := tracker.resolveGroup(0)
	if len(errs) != 4 {
		t.Fatalf("got %d errors, want 4", len(errs))
	}
	// Key "b" was seen first, so its errors come first.
	if errs[0].Message != "Duplicate value found: b in rows 2,4" {
		t.Errorf("first key out of order: %q", errs[0].Message)
	}
	if errs[2].Message != "Duplicate value found: a in rows 3,5" {
		t.Errorf("second key out of order: %q", errs[2].Message)
	}
}
