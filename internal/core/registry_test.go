package core

import (
	"testing"

	"github.com/sheetcheck/sheetcheck/internal/validate"
)

func testDefinition(key string) SheetDefinition {
	return SheetDefinition{
		Key:   key,
		Label: "Test " + key,
		Schema: validate.Schema{
			{Column: "name", Type: validate.TypeString, Required: true},
			{Column: "email", Type: validate.TypeString, Checks: validate.Checks{Email: true}},
		},
		UniqueGroups: []validate.UniqueGroup{{"email"}},
	}
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Cleanup(ClearRegistry)
	ClearRegistry()

	Register(testDefinition("alpha"))

	def, ok := Get("alpha")
	if !ok {
		t.Fatal("Get(alpha) not found")
	}
	if def.Label != "Test alpha" {
		t.Errorf("Label = %q", def.Label)
	}

	if _, ok := Get("missing"); ok {
		t.Error("Get(missing) should not be found")
	}
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	t.Cleanup(ClearRegistry)
	ClearRegistry()

	Register(testDefinition("alpha"))

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register(testDefinition("alpha"))
}

func TestRegistry_EmptySchemaPanics(t *testing.T) {
	t.Cleanup(ClearRegistry)
	ClearRegistry()

	defer func() {
		if recover() == nil {
			t.Error("expected panic on empty schema")
		}
	}()
	Register(SheetDefinition{Key: "empty"})
}

func TestRegistry_AllSortedByKey(t *testing.T) {
	t.Cleanup(ClearRegistry)
	ClearRegistry()

	Register(testDefinition("zeta"))
	Register(testDefinition("alpha"))
	Register(testDefinition("mid"))

	defs := All()
	if len(defs) != 3 {
		t.Fatalf("All() returned %d definitions, want 3", len(defs))
	}
	want := []string{"alpha", "mid", "zeta"}
	for i, key := range want {
		if defs[i].Key != key {
			t.Errorf("All()[%d].Key = %q, want %q", i, defs[i].Key, key)
		}
	}

	if got := SheetCount(); got != 3 {
		t.Errorf("SheetCount() = %d, want 3", got)
	}
}

func TestSheetDefinition_Info(t *testing.T) {
	def := testDefinition("roster")
	info := def.Info()

	if info.Key != "roster" || info.Label != "Test roster" {
		t.Errorf("Info() = %+v", info)
	}
	want := []string{"name", "email"}
	if len(info.Columns) != len(want) {
		t.Fatalf("Columns = %v, want %v", info.Columns, want)
	}
	for i, col := range want {
		if info.Columns[i] != col {
			t.Errorf("Columns[%d] = %q, want %q", i, info.Columns[i], col)
		}
	}
}
