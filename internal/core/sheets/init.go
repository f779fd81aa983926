// Package sheets registers the bundled sheet definitions with the core
// registry. Import this package for its side effects.
package sheets

import (
	"github.com/sheetcheck/sheetcheck/internal/core"
	"github.com/sheetcheck/sheetcheck/internal/schema"
)

func init() {
	core.Register(core.SheetDefinition{
		Key:          "employee_roster",
		Label:        "Employee Roster",
		Schema:       schema.EmployeeRoster,
		UniqueGroups: schema.EmployeeRosterUnique,
	})

	core.Register(core.SheetDefinition{
		Key:          "leave_ledger",
		Label:        "Leave Ledger",
		Schema:       schema.LeaveLedger,
		UniqueGroups: schema.LeaveLedgerUnique,
	})

	core.Register(core.SheetDefinition{
		Key:          "contact_list",
		Label:        "Contact List",
		Schema:       schema.ContactList,
		UniqueGroups: schema.ContactListUnique,
	})
}
