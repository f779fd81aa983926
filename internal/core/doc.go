// Package core manages validation runs: it looks up registered sheet
// definitions, drives the validation engine asynchronously, broadcasts
// progress to subscribers, honors cancellation requests, and hands
// finished runs to the history store.
//
// # Sheet Registry
//
// Sheet definitions are registered at init time using [Register]. Each
// [SheetDefinition] pairs a declarative schema with its cross-row
// uniqueness groups:
//
//	core.Register(SheetDefinition{
//	    Key:    "employee_roster",
//	    Label:  "Employee Roster",
//	    Schema: schema.EmployeeRoster,
//	    UniqueGroups: schema.EmployeeRosterUnique,
//	})
//
// # Run Lifecycle
//
//  1. A client calls [Service.StartRun] with the file bytes and gets a run
//     ID back immediately.
//  2. A goroutine decodes and validates the file, publishing one progress
//     snapshot per processed row and per resolved constraint group.
//  3. Clients subscribe via [Service.SubscribeProgress] and may call
//     [Service.CancelRun] at any time; the engine stops at the next row
//     boundary and the partial findings are kept.
//  4. [Service.GetResult] blocks until the run finishes; completed runs
//     are evicted from memory after a retention delay.
package core
