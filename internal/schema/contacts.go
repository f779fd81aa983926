package schema

import "github.com/sheetcheck/sheetcheck/internal/validate"

// ContactList describes the external contact sheet. Only the email is
// mandatory; the mobile number is checked when present.
var ContactList = validate.Schema{
	{Column: "full_name", Type: validate.TypeString, Required: true},
	{Column: "email", Type: validate.TypeString, Required: true, Checks: validate.Checks{Email: true}},
	{Column: "mobile", Checks: validate.Checks{Mobile: true}},
	{Column: "company", Type: validate.TypeString},
}

// ContactListUnique: one row per email address.
var ContactListUnique = []validate.UniqueGroup{
	{"email"},
}
