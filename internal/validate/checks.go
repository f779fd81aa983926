package validate

// checks.go implements the built-in format validators. Each operates on the
// stringified cell value so numeric cells can satisfy digit-based rules.

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/sheetcheck/sheetcheck/internal/sheet"
)

var (
	// local@domain.tld with no whitespace or extra @ in any part.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Optional +91 or 0 prefix followed by exactly 10 digits.
	mobilePattern = regexp.MustCompile(`^(\+91|0)?[0-9]{10}$`)

	// 7 to 9 digits, nothing else.
	employeeNumberPattern = regexp.MustCompile(`^[0-9]{7,9}$`)
)

// IsEmail reports whether the value looks like an email address.
func IsEmail(v sheet.Value) bool {
	return emailPattern.MatchString(v.Text())
}

// IsMobileNumber reports whether the value is a valid mobile number after
// stripping all whitespace.
func IsMobileNumber(v sheet.Value) bool {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, v.Text())
	return mobilePattern.MatchString(stripped)
}

// IsEmployeeNumber reports whether the value is a 7 to 9 digit employee
// number.
func IsEmployeeNumber(v sheet.Value) bool {
	return employeeNumberPattern.MatchString(v.Text())
}
