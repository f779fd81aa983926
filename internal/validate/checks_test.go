package validate

import (
	"testing"

	"github.com/sheetcheck/sheetcheck/internal/sheet"
)

func TestIsEmail(t *testing.T) {
	tests := []struct {
		name  string
		value sheet.Value
		want  bool
	}{
		{"simple address", sheet.String("a@b.com"), true},
		{"subdomain", sheet.String("user@mail.example.org"), true},
		{"plus tag", sheet.String("user+tag@example.com"), true},
		{"not an email", sheet.String("not-an-email"), false},
		{"missing domain dot", sheet.String("user@example"), false},
		{"missing local part", sheet.String("@example.com"), false},
		{"whitespace inside", sheet.String("us er@example.com"), false},
		{"double at", sheet.String("a@b@c.com"), false},
		{"empty", sheet.String(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEmail(tt.value); got != tt.want {
				t.Errorf("IsEmail(%q) = %v, want %v", tt.value.Text(), got, tt.want)
			}
		})
	}
}

func TestIsMobileNumber(t *testing.T) {
	tests := []struct {
		name  string
		value sheet.Value
		want  bool
	}{
		{"plain ten digits", sheet.String("9876543210"), true},
		{"with +91 prefix", sheet.String("+919876543210"), true},
		{"with 0 prefix", sheet.String("09876543210"), true},
		{"internal whitespace stripped", sheet.String("+91 98765 43210"), true},
		{"numeric cell", sheet.Number(9876543210), true},
		{"nine digits", sheet.String("987654321"), false},
		{"eleven digits no prefix", sheet.String("98765432101"), false},
		{"letters", sheet.String("98765abcde"), false},
		{"other prefix", sheet.String("+449876543210"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsMobileNumber(tt.value); got != tt.want {
				t.Errorf("IsMobileNumber(%q) = %v, want %v", tt.value.Text(), got, tt.want)
			}
		})
	}
}

func TestIsEmployeeNumber(t *testing.T) {
	tests := []struct {
		name  string
		value sheet.Value
		want  bool
	}{
		{"seven digits", sheet.String("1234567"), true},
		{"nine digits", sheet.String("123456789"), true},
		{"numeric cell", sheet.Number(1234567), true},
		{"six digits", sheet.String("123456"), false},
		{"ten digits", sheet.String("1234567890"), false},
		{"trailing letter", sheet.String("1234567a"), false},
		{"empty", sheet.String(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEmployeeNumber(tt.value); got != tt.want {
				t.Errorf("IsEmployeeNumber(%q) = %v, want %v", tt.value.Text(), got, tt.want)
			}
		})
	}
}
