package validation

import (
	"strings"
	"testing"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid passphrase", "correct horse battery staple", false},
		{"too short", "elevenchars", true},
		{"too long", strings.Repeat("a", 73), true},
		{"contains common pattern", "mypassword12ab", true},
		{"common pattern uppercase", "MyPASSWORD12ab", true},
		{"exactly twelve chars", "abcdefghijkm", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePassword(%q) = %v, wantErr %v", tt.password, err, tt.wantErr)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email   string
		wantErr bool
	}{
		{"ada@example.com", false},
		{"first.last+tag@sub.example.org", false},
		{"", true},
		{"not-an-email", true},
		{"missing@domain@example.com", true},
		{strings.Repeat("a", 250) + "@x.io", true},
	}

	for _, tt := range tests {
		err := ValidateEmail(tt.email)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateEmail(%q) = %v, wantErr %v", tt.email, err, tt.wantErr)
		}
	}
}

func TestValidateName(t *testing.T) {
	if err := ValidateName("Ada"); err != nil {
		t.Errorf("ValidateName(Ada) = %v", err)
	}
	if err := ValidateName("   "); err == nil {
		t.Error("whitespace-only name should fail")
	}
	if err := ValidateName(strings.Repeat("x", 101)); err == nil {
		t.Error("over-long name should fail")
	}
}

func TestValidateTimezone(t *testing.T) {
	if err := ValidateTimezone(""); err != nil {
		t.Errorf("empty timezone should pass: %v", err)
	}
	if err := ValidateTimezone("Europe/Berlin"); err != nil {
		t.Errorf("ValidateTimezone(Europe/Berlin) = %v", err)
	}
	if err := ValidateTimezone("Nowhere/Void"); err == nil {
		t.Error("unknown timezone should fail")
	}
}

func TestValidateCategoryCode(t *testing.T) {
	tests := []struct {
		code    string
		wantErr bool
	}{
		{"exercise", false},
		{"side_project2", false},
		{"", true},
		{"Exercise", true},
		{"2fast", true},
		{"has space", true},
		{strings.Repeat("a", 21), true},
	}

	for _, tt := range tests {
		err := ValidateCategoryCode(tt.code)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateCategoryCode(%q) = %v, wantErr %v", tt.code, err, tt.wantErr)
		}
	}
}

func TestFieldErrorMessage(t *testing.T) {
	err := Error("title", "title is required")
	if err.Error() != "title is required" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Field != "title" {
		t.Errorf("Field = %q", err.Field)
	}
}
