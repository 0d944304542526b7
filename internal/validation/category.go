package validation

import (
	"regexp"
)

var categoryCodeRe = regexp.MustCompile(`^[a-z][a-z0-9_]{0,19}$`)

// ValidateCategoryCode checks the short-code shape: lowercase, starts with
// a letter, max 20 characters.
func ValidateCategoryCode(code string) error {
	if code == "" {
		return Error("code", "category code is required")
	}

	if !categoryCodeRe.MatchString(code) {
		return Error("code", "category code must be lowercase letters, digits or underscores (max 20 characters)")
	}

	return nil
}
