package validation

import (
	"strings"
	"time"
)

// ValidateName validates profile name
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)

	if trimmed == "" {
		return Error("name", "name is required")
	}

	if len(trimmed) > 100 {
		return Error("name", "name is too long (max 100 characters)")
	}

	return nil
}

// ValidateTimezone checks that tz is a loadable IANA zone name.
func ValidateTimezone(tz string) error {
	if tz == "" {
		return nil // empty means UTC
	}

	_, err := time.LoadLocation(tz)
	if err != nil {
		return Error("timezone", "unknown timezone")
	}

	return nil
}
