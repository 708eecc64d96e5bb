package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// GitHub usernames: alphanumerics and single hyphens, no leading/trailing
// hyphen, at most 39 characters.
var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9](?:-?[a-zA-Z0-9])*$`)

var hexColorPattern = regexp.MustCompile(`^(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// ValidateUsername validates a GitHub username for safety and correctness.
// It rejects names that could be used for path traversal or injection into
// upstream queries.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 39 characters (GitHub's own limit)
func ValidateUsername(name string) error {
	if name == "" {
		return New(ErrCodeMissingParam, "username is required")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidUsername, "username contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return New(ErrCodeInvalidUsername, "username contains invalid characters")
	}

	if len(name) > 39 {
		return New(ErrCodeInvalidUsername, "username too long (max 39 characters)")
	}

	if !usernamePattern.MatchString(name) {
		return New(ErrCodeInvalidUsername, "invalid username: %q", name)
	}
	return nil
}

// ValidateHexColor validates a color override value as passed in query
// parameters: 3, 6, or 8 hex digits without a leading '#'.
func ValidateHexColor(value string) error {
	if value == "" {
		return New(ErrCodeInvalidColor, "color value cannot be empty")
	}
	if !hexColorPattern.MatchString(value) {
		return New(ErrCodeInvalidColor, "invalid hex color: %q", value)
	}
	return nil
}
