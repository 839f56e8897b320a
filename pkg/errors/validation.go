package errors

import (
	"strings"
	"unicode"
)

// ValidateCount rejects negative counts. The name is used in the message,
// e.g. ValidateCount("node count", -1).
func ValidateCount(name string, n int) error {
	if n < 0 {
		return New(ErrCodeInvalidInput, "%s must be >= 0, got %d", name, n)
	}
	return nil
}

// ValidateAlphabet validates a label alphabet.
//
// Validation rules:
//   - Alphabet cannot be empty
//   - No control or whitespace characters
//   - No repeated symbols (a repeated symbol would bias the draw)
func ValidateAlphabet(alphabet string) error {
	if alphabet == "" {
		return New(ErrCodeInvalidInput, "alphabet cannot be empty")
	}

	seen := make(map[rune]bool, len(alphabet))
	for _, r := range alphabet {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "alphabet contains invalid character %q", r)
		}
		if seen[r] {
			return New(ErrCodeInvalidInput, "alphabet repeats symbol %q", r)
		}
		seen[r] = true
	}
	return nil
}

// ValidateFormat checks that format is one of the allowed values.
func ValidateFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "invalid format: %s (must be one of %s)", format, strings.Join(allowed, ", "))
}
