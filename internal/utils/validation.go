package utils

import (
	"regexp"
	"strings"
)

// MaxInputLength caps echoed form values.
const MaxInputLength = 32

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// SanitizeInput removes HTML tags, trims whitespace and truncates to
// MaxInputLength runes.
func SanitizeInput(input string) string {
	sanitized := htmlTagPattern.ReplaceAllString(input, "")
	sanitized = strings.TrimSpace(sanitized)

	if runes := []rune(sanitized); len(runes) > MaxInputLength {
		sanitized = string(runes[:MaxInputLength])
	}
	return sanitized
}

// HasFieldErrors reports whether any field collected an error.
func HasFieldErrors(fieldErrors map[string][]string) bool {
	for _, errs := range fieldErrors {
		if len(errs) > 0 {
			return true
		}
	}
	return false
}
