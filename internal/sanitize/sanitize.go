// Package sanitize normalizes untrusted form input before validation.
package sanitize

import (
	"regexp"
	"strings"
)

// MaxLength is the hard cap applied after stripping and collapsing.
const MaxLength = 5000

var (
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Clean strips tag-like constructs entirely (removed, not escaped), collapses
// whitespace runs (including newlines) to single spaces, trims, and truncates
// to MaxLength runes. Empty input yields an empty string. Clean is idempotent.
func Clean(input string) string {
	if input == "" {
		return ""
	}

	stripped := tagPattern.ReplaceAllString(input, "")
	collapsed := whitespacePattern.ReplaceAllString(stripped, " ")
	trimmed := strings.TrimSpace(collapsed)

	// Truncate in runes so a multi-byte character is never split.
	runes := []rune(trimmed)
	if len(runes) > MaxLength {
		trimmed = strings.TrimSpace(string(runes[:MaxLength]))
	}

	return trimmed
}
