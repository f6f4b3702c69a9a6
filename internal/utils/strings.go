// Package utils holds small pure string helpers used by the service layer.
package utils

import (
	"regexp"
	"strings"
)

var (
	disallowedChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespace      = regexp.MustCompile(`\s+`)
)

// Slugify derives a URL-safe slug from a title: lowercase, with runs of
// whitespace collapsed to single hyphens. Only letters, digits and
// hyphens survive; anything else, underscores included, is stripped.
// The derivation is deterministic so the same title always maps to the
// same slug.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = disallowedChars.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// SearchRegex escapes a free-text search term for use in a case-insensitive
// substring match at the storage layer.
func SearchRegex(term string) string {
	return regexp.QuoteMeta(strings.TrimSpace(term))
}

// TruncateString truncates a string to maxLen characters
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
