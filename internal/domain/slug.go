package domain

import (
	"regexp"
	"strings"
)

// FallbackSlug is used when a title has no slug-safe characters left
const FallbackSlug = "untitled"

var (
	slugUnsafeChars = regexp.MustCompile(`[^a-zA-Z0-9\-_\s]`)
	slugWhitespace  = regexp.MustCompile(`\s+`)
)

// Slug converts a title into a filesystem-safe, lowercase, hyphenated name.
// Distinct titles may produce the same slug.
func Slug(title string) string {
	s := slugUnsafeChars.ReplaceAllString(title, "")
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugWhitespace.ReplaceAllString(s, "-")
	if s == "" {
		return FallbackSlug
	}
	return s
}
