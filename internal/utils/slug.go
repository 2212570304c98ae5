package utils

import (
	"regexp"
	"strings"
)

var (
	whitespaceRE = regexp.MustCompile(`\s+`)
	unsafeRE     = regexp.MustCompile(`[^a-z0-9\-]`)
	dashRunRE    = regexp.MustCompile(`-{2,}`)
)

// Slugify derives a URL-safe slug from a post title: lowercase, whitespace
// collapsed to single dashes, anything outside [a-z0-9-] dropped.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = whitespaceRE.ReplaceAllString(s, "-")
	s = unsafeRE.ReplaceAllString(s, "")
	s = dashRunRE.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
