package slug

import (
	"regexp"
	"strings"
)

var (
	disallowed = regexp.MustCompile(`[^a-z0-9\s\p{Zs}]`)
	whitespace = regexp.MustCompile(`[\s\p{Zs}]+`)
)

// Generate derives a URL slug from a title: lowercase, drop everything that
// is not an ASCII letter, digit or space (Unicode spaces included), then join words with single hyphens.
func Generate(title string) string {
	s := strings.ToLower(title)
	s = disallowed.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	return whitespace.ReplaceAllString(s, "-")
}
