package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9-]+`)
	manyHyphens  = regexp.MustCompile(`-{2,}`)
)

// Slugify converts a title to a URL-safe slug: accents are decomposed and
// stripped, spaces become hyphens, everything outside [a-z0-9-] is dropped.
// Content with no ASCII representation (e.g. a Japanese-only title) yields
// an empty slug; callers must then require an explicit one.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, _ := transform.String(t, s)
	out = strings.ToLower(out)
	out = strings.ReplaceAll(out, " ", "-")
	out = nonSlugChars.ReplaceAllString(out, "")
	out = manyHyphens.ReplaceAllString(out, "-")
	return strings.Trim(out, "-")
}

// ValidSlug reports whether s is a well-formed slug: non-empty, lowercase
// alphanumerics and single hyphens, no leading or trailing hyphen.
func ValidSlug(s string) bool {
	if s == "" || s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}
	if strings.Contains(s, "--") {
		return false
	}
	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-') {
			return false
		}
	}
	return true
}
