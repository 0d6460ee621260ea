package utils

import (
	"strings"
	"unicode"
)

// Slugify turns a title into a URL path segment. Arabic letters are kept
// as-is (the frontend percent-encodes them); everything that is not a
// letter or digit collapses into a single dash.
func Slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.TrimSpace(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
			lastDash = false
		default:
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
