package utils

import "strings"

// Slugify turns a display title into a URL-safe identifier: lowercase,
// whitespace runs collapsed to single hyphens, anything outside [a-z0-9-]
// dropped. Deterministic and collision-unaware; the database unique index on
// slug columns catches duplicates.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '-':
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
