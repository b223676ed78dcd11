package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeKey prepares a natural key (slug, username) for storage and comparison:
//   - applies Unicode NFC so visually equal keys compare equal
//   - trims leading/trailing whitespace
//
// Case is preserved.
func NormalizeKey(key string) string {
	return strings.TrimSpace(norm.NFC.String(key))
}

// NormalizeEmail trims, NFC-normalizes and lowercases an email address.
func NormalizeEmail(email string) string {
	email = NormalizeKey(email)
	if email == "" {
		return ""
	}
	return strings.ToLower(email)
}

// NormalizeName trims a display name and compresses runs of spaces into one.
func NormalizeName(text string) string {
	text = strings.TrimSpace(norm.NFC.String(text))
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
