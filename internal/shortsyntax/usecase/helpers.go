package usecase

import (
	"strings"
	"unicode"
)

// normalizeTitle lowercases s and drops all whitespace.
func normalizeTitle(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}

// cutSpan removes title[start:end], trims the result and collapses the
// first double space the cut may leave behind.
func cutSpan(title string, start, end int) string {
	out := strings.TrimSpace(title[:start] + title[end:])
	return strings.Replace(out, "  ", " ", 1)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}
