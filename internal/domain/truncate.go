package domain

import (
	"strings"
	"unicode/utf8"
)

// Truncate trims whitespace and hard-cuts text at limit bytes, appending
// "...". Text already within the limit is returned unchanged after trimming,
// so the operation is idempotent on its own output. The cut never splits a
// multi-byte rune: the index backs up to the nearest rune boundary first.
func Truncate(text string, limit int) string {
	text = strings.TrimSpace(text)
	if limit <= 0 || len(text) <= limit {
		return text
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return strings.TrimRight(text[:cut], " \t\n") + "..."
}

// Flatten collapses newlines into single spaces for one-line display payloads.
func Flatten(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
