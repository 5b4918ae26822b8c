// Package format derives display strings from backend records. Every
// function is total: absent or malformed fields fall back to a fixed
// placeholder instead of failing.
package format

import "strings"

// Ellipsis is appended to truncated text.
const Ellipsis = "..."

// field reads one candidate value from a record.
type field[T any] func(T) string

// firstOf returns the first non-empty candidate in priority order, or fallback.
func firstOf[T any](v T, fields []field[T], fallback string) string {
	for _, f := range fields {
		if s := f(v); s != "" {
			return s
		}
	}
	return fallback
}

// Truncate trims s and cuts it to limit characters, appending Ellipsis when
// something was cut. Empty input stays empty.
func Truncate(s string, limit int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if limit < 0 || len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + Ellipsis
}
