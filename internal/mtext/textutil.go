// Package mtext provides the small trimming and splitting helpers the
// signature parser and section processors build on. It has no knowledge of
// MSON semantics; it only knows about bytes and delimiters.
package mtext

import "strings"

// IsSpace reports whether b is one of the whitespace bytes trimmed by this
// package: space, tab, newline, vertical tab, form feed or carriage return.
func IsSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

// TrimStart removes leading whitespace bytes from s.
func TrimStart(s string) string {
	i := 0
	for i < len(s) && IsSpace(s[i]) {
		i++
	}
	return s[i:]
}

// TrimEnd removes trailing whitespace bytes from s.
func TrimEnd(s string) string {
	i := len(s)
	for i > 0 && IsSpace(s[i-1]) {
		i--
	}
	return s[:i]
}

// Trim removes leading and trailing whitespace bytes from s.
func Trim(s string) string {
	return TrimEnd(TrimStart(s))
}

// Split splits s on every occurrence of delim, without trimming the pieces.
func Split(s string, delim byte) []string {
	return strings.Split(s, string(delim))
}

// SplitOnFirst splits s at the first occurrence of delim. ok is false if
// delim does not occur in s, in which case head equals s and tail is empty.
func SplitOnFirst(s string, delim byte) (head, tail string, ok bool) {
	i := strings.IndexByte(s, delim)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+1:], true
}

// GetFirstLine splits s at the first newline, returning the first line and
// the remaining content (which becomes "additional content" for a
// signature). If s has no newline, rest is empty.
func GetFirstLine(s string) (line, rest string) {
	line, rest, _ = SplitOnFirst(s, '\n')
	return line, rest
}
