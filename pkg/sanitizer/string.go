package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower converts a string to lowercase.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// TrimToLower trims whitespace and converts to lowercase in one step.
func TrimToLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// RemoveExtraWhitespace normalizes whitespace by replacing runs of whitespace
// characters with a single space and trimming.
func RemoveExtraWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// KeepDigits keeps only ASCII digits 0-9.
func KeepDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// KeepPhoneDigits keeps ASCII digits and a single leading plus sign.
func KeepPhoneDigits(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "+") {
		return "+" + KeepDigits(s[1:])
	}
	return KeepDigits(s)
}

// NormalizeNFC returns the canonical composition of s so that visually identical
// input compares and counts the same way.
func NormalizeNFC(s string) string {
	return norm.NFC.String(s)
}

// RemoveControlChars removes control characters from a string,
// keeping only printable characters and common whitespace.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// HasLineBreak reports whether s contains a line feed, carriage return
// or a Unicode line/paragraph separator.
func HasLineBreak(s string) bool {
	return strings.ContainsAny(s, "\n\r\u2028\u2029\u0085\u000b\u000c")
}
