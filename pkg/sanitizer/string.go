package sanitizer

import "strings"

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// MaxLength truncates a string to at most maxLen runes.
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	return string(runes[:maxLen])
}

// KeepDigits keeps only the ASCII digits 0-9.
func KeepDigits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// KeepNameChars keeps ASCII letters and whitespace.
func KeepNameChars(s string) string {
	return nonNameCharRegex.ReplaceAllString(s, "")
}

// NormalizeWhitespace collapses runs of whitespace into a single space and trims.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}
