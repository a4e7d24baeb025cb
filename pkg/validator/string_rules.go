package validator

import "unicode/utf8"

// MinLen fails when the value has fewer than min runes.
func MinLen(min int, message string) Rule {
	return Rule{
		Check: func(value string, _ FieldLookup) bool {
			return utf8.RuneCountInString(value) >= min
		},
		Reason:  ReasonLengthViolation,
		Message: message,
	}
}

// LenBetween fails when the rune count is outside [min, max].
func LenBetween(min, max int, message string) Rule {
	return Rule{
		Check: func(value string, _ FieldLookup) bool {
			n := utf8.RuneCountInString(value)
			return n >= min && n <= max
		},
		Reason:  ReasonLengthViolation,
		Message: message,
	}
}
