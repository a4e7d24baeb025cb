package validator

import "regexp"

var (
	personNameRegex = regexp.MustCompile(`^[A-Za-z\p{Zs}\t\n\v\f\r]+$`)
	emailRegex      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex      = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	zipcodeRegex    = regexp.MustCompile(`^[1-9][0-9]{5}$`)
	usernameRegex   = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)
)

// Matches fails with reason when the value does not match re.
// The regexp is expected to be compiled once by the caller.
func Matches(re *regexp.Regexp, reason Reason, message string) Rule {
	return Rule{
		Check: func(value string, _ FieldLookup) bool {
			return re.MatchString(value)
		},
		Reason:  reason,
		Message: message,
	}
}

// PersonNameCharset accepts ASCII letters and whitespace only. Whitespace
// includes Unicode space separators such as U+00A0.
func PersonNameCharset(message string) Rule {
	return Matches(personNameRegex, ReasonCharsetViolation, message)
}

// UsernameFormat requires a leading letter followed by letters, digits,
// underscores or hyphens.
func UsernameFormat(message string) Rule {
	return Matches(usernameRegex, ReasonPatternMismatch, message)
}
