package validator

import (
	"regexp"
	"unicode/utf8"
)

const passwordMinLength = 8

var (
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	specialCharRegex = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// PasswordChecks holds the individual complexity checks of a password.
type PasswordChecks struct {
	Length    bool `json:"length"`
	Uppercase bool `json:"uppercase"`
	Lowercase bool `json:"lowercase"`
	Number    bool `json:"number"`
	Special   bool `json:"special"`
}

// PasswordStrength is the result of ScorePassword. Score is the number of
// satisfied checks, 0 to 5, every check weighing the same.
type PasswordStrength struct {
	Score  int            `json:"score"`
	Checks PasswordChecks `json:"checks"`
}

// Level names the score for strength meters: weak (0-2), fair (3), good (4), strong (5).
func (s PasswordStrength) Level() string {
	switch {
	case s.Score >= 5:
		return "strong"
	case s.Score == 4:
		return "good"
	case s.Score == 3:
		return "fair"
	default:
		return "weak"
	}
}

// ScorePassword evaluates the five complexity checks: at least 8 characters,
// an uppercase letter, a lowercase letter, a digit, and a character that is
// neither an ASCII letter nor a digit.
func ScorePassword(password string) PasswordStrength {
	checks := PasswordChecks{
		Length:    utf8.RuneCountInString(password) >= passwordMinLength,
		Uppercase: uppercaseRegex.MatchString(password),
		Lowercase: lowercaseRegex.MatchString(password),
		Number:    digitRegex.MatchString(password),
		Special:   specialCharRegex.MatchString(password),
	}

	score := 0
	for _, ok := range []bool{checks.Length, checks.Uppercase, checks.Lowercase, checks.Number, checks.Special} {
		if ok {
			score++
		}
	}

	return PasswordStrength{Score: score, Checks: checks}
}

// StrongPassword fails when the password scores below minScore.
func StrongPassword(minScore int, message string) Rule {
	return Rule{
		Check: func(value string, _ FieldLookup) bool {
			return ScorePassword(value).Score >= minScore
		},
		Reason:  ReasonWeakPassword,
		Message: message,
	}
}
