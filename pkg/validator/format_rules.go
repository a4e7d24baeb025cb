package validator

// ValidEmail checks the local@domain.tld shape without any whitespace.
// It does not try to be RFC 5322 complete.
func ValidEmail(message string) Rule {
	return Matches(emailRegex, ReasonPatternMismatch, message)
}

// ValidPhone accepts a 10-digit mobile number whose first digit is 6-9.
func ValidPhone(message string) Rule {
	return Matches(phoneRegex, ReasonPatternMismatch, message)
}

// ValidZipcode accepts a 6-digit postal code that does not start with 0.
func ValidZipcode(message string) Rule {
	return Matches(zipcodeRegex, ReasonPatternMismatch, message)
}
