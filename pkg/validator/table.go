package validator

import "fmt"

// Messages shown to the user for each failed rule.
const (
	MsgNameCharset      = "Name can only contain letters and spaces"
	MsgEmail            = "Please enter a valid email address"
	MsgPhone            = "Please enter a valid 10-digit mobile number starting with 6, 7, 8 or 9"
	MsgZipcode          = "Please enter a valid 6-digit zip code"
	MsgUsernameFormat   = "Username must start with a letter and contain only letters, numbers, underscores and hyphens"
	MsgWeakPassword     = "Password is too weak: use at least 8 characters with upper and lower case letters, numbers and symbols"
	MsgPasswordMismatch = "Passwords do not match"
	MsgInvalidDate      = "Please enter a valid date"
	MsgFutureBirthDate  = "Date of birth cannot be in the future"
	MsgImplausibleAge   = "Please enter a valid date of birth"
	MsgPastAppointment  = "Appointment date cannot be in the past"
)

// defaultPolicies builds the rule table for the known field names.
func defaultPolicies(cfg Config, cal Calendar) map[FieldName]Policy {
	personName := Policy{
		PersonNameCharset(MsgNameCharset),
		MinLen(cfg.NameMinLength, fmt.Sprintf("Name must be at least %d characters long", cfg.NameMinLength)),
	}

	return map[FieldName]Policy{
		FirstName: personName,
		LastName:  personName,
		Email:     {ValidEmail(MsgEmail)},
		Phone:     {ValidPhone(MsgPhone)},
		Zipcode:   {ValidZipcode(MsgZipcode)},
		Username: {
			UsernameFormat(MsgUsernameFormat),
			LenBetween(cfg.UsernameMinLength, cfg.UsernameMaxLength,
				fmt.Sprintf("Username must be between %d and %d characters long", cfg.UsernameMinLength, cfg.UsernameMaxLength)),
		},
		Password:        {StrongPassword(cfg.PasswordMinScore, MsgWeakPassword)},
		ConfirmPassword: {EqualsField(Password, MsgPasswordMismatch)},
		DateOfBirth: {
			cal.ValidDate(MsgInvalidDate),
			cal.NotInFuture(MsgFutureBirthDate),
			cal.MaxAge(cfg.MaxAge, MsgImplausibleAge),
		},
		AppointmentDate: {
			cal.ValidDate(MsgInvalidDate),
			cal.NotBeforeToday(MsgPastAppointment),
		},
	}
}
