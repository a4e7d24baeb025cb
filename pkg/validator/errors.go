package validator

import (
	"errors"
	"fmt"
)

// Reason classifies why a field failed validation.
type Reason string

const (
	ReasonRequired            Reason = "required"
	ReasonCharsetViolation    Reason = "charset_violation"
	ReasonLengthViolation     Reason = "length_violation"
	ReasonPatternMismatch     Reason = "pattern_mismatch"
	ReasonWeakPassword        Reason = "weak_password"
	ReasonPasswordMismatch    Reason = "password_mismatch"
	ReasonInvalidDate         Reason = "invalid_date"
	ReasonFutureDate          Reason = "future_date"
	ReasonImplausibleAge      Reason = "implausible_age"
	ReasonPastAppointmentDate Reason = "past_appointment_date"
)

// Common validation errors, one per Reason.
var (
	// ErrValidationFailed is returned when validation fails but no specific reason is known.
	ErrValidationFailed = errors.New("validation failed")

	ErrFieldRequired       = errors.New("field is required")
	ErrCharsetViolation    = errors.New("invalid characters")
	ErrInvalidLength       = errors.New("invalid length")
	ErrInvalidFormat       = errors.New("invalid format")
	ErrWeakPassword        = errors.New("password is too weak")
	ErrPasswordMismatch    = errors.New("passwords do not match")
	ErrInvalidDate         = errors.New("invalid date")
	ErrFutureDate          = errors.New("date is in the future")
	ErrImplausibleAge      = errors.New("implausible age")
	ErrPastAppointmentDate = errors.New("appointment date is in the past")

	// ErrInvalidConfig is returned by New when the configuration cannot be used.
	ErrInvalidConfig = errors.New("invalid validator config")
)

var reasonErrors = map[Reason]error{
	ReasonRequired:            ErrFieldRequired,
	ReasonCharsetViolation:    ErrCharsetViolation,
	ReasonLengthViolation:     ErrInvalidLength,
	ReasonPatternMismatch:     ErrInvalidFormat,
	ReasonWeakPassword:        ErrWeakPassword,
	ReasonPasswordMismatch:    ErrPasswordMismatch,
	ReasonInvalidDate:         ErrInvalidDate,
	ReasonFutureDate:          ErrFutureDate,
	ReasonImplausibleAge:      ErrImplausibleAge,
	ReasonPastAppointmentDate: ErrPastAppointmentDate,
}

// Err returns the sentinel error for the reason.
func (r Reason) Err() error {
	if err, ok := reasonErrors[r]; ok {
		return err
	}
	return ErrValidationFailed
}

// FieldError is a single failed field. It unwraps to the reason's sentinel,
// so errors.Is(err, ErrWeakPassword) works on it.
type FieldError struct {
	Field   FieldName
	Reason  Reason
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *FieldError) Unwrap() error {
	return e.Reason.Err()
}
