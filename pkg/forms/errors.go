package forms

import "errors"

var (
	// ErrUnknownForm is returned by Lookup for a name with no schema.
	ErrUnknownForm = errors.New("unknown form")

	// ErrInvalidSchema is returned when a schema document is malformed.
	ErrInvalidSchema = errors.New("invalid form schema")

	// ErrInvalidSubmission is returned when a submission document cannot be decoded.
	ErrInvalidSubmission = errors.New("invalid form submission")
)
