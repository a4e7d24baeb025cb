package validator

import "strings"

// FieldName identifies a form field. Names without a registered policy are
// validated only for presence.
type FieldName string

const (
	FirstName       FieldName = "first_name"
	LastName        FieldName = "last_name"
	Email           FieldName = "email"
	Phone           FieldName = "phone"
	Zipcode         FieldName = "zipcode"
	Username        FieldName = "username"
	Password        FieldName = "password"
	ConfirmPassword FieldName = "confirm_password"
	DateOfBirth     FieldName = "date_of_birth"
	AppointmentDate FieldName = "date"
)

// FieldLookup gives rules read access to the current values of sibling fields.
type FieldLookup interface {
	Lookup(name FieldName) (string, bool)
}

// Values is a map based FieldLookup. Values are trimmed on lookup.
type Values map[FieldName]string

func (v Values) Lookup(name FieldName) (string, bool) {
	s, ok := v[name]
	if !ok {
		return "", false
	}
	return strings.TrimSpace(s), true
}

// LookupFunc adapts an ordinary function to FieldLookup.
// A nil LookupFunc reports every field as absent.
type LookupFunc func(name FieldName) (string, bool)

func (f LookupFunc) Lookup(name FieldName) (string, bool) {
	if f == nil {
		return "", false
	}
	return f(name)
}

// Outcome is the result of validating a single field.
// Message is empty if and only if Valid is true.
type Outcome struct {
	Field   FieldName `json:"field"`
	Valid   bool      `json:"valid"`
	Reason  Reason    `json:"reason,omitempty"`
	Message string    `json:"message,omitempty"`
}

// Err returns nil for a valid outcome and a *FieldError otherwise.
func (o Outcome) Err() error {
	if o.Valid {
		return nil
	}
	return &FieldError{Field: o.Field, Reason: o.Reason, Message: o.Message}
}

func passed(field FieldName) Outcome {
	return Outcome{Field: field, Valid: true}
}

func failed(field FieldName, reason Reason, message string) Outcome {
	return Outcome{Field: field, Reason: reason, Message: message}
}

// Rule represents a single validation rule.
type Rule struct {
	Check   func(value string, fields FieldLookup) bool
	Reason  Reason
	Message string
}

// Policy is the ordered list of rules for one field. The first failing rule
// decides the outcome.
type Policy []Rule

// Apply runs the policy against a non-empty value.
func (p Policy) Apply(field FieldName, value string, fields FieldLookup) Outcome {
	if fields == nil {
		fields = Values(nil)
	}
	for _, rule := range p {
		if !rule.Check(value, fields) {
			return failed(field, rule.Reason, rule.Message)
		}
	}
	return passed(field)
}
