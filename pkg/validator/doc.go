// Package validator implements the field rule engine behind the booking and
// registration forms: a table mapping field names to validation policies, the
// per-form error state, and the password strength scorer.
//
// A Rule is a small struct holding a pure Check function together with the
// Reason and user facing Message reported when the check fails. Rules are
// grouped into a Policy per field; the first failing rule wins. Names without
// a policy are only checked for presence.
//
// # Architecture
//
// Each source file groups a family of rules (`string_rules.go`,
// `format_rules.go`, `password_rules.go`, `date_rules.go`, ...). The rule
// table in `table.go` wires them to the known field names.
//
// Core building blocks:
//   - Validator   – owns the rule table and the ErrorState of one form
//   - Outcome     – result of one field validation
//   - ErrorState  – field → message map of the fields whose last check failed
//   - FieldLookup – read access to sibling values for cross-field rules
//
// # Usage
//
//	v := validator.MustNew(validator.WithLogger(log))
//
//	out := v.ValidateField(validator.Phone, "9876543210", true, nil)
//	// out.Valid == true
//
//	res := v.ValidateForm([]validator.Field{
//	    {Name: validator.Password, Value: pw, Required: true},
//	    {Name: validator.ConfirmPassword, Value: confirm, Required: true},
//	    {Name: "terms", Kind: validator.KindCheckbox, Checked: false, Required: true},
//	})
//	if err := res.Err(); err != nil {
//	    // res.Errors lists every failed field, not just the first
//	}
//
// # Error Handling
//
// Validation failures are data, never panics. Outcome.Err returns a
// *FieldError that unwraps to a sentinel such as ErrWeakPassword, and
// ErrorState implements error for callers that want to bubble the whole set.
// Unparseable dates are reported with ReasonInvalidDate.
//
// The Validator is not goroutine-safe. ScorePassword and the rule
// constructors are stateless and may be shared freely.
package validator
