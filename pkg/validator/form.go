package validator

import (
	"log/slog"
	"strings"
)

// Field is the adapter supplied metadata for one form field.
type Field struct {
	Name     FieldName
	Value    string
	Required bool
	// Kind defaults to KindText when empty.
	Kind Kind
	// Checked reports whether a checkbox is ticked or a choice is selected.
	Checked bool
}

// FormResult is the aggregate of a form-level pass.
type FormResult struct {
	Valid    bool       `json:"valid"`
	Errors   ErrorState `json:"errors"`
	Outcomes []Outcome  `json:"outcomes"`
}

// Err returns the ErrorState as an error, or nil when the form is valid.
func (r FormResult) Err() error {
	if r.Valid {
		return nil
	}
	return r.Errors
}

// ValidateForm validates every field in the order given and never stops at
// the first failure. Text fields go through ValidateField, choice fields
// through ValidateChoice. Cross-field rules see the values of this same list.
func (v *Validator) ValidateForm(fields []Field) FormResult {
	values := make(Values, len(fields))
	for _, f := range fields {
		if !f.Kind.isChoice() {
			values[f.Name] = strings.TrimSpace(f.Value)
		}
	}

	res := FormResult{Valid: true, Outcomes: make([]Outcome, 0, len(fields))}
	for _, f := range fields {
		var out Outcome
		if f.Kind.isChoice() {
			out = v.ValidateChoice(f.Name, f.Checked, f.Required)
		} else {
			out = v.ValidateField(f.Name, f.Value, f.Required, values)
		}
		res.Outcomes = append(res.Outcomes, out)
		res.Valid = res.Valid && out.Valid
	}
	res.Errors = v.Errors()

	v.log.Info("form validated",
		slog.Bool("valid", res.Valid),
		slog.Int("fields", len(fields)),
		slog.Int("failed", len(res.Errors)),
	)
	return res
}
