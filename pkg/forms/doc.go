// Package forms declares the booking and registration forms as embedded YAML
// schemas and binds raw submissions to validator fields.
//
//	schema, err := forms.Lookup("registration")
//	v, err := schema.Validator(validator.WithLogger(log))
//	res := v.ValidateForm(schema.Bind(sub.Values))
//
// Fields marked `normalize: true` pass through the matching pkg/sanitizer
// filter before validation, exactly like the interactive input filters do in
// the browser.
package forms
