// Package sanitizer provides the input filters applied to raw form input
// before it reaches the validator.
//
// The filters are pure string → string functions. Each one is idempotent, and
// because they target disjoint fields the order in which they are applied does
// not matter:
//
//   - NormalizePhone – digits only, at most 10
//   - NormalizeZip   – digits only, at most 6
//   - NormalizeName  – ASCII letters and whitespace only
//
// ForField maps a field name to its filter. Apply and Compose build small
// pipelines from any number of filters:
//
//	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.NormalizePhone)
//	phone := clean(" +91 98765-43210 ") // "9198765432"
//
// # Error handling
//
// None of the helpers returns an error; they always produce a string, possibly
// empty.
package sanitizer
