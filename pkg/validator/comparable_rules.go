package validator

// EqualsField requires the value to equal the current value of other.
// When other is absent from the form the rule passes.
func EqualsField(other FieldName, message string) Rule {
	return Rule{
		Check: func(value string, fields FieldLookup) bool {
			want, ok := fields.Lookup(other)
			if !ok {
				return true
			}
			return value == want
		},
		Reason:  ReasonPasswordMismatch,
		Message: message,
	}
}
