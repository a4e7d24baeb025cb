package validator

// ChoiceRequiredMessage is the fixed message for an unchecked required choice.
const ChoiceRequiredMessage = "This field is required"

// Kind tells the form-level pass how to read a field.
type Kind string

const (
	// KindText fields carry a string value and go through the rule table.
	KindText Kind = "text"
	// KindCheckbox fields are present when checked.
	KindCheckbox Kind = "checkbox"
	// KindChoice covers radios and selects; present when something is selected.
	KindChoice Kind = "choice"
)

func (k Kind) isChoice() bool {
	return k == KindCheckbox || k == KindChoice
}

// CheckedChoice validates a boolean or choice field: invalid only when it is
// required and not checked.
func CheckedChoice(field FieldName, checked, required bool) Outcome {
	if required && !checked {
		return failed(field, ReasonRequired, ChoiceRequiredMessage)
	}
	return passed(field)
}
