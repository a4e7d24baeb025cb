package validator

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LabelFunc resolves the human readable label of a field, used in the
// "is required" message.
type LabelFunc func(name FieldName) string

// DefaultLabel replaces underscores with spaces and capitalizes each word:
// "date_of_birth" becomes "Date Of Birth".
func DefaultLabel(name FieldName) string {
	words := strings.ReplaceAll(string(name), "_", " ")
	return cases.Title(language.English).String(words)
}

// Labels is a fixed label table falling back to DefaultLabel.
type Labels map[FieldName]string

func (l Labels) Label(name FieldName) string {
	if label, ok := l[name]; ok && label != "" {
		return label
	}
	return DefaultLabel(name)
}
