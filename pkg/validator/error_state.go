package validator

import (
	"fmt"
	"slices"
	"strings"
)

// ErrorState maps each field whose last validation failed to its message.
// Fields that passed or were never validated have no entry.
type ErrorState map[FieldName]string

func (s ErrorState) Error() string {
	if len(s) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(s))
	for _, field := range s.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", field, s[field]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (s ErrorState) Has(field FieldName) bool {
	_, ok := s[field]
	return ok
}

func (s ErrorState) Get(field FieldName) string {
	return s[field]
}

// Fields returns the failed field names in lexical order.
func (s ErrorState) Fields() []FieldName {
	fields := make([]FieldName, 0, len(s))
	for field := range s {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	return fields
}

func (s ErrorState) IsEmpty() bool {
	return len(s) == 0
}

func (s ErrorState) Clone() ErrorState {
	out := make(ErrorState, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// record applies delete-then-maybe-reinsert for the outcome's field.
func (s ErrorState) record(o Outcome) {
	delete(s, o.Field)
	if !o.Valid {
		s[o.Field] = o.Message
	}
}
