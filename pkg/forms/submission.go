package forms

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formguard/pkg/sanitizer"
	"github.com/dmitrymomot/formguard/pkg/validator"
)

// Submission is raw form input as typed by the user.
type Submission struct {
	Form   string         `yaml:"form" json:"form"`
	Values map[string]any `yaml:"values" json:"values"`
}

type rawSubmission struct {
	Form   string               `yaml:"form"`
	Values map[string]yaml.Node `yaml:"values"`
}

// DecodeSubmission reads a YAML or JSON submission document. Scalar values
// keep their literal text, so an unquoted 011001 stays "011001". Only
// booleans and nulls are resolved.
func DecodeSubmission(data []byte) (Submission, error) {
	var raw rawSubmission
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Submission{}, errors.Join(ErrInvalidSubmission, err)
	}

	sub := Submission{Form: raw.Form, Values: make(map[string]any, len(raw.Values))}
	for name, node := range raw.Values {
		v, err := nodeValue(&node)
		if err != nil {
			return Submission{}, errors.Join(ErrInvalidSubmission, fmt.Errorf("value %q: %w", name, err))
		}
		sub.Values[name] = v
	}
	return sub, nil
}

func nodeValue(n *yaml.Node) (any, error) {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	if n.Kind != yaml.ScalarNode {
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}

	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, err
		}
		return b, nil
	default:
		return n.Value, nil
	}
}

// Bind turns raw values into validator fields in schema order, applying the
// input filters of fields marked normalize. Values without a declared field
// are ignored.
func (s *Schema) Bind(values map[string]any) []validator.Field {
	fields := make([]validator.Field, 0, len(s.Fields))
	for _, def := range s.Fields {
		raw := values[string(def.Name)]
		f := validator.Field{
			Name:     def.Name,
			Required: def.Required,
			Kind:     def.Kind,
		}

		switch def.Kind {
		case validator.KindCheckbox, validator.KindChoice:
			f.Checked = isChecked(raw)
		default:
			f.Value = textValue(raw)
			if def.Normalize {
				if filter := sanitizer.ForField(string(def.Name)); filter != nil {
					f.Value = filter(f.Value)
				}
			}
		}
		fields = append(fields, f)
	}
	return fields
}

func textValue(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return v.Format(time.DateOnly)
	default:
		return fmt.Sprint(v)
	}
}

// isChecked treats true, a truthy string such as "on" or "yes", or any other
// non-empty selection as checked.
func isChecked(raw any) bool {
	switch v := raw.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		v = strings.TrimSpace(strings.ToLower(v))
		switch v {
		case "", "off", "no":
			return false
		}
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		return true
	default:
		return true
	}
}
