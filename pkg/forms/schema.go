package forms

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formguard/pkg/validator"
)

//go:embed schemas/*.yaml
var schemaFS embed.FS

// FieldSpec describes one field of a form.
type FieldSpec struct {
	Name     validator.FieldName `yaml:"name"`
	Label    string              `yaml:"label"`
	Kind     validator.Kind      `yaml:"kind"`
	Required bool                `yaml:"required"`
	// Normalize runs the field's input filter from pkg/sanitizer before validation.
	Normalize bool `yaml:"normalize"`
}

// Schema is a named, ordered list of fields.
type Schema struct {
	Name   string      `yaml:"name"`
	Title  string      `yaml:"title"`
	Fields []FieldSpec `yaml:"fields"`
}

// Parse decodes and checks a YAML (or JSON) schema document.
func Parse(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Join(ErrInvalidSchema, err)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrInvalidSchema)
	}
	if len(s.Fields) == 0 {
		return nil, fmt.Errorf("%w: form %q has no fields", ErrInvalidSchema, s.Name)
	}

	seen := make(map[validator.FieldName]bool, len(s.Fields))
	for i := range s.Fields {
		f := &s.Fields[i]
		if f.Name == "" {
			return nil, fmt.Errorf("%w: form %q field #%d has no name", ErrInvalidSchema, s.Name, i)
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("%w: form %q declares %q twice", ErrInvalidSchema, s.Name, f.Name)
		}
		seen[f.Name] = true

		switch f.Kind {
		case "":
			f.Kind = validator.KindText
		case validator.KindText, validator.KindCheckbox, validator.KindChoice:
		default:
			return nil, fmt.Errorf("%w: field %q has unknown kind %q", ErrInvalidSchema, f.Name, f.Kind)
		}
	}

	return &s, nil
}

// Labels returns the label table declared by the schema.
func (s *Schema) Labels() validator.Labels {
	labels := make(validator.Labels, len(s.Fields))
	for _, f := range s.Fields {
		if f.Label != "" {
			labels[f.Name] = f.Label
		}
	}
	return labels
}

// Validator builds a validator that uses the schema's labels.
func (s *Schema) Validator(opts ...validator.Option) (*validator.Validator, error) {
	opts = append(opts, validator.WithLabeler(s.Labels().Label))
	return validator.New(opts...)
}

var loadBuiltin = sync.OnceValues(func() (map[string]*Schema, error) {
	files, err := fs.Glob(schemaFS, "schemas/*.yaml")
	if err != nil {
		return nil, err
	}

	out := make(map[string]*Schema, len(files))
	for _, name := range files {
		data, err := schemaFS.ReadFile(name)
		if err != nil {
			return nil, err
		}
		s, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path.Base(name), err)
		}
		out[s.Name] = s
	}
	return out, nil
})

// Lookup returns a built-in schema by name ("booking" or "registration").
func Lookup(name string) (*Schema, error) {
	all, err := loadBuiltin()
	if err != nil {
		return nil, err
	}
	s, ok := all[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownForm, name)
	}
	return s, nil
}

// Names lists the built-in schema names in lexical order.
func Names() []string {
	all, err := loadBuiltin()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
