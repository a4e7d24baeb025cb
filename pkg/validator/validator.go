package validator

import (
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"time"

	"github.com/dmitrymomot/formguard/pkg/logger"
)

// Validator owns the rule table and the ErrorState of one form.
// It is not safe for concurrent use; the form adapter drives it one call at a time.
type Validator struct {
	rules  map[FieldName]Policy
	errors ErrorState
	label  LabelFunc
	log    *slog.Logger
}

// Option configures a Validator.
type Option func(*options)

type options struct {
	cfg      Config
	now      func() time.Time
	label    LabelFunc
	log      *slog.Logger
	policies map[FieldName]Policy
}

// WithConfig replaces DefaultConfig.
func WithConfig(cfg Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithClock sets the source of "now" for the date rules. Nil is ignored.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLabeler sets the label resolver for "is required" messages. Nil is ignored.
func WithLabeler(fn LabelFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.label = fn
		}
	}
}

// WithLogger sets the logger. Failed fields are logged at debug level and
// form passes at info level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithPolicy registers or replaces the policy of a field.
// An empty policy leaves the field validated only for presence.
func WithPolicy(name FieldName, p Policy) Option {
	return func(o *options) {
		if o.policies == nil {
			o.policies = make(map[FieldName]Policy)
		}
		o.policies[name] = p
	}
}

// New builds a Validator with an empty ErrorState.
func New(opts ...Option) (*Validator, error) {
	o := &options{
		cfg:   DefaultConfig(),
		now:   time.Now,
		label: DefaultLabel,
		log:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(o)
	}

	if err := o.cfg.validate(); err != nil {
		return nil, err
	}
	loc, err := o.cfg.location()
	if err != nil {
		return nil, err
	}

	cal := Calendar{Layouts: o.cfg.DateLayouts, Location: loc, Now: o.now}
	rules := defaultPolicies(o.cfg, cal)
	maps.Copy(rules, o.policies)

	return &Validator{
		rules:  rules,
		errors: make(ErrorState),
		label:  o.label,
		log:    o.log,
	}, nil
}

// MustNew works like New but panics on an invalid configuration.
func MustNew(opts ...Option) *Validator {
	v, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create validator: %v", err))
	}
	return v
}

// Policy returns the rules registered for a field.
func (v *Validator) Policy(name FieldName) (Policy, bool) {
	p, ok := v.rules[name]
	return p, ok && len(p) > 0
}

// ValidateField checks presence first, then the field's policy when the
// value is non-empty. The ErrorState entry for name is replaced by the result.
func (v *Validator) ValidateField(name FieldName, value string, required bool, fields FieldLookup) Outcome {
	value = strings.TrimSpace(value)

	var out Outcome
	switch {
	case value == "" && required:
		out = failed(name, ReasonRequired, v.label(name)+" is required")
	case value == "":
		out = passed(name)
	default:
		out = v.rules[name].Apply(name, value, fields)
	}

	v.record(out)
	return out
}

// ValidateChoice validates a checkbox, radio or select field.
func (v *Validator) ValidateChoice(name FieldName, checked, required bool) Outcome {
	out := CheckedChoice(name, checked, required)
	v.record(out)
	return out
}

func (v *Validator) record(out Outcome) {
	v.errors.record(out)
	if !out.Valid {
		v.log.Debug("field validation failed",
			logger.Field(string(out.Field)),
			logger.Reason(string(out.Reason)),
		)
	}
}

// Errors returns a copy of the current ErrorState.
func (v *Validator) Errors() ErrorState {
	return v.errors.Clone()
}

// ClearField drops the entry of one field, typically when the user edits it.
func (v *Validator) ClearField(name FieldName) {
	delete(v.errors, name)
}

// Reset empties the ErrorState.
func (v *Validator) Reset() {
	clear(v.errors)
}
