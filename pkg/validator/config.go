package validator

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// Config holds the tunable limits of the rule table. The env tags let it be
// loaded with pkg/config; the defaults match DefaultConfig.
type Config struct {
	NameMinLength     int      `env:"FORM_NAME_MIN_LENGTH" envDefault:"2"`
	UsernameMinLength int      `env:"FORM_USERNAME_MIN_LENGTH" envDefault:"3"`
	UsernameMaxLength int      `env:"FORM_USERNAME_MAX_LENGTH" envDefault:"30"`
	PasswordMinScore  int      `env:"FORM_PASSWORD_MIN_SCORE" envDefault:"4"`
	MaxAge            int      `env:"FORM_MAX_AGE" envDefault:"120"`
	DateLayouts       []string `env:"FORM_DATE_LAYOUTS" envDefault:"2006-01-02,2006-01-02T15:04:05Z07:00" envSeparator:","`
	// Timezone is an IANA name. Empty means the zone of the clock.
	Timezone string `env:"FORM_TIMEZONE"`
}

func DefaultConfig() Config {
	return Config{
		NameMinLength:     2,
		UsernameMinLength: 3,
		UsernameMaxLength: 30,
		PasswordMinScore:  4,
		MaxAge:            120,
		DateLayouts:       slices.Clone(DefaultDateLayouts),
	}
}

func (c Config) validate() error {
	var errs []error
	if c.NameMinLength < 1 {
		errs = append(errs, fmt.Errorf("name min length must be positive, got %d", c.NameMinLength))
	}
	if c.UsernameMinLength < 1 || c.UsernameMaxLength < c.UsernameMinLength {
		errs = append(errs, fmt.Errorf("username length range [%d,%d] is empty", c.UsernameMinLength, c.UsernameMaxLength))
	}
	if c.PasswordMinScore < 0 || c.PasswordMinScore > 5 {
		errs = append(errs, fmt.Errorf("password min score must be within 0..5, got %d", c.PasswordMinScore))
	}
	if c.MaxAge < 0 {
		errs = append(errs, fmt.Errorf("max age must not be negative, got %d", c.MaxAge))
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
	}
	return nil
}

func (c Config) location() (*time.Location, error) {
	if c.Timezone == "" {
		return nil, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	return loc, nil
}
