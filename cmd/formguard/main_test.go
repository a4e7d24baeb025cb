package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formguard/pkg/logger"
)

func runCLI(t *testing.T, input string, args ...string) (int, map[string]any, string) {
	t.Helper()
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	code, err := run(context.Background(), args, strings.NewReader(input), stdout, stderr)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	return code, out, stderr.String()
}

func TestRun_ValidRegistration(t *testing.T) {
	input := `
form: registration
values:
  first_name: Asha
  last_name: Rao
  username: asha_rao
  email: asha@example.in
  password: "Str0ng!pass"
  confirm_password: "Str0ng!pass"
  date_of_birth: 1994-02-11
  terms: true
`
	code, out, logs := runCLI(t, input)

	assert.Equal(t, exitValid, code)
	assert.Equal(t, "registration", out["form"])
	assert.Equal(t, true, out["valid"])
	assert.Empty(t, out["errors"])

	strength, ok := out["strength"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 5, strength["score"])

	assert.Contains(t, logs, `"msg":"submission checked"`)
	assert.Contains(t, logs, `"run_id":`)
	assert.Contains(t, logs, `"env":"production"`)
	assert.Contains(t, logs, `"component":"cli"`)
	assert.NotContains(t, logs, "Str0ng!pass")
}

func TestRun_InvalidBooking(t *testing.T) {
	yesterday := time.Now().AddDate(0, 0, -1).Format(time.DateOnly)
	input := `{"values":{"first_name":"R","email":"ravi@","phone":"12345","date":"` + yesterday + `"}}`

	code, out, _ := runCLI(t, input, "-form", "booking", "-v")

	assert.Equal(t, exitInvalid, code)
	assert.Equal(t, false, out["valid"])

	errs, ok := out["errors"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Name must be at least 2 characters long", errs["first_name"])
	assert.Equal(t, "Last Name is required", errs["last_name"])
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "phone")
	assert.Equal(t, "Appointment date cannot be in the past", errs["date"])
	assert.Equal(t, "This field is required", errs["terms"])

	outcomes, ok := out["outcomes"].([]any)
	require.True(t, ok)
	assert.NotEmpty(t, outcomes)
	assert.Nil(t, out["strength"])
}

func TestRun_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "booking.yaml")
	today := time.Now().Format(time.DateOnly)
	doc := "form: booking\nvalues:\n  first_name: Ravi\n  last_name: Kumar\n  email: ravi@example.com\n" +
		"  phone: \"98765 43210\"\n  date: " + today + "\n  terms: on\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	code, out, _ := runCLI(t, "", "-in", path)
	assert.Equal(t, exitValid, code, "%v", out["errors"])
}

func TestRun_Failures(t *testing.T) {
	t.Run("unknown form", func(t *testing.T) {
		code, err := run(context.Background(), []string{"-form", "survey"}, strings.NewReader("values: {}"), &bytes.Buffer{}, &bytes.Buffer{})
		assert.Equal(t, exitFailure, code)
		assert.Error(t, err)
	})

	t.Run("malformed submission", func(t *testing.T) {
		code, err := run(context.Background(), nil, strings.NewReader("values: [1,"), &bytes.Buffer{}, &bytes.Buffer{})
		assert.Equal(t, exitFailure, code)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		code, err := run(context.Background(), []string{"-in", filepath.Join(t.TempDir(), "nope.yaml")}, nil, &bytes.Buffer{}, &bytes.Buffer{})
		assert.Equal(t, exitFailure, code)
		assert.Error(t, err)
	})

	t.Run("invalid rule config", func(t *testing.T) {
		t.Setenv("FORM_PASSWORD_MIN_SCORE", "9")
		code, err := run(context.Background(), []string{"-form", "booking"}, strings.NewReader("values: {}"), &bytes.Buffer{}, &bytes.Buffer{})
		assert.Equal(t, exitFailure, code)
		assert.Error(t, err)
	})

	t.Run("unknown log format", func(t *testing.T) {
		t.Setenv("LOG_FORMAT", "xml")
		var code int
		var err error
		require.NotPanics(t, func() {
			code, err = run(context.Background(), []string{"-form", "booking"}, strings.NewReader("values: {}"), &bytes.Buffer{}, &bytes.Buffer{})
		})
		assert.Equal(t, exitFailure, code)
		assert.True(t, errors.Is(err, logger.ErrInvalidFormat))
	})

	t.Run("log format is case-insensitive", func(t *testing.T) {
		t.Setenv("LOG_FORMAT", "JSON")
		code, err := run(context.Background(), []string{"-form", "booking"}, strings.NewReader("values: {}"), &bytes.Buffer{}, &bytes.Buffer{})
		assert.NoError(t, err)
		assert.Equal(t, exitInvalid, code)
	})

	t.Run("bad flag", func(t *testing.T) {
		code, err := run(context.Background(), []string{"-nope"}, nil, &bytes.Buffer{}, &bytes.Buffer{})
		assert.Equal(t, exitFailure, code)
		assert.Error(t, err)
	})
}
