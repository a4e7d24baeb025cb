package forms_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formguard/pkg/forms"
	"github.com/dmitrymomot/formguard/pkg/validator"
)

var fixedNow = time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func TestLookup(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"booking", "registration"}, forms.Names())

	booking, err := forms.Lookup("booking")
	require.NoError(t, err)
	assert.Equal(t, "Appointment booking", booking.Title)
	assert.Equal(t, validator.FirstName, booking.Fields[0].Name)

	reg, err := forms.Lookup("registration")
	require.NoError(t, err)
	var names []validator.FieldName
	for _, f := range reg.Fields {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, validator.ConfirmPassword)
	assert.Contains(t, names, validator.DateOfBirth)

	_, err = forms.Lookup("survey")
	assert.True(t, errors.Is(err, forms.ErrUnknownForm))
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("defaults kind to text", func(t *testing.T) {
		s, err := forms.Parse([]byte("name: x\nfields:\n  - name: email\n    required: true\n"))
		require.NoError(t, err)
		assert.Equal(t, validator.KindText, s.Fields[0].Kind)
		assert.True(t, s.Fields[0].Required)
	})

	t.Run("accepts json", func(t *testing.T) {
		s, err := forms.Parse([]byte(`{"name":"x","fields":[{"name":"terms","kind":"checkbox"}]}`))
		require.NoError(t, err)
		assert.Equal(t, validator.KindCheckbox, s.Fields[0].Kind)
	})

	invalid := map[string]string{
		"malformed":     "name: [",
		"missing name":  "fields:\n  - name: email\n",
		"no fields":     "name: x\n",
		"unnamed field": "name: x\nfields:\n  - label: Email\n",
		"duplicate":     "name: x\nfields:\n  - name: email\n  - name: email\n",
		"unknown kind":  "name: x\nfields:\n  - name: email\n    kind: slider\n",
	}
	for name, doc := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := forms.Parse([]byte(doc))
			assert.True(t, errors.Is(err, forms.ErrInvalidSchema), "got %v", err)
		})
	}
}

func TestSchema_Bind(t *testing.T) {
	t.Parallel()

	booking, err := forms.Lookup("booking")
	require.NoError(t, err)

	fields := booking.Bind(map[string]any{
		"first_name": "Jo3hn!",
		"phone":      "+91 98765-43210",
		"zipcode":    110001,
		"date":       "2026-10-20",
		"terms":      "on",
		"unknown":    "ignored",
	})
	require.Len(t, fields, len(booking.Fields))

	byName := map[validator.FieldName]validator.Field{}
	for _, f := range fields {
		byName[f.Name] = f
	}
	assert.Equal(t, "John", byName[validator.FirstName].Value)
	assert.Equal(t, "9198765432", byName[validator.Phone].Value)
	assert.Equal(t, "110001", byName[validator.Zipcode].Value)
	assert.Equal(t, "", byName[validator.LastName].Value)
	assert.True(t, byName["terms"].Checked)
	assert.Equal(t, validator.KindCheckbox, byName["terms"].Kind)
	_, ok := byName["unknown"]
	assert.False(t, ok)
}

func TestSchema_BindCheckbox(t *testing.T) {
	t.Parallel()

	s, err := forms.Parse([]byte("name: x\nfields:\n  - name: terms\n    kind: checkbox\n"))
	require.NoError(t, err)

	values := map[any]bool{
		nil:     false,
		true:    true,
		false:   false,
		"":      false,
		"on":    true,
		"off":   false,
		"yes":   true,
		"no":    false,
		"true":  true,
		"FALSE": false,
		"1":     true,
		"0":     false,
		"gold":  true,
		1:       true,
	}
	for raw, want := range values {
		fields := s.Bind(map[string]any{"terms": raw})
		assert.Equal(t, want, fields[0].Checked, "%v", raw)
	}
}

func TestDecodeSubmission(t *testing.T) {
	t.Parallel()

	t.Run("yaml", func(t *testing.T) {
		sub, err := forms.DecodeSubmission([]byte("form: booking\nvalues:\n  phone: 9876543210\n  date: 2026-10-20\n"))
		require.NoError(t, err)
		assert.Equal(t, "booking", sub.Form)

		booking, err := forms.Lookup("booking")
		require.NoError(t, err)
		for _, f := range booking.Bind(sub.Values) {
			switch f.Name {
			case validator.Phone:
				assert.Equal(t, "9876543210", f.Value)
			case validator.AppointmentDate:
				assert.Equal(t, "2026-10-20", f.Value)
			}
		}
	})

	t.Run("json", func(t *testing.T) {
		sub, err := forms.DecodeSubmission([]byte(`{"form":"registration","values":{"email":"a@b.co"}}`))
		require.NoError(t, err)
		assert.Equal(t, "registration", sub.Form)
		assert.Equal(t, "a@b.co", sub.Values["email"])
	})

	t.Run("no values", func(t *testing.T) {
		sub, err := forms.DecodeSubmission([]byte("form: booking\n"))
		require.NoError(t, err)
		assert.NotNil(t, sub.Values)
	})

	t.Run("scalars keep their literal text", func(t *testing.T) {
		doc := "form: registration\n" +
			"values:\n" +
			"  password: 0x1Fa2B3c4\n" +
			"  confirm_password: \"0x1Fa2B3c4\"\n" +
			"  zipcode: 011001\n" +
			"  phone: 98765432101234567890123\n" +
			"  username: 1e3\n" +
			"  terms: true\n" +
			"  newsletter: ~\n"
		sub, err := forms.DecodeSubmission([]byte(doc))
		require.NoError(t, err)

		assert.Equal(t, "0x1Fa2B3c4", sub.Values["password"])
		assert.Equal(t, "0x1Fa2B3c4", sub.Values["confirm_password"])
		assert.Equal(t, "011001", sub.Values["zipcode"])
		assert.Equal(t, "98765432101234567890123", sub.Values["phone"])
		assert.Equal(t, "1e3", sub.Values["username"])
		assert.Equal(t, true, sub.Values["terms"])
		assert.Nil(t, sub.Values["newsletter"])

		reg, err := forms.Lookup("registration")
		require.NoError(t, err)
		got := map[validator.FieldName]validator.Field{}
		for _, f := range reg.Bind(sub.Values) {
			got[f.Name] = f
		}
		assert.Equal(t, "0x1Fa2B3c4", got[validator.Password].Value)
		assert.Equal(t, "011001", got[validator.Zipcode].Value)
		assert.Equal(t, "9876543210", got[validator.Phone].Value)
		assert.True(t, got["terms"].Checked)

		v, err := reg.Validator(validator.WithClock(clock))
		require.NoError(t, err)
		res := v.ValidateForm(reg.Bind(sub.Values))
		assert.False(t, res.Errors.Has(validator.ConfirmPassword))
		assert.Equal(t, validator.MsgZipcode, res.Errors.Get(validator.Zipcode))
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := forms.DecodeSubmission([]byte("values: [1, 2"))
		assert.True(t, errors.Is(err, forms.ErrInvalidSubmission))
	})
}

func TestRegistration_EndToEnd(t *testing.T) {
	t.Parallel()

	reg, err := forms.Lookup("registration")
	require.NoError(t, err)
	v, err := reg.Validator(validator.WithClock(clock))
	require.NoError(t, err)

	t.Run("valid submission", func(t *testing.T) {
		res := v.ValidateForm(reg.Bind(map[string]any{
			"first_name":       "Asha",
			"last_name":        "Rao",
			"username":         "asha_rao",
			"email":            "asha@example.in",
			"phone":            "(987) 654-3210",
			"password":         "Str0ng!pass",
			"confirm_password": "Str0ng!pass",
			"date_of_birth":    "1994-02-11",
			"zipcode":          "560 034",
			"terms":            true,
		}))
		assert.True(t, res.Valid, "%v", res.Errors)
	})

	t.Run("schema labels in required messages", func(t *testing.T) {
		v.Reset()
		res := v.ValidateForm(reg.Bind(map[string]any{}))
		assert.False(t, res.Valid)
		assert.Equal(t, "Date of Birth is required", res.Errors.Get(validator.DateOfBirth))
		assert.Equal(t, "Confirm Password is required", res.Errors.Get(validator.ConfirmPassword))
		assert.Equal(t, validator.ChoiceRequiredMessage, res.Errors.Get("terms"))
		assert.False(t, res.Errors.Has(validator.Phone), "phone is optional")
		assert.False(t, res.Errors.Has(validator.Zipcode), "zipcode is optional")
	})
}

func TestBooking_EndToEnd(t *testing.T) {
	t.Parallel()

	booking, err := forms.Lookup("booking")
	require.NoError(t, err)
	v, err := booking.Validator(validator.WithClock(clock))
	require.NoError(t, err)

	values := map[string]any{
		"first_name": "Ravi",
		"last_name":  "Kumar",
		"email":      "ravi@example.com",
		"phone":      "9876543210",
		"date":       "2026-10-19",
		"terms":      "on",
	}
	assert.True(t, v.ValidateForm(booking.Bind(values)).Valid)

	values["date"] = "2026-10-18"
	values["zipcode"] = "012345"
	res := v.ValidateForm(booking.Bind(values))
	assert.False(t, res.Valid)
	assert.Equal(t, validator.MsgPastAppointment, res.Errors.Get(validator.AppointmentDate))
	assert.Equal(t, validator.MsgZipcode, res.Errors.Get(validator.Zipcode))
}
