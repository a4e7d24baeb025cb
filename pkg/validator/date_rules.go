package validator

import "time"

// DefaultDateLayouts are the formats a calendar date may be typed in:
// the HTML date input format first, then a full RFC 3339 timestamp.
var DefaultDateLayouts = []string{time.DateOnly, time.RFC3339}

// Calendar parses user-entered dates and builds the temporal rules.
// Dates without a zone are read in Location, or in the zone of Now when
// Location is nil.
type Calendar struct {
	Layouts  []string
	Location *time.Location
	Now      func() time.Time
}

func (c Calendar) now() time.Time {
	now := time.Now()
	if c.Now != nil {
		now = c.Now()
	}
	if c.Location != nil {
		now = now.In(c.Location)
	}
	return now
}

// Parse reports whether value is a calendar date in one of the layouts.
func (c Calendar) Parse(value string) (time.Time, bool) {
	layouts := c.Layouts
	if len(layouts) == 0 {
		layouts = DefaultDateLayouts
	}

	loc := c.now().Location()
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ValidDate fails when the value is not a parseable calendar date.
func (c Calendar) ValidDate(message string) Rule {
	return Rule{
		Check: func(value string, _ FieldLookup) bool {
			_, ok := c.Parse(value)
			return ok
		},
		Reason:  ReasonInvalidDate,
		Message: message,
	}
}

// NotInFuture fails when the date is after the current instant.
// Unparseable values pass; pair it with ValidDate.
func (c Calendar) NotInFuture(message string) Rule {
	return Rule{
		Check: func(value string, _ FieldLookup) bool {
			t, ok := c.Parse(value)
			if !ok {
				return true
			}
			return !t.After(c.now())
		},
		Reason:  ReasonFutureDate,
		Message: message,
	}
}

// MaxAge fails when the current year minus the birth year exceeds years.
// Month and day are deliberately ignored.
func (c Calendar) MaxAge(years int, message string) Rule {
	return Rule{
		Check: func(value string, _ FieldLookup) bool {
			birth, ok := c.Parse(value)
			if !ok {
				return true
			}
			return c.now().Year()-birth.Year() <= years
		},
		Reason:  ReasonImplausibleAge,
		Message: message,
	}
}

// NotBeforeToday fails when the date is earlier than today at midnight.
// Today itself passes.
func (c Calendar) NotBeforeToday(message string) Rule {
	return Rule{
		Check: func(value string, _ FieldLookup) bool {
			t, ok := c.Parse(value)
			if !ok {
				return true
			}
			now := c.now()
			midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
			return !t.Before(midnight)
		},
		Reason:  ReasonPastAppointmentDate,
		Message: message,
	}
}
