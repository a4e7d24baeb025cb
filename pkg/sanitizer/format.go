package sanitizer

const (
	phoneMaxDigits   = 10
	zipcodeMaxDigits = 6
)

// NormalizePhone strips everything but digits and keeps at most 10 of them,
// matching what the phone input accepts while the user types.
func NormalizePhone(phone string) string {
	return MaxLength(KeepDigits(phone), phoneMaxDigits)
}

// NormalizeZip strips everything but digits and keeps at most 6 of them.
func NormalizeZip(zip string) string {
	return MaxLength(KeepDigits(zip), zipcodeMaxDigits)
}

// NormalizeName drops every character that is neither an ASCII letter nor whitespace.
// Whitespace is kept as typed so the caret does not jump while editing.
func NormalizeName(name string) string {
	return KeepNameChars(name)
}

var fieldFilters = map[string]Filter{
	"phone":      NormalizePhone,
	"zipcode":    NormalizeZip,
	"first_name": NormalizeName,
	"last_name":  NormalizeName,
}

// ForField returns the input filter for a field name, or nil when the field
// has none.
func ForField(name string) Filter {
	return fieldFilters[name]
}
