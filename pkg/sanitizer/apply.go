package sanitizer

// Filter is a pure string transform applied to raw input before validation.
type Filter func(string) string

// Apply runs value through the transforms in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value

	for _, transform := range transforms {
		result = transform(result)
	}

	return result
}

// Compose creates a reusable pipeline from the transforms.
// Preferred over repeated Apply calls when the same chain is used for every keystroke.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}
