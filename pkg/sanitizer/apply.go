package sanitizer

// Apply runs value through transforms from left to right. Nil transforms are skipped.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, transform := range transforms {
		if transform != nil {
			value = transform(value)
		}
	}
	return value
}

// Compose stores a transform chain for reuse, e.g. as a package level cleaner.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}
