package models

// Field is a three-state optional value for partial updates: a field is
// either unchanged (zero value), set to a concrete value, or explicitly
// cleared. The distinction between "clear" and "omit" is load-bearing for
// ApplyPatch, so callers must use Set or Clear rather than building Field
// values by hand.
type Field[T any] struct {
	present bool
	clear   bool
	value   T
}

// Set returns a Field carrying a new value for the target.
func Set[T any](v T) Field[T] {
	return Field[T]{present: true, value: v}
}

// Clear returns a Field that removes the target's current value.
func Clear[T any]() Field[T] {
	return Field[T]{present: true, clear: true}
}

// Present reports whether the field was supplied at all (set or cleared).
func (f Field[T]) Present() bool {
	return f.present
}

// IsClear reports whether the field explicitly clears the target.
func (f Field[T]) IsClear() bool {
	return f.present && f.clear
}

// Get returns the carried value; ok is false when the field is unchanged
// or cleared.
func (f Field[T]) Get() (T, bool) {
	if !f.present || f.clear {
		var zero T
		return zero, false
	}
	return f.value, true
}
