package httpx

import "encoding/json"

// Optional distinguishes the three states a JSON field can be in: absent,
// explicit null, and a concrete value. encoding/json only invokes
// UnmarshalJSON for keys present in the payload, so the zero Optional means
// "not supplied".
type Optional[T any] struct {
	present bool
	value   *T
}

// UnmarshalJSON marks the field as supplied and records either the value or
// an explicit null.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.present = true
	if string(data) == "null" {
		o.value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.value = &v
	return nil
}

// Present reports whether the field appeared in the payload at all.
func (o Optional[T]) Present() bool {
	return o.present
}

// IsNull reports whether the field was supplied as an explicit null.
func (o Optional[T]) IsNull() bool {
	return o.present && o.value == nil
}

// Get returns the carried value; ok is false when the field was absent or null.
func (o Optional[T]) Get() (T, bool) {
	if o.value == nil {
		var zero T
		return zero, false
	}
	return *o.value, true
}
