package lockstep

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Optional holds a value that may be absent. The zero value is absent.
//
// Fields of type Optional should carry the `omitzero` json option so that an
// absent value is left out of the encoded object instead of being sent as null.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr returns Some(*p), or None when p is nil.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}

	return Some(*p)
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsPresent reports whether a value is held.
func (o Optional[T]) IsPresent() bool {
	return o.set
}

// IsZero reports whether the value is absent. encoding/json uses it for omitzero.
func (o Optional[T]) IsZero() bool {
	return !o.set
}

// OrElse returns the value, or fallback when absent.
func (o Optional[T]) OrElse(fallback T) T {
	if !o.set {
		return fallback
	}

	return o.value
}

// Ptr returns a pointer to a copy of the value, or nil when absent.
func (o Optional[T]) Ptr() *T {
	if !o.set {
		return nil
	}

	v := o.value

	return &v
}

// String implements fmt.Stringer.
func (o Optional[T]) String() string {
	if !o.set {
		return ""
	}

	return fmt.Sprint(o.value)
}

// MarshalYAML implements yaml.Marshaler.
func (o Optional[T]) MarshalYAML() (interface{}, error) {
	if !o.set {
		return nil, nil
	}

	return o.value, nil
}

// MarshalJSON encodes the value, or null when absent.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}

	return json.Marshal(o.value)
}

// UnmarshalJSON decodes the value. A JSON null leaves the Optional absent.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = Optional[T]{}

		return nil
	}

	var v T

	err := json.Unmarshal(data, &v)
	if err != nil {
		return err
	}

	*o = Some(v)

	return nil
}
