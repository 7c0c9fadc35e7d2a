// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree

import "fmt"

// TypeError is reported when a value does not have the expected type.
type TypeError struct {
	Want, Got Type
}

// Error satisfies the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("value is %s, not %s", e.Got, e.Want)
}

// As reports v as a value of concrete type T, or returns a *TypeError if v
// has a different type. A nil v is treated as Null.
func As[T Value](v Value) (T, error) {
	if v == nil {
		v = Null{}
	}
	t, ok := v.(T)
	if !ok {
		var zero T
		return zero, &TypeError{Want: zero.Type(), Got: v.Type()}
	}
	return t, nil
}

// AsObject returns the members of v, which must be an object.
func AsObject(v Value) (Object, error) { return As[Object](v) }

// AsArray returns the elements of v, which must be an array.
func AsArray(v Value) (Array, error) { return As[Array](v) }

// AsString returns the text of v, which must be a string.
func AsString(v Value) (string, error) {
	s, err := As[String](v)
	return string(s), err
}

// AsNumber returns the value of v, which must be a number.
func AsNumber(v Value) (float64, error) {
	n, err := As[Number](v)
	return float64(n), err
}

// AsBool returns the value of v, which must be a Boolean.
func AsBool(v Value) (bool, error) {
	b, err := As[Bool](v)
	return bool(b), err
}

// IsNull reports whether v is null.
func IsNull(v Value) bool {
	_, ok := v.(Null)
	return ok || v == nil
}
