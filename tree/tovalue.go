// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree

import "fmt"

// ToValue converts a Go value to a Value. It panics if v cannot be converted.
//
// A Value is returned unchanged. Strings, Booleans, and all numeric types are
// converted to the corresponding scalar, and nil to Null. The containers
// []any and map[string]any (as produced by encoding/json) are converted
// recursively, as are []Value and map[string]Value.
func ToValue(v any) Value {
	switch t := v.(type) {
	case Value:
		return t
	case nil:
		return Null{}
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case float64:
		return Number(t)
	case float32:
		return Number(t)
	case int:
		return Number(t)
	case int8:
		return Number(t)
	case int16:
		return Number(t)
	case int32:
		return Number(t)
	case int64:
		return Number(t)
	case uint:
		return Number(t)
	case uint8:
		return Number(t)
	case uint16:
		return Number(t)
	case uint32:
		return Number(t)
	case uint64:
		return Number(t)
	case []any:
		return arrayOf(t)
	case []Value:
		return Array(t)
	case map[string]any:
		return objectOf(t)
	case map[string]Value:
		return Object(t)
	default:
		panic(fmt.Sprintf("cannot convert %T to a value", v))
	}
}

func arrayOf(vs []any) Array {
	out := make(Array, len(vs))
	for i, v := range vs {
		out[i] = ToValue(v)
	}
	return out
}

func objectOf(m map[string]any) Object {
	out := make(Object, len(m))
	for k, v := range m {
		out[k] = ToValue(v)
	}
	return out
}
