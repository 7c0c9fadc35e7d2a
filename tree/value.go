// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package tree defines a tree of JSON values, and a parser that constructs
// value trees from JSON source text.
//
// A Value is one of six concrete types:
//
//	JSON type  | Go type      | Underlying
//	---------- | ------------ | ------------------
//	object     | tree.Object  | map[string]Value
//	array      | tree.Array   | []Value
//	string     | tree.String  | string
//	number     | tree.Number  | float64
//	true/false | tree.Bool    | bool
//	null       | tree.Null    | struct{}
//
// No other type implements Value. Use a type switch, or one of the As
// functions, to recover the concrete value.
package tree

import "github.com/creachadair/jval"

// A Type identifies the concrete type of a Value.
type Type byte

// Constants defining the valid Type values.
const (
	NullType Type = iota
	BoolType
	NumberType
	StringType
	ArrayType
	ObjectType
)

var typeStr = [...]string{
	NullType:   "null",
	BoolType:   "bool",
	NumberType: "number",
	StringType: "string",
	ArrayType:  "array",
	ObjectType: "object",
}

func (t Type) String() string {
	if int(t) >= len(typeStr) {
		return "invalid"
	}
	return typeStr[t]
}

// A Value is an arbitrary JSON value.
type Value interface {
	// Type reports the type of the value.
	Type() Type

	isValue()
}

// An Object is a collection of key-value members. Keys are unique; the order
// of members is not significant.
type Object map[string]Value

// Type satisfies the Value interface.
func (Object) Type() Type { return ObjectType }

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }

// An Array is an ordered sequence of values.
type Array []Value

// Type satisfies the Value interface.
func (Array) Type() Type { return ArrayType }

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

// A String is a string value. Escape sequences in the source text are not
// decoded.
type String string

// Type satisfies the Value interface.
func (String) Type() Type { return StringType }

// A Number is a floating-point value.
type Number float64

// Type satisfies the Value interface.
func (Number) Type() Type { return NumberType }

// A Bool is a Boolean constant, true or false.
type Bool bool

// Type satisfies the Value interface.
func (Bool) Type() Type { return BoolType }

// Null represents the null constant.
type Null struct{}

// Type satisfies the Value interface.
func (Null) Type() Type { return NullType }

func (Object) isValue() {}
func (Array) isValue()  {}
func (String) isValue() {}
func (Number) isValue() {}
func (Bool) isValue()   {}
func (Null) isValue()   {}

// scalar returns the Value for a scalar token.
// Precondition: tok is a String, Number, True, False, or Null.
func scalar(tok jval.Token) Value {
	switch tok.Kind {
	case jval.String:
		return String(tok.Text)
	case jval.Number:
		return Number(tok.Num)
	case jval.True:
		return Bool(true)
	case jval.False:
		return Bool(false)
	case jval.Null:
		return Null{}
	}
	panic("not a scalar token: " + tok.String())
}
