// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jval/tree"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

var samples = []tree.Value{
	tree.Object{"a": tree.Number(1)},
	tree.Array{tree.Bool(true)},
	tree.String("s"),
	tree.Number(2.5),
	tree.Bool(false),
	tree.Null{},
}

// accessors maps each type to a function extracting that type.
var accessors = map[tree.Type]func(tree.Value) error{
	tree.ObjectType: func(v tree.Value) error { _, err := tree.AsObject(v); return err },
	tree.ArrayType:  func(v tree.Value) error { _, err := tree.AsArray(v); return err },
	tree.StringType: func(v tree.Value) error { _, err := tree.AsString(v); return err },
	tree.NumberType: func(v tree.Value) error { _, err := tree.AsNumber(v); return err },
	tree.BoolType:   func(v tree.Value) error { _, err := tree.AsBool(v); return err },
	tree.NullType: func(v tree.Value) error {
		if !tree.IsNull(v) {
			return &tree.TypeError{Want: tree.NullType, Got: v.Type()}
		}
		return nil
	},
}

func TestAccessors(t *testing.T) {
	for _, v := range samples {
		for typ, get := range accessors {
			err := get(v)
			if typ == v.Type() {
				if err != nil {
					t.Errorf("%s from %s: unexpected error: %v", typ, v.Type(), err)
				}
				continue
			}
			var terr *tree.TypeError
			if !errors.As(err, &terr) {
				t.Errorf("%s from %s: got %v, want *TypeError", typ, v.Type(), err)
			} else if terr.Want != typ || terr.Got != v.Type() {
				t.Errorf("%s from %s: got error %v", typ, v.Type(), terr)
			}
		}
	}
}

func TestAccessorValues(t *testing.T) {
	v, err := tree.Parse(`{"s":"text","n":3.5,"b":true,"a":[null],"o":{}}`)
	if err != nil {
		t.Fatalf("Parse: unexpected error: %v", err)
	}
	obj, err := tree.AsObject(v)
	if err != nil {
		t.Fatalf("AsObject: %v", err)
	}
	if s, err := tree.AsString(obj["s"]); err != nil || s != "text" {
		t.Errorf("AsString: got %q, %v; want text", s, err)
	}
	if n, err := tree.AsNumber(obj["n"]); err != nil || n != 3.5 {
		t.Errorf("AsNumber: got %v, %v; want 3.5", n, err)
	}
	if b, err := tree.AsBool(obj["b"]); err != nil || !b {
		t.Errorf("AsBool: got %v, %v; want true", b, err)
	}
	if a, err := tree.AsArray(obj["a"]); err != nil || a.Len() != 1 || !tree.IsNull(a[0]) {
		t.Errorf("AsArray: got %v, %v; want [null]", a, err)
	}
	if o, err := tree.As[tree.Object](obj["o"]); err != nil || o.Len() != 0 {
		t.Errorf("As[Object]: got %v, %v; want {}", o, err)
	}

	// A missing key reads as null.
	if !tree.IsNull(obj["nonesuch"]) {
		t.Error("IsNull(missing): got false, want true")
	}
	if _, err := tree.AsString(obj["nonesuch"]); err == nil {
		t.Error("AsString(missing): got nil, want error")
	}
}

func TestTypeString(t *testing.T) {
	var got []string
	for _, v := range samples {
		got = append(got, v.Type().String())
	}
	want := []string{"object", "array", "string", "number", "bool", "null"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Type names (-want, +got):\n%s", diff)
	}
	if got := tree.Type(100).String(); got != "invalid" {
		t.Errorf("Invalid type: got %q, want invalid", got)
	}
	terr := &tree.TypeError{Want: tree.StringType, Got: tree.NumberType}
	if got, want := terr.Error(), "value is number, not string"; got != want {
		t.Errorf("TypeError: got %q, want %q", got, want)
	}
}

func TestToValue(t *testing.T) {
	tests := []struct {
		input any
		want  tree.Value
	}{
		{nil, tree.Null{}},
		{true, tree.Bool(true)},
		{"ok", tree.String("ok")},
		{12, tree.Number(12)},
		{uint8(7), tree.Number(7)},
		{float32(0.5), tree.Number(0.5)},
		{tree.String("as is"), tree.String("as is")},
		{[]any{1.0, "two", nil}, tree.Array{tree.Number(1), tree.String("two"), tree.Null{}}},
		{[]tree.Value{tree.Bool(false)}, tree.Array{tree.Bool(false)}},
		{map[string]any{
			"x": []any{},
			"y": map[string]any{"z": false},
		}, tree.Object{
			"x": tree.Array{},
			"y": tree.Object{"z": tree.Bool(false)},
		}},
		{map[string]tree.Value{"k": tree.Null{}}, tree.Object{"k": tree.Null{}}},
	}
	for _, test := range tests {
		got := tree.ToValue(test.input)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("ToValue(%#v): (-want, +got)\n%s", test.input, diff)
		}
	}

	t.Run("Unsupported", func(t *testing.T) {
		mtest.MustPanic(t, func() { tree.ToValue([]bool{true}) })
		mtest.MustPanic(t, func() { tree.ToValue(func() {}) })
		mtest.MustPanic(t, func() { tree.ToValue(make(chan struct{})) })
		mtest.MustPanic(t, func() { tree.ToValue(map[int]any{}) })
	})
}
