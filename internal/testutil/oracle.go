// Package testutil defines support code for unit tests.
package testutil

import (
	"encoding/json"

	"github.com/creachadair/jval/tree"
	"github.com/tailscale/hujson"
)

// Reference decodes text with an independent JSON implementation and returns
// the equivalent tree.Value, for comparison against the parser. The input is
// first standardized by hujson, so test inputs may carry comments and
// trailing commas to document themselves; the parser under test must be given
// Standard(text) instead.
func Reference(text string) (tree.Value, error) {
	std, err := hujson.Standardize([]byte(text))
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(std, &v); err != nil {
		return nil, err
	}
	return tree.ToValue(v), nil
}

// Standard returns text with comments and trailing commas removed, or panics
// if text is not valid JWCC.
func Standard(text string) string {
	std, err := hujson.Standardize([]byte(text))
	if err != nil {
		panic(err)
	}
	return string(std)
}
