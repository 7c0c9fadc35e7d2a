// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jval

import (
	"fmt"

	"github.com/creachadair/jval/internal/escape"
	"go4.org/mem"
)

// Kind is the type of a lexical token in the JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	BadToken Kind = iota // invalid token
	LBrace               // left brace "{"
	RBrace               // right brace "}"
	LSquare              // left square bracket "["
	RSquare              // right square bracket "]"
	Comma                // comma ","
	Colon                // colon ":"
	Number               // number: digits with optional fraction
	String               // quoted string
	True                 // constant: true
	False                // constant: false
	Null                 // constant: null
)

var kindStr = [...]string{
	BadToken: "invalid token",
	LBrace:   `"{"`,
	RBrace:   `"}"`,
	LSquare:  `"["`,
	RSquare:  `"]"`,
	Comma:    `","`,
	Colon:    `":"`,
	Number:   "number",
	String:   "string",
	True:     "true",
	False:    "false",
	Null:     "null",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[BadToken]
	}
	return kindStr[v]
}

// IsValueStart reports whether a token of kind k can begin a value.
func (k Kind) IsValueStart() bool {
	switch k {
	case LBrace, LSquare, Number, String, True, False, Null:
		return true
	}
	return false
}

// A Token is a single lexical token. Tokens are not modified once the scanner
// has produced them.
type Token struct {
	Kind Kind
	Pos  LineCol // where the token begins, or where the error was found

	// Text is the source text of the token. For a String it is the body
	// between the quotation marks, with escapes left intact. For a BadToken
	// it is the text consumed before the error was detected.
	Text string

	// Num is the value of a Number token.
	Num float64

	// Reason describes the lexical error for a BadToken.
	Reason string
}

func (t Token) String() string {
	switch t.Kind {
	case String:
		return "string " + escape.Snippet(mem.S(t.Text))
	case Number:
		return "number " + t.Text
	case BadToken:
		return fmt.Sprintf("invalid token at %s (%s)", t.Pos, t.Reason)
	default:
		return t.Kind.String()
	}
}
