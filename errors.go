// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jval

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedEOF is reported when the input ends inside a value.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrTooDeep is reported when objects and arrays are nested more deeply
	// than the parser permits.
	ErrTooDeep = errors.New("maximum nesting depth exceeded")
)

// SyntaxError is the concrete type of errors reported for token sequences
// that do not match the grammar.
type SyntaxError struct {
	Location LineCol
	Message  string

	err error
}

// NewSyntaxError constructs a syntax error at loc. If err != nil, the result
// wraps err.
func NewSyntaxError(loc LineCol, err error, msg string, args ...any) *SyntaxError {
	return &SyntaxError{Location: loc, Message: fmt.Sprintf(msg, args...), err: err}
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }

// LexError is the concrete type of errors reported for invalid tokens.
type LexError struct {
	Pos    LineCol // where the error was detected
	Text   string  // the text consumed before the error
	Reason string
}

// NewLexError constructs a lexical error from a BadToken.
func NewLexError(tok Token) *LexError {
	return &LexError{Pos: tok.Pos, Text: tok.Text, Reason: tok.Reason}
}

// Error satisfies the error interface.
func (e *LexError) Error() string {
	return fmt.Sprintf("at %s: invalid token: %s", e.Pos, e.Reason)
}
