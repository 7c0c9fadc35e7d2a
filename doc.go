// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jval implements the lexical layer of a small JSON parser.
//
// # Scanning
//
// The Scanner type implements a lexical scanner over a complete input
// string. Construct a scanner and call its Next method to iterate over the
// tokens of the input:
//
//	s := jval.NewScanner(input)
//	for s.Next() {
//	   log.Printf("Next token: %v", s.Token())
//	}
//
// Next reports false when the input has been fully consumed. Lexical errors
// do not stop the scanner: a malformed construct is reported as a token of
// kind BadToken carrying the line and column where it was detected, and
// scanning resumes after it.
//
// To materialize the whole token sequence at once, call Tokenize:
//
//	toks := jval.Tokenize(input)
//
// # Grammar
//
// The scanner recognizes a restricted JSON vocabulary:
//
//	Kind          | Text
//	------------- | ----------------------------------------------
//	LBrace        | {
//	RBrace        | }
//	LSquare       | [
//	RSquare       | ]
//	Comma         | ,
//	Colon         | :
//	String        | "..." (body is not unescaped)
//	Number        | digits with at most one decimal point
//	True, False   | true, false
//	Null          | null
//	BadToken      | anything else
//
// Whitespace is any Unicode space or separator character, plus the
// zero-width formatting characters U+180E, U+200B-U+200D, U+2060 and U+FEFF.
//
// The tree package builds value trees from token sequences.
package jval
