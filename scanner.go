// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jval

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/creachadair/jval/internal/escape"
	"go4.org/mem"
)

// A Scanner reads lexical tokens from an input string.  Each call to Next
// advances the scanner to the next token.
type Scanner struct {
	src *source
	tok Token

	// Position of the most recently read rune, and of the one before it
	// (restored when a rune is pushed back). A newline belongs to the end of
	// its line; nl records that the next rune begins a new one.
	cur, prev LineCol
	nl, pnl   bool
}

// NewScanner constructs a new lexical scanner that consumes text.
func NewScanner(text string) *Scanner {
	return &Scanner{src: newSource(text), cur: LineCol{Line: 1}}
}

// Tokenize scans all of text and returns the resulting tokens in the order
// they were recognized. Lexical errors appear in the sequence as BadToken
// values; they do not stop the scan.
func Tokenize(text string) []Token {
	toks, _ := ScanAll(text)
	return toks
}

// ScanAll scans all of text as Tokenize does, and additionally reports the
// location just past the end of the input.
func ScanAll(text string) ([]Token, LineCol) {
	var toks []Token
	s := NewScanner(text)
	for s.Next() {
		toks = append(toks, s.Token())
	}
	return toks, s.Location()
}

// Next advances s to the next token of the input, and reports whether a
// token is available. At the end of the input, Next returns false.
func (s *Scanner) Next() bool {
	for {
		ch, ok := s.rune()
		if !ok {
			s.tok = Token{}
			return false
		}

		// Discard whitespace.
		if isSpace(ch) {
			continue
		}
		start := s.cur

		// Handle punctuation.
		if k, ok := selfDelim(ch); ok {
			s.tok = Token{Kind: k, Pos: start, Text: string(ch)}
			return true
		}

		switch {
		case ch == '"':
			s.scanString(start)
		case isDigit(ch):
			s.scanNumber(start)
		case ch == 't':
			s.scanLiteral(start, True)
		case ch == 'f':
			s.scanLiteral(start, False)
		case ch == 'n':
			s.scanLiteral(start, Null)
		default:
			s.bad(start, string(ch), fmt.Sprintf("unexpected %q", ch))
		}
		return true
	}
}

// Token returns the current token.
func (s *Scanner) Token() Token { return s.tok }

// Location returns the position just past the most recently read input.
func (s *Scanner) Location() LineCol {
	if s.nl {
		return LineCol{Line: s.cur.Line + 1, Column: 1}
	}
	return LineCol{Line: s.cur.Line, Column: s.cur.Column + 1}
}

// scanString consumes the body of a string through its closing quote.
// Precondition: the opening quote has been read.
func (s *Scanner) scanString(start LineCol) {
	from := s.src.offset()
	for {
		ch, ok := s.rune()
		if !ok {
			s.bad(start, `"`+s.src.span(from).StringCopy(), "unterminated string")
			return
		} else if ch == '"' {
			body := s.src.span(from)
			body = body.SliceTo(body.Len() - 1) // drop the closing quote
			s.tok = Token{Kind: String, Pos: start, Text: body.StringCopy()}
			return
		}
	}
}

// scanNumber consumes the remainder of a number.
// Precondition: the first digit has been read.
func (s *Scanner) scanNumber(start LineCol) {
	from := s.src.offset() - 1 // the first digit is already consumed
	var dot bool
	for {
		ch, ok := s.rune()
		if !ok {
			break
		} else if isDigit(ch) {
			continue
		} else if ch == '.' {
			if dot {
				s.bad(start, s.src.span(from).StringCopy(), "extra decimal point in number")
				return
			}
			dot = true
			continue
		} else if isNumEnd(ch) {
			s.unrune() // reconsider the delimiter as a token
			break
		}
		s.bad(start, s.src.span(from).StringCopy(), fmt.Sprintf("unexpected %q in number", ch))
		return
	}

	text := s.src.span(from)
	if text.At(text.Len()-1) == '.' {
		s.bad(start, text.StringCopy(), "no digits after decimal point")
		return
	}
	v, err := mem.ParseFloat(text, 64)
	if err != nil {
		s.bad(start, text.StringCopy(), fmt.Sprintf("number %s out of range", escape.Snippet(text)))
		return
	}
	s.tok = Token{Kind: Number, Pos: start, Text: text.StringCopy(), Num: v}
}

var literals = [...]mem.RO{
	True:  mem.S("true"),
	False: mem.S("false"),
	Null:  mem.S("null"),
}

// scanLiteral matches the rest of a constant, one rune at a time.
// Precondition: the first letter of the constant has been read.
func (s *Scanner) scanLiteral(start LineCol, k Kind) {
	want := literals[k]
	from := s.src.offset() - 1
	for i := 1; i < want.Len(); i++ {
		ch, ok := s.rune()
		if !ok {
			s.bad(s.Location(), s.src.span(from).StringCopy(),
				fmt.Sprintf("unexpected end of input in %s", k))
			return
		} else if ch != rune(want.At(i)) {
			s.bad(s.cur, s.src.span(from).StringCopy(),
				fmt.Sprintf("got %q, want %q in %s", ch, want.At(i), k))
			return
		}
	}
	s.tok = Token{Kind: k, Pos: start, Text: want.StringCopy()}
}

func (s *Scanner) bad(pos LineCol, text, reason string) {
	s.tok = Token{Kind: BadToken, Pos: pos, Text: text, Reason: reason}
}

// rune reads the next rune of input and updates the position.
func (s *Scanner) rune() (rune, bool) {
	ch, ok := s.src.next()
	if !ok {
		return 0, false
	}
	s.prev, s.pnl = s.cur, s.nl
	if s.nl {
		s.cur.Line++
		s.cur.Column = 0
	}
	s.cur.Column++
	s.nl = ch == '\n'
	return ch, true
}

// unrune pushes back the rune most recently returned by rune.
func (s *Scanner) unrune() {
	s.src.unget()
	s.cur, s.nl = s.prev, s.pnl
}

// zeroWidth holds formatting characters treated as whitespace, which
// unicode.IsSpace does not include.
const zeroWidth = "\u180e\u200b\u200c\u200d\u2060\ufeff"

func isSpace(ch rune) bool {
	return unicode.IsSpace(ch) || strings.ContainsRune(zeroWidth, ch)
}

func isDigit(ch rune) bool { return '0' <= ch && ch <= '9' }

// isNumEnd reports whether ch may legally follow a number.
func isNumEnd(ch rune) bool { return ch == ',' || ch == '}' || ch == ']' || isSpace(ch) }

var self = [...]Kind{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch rune) (Kind, bool) {
	i := strings.IndexRune("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return BadToken, false
}
