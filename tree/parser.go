// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree

import (
	"github.com/creachadair/jval"
	"github.com/sirupsen/logrus"
)

// Parse parses text as a single JSON value using the default Config.
// In case of error, no value is returned. A lexical error has concrete type
// *jval.LexError; any other error has concrete type *jval.SyntaxError.
func Parse(text string) (Value, error) { return Config{}.Parse(text) }

// Parse parses text as a single JSON value. Scanning completes before parsing
// begins; the first lexical or grammar error anywhere in the input ends the
// parse and is returned.
func (c Config) Parse(text string) (Value, error) {
	log := c.logger()
	toks, end := jval.ScanAll(text)
	log.WithField("tokens", len(toks)).Debug("scanned input")

	p := &parser{toks: toks, end: end, maxDepth: c.maxDepth()}
	v, err := p.parse()
	if err != nil {
		log.WithFields(errorFields(err)).Debug("parse failed")
		return nil, err
	}
	return v, nil
}

func errorFields(err error) logrus.Fields {
	f := logrus.Fields{logrus.ErrorKey: err}
	switch e := err.(type) {
	case *jval.SyntaxError:
		f["line"], f["column"] = e.Location.Line, e.Location.Column
	case *jval.LexError:
		f["line"], f["column"] = e.Pos.Line, e.Pos.Column
	}
	return f
}

// parseState records what an object parser expects next.
type parseState byte

const (
	stateIdle     parseState = iota // a key, or "}" if the object is empty
	stateGotName                    // a colon
	stateGotColon                   // a value
	stateGotValue                   // a comma or "}"
)

var stateWant = [...]string{
	stateIdle:     `a key or "}"`,
	stateGotName:  `":"`,
	stateGotColon: "a value",
	stateGotValue: `"," or "}"`,
}

// A parser consumes a token sequence with a single forward-only cursor,
// shared by all levels of recursion.
type parser struct {
	toks []jval.Token
	pos  int
	end  jval.LineCol // location just past the input

	depth, maxDepth int
}

// parse consumes the whole token sequence as one value.
func (p *parser) parse() (_ Value, err error) {
	defer p.recoverParseError(&err)

	v := p.parseValue(p.advance("a value"))
	if p.pos < len(p.toks) {
		tok := p.advance("end of input")
		p.syntaxError(tok.Pos, nil, "unexpected %v after value", tok)
	}
	return v, nil
}

func (p *parser) recoverParseError(errp *error) {
	if perr := recover(); perr != nil {
		switch err := perr.(type) {
		case *jval.SyntaxError:
			*errp = err
		case *jval.LexError:
			*errp = err
		default:
			panic(perr)
		}
	}
}

// parseValue resolves the value beginning with tok.
func (p *parser) parseValue(tok jval.Token) Value {
	switch tok.Kind {
	case jval.LBrace:
		return p.parseObject(tok)
	case jval.LSquare:
		return p.parseArray(tok)
	case jval.String, jval.Number, jval.True, jval.False, jval.Null:
		return scalar(tok)
	}
	p.syntaxError(tok.Pos, nil, "expected a value, got %v", tok)
	panic("unreachable")
}

// parseObject consumes the members of an object.
// Precondition: open is the "{" that begins the object.
func (p *parser) parseObject(open jval.Token) Object {
	p.enter(open)
	defer p.leave()

	obj := make(Object)
	state := stateIdle
	var key string
	var n int // members seen
	for {
		tok := p.advance(stateWant[state])
		switch state {
		case stateIdle:
			if tok.Kind == jval.String {
				key = tok.Text
				state = stateGotName
			} else if tok.Kind == jval.RBrace && n == 0 {
				return obj
			} else if n == 0 {
				p.syntaxError(tok.Pos, nil, "expected a key or '}', got %v", tok)
			} else {
				p.syntaxError(tok.Pos, nil, "expected a key, got %v", tok)
			}

		case stateGotName:
			if tok.Kind != jval.Colon {
				p.syntaxError(tok.Pos, nil, "expected a colon, got %v", tok)
			}
			state = stateGotColon

		case stateGotColon:
			obj[key] = p.parseValue(tok) // last write wins
			n++
			state = stateGotValue

		case stateGotValue:
			switch tok.Kind {
			case jval.Comma:
				state = stateIdle
			case jval.RBrace:
				return obj
			default:
				p.syntaxError(tok.Pos, nil, "expected ',' or '}', got %v", tok)
			}
		}
	}
}

// parseArray consumes the elements of an array.
// Precondition: open is the "[" that begins the array.
func (p *parser) parseArray(open jval.Token) Array {
	p.enter(open)
	defer p.leave()

	arr := Array{}
	tok := p.advance(`a value or "]"`)
	if tok.Kind == jval.RSquare {
		return arr
	}
	arr = append(arr, p.parseValue(tok))
	for {
		tok = p.advance(`"," or "]"`)
		switch tok.Kind {
		case jval.RSquare:
			return arr
		case jval.Comma:
			arr = append(arr, p.parseValue(p.advance("a value")))
		default:
			p.syntaxError(tok.Pos, nil, "expected ',' or ']', got %v", tok)
		}
	}
}

// advance returns the next token and moves the cursor past it. It fails if
// the tokens are exhausted, mentioning what was expected, or if the next
// token is a BadToken.
func (p *parser) advance(want string) jval.Token {
	if p.pos >= len(p.toks) {
		p.syntaxError(p.end, jval.ErrUnexpectedEOF, "expected %s, got end of input", want)
	}
	tok := p.toks[p.pos]
	p.pos++
	if tok.Kind == jval.BadToken {
		panic(jval.NewLexError(tok))
	}
	return tok
}

// enter records entry into a nested object or array opened by tok.
func (p *parser) enter(tok jval.Token) {
	p.depth++
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		p.syntaxError(tok.Pos, jval.ErrTooDeep, "nesting depth exceeds %d", p.maxDepth)
	}
}

func (p *parser) leave() { p.depth-- }

func (p *parser) syntaxError(loc jval.LineCol, err error, msg string, args ...any) {
	panic(jval.NewSyntaxError(loc, err, msg, args...))
}
