// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jval

import "go4.org/mem"

// A source is a read cursor over an immutable input buffer, with one rune of
// pushback.
type source struct {
	buf  mem.RO
	pos  int // offset of the next unread byte
	last int // size in bytes of the last rune read, 0 if none
}

func newSource(text string) *source { return &source{buf: mem.S(text)} }

// next returns the next rune of the input and advances past it.  It reports
// false when the input is exhausted. Invalid UTF-8 decodes as utf8.RuneError
// with a width of one byte.
func (s *source) next() (rune, bool) {
	if s.pos >= s.buf.Len() {
		s.last = 0
		return 0, false
	}
	ch, n := mem.DecodeRune(s.buf.SliceFrom(s.pos))
	if n == 0 {
		n = 1
	}
	s.pos += n
	s.last = n
	return ch, true
}

// unget rewinds s by the last rune returned by next. Calling unget twice in a
// row, or before any call to next, has no effect.
func (s *source) unget() {
	s.pos -= s.last
	s.last = 0
}

// offset reports the byte offset of the next unread rune.
func (s *source) offset() int { return s.pos }

// span returns a view of the input from byte offset from up to the current
// read position.
func (s *source) span(from int) mem.RO { return s.buf.Slice(from, s.pos) }
