// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package escape renders raw source text for use in diagnostics.
package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

// MaxSnippet is the maximum number of runes of source text Snippet renders
// before eliding the rest.
const MaxSnippet = 32

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Snippet renders src as a double-quoted string for an error message.
// Control characters, quotes, and backslashes are escaped. If src is longer
// than MaxSnippet runes, the remainder is replaced by "...".
func Snippet(src mem.RO) string {
	buf := make([]byte, 0, min(src.Len(), 4*MaxSnippet)+2)
	buf = append(buf, '"')
	putByte := func(bs ...byte) { buf = append(buf, bs...) }

	for nr := 0; src.Len() != 0; nr++ {
		if nr == MaxSnippet {
			putByte('.', '.', '.')
			break
		}
		r, n := mem.DecodeRune(src)
		if n == 0 {
			n = 1
		}
		switch {
		case r < ' ':
			if b := controlEsc[r]; b != 0 {
				putByte('\\', b)
			} else {
				putByte('\\', 'u', '0', '0', hexDigit[int(r>>4)], hexDigit[int(r&15)])
			}
		case r == '\\' || r == '"':
			putByte('\\', byte(r))
		case r == utf8.RuneError && n == 1:
			buf = append(buf, `\ufffd`...)
		default:
			buf = utf8.AppendRune(buf, r)
		}
		src = src.SliceFrom(n)
	}
	buf = append(buf, '"')
	return string(buf)
}
