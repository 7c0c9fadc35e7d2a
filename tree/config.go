// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree

import "github.com/sirupsen/logrus"

// DefaultMaxDepth is the nesting limit used when Config.MaxDepth is zero.
const DefaultMaxDepth = 1000

var pkgLogger logrus.FieldLogger = logrus.New()

// SetLogger configures the logrus.FieldLogger used by parsers whose Config
// does not specify one. It must not be called concurrently with Parse.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = logrus.New()
	}
	pkgLogger = l
}

// Config carries settings for a parse. The zero value is ready for use and
// is what Parse uses.
type Config struct {
	// MaxDepth is the deepest nesting of objects and arrays the parser will
	// accept. If zero, DefaultMaxDepth is used; if negative, nesting is not
	// limited, and deeply nested input may exhaust the stack.
	MaxDepth int

	// Logger receives debug traces of the parse. If nil, the logger set by
	// SetLogger is used.
	Logger logrus.FieldLogger
}

func (c Config) maxDepth() int {
	if c.MaxDepth == 0 {
		return DefaultMaxDepth
	}
	return c.MaxDepth
}

func (c Config) logger() logrus.FieldLogger {
	if c.Logger == nil {
		return pkgLogger
	}
	return c.Logger
}
