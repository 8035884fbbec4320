// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logruslistener adapts peg.Listener onto a *logrus.Logger.
package logruslistener

import (
	"github.com/sirupsen/logrus"

	"github.com/hucsmn/pegcore/peg"
)

// New returns a peg.Listener that logs each match to log at InfoLevel,
// with the matched text, its byte span, and its 1-based line/0-based
// column attached as fields. userData, if non-nil, is attached under the
// "rule" field.
func New(log *logrus.Logger) peg.Listener {
	return func(s *peg.State, userData interface{}) {
		c, ok := s.GetMatchCursor()
		if !ok {
			return
		}
		line, col := s.LineCol()
		fields := logrus.Fields{
			"begin": c.Begin,
			"end":   c.Pos,
			"line":  line,
			"col":   col,
			"text":  s.GetMatch(),
		}
		if userData != nil {
			fields["rule"] = userData
		}
		log.WithFields(fields).Info("peg match")
	}
}
