// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logrlistener adapts peg.Listener onto a logr.Logger.
package logrlistener

import (
	"github.com/go-logr/logr"

	"github.com/hucsmn/pegcore/peg"
)

// New returns a peg.Listener that calls log.Info for each match, with the
// matched text, its byte span, and its 1-based line/0-based column passed
// as key/value pairs. userData, if non-nil, is passed under the "rule"
// key.
func New(log logr.Logger) peg.Listener {
	return func(s *peg.State, userData interface{}) {
		c, ok := s.GetMatchCursor()
		if !ok {
			return
		}
		line, col := s.LineCol()
		kv := []interface{}{
			"begin", c.Begin,
			"end", c.Pos,
			"line", line,
			"col", col,
			"text", s.GetMatch(),
		}
		if userData != nil {
			kv = append(kv, "rule", userData)
		}
		log.Info("peg match", kv...)
	}
}
