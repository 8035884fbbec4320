// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gokitlistener adapts peg.Listener onto a go-kit log.Logger.
package gokitlistener

import (
	"github.com/go-kit/kit/log"

	"github.com/hucsmn/pegcore/peg"
)

// New returns a peg.Listener that calls log.Log for each match, with the
// matched text, its byte span, and its 1-based line/0-based column passed
// as alternating key/value pairs. userData, if non-nil, is passed under
// the "rule" key. Log errors are silently discarded, matching the
// fire-and-forget nature of a match listener.
func New(logger log.Logger) peg.Listener {
	return func(s *peg.State, userData interface{}) {
		c, ok := s.GetMatchCursor()
		if !ok {
			return
		}
		line, col := s.LineCol()
		kv := []interface{}{
			"msg", "peg match",
			"begin", c.Begin,
			"end", c.Pos,
			"line", line,
			"col", col,
			"text", s.GetMatch(),
		}
		if userData != nil {
			kv = append(kv, "rule", userData)
		}
		_ = logger.Log(kv...)
	}
}
