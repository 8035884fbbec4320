// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package zerologlistener adapts peg.Listener onto a zerolog.Logger.
package zerologlistener

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/hucsmn/pegcore/peg"
)

// New returns a peg.Listener that logs each match to log at the Info
// level, with the matched text, its byte span, and its 1-based
// line/0-based column as structured fields. userData, if non-nil, is
// logged under the "rule" field.
func New(log zerolog.Logger) peg.Listener {
	return func(s *peg.State, userData interface{}) {
		c, ok := s.GetMatchCursor()
		if !ok {
			return
		}
		line, col := s.LineCol()
		ev := log.Info().
			Int("begin", c.Begin).
			Int("end", c.Pos).
			Int("line", line).
			Int("col", col).
			Str("text", s.GetMatch())
		if userData != nil {
			ev = ev.Str("rule", fmt.Sprintf("%v", userData))
		}
		ev.Msg("peg match")
	}
}
