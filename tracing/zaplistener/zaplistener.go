// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package zaplistener adapts peg.Listener onto a *zap.Logger.
package zaplistener

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/hucsmn/pegcore/peg"
)

// New returns a peg.Listener that logs each match to log at InfoLevel,
// with the matched text, its byte span, and its 1-based line/0-based
// column as structured fields. userData, if non-nil, is logged under the
// "rule" field.
func New(log *zap.Logger) peg.Listener {
	return func(s *peg.State, userData interface{}) {
		c, ok := s.GetMatchCursor()
		if !ok {
			return
		}
		line, col := s.LineCol()
		fields := []zap.Field{
			zap.Int("begin", c.Begin),
			zap.Int("end", c.Pos),
			zap.Int("line", line),
			zap.Int("col", col),
			zap.String("text", s.GetMatch()),
		}
		if userData != nil {
			fields = append(fields, zap.String("rule", fmt.Sprintf("%v", userData)))
		}
		log.Info("peg match", fields...)
	}
}
