// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package telemetry wraps top-level parses in OpenTelemetry spans and can
// mirror individual rule matches onto a span as events, independent of the
// tracing listener adapters (which target a logger, not a tracer).
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/hucsmn/pegcore/peg"
)

// Parse starts a span named spanName on tracer, runs rule against s within
// it, and records standard attributes: the input window length, the start
// and end positions, and whether rule matched. If s carries a *ParseError
// after the run, or the run simply failed, the span is marked as an error.
// The span is ended before Parse returns.
func Parse(ctx context.Context, tracer trace.Tracer, spanName string, s *peg.State, rule peg.Rule) (context.Context, bool) {
	ctx, span := tracer.Start(ctx, spanName)
	defer span.End()

	span.SetAttributes(
		attribute.Int("peg.input_len", s.End()-s.Begin()),
		attribute.Int("peg.start_pos", s.Pos()),
	)

	ok := peg.Run(s, rule)

	span.SetAttributes(
		attribute.Bool("peg.matched", ok),
		attribute.Int("peg.end_pos", s.Pos()),
	)
	if perr, has := s.Error(); has {
		span.SetStatus(codes.Error, perr.Error())
	} else if !ok {
		span.SetStatus(codes.Error, "no match")
	}
	return ctx, ok
}

// NewMatchListener returns a peg.Listener that records every match as a
// span event on span: the matched byte span, its 1-based line/0-based
// column, and its text, mirroring the fields the tracing/*listener
// adapters log. userData, if non-nil, is recorded under the "rule"
// attribute.
func NewMatchListener(span trace.Span) peg.Listener {
	return func(s *peg.State, userData interface{}) {
		c, ok := s.GetMatchCursor()
		if !ok {
			return
		}
		line, col := s.LineCol()
		attrs := []attribute.KeyValue{
			attribute.Int("begin", c.Begin),
			attribute.Int("end", c.Pos),
			attribute.Int("line", line),
			attribute.Int("col", col),
			attribute.String("text", s.GetMatch()),
		}
		if userData != nil {
			attrs = append(attrs, attribute.String("rule", fmt.Sprintf("%v", userData)))
		}
		span.AddEvent("peg match", trace.WithAttributes(attrs...))
	}
}
