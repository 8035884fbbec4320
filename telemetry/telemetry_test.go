// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package telemetry

import (
	"context"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/hucsmn/pegcore/peg"
)

func TestParseRecordsMatchedSpan(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	tracer := tp.Tracer("test")

	s := peg.NewStateString("abc123")
	_, ok := Parse(context.Background(), tracer, "parse", s, peg.Seq(s, peg.Plus(peg.Alpha), peg.Digits))
	if !ok {
		t.Fatal("expected a match")
	}

	spans := sr.Ended()
	if len(spans) != 1 {
		t.Fatalf("got %d ended spans, want 1", len(spans))
	}
	span := spans[0]
	if span.Name() != "parse" {
		t.Errorf("span name = %q, want %q", span.Name(), "parse")
	}
	var sawMatched bool
	for _, a := range span.Attributes() {
		if string(a.Key) == "peg.matched" && a.Value.AsBool() {
			sawMatched = true
		}
	}
	if !sawMatched {
		t.Errorf("expected peg.matched=true attribute on the span, got %v", span.Attributes())
	}
}

func TestParseRecordsErrorStatusOnNoMatch(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	tracer := tp.Tracer("test")

	s := peg.NewStateString("123")
	_, ok := Parse(context.Background(), tracer, "parse", s, peg.Alpha)
	if ok {
		t.Fatal("expected a failure")
	}

	spans := sr.Ended()
	if len(spans) != 1 {
		t.Fatalf("got %d ended spans, want 1", len(spans))
	}
	if spans[0].Status().Code.String() != "Error" {
		t.Errorf("span status = %v, want Error", spans[0].Status())
	}
}

func TestNewMatchListenerAddsSpanEvents(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	tracer := tp.Tracer("test")

	ctx, span := tracer.Start(context.Background(), "parent")
	s := peg.NewStateString("abc123", peg.WithListener(NewMatchListener(span), "digits"))
	peg.Run(s, peg.Str("abc", true))
	peg.Run(s, peg.Digits)
	span.End()
	_ = ctx

	spans := sr.Ended()
	if len(spans) != 1 {
		t.Fatalf("got %d ended spans, want 1", len(spans))
	}
	events := spans[0].Events()
	if len(events) != 2 {
		t.Fatalf("got %d span events, want 2 (one per match)", len(events))
	}
	if events[0].Name != "peg match" {
		t.Errorf("event name = %q, want %q", events[0].Name, "peg match")
	}
}
