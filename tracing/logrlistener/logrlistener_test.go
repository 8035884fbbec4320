// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logrlistener

import (
	"testing"

	"github.com/go-logr/logr"

	"github.com/hucsmn/pegcore/peg"
)

// recordingSink is a minimal logr.LogSink that records its Info calls, for
// use in tests in place of a real logging backend.
type recordingSink struct {
	calls []call
}

type call struct {
	msg string
	kv  []interface{}
}

func (s *recordingSink) Init(info logr.RuntimeInfo)                {}
func (s *recordingSink) Enabled(level int) bool                     { return true }
func (s *recordingSink) Error(err error, msg string, kv ...interface{}) {}
func (s *recordingSink) WithValues(kv ...interface{}) logr.LogSink  { return s }
func (s *recordingSink) WithName(name string) logr.LogSink          { return s }

func (s *recordingSink) Info(level int, msg string, kv ...interface{}) {
	s.calls = append(s.calls, call{msg: msg, kv: kv})
}

func kvString(kv []interface{}, key string) (interface{}, bool) {
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i] == key {
			return kv[i+1], true
		}
	}
	return nil, false
}

func TestNewLogsEachMatch(t *testing.T) {
	sink := &recordingSink{}
	log := logr.New(sink)

	s := peg.NewStateString("abc123", peg.WithListener(New(log), "digits"))
	peg.Run(s, peg.Str("abc", true))
	peg.Run(s, peg.Digits)

	if len(sink.calls) != 2 {
		t.Fatalf("got %d calls, want 2 (one per match)", len(sink.calls))
	}
	last := sink.calls[len(sink.calls)-1]
	if last.msg != "peg match" {
		t.Errorf("msg = %q, want %q", last.msg, "peg match")
	}
	if text, ok := kvString(last.kv, "text"); !ok || text != "123" {
		t.Errorf("text = %v, ok=%v, want %q", text, ok, "123")
	}
	if rule, ok := kvString(last.kv, "rule"); !ok || rule != "digits" {
		t.Errorf("rule = %v, ok=%v, want %q", rule, ok, "digits")
	}
}

func TestNewSkipsWhenNoMatch(t *testing.T) {
	sink := &recordingSink{}
	log := logr.New(sink)
	listener := New(log)

	s := peg.NewStateString("x")
	listener(s, nil)
	if len(sink.calls) != 0 {
		t.Errorf("got %d calls, want 0 when there is no current match", len(sink.calls))
	}
}
