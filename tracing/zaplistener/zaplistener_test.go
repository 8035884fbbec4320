// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zaplistener

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/hucsmn/pegcore/peg"
)

func TestNewLogsEachMatch(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core)

	s := peg.NewStateString("abc123", peg.WithListener(New(log), "digits"))
	peg.Run(s, peg.Str("abc", true))
	peg.Run(s, peg.Digits)

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("got %d log entries, want 2 (one per match)", len(entries))
	}
	last := entries[len(entries)-1]
	if last.Message != "peg match" {
		t.Errorf("Message = %q, want %q", last.Message, "peg match")
	}
	fields := last.ContextMap()
	if fields["text"] != "123" {
		t.Errorf("text field = %v, want %q", fields["text"], "123")
	}
	if fields["rule"] != "digits" {
		t.Errorf("rule field = %v, want %q", fields["rule"], "digits")
	}
}

func TestNewSkipsWhenNoMatch(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core)
	listener := New(log)

	s := peg.NewStateString("x")
	listener(s, nil) // no current match; must not log
	if logs.Len() != 0 {
		t.Errorf("got %d entries, want 0 when there is no current match", logs.Len())
	}
}
