// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package peg

import "testing"

func runTerminal(t *testing.T, r Rule, input string, wantOK bool, wantMatch string, wantPos int) {
	t.Helper()
	s := NewStateString(input)
	got := Run(s, r)
	if got != wantOK {
		t.Fatalf("Run(%q) = %v, want %v", input, got, wantOK)
	}
	if !wantOK {
		if s.Pos() != 0 {
			t.Errorf("failed match must not move pos, got %d", s.Pos())
		}
		return
	}
	if gotMatch := s.GetMatch(); gotMatch != wantMatch {
		t.Errorf("GetMatch() = %q, want %q", gotMatch, wantMatch)
	}
	if s.Pos() != wantPos {
		t.Errorf("Pos() = %d, want %d", s.Pos(), wantPos)
	}
}

func TestSuccessFailureEOF(t *testing.T) {
	runTerminal(t, Success, "abc", true, "", 0)
	runTerminal(t, Failure, "abc", false, "", 0)
	runTerminal(t, EOF, "", true, "", 0)
	runTerminal(t, EOF, "a", false, "", 0)
}

func TestEOL(t *testing.T) {
	runTerminal(t, EOL, "\r\nx", true, "\r\n", 2)
	runTerminal(t, EOL, "\nx", true, "\n", 1)
	runTerminal(t, EOL, "x", false, "", 0)
}

func TestChar(t *testing.T) {
	runTerminal(t, Char('a', true), "abc", true, "a", 1)
	runTerminal(t, Char('a', true), "Abc", false, "", 0)
	runTerminal(t, Char('a', false), "Abc", true, "A", 1)
	runTerminal(t, Char('a', true), "", false, "", 0)
}

func TestOneOf(t *testing.T) {
	runTerminal(t, OneOf("xyz", true), "ybc", true, "y", 1)
	runTerminal(t, OneOf("xyz", true), "abc", false, "", 0)
	runTerminal(t, OneOf("XYZ", false), "ybc", true, "y", 1)
}

func TestRange(t *testing.T) {
	runTerminal(t, Range('a', 'f'), "cde", true, "c", 1)
	runTerminal(t, Range('a', 'f'), "zde", false, "", 0)
	// Swapped endpoints are normalized.
	runTerminal(t, Range('f', 'a'), "cde", true, "c", 1)
}

func TestStr(t *testing.T) {
	runTerminal(t, Str("hello", true), "hello world", true, "hello", 5)
	runTerminal(t, Str("hello", true), "Hello world", false, "", 0)
	runTerminal(t, Str("hello", false), "HELLO world", true, "HELLO", 5)
	runTerminal(t, Str("hello", true), "hel", false, "", 0)
}

func TestClasses(t *testing.T) {
	runTerminal(t, Alpha, "a1", true, "a", 1)
	runTerminal(t, Alpha, "1a", false, "", 0)
	runTerminal(t, Digit, "1a", true, "1", 1)
	runTerminal(t, Upper, "Ab", true, "A", 1)
	runTerminal(t, Lower, "aB", true, "a", 1)
	runTerminal(t, Alnum, "1", true, "1", 1)
	runTerminal(t, XDigit, "f", true, "f", 1)
	runTerminal(t, XDigit, "g", false, "", 0)
	runTerminal(t, Blank, " x", true, " ", 1)
	runTerminal(t, Space, "\t", true, "\t", 1)
	runTerminal(t, Cntrl, "\x01", true, "\x01", 1)
	runTerminal(t, Print, "a", true, "a", 1)
	runTerminal(t, Graph, " ", false, "", 0)
	runTerminal(t, Punct, "!", true, "!", 1)
	runTerminal(t, ASCII, "a", true, "a", 1)
	runTerminal(t, ASCII, "\xff", false, "", 0)
	runTerminal(t, Latin1, "\xff", true, "\xff", 1)
}

func TestDigits(t *testing.T) {
	runTerminal(t, Digits, "123abc", true, "123", 3)
	runTerminal(t, Digits, "abc", false, "", 0)
}

func TestIntDec(t *testing.T) {
	runTerminal(t, IntDec, "-3492.323asa", true, "-3492", 5)
	runTerminal(t, IntDec, "+42x", true, "+42", 3)
	runTerminal(t, IntDec, "x", false, "", 0)
	runTerminal(t, IntDec, "-", false, "", 0)
}

func TestIntDecStrict(t *testing.T) {
	runTerminal(t, IntDecStrict, "-3492.323asa", false, "", 0)
	runTerminal(t, IntDecStrict, "-3492 . xyz", true, "-3492", 5)
	runTerminal(t, IntDecStrict, "42", true, "42", 2)
	runTerminal(t, IntDecStrict, "42abc", false, "", 0)
}

func TestIntDecStrictCachedPerState(t *testing.T) {
	s := NewStateString("-3492 . xyz")
	if !Run(s, IntDecStrict) {
		t.Fatal("first run should match")
	}
	s2 := NewStateString("42abc")
	if Run(s2, IntDecStrict) {
		t.Fatal("second, independent state should not leak the first one's match")
	}
}

func TestDouble(t *testing.T) {
	cases := []struct {
		in        string
		wantMatch string
	}{
		{"3.14159x", "3.14159"},
		{"-42x", "-42"},
		{"123.e5x", "123.e5"},
		{".5x", ".5"},
		{"1e10x", "1e10"},
		{"1e+10x", "1e+10"},
	}
	for _, tc := range cases {
		runTerminal(t, Double, tc.in, true, tc.wantMatch, len(tc.wantMatch))
	}
	runTerminal(t, Double, "x", false, "", 0)
}
