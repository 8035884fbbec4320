// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package peg

import "fmt"

// Listener is a match observer: invoked with (s, userData) after every
// successful SetMatch, in registration order. Listeners are advisory (used
// for tracing) and must not mutate s.
type Listener func(s *State, userData interface{})

type listenerEntry struct {
	fn       Listener
	userData interface{}
}

type span struct {
	begin, end int
	has        bool
}

// State owns the cursor, the last-successful-match window, the current
// error record, registered match listeners, and the arenas backing
// dynamically constructed sub-rules. A *State is not safe for concurrent
// mutation and must not be shared between goroutines without external
// synchronization; see the Rule doc for the rule-sharing rules that do
// hold across goroutines.
type State struct {
	input []byte
	begin int
	end   int
	pos   int

	match span
	err   *ParseError

	listeners []listenerEntry
	arena     arena
	lines     *lineIndex

	// UserData is scoped to this one *State rather than shared process-wide.
	UserData interface{}
}

// Option configures a *State at construction time.
type Option func(*State)

// WithListener registers a match listener at construction time.
func WithListener(fn Listener, userData interface{}) Option {
	return func(s *State) {
		s.AddListener(fn, userData)
	}
}

// WithUserData sets State.UserData at construction time.
func WithUserData(data interface{}) Option {
	return func(s *State) {
		s.UserData = data
	}
}

// NewState builds a parser over input[0:len(input)).
func NewState(input []byte, opts ...Option) *State {
	s := &State{
		input: input,
		begin: 0,
		end:   len(input),
		pos:   0,
	}
	s.lines = newLineIndex(input, 0)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewStateString is NewState over the bytes of input.
func NewStateString(input string, opts ...Option) *State {
	return NewState([]byte(input), opts...)
}

// Pos returns the current read position.
func (s *State) Pos() int { return s.pos }

// Begin returns the window's start offset.
func (s *State) Begin() int { return s.begin }

// End returns the window's end offset (one past the last addressable byte).
func (s *State) End() int { return s.end }

// Distance returns p - Pos().
func (s *State) Distance(p int) int { return p - s.pos }

// Mark returns a Cursor snapshot of the current window and position.
func (s *State) Mark() Cursor {
	return Cursor{Begin: s.begin, Pos: s.pos, End: s.end}
}

// SetPos sets pos to p iff p is within [Begin, End]; otherwise it is a
// no-op and returns false.
func (s *State) SetPos(p int) bool {
	if p < s.begin || p > s.end {
		return false
	}
	s.pos = p
	return true
}

// Advance shifts pos by n, honoring the same bounds as SetPos.
func (s *State) Advance(n int) bool {
	return s.SetPos(s.pos + n)
}

// Bump shifts pos forward by one byte.
func (s *State) Bump() bool {
	return s.Advance(1)
}

// EOF reports whether pos has reached the end of the window.
func (s *State) EOF() bool {
	return s.pos >= s.end
}

// IsGood reports whether the state is not at EOF and carries no error.
func (s *State) IsGood() bool {
	return !s.EOF() && s.err == nil
}

// LineCol computes the 1-based line and 0-based column of pos, counting
// '\n' bytes from Begin.
func (s *State) LineCol() (line, col int) {
	return s.lines.lineCol(s.pos)
}

// SetMatch records [b,e) as the current match. If advance is true it also
// performs SetPos(e). It fails (returning false, leaving match and pos
// untouched) if b is outside [Begin,End], e > End, or e < b. On success
// every registered listener is invoked, in registration order.
func (s *State) SetMatch(b, e int, advance bool) bool {
	if b < s.begin || b > s.end || e > s.end || e < b {
		return false
	}
	s.match = span{begin: b, end: e, has: true}
	if advance {
		if !s.SetPos(e) {
			return false
		}
	}
	for _, l := range s.listeners {
		l.fn(s, l.userData)
	}
	return true
}

// ClearMatch resets the match region to empty.
func (s *State) ClearMatch() {
	s.match = span{}
}

// GetMatch returns the text of the current match, or "" if there is none.
func (s *State) GetMatch() string {
	if !s.match.has {
		return ""
	}
	return string(s.input[s.match.begin:s.match.end])
}

// GetMatchCursor returns the [begin,end) of the current match as a Cursor
// (Pos is set to end). ok is false if there is no current match.
func (s *State) GetMatchCursor() (c Cursor, ok bool) {
	if !s.match.has {
		return Cursor{}, false
	}
	return Cursor{Begin: s.match.begin, Pos: s.match.end, End: s.match.end}, true
}

// SetError records a formatted error, snapshotting the current LineCol.
// SetError(code, "") clears the error.
func (s *State) SetError(code ErrorCode, format string, args ...interface{}) {
	if format == "" {
		s.err = nil
		return
	}
	line, col := s.LineCol()
	s.err = &ParseError{
		Message: fmt.Sprintf(format, args...),
		Line:    line,
		Col:     col,
		Code:    code,
	}
}

// SetErrorCause is SetError but additionally chains cause into the message
// via xerrors and records it as the wrapped error, retrievable via
// errors.Unwrap/xerrors.Unwrap on the returned *ParseError.
func (s *State) SetErrorCause(code ErrorCode, cause error, format string, args ...interface{}) {
	line, col := s.LineCol()
	s.err = &ParseError{
		Message: wrapf(cause, format, args...).Error(),
		Line:    line,
		Col:     col,
		Code:    code,
		wrapped: cause,
	}
}

// Error returns the current error record, if any.
func (s *State) Error() (*ParseError, bool) {
	if s.err == nil {
		return nil, false
	}
	return s.err, true
}

// ClearError discards the current error record.
func (s *State) ClearError() {
	s.err = nil
}

// AddListener appends a match listener.
func (s *State) AddListener(fn Listener, userData interface{}) {
	s.listeners = append(s.listeners, listenerEntry{fn: fn, userData: userData})
}

func (s *State) newKey() ruleKey {
	return s.arena.newKey()
}
