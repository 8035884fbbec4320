// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package peg

import "fmt"

// Cursor is an immutable snapshot of a window into an input byte sequence
// together with a read position inside it: the half-open range [Begin, End)
// and a Pos satisfying Begin <= Pos <= End. Pos == End means end of input.
//
// Cursor values never alias *State mutation: taking one and continuing to
// run rules against the originating *State does not change the Cursor.
type Cursor struct {
	Begin, Pos, End int
}

// Len returns the length of the window, End-Begin.
func (c Cursor) Len() int {
	return c.End - c.Begin
}

// Distance returns p-Pos, the signed number of bytes from the cursor's
// current position to p.
func (c Cursor) Distance(p int) int {
	return p - c.Pos
}

// EOF reports whether the cursor sits at or past the end of its window.
func (c Cursor) EOF() bool {
	return c.Pos >= c.End
}

func (c Cursor) String() string {
	return fmt.Sprintf("[%d,%d,%d)", c.Begin, c.Pos, c.End)
}
