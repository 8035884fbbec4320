// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package peg implements a Parsing Expression Grammar combinator toolkit.
//
// A grammar is not a generated artifact or a parsed description file: it is
// an ordinary Go value tree built by composing Rule values returned from the
// package's constructors. A Rule wraps a small matcher function plus
// whatever data and children it needs; running a rule against a *State
// advances (or fails to advance) that state's cursor.
//
// Overview of rule families
//
// Terminals match a handful of bytes directly: Char, Str, OneOf, Range, the
// POSIX-style single-byte classes (Alpha, Digit, Space, ...), and the
// numeric scanners Digits, IntDec, IntDecStrict, Double.
//
// Combinators build larger rules out of smaller ones: Seq and Alt compose by
// sequencing or ordered choice, Opt/Star/Plus/Repeat qualify repetition, At
// and NotAt are non-consuming predicates, Pad trims surrounding runs, Until
// scans up to (but not past) a delimiter, Action attaches a callback to a
// successful match, and QuotedString handles escaped delimited text.
//
// Failure is always atomic: any rule that returns false leaves the State's
// position exactly where it found it. Composing rules therefore never
// requires the caller to save or restore position by hand.
//
// Common mistakes
//
// Greedy qualifiers can starve a following rule: Seq(s, Star(Digit), OneOf("02468", true))
// never matches, because Star(Digit) always eats the last digit too. Guard
// it with a lookahead instead: Star(Seq(s, Digit, At(Digit))).
//
// Left recursion is not supported. A rule that calls itself (directly or
// through Lookup-style indirection) before consuming anything will recurse
// until the Go runtime's own stack limit intervenes; this package does not
// detect it.
package peg
