// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package peg

// Combinators are atomic on failure: whenever one returns false it has
// restored pos to the value it held on entry.

// Seq matches iff every child matches in order; it fails at the first
// child failure, with pos restored to its entry value. The reported match
// spans the concatenation of all children's consumption. Seq allocates its
// child list in s's arena and the returned Rule must not be used with a
// different *State.
func Seq(s *State, rules ...Rule) Rule {
	key := s.arena.putChildren(rules)
	return Rule{match: matchSeq, key: key, kind: KindSeq}
}

func matchSeq(s *State, r *Rule) bool {
	start := s.pos
	children := s.arena.children[r.key]
	for _, child := range children {
		if !Run(s, child) {
			s.pos = start
			return false
		}
	}
	s.SetMatch(start, s.pos, true)
	return true
}

// Alt is ordered choice: tries each child in order and succeeds on the
// first match. It fails iff every child fails. The reported match reflects
// the matched child's consumption.
func Alt(s *State, rules ...Rule) Rule {
	key := s.arena.putChildren(rules)
	return Rule{match: matchAlt, key: key, kind: KindAlt}
}

func matchAlt(s *State, r *Rule) bool {
	start := s.pos
	children := s.arena.children[r.key]
	for _, child := range children {
		if Run(s, child) {
			return true
		}
		s.pos = start
	}
	return false
}

// Opt always succeeds; it consumes iff r matches.
func Opt(r Rule) Rule {
	return Rule{match: matchOpt, proxy: &r, kind: KindOpt}
}

func matchOpt(s *State, r *Rule) bool {
	Run(s, *r.proxy)
	return true
}

// Star repeats r until it fails. If an iteration matches without
// consuming, the loop exits immediately to prevent livelock; Star always
// succeeds. If at least one iteration consumed, the match spans the
// concatenation of the consumed iterations.
func Star(r Rule) Rule {
	return Rule{match: matchStar, proxy: &r, kind: KindStar}
}

func matchStar(s *State, r *Rule) bool {
	start := s.pos
	for {
		before := s.pos
		if !Run(s, *r.proxy) {
			break
		}
		if s.pos == before {
			break
		}
	}
	if s.pos != start {
		s.SetMatch(start, s.pos, true)
	}
	return true
}

// Plus is Star but requires at least one consuming match, failing
// atomically otherwise.
func Plus(r Rule) Rule {
	return Rule{match: matchPlus, proxy: &r, kind: KindPlus}
}

func matchPlus(s *State, r *Rule) bool {
	start := s.pos
	if !Run(s, *r.proxy) || s.pos == start {
		s.pos = start
		return false
	}
	for {
		before := s.pos
		if !Run(s, *r.proxy) {
			break
		}
		if s.pos == before {
			break
		}
	}
	s.SetMatch(start, s.pos, true)
	return true
}

// Repeat matches if r succeeds between min and max times inclusive,
// applying Star's non-consuming-exit guarantee. It requires max >= min >=
// 0 and max >= 1, returning Invalid otherwise. The shapes (1,1) and (0,1)
// are optimized to avoid an arena allocation, returning r itself and
// Opt(r) respectively.
func Repeat(s *State, r Rule, min, max int) Rule {
	if min < 0 || max < min || max < 1 {
		s.SetErrorCause(0, errInvalidArgument, "peg.Repeat: invalid bounds min=%d max=%d", min, max)
		return Invalid
	}
	if min == 1 && max == 1 {
		return r
	}
	if min == 0 && max == 1 {
		return Opt(r)
	}
	key := s.arena.putRepeat(&repeatEntry{child: r, min: min, max: max})
	return Rule{match: matchRepeat, key: key, kind: KindRepeat}
}

func matchRepeat(s *State, r *Rule) bool {
	e := s.arena.repeats[r.key]
	start := s.pos
	count := 0
	for count < e.max {
		before := s.pos
		if !Run(s, e.child) {
			break
		}
		count++
		if s.pos == before {
			break
		}
	}
	if count < e.min {
		s.pos = start
		return false
	}
	s.SetMatch(start, s.pos, true)
	return true
}

// At is the "and" predicate: it runs r, restores pos regardless of the
// outcome, and returns r's result. It never consumes.
func At(r Rule) Rule {
	return Rule{match: matchAt, proxy: &r, kind: KindAt}
}

func matchAt(s *State, r *Rule) bool {
	start := s.pos
	ok := Run(s, *r.proxy)
	s.pos = start
	return ok
}

// NotAt is the "not" predicate: the negation of At. It never consumes.
func NotAt(r Rule) Rule {
	return Rule{match: matchNotAt, proxy: &r, kind: KindNotAt}
}

func matchNotAt(s *State, r *Rule) bool {
	start := s.pos
	ok := Run(s, *r.proxy)
	s.pos = start
	return !ok
}

// Until consumes bytes one at a time while At(r) is false and the state is
// not at EOF; it succeeds once At(r) becomes true, with the match set to
// the consumed prefix (excluding r's own match). It fails atomically if
// EOF is reached before r matches.
func Until(r Rule) Rule {
	return Rule{match: matchUntil, proxy: &r, kind: KindUntil}
}

func matchUntil(s *State, r *Rule) bool {
	start := s.pos
	for {
		before := s.pos
		matched := Run(s, *r.proxy)
		s.pos = before
		if matched {
			s.SetMatch(start, s.pos, true)
			return true
		}
		if s.EOF() {
			s.pos = start
			return false
		}
		s.Bump()
	}
}

// Pad is equivalent to Seq(Star(left), main, Star(right)): left and right
// are optional byte-run trims, each present iff hasLeft/hasRight is true.
// If discard is true the reported match is only main's consumption;
// otherwise it is the full padded span. Pad allocates its configuration in
// s's arena and the returned Rule must not be used with a different
// *State.
func Pad(s *State, left, main, right Rule, hasLeft, hasRight, discard bool) Rule {
	key := s.arena.putPad(&padEntry{
		left: left, main: main, right: right,
		hasLeft: hasLeft, hasRight: hasRight,
		discard: discard,
	})
	return Rule{match: matchPad, key: key, kind: KindPad}
}

func matchPad(s *State, r *Rule) bool {
	e := s.arena.pads[r.key]
	start := s.pos
	if e.hasLeft {
		Run(s, Star(e.left))
	}
	mainStart := s.pos
	if !Run(s, e.main) {
		s.pos = start
		return false
	}
	mainEnd := s.pos
	if e.hasRight {
		Run(s, Star(e.right))
	}
	if e.discard {
		s.SetMatch(mainStart, mainEnd, false)
	} else {
		s.SetMatch(start, s.pos, true)
	}
	return true
}
