// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package peg

// ActionFunc is the callback protocol of an Action rule: invoked after the
// wrapped rule has matched and the match region has been recorded. It may
// call s.GetMatch, s.GetMatchCursor, s.Pos, and read/write userData.
type ActionFunc func(s *State, userData interface{})

type actionEntry struct {
	inner    Rule
	callback ActionFunc
	userData interface{}
}

type padEntry struct {
	left, main, right Rule
	hasLeft, hasRight bool
	discard           bool
}

type repeatEntry struct {
	child    Rule
	min, max int
}

type quotedEntry struct {
	quote, escape byte
	outSlot       *string
	cached        string
}

// arena is the per-*State storage for dynamically built sub-rules and
// auxiliary per-rule data: action descriptors, child lists for Seq/Alt,
// Pad/Repeat configuration blocks, and the QuotedString unescape cache.
// Every entry is reachable from exactly one arena; discarding the owning
// *State discards all of it. Go's garbage collector owns the lifetime
// here, so there is no destructor list to run in reverse order.
type arena struct {
	nextKey ruleKey

	children map[ruleKey][]Rule
	actions  map[ruleKey]*actionEntry
	pads     map[ruleKey]*padEntry
	repeats  map[ruleKey]*repeatEntry
	quoted   map[ruleKey]*quotedEntry

	intDecStrict *Rule
}

func (a *arena) newKey() ruleKey {
	a.nextKey++
	return a.nextKey
}

func (a *arena) putChildren(list []Rule) ruleKey {
	k := a.newKey()
	if a.children == nil {
		a.children = make(map[ruleKey][]Rule)
	}
	a.children[k] = list
	return k
}

func (a *arena) putAction(e *actionEntry) ruleKey {
	k := a.newKey()
	if a.actions == nil {
		a.actions = make(map[ruleKey]*actionEntry)
	}
	a.actions[k] = e
	return k
}

func (a *arena) putPad(e *padEntry) ruleKey {
	k := a.newKey()
	if a.pads == nil {
		a.pads = make(map[ruleKey]*padEntry)
	}
	a.pads[k] = e
	return k
}

func (a *arena) putRepeat(e *repeatEntry) ruleKey {
	k := a.newKey()
	if a.repeats == nil {
		a.repeats = make(map[ruleKey]*repeatEntry)
	}
	a.repeats[k] = e
	return k
}

func (a *arena) putQuoted(e *quotedEntry) ruleKey {
	k := a.newKey()
	if a.quoted == nil {
		a.quoted = make(map[ruleKey]*quotedEntry)
	}
	a.quoted[k] = e
	return k
}

// intDecStrictProxy lazily builds, and atomically installs, the compound
// rule IntDecStrict delegates to: IntDec followed by a not-predicate
// rejecting a trailing identifier/float continuation byte. The build
// happens entirely in a local variable; only a fully constructed Rule is
// ever assigned to a.intDecStrict, so a panic or early return during
// construction can never leave a partially-installed entry visible to a
// later call, unlike the source's cache-after-build ordering named in the
// design notes.
func (a *arena) intDecStrictProxy(s *State) *Rule {
	if a.intDecStrict != nil {
		return a.intDecStrict
	}
	tail := Rule{match: matchIdentContinuation, kind: KindClass}
	built := Seq(s, IntDec, NotAt(tail))
	a.intDecStrict = &built
	return a.intDecStrict
}

func matchIdentContinuation(s *State, r *Rule) bool {
	if s.EOF() {
		return false
	}
	b := s.input[s.pos]
	if !(isAlpha(b) || b == '_' || b == '.') {
		return false
	}
	s.SetMatch(s.pos, s.pos+1, true)
	return true
}
