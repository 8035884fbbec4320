// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package peg

// Action runs inner. On success it records the match region inner reported
// (for a discarding Pad, only main's consumption), or the consumed span
// when inner reported none, then invokes
// callback(s, userData); the callback may read s.GetMatch() and
// s.GetMatchCursor(). On failure it restores pos and never invokes
// callback. Action allocates its (callback, userData) descriptor in s's
// arena and the returned Rule must not be used with a different *State.
func Action(s *State, inner Rule, callback ActionFunc, userData interface{}) Rule {
	key := s.arena.putAction(&actionEntry{inner: inner, callback: callback, userData: userData})
	return Rule{match: matchAction, key: key, kind: KindAction}
}

func matchAction(s *State, r *Rule) bool {
	e := s.arena.actions[r.key]
	start := s.pos
	if !Run(s, e.inner) {
		s.pos = start
		return false
	}
	b, end := start, s.pos
	if c, ok := s.GetMatchCursor(); ok && c.Begin >= start && c.Pos <= s.pos {
		b, end = c.Begin, c.Pos
	}
	s.SetMatch(b, end, false)
	if e.callback != nil {
		e.callback(s, e.userData)
	}
	return true
}

// cEscapes maps the small fixed set of C-style escapes QuotedString
// recognizes when escape == '\\'.
var cEscapes = map[byte]byte{
	'n': '\n', 't': '\t', 'r': '\r', 'a': '\a', 'b': '\b',
	'f': '\f', 'v': '\v', '0': 0, '\\': '\\',
}

// QuotedString matches a quote-delimited run in which occurrences of
// escape escape the next byte; when escape == '\\' it also recognizes the
// small fixed set of C-style escapes in cEscapes. As an extension beyond
// the source this ports, escape == quote is supported as SQL-style
// doubled-quote escaping (e.g. 'it''s' unescapes to it's).
//
// On success, if outSlot is non-nil, the unescaped copy is written to
// *outSlot, replacing whatever was written there by a previous match of
// this same Rule value. The cache, and thus the previously written string,
// is owned by s's arena and freed when s is no longer referenced.
// QuotedString allocates in s's arena and the returned Rule must not be
// used with a different *State.
func QuotedString(s *State, quote, escape byte, outSlot *string) Rule {
	key := s.arena.putQuoted(&quotedEntry{quote: quote, escape: escape, outSlot: outSlot})
	return Rule{match: matchQuotedString, key: key, kind: KindQuotedString}
}

func matchQuotedString(s *State, r *Rule) bool {
	e := s.arena.quoted[r.key]
	start := s.pos
	if start >= s.end || s.input[start] != e.quote {
		return false
	}
	p := start + 1
	var unescaped []byte
	if e.outSlot != nil {
		unescaped = make([]byte, 0, 16)
	}
	doubledQuote := e.escape == e.quote
	for {
		if p >= s.end {
			s.pos = start
			return false
		}
		b := s.input[p]
		if doubledQuote && b == e.quote {
			if p+1 < s.end && s.input[p+1] == e.quote {
				if unescaped != nil {
					unescaped = append(unescaped, e.quote)
				}
				p += 2
				continue
			}
			p++
			break
		}
		if !doubledQuote && b == e.escape && p+1 < s.end {
			next := s.input[p+1]
			if unescaped != nil {
				if e.escape == '\\' {
					if mapped, ok := cEscapes[next]; ok {
						unescaped = append(unescaped, mapped)
					} else {
						unescaped = append(unescaped, next)
					}
				} else {
					unescaped = append(unescaped, next)
				}
			}
			p += 2
			continue
		}
		if b == e.quote {
			p++
			break
		}
		if unescaped != nil {
			unescaped = append(unescaped, b)
		}
		p++
	}
	s.SetMatch(start, p, true)
	if e.outSlot != nil {
		e.cached = string(unescaped)
		*e.outSlot = e.cached
	}
	return true
}
