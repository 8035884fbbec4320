// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package peg

// matchFunc is the function a Rule dispatches to. It reports whether the
// rule matched; on true it must have called s.SetMatch for the consumed
// span (possibly empty). On false it must leave s.pos untouched.
type matchFunc func(s *State, r *Rule) bool

// Kind identifies which family a Rule belongs to, for introspection by
// tracing sinks that want to label spans or log fields without a type
// switch at every call site.
type Kind int

const (
	KindInvalid Kind = iota
	KindSuccess
	KindFailure
	KindEOF
	KindEOL
	KindChar
	KindOneOf
	KindRange
	KindStr
	KindClass
	KindDigits
	KindIntDec
	KindIntDecStrict
	KindDouble
	KindSeq
	KindAlt
	KindStar
	KindPlus
	KindOpt
	KindRepeat
	KindAt
	KindNotAt
	KindUntil
	KindPad
	KindAction
	KindQuotedString
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindFailure:
		return "failure"
	case KindEOF:
		return "eof"
	case KindEOL:
		return "eol"
	case KindChar:
		return "char"
	case KindOneOf:
		return "oneof"
	case KindRange:
		return "range"
	case KindStr:
		return "string"
	case KindClass:
		return "class"
	case KindDigits:
		return "digits"
	case KindIntDec:
		return "int_dec"
	case KindIntDecStrict:
		return "int_dec_strict"
	case KindDouble:
		return "double"
	case KindSeq:
		return "seq"
	case KindAlt:
		return "alt"
	case KindStar:
		return "star"
	case KindPlus:
		return "plus"
	case KindOpt:
		return "opt"
	case KindRepeat:
		return "repeat"
	case KindAt:
		return "at"
	case KindNotAt:
		return "notat"
	case KindUntil:
		return "until"
	case KindPad:
		return "pad"
	case KindAction:
		return "action"
	case KindQuotedString:
		return "quoted_string"
	default:
		return "invalid"
	}
}

// ruleKey is an opaque identity token a *State issues to a Rule that needs
// per-parser storage (an n-ary child list, an action descriptor, a
// quoted-string unescape cache). It has no meaning outside the arena of the
// *State that issued it.
type ruleKey uint64

// ruleData is the opaque payload understood only by a Rule's matchFunc:
// literal bytes for string/set matches, or a byte range for Range.
// Combinators with richer per-rule state (children, a callback, Pad and
// Repeat parameters, mutable cache) keep it in the owning *State's arena
// instead, indexed by key.
type ruleData struct {
	str    string
	lo, hi byte
	ci     bool
	min    int
	max    int
}

// Rule is a small first-class value carrying a matcher function, an opaque
// payload, an optional proxy (inner) rule, an optional client tag, and an
// opaque key used to look up per-rule auxiliary data in a parser's arenas.
//
// Rules from the no-allocation constructors (Char, Str, Range, OneOf, the
// class terminals) are plain data: they carry a zero key, never touch an
// arena, and may be shared read-only across any number of *State values and
// goroutines. Rules from allocating constructors (Seq, Alt, Repeat, Action,
// Pad, QuotedString) carry a key minted by, and arena entries owned by, the
// *State that built them; using such a rule with a different *State is a
// programming error this package does not guard against at run time,
// matching the surrounding rule's own don't-defend-every-call-site stance.
type Rule struct {
	match matchFunc
	data  ruleData
	proxy *Rule
	key   ruleKey
	kind  Kind

	// Tag is reserved for consumer use; the engine never inspects it.
	Tag interface{}
}

// Kind reports which rule family r belongs to.
func (r Rule) Kind() Kind {
	return r.kind
}

// Invalid is the zero-value-equivalent rule returned by constructors given
// illegal arguments: every field is the type's zero value except match,
// which is wired to the always-failing matcher so an Invalid rule is safe
// to run (it just never matches) rather than crashing.
var Invalid = Rule{match: matchFailure, kind: KindInvalid}

// Run executes r against s: Run(s, r) == r.match(s, &r).
func Run(s *State, r Rule) bool {
	return r.match(s, &r)
}
