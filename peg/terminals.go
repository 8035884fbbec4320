// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package peg

// Terminal rules each consume at most one byte unless noted. None of them
// (except IntDecStrict, whose execution lazily caches a compound proxy per
// *State) require parser-owned allocation; they are pure values and may be
// shared read-only across any number of States and goroutines.

// Success always matches and never consumes.
var Success = Rule{match: matchSuccess, kind: KindSuccess}

// Failure never matches.
var Failure = Rule{match: matchFailure, kind: KindFailure}

// EOF matches iff pos == end; it never consumes.
var EOF = Rule{match: matchEOF, kind: KindEOF}

// EOL matches "\r\n" (two bytes) or "\n" (one byte), case sensitively.
var EOL = Rule{match: matchEOL, kind: KindEOL}

// ASCII matches a byte in 0..127.
var ASCII = Rule{match: matchClass(isASCII), kind: KindClass}

// Latin1 matches any byte (0..255); kept for API symmetry with the source.
var Latin1 = Rule{match: matchClass(func(byte) bool { return true }), kind: KindClass}

// Alnum, Alpha, Blank, Cntrl, Digit, Graph, Lower, Print, Punct, Space,
// Upper and XDigit correspond to the POSIX-C single-byte character
// classes of the same name.
var (
	Alnum  = Rule{match: matchClass(isAlnum), kind: KindClass}
	Alpha  = Rule{match: matchClass(isAlpha), kind: KindClass}
	Blank  = Rule{match: matchClass(isBlank), kind: KindClass}
	Cntrl  = Rule{match: matchClass(isCntrl), kind: KindClass}
	Digit  = Rule{match: matchClass(isDigit), kind: KindClass}
	Graph  = Rule{match: matchClass(isGraph), kind: KindClass}
	Lower  = Rule{match: matchClass(isLower), kind: KindClass}
	Print  = Rule{match: matchClass(isPrint), kind: KindClass}
	Punct  = Rule{match: matchClass(isPunct), kind: KindClass}
	Space  = Rule{match: matchClass(isSpace), kind: KindClass}
	Upper  = Rule{match: matchClass(isUpper), kind: KindClass}
	XDigit = Rule{match: matchClass(isXDigit), kind: KindClass}
)

// Digits matches one or more consecutive Digit bytes, consuming the run.
var Digits = Rule{match: matchDigits, kind: KindDigits}

// IntDec matches an optional sign followed by one or more digits,
// consuming up to the last digit. It does not validate the byte after the
// run.
var IntDec = Rule{match: matchIntDec, kind: KindIntDec}

// IntDecStrict is IntDec followed by eof or a byte that is neither a
// letter, an underscore, nor '.'. It fails atomically otherwise.
var IntDecStrict = Rule{match: matchIntDecStrict, kind: KindIntDecStrict}

// Double matches the C decimal floating-point syntax recognized by
// strtod: an optional sign, digits, an optional fractional part, and an
// optional exponent. Unlike strtod it skips no leading whitespace and
// accepts no hexadecimal, "inf" or "nan" forms.
var Double = Rule{match: matchDouble, kind: KindDouble}

// Char matches the next byte iff it equals c, folding ASCII case when
// caseSensitive is false.
func Char(c byte, caseSensitive bool) Rule {
	return Rule{
		match: matchChar,
		data:  ruleData{lo: c, ci: !caseSensitive},
		kind:  KindChar,
	}
}

// OneOf matches the next byte iff it appears in set, folding ASCII case
// when caseSensitive is false.
func OneOf(set string, caseSensitive bool) Rule {
	return Rule{
		match: matchOneOf,
		data:  ruleData{str: set, ci: !caseSensitive},
		kind:  KindOneOf,
	}
}

// Range matches the next byte b iff lo <= b <= hi (endpoints are swapped
// if lo > hi).
func Range(lo, hi byte) Rule {
	if lo > hi {
		lo, hi = hi, lo
	}
	return Rule{
		match: matchRange,
		data:  ruleData{lo: lo, hi: hi},
		kind:  KindRange,
	}
}

// Str matches the next len(str) bytes against str, folding ASCII case
// when caseSensitive is false. It consumes len(str) bytes on success.
func Str(str string, caseSensitive bool) Rule {
	return Rule{
		match: matchStr,
		data:  ruleData{str: str, ci: !caseSensitive},
		kind:  KindStr,
	}
}

func matchSuccess(s *State, r *Rule) bool {
	p := s.pos
	s.SetMatch(p, p, true)
	return true
}

func matchFailure(s *State, r *Rule) bool {
	return false
}

func matchEOF(s *State, r *Rule) bool {
	if !s.EOF() {
		return false
	}
	p := s.pos
	s.SetMatch(p, p, true)
	return true
}

func matchEOL(s *State, r *Rule) bool {
	p := s.pos
	if p < s.end && s.input[p] == '\r' && p+1 < s.end && s.input[p+1] == '\n' {
		s.SetMatch(p, p+2, true)
		return true
	}
	if p < s.end && s.input[p] == '\n' {
		s.SetMatch(p, p+1, true)
		return true
	}
	return false
}

func matchChar(s *State, r *Rule) bool {
	p := s.pos
	if p >= s.end {
		return false
	}
	b := s.input[p]
	want := r.data.lo
	if r.data.ci {
		if asciiFold(b) != asciiFold(want) {
			return false
		}
	} else if b != want {
		return false
	}
	s.SetMatch(p, p+1, true)
	return true
}

func matchOneOf(s *State, r *Rule) bool {
	p := s.pos
	if p >= s.end {
		return false
	}
	b := s.input[p]
	set := r.data.str
	for i := 0; i < len(set); i++ {
		c := set[i]
		if r.data.ci {
			if asciiFold(b) == asciiFold(c) {
				s.SetMatch(p, p+1, true)
				return true
			}
		} else if b == c {
			s.SetMatch(p, p+1, true)
			return true
		}
	}
	return false
}

func matchRange(s *State, r *Rule) bool {
	p := s.pos
	if p >= s.end {
		return false
	}
	b := s.input[p]
	if b < r.data.lo || b > r.data.hi {
		return false
	}
	s.SetMatch(p, p+1, true)
	return true
}

func matchStr(s *State, r *Rule) bool {
	want := r.data.str
	p := s.pos
	if p+len(want) > s.end {
		return false
	}
	got := s.input[p : p+len(want)]
	if r.data.ci {
		for i := 0; i < len(want); i++ {
			if asciiFold(got[i]) != asciiFold(want[i]) {
				return false
			}
		}
	} else {
		for i := 0; i < len(want); i++ {
			if got[i] != want[i] {
				return false
			}
		}
	}
	s.SetMatch(p, p+len(want), true)
	return true
}

func matchClass(pred func(byte) bool) matchFunc {
	return func(s *State, r *Rule) bool {
		p := s.pos
		if p >= s.end {
			return false
		}
		if !pred(s.input[p]) {
			return false
		}
		s.SetMatch(p, p+1, true)
		return true
	}
}

func matchDigits(s *State, r *Rule) bool {
	start := s.pos
	p := start
	for p < s.end && isDigit(s.input[p]) {
		p++
	}
	if p == start {
		return false
	}
	s.SetMatch(start, p, true)
	return true
}

func matchIntDec(s *State, r *Rule) bool {
	start := s.pos
	p := start
	if p < s.end && (s.input[p] == '+' || s.input[p] == '-') {
		p++
	}
	digitsStart := p
	for p < s.end && isDigit(s.input[p]) {
		p++
	}
	if p == digitsStart {
		return false
	}
	s.SetMatch(start, p, true)
	return true
}

func matchIntDecStrict(s *State, r *Rule) bool {
	proxy := s.arena.intDecStrictProxy(s)
	return Run(s, *proxy)
}

// matchDouble implements the subset of C's strtod grammar this package
// promises: [sign] (digits [. [digits]] | . digits) [(e|E) [sign] digits].
// At least one digit must appear before any exponent. Unlike strtod, it
// does not skip leading whitespace and does not accept "inf"/"nan"; this
// rule matches decimal floating-point syntax only, so callers pair it
// with Pad or Blank when leading whitespace needs to be trimmed.
func matchDouble(s *State, r *Rule) bool {
	start := s.pos
	p := start
	if p < s.end && (s.input[p] == '+' || s.input[p] == '-') {
		p++
	}
	intStart := p
	for p < s.end && isDigit(s.input[p]) {
		p++
	}
	hasInt := p > intStart
	hasFrac := false
	if p < s.end && s.input[p] == '.' {
		fracStart := p + 1
		q := fracStart
		for q < s.end && isDigit(s.input[q]) {
			q++
		}
		if q > fracStart {
			hasFrac = true
			p = q
		} else if hasInt {
			// "123." with no fractional digits is still a valid double.
			p = fracStart
			hasFrac = true
		}
	}
	if !hasInt && !hasFrac {
		return false
	}
	if p < s.end && (s.input[p] == 'e' || s.input[p] == 'E') {
		q := p + 1
		if q < s.end && (s.input[q] == '+' || s.input[q] == '-') {
			q++
		}
		expStart := q
		for q < s.end && isDigit(s.input[q]) {
			q++
		}
		if q > expStart {
			p = q
		}
	}
	s.SetMatch(start, p, true)
	return true
}

func asciiFold(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func isASCII(b byte) bool  { return b < 0x80 }
func isUpper(b byte) bool  { return b >= 'A' && b <= 'Z' }
func isLower(b byte) bool  { return b >= 'a' && b <= 'z' }
func isAlpha(b byte) bool  { return isUpper(b) || isLower(b) }
func isDigit(b byte) bool  { return b >= '0' && b <= '9' }
func isAlnum(b byte) bool  { return isAlpha(b) || isDigit(b) }
func isXDigit(b byte) bool { return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F') }
func isBlank(b byte) bool  { return b == ' ' || b == '\t' }
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}
func isCntrl(b byte) bool { return b < 0x20 || b == 0x7f }
func isPrint(b byte) bool { return b >= 0x20 && b < 0x7f }
func isGraph(b byte) bool { return isPrint(b) && b != ' ' }
func isPunct(b byte) bool { return isGraph(b) && !isAlnum(b) }
