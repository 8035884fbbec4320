// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package peg

import (
	"fmt"

	"golang.org/x/xerrors"
)

// ErrorCode is a consumer-supplied integer tag attached to a ParseError.
// The engine never inspects it; it is carried purely for the consumer's own
// dispatch (e.g. distinguishing a lexical error from a semantic one).
type ErrorCode int

// ParseError is the error state a *State can carry. At most one ParseError
// is current at a time; setting a new one discards the previous.
type ParseError struct {
	Message string
	Line    int // 1-based
	Col     int // 0-based
	Code    ErrorCode

	wrapped error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Message)
}

// Unwrap exposes the underlying cause, if SetError was given one via
// SetErrorCause, so that xerrors.Is/As and the standard errors.Is/As keep
// working across the chain.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.wrapped
}

// errInvalidArgument is returned (wrapped) by constructors that received
// out-of-contract arguments, e.g. Repeat with max < min.
var errInvalidArgument = xerrors.New("peg: invalid constructor argument")

// wrapf builds a chained error message the way the engine's constructors
// report argument mistakes, keeping a %w-wrapped cause so callers can
// xerrors.Is(err, errInvalidArgument).
func wrapf(cause error, format string, args ...interface{}) error {
	return xerrors.Errorf(format+": %w", append(args, cause)...)
}
