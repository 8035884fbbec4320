// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tracing and its listener subpackages adapt peg.Listener, the
// engine's plain match-observer callback, onto five third-party logging
// backends. Each subpackage is independent and pulls in only the backend it
// targets; import the one that matches your logger, not this package
// itself (it carries no code of its own, only the shared doc comment).
//
// A peg.Listener receives the *peg.State at the moment of a successful
// match and the userData value that was passed to WithListener or
// AddListener; every adapter here logs a non-nil userData as the rule's own
// label (a string, typically) under the "rule" key. The zap and zerolog
// adapters log it as a string formatted with fmt's "%v"; the logrus, logr
// and go-kit adapters pass the value through unchanged.
package tracing
