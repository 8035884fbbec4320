// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command pegdemo exercises the engine against one line of input at a
// time: a decimal integer, a quoted string, or a key=value pair, each
// parsed inside an OpenTelemetry span and, with -v, logged through the zap
// tracing listener.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"

	"github.com/hucsmn/pegcore/peg"
	"github.com/hucsmn/pegcore/telemetry"
	"github.com/hucsmn/pegcore/tracing/zaplistener"
)

func main() {
	verbose := flag.Bool("v", false, "log every sub-match via zap")
	flag.Parse()

	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "pegdemo: building logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	tp := sdktrace.NewTracerProvider()
	tracer := tp.Tracer("pegdemo")

	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		var opts []peg.Option
		if *verbose {
			opts = append(opts, peg.WithListener(zaplistener.New(log), "line"))
		}
		s := peg.NewStateString(line, opts...)
		rule := lineRule(s)

		_, ok := telemetry.Parse(context.Background(), tracer, "pegdemo.parse", s, rule)
		if !ok {
			perr, has := s.Error()
			if has {
				fmt.Printf("%s: no match: %s\n", line, perr)
			} else {
				fmt.Printf("%s: no match\n", line)
			}
			continue
		}
		fmt.Printf("%s: matched %q (rule=%s)\n", line, s.GetMatch(), rule.Kind())
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "pegdemo: reading stdin:", err)
		os.Exit(1)
	}
}

// lineRule recognizes, in order: a quoted string, a key=value pair, or a
// strict decimal integer, trimming surrounding blanks from the whole line.
func lineRule(s *peg.State) peg.Rule {
	var str string
	quoted := peg.QuotedString(s, '"', '\\', &str)

	key := peg.Plus(peg.Alt(s, peg.Alpha, peg.Char('_', true)))
	kv := peg.Seq(s, key, peg.Char('=', true), peg.Alt(s, quoted, peg.IntDecStrict, peg.Digits))

	body := peg.Alt(s, quoted, kv, peg.IntDecStrict)
	return peg.Pad(s, peg.Blank, body, peg.Blank, true, true, true)
}
