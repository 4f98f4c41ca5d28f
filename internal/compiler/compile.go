// Copyright (c) 2026 The slidec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

// Package compiler wires the lexer, parser, binder and evaluator into the
// single Compile entry point spec.md §2's data flow describes: source text
// in, either a rendered Presentation or a set of located diagnostics out.
// Diagnostics from any stage gate evaluation: a file that fails to lex or
// parse or bind is never handed to the evaluator (spec.md §7).
package compiler

import (
	"fmt"

	"github.com/brackenforge/slidec/internal/binder"
	"github.com/brackenforge/slidec/internal/diag"
	"github.com/brackenforge/slidec/internal/eval"
	"github.com/brackenforge/slidec/internal/intern"
	"github.com/brackenforge/slidec/internal/parser"
	"github.com/brackenforge/slidec/internal/presentation"
	"github.com/brackenforge/slidec/internal/source"
	"github.com/brackenforge/slidec/internal/token"
	"github.com/brackenforge/slidec/internal/types"
)

// DebugLang selects which stage's internal state Compile reports back to
// the caller, independent of whether compilation succeeds. A CLI exposes
// this as a comma list of stage names (see ParseDebugFlags).
type DebugLang struct {
	Tokens       bool
	Parser       bool
	Binder       bool
	Presentation bool
}

// ParseDebugFlags turns a comma-separated --dbg argument into a DebugLang,
// accepting both the long stage name and its short alias.
func ParseDebugFlags(flags []string) DebugLang {
	var d DebugLang
	for _, f := range flags {
		switch f {
		case "t", "tok", "token", "tokens":
			d.Tokens = true
		case "p", "par", "parse", "parser":
			d.Parser = true
		case "b", "bin", "bind", "binder":
			d.Binder = true
		case "pres", "presentation":
			d.Presentation = true
		}
	}
	return d
}

// Result is everything one call to Compile produced: a Presentation ready
// to emit (nil if diagnostics stopped compilation before evaluation; if
// evaluation raised an exception, the presentation built up to that point,
// with Exception set), the accumulated diagnostics, and whatever Debug
// dumps the caller asked for via DebugLang.
type Result struct {
	Presentation *presentation.Presentation
	Diagnostics  []diag.Diagnostic
	Exception    *eval.Exception
	Debug        Debug
}

// Debug carries the intermediate stage dumps DebugLang requested. Any field
// left unrequested stays at its zero value.
type Debug struct {
	Tokens []token.Token
	Bound  string
}

// Compile runs name's content through lex, parse, bind and evaluate in
// sequence, stopping at the first stage that reports a diagnostic (spec.md
// §7: "diagnostics from any stage suppress evaluation"). A panic carrying
// an internalError (raised through Fail) is recovered here and returned as
// err rather than crashing the caller; any other panic is re-raised.
func Compile(files *source.Files, id source.FileId, dbg DebugLang) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			if ie, ok := r.(internalError); ok {
				err = fmt.Errorf("compiler: internal error: %s", string(ie))
				return
			}
			panic(r)
		}
	}()

	f := files.Get(id)
	loc := source.Location{File: id, Start: 0, Length: len(f.Content)}
	sink := diag.NewSink(files)

	tokens := token.Lex(loc, files, sink)
	if dbg.Tokens {
		res.Debug.Tokens = tokens
	}
	if !sink.IsEmpty() {
		res.Diagnostics = sink.All()
		return res, nil
	}

	tree := parser.ParseFile(tokens, sink)
	if !sink.IsEmpty() {
		res.Diagnostics = sink.All()
		return res, nil
	}

	vars := intern.NewVariables()
	syms := intern.NewSymbols()
	interner := types.NewInterner()
	b := binder.New(files, vars, syms, interner, sink)
	statements := b.Bind(tree)
	if dbg.Binder {
		res.Debug.Bound = describeBound(statements)
	}
	if !sink.IsEmpty() {
		res.Diagnostics = sink.All()
		return res, nil
	}

	ev := eval.New(vars, syms, interner)
	pres, exc := ev.Evaluate(statements)
	res.Presentation = pres
	res.Exception = exc
	return res, nil
}

// internalError marks a panic Compile recovers from and returns as an
// error instead of propagating, rather than a genuine toolchain bug that
// should crash the process.
type internalError string

// Fail panics with msg as an internalError, the single point every stage
// should go through to report an invariant violation it cannot recover
// from locally (an Error-kind type reaching evaluation, an unreachable
// switch arm). Ordinary user-facing mistakes are reported through the
// diag.Sink instead; this is reserved for bugs in the compiler itself.
func Fail(format string, args ...any) {
	panic(internalError(fmt.Sprintf(format, args...)))
}
