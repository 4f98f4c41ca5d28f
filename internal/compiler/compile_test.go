// Copyright (c) 2026 The slidec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package compiler

import (
	"testing"

	"github.com/brackenforge/slidec/internal/source"
)

func compile(t *testing.T, src string, dbg DebugLang) Result {
	t.Helper()
	files := source.NewFiles()
	id := files.Add("test.slides", src)
	res, err := Compile(files, id, dbg)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	return res
}

func TestCompileValidSourceProducesPresentation(t *testing.T) {
	res := compile(t, "slide x:\n  let title = label(\"hello\");\n", DebugLang{})
	if len(res.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", res.Diagnostics)
	}
	if res.Presentation == nil {
		t.Fatal("want a Presentation")
	}
	if res.Exception != nil {
		t.Fatalf("unexpected exception: %v", res.Exception)
	}
}

func TestCompileLexErrorStopsBeforeParsing(t *testing.T) {
	res := compile(t, "slide x:\n  let y = `\n", DebugLang{})
	if len(res.Diagnostics) == 0 {
		t.Fatal("want at least one diagnostic")
	}
	if res.Presentation != nil {
		t.Fatal("want no Presentation once lexing fails")
	}
}

func TestCompileBindErrorSuppressesEvaluation(t *testing.T) {
	res := compile(t, "slide x:\n  let y = undeclaredVariable;\n", DebugLang{})
	if len(res.Diagnostics) == 0 {
		t.Fatal("want a diagnostic for the unknown variable")
	}
	if res.Presentation != nil {
		t.Fatal("want evaluation to be skipped once binding reports a diagnostic")
	}
}

func TestCompileDebugTokensAndBinderDumpsArePopulated(t *testing.T) {
	res := compile(t, "slide x:\n  let title = label(\"hello\");\n", DebugLang{Tokens: true, Binder: true})
	if len(res.Debug.Tokens) == 0 {
		t.Fatal("want --dbg tokens to populate Debug.Tokens")
	}
	if res.Debug.Bound == "" {
		t.Fatal("want --dbg bind to populate Debug.Bound")
	}
}

func TestParseDebugFlagsAcceptsShortAndLongAliases(t *testing.T) {
	d := ParseDebugFlags([]string{"t", "parse", "bind", "pres"})
	if !d.Tokens || !d.Parser || !d.Binder || !d.Presentation {
		t.Fatalf("want every stage enabled, got %+v", d)
	}
}

func TestParseDebugFlagsIgnoresUnknownNames(t *testing.T) {
	d := ParseDebugFlags([]string{"nonsense"})
	if d.Tokens || d.Parser || d.Binder || d.Presentation {
		t.Fatalf("want no stage enabled for an unknown flag, got %+v", d)
	}
}
