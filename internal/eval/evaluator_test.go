// Copyright (c) 2026 The slidec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package eval

import (
	"testing"

	"github.com/brackenforge/slidec/internal/binder"
	"github.com/brackenforge/slidec/internal/diag"
	"github.com/brackenforge/slidec/internal/intern"
	"github.com/brackenforge/slidec/internal/parser"
	"github.com/brackenforge/slidec/internal/presentation"
	"github.com/brackenforge/slidec/internal/source"
	"github.com/brackenforge/slidec/internal/token"
	"github.com/brackenforge/slidec/internal/types"
)

func run(t *testing.T, src string) (*presentation.Presentation, *Exception) {
	t.Helper()
	files := source.NewFiles()
	id := files.Add("test.slides", src)
	loc := source.Location{File: id, Start: 0, Length: len(src)}
	sink := diag.NewSink(files)
	tokens := token.Lex(loc, files, sink)
	tree := parser.ParseFile(tokens, sink)
	if !sink.IsEmpty() {
		t.Fatalf("unexpected parse diagnostics: %v", sink.All())
	}

	vars := intern.NewVariables()
	syms := intern.NewSymbols()
	interner := types.NewInterner()
	b := binder.New(files, vars, syms, interner, sink)
	statements := b.Bind(tree)
	if !sink.IsEmpty() {
		t.Fatalf("unexpected bind diagnostics: %v", sink.All())
	}

	ev := New(vars, syms, interner)
	return ev.Evaluate(statements)
}

func TestEvaluateSlideAutoAddsDeclaredLabelByVariableName(t *testing.T) {
	pres, exc := run(t, "slide x:\n  let title = label(\"hello\");\n")
	if exc != nil {
		t.Fatalf("unexpected exception: %v", exc)
	}
	if len(pres.Slides) != 1 {
		t.Fatalf("want 1 slide, got %d", len(pres.Slides))
	}
	slide := pres.Slides[0]
	if len(slide.Elements) != 1 {
		t.Fatalf("want 1 element, got %d", len(slide.Elements))
	}
	el := slide.Elements[0]
	if el.Kind != presentation.KindLabel {
		t.Fatalf("want a Label element, got %v", el.Kind)
	}
	if el.ID != "title" {
		t.Fatalf("want element id %q, got %q", "title", el.ID)
	}
	if el.Label.Text != "hello" {
		t.Fatalf("want label text %q, got %q", "hello", el.Label.Text)
	}
}

func TestEvaluateBareElementCallAutoAddsUnderGeneratedID(t *testing.T) {
	src := "element card(title: String):\n" +
		"  let t = label(title);\n" +
		"  t.text_color = rgb(255, 255, 255);\n" +
		"slide x:\n" +
		"  card(\"hello\");\n"
	pres, exc := run(t, src)
	if exc != nil {
		t.Fatalf("unexpected exception: %v", exc)
	}
	if len(pres.Slides) != 1 {
		t.Fatalf("want 1 slide, got %d", len(pres.Slides))
	}
	slide := pres.Slides[0]
	if len(slide.Elements) != 1 {
		t.Fatalf("want 1 element, got %d", len(slide.Elements))
	}
	el := slide.Elements[0]
	if el.ID != "e0" {
		t.Fatalf("want generated id %q, got %q", "e0", el.ID)
	}
	if el.Kind != presentation.KindLabel {
		t.Fatalf("want a Label element, got %v", el.Kind)
	}
	if el.Label.Text != "hello" {
		t.Fatalf("want label text %q, got %q", "hello", el.Label.Text)
	}
	if !el.Label.Styling.HasTextColor() {
		t.Fatal("want text_color assigned inside the element body to survive into the returned Label")
	}
}

func TestEvaluateRGBAndBrightnessBuiltins(t *testing.T) {
	pres, exc := run(t, "let c = rgb(10, 20, 30);\nlet f = brightness(1);\n")
	if exc != nil {
		t.Fatalf("unexpected exception: %v", exc)
	}
	_ = pres
}

func TestEvaluateStylingRegistersDefAndStyleReference(t *testing.T) {
	src := "styling Bold(Label):\n  let c = text_color;\n"
	pres, exc := run(t, src)
	if exc != nil {
		t.Fatalf("unexpected exception: %v", exc)
	}
	if len(pres.Stylings) != 1 {
		t.Fatalf("want 1 registered styling, got %d", len(pres.Stylings))
	}
	if pres.Stylings[0].Name != "Bold" {
		t.Fatalf("want styling name %q, got %q", "Bold", pres.Stylings[0].Name)
	}
	if pres.Stylings[0].Kind != presentation.KindLabel {
		t.Fatalf("want KindLabel, got %v", pres.Stylings[0].Kind)
	}
}

func TestEvaluateMemberAssignmentRoundTrip(t *testing.T) {
	src := "slide x:\n" +
		"  let box = label(\"hi\");\n" +
		"  box.text_color = rgb(1, 2, 3);\n"
	pres, exc := run(t, src)
	if exc != nil {
		t.Fatalf("unexpected exception: %v", exc)
	}
	el := pres.Slides[0].Elements[0]
	if !el.Label.Styling.HasTextColor() {
		t.Fatal("want text_color to have been written onto the same label handle")
	}
	if el.Label.Styling.TextColor.CSS != "rgb(1, 2, 3)" {
		t.Fatalf("want CSS %q, got %q", "rgb(1, 2, 3)", el.Label.Styling.TextColor.CSS)
	}
}

func TestEvaluateEnumMemberAccess(t *testing.T) {
	src := "slide x:\n" +
		"  let pic = image(p\"logo.png\");\n" +
		"  pic.object_fit = ObjectFit.contain;\n"
	pres, exc := run(t, src)
	if exc != nil {
		t.Fatalf("unexpected exception: %v", exc)
	}
	el := pres.Slides[0].Elements[0]
	if el.Image.Styling.ObjectFit != presentation.ObjectFitContain {
		t.Fatalf("want ObjectFitContain, got %v", el.Image.Styling.ObjectFit)
	}
}

func TestEvaluateArrayIndexOutOfRangeRaisesException(t *testing.T) {
	src := "let xs = [1, 2];\nlet y = xs[5];\n"
	_, exc := run(t, src)
	if exc == nil {
		t.Fatal("want an exception for an out-of-range array index")
	}
}
