// Copyright (c) 2026 The slidec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package binder

import (
	"strings"
	"testing"

	"github.com/brackenforge/slidec/internal/bound"
	"github.com/brackenforge/slidec/internal/diag"
	"github.com/brackenforge/slidec/internal/intern"
	"github.com/brackenforge/slidec/internal/parser"
	"github.com/brackenforge/slidec/internal/source"
	"github.com/brackenforge/slidec/internal/token"
	"github.com/brackenforge/slidec/internal/types"
)

func bind(t *testing.T, src string) ([]*bound.Node, *diag.Sink, *Binder) {
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
	b := New(files, vars, syms, interner, sink)
	return b.Bind(tree), sink, b
}

func TestBindVariableDeclarationInfersType(t *testing.T) {
	statements, sink, _ := bind(t, "let x = 1;\n")
	if !sink.IsEmpty() {
		t.Fatalf("unexpected diagnostics: %v", sink.All())
	}
	if len(statements) != 1 {
		t.Fatalf("want 1 statement, got %d", len(statements))
	}
	decl := statements[0]
	if decl.Kind != bound.KindVariableDeclaration {
		t.Fatalf("want VariableDeclaration, got %v", decl.Kind)
	}
	if decl.VarDecl.Value.Type != types.Integer {
		t.Fatalf("want Integer, got %v", decl.VarDecl.Value.Type)
	}
}

func TestBindUnknownVariableReportsDiagnostic(t *testing.T) {
	_, sink, _ := bind(t, "let x = y;\n")
	if sink.IsEmpty() {
		t.Fatal("want a diagnostic for the unknown variable")
	}
}

func TestBindImplicitIntegerToFloatConversion(t *testing.T) {
	statements, sink, b := bind(t, "let x = brightness(1);\n")
	if !sink.IsEmpty() {
		t.Fatalf("unexpected diagnostics: %v", sink.All())
	}
	call := statements[0].VarDecl.Value
	if call.Kind != bound.KindFunctionCall {
		t.Fatalf("want FunctionCall, got %v", call.Kind)
	}
	arg := call.Call.Arguments[0]
	if arg.Kind != bound.KindConversion {
		t.Fatalf("want an inserted Conversion wrapping the integer literal, got %v", arg.Kind)
	}
	if arg.Type != b.types.Filter() && arg.Type != types.Float {
		t.Fatalf("want the conversion to target Float, got %v", b.types.Describe(arg.Type))
	}
}

func TestBindStylingRegistersBackgroundAndTextColor(t *testing.T) {
	statements, sink, _ := bind(t, "styling Bold(Label):\n  let c = text_color;\n")
	if !sink.IsEmpty() {
		t.Fatalf("unexpected diagnostics: %v", sink.All())
	}
	styling := statements[0].Styling
	if styling.Kind != bound.StylingLabel {
		t.Fatalf("want StylingLabel, got %v", styling.Kind)
	}
	decl := styling.Body[0].VarDecl
	if decl == nil {
		t.Fatalf("want a VariableDeclaration body statement, got %v", statements[0].Styling.Body[0].Kind)
	}
}

func TestBindSlidePreRegistersBackground(t *testing.T) {
	statements, sink, _ := bind(t, "slide Intro:\n  let bg = background;\n")
	if !sink.IsEmpty() {
		t.Fatalf("unexpected diagnostics: %v", sink.All())
	}
	slide := statements[0].Slide
	decl := slide.Body[0].VarDecl
	if decl == nil {
		t.Fatal("want background to resolve inside a slide body")
	}
}

func TestBindUnexpectedStylingTypeReportsDiagnostic(t *testing.T) {
	_, sink, _ := bind(t, "styling Bad(Grid):\n  let x = 1;\n")
	if sink.IsEmpty() {
		t.Fatal("want a diagnostic for a styling type that cannot be styled")
	}
}

func TestBindElementRegistersFunctionType(t *testing.T) {
	statements, sink, b := bind(t, "element Box(color: Color = c\"red\"):\n  let x = 1;\n")
	if !sink.IsEmpty() {
		t.Fatalf("unexpected diagnostics: %v", sink.All())
	}
	elem := statements[0].Element
	if len(elem.Parameters) != 1 {
		t.Fatalf("want 1 parameter, got %d", len(elem.Parameters))
	}
	if elem.Parameters[0].Type != b.types.Color() {
		t.Fatalf("want parameter typed Color, got %v", b.types.Describe(elem.Parameters[0].Type))
	}
	if statements[0].Type != types.Error && b.types.Resolve(statements[0].Type).Kind != types.KindFunction {
		t.Fatalf("want the element name bound to a Function type, got %v", b.types.Describe(statements[0].Type))
	}
}

func TestBindRedeclarationReportsPreviousLocation(t *testing.T) {
	_, sink, _ := bind(t, "let x = 1;\nlet x = 2;\n")
	if sink.IsEmpty() {
		t.Fatal("want a redeclaration diagnostic")
	}
	if msg := sink.All()[0].Message; !strings.Contains(msg, "previously declared at test.slides:1") {
		t.Fatalf("want the diagnostic to name the previous location, got %q", msg)
	}
}

func TestBindMemberAccessOnLabel(t *testing.T) {
	statements, sink, b := bind(t, "let box = label(\"hi\");\nlet c = box.text_color;\n")
	if !sink.IsEmpty() {
		t.Fatalf("unexpected diagnostics: %v", sink.All())
	}
	member := statements[1].VarDecl.Value
	if member.Kind != bound.KindMemberAccess {
		t.Fatalf("want MemberAccess, got %v", member.Kind)
	}
	if member.Type != b.types.Color() {
		t.Fatalf("want Color, got %v", b.types.Describe(member.Type))
	}
}

func TestBindUnknownMemberReportsDiagnostic(t *testing.T) {
	_, sink, _ := bind(t, "let box = label(\"hi\");\nlet c = box.nonsense;\n")
	if sink.IsEmpty() {
		t.Fatal("want a diagnostic for an unknown member")
	}
}
