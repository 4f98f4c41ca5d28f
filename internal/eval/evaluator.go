// Copyright (c) 2026 The slidec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package eval

import (
	"os"

	"github.com/brackenforge/slidec/internal/bound"
	"github.com/brackenforge/slidec/internal/eval/value"
	"github.com/brackenforge/slidec/internal/presentation"
	"github.com/brackenforge/slidec/internal/source"
)

// Evaluate walks statements in order, mirroring
// create_presentation_from_ast: it stops at the first statement that raises
// an exception and returns it alongside whatever presentation was built so
// far (spec.md §7 — a runtime exception halts the program, it does not
// unwind it).
func (e *Evaluator) Evaluate(statements []*bound.Node) (*presentation.Presentation, *Exception) {
	e.presentation = presentation.New()
	for _, stmt := range statements {
		e.evaluateStatement(stmt)
		if e.failed() {
			break
		}
	}
	return e.presentation, e.exception
}

// evaluateStatement is the single dispatch point for every bound statement
// kind, used both for the top-level statement list and for every nested
// slide/styling/element/template body (the parser admits fewer statement
// kinds at top level than in a body, but each kind evaluates the same way
// wherever it appears).
func (e *Evaluator) evaluateStatement(n *bound.Node) {
	if e.failed() || n == nil || n.Kind == bound.KindError {
		return
	}
	switch n.Kind {
	case bound.KindGlobal:
		v := e.evaluateExpression(n.Glob.Value)
		if e.failed() {
			return
		}
		e.global().declare(n.Glob.Variable, v)
	case bound.KindVariableDeclaration:
		v := e.evaluateExpression(n.VarDecl.Value)
		if e.failed() {
			return
		}
		e.declare(n.VarDecl.Variable, v)
	case bound.KindAssignmentStatement:
		e.evaluateAssignment(n.Assignment)
	case bound.KindStylingStatement:
		e.evaluateStylingStatement(n.Styling)
	case bound.KindSlideStatement:
		e.evaluateSlideStatement(n.Slide)
	case bound.KindElementStatement:
		e.current().declare(n.Element.Name, value.Value{
			Kind: value.KindUserFunction,
			Function: &value.UserFunction{
				Parameters:                n.Element.Parameters,
				Body:                      n.Element.Body,
				ReturnType:                e.types.Element(),
				HasImplicitSlideParameter: false,
			},
		})
	case bound.KindTemplateStatement:
		e.current().declare(n.Template.Name, value.Value{
			Kind: value.KindUserFunction,
			Function: &value.UserFunction{
				Parameters:                n.Template.Parameters,
				Body:                      n.Template.Body,
				ReturnType:                e.types.Element(),
				HasImplicitSlideParameter: true,
			},
		})
	case bound.KindImportStatement:
		e.evaluateImportStatement(n.Import)
	default:
		// A bare expression used as a statement (ExpressionStmt forces
		// Type to Void but leaves Kind as the wrapped expression's own
		// kind). A composite result with no declaring variable is still
		// added to the active slide under a generated id (spec.md §6).
		v := e.evaluateExpression(n)
		if e.failed() {
			return
		}
		e.maybeAutoAddElement(v)
	}
}

// evaluateImportStatement either records path as a copied asset (no
// recognised placement) or reads it and appends its text at the resolved
// placement. The binder resolved that placement from the path's extension
// chain (only `*.head.html` is recognised) or from the import's type name
// (HtmlHead, JavascriptInit, JavascriptSlideChange).
func (e *Evaluator) evaluateImportStatement(s *bound.ImportStatement) {
	if s.Placement == bound.PlacementUnknown {
		e.presentation.AddCopiedFile(s.Path)
		return
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		e.raise(source.Location{}, "cannot read imported file %q: %v", s.Path, err)
		return
	}
	e.presentation.AddExternText(presentation.Placement(s.Placement), s.Path, string(data))
}
