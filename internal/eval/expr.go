// Copyright (c) 2026 The slidec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package eval

import (
	"github.com/brackenforge/slidec/internal/bound"
	"github.com/brackenforge/slidec/internal/eval/value"
	"github.com/brackenforge/slidec/internal/presentation"
	"github.com/brackenforge/slidec/internal/source"
	"github.com/brackenforge/slidec/internal/types"
)

// evaluateExpression is the single dispatch point for every bound
// expression kind, mirroring evaluate_expression in
// original_source/slides-lang/src/compiler/evaluator/slide.rs.
func (e *Evaluator) evaluateExpression(n *bound.Node) value.Value {
	if e.failed() || n == nil || n.Kind == bound.KindError {
		return value.Void
	}
	switch n.Kind {
	case bound.KindLiteral:
		return evaluateLiteral(n.Lit)
	case bound.KindFormatString:
		// Interpolation semantics are undecided (spec.md §9); the text is
		// carried through as-is, same as at bind time.
		return value.Value{Kind: value.KindString, Str: n.FormatStr.Text}
	case bound.KindVariableReference:
		v, ok := e.lookup(n.VarRef.Variable)
		if !ok {
			e.raise(n.Location, "unbound variable %q", e.vars.Name(n.VarRef.Variable))
			return value.Void
		}
		return v
	case bound.KindFunctionCall:
		return e.evaluateFunctionCall(n)
	case bound.KindMemberAccess:
		return e.evaluateMemberAccess(n.Member, n.Location)
	case bound.KindConversion:
		return e.evaluateConversion(n.Conv, n.Type)
	case bound.KindDict:
		return value.Value{Kind: value.KindDict, Dict: e.evaluateDict(n.DictEntries)}
	case bound.KindArray:
		elems := make(value.Array, len(n.ArrayElems))
		for i, el := range n.ArrayElems {
			elems[i] = e.evaluateExpression(el)
			if e.failed() {
				return value.Void
			}
		}
		return value.Value{Kind: value.KindArray, Array: elems}
	case bound.KindPostInitialization:
		return e.evaluatePostInitialization(n.PostInit)
	case bound.KindArrayAccess:
		return e.evaluateArrayAccess(n.ArrAccess, n.Location)
	case bound.KindBinary:
		// spec.md §9 leaves arithmetic/logical semantics undecided, and
		// original_source has no evaluator case for Binary either.
		e.raise(n.Location, "binary expressions have no defined evaluation")
		return value.Void
	default:
		return value.Void
	}
}

func evaluateLiteral(l *bound.Literal) value.Value {
	switch l.Kind {
	case bound.LiteralFloat:
		return value.Value{Kind: value.KindFloat, Float: l.Float}
	case bound.LiteralInteger:
		return value.Value{Kind: value.KindInteger, Integer: l.Integer}
	case bound.LiteralStyleUnit:
		return value.Value{Kind: value.KindStyleUnit, StyleUnit: presentation.StyleUnit{Text: l.Str}}
	default:
		return value.Value{Kind: value.KindString, Str: l.Str}
	}
}

// evaluateMemberAccess dispatches on the bound base type: an enum-typed
// base (`ObjectFit.contain`) resolves purely structurally against the
// interned enum TypeIds without evaluating the base expression at all;
// anything else evaluates the base and reads one of its fixed members —
// generalised to the binder's full field table (Label/Image/Slide/Grid/
// Flex/CustomElement), beyond original_source's own evaluator, which only
// implements the enum case and leaves everything else `todo!()`.
func (e *Evaluator) evaluateMemberAccess(m *bound.MemberAccess, loc source.Location) value.Value {
	member := e.syms.Text(m.Member)
	switch m.Base.Type {
	case e.objectFitType:
		return value.Value{Kind: value.KindObjectFit, ObjectFit: parseObjectFit(member)}
	case e.hAlignType:
		return value.Value{Kind: value.KindHAlign, HAlign: parseHAlign(member)}
	case e.vAlignType:
		return value.Value{Kind: value.KindVAlign, VAlign: parseVAlign(member)}
	case e.textAlignType:
		return value.Value{Kind: value.KindTextAlign, TextAlign: parseTextAlign(member)}
	}

	base := e.evaluateExpression(m.Base)
	if e.failed() {
		return value.Void
	}
	return e.readMember(base, member, loc)
}

func (e *Evaluator) readMember(base value.Value, member string, loc source.Location) value.Value {
	switch base.Kind {
	case value.KindLabel:
		switch member {
		case "text_color":
			return value.Value{Kind: value.KindColor, Color: base.Label.Styling.TextColor}
		case "background":
			return value.Value{Kind: value.KindBackground, Background: base.Label.Styling.Background}
		case "align_center":
			// Only callable (evaluateFunctionCall special-cases the
			// member-call form); read as a bare value it is an inert,
			// empty-bodied function.
			return value.Value{Kind: value.KindUserFunction, Function: &value.UserFunction{ReturnType: types.Void}}
		}
	case value.KindImage:
		switch member {
		case "background":
			return value.Value{Kind: value.KindBackground, Background: base.Image.Styling.Background}
		case "object_fit":
			return value.Value{Kind: value.KindObjectFit, ObjectFit: base.Image.Styling.ObjectFit}
		case "halign":
			return value.Value{Kind: value.KindHAlign, HAlign: base.Image.Styling.HAlign}
		case "valign":
			return value.Value{Kind: value.KindVAlign, VAlign: base.Image.Styling.VAlign}
		}
	case value.KindGrid:
		if member == "background" {
			return value.Value{Kind: value.KindBackground, Background: base.Grid.Styling.Background}
		}
	case value.KindFlex:
		if member == "background" {
			return value.Value{Kind: value.KindBackground, Background: base.Flex.Styling.Background}
		}
	case value.KindCustomElement:
		if member == "background" {
			return value.Value{Kind: value.KindBackground, Background: base.Custom.Styling.Background}
		}
	}
	e.raise(loc, "unknown member %q", member)
	return value.Void
}

func parseObjectFit(s string) presentation.ObjectFit {
	switch s {
	case "cover":
		return presentation.ObjectFitCover
	case "fill":
		return presentation.ObjectFitFill
	case "none":
		return presentation.ObjectFitNone
	default:
		return presentation.ObjectFitContain
	}
}

func parseHAlign(s string) presentation.HAlign {
	switch s {
	case "Center":
		return presentation.HAlignCenter
	case "Right":
		return presentation.HAlignRight
	case "Stretch":
		return presentation.HAlignStretch
	default:
		return presentation.HAlignLeft
	}
}

func parseVAlign(s string) presentation.VAlign {
	switch s {
	case "Center":
		return presentation.VAlignCenter
	case "Bottom":
		return presentation.VAlignBottom
	case "Stretch":
		return presentation.VAlignStretch
	default:
		return presentation.VAlignTop
	}
}

func parseTextAlign(s string) presentation.TextAlign {
	switch s {
	case "Center":
		return presentation.TextAlignCenter
	case "Right":
		return presentation.TextAlignRight
	case "Justify":
		return presentation.TextAlignJustify
	default:
		return presentation.TextAlignLeft
	}
}

// evaluateConversion evaluates the wrapped base and reshapes it to match
// target. Element-widening (Label/Image/Grid/Flex/CustomElement -> Element)
// is a pure type-system fiction at runtime: the Value's own Kind already
// carries enough information, so it passes through unchanged.
func (e *Evaluator) evaluateConversion(c *bound.Conversion, target types.TypeId) value.Value {
	base := e.evaluateExpression(c.Base)
	if e.failed() {
		return value.Void
	}
	targetKind := e.types.Resolve(target).Kind
	switch {
	case targetKind == types.KindBackground && base.Kind == value.KindColor:
		return value.Value{Kind: value.KindBackground, Background: presentation.NewBackground(base.Color)}
	case target == types.Float && base.Kind == value.KindInteger:
		return value.Value{Kind: value.KindFloat, Float: float64(base.Integer)}
	case targetKind == types.KindColor && base.Kind == value.KindString:
		return value.Value{Kind: value.KindColor, Color: presentation.Color{CSS: base.Str}}
	case targetKind == types.KindLabel && base.Kind == value.KindString:
		return value.Value{Kind: value.KindLabel, Label: presentation.NewLabel(base.Str)}
	case targetKind == types.KindPath && base.Kind == value.KindString:
		return value.Value{Kind: value.KindPath, Path: presentation.Path{Value: base.Str}}
	default:
		return base
	}
}

func (e *Evaluator) evaluateDict(entries []bound.DictEntry) value.Dict {
	d := make(value.Dict, len(entries))
	for _, entry := range entries {
		d[entry.Name] = e.evaluateExpression(entry.Value)
		if e.failed() {
			return d
		}
	}
	return d
}

// evaluatePostInitialization evaluates the base handle and the dict, then
// writes each dict entry onto the base's matching member in place — the
// base handle is returned unchanged so every alias of it observes the
// writes (spec.md §5's shared-mutable handle model).
func (e *Evaluator) evaluatePostInitialization(p *bound.PostInitialization) value.Value {
	base := e.evaluateExpression(p.Base)
	if e.failed() {
		return value.Void
	}
	for _, entry := range p.Dict.DictEntries {
		v := e.evaluateExpression(entry.Value)
		if e.failed() {
			return value.Void
		}
		e.writeMember(base, entry.Name, v, p.Dict.Location)
		if e.failed() {
			return value.Void
		}
	}
	return base
}

func (e *Evaluator) evaluateArrayAccess(a *bound.ArrayAccess, loc source.Location) value.Value {
	base := e.evaluateExpression(a.Base)
	if e.failed() {
		return value.Void
	}
	index := e.evaluateExpression(a.Index)
	if e.failed() {
		return value.Void
	}
	if base.Kind != value.KindArray {
		e.raise(loc, "cannot index a non-array value")
		return value.Void
	}
	i := int(index.Integer)
	if i < 0 || i >= len(base.Array) {
		e.raise(loc, "array index %d out of range (length %d)", i, len(base.Array))
		return value.Void
	}
	return base.Array[i]
}
