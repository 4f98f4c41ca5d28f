// Copyright (c) 2026 The slidec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package eval

import (
	"github.com/brackenforge/slidec/internal/bound"
	"github.com/brackenforge/slidec/internal/eval/value"
	"github.com/brackenforge/slidec/internal/source"
)

// evaluateAssignment evaluates the right-hand side and writes it to the
// resolved target, grounded on evaluate_assignment/assign in
// original_source/slides-lang/src/compiler/evaluator/slide.rs.
func (e *Evaluator) evaluateAssignment(a *bound.AssignmentStatement) {
	v := e.evaluateExpression(a.Value)
	if e.failed() {
		return
	}
	switch a.Lhs.Kind {
	case bound.KindVariableReference:
		e.assignVariable(a.Lhs.VarRef.Variable, v)
	case bound.KindMemberAccess:
		base := e.evaluateExpression(a.Lhs.Member.Base)
		if e.failed() {
			return
		}
		e.writeMember(base, e.syms.Text(a.Lhs.Member.Member), v, a.Lhs.Location)
	default:
		e.raise(a.Lhs.Location, "cannot assign to this expression")
	}
}

// writeMember writes v onto base's member, generalised to the binder's full
// field table (fieldType in internal/binder/members.go): background is
// writable on every element/container kind, text_color only on Label,
// object_fit/halign/valign only on Image. original_source's own
// evaluate_member_assignment only implements background for Label, plus
// text_color/object_fit/halign/valign — it has no background case for
// Image/Grid/Flex/CustomElement even though its own binder's field_type
// allows reading it there; this Go evaluator is more complete than that,
// matching the binder's member table one-for-one (spec.md is authoritative
// where original_source is narrower).
func (e *Evaluator) writeMember(base value.Value, member string, v value.Value, loc source.Location) {
	switch base.Kind {
	case value.KindLabel:
		switch member {
		case "text_color":
			if v.Kind == value.KindColor {
				base.Label.SetTextColor(v.Color)
				return
			}
		case "background":
			if v.Kind == value.KindBackground {
				base.Label.SetBackground(v.Background)
				return
			}
		}
	case value.KindImage:
		switch member {
		case "background":
			if v.Kind == value.KindBackground {
				base.Image.SetBackground(v.Background)
				return
			}
		case "object_fit":
			if v.Kind == value.KindObjectFit {
				base.Image.SetObjectFit(v.ObjectFit)
				return
			}
		case "halign":
			if v.Kind == value.KindHAlign {
				base.Image.SetHAlign(v.HAlign)
				return
			}
		case "valign":
			if v.Kind == value.KindVAlign {
				base.Image.SetVAlign(v.VAlign)
				return
			}
		}
	case value.KindGrid:
		if member == "background" && v.Kind == value.KindBackground {
			base.Grid.SetBackground(v.Background)
			return
		}
	case value.KindFlex:
		if member == "background" && v.Kind == value.KindBackground {
			base.Flex.SetBackground(v.Background)
			return
		}
	case value.KindCustomElement:
		if member == "background" && v.Kind == value.KindBackground {
			base.Custom.SetBackground(v.Background)
			return
		}
	}
	e.raise(loc, "cannot assign %q on this value", member)
}
