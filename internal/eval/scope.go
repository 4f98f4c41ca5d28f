// Copyright (c) 2026 The slidec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

// Package eval walks a bound tree (package bound) and builds a
// presentation.Presentation, the same way original_source's evaluator
// module turns a BoundNode tree into a Presentation: one Evaluator per
// compile, an insertion-ordered Scope per slide/styling/element/template
// body, and a single in-flight Exception that aborts the walk on first
// runtime error (spec.md §7 "evaluator exceptions").
package eval

import (
	"fmt"

	"github.com/brackenforge/slidec/internal/eval/value"
	"github.com/brackenforge/slidec/internal/intern"
	"github.com/brackenforge/slidec/internal/presentation"
	"github.com/brackenforge/slidec/internal/source"
	"github.com/brackenforge/slidec/internal/types"
)

// Scope is an insertion-ordered set of declared variables: order records the
// sequence variables were first declared in, which a slide's finalisation
// depends on to auto-add Labels/Images in declaration order (spec.md §5
// "variable-pickup at slide finalisation iterates the scope in insertion
// order").
type Scope struct {
	order  []intern.VariableId
	values map[intern.VariableId]value.Value
}

func newScope() *Scope {
	return &Scope{values: make(map[intern.VariableId]value.Value)}
}

// declare sets id's value, recording insertion order the first time id is
// seen. A later declare of the same id (an assignment, not a fresh `let`)
// does not move its position in order.
func (s *Scope) declare(id intern.VariableId, v value.Value) {
	if _, ok := s.values[id]; !ok {
		s.order = append(s.order, id)
	}
	s.values[id] = v
}

func (s *Scope) lookup(id intern.VariableId) (value.Value, bool) {
	v, ok := s.values[id]
	return v, ok
}

// Exception is the evaluator's single in-flight runtime error: evaluation
// stops at the statement that raised it (spec.md §7), unlike the binder's
// diag.Sink, which accumulates many diagnostics before giving up.
type Exception struct {
	Message  string
	Location source.Location
}

func (e *Exception) Error() string { return e.Message }

// Evaluator walks a bound tree and builds a presentation.Presentation. It
// mirrors original_source/slides-lang/src/compiler/evaluator.rs's Evaluator
// struct: a scope stack, the slide currently under construction (nil at top
// level), and a single exception slot.
type Evaluator struct {
	vars  *intern.Variables
	syms  *intern.Symbols
	types *types.Interner

	scopes       []*Scope
	slide        *presentation.Slide
	presentation *presentation.Presentation
	exception    *Exception
	anonCounter  int

	objectFitType types.TypeId
	hAlignType    types.TypeId
	vAlignType    types.TypeId
	textAlignType types.TypeId
}

// New returns an Evaluator sharing the interners a prior Bind call used, so
// VariableIds and TypeIds line up with the bound tree it will walk.
func New(vars *intern.Variables, syms *intern.Symbols, ti *types.Interner) *Evaluator {
	e := &Evaluator{vars: vars, syms: syms, types: ti}
	e.scopes = append(e.scopes, newScope())
	e.objectFitType = ti.Enum(types.String, []string{"contain", "cover", "fill", "none"})
	e.hAlignType = ti.Enum(types.String, []string{"Left", "Center", "Right", "Stretch"})
	e.vAlignType = ti.Enum(types.String, []string{"Top", "Center", "Bottom", "Stretch"})
	e.textAlignType = ti.Enum(types.String, []string{"Left", "Center", "Right", "Justify"})
	return e
}

func (e *Evaluator) push()           { e.scopes = append(e.scopes, newScope()) }
func (e *Evaluator) global() *Scope  { return e.scopes[0] }
func (e *Evaluator) current() *Scope { return e.scopes[len(e.scopes)-1] }

func (e *Evaluator) pop() *Scope {
	s := e.current()
	e.scopes = e.scopes[:len(e.scopes)-1]
	return s
}

func (e *Evaluator) declare(id intern.VariableId, v value.Value) {
	e.current().declare(id, v)
}

func (e *Evaluator) lookup(id intern.VariableId) (value.Value, bool) {
	for i := len(e.scopes) - 1; i >= 0; i-- {
		if v, ok := e.scopes[i].lookup(id); ok {
			return v, true
		}
	}
	return value.Void, false
}

// assignVariable overwrites id in whichever scope already holds it
// (innermost-first, matching lookup's search order), falling back
// to declaring it in the current scope if somehow unresolved.
func (e *Evaluator) assignVariable(id intern.VariableId, v value.Value) {
	for i := len(e.scopes) - 1; i >= 0; i-- {
		if _, ok := e.scopes[i].lookup(id); ok {
			e.scopes[i].declare(id, v)
			return
		}
	}
	e.current().declare(id, v)
}

// wellKnown resolves the VariableId for a pre-registered member name
// (background, text_color, object_fit, text) — the same id the binder
// interned at bind time, since both share the same *intern.Variables.
func (e *Evaluator) wellKnown(name string) intern.VariableId {
	return e.vars.CreateOrGet(name, source.Location{})
}

// failed reports whether an exception is already in flight.
func (e *Evaluator) failed() bool { return e.exception != nil }

// raise records the first exception encountered; later calls are no-ops, so
// the exception always names the earliest failure.
func (e *Evaluator) raise(loc source.Location, format string, args ...any) {
	if e.exception != nil {
		return
	}
	e.exception = &Exception{Message: fmt.Sprintf(format, args...), Location: loc}
}

// nextAnonymousID returns a generated element id for a composite value
// produced as a bare statement expression (e.g. `card("hello");` inside a
// slide body) with no declaring variable to name it after (spec.md §6's
// worked example: "slide contains one element (generated name)").
func (e *Evaluator) nextAnonymousID() string {
	id := fmt.Sprintf("e%d", e.anonCounter)
	e.anonCounter++
	return id
}
