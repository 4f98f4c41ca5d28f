// Copyright (c) 2026 The slidec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

// Package binder walks the concrete syntax tree produced by package parser,
// resolving variables, inserting type conversions, and reporting semantic
// diagnostics. Its output is the bound tree defined in package bound (spec
// §4.4).
package binder

import (
	"github.com/brackenforge/slidec/internal/diag"
	"github.com/brackenforge/slidec/internal/intern"
	"github.com/brackenforge/slidec/internal/source"
	"github.com/brackenforge/slidec/internal/types"
)

// Variable is a binder-scope entry: a resolved type bound to a VariableId,
// recording where it was declared for redeclaration diagnostics.
type Variable struct {
	ID         intern.VariableId
	Definition source.Location
	Type       types.TypeId
}

// scope is an unordered set of variables visible at one nesting level.
type scope struct {
	variables map[intern.VariableId]Variable
}

func newScope() *scope {
	return &scope{variables: make(map[intern.VariableId]Variable)}
}

// tryRegister inserts id if absent, returning (entry, true) on success or
// the pre-existing entry and false on collision — the binder's caller
// turns a false into a *redeclaration* diagnostic (spec §4.4).
func (s *scope) tryRegister(id intern.VariableId, typ types.TypeId, def source.Location) (Variable, bool) {
	if existing, ok := s.variables[id]; ok {
		return existing, false
	}
	v := Variable{ID: id, Definition: def, Type: typ}
	s.variables[id] = v
	return v, true
}

func (s *scope) lookup(id intern.VariableId) (Variable, bool) {
	v, ok := s.variables[id]
	return v, ok
}

// Binder owns the scope stack, the shared type interner, and the variable
// name interner, threading them through every bind_* call (spec §4.4).
type Binder struct {
	scopes  []*scope
	vars    *intern.Variables
	syms    *intern.Symbols
	types   *types.Interner
	sink    *diag.Sink
	files   *source.Files
}

// New returns a Binder whose single initial scope is seeded from the
// globals table (spec §4.4: "the first scope is populated at construction
// from the globals table").
func New(files *source.Files, vars *intern.Variables, syms *intern.Symbols, typeInterner *types.Interner, sink *diag.Sink) *Binder {
	b := &Binder{files: files, vars: vars, syms: syms, types: typeInterner, sink: sink}
	b.scopes = append(b.scopes, newScope())
	seedGlobals(b)
	return b
}

// global returns the outermost scope, where `global` declarations live so
// they are visible from every slide regardless of binding order.
func (b *Binder) global() *scope {
	return b.scopes[0]
}

func (b *Binder) current() *scope {
	return b.scopes[len(b.scopes)-1]
}

// createScope pushes a fresh, empty scope (slide/styling/element/template
// body).
func (b *Binder) createScope() {
	b.scopes = append(b.scopes, newScope())
}

// dropScope pops the innermost scope. It panics if only the global scope
// remains, matching the invariant in spec §3 ("the global scope must
// always exist; drop_scope must fail an assertion when only the global
// scope remains").
func (b *Binder) dropScope() {
	if len(b.scopes) <= 1 {
		panic("binder: dropScope called with only the global scope left")
	}
	b.scopes = b.scopes[:len(b.scopes)-1]
}

// lookupVariable walks the scope stack innermost-first (spec §4.4 "the
// binder's scope holds Variable").
func (b *Binder) lookupVariable(id intern.VariableId) (Variable, bool) {
	for i := len(b.scopes) - 1; i >= 0; i-- {
		if v, ok := b.scopes[i].lookup(id); ok {
			return v, true
		}
	}
	return Variable{}, false
}

// registerName interns name's text into a VariableId and registers it in
// the current scope, reporting *redeclaration* on collision.
func (b *Binder) registerName(name string, typ types.TypeId, loc source.Location) (intern.VariableId, bool) {
	id := b.vars.CreateOrGet(name, loc)
	return b.registerID(id, name, typ, loc)
}

// registerID registers a pre-interned id (used for built-ins seeded by a
// name already looked up, spec §4.4's pre-registered `background` and
// styling-kind-specific members).
func (b *Binder) registerID(id intern.VariableId, name string, typ types.TypeId, loc source.Location) (intern.VariableId, bool) {
	if _, ok := b.current().tryRegister(id, typ, loc); !ok {
		previous := b.vars.Definition(id)
		b.sink.ReportRedeclaration(name, loc, previous)
		return id, false
	}
	return id, true
}
