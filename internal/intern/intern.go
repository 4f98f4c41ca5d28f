// Copyright (c) 2026 The slidec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

// Package intern provides dense integer handles for the two kinds of name
// the binder needs to distinguish: user-declared variables and general
// symbols (member names, styling names, enum variants). Keeping them in
// separate banks means a member name like "color" can never collide with a
// user variable named "color".
package intern

import "github.com/brackenforge/slidec/internal/source"

// SymbolId is a dense handle for an interned general symbol (member name,
// styling name, type name, enum variant, ...).
type SymbolId int

// VariableId is a dense handle for an interned variable name. VariableId(0)
// is reserved for built-ins registered before any user source is bound.
type VariableId int

// Symbols interns general symbol strings into dense SymbolIds.
type Symbols struct {
	byString map[string]SymbolId
	strings  []string
}

// NewSymbols returns an empty symbol interner.
func NewSymbols() *Symbols {
	return &Symbols{byString: make(map[string]SymbolId)}
}

// Intern returns the SymbolId for s, creating one if this is the first time
// s has been seen. Two calls with the same string always return the same id.
func (s *Symbols) Intern(str string) SymbolId {
	if id, ok := s.byString[str]; ok {
		return id
	}
	id := SymbolId(len(s.strings))
	s.strings = append(s.strings, str)
	s.byString[str] = id
	return id
}

// Text returns the string that id was interned from.
func (s *Symbols) Text(id SymbolId) string {
	return s.strings[id]
}

// Variables interns variable names into dense VariableIds, independent of
// the Symbols bank so that a member name and a user-declared variable of the
// same spelling never collide.
type Variables struct {
	byString map[string]VariableId
	defs     []source.Location
	names    []string
}

// NewVariables returns an interner pre-populated with VariableId(0), the id
// reserved for built-ins.
func NewVariables() *Variables {
	v := &Variables{byString: make(map[string]VariableId)}
	v.defs = append(v.defs, source.Location{})
	v.names = append(v.names, "")
	return v
}

// CreateOrGet returns the existing VariableId for name in this bank if one
// was interned before, or allocates a fresh one at def. It never reports a
// redeclaration; that policy belongs to the binder's scope, which decides
// whether a name may be reused inside the same scope.
func (v *Variables) CreateOrGet(name string, def source.Location) VariableId {
	if id, ok := v.byString[name]; ok {
		return id
	}
	id := VariableId(len(v.defs))
	v.defs = append(v.defs, def)
	v.names = append(v.names, name)
	v.byString[name] = id
	return id
}

// Definition returns the location a VariableId was first declared at.
func (v *Variables) Definition(id VariableId) source.Location {
	return v.defs[id]
}

// Name returns the source spelling a VariableId was interned from, used by
// the evaluator to fall back an element's id to its declaring variable's
// name (spec §5 "slides auto-add declared Labels/Images under their
// variable name").
func (v *Variables) Name(id VariableId) string {
	return v.names[id]
}
