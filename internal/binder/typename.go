// Copyright (c) 2026 The slidec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package binder

import (
	"github.com/brackenforge/slidec/internal/source"
	"github.com/brackenforge/slidec/internal/types"
)

// resolveTypeName resolves the text of a parameter's TypeName token to a
// TypeId. Built-in primitive and
// domain type names are recognised directly; anything else is looked up as
// a variable, which is how enum type names (ObjectFit, HAlign, ...) and
// module-imported custom element names resolve (spec.md §4.4 — the global
// scope binds a type's own name to a Variable whose Type *is* that type).
func (b *Binder) resolveTypeName(name string, loc source.Location) (types.TypeId, bool) {
	in := b.types
	switch name {
	case "Void":
		return types.Void, true
	case "Float":
		return types.Float, true
	case "Integer":
		return types.Integer, true
	case "Bool":
		return types.Bool, true
	case "String":
		return types.String, true
	case "Background":
		return in.Background(), true
	case "Color":
		return in.Color(), true
	case "Label":
		return in.Label(), true
	case "Image":
		return in.Image(), true
	case "Grid":
		return in.Grid(), true
	case "Flex":
		return in.Flex(), true
	case "Path":
		return in.Path(), true
	case "Thickness":
		return in.Thickness(), true
	case "Filter":
		return in.Filter(), true
	case "TextStyling":
		return in.TextStyling(), true
	case "Animation":
		return in.Animation(), true
	case "Position":
		return in.Position(), true
	case "Slide":
		return in.Slide(), true
	case "Element":
		return in.Element(), true
	case "Styling":
		return in.Styling(), true
	}

	id := b.vars.CreateOrGet(name, loc)
	if v, ok := b.lookupVariable(id); ok {
		return v.Type, true
	}
	return types.Error, false
}
