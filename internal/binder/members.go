// Copyright (c) 2026 The slidec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package binder

import "github.com/brackenforge/slidec/internal/types"

// fieldType resolves member on a value of type base, returning its type and
// true, or false if base has no such member. Error is absorbing: every
// member access on it resolves to Error rather than failing (spec.md §4.4,
// matching Type::field_type's `self == &Type::Error` short-circuit).
func fieldType(in *types.Interner, base types.TypeId, member string) (types.TypeId, bool) {
	if in.IsError(base) {
		return types.Error, true
	}

	t := in.Resolve(base)
	switch t.Kind {
	case types.KindEnum:
		for _, variant := range t.Variants {
			if variant == member {
				return t.Base, true
			}
		}
		return types.Error, false

	case types.KindLabel:
		switch member {
		case "text_color":
			return in.Color(), true
		case "background":
			return in.Background(), true
		case "align_center":
			return in.Function(nil, types.Void, 0), true
		}

	case types.KindImage:
		switch member {
		case "background":
			return in.Background(), true
		case "object_fit":
			return in.ObjectFit(), true
		case "halign":
			return in.HAlign(), true
		case "valign":
			return in.VAlign(), true
		}

	case types.KindSlide:
		switch member {
		case "background":
			return in.Background(), true
		}

	case types.KindGrid, types.KindFlex, types.KindCustomElement:
		switch member {
		case "background":
			return in.Background(), true
		}
	}

	return types.Error, false
}
