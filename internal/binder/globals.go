// Copyright (c) 2026 The slidec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package binder

import (
	"github.com/brackenforge/slidec/internal/source"
	"github.com/brackenforge/slidec/internal/types"
)

// builtinFunction is one entry of the built-in function table bound into
// the global scope at construction (spec.md §6).
type builtinFunction struct {
	name             string
	args             func(in *types.Interner) []types.TypeId
	minArgumentCount int
	ret              func(in *types.Interner) types.TypeId
}

// builtinFunctions is the full table from spec.md §6. minArgumentCount
// equals len(args) for every built-in: none of them accept a variable tail,
// unlike user elements/templates whose trailing parameters may default.
func builtinFunctions() []builtinFunction {
	return []builtinFunction{
		{
			name: "rgb",
			args: func(in *types.Interner) []types.TypeId {
				return []types.TypeId{types.Integer, types.Integer, types.Integer}
			},
			minArgumentCount: 3,
			ret:              func(in *types.Interner) types.TypeId { return in.Color() },
		},
		{
			name:             "image",
			args:             func(in *types.Interner) []types.TypeId { return []types.TypeId{in.Path()} },
			minArgumentCount: 1,
			ret:              func(in *types.Interner) types.TypeId { return in.Image() },
		},
		{
			name:             "label",
			args:             func(in *types.Interner) []types.TypeId { return []types.TypeId{types.String} },
			minArgumentCount: 1,
			ret:              func(in *types.Interner) types.TypeId { return in.Label() },
		},
		{
			name: "grid",
			args: func(in *types.Interner) []types.TypeId {
				return []types.TypeId{types.String, types.String}
			},
			minArgumentCount: 2,
			ret:              func(in *types.Interner) types.TypeId { return in.Grid() },
		},
		{
			name:             "gfont",
			args:             func(in *types.Interner) []types.TypeId { return []types.TypeId{types.String} },
			minArgumentCount: 1,
			ret:              func(in *types.Interner) types.TypeId { return in.Font() },
		},
		{
			name:             "brightness",
			args:             func(in *types.Interner) []types.TypeId { return []types.TypeId{types.Float} },
			minArgumentCount: 1,
			ret:              func(in *types.Interner) types.TypeId { return in.Filter() },
		},
		{
			name:             "string",
			args:             func(in *types.Interner) []types.TypeId { return []types.TypeId{types.Integer} },
			minArgumentCount: 1,
			ret:              func(in *types.Interner) types.TypeId { return types.String },
		},
		{
			name: "concat",
			args: func(in *types.Interner) []types.TypeId {
				return []types.TypeId{in.Array(types.String)}
			},
			minArgumentCount: 1,
			ret:              func(in *types.Interner) types.TypeId { return types.String },
		},
		{
			name: "stackv",
			args: func(in *types.Interner) []types.TypeId {
				return []types.TypeId{in.Array(in.Element())}
			},
			minArgumentCount: 1,
			ret:              func(in *types.Interner) types.TypeId { return in.Flex() },
		},
		{
			name: "stackh",
			args: func(in *types.Interner) []types.TypeId {
				return []types.TypeId{in.Array(in.Element())}
			},
			minArgumentCount: 1,
			ret:              func(in *types.Interner) types.TypeId { return in.Flex() },
		},
		{
			name:             "showAfterStep",
			args:             func(in *types.Interner) []types.TypeId { return []types.TypeId{types.Integer} },
			minArgumentCount: 1,
			ret:              func(in *types.Interner) types.TypeId { return in.Animation() },
		},
		{
			name:             "leftTop",
			args:             func(in *types.Interner) []types.TypeId { return []types.TypeId{in.Element()} },
			minArgumentCount: 1,
			ret:              func(in *types.Interner) types.TypeId { return in.Position() },
		},
		{
			name:             "sizeOf",
			args:             func(in *types.Interner) []types.TypeId { return []types.TypeId{in.Element()} },
			minArgumentCount: 1,
			ret:              func(in *types.Interner) types.TypeId { return in.Position() },
		},
		{
			name: "positionInside",
			args: func(in *types.Interner) []types.TypeId {
				return []types.TypeId{in.Element(), types.Float, types.Float}
			},
			minArgumentCount: 3,
			ret:              func(in *types.Interner) types.TypeId { return in.Position() },
		},
	}
}

// seedGlobals registers every built-in function and enum named in spec.md
// §6 into b's single initial scope, each at the zero-value source location:
// built-ins carry no user-visible declaration site.
func seedGlobals(b *Binder) {
	loc := source.Location{}
	in := b.types

	for _, fn := range builtinFunctions() {
		typ := in.Function(fn.args(in), fn.ret(in), fn.minArgumentCount)
		b.registerName(fn.name, typ, loc)
	}

	b.registerName("ObjectFit", in.Enum(types.String, []string{
		"contain", "cover", "fill", "none",
	}), loc)
	b.registerName("HAlign", in.Enum(types.String, []string{
		"Left", "Center", "Right", "Stretch",
	}), loc)
	b.registerName("VAlign", in.Enum(types.String, []string{
		"Top", "Center", "Bottom", "Stretch",
	}), loc)
	b.registerName("TextAlign", in.Enum(types.String, []string{
		"Left", "Center", "Right", "Justify",
	}), loc)
}
