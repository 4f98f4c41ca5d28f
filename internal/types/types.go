// Copyright (c) 2026 The slidec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

// Package types interns the language's type algebra into dense TypeIds.
// Two structurally equal types always resolve to the same id, so type
// comparisons elsewhere in the compiler are integer comparisons.
package types

import "strconv"

// TypeId is a dense handle into an Interner. The zero value is Error, and
// Error is guaranteed to sort first among all ids ever produced.
type TypeId int

// Reserved, stable ids. Error and Void must never change: the binder relies
// on ERROR being comparable to zero, and on it sorting before every other id.
const (
	Error TypeId = iota
	Void
	Float
	Integer
	Bool
	String
	DynamicDict
)

// Kind distinguishes the tagged variants of Type.
type Kind int

const (
	KindError Kind = iota
	KindVoid
	KindFloat
	KindInteger
	KindBool
	KindString
	KindDynamicDict
	KindStyling
	KindBackground
	KindColor
	KindObjectFit
	KindHAlign
	KindVAlign
	KindTextAlign
	KindFont
	KindStyleUnit
	KindSlide
	KindElement
	KindLabel
	KindGrid
	KindFlex
	KindGridEntry
	KindImage
	KindPath
	KindThickness
	KindFilter
	KindTextStyling
	KindAnimation
	KindPosition
	KindFunction
	KindEnum
	KindCustomElement
	KindArray
)

// Type is the tagged variant describing one TypeId's shape. Function and
// Enum and CustomElement carry extra structural data; all other kinds are
// identified by Kind alone.
type Type struct {
	Kind Kind

	// Function
	Args             []TypeId
	Return           TypeId
	MinArgumentCount int

	// Enum
	Base     TypeId
	Variants []string

	// CustomElement
	Name string

	// Array
	Elem TypeId
}

func simple(k Kind) Type { return Type{Kind: k} }

// Interner deduplicates Type values by structural equality and hands out
// dense TypeIds. Error, Void and DynamicDict are pre-registered at fixed,
// stable ids (see the Error/Void/DynamicDict constants).
type Interner struct {
	types []Type
	index map[string]TypeId // structural key -> id, for Function/Enum/CustomElement
}

// NewInterner returns an interner with the built-in scalar kinds and
// DynamicDict pre-registered at their reserved ids.
func NewInterner() *Interner {
	in := &Interner{index: make(map[string]TypeId)}
	in.types = append(in.types,
		simple(KindError),       // Error  = 0
		simple(KindVoid),        // Void   = 1
		simple(KindFloat),       // Float  = 2
		simple(KindInteger),     // Integer= 3
		simple(KindBool),        // Bool   = 4
		simple(KindString),      // String = 5... (DynamicDict follows)
		simple(KindDynamicDict), // DynamicDict
	)
	for _, k := range []Kind{
		KindStyling, KindBackground, KindColor, KindObjectFit, KindHAlign,
		KindVAlign, KindTextAlign, KindFont, KindStyleUnit, KindSlide,
		KindElement, KindLabel, KindGrid, KindFlex, KindGridEntry, KindImage,
		KindPath, KindThickness, KindFilter, KindTextStyling, KindAnimation,
		KindPosition,
	} {
		in.types = append(in.types, simple(k))
	}
	return in
}

// idOf returns the fixed id for one of the simple, pre-registered kinds.
func (in *Interner) idOf(k Kind) TypeId {
	for i, t := range in.types {
		if t.Kind == k && t.Kind != KindFunction && t.Kind != KindEnum && t.Kind != KindCustomElement {
			return TypeId(i)
		}
	}
	panic("types: kind not pre-registered: " + kindName(k))
}

// Background, Color, ObjectFit, ... return the TypeId of the corresponding
// built-in, non-parametric type. These are thin wrappers over idOf kept for
// readability at call sites in the binder and evaluator.
func (in *Interner) Background() TypeId    { return in.idOf(KindBackground) }
func (in *Interner) Color() TypeId         { return in.idOf(KindColor) }
func (in *Interner) ObjectFit() TypeId     { return in.idOf(KindObjectFit) }
func (in *Interner) HAlign() TypeId        { return in.idOf(KindHAlign) }
func (in *Interner) VAlign() TypeId        { return in.idOf(KindVAlign) }
func (in *Interner) TextAlign() TypeId     { return in.idOf(KindTextAlign) }
func (in *Interner) Font() TypeId          { return in.idOf(KindFont) }
func (in *Interner) StyleUnit() TypeId     { return in.idOf(KindStyleUnit) }
func (in *Interner) Slide() TypeId         { return in.idOf(KindSlide) }
func (in *Interner) Element() TypeId       { return in.idOf(KindElement) }
func (in *Interner) Label() TypeId         { return in.idOf(KindLabel) }
func (in *Interner) Grid() TypeId          { return in.idOf(KindGrid) }
func (in *Interner) Flex() TypeId          { return in.idOf(KindFlex) }
func (in *Interner) GridEntry() TypeId     { return in.idOf(KindGridEntry) }
func (in *Interner) Image() TypeId         { return in.idOf(KindImage) }
func (in *Interner) Path() TypeId          { return in.idOf(KindPath) }
func (in *Interner) Thickness() TypeId     { return in.idOf(KindThickness) }
func (in *Interner) Filter() TypeId        { return in.idOf(KindFilter) }
func (in *Interner) TextStyling() TypeId   { return in.idOf(KindTextStyling) }
func (in *Interner) Animation() TypeId     { return in.idOf(KindAnimation) }
func (in *Interner) Position() TypeId      { return in.idOf(KindPosition) }
func (in *Interner) Styling() TypeId       { return in.idOf(KindStyling) }

// Function interns a function type and returns its TypeId. Two calls with
// structurally equal args/return/minArgumentCount yield the same id.
func (in *Interner) Function(args []TypeId, ret TypeId, minArgumentCount int) TypeId {
	key := functionKey(args, ret, minArgumentCount)
	if id, ok := in.index[key]; ok {
		return id
	}
	id := TypeId(len(in.types))
	in.types = append(in.types, Type{
		Kind: KindFunction, Args: append([]TypeId(nil), args...),
		Return: ret, MinArgumentCount: minArgumentCount,
	})
	in.index[key] = id
	return id
}

// Enum interns an enum type (a named, closed set of variants over a base
// scalar type) and returns its TypeId.
func (in *Interner) Enum(base TypeId, variants []string) TypeId {
	key := enumKey(base, variants)
	if id, ok := in.index[key]; ok {
		return id
	}
	id := TypeId(len(in.types))
	in.types = append(in.types, Type{
		Kind: KindEnum, Base: base, Variants: append([]string(nil), variants...),
	})
	in.index[key] = id
	return id
}

// CustomElement interns a module-provided element type named name.
func (in *Interner) CustomElement(name string) TypeId {
	key := "custom:" + name
	if id, ok := in.index[key]; ok {
		return id
	}
	id := TypeId(len(in.types))
	in.types = append(in.types, Type{Kind: KindCustomElement, Name: name})
	in.index[key] = id
	return id
}

// Array interns an array-of-elem type and returns its TypeId. Used for the
// handful of built-ins that take a homogeneous list (concat's stringArray,
// stackv/stackh's element array) and for array literals.
func (in *Interner) Array(elem TypeId) TypeId {
	key := "array:" + strconv.Itoa(int(elem))
	if id, ok := in.index[key]; ok {
		return id
	}
	id := TypeId(len(in.types))
	in.types = append(in.types, Type{Kind: KindArray, Elem: elem})
	in.index[key] = id
	return id
}

// Resolve returns the Type a TypeId was interned from.
func (in *Interner) Resolve(id TypeId) Type {
	return in.types[id]
}

// IsError reports whether id names the fixed-point Error type.
func (in *Interner) IsError(id TypeId) bool {
	return id == Error
}
