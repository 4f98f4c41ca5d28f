// Copyright (c) 2026 The slidec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

// Package value defines Value, the evaluator's runtime representation of
// every bound-tree literal, conversion result, and built-in return. It
// mirrors internal/types.TypeId one-for-one: every Kind here has a matching
// TypeId kind, and Value.Type() is how the evaluator recovers it.
package value

import (
	"github.com/brackenforge/slidec/internal/bound"
	"github.com/brackenforge/slidec/internal/presentation"
	"github.com/brackenforge/slidec/internal/types"
)

// Kind tags the variant a Value holds.
type Kind int

const (
	KindVoid Kind = iota
	KindFloat
	KindInteger
	KindString
	KindStyleReference
	KindBackground
	KindColor
	KindLabel
	KindPath
	KindImage
	KindObjectFit
	KindHAlign
	KindVAlign
	KindTextAlign
	KindFont
	KindStyleUnit
	KindDict
	KindArray
	KindUserFunction
	KindCustomElement
	KindThickness
	KindFilter
	KindTextStyling
	KindPosition
	KindElement
	KindGrid
	KindFlex
	KindAnimation
)

// LabelHandle is a shared-mutable reference to a Label: every Value that
// aliases the same label (the variable it was declared under, a dict
// pick-up, a slide's harvested element list) points at the same *Label, so a
// post-initialisation field write is visible through all of them (spec §5).
type LabelHandle = *presentation.Label

// ImageHandle is the Image analogue of LabelHandle.
type ImageHandle = *presentation.Image

// ElementHandle is a shared-mutable reference to a generic composed
// element (the result of a user element/template function call) before it
// is narrowed to a concrete Label/Image/Grid/Flex/CustomElement.
type ElementHandle = *presentation.Element

// CustomElementHandle is a shared-mutable reference to a module-provided
// element instance; its fields are opaque to the host and mutated only
// through the owning module's call_function (SPEC_FULL.md supplemented
// features).
type CustomElementHandle = *presentation.CustomElement

// TextStylingHandle is a shared-mutable reference to the text-specific
// half of a Label styling under construction.
type TextStylingHandle = *presentation.TextStyling

// StyleReference names a styling block by the styling's name, resolved
// at evaluation against the presentation's registered stylings.
type StyleReference struct {
	Name string
}

// UserFunction is the evaluator-time representation of an element or
// template declaration: a closure over its declared parameters (by bound
// VariableId, in declaration order) and body, invoked by FunctionCall the
// same way a built-in is (spec §3 Value::UserFunction, §4.5).
type UserFunction struct {
	Parameters                []bound.Parameter
	Body                      []*bound.Node
	ReturnType                types.TypeId
	HasImplicitSlideParameter bool
}

// Array is an ordered, homogeneous-by-convention list of Values (e.g. the
// stringArray argument to concat, or a grid/stackv children list).
type Array []Value

// Dict is a post-initialisation or dict-literal bag of named Values.
type Dict map[string]Value

// Value is the tagged union every expression evaluates to.
type Value struct {
	Kind Kind

	Float     float64
	Integer   int64
	Str       string
	StyleRef  StyleReference
	Background presentation.Background
	Color     presentation.Color
	Label     LabelHandle
	Path      presentation.Path
	Image     ImageHandle
	ObjectFit presentation.ObjectFit
	HAlign    presentation.HAlign
	VAlign    presentation.VAlign
	TextAlign presentation.TextAlign
	Font      presentation.Font
	StyleUnit presentation.StyleUnit
	Dict      Dict
	Array     Array
	Function  *UserFunction
	Custom    CustomElementHandle
	Thickness presentation.Thickness
	Filter    presentation.Filter
	Styling   TextStylingHandle
	Position  presentation.Position
	Element   ElementHandle
	Grid      *presentation.Grid
	Flex      *presentation.Flex
	Animation presentation.Animation
}

// Void is the single Value of Kind Void.
var Void = Value{Kind: KindVoid}

// Type reports the TypeId a Value of this Kind infers to, using in to
// resolve fixed non-parametric kinds (spec §4.4: "Value::infer_type").
func (v Value) Type(in *types.Interner) types.TypeId {
	switch v.Kind {
	case KindVoid:
		return types.Void
	case KindFloat:
		return types.Float
	case KindInteger:
		return types.Integer
	case KindString:
		return types.String
	case KindStyleReference:
		return in.Styling()
	case KindBackground:
		return in.Background()
	case KindColor:
		return in.Color()
	case KindLabel:
		return in.Label()
	case KindPath:
		return in.Path()
	case KindImage:
		return in.Image()
	case KindObjectFit:
		return in.ObjectFit()
	case KindHAlign:
		return in.HAlign()
	case KindVAlign:
		return in.VAlign()
	case KindTextAlign:
		return in.TextAlign()
	case KindFont:
		return in.Font()
	case KindStyleUnit:
		return in.StyleUnit()
	case KindDict:
		return types.DynamicDict
	case KindArray:
		elem := types.Void
		if len(v.Array) > 0 {
			elem = v.Array[0].Type(in)
		}
		return in.Array(elem)
	case KindThickness:
		return in.Thickness()
	case KindFilter:
		return in.Filter()
	case KindTextStyling:
		return in.TextStyling()
	case KindPosition:
		return in.Position()
	case KindElement:
		return in.Element()
	case KindGrid:
		return in.Grid()
	case KindFlex:
		return in.Flex()
	case KindAnimation:
		return in.Animation()
	case KindUserFunction:
		args := make([]types.TypeId, len(v.Function.Parameters))
		for i, p := range v.Function.Parameters {
			args[i] = p.Type
		}
		return in.Function(args, v.Function.ReturnType, 0)
	case KindCustomElement:
		return in.Element()
	default:
		return types.Error
	}
}
