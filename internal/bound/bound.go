// Copyright (c) 2026 The slidec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

// Package bound defines the typed, scope-resolved tree the binder produces
// (spec §3, §4.4) and the evaluator walks. It is kept separate from
// package binder so that package eval/value can describe a UserFunction's
// body without importing the binder itself, and separate from package
// eval/value so that package binder does not need the evaluator's runtime
// Value representation merely to record a numeric or string literal.
package bound

import (
	"github.com/brackenforge/slidec/internal/intern"
	"github.com/brackenforge/slidec/internal/source"
	"github.com/brackenforge/slidec/internal/types"
)

// Kind tags the variant a Node holds (spec §3 BoundNode).
type Kind int

const (
	KindError Kind = iota
	KindStylingStatement
	KindSlideStatement
	KindElementStatement
	KindTemplateStatement
	KindImportStatement
	KindAssignmentStatement
	KindVariableDeclaration
	KindVariableReference
	KindLiteral
	KindFunctionCall
	KindMemberAccess
	KindDict
	KindArray
	KindConversion
	KindPostInitialization
	KindBinary
	KindArrayAccess
	KindFormatString
	KindGlobal
)

// ConversionKind distinguishes the two conversion-insertion paths (spec
// §4.4): an implicit widening inserted by the binder itself, versus one
// selected explicitly by a typed-string prefix.
type ConversionKind int

const (
	ConversionImplicit ConversionKind = iota
	ConversionTypedString
)

// StylingKind is the element kind a Styling block targets.
type StylingKind int

const (
	StylingLabel StylingKind = iota
	StylingImage
	StylingSlide
)

// LiteralKind tags a Literal node's scalar payload. This is deliberately a
// small, bind-time-only set (Float/Integer/String/StyleUnit) distinct from
// the evaluator's full value.Value: the binder never needs anything richer
// to record a parsed literal, and only ever produces one of these four for
// a Literal syntax node.
type LiteralKind int

const (
	LiteralFloat LiteralKind = iota
	LiteralInteger
	LiteralString
	LiteralStyleUnit
)

// Literal is a parsed Number or String token's value.
type Literal struct {
	Kind    LiteralKind
	Float   float64
	Integer int64
	Str     string
}

// DictEntry is one `name: value` pair inside a bound Dict.
type DictEntry struct {
	Name  string
	Value *Node
}

// StylingStatement is a bound `styling Name(Type): body`.
type StylingStatement struct {
	Name intern.VariableId
	Kind StylingKind
	Body []*Node
}

// SlideStatement is a bound `slide Name: body`.
type SlideStatement struct {
	Name intern.VariableId
	Body []*Node
}

// Parameter is one bound element/template parameter.
type Parameter struct {
	Variable intern.VariableId
	Type     types.TypeId
	Default  *Node // nil if the parameter has no default
}

// ElementStatement is a bound `element Name(params): body`, defining a
// user function (spec §4.5 "ElementStatement ... defines a user function").
type ElementStatement struct {
	Name       intern.VariableId
	Parameters []Parameter
	Body       []*Node
}

// TemplateStatement is ElementStatement's counterpart for `template`,
// whose evaluated function implicitly receives the enclosing slide as its
// first argument.
type TemplateStatement struct {
	Name       intern.VariableId
	Parameters []Parameter
	Body       []*Node
}

// Placement is where imported, non-asset content is pasted into the
// emitted output (spec §4.5, §6).
type Placement int

const (
	PlacementUnknown Placement = iota
	PlacementHtmlHead
	PlacementJavascriptInit
	PlacementJavascriptSlideChange
)

// ImportStatement is a bound `import Type "path";`.
type ImportStatement struct {
	Path      string
	Placement Placement
}

// AssignmentStatement is a bound `lhs = value;`.
type AssignmentStatement struct {
	Lhs   *Node
	Value *Node
}

// VariableDeclaration is a bound `let name = value;`.
type VariableDeclaration struct {
	Variable intern.VariableId
	Value    *Node
}

// VariableReference is a bound use of a previously declared variable.
type VariableReference struct {
	Variable intern.VariableId
}

// FunctionCall is a bound `callee(arguments)`.
type FunctionCall struct {
	Callee           *Node
	Arguments        []*Node
	MinArgumentCount int
}

// MemberAccess is a bound `base.member`.
type MemberAccess struct {
	Base   *Node
	Member intern.SymbolId
}

// Conversion wraps a value with an inserted type conversion.
type Conversion struct {
	Base *Node
	Kind ConversionKind
}

// PostInitialization is a bound `base { dict }`.
type PostInitialization struct {
	Base *Node
	Dict *Node // always a *Node of Kind Dict
}

// BinaryOp mirrors ast.BinaryOp; carried but not evaluated (spec §9 open
// question).
type BinaryOp int

// Binary is a bound binary expression, carried through for completeness but
// never executed: spec §9 leaves arithmetic/logical semantics undecided.
type Binary struct {
	Left  *Node
	Op    BinaryOp
	Right *Node
}

// ArrayAccess is a bound `base[index]`.
type ArrayAccess struct {
	Base  *Node
	Index *Node
}

// FormatString is a bound format-string literal, carried through opaque
// (spec §9 open question: interpolation semantics are undecided).
type FormatString struct {
	Text string
}

// Global is a bound `global name = value;`, registered in the outermost
// scope rather than the current one so it is visible from every slide.
type Global struct {
	Variable intern.VariableId
	Value    *Node
}

// Node is one bound-tree node: a Kind tag, its resolved Type, the source
// Location it was bound from, and exactly one populated payload field
// matching Kind.
type Node struct {
	Kind     Kind
	Type     types.TypeId
	Location source.Location

	Styling      *StylingStatement
	Slide        *SlideStatement
	Element      *ElementStatement
	Template     *TemplateStatement
	Import       *ImportStatement
	Assignment   *AssignmentStatement
	VarDecl      *VariableDeclaration
	VarRef       *VariableReference
	Lit          *Literal
	Call         *FunctionCall
	Member       *MemberAccess
	DictEntries  []DictEntry
	ArrayElems   []*Node
	Conv         *Conversion
	PostInit     *PostInitialization
	Bin          *Binary
	ArrAccess    *ArrayAccess
	FormatStr    *FormatString
	Glob         *Global
}

// Error returns an Error node at loc, typed Error (spec §4.4: the binder
// replaces an erroneous sub-tree with this, a fixed point of member access
// and conversion).
func Error(loc source.Location) *Node {
	return &Node{Kind: KindError, Type: types.Error, Location: loc}
}

// IsError reports whether n is nil or an Error node.
func IsError(n *Node) bool {
	return n == nil || n.Kind == KindError
}
