// Copyright (c) 2026 The slidec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

// Package ast defines the concrete syntax tree produced by the parser. It
// preserves every token, including trivia and separators, so that a
// formatter could reconstruct the original source exactly; the formatter
// itself is out of scope here (spec.md §1).
package ast

import (
	"github.com/brackenforge/slidec/internal/source"
	"github.com/brackenforge/slidec/internal/token"
)

// Node is implemented by every syntax tree node.
type Node interface {
	Loc() source.Location
}

// Base is embedded by every concrete node to satisfy Node without repeating
// the Loc accessor everywhere. It is exported so that package parser, which
// builds these nodes, can set it in a composite literal.
type Base struct {
	Location source.Location
}

func (b Base) Loc() source.Location { return b.Location }

// At is a shorthand for Base{Location: loc}.
func At(loc source.Location) Base { return Base{Location: loc} }

// Item pairs a node with the separator token that followed it in the
// source, if any (a comma, a semicolon). Keeping it explicit, rather than
// re-synthesising separators from whitespace, is what lets a formatter
// reproduce the source byte for byte; this compiler only reads Node.
type Item[T Node] struct {
	Node      T
	Separator *token.Token
}

// List is an ordered sequence of nodes paired with their trailing
// separators.
type List[T Node] []Item[T]

// Nodes returns just the nodes, discarding separator information.
func (l List[T]) Nodes() []T {
	out := make([]T, len(l))
	for i, item := range l {
		out[i] = item.Node
	}
	return out
}

// Stmt is implemented by every top-level and body statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

func (Base) stmtNode() {}
func (Base) exprNode() {}

// Error is a recovery node: the parser produced it instead of a real node
// after failing to parse one, and recorded whether it consumed a token to
// guarantee progress (spec §4.2).
type Error struct {
	Base
	Consumed bool
}

// NewError returns an Error node at loc, recording whether the parser
// consumed a token to produce it.
func NewError(loc source.Location, consumed bool) *Error {
	return &Error{Base: At(loc), Consumed: consumed}
}

// Ast is the root of one parsed file.
type Ast struct {
	Statements []Stmt
	Eof        token.Token
}
