package ast

import "github.com/brackenforge/slidec/internal/token"

// VariableRef is a bare identifier used as an expression.
type VariableRef struct {
	Base
	Name token.Token
}

// Literal is a Number or String token used directly as an expression.
type Literal struct {
	Base
	Token token.Token
}

// FormatStringExpr is a 'format string' literal. Its interpolation
// semantics are not evaluated (spec §9, open question); it is carried
// through binding as an opaque literal.
type FormatStringExpr struct {
	Base
	Token token.Token
}

// TypedString is `prefix"text"`, e.g. c"red" or l"hello". The prefix
// selects the conversion applied at bind time (spec §4.4).
type TypedString struct {
	Base
	Prefix token.Token
	Value  token.Token
}

// MemberAccess is `Operand.Member`.
type MemberAccess struct {
	Base
	Operand Expr
	Member  token.Token
}

// InferredMember is `.Member`, whose base is inferred from the expected
// type at the use site (e.g. an enum variant written without its type
// name).
type InferredMember struct {
	Base
	Member token.Token
}

// FunctionCall is `Callee(Arguments)`.
type FunctionCall struct {
	Base
	Callee    Expr
	Arguments List[Expr]
}

// ArrayAccess is `Operand[Index]`.
type ArrayAccess struct {
	Base
	Operand Expr
	Index   Expr
}

// BinaryOp names a parsed binary operator token.
type BinaryOp int

const (
	OpAnd BinaryOp = iota
	OpOr
	OpAdd
	OpSub
	OpMul
	OpDiv
)

// Binary is a left-associative binary expression. Arithmetic/logical
// semantics are not evaluated (spec §9, open question); the binder and
// evaluator carry the node but do not execute it.
type Binary struct {
	Base
	Left  Expr
	Op    BinaryOp
	OpTok token.Token
	Right Expr
}

// DictEntry is `Key: Value` inside a Dict or a PostInitialization block.
type DictEntry struct {
	Base
	Key   token.Token
	Value Expr
}

// Dict is `{ entries }`.
type Dict struct {
	Base
	Entries List[DictEntry]
}

// Array is `[ elements ]`.
type Array struct {
	Base
	Elements List[Expr]
}

// PostInitialization is `Operand { Dict }`, applying a dict of field
// assignments to a freshly evaluated expression.
type PostInitialization struct {
	Base
	Operand Expr
	Dict    Dict
}

// Parameter is one `name: Type (= default)?` entry inside a ParameterBlock.
type Parameter struct {
	Base
	Name     token.Token
	TypeName token.Token
	Default  Expr // nil if absent
}

// ParameterBlock is the `( params )` following an element/template name.
type ParameterBlock struct {
	Base
	Params List[Parameter]
}
