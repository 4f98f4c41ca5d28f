package ast

import "github.com/brackenforge/slidec/internal/token"

// Styling is `styling Name(TypeName): body`.
type Styling struct {
	Base
	Name     token.Token
	TypeName token.Token
	Body     List[Stmt]
}

// Slide is `slide Name: body`.
type Slide struct {
	Base
	Name token.Token
	Body List[Stmt]
}

// Global is `global Name = Value;`. It binds like a top-level
// VariableDecl, but is written with the `global` keyword to make a
// cross-slide binding explicit at the call site.
type Global struct {
	Base
	Name  token.Token
	Value Expr
}

// Element is `element Name(Params): body`, defining a reusable value
// producer.
type Element struct {
	Base
	Name   token.Token
	Params ParameterBlock
	Body   List[Stmt]
}

// Template is `template Name(Params): body`, an Element whose evaluated
// function implicitly receives the enclosing slide as its first parameter.
type Template struct {
	Base
	Name   token.Token
	Params ParameterBlock
	Body   List[Stmt]
}

// Import is `import TypeName "path";`.
type Import struct {
	Base
	TypeName token.Token
	Path     token.Token
}

// ExpressionStmt is a bare expression used as a statement (e.g. a function
// call for its side effect).
type ExpressionStmt struct {
	Base
	Expression Expr
}

// VariableDecl is `let Name = Value;`.
type VariableDecl struct {
	Base
	Name  token.Token
	Value Expr
}

// Assignment is `Target = Value;`, where Target is a VariableRef or a
// MemberAccess.
type Assignment struct {
	Base
	Target Expr
	Value  Expr
}
