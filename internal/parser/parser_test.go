package parser

import (
	"testing"

	"github.com/brackenforge/slidec/internal/ast"
	"github.com/brackenforge/slidec/internal/diag"
	"github.com/brackenforge/slidec/internal/source"
	"github.com/brackenforge/slidec/internal/token"
)

func parse(t *testing.T, src string) (*ast.Ast, *diag.Sink) {
	t.Helper()
	files := source.NewFiles()
	id := files.Add("test.slides", src)
	loc := source.Location{File: id, Start: 0, Length: len(src)}
	sink := diag.NewSink(files)
	tokens := token.Lex(loc, files, sink)
	return ParseFile(tokens, sink), sink
}

func TestParseSlideWithVariableDecl(t *testing.T) {
	tree, sink := parse(t, "slide Intro:\n  let x = 1;\n")
	if !sink.IsEmpty() {
		t.Fatalf("unexpected diagnostics: %v", sink.All())
	}
	if len(tree.Statements) != 1 {
		t.Fatalf("want 1 top-level statement, got %d", len(tree.Statements))
	}
	slide, ok := tree.Statements[0].(*ast.Slide)
	if !ok {
		t.Fatalf("want *ast.Slide, got %T", tree.Statements[0])
	}
	if len(slide.Body) != 1 {
		t.Fatalf("want 1 body statement, got %d", len(slide.Body))
	}
	decl, ok := slide.Body[0].Node.(*ast.VariableDecl)
	if !ok {
		t.Fatalf("want *ast.VariableDecl, got %T", slide.Body[0].Node)
	}
	lit, ok := decl.Value.(*ast.Literal)
	if !ok {
		t.Fatalf("want *ast.Literal, got %T", decl.Value)
	}
	if lit.Token.Kind != token.Number {
		t.Errorf("want Number literal, got %s", lit.Token.Kind)
	}
}

func TestParseStylingAndElement(t *testing.T) {
	tree, sink := parse(t, `
styling Bold(TextStyling):
  let w = 700;

element Box(color: Color = c"red"):
  let x = 1;
`)
	if !sink.IsEmpty() {
		t.Fatalf("unexpected diagnostics: %v", sink.All())
	}
	if len(tree.Statements) != 2 {
		t.Fatalf("want 2 top-level statements, got %d", len(tree.Statements))
	}
	if _, ok := tree.Statements[0].(*ast.Styling); !ok {
		t.Fatalf("want *ast.Styling, got %T", tree.Statements[0])
	}
	elem, ok := tree.Statements[1].(*ast.Element)
	if !ok {
		t.Fatalf("want *ast.Element, got %T", tree.Statements[1])
	}
	if len(elem.Params.Params) != 1 {
		t.Fatalf("want 1 parameter, got %d", len(elem.Params.Params))
	}
	param := elem.Params.Params[0].Node
	if param.Default == nil {
		t.Fatal("want a default value")
	}
	if _, ok := param.Default.(*ast.TypedString); !ok {
		t.Fatalf("want *ast.TypedString default, got %T", param.Default)
	}
}

func TestParseImport(t *testing.T) {
	tree, sink := parse(t, `import Font "fonts/title.ttf";`)
	if !sink.IsEmpty() {
		t.Fatalf("unexpected diagnostics: %v", sink.All())
	}
	imp, ok := tree.Statements[0].(*ast.Import)
	if !ok {
		t.Fatalf("want *ast.Import, got %T", tree.Statements[0])
	}
	if imp.TypeName.Kind != token.Identifier {
		t.Errorf("want identifier type name, got %s", imp.TypeName.Kind)
	}
}

func TestParseInvalidTopLevelStatementRecovers(t *testing.T) {
	tree, sink := parse(t, "+ slide A:\n")
	if sink.IsEmpty() {
		t.Fatal("want a diagnostic for the stray '+'")
	}
	if len(tree.Statements) < 2 {
		t.Fatalf("want at least an Error and the slide, got %d statements", len(tree.Statements))
	}
	errNode, ok := tree.Statements[0].(*ast.Error)
	if !ok {
		t.Fatalf("want *ast.Error first, got %T", tree.Statements[0])
	}
	if !errNode.Consumed {
		t.Error("want the recovery node to have consumed a token")
	}
	if _, ok := tree.Statements[1].(*ast.Slide); !ok {
		t.Fatalf("want parsing to resume at the slide, got %T", tree.Statements[1])
	}
}

func TestExpressionPrecedenceMulDivOutermost(t *testing.T) {
	// Spec §4.2 inverts ordinary arithmetic precedence: mul/div binds
	// loosest, add/minus next, and/or tighter still.
	tree, sink := parse(t, "slide S:\n  let x = 1 + 2 * 3;\n")
	if !sink.IsEmpty() {
		t.Fatalf("unexpected diagnostics: %v", sink.All())
	}
	slide := tree.Statements[0].(*ast.Slide)
	decl := slide.Body[0].Node.(*ast.VariableDecl)
	top, ok := decl.Value.(*ast.Binary)
	if !ok {
		t.Fatalf("want top-level *ast.Binary, got %T", decl.Value)
	}
	if top.Op != ast.OpMul {
		t.Errorf("want the outermost operator to be '*' (mul/div binds loosest), got %v", top.Op)
	}
	lhs, ok := top.Left.(*ast.Binary)
	if !ok {
		t.Fatalf("want the left side to itself be a *ast.Binary ('+'), got %T", top.Left)
	}
	if lhs.Op != ast.OpAdd {
		t.Errorf("want inner operator '+', got %v", lhs.Op)
	}
}

func TestExpressionCallIndexMemberChain(t *testing.T) {
	tree, sink := parse(t, "slide S:\n  let x = foo.bar[0](1, 2);\n")
	if !sink.IsEmpty() {
		t.Fatalf("unexpected diagnostics: %v", sink.All())
	}
	slide := tree.Statements[0].(*ast.Slide)
	decl := slide.Body[0].Node.(*ast.VariableDecl)
	call, ok := decl.Value.(*ast.FunctionCall)
	if !ok {
		t.Fatalf("want outermost *ast.FunctionCall, got %T", decl.Value)
	}
	if len(call.Arguments) != 2 {
		t.Fatalf("want 2 arguments, got %d", len(call.Arguments))
	}
	index, ok := call.Callee.(*ast.ArrayAccess)
	if !ok {
		t.Fatalf("want *ast.ArrayAccess callee, got %T", call.Callee)
	}
	member, ok := index.Operand.(*ast.MemberAccess)
	if !ok {
		t.Fatalf("want *ast.MemberAccess operand, got %T", index.Operand)
	}
	if _, ok := member.Operand.(*ast.VariableRef); !ok {
		t.Fatalf("want *ast.VariableRef base, got %T", member.Operand)
	}
}

func TestExpressionPostInitialization(t *testing.T) {
	tree, sink := parse(t, "slide S:\n  let x = foo(){width: 10};\n")
	if !sink.IsEmpty() {
		t.Fatalf("unexpected diagnostics: %v", sink.All())
	}
	slide := tree.Statements[0].(*ast.Slide)
	decl := slide.Body[0].Node.(*ast.VariableDecl)
	post, ok := decl.Value.(*ast.PostInitialization)
	if !ok {
		t.Fatalf("want *ast.PostInitialization, got %T", decl.Value)
	}
	if len(post.Dict.Entries) != 1 {
		t.Fatalf("want 1 dict entry, got %d", len(post.Dict.Entries))
	}
	if _, ok := post.Operand.(*ast.FunctionCall); !ok {
		t.Fatalf("want a function call as the post-init operand, got %T", post.Operand)
	}
}

func TestExpressionStyleUnitLiteral(t *testing.T) {
	tree, sink := parse(t, "slide S:\n  let x = 50%;\n")
	if !sink.IsEmpty() {
		t.Fatalf("unexpected diagnostics: %v", sink.All())
	}
	slide := tree.Statements[0].(*ast.Slide)
	decl := slide.Body[0].Node.(*ast.VariableDecl)
	lit, ok := decl.Value.(*ast.Literal)
	if !ok {
		t.Fatalf("want *ast.Literal, got %T", decl.Value)
	}
	if lit.Token.Kind != token.StyleUnitLiteral {
		t.Errorf("want a fused StyleUnitLiteral, got %s", lit.Token.Kind)
	}
}

func TestExpressionArrayAndDict(t *testing.T) {
	tree, sink := parse(t, "slide S:\n  let x = [1, 2, 3];\n  let y = {a: 1, b: 2};\n")
	if !sink.IsEmpty() {
		t.Fatalf("unexpected diagnostics: %v", sink.All())
	}
	slide := tree.Statements[0].(*ast.Slide)
	arr, ok := slide.Body[0].Node.(*ast.VariableDecl).Value.(*ast.Array)
	if !ok {
		t.Fatalf("want *ast.Array, got %T", slide.Body[0].Node.(*ast.VariableDecl).Value)
	}
	if len(arr.Elements) != 3 {
		t.Errorf("want 3 elements, got %d", len(arr.Elements))
	}
	dict, ok := slide.Body[1].Node.(*ast.VariableDecl).Value.(*ast.Dict)
	if !ok {
		t.Fatalf("want *ast.Dict, got %T", slide.Body[1].Node.(*ast.VariableDecl).Value)
	}
	if len(dict.Entries) != 2 {
		t.Errorf("want 2 entries, got %d", len(dict.Entries))
	}
}

func TestExpressionInferredMember(t *testing.T) {
	tree, sink := parse(t, "slide S:\n  let x = .left;\n")
	if !sink.IsEmpty() {
		t.Fatalf("unexpected diagnostics: %v", sink.All())
	}
	slide := tree.Statements[0].(*ast.Slide)
	decl := slide.Body[0].Node.(*ast.VariableDecl)
	if _, ok := decl.Value.(*ast.InferredMember); !ok {
		t.Fatalf("want *ast.InferredMember, got %T", decl.Value)
	}
}

func TestAssignmentStatement(t *testing.T) {
	tree, sink := parse(t, "slide S:\n  x = 1;\n")
	if !sink.IsEmpty() {
		t.Fatalf("unexpected diagnostics: %v", sink.All())
	}
	slide := tree.Statements[0].(*ast.Slide)
	if _, ok := slide.Body[0].Node.(*ast.Assignment); !ok {
		t.Fatalf("want *ast.Assignment, got %T", slide.Body[0].Node)
	}
}

func TestParserIsProgressTotal(t *testing.T) {
	// A stream of nothing but garbage single-char tokens must still
	// terminate, consuming every token as Error nodes (spec §4.2).
	tree, sink := parse(t, "+ + + +")
	if sink.IsEmpty() {
		t.Fatal("want diagnostics for the garbage input")
	}
	for _, stmt := range tree.Statements {
		if _, ok := stmt.(*ast.Error); !ok {
			t.Fatalf("want every statement to be *ast.Error, got %T", stmt)
		}
	}
	if tree.Eof.Kind != token.Eof {
		t.Errorf("want parsing to reach Eof, got %s", tree.Eof.Kind)
	}
}
