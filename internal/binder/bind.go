// Copyright (c) 2026 The slidec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package binder

import (
	"strconv"
	"strings"

	"github.com/brackenforge/slidec/internal/ast"
	"github.com/brackenforge/slidec/internal/bound"
	"github.com/brackenforge/slidec/internal/token"
	"github.com/brackenforge/slidec/internal/types"
)

// Bind walks every top-level statement in file and returns its bound form.
// Binding never fails outright: unresolvable sub-trees become bound.Error
// nodes and a diagnostic is recorded in the Sink passed to New, matching
// spec.md §4.3's "diagnostics accumulate; evaluation simply does not run if
// the sink is non-empty".
func (b *Binder) Bind(file *ast.Ast) []*bound.Node {
	statements := make([]*bound.Node, 0, len(file.Statements))
	for _, stmt := range file.Statements {
		statements = append(statements, b.bindNode(stmt))
	}
	return statements
}

func (b *Binder) text(tok token.Token) string {
	return tok.Text(b.files)
}

// bindNode is the single recursive-descent dispatch point for every
// concrete syntax node, mirroring bind_node's match over SyntaxNodeKind.
func (b *Binder) bindNode(n ast.Node) *bound.Node {
	switch node := n.(type) {
	case *ast.Styling:
		return b.bindStylingStatement(node)
	case *ast.Slide:
		return b.bindSlideStatement(node)
	case *ast.Global:
		return b.bindGlobal(node)
	case *ast.Element:
		return b.bindElementStatement(node)
	case *ast.Template:
		return b.bindTemplateStatement(node)
	case *ast.Import:
		return b.bindImportStatement(node)
	case *ast.ExpressionStmt:
		result := b.bindNode(node.Expression)
		void := *result
		void.Type = types.Void
		return &void
	case *ast.VariableDecl:
		return b.bindVariableDeclaration(node)
	case *ast.Assignment:
		return b.bindAssignmentStatement(node)
	case *ast.VariableRef:
		return b.bindVariableReference(node)
	case *ast.Literal:
		return b.bindLiteral(node)
	case *ast.FormatStringExpr:
		return b.bindFormatString(node)
	case *ast.MemberAccess:
		return b.bindMemberAccess(node)
	case *ast.InferredMember:
		return b.bindInferredMember(node)
	case *ast.FunctionCall:
		return b.bindFunctionCall(node)
	case *ast.ArrayAccess:
		return b.bindArrayAccess(node)
	case *ast.Binary:
		return b.bindBinary(node)
	case *ast.TypedString:
		return b.bindTypedString(node)
	case *ast.Dict:
		return b.bindDict(node)
	case *ast.Array:
		return b.bindArray(node)
	case *ast.PostInitialization:
		return b.bindPostInitialization(node)
	case *ast.Error:
		return bound.Error(node.Loc())
	default:
		return bound.Error(n.Loc())
	}
}

func (b *Binder) bindGlobal(n *ast.Global) *bound.Node {
	value := b.bindNode(n.Value)
	name := b.text(n.Name)
	id := b.vars.CreateOrGet(name, n.Name.Location)
	if _, ok := b.global().tryRegister(id, value.Type, n.Name.Location); !ok {
		previous := b.vars.Definition(id)
		b.sink.ReportRedeclaration(name, n.Name.Location, previous)
		return bound.Error(n.Loc())
	}
	return &bound.Node{
		Kind:     bound.KindGlobal,
		Type:     types.Void,
		Location: n.Loc(),
		Glob:     &bound.Global{Variable: id, Value: value},
	}
}

func (b *Binder) bindVariableDeclaration(n *ast.VariableDecl) *bound.Node {
	value := b.bindNode(n.Value)
	name := b.text(n.Name)
	id, ok := b.registerName(name, value.Type, n.Name.Location)
	if !ok {
		return bound.Error(n.Loc())
	}
	return &bound.Node{
		Kind:     bound.KindVariableDeclaration,
		Type:     types.Void,
		Location: n.Loc(),
		VarDecl:  &bound.VariableDeclaration{Variable: id, Value: value},
	}
}

func (b *Binder) bindVariableReference(n *ast.VariableRef) *bound.Node {
	name := b.text(n.Name)
	id := b.vars.CreateOrGet(name, n.Name.Location)
	v, ok := b.lookupVariable(id)
	if !ok {
		b.sink.ReportUnknownVariable(name, n.Name.Location)
		return bound.Error(n.Loc())
	}
	return &bound.Node{
		Kind:     bound.KindVariableReference,
		Type:     v.Type,
		Location: n.Loc(),
		VarRef:   &bound.VariableReference{Variable: id},
	}
}

func (b *Binder) bindLiteral(n *ast.Literal) *bound.Node {
	text := b.text(n.Token)
	switch n.Token.Kind {
	case token.Number:
		if strings.Contains(text, ".") {
			f, _ := strconv.ParseFloat(text, 64)
			return &bound.Node{
				Kind: bound.KindLiteral, Type: types.Float, Location: n.Loc(),
				Lit: &bound.Literal{Kind: bound.LiteralFloat, Float: f},
			}
		}
		i, _ := strconv.ParseInt(text, 10, 64)
		return &bound.Node{
			Kind: bound.KindLiteral, Type: types.Integer, Location: n.Loc(),
			Lit: &bound.Literal{Kind: bound.LiteralInteger, Integer: i},
		}
	case token.StyleUnitLiteral:
		return &bound.Node{
			Kind: bound.KindLiteral, Type: b.types.StyleUnit(), Location: n.Loc(),
			Lit: &bound.Literal{Kind: bound.LiteralStyleUnit, Str: text},
		}
	case token.String:
		// parse_string_literal is a pass-through: no escape processing is
		// applied (spec.md §9, open question left unresolved deliberately).
		unquoted := text
		if len(unquoted) >= 2 {
			unquoted = unquoted[1 : len(unquoted)-1]
		}
		return &bound.Node{
			Kind: bound.KindLiteral, Type: types.String, Location: n.Loc(),
			Lit: &bound.Literal{Kind: bound.LiteralString, Str: unquoted},
		}
	default:
		return bound.Error(n.Loc())
	}
}

func (b *Binder) bindFormatString(n *ast.FormatStringExpr) *bound.Node {
	text := b.text(n.Token)
	if len(text) >= 2 {
		text = text[1 : len(text)-1]
	}
	return &bound.Node{
		Kind:      bound.KindFormatString,
		Type:      types.String,
		Location:  n.Loc(),
		FormatStr: &bound.FormatString{Text: text},
	}
}

func (b *Binder) bindTypedString(n *ast.TypedString) *bound.Node {
	prefix := b.text(n.Prefix)
	text := b.text(n.Value)
	if len(text) >= 2 {
		text = text[1 : len(text)-1]
	}
	literal := &bound.Node{
		Kind: bound.KindLiteral, Type: types.String, Location: n.Loc(),
		Lit: &bound.Literal{Kind: bound.LiteralString, Str: text},
	}

	var target types.TypeId
	switch prefix {
	case "c":
		target = b.types.Color()
	case "l":
		target = b.types.Label()
	case "p":
		target = b.types.Path()
	default:
		b.sink.ReportUnknownTypedStringPrefix(prefix, n.Prefix.Location)
		return bound.Error(n.Loc())
	}
	return &bound.Node{
		Kind:     bound.KindConversion,
		Type:     target,
		Location: n.Loc(),
		Conv:     &bound.Conversion{Base: literal, Kind: bound.ConversionTypedString},
	}
}

func (b *Binder) bindMemberAccess(n *ast.MemberAccess) *bound.Node {
	base := b.bindNode(n.Operand)
	member := b.text(n.Member)
	typ, ok := fieldType(b.types, base.Type, member)
	if !ok {
		b.sink.ReportUnknownMember(member, b.types.Describe(base.Type), n.Member.Location)
		return bound.Error(n.Loc())
	}
	id := b.syms.Intern(member)
	return &bound.Node{
		Kind:     bound.KindMemberAccess,
		Type:     typ,
		Location: n.Loc(),
		Member:   &bound.MemberAccess{Base: base, Member: id},
	}
}

// bindInferredMember resolves `.Member` without an explicit base type. The
// binder has no ambient expected-type context threaded through every call
// (spec.md leaves this resolution context to the call site); the supported
// cases are a target type carried on the enclosing node, which the
// callers that accept an InferredMember (function arguments, assignment
// values, post-initialization entries, parameter defaults) resolve by
// calling bindExprAs instead of bindNode directly.
func (b *Binder) bindInferredMember(n *ast.InferredMember) *bound.Node {
	b.sink.ReportUnknownMember(b.text(n.Member), "<inferred>", n.Loc())
	return bound.Error(n.Loc())
}

// bindExprAs binds n the normal way, then additionally resolves a bare
// InferredMember against expected, the type the result is required to have
// (an enum's variant list).
func (b *Binder) bindExprAs(n ast.Expr, expected types.TypeId) *bound.Node {
	if inferred, ok := n.(*ast.InferredMember); ok {
		member := b.text(inferred.Member)
		t := b.types.Resolve(expected)
		if t.Kind == types.KindEnum {
			for _, variant := range t.Variants {
				if variant == member {
					return &bound.Node{Kind: bound.KindLiteral, Type: expected, Location: inferred.Loc(),
						Lit: &bound.Literal{Kind: bound.LiteralString, Str: member}}
				}
			}
		}
		b.sink.ReportUnknownMember(member, b.types.Describe(expected), inferred.Loc())
		return bound.Error(inferred.Loc())
	}
	return b.bindConversion(b.bindNode(n), expected)
}

func (b *Binder) bindFunctionCall(n *ast.FunctionCall) *bound.Node {
	callee := b.bindNode(n.Callee)
	argNodes := n.Arguments.Nodes()
	calleeName := "call"
	if ref, ok := n.Callee.(*ast.VariableRef); ok {
		calleeName = b.text(ref.Name)
	}

	fnType := b.types.Resolve(callee.Type)
	var args []*bound.Node
	if fnType.Kind == types.KindFunction {
		args = make([]*bound.Node, len(argNodes))
		for i, arg := range argNodes {
			if i < len(fnType.Args) {
				args[i] = b.bindExprAs(arg, fnType.Args[i])
			} else {
				args[i] = b.bindNode(arg)
			}
		}
		if len(args) < fnType.MinArgumentCount || len(args) > len(fnType.Args) {
			b.sink.ReportArgumentCountMismatch(calleeName, len(args), fnType.MinArgumentCount, len(fnType.Args), n.Loc())
			return bound.Error(n.Loc())
		}
		return &bound.Node{
			Kind:     bound.KindFunctionCall,
			Type:     fnType.Return,
			Location: n.Loc(),
			Call:     &bound.FunctionCall{Callee: callee, Arguments: args, MinArgumentCount: fnType.MinArgumentCount},
		}
	}

	if bound.IsError(callee) {
		for _, arg := range argNodes {
			b.bindNode(arg)
		}
		return bound.Error(n.Loc())
	}

	b.sink.ReportCannotConvert(b.types.Describe(callee.Type), "Function", n.Loc())
	return bound.Error(n.Loc())
}

func (b *Binder) bindArrayAccess(n *ast.ArrayAccess) *bound.Node {
	base := b.bindNode(n.Operand)
	index := b.bindNode(n.Index)
	elem := types.Error
	if t := b.types.Resolve(base.Type); t.Kind == types.KindArray {
		elem = t.Elem
	}
	return &bound.Node{
		Kind:     bound.KindArrayAccess,
		Type:     elem,
		Location: n.Loc(),
		ArrAccess: &bound.ArrayAccess{Base: base, Index: index},
	}
}

func (b *Binder) bindBinary(n *ast.Binary) *bound.Node {
	left := b.bindNode(n.Left)
	right := b.bindNode(n.Right)
	return &bound.Node{
		Kind:     bound.KindBinary,
		Type:     left.Type,
		Location: n.Loc(),
		Bin:      &bound.Binary{Left: left, Op: bound.BinaryOp(n.Op), Right: right},
	}
}

func (b *Binder) bindAssignmentStatement(n *ast.Assignment) *bound.Node {
	lhs := b.bindNode(n.Target)
	value := b.bindExprAs(n.Value, lhs.Type)
	return &bound.Node{
		Kind:       bound.KindAssignmentStatement,
		Type:       types.Void,
		Location:   n.Loc(),
		Assignment: &bound.AssignmentStatement{Lhs: lhs, Value: value},
	}
}

func (b *Binder) bindDict(n *ast.Dict) *bound.Node {
	entries := make([]bound.DictEntry, 0, len(n.Entries))
	for _, item := range n.Entries.Nodes() {
		key := b.text(item.Key)
		value := b.bindNode(item.Value)
		entries = append(entries, bound.DictEntry{Name: key, Value: value})
	}
	return &bound.Node{
		Kind:        bound.KindDict,
		Type:        types.DynamicDict,
		Location:    n.Loc(),
		DictEntries: entries,
	}
}

func (b *Binder) bindArray(n *ast.Array) *bound.Node {
	elems := n.Elements.Nodes()
	nodes := make([]*bound.Node, len(elems))
	elemType := types.Void
	for i, e := range elems {
		nodes[i] = b.bindNode(e)
		if i == 0 {
			elemType = nodes[i].Type
		}
	}
	return &bound.Node{
		Kind:       bound.KindArray,
		Type:       b.types.Array(elemType),
		Location:   n.Loc(),
		ArrayElems: nodes,
	}
}

func (b *Binder) bindPostInitialization(n *ast.PostInitialization) *bound.Node {
	base := b.bindNode(n.Operand)
	entries := make([]bound.DictEntry, 0, len(n.Dict.Entries))
	for _, item := range n.Dict.Entries.Nodes() {
		name := b.text(item.Key)
		target, ok := fieldType(b.types, base.Type, name)
		var value *bound.Node
		if !ok {
			b.sink.ReportUnknownMember(name, b.types.Describe(base.Type), item.Loc())
			b.bindNode(item.Value) // still bind for further diagnostics
			value = bound.Error(item.Value.Loc())
		} else {
			value = b.bindExprAs(item.Value, target)
		}
		entries = append(entries, bound.DictEntry{Name: name, Value: value})
	}
	dict := &bound.Node{Kind: bound.KindDict, Type: types.DynamicDict, Location: n.Dict.Loc(), DictEntries: entries}
	return &bound.Node{
		Kind:     bound.KindPostInitialization,
		Type:     base.Type,
		Location: n.Loc(),
		PostInit: &bound.PostInitialization{Base: base, Dict: dict},
	}
}

func (b *Binder) bindSlideStatement(n *ast.Slide) *bound.Node {
	b.createScope()
	bgID := b.vars.CreateOrGet("background", n.Name.Location)
	b.registerID(bgID, "background", b.types.Background(), n.Name.Location)

	body := make([]*bound.Node, 0, len(n.Body))
	for _, stmt := range n.Body.Nodes() {
		body = append(body, b.bindNode(stmt))
	}
	b.dropScope()

	name := b.text(n.Name)
	id, ok := b.registerName(name, b.types.Slide(), n.Name.Location)
	if !ok {
		return bound.Error(n.Loc())
	}
	return &bound.Node{
		Kind:     bound.KindSlideStatement,
		Type:     b.types.Slide(),
		Location: n.Loc(),
		Slide:    &bound.SlideStatement{Name: id, Body: body},
	}
}

func (b *Binder) bindStylingStatement(n *ast.Styling) *bound.Node {
	typeName := b.text(n.TypeName)
	var kind bound.StylingKind
	switch typeName {
	case "Label":
		kind = bound.StylingLabel
	case "Image":
		kind = bound.StylingImage
	case "Slide":
		kind = bound.StylingSlide
	default:
		b.sink.ReportUnexpectedStylingType(typeName, n.TypeName.Location)
		return bound.Error(n.Loc())
	}

	b.createScope()
	bgID := b.vars.CreateOrGet("background", n.Name.Location)
	b.registerID(bgID, "background", b.types.Background(), n.Name.Location)

	switch kind {
	case bound.StylingLabel:
		id := b.vars.CreateOrGet("text_color", n.Name.Location)
		b.registerID(id, "text_color", b.types.Color(), n.Name.Location)
		textID := b.vars.CreateOrGet("text", n.Name.Location)
		b.registerID(textID, "text", b.types.TextStyling(), n.Name.Location)
	case bound.StylingImage:
		id := b.vars.CreateOrGet("object_fit", n.Name.Location)
		b.registerID(id, "object_fit", b.types.ObjectFit(), n.Name.Location)
	}

	body := make([]*bound.Node, 0, len(n.Body))
	for _, stmt := range n.Body.Nodes() {
		body = append(body, b.bindNode(stmt))
	}
	b.dropScope()

	name := b.text(n.Name)
	id, ok := b.registerName(name, b.types.Styling(), n.Name.Location)
	if !ok {
		return bound.Error(n.Loc())
	}
	return &bound.Node{
		Kind:     bound.KindStylingStatement,
		Type:     b.types.Styling(),
		Location: n.Loc(),
		Styling:  &bound.StylingStatement{Name: id, Kind: kind, Body: body},
	}
}

func (b *Binder) bindParameters(params ast.ParameterBlock) []bound.Parameter {
	out := make([]bound.Parameter, 0, len(params.Params))
	for _, p := range params.Params.Nodes() {
		typ, ok := b.resolveTypeName(b.text(p.TypeName), p.TypeName.Location)
		if !ok {
			b.sink.ReportUnknownVariable(b.text(p.TypeName), p.TypeName.Location)
			typ = types.Error
		}
		var def *bound.Node
		if p.Default != nil {
			def = b.bindExprAs(p.Default, typ)
		}
		name := b.text(p.Name)
		id, _ := b.registerName(name, typ, p.Name.Location)
		out = append(out, bound.Parameter{Variable: id, Type: typ, Default: def})
	}
	return out
}

func (b *Binder) bindElementStatement(n *ast.Element) *bound.Node {
	b.createScope()
	params := b.bindParameters(n.Params)
	body := make([]*bound.Node, 0, len(n.Body))
	for _, stmt := range n.Body.Nodes() {
		body = append(body, b.bindNode(stmt))
	}
	b.dropScope()

	args := make([]types.TypeId, len(params))
	for i, p := range params {
		args[i] = p.Type
	}
	fnType := b.types.Function(args, b.types.Element(), len(params))
	name := b.text(n.Name)
	id, ok := b.registerName(name, fnType, n.Name.Location)
	if !ok {
		return bound.Error(n.Loc())
	}
	return &bound.Node{
		Kind:     bound.KindElementStatement,
		Type:     fnType,
		Location: n.Loc(),
		Element:  &bound.ElementStatement{Name: id, Parameters: params, Body: body},
	}
}

func (b *Binder) bindTemplateStatement(n *ast.Template) *bound.Node {
	b.createScope()
	params := b.bindParameters(n.Params)
	body := make([]*bound.Node, 0, len(n.Body))
	for _, stmt := range n.Body.Nodes() {
		body = append(body, b.bindNode(stmt))
	}
	b.dropScope()

	args := make([]types.TypeId, len(params))
	for i, p := range params {
		args[i] = p.Type
	}
	fnType := b.types.Function(args, b.types.Element(), len(params))
	name := b.text(n.Name)
	id, ok := b.registerName(name, fnType, n.Name.Location)
	if !ok {
		return bound.Error(n.Loc())
	}
	return &bound.Node{
		Kind:     bound.KindTemplateStatement,
		Type:     fnType,
		Location: n.Loc(),
		Template: &bound.TemplateStatement{Name: id, Parameters: params, Body: body},
	}
}

func (b *Binder) bindImportStatement(n *ast.Import) *bound.Node {
	typeName := b.text(n.TypeName)
	path := b.text(n.Path)
	if len(path) >= 2 {
		path = path[1 : len(path)-1]
	}
	placement := bound.PlacementUnknown
	if ast.ClassifyImportPath(path) == ast.PlacementHtmlHead {
		placement = bound.PlacementHtmlHead
	}
	switch typeName {
	case "HtmlHead":
		placement = bound.PlacementHtmlHead
	case "JavascriptInit":
		placement = bound.PlacementJavascriptInit
	case "JavascriptSlideChange":
		placement = bound.PlacementJavascriptSlideChange
	}
	return &bound.Node{
		Kind:     bound.KindImportStatement,
		Type:     types.Void,
		Location: n.Loc(),
		Import:   &bound.ImportStatement{Path: path, Placement: placement},
	}
}

