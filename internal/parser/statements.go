package parser

import (
	"github.com/brackenforge/slidec/internal/ast"
	"github.com/brackenforge/slidec/internal/source"
	"github.com/brackenforge/slidec/internal/token"
)

// isTopLevelKeyword reports whether k starts a new top-level statement,
// which is also where a body implicitly ends (spec §4.2).
func isTopLevelKeyword(k token.Kind) bool {
	switch k {
	case token.SlideKw, token.StylingKw, token.ElementKw, token.ImportKw, token.TemplateKw, token.GlobalKw:
		return true
	}
	return false
}

func (p *Parser) parseTopLevelStatement() ast.Stmt {
	switch p.cur().Kind {
	case token.SlideKw:
		return p.parseSlide()
	case token.StylingKw:
		return p.parseStyling()
	case token.ElementKw:
		return p.parseElement()
	case token.TemplateKw:
		return p.parseTemplate()
	case token.ImportKw:
		return p.parseImport()
	case token.GlobalKw:
		return p.parseGlobal()
	case token.LetKw:
		stmt := p.parseVariableDecl()
		if p.checkChar(';') {
			p.advance()
		}
		return stmt
	default:
		cur := p.cur()
		p.sink.ReportInvalidTopLevelStatement(cur.Kind.String(), cur.Location)
		return ast.NewError(cur.Location, false)
	}
}

// parseBody parses statements until the next top-level keyword or Eof
// (spec §4.2: "A body ends at the next top-level-statement keyword or
// Eof.").
func (p *Parser) parseBody() ast.List[ast.Stmt] {
	var body ast.List[ast.Stmt]
	for !p.atEof() && !isTopLevelKeyword(p.cur().Kind) {
		before := p.pos
		stmt := p.parseBodyStatement()
		stmt = p.ensureProgress(before, stmt)
		var sep *token.Token
		if p.checkChar(';') {
			t := p.advance()
			sep = &t
		}
		body = append(body, ast.Item[ast.Stmt]{Node: stmt, Separator: sep})
	}
	return body
}

func (p *Parser) parseBodyStatement() ast.Stmt {
	if p.check(token.LetKw) {
		return p.parseVariableDecl()
	}
	start := p.pos
	expr := p.parseExpression()
	if p.checkChar('=') {
		p.advance()
		value := p.parseExpression()
		return &ast.Assignment{
			Base:   ast.At(source.Combine(expr.Loc(), value.Loc())),
			Target: expr,
			Value:  value,
		}
	}
	if p.pos == start {
		// parseExpression reported and did not advance; let the caller's
		// must-consume wrapper handle it.
		return ast.NewError(expr.Loc(), false)
	}
	return &ast.ExpressionStmt{Base: ast.At(expr.Loc()), Expression: expr}
}

func (p *Parser) parseVariableDecl() ast.Stmt {
	letTok := p.advance()
	name, _ := p.expect(token.Identifier)
	p.expectChar('=')
	value := p.parseExpression()
	return &ast.VariableDecl{
		Base:  ast.At(source.Combine(letTok.Location, value.Loc())),
		Name:  name,
		Value: value,
	}
}

func (p *Parser) parseGlobal() ast.Stmt {
	kw := p.advance()
	name, _ := p.expect(token.Identifier)
	p.expectChar('=')
	value := p.parseExpression()
	p.expectChar(';')
	return &ast.Global{
		Base:  ast.At(source.Combine(kw.Location, value.Loc())),
		Name:  name,
		Value: value,
	}
}

func (p *Parser) parseSlide() ast.Stmt {
	kw := p.advance()
	name, _ := p.expect(token.Identifier)
	p.expectChar(':')
	body := p.parseBody()
	return &ast.Slide{Base: ast.At(spanFrom(kw.Location, body)), Name: name, Body: body}
}

func (p *Parser) parseStyling() ast.Stmt {
	kw := p.advance()
	name, _ := p.expect(token.Identifier)
	p.expectChar('(')
	typeName, _ := p.expect(token.Identifier)
	p.expectChar(')')
	p.expectChar(':')
	body := p.parseBody()
	return &ast.Styling{Base: ast.At(spanFrom(kw.Location, body)), Name: name, TypeName: typeName, Body: body}
}

func (p *Parser) parseElement() ast.Stmt {
	kw := p.advance()
	name, _ := p.expect(token.Identifier)
	params := p.parseParameterBlock()
	p.expectChar(':')
	body := p.parseBody()
	return &ast.Element{Base: ast.At(spanFrom(kw.Location, body)), Name: name, Params: params, Body: body}
}

func (p *Parser) parseTemplate() ast.Stmt {
	kw := p.advance()
	name, _ := p.expect(token.Identifier)
	params := p.parseParameterBlock()
	p.expectChar(':')
	body := p.parseBody()
	return &ast.Template{Base: ast.At(spanFrom(kw.Location, body)), Name: name, Params: params, Body: body}
}

func (p *Parser) parseImport() ast.Stmt {
	kw := p.advance()
	typeName, _ := p.expect(token.Identifier)
	path, _ := p.expect(token.String)
	semi, _ := p.expectChar(';')
	end := semi.Location
	if end.Length == 0 && end.Start == 0 {
		end = path.Location
	}
	return &ast.Import{Base: ast.At(source.Combine(kw.Location, end)), TypeName: typeName, Path: path}
}

func (p *Parser) parseParameterBlock() ast.ParameterBlock {
	open, _ := p.expectChar('(')
	var params ast.List[ast.Parameter]
	for !p.atEof() && !p.checkChar(')') {
		before := p.pos
		param := p.parseParameter()
		var sep *token.Token
		if p.checkChar(',') {
			t := p.advance()
			sep = &t
		}
		params = append(params, ast.Item[ast.Parameter]{Node: param, Separator: sep})
		if p.pos == before {
			t := p.advance()
			_ = t
		}
	}
	closeTok, _ := p.expectChar(')')
	return ast.ParameterBlock{Base: ast.At(source.Combine(open.Location, closeTok.Location)), Params: params}
}

func (p *Parser) parseParameter() ast.Parameter {
	name, _ := p.expect(token.Identifier)
	p.expectChar(':')
	typeName, _ := p.expect(token.Identifier)
	var def ast.Expr
	end := typeName.Location
	if p.checkChar('=') {
		p.advance()
		def = p.parseExpression()
		end = def.Loc()
	}
	return ast.Parameter{Base: ast.At(source.Combine(name.Location, end)), Name: name, TypeName: typeName, Default: def}
}

// spanFrom returns the location spanning start through the end of body's
// last statement, or start alone if body is empty.
func spanFrom(start source.Location, body ast.List[ast.Stmt]) source.Location {
	if len(body) == 0 {
		return start
	}
	return source.Combine(start, body[len(body)-1].Node.Loc())
}
