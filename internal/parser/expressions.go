package parser

import (
	"github.com/brackenforge/slidec/internal/ast"
	"github.com/brackenforge/slidec/internal/source"
	"github.com/brackenforge/slidec/internal/token"
)

// parseExpression is the entry point into the precedence chain (spec §4.2).
// The chain is, lowest to highest precedence: mul/div, add/minus, and/or,
// post-init, call/index/member, primary — inverted from typical arithmetic
// precedence, but that is what the grammar specifies and this mirrors it
// exactly rather than "fixing" it.
func (p *Parser) parseExpression() ast.Expr {
	return p.parseMulDiv()
}

func (p *Parser) parseMulDiv() ast.Expr {
	lhs := p.parseAddMinus()
	for p.checkChar('*') || p.checkChar('/') {
		op := p.advance()
		rhs := p.parseAddMinus()
		lhs = p.binary(lhs, op, rhs)
	}
	return lhs
}

func (p *Parser) parseAddMinus() ast.Expr {
	lhs := p.parseAndOr()
	for p.checkChar('+') || p.checkChar('-') {
		op := p.advance()
		rhs := p.parseAndOr()
		lhs = p.binary(lhs, op, rhs)
	}
	return lhs
}

func (p *Parser) parseAndOr() ast.Expr {
	lhs := p.parsePostInit()
	for p.checkChar('&') || p.checkChar('|') {
		op := p.advance()
		rhs := p.parsePostInit()
		lhs = p.binary(lhs, op, rhs)
	}
	return lhs
}

func (p *Parser) binary(lhs ast.Expr, op token.Token, rhs ast.Expr) ast.Expr {
	var kind ast.BinaryOp
	switch op.Char {
	case '&':
		kind = ast.OpAnd
	case '|':
		kind = ast.OpOr
	case '+':
		kind = ast.OpAdd
	case '-':
		kind = ast.OpSub
	case '*':
		kind = ast.OpMul
	case '/':
		kind = ast.OpDiv
	}
	return &ast.Binary{
		Base:  ast.At(source.Combine(lhs.Loc(), rhs.Loc())),
		Left:  lhs,
		Op:    kind,
		OpTok: op,
		Right: rhs,
	}
}

// parsePostInit is `call-chain` optionally followed by `{ dict }` (spec
// §4.2 rule 1).
func (p *Parser) parsePostInit() ast.Expr {
	expr := p.parseCallChain()
	if p.checkChar('{') {
		dict := p.parseDict()
		return &ast.PostInitialization{
			Base:    ast.At(source.Combine(expr.Loc(), dict.Loc())),
			Operand: expr,
			Dict:    *dict,
		}
	}
	return expr
}

// parseCallChain is the left-associative postfix chain of call, index and
// member-access operators (spec §4.2 rule 5).
func (p *Parser) parseCallChain() ast.Expr {
	base := p.parsePrimary()
	for {
		switch {
		case p.checkChar('('):
			lparen := p.advance()
			var args ast.List[ast.Expr]
			for !p.atEof() && !p.checkChar(')') {
				before := p.pos
				arg := p.parseExpression()
				var sep *token.Token
				if p.checkChar(',') {
					t := p.advance()
					sep = &t
				}
				args = append(args, ast.Item[ast.Expr]{Node: arg, Separator: sep})
				if p.pos == before {
					t := p.advance()
					args = append(args, ast.Item[ast.Expr]{Node: ast.NewError(t.Location, true)})
				}
			}
			rparen, _ := p.expectChar(')')
			base = &ast.FunctionCall{
				Base:      ast.At(source.Combine(lparen.Location, rparen.Location)),
				Callee:    base,
				Arguments: args,
			}
		case p.checkChar('['):
			lbracket := p.advance()
			index := p.parseExpression()
			rbracket, _ := p.expectChar(']')
			base = &ast.ArrayAccess{
				Base:    ast.At(source.Combine(lbracket.Location, rbracket.Location)),
				Operand: base,
				Index:   index,
			}
		case p.checkChar('.'):
			p.advance()
			member, _ := p.expect(token.Identifier)
			base = &ast.MemberAccess{
				Base:    ast.At(source.Combine(base.Loc(), member.Location)),
				Operand: base,
				Member:  member,
			}
		default:
			return base
		}
	}
}

func (p *Parser) parsePrimary() ast.Expr {
	switch p.cur().Kind {
	case token.Identifier:
		if peek := p.peek(); peek.Kind == token.String || peek.Kind == token.FormatString {
			name := p.advance()
			value := p.advance()
			return &ast.TypedString{
				Base:   ast.At(source.Combine(name.Location, value.Location)),
				Prefix: name,
				Value:  value,
			}
		}
		name := p.advance()
		return &ast.VariableRef{Base: ast.At(name.Location), Name: name}
	case token.Number:
		num := p.advance()
		if p.check(token.Identifier) || p.checkChar('%') {
			unit := p.advance()
			combined, ok := token.Combine(num, unit, token.StyleUnitLiteral)
			if !ok {
				return ast.NewError(combined.Location, true)
			}
			return &ast.Literal{Base: ast.At(combined.Location), Token: combined}
		}
		return &ast.Literal{Base: ast.At(num.Location), Token: num}
	case token.String:
		str := p.advance()
		return &ast.Literal{Base: ast.At(str.Location), Token: str}
	case token.FormatString:
		str := p.advance()
		return &ast.FormatStringExpr{Base: ast.At(str.Location), Token: str}
	case token.SingleChar:
		switch p.cur().Char {
		case '{':
			return p.parseDict()
		case '[':
			return p.parseArray()
		case '.':
			return p.parseInferredMember()
		}
	}
	cur := p.cur()
	p.sink.ReportExpectedExpression(cur.Kind.String(), cur.Location)
	return ast.NewError(cur.Location, false)
}

func (p *Parser) parseInferredMember() ast.Expr {
	dot, _ := p.expectChar('.')
	member, _ := p.expect(token.Identifier)
	return &ast.InferredMember{Base: ast.At(source.Combine(dot.Location, member.Location)), Member: member}
}

func (p *Parser) parseDict() *ast.Dict {
	lbrace, _ := p.expectChar('{')
	var entries ast.List[ast.DictEntry]
	for !p.atEof() && !p.checkChar('}') {
		before := p.pos
		key, _ := p.expect(token.Identifier)
		p.expectChar(':')
		value := p.parseExpression()
		entry := ast.DictEntry{Base: ast.At(source.Combine(key.Location, value.Loc())), Key: key, Value: value}
		var sep *token.Token
		if p.checkChar(',') {
			t := p.advance()
			sep = &t
		}
		entries = append(entries, ast.Item[ast.DictEntry]{Node: entry, Separator: sep})
		if p.pos == before {
			// A DictEntry always requires an identifier and a value; on
			// failure to progress at all, consume one token and retry
			// rather than recording a placeholder entry (unlike Expr, a
			// DictEntry has no Error variant to fall back to).
			p.advance()
		}
	}
	rbrace, _ := p.expectChar('}')
	return &ast.Dict{Base: ast.At(source.Combine(lbrace.Location, rbrace.Location)), Entries: entries}
}

func (p *Parser) parseArray() ast.Expr {
	lbracket, _ := p.expectChar('[')
	var elems ast.List[ast.Expr]
	for !p.atEof() && !p.checkChar(']') {
		before := p.pos
		value := p.parseExpression()
		var sep *token.Token
		if p.checkChar(',') {
			t := p.advance()
			sep = &t
		}
		elems = append(elems, ast.Item[ast.Expr]{Node: value, Separator: sep})
		if p.pos == before {
			t := p.advance()
			elems = append(elems, ast.Item[ast.Expr]{Node: ast.NewError(t.Location, true)})
		}
	}
	rbracket, _ := p.expectChar(']')
	return &ast.Array{Base: ast.At(source.Combine(lbracket.Location, rbracket.Location)), Elements: elems}
}
