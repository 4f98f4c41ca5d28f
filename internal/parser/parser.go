// Copyright (c) 2026 The slidec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

// Package parser is a hand-written recursive-descent parser building the
// concrete syntax tree defined in package ast. Its defining property is
// progress-totality (spec §4.2, §8): for any token sequence, ParseFile
// terminates having consumed every token up to Eof. Every loop in this file
// follows the same pattern — record the position before parsing a child,
// and if the child failed to advance, consume one token as an Error node.
package parser

import (
	"github.com/brackenforge/slidec/internal/ast"
	"github.com/brackenforge/slidec/internal/diag"
	"github.com/brackenforge/slidec/internal/token"
)

// Parser holds the token stream and the current read position.
type Parser struct {
	tokens []token.Token
	pos    int
	sink   *diag.Sink
}

// New returns a parser over tokens, reporting diagnostics to sink.
func New(tokens []token.Token, sink *diag.Sink) *Parser {
	return &Parser{tokens: tokens, sink: sink}
}

// ParseFile parses an entire token stream into an Ast. It always consumes
// every token (spec §8, parser totality).
func ParseFile(tokens []token.Token, sink *diag.Sink) *ast.Ast {
	p := New(tokens, sink)
	var stmts []ast.Stmt
	for !p.atEof() {
		before := p.pos
		stmt := p.parseTopLevelStatement()
		stmts = append(stmts, p.ensureProgress(before, stmt))
	}
	return &ast.Ast{Statements: stmts, Eof: p.cur()}
}

func (p *Parser) cur() token.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return p.tokens[len(p.tokens)-1] // the Eof token, always present.
}

// peek returns the token one past the current one, or Eof if none remains.
func (p *Parser) peek() token.Token {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *Parser) atEof() bool {
	return p.cur().Kind == token.Eof
}

func (p *Parser) check(k token.Kind) bool {
	return p.cur().Kind == k
}

func (p *Parser) checkChar(c byte) bool {
	return p.cur().Kind == token.SingleChar && p.cur().Char == c
}

// advance returns the current token and moves past it, unless already at
// Eof (advancing past Eof would violate progress-totality in the other
// direction: it must never run out of tokens to return).
func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

// expect consumes the current token if it has kind k, reporting a
// diagnostic and leaving the position unchanged otherwise.
func (p *Parser) expect(k token.Kind) (token.Token, bool) {
	if p.check(k) {
		return p.advance(), true
	}
	cur := p.cur()
	p.sink.ReportUnexpectedToken(cur.Kind.String(), k.String(), cur.Location)
	return cur, false
}

// expectChar consumes the current token if it is the single-char token c.
func (p *Parser) expectChar(c byte) (token.Token, bool) {
	if p.checkChar(c) {
		return p.advance(), true
	}
	cur := p.cur()
	p.sink.ReportUnexpectedToken(cur.Kind.String(), string(c), cur.Location)
	return cur, false
}

// ensureProgress implements the must-consume recovery contract (spec §4.2):
// if parsing a child did not move the position forward, it consumes one
// token itself and wraps it as a consumed Error node.
func (p *Parser) ensureProgress(before int, node ast.Stmt) ast.Stmt {
	if p.pos != before {
		return node
	}
	tok := p.advance()
	return ast.NewError(tok.Location, true)
}

// ensureExprProgress is ensureProgress's expression-level counterpart. The
// expression-precedence loops in expressions.go check progress inline and
// do not call it.
func (p *Parser) ensureExprProgress(before int, node ast.Expr) ast.Expr {
	if p.pos != before {
		return node
	}
	tok := p.advance()
	return ast.NewError(tok.Location, true)
}
