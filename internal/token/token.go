// Copyright (c) 2026 The slidec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

// Package token defines the lexical tokens produced by Lex and the trivia
// (comments, blank lines) attached to them. See Lex in lexer.go for the
// scanning rules.
package token

import "github.com/brackenforge/slidec/internal/source"

// Kind classifies a Token.
type Kind int

const (
	Eof Kind = iota
	Identifier
	SlideKw
	StylingKw
	ElementKw
	ImportKw
	TemplateKw
	LetKw
	GlobalKw
	Number
	SingleChar
	String
	FormatString
	Error
	StyleUnitLiteral
)

func (k Kind) String() string {
	switch k {
	case Eof:
		return "eof"
	case Identifier:
		return "identifier"
	case SlideKw:
		return "'slide'"
	case StylingKw:
		return "'styling'"
	case ElementKw:
		return "'element'"
	case ImportKw:
		return "'import'"
	case TemplateKw:
		return "'template'"
	case LetKw:
		return "'let'"
	case GlobalKw:
		return "'global'"
	case Number:
		return "number"
	case SingleChar:
		return "character"
	case String:
		return "string"
	case FormatString:
		return "format string"
	case StyleUnitLiteral:
		return "style unit"
	default:
		return "error"
	}
}

var keywords = map[string]Kind{
	"let":      LetKw,
	"slide":    SlideKw,
	"styling":  StylingKw,
	"element":  ElementKw,
	"import":   ImportKw,
	"template": TemplateKw,
	"global":   GlobalKw,
}

// Trivia records the comments and blank-line separation attached to a
// token. A comment starting on the same source line as the previous
// non-comment token attaches as that token's TrailingComments; otherwise it
// attaches as the LeadingComments of the next token (spec §4.1).
type Trivia struct {
	LeadingComments   *source.Location
	TrailingComments  *source.Location
	LeadingBlankLine  bool
}

// Token is one lexical token: a classified byte range plus its trivia.
type Token struct {
	Location source.Location
	Kind     Kind
	Char     byte // valid when Kind == SingleChar
	Trivia   Trivia
}

// Text returns the token's exact source text.
func (t Token) Text(files *source.Files) string {
	return files.Slice(t.Location)
}

// Combine fuses two adjacent tokens (a immediately followed by b, with no
// gap) into a single token of kind, carrying a's leading trivia and b's
// trailing trivia. It is used to fuse a Number immediately followed by a
// unit suffix into a StyleUnitLiteral (spec §4.1). If a and b are not
// adjacent, it returns an Error token covering their combined span instead
// and ok is false.
func Combine(a, b Token, kind Kind) (Token, bool) {
	loc := source.Combine(a.Location, b.Location)
	if a.Location.End() != b.Location.Start {
		return Token{Location: loc, Kind: Error, Trivia: a.Trivia}, false
	}
	return Token{
		Location: loc,
		Kind:     kind,
		Trivia: Trivia{
			LeadingComments:  a.Trivia.LeadingComments,
			TrailingComments: b.Trivia.TrailingComments,
			LeadingBlankLine: a.Trivia.LeadingBlankLine,
		},
	}, true
}
