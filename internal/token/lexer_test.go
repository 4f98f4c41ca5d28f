package token

import (
	"testing"

	"github.com/brackenforge/slidec/internal/diag"
	"github.com/brackenforge/slidec/internal/source"
)

func lexAll(t *testing.T, src string) ([]Token, *diag.Sink) {
	t.Helper()
	files := source.NewFiles()
	id := files.Add("test.sld", src)
	sink := diag.NewSink(files)
	toks := Lex(source.Location{File: id, Start: 0, Length: len(src)}, files, sink)
	return toks, sink
}

func kinds(toks []Token) []Kind {
	ks := make([]Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func assertKinds(t *testing.T, src string, want []Kind) {
	t.Helper()
	toks, _ := lexAll(t, src)
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("lex(%q) = %v, want %v", src, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("lex(%q)[%d] = %v, want %v (full: %v)", src, i, got[i], want[i], got)
		}
	}
}

var kindTests = map[string][]Kind{
	``:                 {Eof},
	`a`:                 {Identifier, Eof},
	`let`:               {LetKw, Eof},
	`slide`:             {SlideKw, Eof},
	`styling`:           {StylingKw, Eof},
	`element`:           {ElementKw, Eof},
	`import`:            {ImportKw, Eof},
	`template`:          {TemplateKw, Eof},
	`global`:            {GlobalKw, Eof},
	`123`:               {Number, Eof},
	`1.5`:               {Number, Eof},
	`1_000`:             {Number, Eof},
	`"hi"`:              {String, Eof},
	`''`:                {FormatString, Eof},
	`'{a}'`:             {FormatString, Eof},
	`: ; = ( ) . , { } [ ] % - + * | &`: {SingleChar, SingleChar, SingleChar, SingleChar, SingleChar, SingleChar, SingleChar, SingleChar, SingleChar, SingleChar, SingleChar, SingleChar, SingleChar, SingleChar, SingleChar, SingleChar, SingleChar, Eof},
	"let x = 1;":        {LetKw, Identifier, SingleChar, Number, SingleChar, Eof},
}

func TestLexKinds(t *testing.T) {
	for src, want := range kindTests {
		assertKinds(t, src, want)
	}
}

func TestLexUnexpectedCharRecovers(t *testing.T) {
	toks, sink := lexAll(t, "a ~ b")
	if sink.IsEmpty() {
		t.Fatal("expected a diagnostic for the unexpected character")
	}
	got := kinds(toks)
	want := []Kind{Identifier, Error, Identifier, Eof}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestLexMultilineString(t *testing.T) {
	toks, sink := lexAll(t, `""" hello """`)
	if !sink.IsEmpty() {
		t.Fatalf("unexpected diagnostics: %v", sink.All())
	}
	if len(toks) != 2 || toks[0].Kind != String {
		t.Fatalf("got %v, want a single String token then Eof", kinds(toks))
	}
}

func TestTrailingCommentAttachesToPreviousToken(t *testing.T) {
	toks, _ := lexAll(t, "let x = 1; // comment\nlet y = 2;")
	// the ';' token following '1' is on the same line as the comment.
	var semi Token
	found := false
	for _, tok := range toks {
		if tok.Kind == SingleChar && tok.Char == ';' && !found {
			semi = tok
			found = true
			break
		}
	}
	if !found {
		t.Fatal("expected a ';' token")
	}
	if semi.Trivia.TrailingComments == nil {
		t.Fatal("expected the comment to attach as trailing trivia of ';'")
	}
}

func TestLeadingCommentAttachesToNextToken(t *testing.T) {
	toks, _ := lexAll(t, "// comment\nlet x = 1;")
	if len(toks) == 0 || toks[0].Kind != LetKw {
		t.Fatalf("expected first token to be 'let', got %v", kinds(toks))
	}
	if toks[0].Trivia.LeadingComments == nil {
		t.Fatal("expected leading comment trivia on 'let'")
	}
}

func TestBlankLineSeparation(t *testing.T) {
	toks, _ := lexAll(t, "let x = 1;\n\nlet y = 2;")
	var secondLet Token
	count := 0
	for _, tok := range toks {
		if tok.Kind == LetKw {
			count++
			if count == 2 {
				secondLet = tok
			}
		}
	}
	if count != 2 {
		t.Fatalf("expected two 'let' tokens, got %d", count)
	}
	if !secondLet.Trivia.LeadingBlankLine {
		t.Fatal("expected the blank line before the second 'let' to be recorded")
	}
}

func TestCombineAdjacentFuses(t *testing.T) {
	toks, _ := lexAll(t, "16px")
	if len(toks) < 2 || toks[0].Kind != Number {
		t.Fatalf("expected a Number token, got %v", kinds(toks))
	}
	fused, ok := Combine(toks[0], toks[1], StyleUnitLiteral)
	if !ok {
		t.Fatal("expected adjacent Number and Identifier to combine")
	}
	if fused.Kind != StyleUnitLiteral {
		t.Fatalf("fused.Kind = %v, want StyleUnitLiteral", fused.Kind)
	}
}

func TestLoneSlashIsNotAToken(t *testing.T) {
	// A single '/' is only ever meaningful as the start of a "//" comment;
	// on its own it is reported and produces no token at all, matching the
	// original lexer's dedicated '/' branch.
	toks, sink := lexAll(t, "a / b")
	if sink.IsEmpty() {
		t.Fatal("expected a diagnostic for the lone '/'")
	}
	got := kinds(toks)
	want := []Kind{Identifier, Identifier, Eof}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestCombineNonAdjacentFails(t *testing.T) {
	toks, _ := lexAll(t, "16 px")
	_, ok := Combine(toks[0], toks[1], StyleUnitLiteral)
	if ok {
		t.Fatal("expected non-adjacent tokens to fail to combine")
	}
}
