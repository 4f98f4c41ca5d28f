// Copyright (c) 2026 The slidec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

// Package diag accumulates located diagnostics produced while lexing,
// parsing and binding a source file. Diagnostics are not Go errors: they are
// buffered and reported together once binding finishes, and their presence
// simply means evaluation is skipped (spec §4.3, §7).
package diag

import (
	"fmt"
	"io"

	"github.com/brackenforge/slidec/internal/source"
)

// Diagnostic is one located error message.
type Diagnostic struct {
	Message  string
	Location source.Location
}

// Sink buffers diagnostics reported during compilation.
type Sink struct {
	files *source.Files
	diags []Diagnostic
}

// NewSink returns an empty sink that formats positions against files.
func NewSink(files *source.Files) *Sink {
	return &Sink{files: files}
}

// IsEmpty reports whether no diagnostics have been recorded.
func (s *Sink) IsEmpty() bool {
	return len(s.diags) == 0
}

// All returns every diagnostic recorded so far, in report order.
func (s *Sink) All() []Diagnostic {
	return s.diags
}

func (s *Sink) report(loc source.Location, format string, args ...any) {
	s.diags = append(s.diags, Diagnostic{Message: fmt.Sprintf(format, args...), Location: loc})
}

// Report appends a diagnostic message at loc without any particular shape;
// the typed Report* helpers below should be preferred where one exists.
func (s *Sink) Report(loc source.Location, format string, args ...any) {
	s.report(loc, format, args...)
}

// ReportUnexpectedChar reports a byte the lexer could not classify.
func (s *Sink) ReportUnexpectedChar(ch byte, loc source.Location) {
	s.report(loc, "unexpected character %q", ch)
}

// ReportUnexpectedToken reports a token the parser did not expect, naming
// what it was looking for.
func (s *Sink) ReportUnexpectedToken(found, expected string, loc source.Location) {
	s.report(loc, "unexpected token %q (expected %s)", found, expected)
}

// ReportExpectedExpression reports that the parser needed an expression and
// found something else.
func (s *Sink) ReportExpectedExpression(found string, loc source.Location) {
	s.report(loc, "expected expression, found %q instead", found)
}

// ReportInvalidTopLevelStatement reports a token that cannot start any
// top-level statement.
func (s *Sink) ReportInvalidTopLevelStatement(found string, loc source.Location) {
	s.report(loc, "invalid top-level statement: %q", found)
}

// ReportUnknownVariable reports a reference to an undeclared variable.
func (s *Sink) ReportUnknownVariable(name string, loc source.Location) {
	s.report(loc, "unknown variable %q", name)
}

// ReportUnknownMember reports access to a member that does not exist on typ.
func (s *Sink) ReportUnknownMember(member, typ string, loc source.Location) {
	s.report(loc, "unknown member %q of %s", member, typ)
}

// ReportUnexpectedStylingType reports a styling block targeting a type that
// cannot be styled.
func (s *Sink) ReportUnexpectedStylingType(typ string, loc source.Location) {
	s.report(loc, "unexpected styling type %q", typ)
}

// ReportUnknownTypedStringPrefix reports an unrecognised typed-string
// prefix, such as `q"..."`.
func (s *Sink) ReportUnknownTypedStringPrefix(prefix string, loc source.Location) {
	s.report(loc, "unknown typed-string prefix %q", prefix)
}

// ReportCannotConvert reports that a value of type from cannot be converted
// to type to.
func (s *Sink) ReportCannotConvert(from, to string, loc source.Location) {
	s.report(loc, "cannot convert %s to %s", from, to)
}

// ReportRedeclaration reports a variable declared a second time in the same
// scope, naming where it was first declared.
func (s *Sink) ReportRedeclaration(name string, loc, previous source.Location) {
	s.report(loc, "redeclaration of variable %q, previously declared at %s", name, s.files.Position(previous))
}

// ReportArgumentCountMismatch reports a call with the wrong number of
// arguments.
func (s *Sink) ReportArgumentCountMismatch(name string, got, wantMin, wantMax int, loc source.Location) {
	if wantMin == wantMax {
		s.report(loc, "%q expects %d argument(s), got %d", name, wantMin, got)
	} else {
		s.report(loc, "%q expects between %d and %d argument(s), got %d", name, wantMin, wantMax, got)
	}
}

// Write formats every diagnostic as "[file:line] message", one per line.
func (s *Sink) Write(w io.Writer) error {
	for _, d := range s.diags {
		pos := s.files.Position(d.Location)
		if _, err := fmt.Fprintf(w, "[%s] %s\n", pos, d.Message); err != nil {
			return err
		}
	}
	return nil
}
