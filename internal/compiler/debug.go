// Copyright (c) 2026 The slidec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package compiler

import (
	"fmt"
	"strings"

	"github.com/brackenforge/slidec/internal/bound"
)

var boundKindNames = map[bound.Kind]string{
	bound.KindError:               "Error",
	bound.KindStylingStatement:    "StylingStatement",
	bound.KindSlideStatement:      "SlideStatement",
	bound.KindElementStatement:    "ElementStatement",
	bound.KindTemplateStatement:   "TemplateStatement",
	bound.KindImportStatement:     "ImportStatement",
	bound.KindAssignmentStatement: "AssignmentStatement",
	bound.KindVariableDeclaration: "VariableDeclaration",
	bound.KindVariableReference:   "VariableReference",
	bound.KindLiteral:             "Literal",
	bound.KindFunctionCall:        "FunctionCall",
	bound.KindMemberAccess:        "MemberAccess",
	bound.KindDict:                "Dict",
	bound.KindArray:               "Array",
	bound.KindConversion:          "Conversion",
	bound.KindPostInitialization:  "PostInitialization",
	bound.KindBinary:              "Binary",
	bound.KindArrayAccess:         "ArrayAccess",
	bound.KindFormatString:        "FormatString",
	bound.KindGlobal:              "Global",
}

// describeBound renders the top-level shape of a bound tree for --dbg bind
// output: one line per top-level statement giving its index and kind.
func describeBound(statements []*bound.Node) string {
	var b strings.Builder
	for i, n := range statements {
		name, ok := boundKindNames[n.Kind]
		if !ok {
			name = fmt.Sprintf("Kind(%d)", n.Kind)
		}
		fmt.Fprintf(&b, "%d: %s\n", i, name)
	}
	return b.String()
}
