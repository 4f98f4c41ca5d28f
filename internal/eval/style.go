// Copyright (c) 2026 The slidec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package eval

import (
	"github.com/brackenforge/slidec/internal/bound"
	"github.com/brackenforge/slidec/internal/eval/value"
	"github.com/brackenforge/slidec/internal/presentation"
)

// evaluateStylingStatement builds one presentation.StylingDef: push a
// scope seeded with `background` plus the styling-kind-specific member
// (`text_color`+`text` for Label, `object_fit` for Image), run the body,
// then read the final member values back out of the scope (grounded on
// evaluate_styling_statement in
// original_source/slides-lang/src/compiler/evaluator.rs).
func (e *Evaluator) evaluateStylingStatement(s *bound.StylingStatement) {
	e.push()
	e.declare(e.wellKnown("background"), value.Value{Kind: value.KindBackground})
	switch s.Kind {
	case bound.StylingLabel:
		e.declare(e.wellKnown("text_color"), value.Value{Kind: value.KindColor})
		e.declare(e.wellKnown("text"), value.Value{Kind: value.KindTextStyling, Styling: &presentation.TextStyling{}})
	case bound.StylingImage:
		e.declare(e.wellKnown("object_fit"), value.Value{Kind: value.KindObjectFit})
	}

	for _, stmt := range s.Body {
		e.evaluateStatement(stmt)
		if e.failed() {
			break
		}
	}

	scope := e.pop()
	if e.failed() {
		return
	}

	def := presentation.StylingDef{Name: e.vars.Name(s.Name)}
	background := presentation.Background{}
	if bg, ok := scope.lookup(e.wellKnown("background")); ok && bg.Kind == value.KindBackground {
		background = bg.Background
	}

	switch s.Kind {
	case bound.StylingLabel:
		def.Kind = presentation.KindLabel
		ls := presentation.LabelStyling{BaseElementStyling: presentation.BaseElementStyling{Background: background}}
		if c, ok := scope.lookup(e.wellKnown("text_color")); ok && c.Kind == value.KindColor {
			ls = ls.WithTextColor(c.Color)
		}
		if t, ok := scope.lookup(e.wellKnown("text")); ok && t.Kind == value.KindTextStyling && t.Styling != nil {
			ls.Text = *t.Styling
		}
		def.Label = ls
	case bound.StylingImage:
		def.Kind = presentation.KindImage
		is := presentation.ImageStyling{BaseElementStyling: presentation.BaseElementStyling{Background: background}}
		if of, ok := scope.lookup(e.wellKnown("object_fit")); ok && of.Kind == value.KindObjectFit {
			is.ObjectFit = of.ObjectFit
		}
		def.Image = is
	case bound.StylingSlide:
		def.Kind = presentation.KindSlide
		def.Slide = presentation.SlideStyling{BaseElementStyling: presentation.BaseElementStyling{Background: background}}
	}

	ref := e.presentation.AddStyling(def)
	e.current().declare(s.Name, value.Value{Kind: value.KindStyleReference, StyleRef: value.StyleReference{Name: ref.Name}})
}
