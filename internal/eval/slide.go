// Copyright (c) 2026 The slidec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package eval

import (
	"github.com/brackenforge/slidec/internal/bound"
	"github.com/brackenforge/slidec/internal/eval/value"
	"github.com/brackenforge/slidec/internal/presentation"
)

// evaluateSlideStatement builds one presentation.Slide: push a scope seeded
// with `background`, run the body, then on scope-drop walk its variables in
// insertion order and auto-add any Label/Image found (spec.md §5,
// grounded on evaluate_to_slide in
// original_source/slides-lang/src/compiler/evaluator/slide.rs).
func (e *Evaluator) evaluateSlideStatement(s *bound.SlideStatement) {
	slide := presentation.NewSlide()
	prevSlide := e.slide
	prevAnon := e.anonCounter
	e.slide = slide
	e.anonCounter = 0
	e.push()
	e.declare(e.wellKnown("background"), value.Value{Kind: value.KindBackground})

	for _, stmt := range s.Body {
		e.evaluateStatement(stmt)
		if e.failed() {
			break
		}
	}

	scope := e.pop()
	e.slide = prevSlide
	e.anonCounter = prevAnon
	if e.failed() {
		return
	}

	if bg, ok := scope.lookup(e.wellKnown("background")); ok && bg.Kind == value.KindBackground {
		slide.SetBackground(bg.Background)
	}
	for _, id := range scope.order {
		v := scope.values[id]
		switch v.Kind {
		case value.KindLabel:
			if v.Label.ID == "" {
				v.Label.ID = e.vars.Name(id)
			}
			slide.AddElement(&presentation.Element{
				Kind: presentation.KindLabel, ID: v.Label.ID,
				Positioning: v.Label.Positioning, Label: v.Label,
			})
		case value.KindImage:
			if v.Image.ID == "" {
				v.Image.ID = e.vars.Name(id)
			}
			slide.AddElement(&presentation.Element{
				Kind: presentation.KindImage, ID: v.Image.ID,
				Positioning: v.Image.Positioning, Image: v.Image,
			})
		}
	}

	e.presentation.AddSlide(slide)
}

// toElement narrows a composite Value back down to the generic Element
// wrapper a Grid/Flex/Slide stores its children as — the reverse of the
// Label/Image/Grid/Flex/CustomElement -> Element implicit conversion the
// binder inserts (spec.md §4.4).
func toElement(v value.Value) *presentation.Element {
	switch v.Kind {
	case value.KindLabel:
		return &presentation.Element{Kind: presentation.KindLabel, ID: v.Label.ID, Positioning: v.Label.Positioning, Label: v.Label}
	case value.KindImage:
		return &presentation.Element{Kind: presentation.KindImage, ID: v.Image.ID, Positioning: v.Image.Positioning, Image: v.Image}
	case value.KindGrid:
		return &presentation.Element{Kind: presentation.KindGrid, ID: v.Grid.ID, Grid: v.Grid}
	case value.KindFlex:
		return &presentation.Element{Kind: presentation.KindFlex, ID: v.Flex.ID, Flex: v.Flex}
	case value.KindCustomElement:
		return &presentation.Element{Kind: presentation.KindCustom, ID: v.Custom.ID, Custom: v.Custom}
	case value.KindElement:
		return v.Element
	default:
		return nil
	}
}

// maybeAutoAddElement adds a composite value produced as a bare statement
// expression to the active slide under a generated id, since it has no
// declaring variable for SetFallbackID to fall back to (spec.md §6's
// `card("hello");` worked example).
func (e *Evaluator) maybeAutoAddElement(v value.Value) {
	if e.slide == nil {
		return
	}
	el := toElement(v)
	if el == nil {
		return
	}
	el.SetFallbackID(e.nextAnonymousID())
	e.slide.AddElement(el)
}
