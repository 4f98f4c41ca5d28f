// Copyright (c) 2026 The slidec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package eval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/brackenforge/slidec/internal/eval/value"
	"github.com/brackenforge/slidec/internal/presentation"
	"github.com/brackenforge/slidec/internal/source"
)

// builtinFunc is one built-in implementation, looked up by name in
// evaluateFunctionCall before falling back to a user-declared element or
// template. Grounded on
// original_source/slides-lang/src/compiler/evaluator/functions.rs.
type builtinFunc func(e *Evaluator, args []value.Value, loc source.Location) value.Value

var builtinImpls = map[string]builtinFunc{
	"rgb":            builtinRGB,
	"image":          builtinImage,
	"label":          builtinLabel,
	"grid":           builtinGrid,
	"gfont":          builtinGFont,
	"brightness":     builtinBrightness,
	"string":         builtinString,
	"concat":         builtinConcat,
	"stackv":         builtinStackV,
	"stackh":         builtinStackH,
	"showAfterStep":  builtinShowAfterStep,
	"leftTop":        builtinLeftTop,
	"sizeOf":         builtinSizeOf,
	"positionInside": builtinPositionInside,
}

func builtinRGB(e *Evaluator, args []value.Value, loc source.Location) value.Value {
	r, g, b := args[0].Integer, args[1].Integer, args[2].Integer
	return value.Value{Kind: value.KindColor, Color: presentation.Color{CSS: fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)}}
}

func builtinImage(e *Evaluator, args []value.Value, loc source.Location) value.Value {
	return value.Value{Kind: value.KindImage, Image: presentation.NewImage(args[0].Path)}
}

func builtinLabel(e *Evaluator, args []value.Value, loc source.Location) value.Value {
	return value.Value{Kind: value.KindLabel, Label: presentation.NewLabel(args[0].Str)}
}

func builtinGrid(e *Evaluator, args []value.Value, loc source.Location) value.Value {
	columns := parseGridTemplate(args[0].Str)
	rows := parseGridTemplate(args[1].Str)
	return value.Value{Kind: value.KindGrid, Grid: presentation.NewGrid(columns, rows)}
}

// parseGridTemplate splits a comma-separated cell-size list (e.g. "1*,2*"
// or "200px,min") into CSS-ready GridCellSize tracks: a digit prefix before
// `*` becomes a `fr` fraction, `min` becomes `min-content`, anything else
// passes through verbatim (already a CSS length like `200px` or `auto`).
func parseGridTemplate(s string) []presentation.GridCellSize {
	parts := strings.Split(s, ",")
	out := make([]presentation.GridCellSize, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, parseCellSize(p))
	}
	return out
}

func parseCellSize(tok string) presentation.GridCellSize {
	if tok == "min" {
		return presentation.GridCellSize{Text: "min-content"}
	}
	if strings.HasSuffix(tok, "*") {
		weight := strings.TrimSuffix(tok, "*")
		if weight == "" {
			weight = "1"
		}
		return presentation.GridCellSize{Text: weight + "fr"}
	}
	return presentation.GridCellSize{Text: tok}
}

func builtinGFont(e *Evaluator, args []value.Value, loc source.Location) value.Value {
	return value.Value{Kind: value.KindFont, Font: presentation.Font{Family: args[0].Str, Google: true}}
}

func builtinBrightness(e *Evaluator, args []value.Value, loc source.Location) value.Value {
	return value.Value{Kind: value.KindFilter, Filter: presentation.Filter{CSS: fmt.Sprintf("brightness(%v)", args[0].Float)}}
}

func builtinString(e *Evaluator, args []value.Value, loc source.Location) value.Value {
	return value.Value{Kind: value.KindString, Str: strconv.FormatInt(args[0].Integer, 10)}
}

func builtinConcat(e *Evaluator, args []value.Value, loc source.Location) value.Value {
	var b strings.Builder
	for _, v := range args[0].Array {
		b.WriteString(v.Str)
	}
	return value.Value{Kind: value.KindString, Str: b.String()}
}

func builtinStackV(e *Evaluator, args []value.Value, loc source.Location) value.Value {
	return value.Value{Kind: value.KindFlex, Flex: presentation.NewFlex(elementsOf(args[0].Array), true)}
}

func builtinStackH(e *Evaluator, args []value.Value, loc source.Location) value.Value {
	return value.Value{Kind: value.KindFlex, Flex: presentation.NewFlex(elementsOf(args[0].Array), false)}
}

func elementsOf(arr value.Array) []*presentation.Element {
	out := make([]*presentation.Element, 0, len(arr))
	for _, v := range arr {
		if el := toElement(v); el != nil {
			out = append(out, el)
		}
	}
	return out
}

func builtinShowAfterStep(e *Evaluator, args []value.Value, loc source.Location) value.Value {
	return value.Value{Kind: value.KindAnimation, Animation: presentation.Animation{ShowAfterStep: int(args[0].Integer)}}
}

// builtinLeftTop and builtinSizeOf only cover the no-parent case, matching
// original_source's own functions.rs: leftTop/sizeOf both have a
// `Some(_parent) => todo!()` branch for elements nested inside a parent
// container, so this Go version is equally best-effort, not a gap this
// port introduces. Margin/padding double as the offset/extent basis in the
// absence of a real layout/geometry model (SPEC_FULL.md does not specify
// one — original_source's own web renderer owns true pixel geometry).
func builtinLeftTop(e *Evaluator, args []value.Value, loc source.Location) value.Value {
	el := toElement(args[0])
	if el == nil {
		return value.Value{Kind: value.KindPosition, Position: presentation.Position{X: "0", Y: "0"}}
	}
	return value.Value{Kind: value.KindPosition, Position: presentation.Position{
		X: styleUnitOrZero(el.Positioning.Margin.Left),
		Y: styleUnitOrZero(el.Positioning.Margin.Top),
	}}
}

func builtinSizeOf(e *Evaluator, args []value.Value, loc source.Location) value.Value {
	el := toElement(args[0])
	if el == nil {
		return value.Value{Kind: value.KindPosition, Position: presentation.Position{X: "100%", Y: "100%"}}
	}
	return value.Value{Kind: value.KindPosition, Position: presentation.Position{
		X: fmt.Sprintf("calc(100%% - %s)", styleUnitOrZero(el.Positioning.Padding.Right)),
		Y: fmt.Sprintf("calc(100%% - %s)", styleUnitOrZero(el.Positioning.Padding.Bottom)),
	}}
}

func styleUnitOrZero(u presentation.StyleUnit) string {
	if u.Text == "" {
		return "0"
	}
	return u.Text
}

// builtinPositionInside composes leftTop and sizeOf with a CSS calc()
// expression, since Position carries already-rendered CSS lengths rather
// than floats (presentation.Position's doc comment): `left_top.x + size.x *
// x` from original_source's f64 arithmetic becomes a calc() string here.
func builtinPositionInside(e *Evaluator, args []value.Value, loc source.Location) value.Value {
	leftTop := builtinLeftTop(e, args[:1], loc).Position
	size := builtinSizeOf(e, args[:1], loc).Position
	x, y := args[1].Float, args[2].Float
	return value.Value{Kind: value.KindPosition, Position: presentation.Position{
		X: fmt.Sprintf("calc(%s + (%s) * %v)", leftTop.X, size.X, x),
		Y: fmt.Sprintf("calc(%s + (%s) * %v)", leftTop.Y, size.Y, y),
	}}
}
