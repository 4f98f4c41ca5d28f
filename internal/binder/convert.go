// Copyright (c) 2026 The slidec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package binder

import (
	"github.com/brackenforge/slidec/internal/bound"
	"github.com/brackenforge/slidec/internal/types"
)

// canConvertImplicitly reports whether a value of type from may be widened
// to type to without an explicit typed-string prefix. Identity always
// converts. This table is broader than original_source's: it additionally
// allows Label/Image/Grid/Flex/CustomElement -> Element, matching spec.md
// §4.4's wider implicit-conversion list.
func canConvertImplicitly(in *types.Interner, from, to types.TypeId) bool {
	if from == to {
		return true
	}
	if in.IsError(from) || in.IsError(to) {
		return true
	}
	if from == types.Integer && to == types.Float {
		return true
	}
	if from == in.Color() && to == in.Background() {
		return true
	}
	switch from {
	case in.Label(), in.Image(), in.Grid(), in.Flex():
		if to == in.Element() {
			return true
		}
	}
	if in.Resolve(from).Kind == types.KindCustomElement && to == in.Element() {
		return true
	}
	return false
}

// bindConversion wraps node in an implicit Conversion to target if needed,
// reports a *cannot convert* diagnostic and returns a bound.Error node if
// the conversion is not allowed, or returns node unchanged if no conversion
// is needed.
func (b *Binder) bindConversion(node *bound.Node, target types.TypeId) *bound.Node {
	if bound.IsError(node) {
		return node
	}
	if node.Type == target {
		return node
	}
	if !canConvertImplicitly(b.types, node.Type, target) {
		b.sink.ReportCannotConvert(b.types.Describe(node.Type), b.types.Describe(target), node.Location)
		return bound.Error(node.Location)
	}
	return &bound.Node{
		Kind:     bound.KindConversion,
		Type:     target,
		Location: node.Location,
		Conv:     &bound.Conversion{Base: node, Kind: bound.ConversionImplicit},
	}
}
