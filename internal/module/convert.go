// Copyright (c) 2026 The slidec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package module

import (
	"fmt"

	"github.com/brackenforge/slidec/internal/eval/value"
	"github.com/brackenforge/slidec/internal/presentation"
)

// ToABI converts a native evaluator Value into the ABI arena a, allocating
// one or more slots as needed and returning the index of the root value
// (spec.md §4.6: "Host converts native Value -> ABI Value on the way in").
// This package never imports internal/eval: that package will import this
// one to dispatch a module call, so the element-narrowing logic below is a
// small, deliberately local duplicate of internal/eval's toElement rather
// than a shared helper, to keep the dependency one-directional.
func ToABI(a *ValueAllocator, v value.Value) (ValueIndex, error) {
	switch v.Kind {
	case value.KindVoid:
		return a.Alloc(Value{Kind: ValueVoid}), nil
	case value.KindString, value.KindColor, value.KindPath:
		return a.Alloc(Value{Kind: ValueString, Str: nativeToString(v)}), nil
	case value.KindInteger:
		return a.Alloc(Value{Kind: ValueInt, Int: v.Integer}), nil
	case value.KindFloat:
		return a.Alloc(Value{Kind: ValueFloat, Float: v.Float}), nil
	case value.KindStyleUnit:
		return a.Alloc(Value{Kind: ValueStyleUnit, Str: v.StyleUnit.Text}), nil
	case value.KindPosition:
		return a.Alloc(Value{Kind: ValuePosition, Position: Position{X: v.Position.X, Y: v.Position.Y}}), nil
	case value.KindDict:
		entries := make(map[string]ValueIndex, len(v.Dict))
		for name, entry := range v.Dict {
			idx, err := ToABI(a, entry)
			if err != nil {
				return ValueIndex{}, err
			}
			entries[name] = idx
		}
		return a.Alloc(Value{Kind: ValueDict, Dict: entries}), nil
	case value.KindArray:
		indices := make([]ValueIndex, len(v.Array))
		for i, elem := range v.Array {
			idx, err := ToABI(a, elem)
			if err != nil {
				return ValueIndex{}, err
			}
			indices[i] = idx
		}
		return a.Alloc(Value{Kind: ValueArray, Array: indices}), nil
	case value.KindLabel, value.KindImage, value.KindGrid, value.KindFlex, value.KindCustomElement, value.KindElement:
		el, ok := elementOf(v)
		if !ok {
			return ValueIndex{}, fmt.Errorf("module: cannot convert %v to an ABI element", v.Kind)
		}
		return a.Alloc(Value{Kind: ValueElement, Element: el}), nil
	default:
		return ValueIndex{}, fmt.Errorf("module: value kind %v has no ABI representation", v.Kind)
	}
}

// FromABI is the inverse of ToABI, applied to a module's returned
// ValueIndex (spec.md §4.6: "...and back on the way out").
func FromABI(a *ValueAllocator, idx ValueIndex) (value.Value, error) {
	v, err := a.Get(idx)
	if err != nil {
		return value.Void, err
	}
	switch v.Kind {
	case ValueVoid:
		return value.Void, nil
	case ValueString:
		return value.Value{Kind: value.KindString, Str: v.Str}, nil
	case ValueInt:
		return value.Value{Kind: value.KindInteger, Integer: v.Int}, nil
	case ValueFloat:
		return value.Value{Kind: value.KindFloat, Float: v.Float}, nil
	case ValueStyleUnit:
		return value.Value{Kind: value.KindStyleUnit, StyleUnit: presentation.StyleUnit{Text: v.Str}}, nil
	case ValuePosition:
		return value.Value{Kind: value.KindPosition, Position: presentation.Position{X: v.Position.X, Y: v.Position.Y}}, nil
	case ValueDict:
		dict := make(value.Dict, len(v.Dict))
		for name, entryIdx := range v.Dict {
			entry, err := FromABI(a, entryIdx)
			if err != nil {
				return value.Void, err
			}
			dict[name] = entry
		}
		return value.Value{Kind: value.KindDict, Dict: dict}, nil
	case ValueArray:
		arr := make(value.Array, len(v.Array))
		for i, elemIdx := range v.Array {
			elem, err := FromABI(a, elemIdx)
			if err != nil {
				return value.Void, err
			}
			arr[i] = elem
		}
		return value.Value{Kind: value.KindArray, Array: arr}, nil
	case ValueElement:
		return value.Value{Kind: value.KindElement, Element: &presentation.Element{
			Kind: presentation.KindCustom,
			ID:   v.Element.ID, ParentID: v.Element.ParentID, Namespace: v.Element.Namespace,
		}}, nil
	default:
		return value.Void, fmt.Errorf("module: ABI value kind %v has no native representation", v.Kind)
	}
}

// nativeToString extracts the CSS/path/string payload of the three Value
// kinds that cross the ABI as plain strings (spec.md §4.6: "Colours are
// passed through as strings").
func nativeToString(v value.Value) string {
	switch v.Kind {
	case value.KindColor:
		return v.Color.CSS
	case value.KindPath:
		return v.Path.Value
	default:
		return v.Str
	}
}

// elementOf narrows a composite Value down to an ABI Element reference,
// the same narrowing internal/eval's toElement performs for the host's own
// use.
func elementOf(v value.Value) (Element, bool) {
	switch v.Kind {
	case value.KindLabel:
		return Element{ID: v.Label.ID, Name: "Label"}, true
	case value.KindImage:
		return Element{ID: v.Image.ID, Name: "Image"}, true
	case value.KindGrid:
		return Element{ID: v.Grid.ID, Namespace: v.Grid.Namespace, Name: "Grid"}, true
	case value.KindFlex:
		return Element{ID: v.Flex.ID, Namespace: v.Flex.Namespace, Name: "Flex"}, true
	case value.KindCustomElement:
		return Element{ID: v.Custom.ID, ParentID: v.Custom.ParentID, Name: v.Custom.TypeName}, true
	case value.KindElement:
		return Element{ID: v.Element.ID, ParentID: v.Element.ParentID, Namespace: v.Element.Namespace, Name: "Element"}, true
	default:
		return Element{}, false
	}
}
