// Copyright (c) 2026 The slidec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package module

import "github.com/brackenforge/slidec/internal/types"

// TypeIndex is the two-keyed address spec.md §4.6 requires: "a map from
// two-keyed indices (relocatable, fixed_unique_key) to ABI types. The
// fixed key is stable across reloads; the relocatable index is the
// current slot." Enum definitions carry both; enum uses only need the
// fixed key to survive a reload, since Resolve and CurrentIndex look the
// current slot back up from it.
type TypeIndex struct {
	Relocatable uint32
	Fixed       uint32
}

// ABIKind tags the shape of an ABI-level type registered by a module.
type ABIKind int

const (
	ABIVoid ABIKind = iota
	ABIString
	ABIInt
	ABIFloat
	ABIStyleUnit
	ABIPosition
	ABIDict
	ABIArray
	ABIElement
	ABIEnum
)

// ABIType is one entry a module registers in the TypeAllocator during
// register_types. Array carries its element type by fixed key (so it
// survives a reload the same way an enum use does); Enum carries its
// variant names.
type ABIType struct {
	Kind     ABIKind
	Elem     uint32 // fixed key of the element type, only meaningful for ABIArray
	Variants []string
}

// TypeAllocator is the shared, long-lived map from TypeIndex to ABIType
// (spec.md §4.6). It outlives any single module call and any single
// module reload: Relocate keeps an existing fixed key while moving its type
// to a new slot, which is the whole point of carrying two keys instead of
// one.
type TypeAllocator struct {
	bySlot    map[uint32]ABIType
	slotOf    map[uint32]uint32 // fixed key -> current relocatable slot
	nextSlot  uint32
	nextFixed uint32
}

// NewTypeAllocator returns an allocator seeded with one entry per kind
// every module ABI shares, Void through Element in ABIKind order, at fixed
// keys 0 to 8 (spec.md §4.6's ValueAllocator kind list).
func NewTypeAllocator() *TypeAllocator {
	ta := &TypeAllocator{
		bySlot: make(map[uint32]ABIType),
		slotOf: make(map[uint32]uint32),
	}
	for _, k := range []ABIKind{ABIVoid, ABIString, ABIInt, ABIFloat, ABIStyleUnit, ABIPosition, ABIDict, ABIArray, ABIElement} {
		ta.Register(ABIType{Kind: k})
	}
	return ta
}

// Register allocates a fresh fixed key and relocatable slot for t and
// returns both.
func (ta *TypeAllocator) Register(t ABIType) TypeIndex {
	fixed := ta.nextFixed
	ta.nextFixed++
	slot := ta.nextSlot
	ta.nextSlot++
	ta.bySlot[slot] = t
	ta.slotOf[fixed] = slot
	return TypeIndex{Relocatable: slot, Fixed: fixed}
}

// Relocate re-registers the type already known under fixed at a fresh
// relocatable slot, the operation a module reload performs for every type
// it previously registered: the fixed key is what lets an enum *use*
// recorded before the reload keep resolving correctly afterward.
func (ta *TypeAllocator) Relocate(fixed uint32, t ABIType) TypeIndex {
	slot := ta.nextSlot
	ta.nextSlot++
	ta.bySlot[slot] = t
	ta.slotOf[fixed] = slot
	return TypeIndex{Relocatable: slot, Fixed: fixed}
}

// Resolve looks up the ABIType currently occupying idx's relocatable
// slot, preferring a fresh lookup via the fixed key (which is always
// current) over the Relocatable field the caller may be holding stale.
func (ta *TypeAllocator) Resolve(idx TypeIndex) (ABIType, bool) {
	if slot, ok := ta.slotOf[idx.Fixed]; ok {
		t, ok := ta.bySlot[slot]
		return t, ok
	}
	t, ok := ta.bySlot[idx.Relocatable]
	return t, ok
}

// CurrentIndex returns the up-to-date TypeIndex for a fixed key, i.e. the
// pair a caller should use after a reload has moved the relocatable slot
// out from under it.
func (ta *TypeAllocator) CurrentIndex(fixed uint32) (TypeIndex, bool) {
	slot, ok := ta.slotOf[fixed]
	if !ok {
		return TypeIndex{}, false
	}
	return TypeIndex{Relocatable: slot, Fixed: fixed}, true
}

// TypesEqual reports whether two type references currently address the
// same slot (spec.md §4.6's types_are_equal). Each side's slot is looked
// up through its fixed key, so a reference whose Relocatable field went
// stale across a Relocate still compares equal; only when a fixed key is
// unknown are the Relocatable fields compared directly.
func (ta *TypeAllocator) TypesEqual(a, b TypeIndex) bool {
	aSlot, aOK := ta.slotOf[a.Fixed]
	bSlot, bOK := ta.slotOf[b.Fixed]
	if aOK && bOK {
		return aSlot == bSlot
	}
	return a.Relocatable == b.Relocatable
}

// HostTypeOf maps an ABIType to the host's own TypeId, the step
// spec.md §4.6 describes when converting a module's FunctionSpec into a
// host FunctionType: "mapping each ABI type index to a host TypeId".
func HostTypeOf(in *types.Interner, t ABIType) types.TypeId {
	switch t.Kind {
	case ABIString:
		return types.String
	case ABIInt:
		return types.Integer
	case ABIFloat:
		return types.Float
	case ABIStyleUnit:
		return in.StyleUnit()
	case ABIPosition:
		return in.Position()
	case ABIElement:
		return in.Element()
	case ABIEnum:
		return in.Enum(types.String, t.Variants)
	case ABIArray:
		return in.Array(types.Void)
	case ABIDict:
		return types.DynamicDict
	default:
		return types.Void
	}
}
