// Copyright (c) 2026 The slidec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package module

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/brackenforge/slidec/internal/eval/value"
	"github.com/brackenforge/slidec/internal/presentation"
	"github.com/brackenforge/slidec/internal/types"
)

// fakeComponent is an in-process double standing in for a real `.wasm`
// component runtime, exercising the allocator/manifest/dispatch plumbing
// without a real sandbox (see Component's doc comment).
type fakeComponent struct {
	colorEnum TypeIndex
}

func (f *fakeComponent) Create(slides *Slides) (ModuleHandle, error) {
	return newHandle(), nil
}

func (f *fakeComponent) RegisterTypes(h ModuleHandle, ta *TypeAllocator) error {
	f.colorEnum = ta.Register(ABIType{Kind: ABIEnum, Variants: []string{"red", "blue"}})
	return nil
}

func (f *fakeComponent) AvailableFunctions(h ModuleHandle, ta *TypeAllocator) ([]FunctionSpec, error) {
	stringType, _ := ta.CurrentIndex(1) // ABIString registered at fixed key 1 by NewTypeAllocator
	return []FunctionSpec{
		{Name: "shout", Args: []TypeIndex{stringType}, ResultType: stringType},
	}, nil
}

func (f *fakeComponent) CallFunction(h ModuleHandle, slides *Slides, name string, va *ValueAllocator, args []ValueIndex) (ValueIndex, error) {
	arg, err := va.Get(args[0])
	if err != nil {
		return ValueIndex{}, err
	}
	slides.AddFileReference("logo.png")
	return va.Alloc(Value{Kind: ValueString, Str: arg.Str + "!"}), nil
}

type fakeLoader struct{ component *fakeComponent }

func (l fakeLoader) Load(wasmBytes []byte) (Component, error) { return l.component, nil }

func writeTestArchive(t *testing.T, abiVersion string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "widgets.slidemod")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create archive: %v", err)
	}
	defer f.Close()
	zw := zip.NewWriter(f)

	manifest, err := zw.Create(manifestFileName)
	if err != nil {
		t.Fatalf("create manifest entry: %v", err)
	}
	manifest.Write([]byte("name: widgets\nabi_version: " + abiVersion + "\n"))

	comp, err := zw.Create(componentFileName)
	if err != nil {
		t.Fatalf("create component entry: %v", err)
	}
	comp.Write([]byte("fake wasm bytes"))

	if err := zw.Close(); err != nil {
		t.Fatalf("close archive: %v", err)
	}
	return path
}

func TestLoadValidatesABIAndResolvesFunctions(t *testing.T) {
	path := writeTestArchive(t, "v1.2.0")
	pres := presentation.New()
	slides := NewSlides(pres)
	ta := NewTypeAllocator()
	ti := types.NewInterner()
	loader := fakeLoader{component: &fakeComponent{}}

	mod, err := Load(loader, path, slides, ta, ti, DefaultSupportedABI())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mod.Name != "widgets" {
		t.Fatalf("want name %q, got %q", "widgets", mod.Name)
	}
	fn, ok := mod.Functions["shout"]
	if !ok {
		t.Fatal("want a registered \"shout\" function")
	}
	if fn.Result != types.String {
		t.Fatalf("want String result, got %v", ti.Describe(fn.Result))
	}
	if fn.MinArgumentCount != 1 {
		t.Fatalf("want min argument count 1, got %d", fn.MinArgumentCount)
	}
}

func TestLoadRejectsUnsupportedABIVersion(t *testing.T) {
	path := writeTestArchive(t, "v2.0.0")
	pres := presentation.New()
	slides := NewSlides(pres)
	ta := NewTypeAllocator()
	ti := types.NewInterner()
	loader := fakeLoader{component: &fakeComponent{}}

	if _, err := Load(loader, path, slides, ta, ti, DefaultSupportedABI()); err == nil {
		t.Fatal("want an error for an out-of-range abi_version")
	}
}

func TestCallFunctionRoundTripsThroughAllocatorsAndSlides(t *testing.T) {
	path := writeTestArchive(t, "v1.0.0")
	pres := presentation.New()
	slides := NewSlides(pres)
	ta := NewTypeAllocator()
	ti := types.NewInterner()
	loader := fakeLoader{component: &fakeComponent{}}

	mod, err := Load(loader, path, slides, ta, ti, DefaultSupportedABI())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	va := NewValueAllocator()
	argIdx, err := ToABI(va, value.Value{Kind: value.KindString, Str: "hi"})
	if err != nil {
		t.Fatalf("ToABI: %v", err)
	}
	resultIdx, err := mod.Call(slides, "shout", va, []ValueIndex{argIdx})
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	result, err := FromABI(va, resultIdx)
	if err != nil {
		t.Fatalf("FromABI: %v", err)
	}
	if result.Str != "hi!" {
		t.Fatalf("want %q, got %q", "hi!", result.Str)
	}
	if len(pres.CopiedFiles) != 1 || pres.CopiedFiles[0] != "logo.png" {
		t.Fatalf("want the module's add_file_reference call to reach the presentation, got %v", pres.CopiedFiles)
	}
}

func TestTypeAllocatorRelocatePreservesFixedKeyLookup(t *testing.T) {
	ta := NewTypeAllocator()
	idx := ta.Register(ABIType{Kind: ABIEnum, Variants: []string{"a", "b"}})

	relocated := ta.Relocate(idx.Fixed, ABIType{Kind: ABIEnum, Variants: []string{"a", "b"}})
	if relocated.Fixed != idx.Fixed {
		t.Fatalf("want the fixed key to survive a reload, got %d vs %d", relocated.Fixed, idx.Fixed)
	}
	if !ta.TypesEqual(idx, relocated) {
		t.Fatal("want the pre- and post-reload references to compare equal by fixed key")
	}

	current, ok := ta.CurrentIndex(idx.Fixed)
	if !ok {
		t.Fatal("want CurrentIndex to resolve the fixed key after relocation")
	}
	if current.Relocatable != relocated.Relocatable {
		t.Fatalf("want the current slot to match the relocated one, got %d vs %d", current.Relocatable, relocated.Relocatable)
	}
}
