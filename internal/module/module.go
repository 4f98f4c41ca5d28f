// Copyright (c) 2026 The slidec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package module

import (
	"fmt"

	"github.com/brackenforge/slidec/internal/types"
)

// ModuleHandle identifies one instantiated module component to its own
// Component implementation (spec.md §4.6's create(slides_handle) ->
// module_handle).
type ModuleHandle struct {
	id uint64
}

// FunctionSpec is a module-registered function signature before it is
// mapped into a host FunctionType (spec.md §4.6:
// "FunctionSpec{name, args: [TypeIndex], result_type: TypeIndex}").
type FunctionSpec struct {
	Name       string
	Args       []TypeIndex
	ResultType TypeIndex
}

// ModuleFunction is a FunctionSpec resolved against the host type system,
// ready for the binder to type a call to it and for the evaluator to
// dispatch one.
type ModuleFunction struct {
	Spec             FunctionSpec
	Args             []types.TypeId
	Result           types.TypeId
	MinArgumentCount int
}

// Component is the boundary between this package's host-side bookkeeping
// (allocators, manifest validation, the Slides capability) and an actual
// `.wasm` component runtime. Production wiring would instantiate this
// against a real component runtime (e.g. wazero or wasmtime-go); none of
// the retrieved examples import one, so no concrete implementation ships
// here — the same way database/sql ships the Driver interface without
// bundling a driver. Tests in this package exercise the interface with an
// in-process fake rather than a real sandboxed binary.
type Component interface {
	// Create instantiates the module against slides, the host capability
	// it is allowed to call back into, and returns an opaque handle.
	Create(slides *Slides) (ModuleHandle, error)
	// RegisterTypes lets the module allocate entries in ta for any type
	// (typically an enum) its function signatures reference.
	RegisterTypes(h ModuleHandle, ta *TypeAllocator) error
	// AvailableFunctions returns the module's callable functions.
	AvailableFunctions(h ModuleHandle, ta *TypeAllocator) ([]FunctionSpec, error)
	// CallFunction invokes name with args already allocated in va,
	// returning the index of its result.
	CallFunction(h ModuleHandle, slides *Slides, name string, va *ValueAllocator, args []ValueIndex) (ValueIndex, error)
}

// ComponentLoader turns a component binary's raw bytes into a Component
// ready to Create. Swapping the loader (a real wasm runtime in
// production, a fake in tests) is the whole reason this is an interface
// rather than a concrete type.
type ComponentLoader interface {
	Load(wasmBytes []byte) (Component, error)
}

// Module is one loaded, instantiated component: its handle, the
// Component that owns it, and the functions it exposed at load time.
type Module struct {
	Name      string
	Functions map[string]ModuleFunction

	handle    ModuleHandle
	component Component
}

var nextHandle uint64

func newHandle() ModuleHandle {
	nextHandle++
	return ModuleHandle{id: nextHandle}
}

// Load runs the full module-loading protocol spec.md §4.6 describes:
// open the archive, validate its ABI version, instantiate the component,
// create it against slides, register its types, and resolve its
// available functions into ModuleFunctions against ti.
func Load(loader ComponentLoader, archivePath string, slides *Slides, ta *TypeAllocator, ti *types.Interner, abi SupportedABI) (*Module, error) {
	manifest, wasmBytes, err := OpenArchive(archivePath)
	if err != nil {
		return nil, fmt.Errorf("module: open %s: %w", archivePath, err)
	}
	if err := abi.Validate(manifest.ABIVersion); err != nil {
		return nil, fmt.Errorf("module: %s: %w", archivePath, err)
	}

	component, err := loader.Load(wasmBytes)
	if err != nil {
		return nil, fmt.Errorf("module: load component in %s: %w", archivePath, err)
	}

	handle, err := component.Create(slides)
	if err != nil {
		return nil, fmt.Errorf("module: create %s: %w", manifest.Name, err)
	}
	if err := component.RegisterTypes(handle, ta); err != nil {
		return nil, fmt.Errorf("module: register_types %s: %w", manifest.Name, err)
	}
	specs, err := component.AvailableFunctions(handle, ta)
	if err != nil {
		return nil, fmt.Errorf("module: available_functions %s: %w", manifest.Name, err)
	}

	functions := make(map[string]ModuleFunction, len(specs))
	for _, spec := range specs {
		args := make([]types.TypeId, len(spec.Args))
		for i, idx := range spec.Args {
			t, ok := ta.Resolve(idx)
			if !ok {
				return nil, fmt.Errorf("module: %s.%s: unresolved argument type at index %d", manifest.Name, spec.Name, i)
			}
			args[i] = HostTypeOf(ti, t)
		}
		resultType, ok := ta.Resolve(spec.ResultType)
		if !ok {
			return nil, fmt.Errorf("module: %s.%s: unresolved result type", manifest.Name, spec.Name)
		}
		functions[spec.Name] = ModuleFunction{
			Spec:             spec,
			Args:             args,
			Result:           HostTypeOf(ti, resultType),
			MinArgumentCount: len(spec.Args),
		}
	}

	return &Module{
		Name:      manifest.Name,
		Functions: functions,
		handle:    handle,
		component: component,
	}, nil
}

// Call invokes one of the module's available functions with already-ABI
// arguments and returns the ABI result index (spec.md §4.6:
// "call_function(module_handle, slides_handle, name, value_allocator_handle,
// [ValueIndex]) -> Result<ValueIndex, Error>").
func (m *Module) Call(slides *Slides, name string, va *ValueAllocator, args []ValueIndex) (ValueIndex, error) {
	if _, ok := m.Functions[name]; !ok {
		return ValueIndex{}, fmt.Errorf("module: %s has no function %q", m.Name, name)
	}
	return m.component.CallFunction(m.handle, slides, name, va, args)
}
