// Copyright (c) 2026 The slidec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package eval

import (
	"github.com/brackenforge/slidec/internal/bound"
	"github.com/brackenforge/slidec/internal/eval/value"
	"github.com/brackenforge/slidec/internal/presentation"
)

// evaluateFunctionCall extracts the callee's name the same way
// extract_function_name does in
// original_source/slides-lang/src/compiler/evaluator/slide.rs: only a
// VariableReference or MemberAccess callee is supported. A call through any
// other expression shape (calling a value stored in a dict entry, say) is
// `todo!("Handle dynamic functions!")` upstream too, so it is left
// unreachable here: the binder only ever types a FunctionCall's callee as a
// Function, and the two shapes below are the only ones that produce one.
func (e *Evaluator) evaluateFunctionCall(n *bound.Node) value.Value {
	call := n.Call

	if call.Callee.Kind == bound.KindMemberAccess {
		base := e.evaluateExpression(call.Callee.Member.Base)
		if e.failed() {
			return value.Void
		}
		member := e.syms.Text(call.Callee.Member.Member)
		if base.Kind == value.KindLabel && member == "align_center" {
			base.Label.Styling.Text.Align = presentation.TextAlignCenter
			return value.Void
		}
		e.raise(n.Location, "cannot call member %q", member)
		return value.Void
	}

	if call.Callee.Kind == bound.KindVariableReference {
		id := call.Callee.VarRef.Variable
		name := e.vars.Name(id)

		if impl, ok := builtinImpls[name]; ok {
			args := e.evaluateArguments(call.Arguments)
			if e.failed() {
				return value.Void
			}
			return impl(e, args, n.Location)
		}

		if fnVal, ok := e.lookup(id); ok && fnVal.Kind == value.KindUserFunction {
			args := e.evaluateArguments(call.Arguments)
			if e.failed() {
				return value.Void
			}
			return e.callUserFunction(fnVal.Function, args)
		}
	}

	e.raise(n.Location, "cannot call this expression")
	return value.Void
}

func (e *Evaluator) evaluateArguments(nodes []*bound.Node) []value.Value {
	args := make([]value.Value, len(nodes))
	for i, a := range nodes {
		args[i] = e.evaluateExpression(a)
		if e.failed() {
			return args
		}
	}
	return args
}

// callUserFunction runs fn's body in a fresh scope seeded with its
// parameters, then returns the last composite value (Label/Image/Grid/
// Flex/CustomElement/Element) declared in that scope by insertion order —
// the grammar has no explicit return statement, so an element/template
// function's result is whichever element its body built last, the same way
// `card(title): let t = label(title); ...` is expected to yield the Label
// bound to t (spec.md §6's worked example). HasImplicitSlideParameter is
// carried on UserFunction for fidelity with original_source but does not
// change invocation here: a template's body simply runs with whatever
// e.slide is already active at its call site.
func (e *Evaluator) callUserFunction(fn *value.UserFunction, args []value.Value) value.Value {
	e.push()
	for i, p := range fn.Parameters {
		var v value.Value
		switch {
		case i < len(args):
			v = args[i]
		case p.Default != nil:
			v = e.evaluateExpression(p.Default)
		default:
			v = value.Void
		}
		e.declare(p.Variable, v)
	}

	for _, stmt := range fn.Body {
		e.evaluateStatement(stmt)
		if e.failed() {
			break
		}
	}

	scope := e.pop()
	if e.failed() {
		return value.Void
	}
	for i := len(scope.order) - 1; i >= 0; i-- {
		v := scope.values[scope.order[i]]
		switch v.Kind {
		case value.KindLabel, value.KindImage, value.KindGrid, value.KindFlex, value.KindCustomElement, value.KindElement:
			return v
		}
	}
	return value.Void
}
