package eval

import (
	"io"
	"os"

	"github.com/kelchtermans/turtle/internal/value"
)

// Interp holds the one piece of interpreter-wide mutable state: the
// top-level environment slot (§3). Everything else — the current
// lexical environment, argument lists — flows through Eval/EvalList/
// Apply as plain values.
type Interp struct {
	Global *value.Global
	Stdout io.Writer
}

// New builds an interpreter with a fresh top-level environment seeded
// with #t, #f, and every entry of the primitives table (§4.6).
func New() *Interp {
	it := &Interp{
		Global: value.NewGlobal(value.Nil),
		Stdout: os.Stdout,
	}
	it.Global.Extend(value.Truth, value.Truth)
	it.Global.Extend(value.Symbol("#f"), value.Nil)
	for i, p := range primitiveTable {
		it.Global.Extend(value.Symbol(p.Name), value.Primitive(uint8(i)))
	}

	return it
}

// Eval dispatches on x's tag (§4.4): a Symbol is looked up in env; a
// Cons applies its evaluated head to its (unevaluated) tail; anything
// else — Number, String, Nil, Primitive, *Closure, *Macro — is
// self-evaluating.
func (it *Interp) Eval(x, env value.Value) value.Value {
	switch v := x.(type) {
	case value.Symbol:
		return value.AssocRef(v, env)
	case *value.Cons:
		head := it.Eval(v.Car, env)

		return it.Apply(head, v.Cdr, env)
	default:
		return x
	}
}

// EvalList evaluates each element of a list in turn, preserving its
// spine shape. A bare Symbol is treated the same as in Eval — this is
// what lets a whole environment be passed by reference as an argument.
// Anything that isn't a Symbol or a Cons evaluates to Nil.
func (it *Interp) EvalList(x, env value.Value) value.Value {
	switch v := x.(type) {
	case value.Symbol:
		return value.AssocRef(v, env)
	case *value.Cons:
		return value.NewCons(it.Eval(v.Car, env), it.EvalList(v.Cdr, env))
	default:
		return value.Nil
	}
}

// primitives is the table Apply dispatches through. It is filled in by
// init rather than initialized from primitiveTable directly, because the
// primitives themselves call back into Apply and Go rejects a
// package-level initializer that depends on itself that way.
var primitives []primitiveEntry

func init() { primitives = primitiveTable }

// Apply dispatches on fn's tag (§4.4). argList is always the
// unevaluated tail of the call site; each of the three applicable
// kinds decides independently whether and when to evaluate it.
func (it *Interp) Apply(fn, argList, env value.Value) value.Value {
	switch f := fn.(type) {
	case value.Primitive:
		idx := int(f)
		if idx < 0 || idx >= len(primitives) {
			return value.Errorf("APPLY FAILED; UNKNOWN PRIMITIVE %d", idx)
		}

		return primitives[idx].Fn(it, argList, env)

	case *value.Closure:
		return it.applyClosure(f, argList, env)

	case *value.Macro:
		return it.applyMacro(f, argList, env)

	default:
		return value.Errorf("APPLY FAILED; APPLY ONLY ACCEPTS PRIMITIVE, CLOSURE, OR MACRO")
	}
}

// applyClosure implements the closure branch of §4.4. When the closure
// captured Nil for its environment (constructed at top level, per
// §9), the base environment is the caller's env at call time rather
// than any fixed scope — the dynamic/lexical hybrid the spec calls out
// as a known quirk to preserve.
func (it *Interp) applyClosure(fn *value.Closure, argList, env value.Value) value.Value {
	base := fn.Env
	if value.IsNil(base) {
		base = env
	}

	args := it.EvalList(argList, env)
	extended := value.AssocList(fn.Params, args, base)

	return lastOrNil(it.EvalList(fn.Body, extended))
}

// applyMacro implements the macro branch of §4.4: parameters bind to
// the *unevaluated* argList in the caller's env, producing an
// expansion; that expansion is then evaluated a second time in the
// caller's base env. Unhygienic and intentionally so (§9).
func (it *Interp) applyMacro(fn *value.Macro, argList, env value.Value) value.Value {
	extended := value.AssocList(fn.Params, argList, env)
	expansion := it.EvalList(fn.Body, extended)

	return lastOrNil(it.EvalList(expansion, env))
}

// lastOrNil returns the last element of a (proper) list, or Nil if it
// has none — used by every form that "sequences" a body: all, when,
// unless, cond's matched clause, and closure/macro application.
func lastOrNil(list value.Value) value.Value {
	var last value.Value = value.Nil
	for {
		c, ok := list.(*value.Cons)
		if !ok {
			return last
		}
		last = c.Car
		list = c.Cdr
	}
}
