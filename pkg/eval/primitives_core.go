package eval

import "github.com/kelchtermans/turtle/internal/value"

func primCons(it *Interp, argList, env value.Value) value.Value {
	if value.Count(argList) != 2 {
		return arityErr("cons", "cons expr-1 expr-2")
	}
	l := it.EvalList(argList, env)

	return value.NewCons(value.Car(l), value.Car(value.Cdr(l)))
}

func primCar(it *Interp, argList, env value.Value) value.Value {
	if value.Count(argList) != 1 {
		return arityErr("car", "car pair")
	}

	return value.Car(it.Eval(value.Car(argList), env))
}

func primCdr(it *Interp, argList, env value.Value) value.Value {
	if value.Count(argList) != 1 {
		return arityErr("cdr", "cdr pair")
	}

	return value.Cdr(it.Eval(value.Car(argList), env))
}

// primEval implements the `eval` primitive (§4.6: "evaluates argument,
// then evaluates the result") — a double evaluation, distinct from the
// single-dispatch Eval method the interpreter calls internally.
func primEval(it *Interp, argList, env value.Value) value.Value {
	if value.Count(argList) != 1 {
		return arityErr("eval", "eval expr")
	}

	return it.Eval(it.Eval(value.Car(argList), env), env)
}

func primQuote(it *Interp, argList, env value.Value) value.Value {
	if value.Count(argList) != 1 {
		return arityErr("quote", "quote expr")
	}

	return value.Car(argList)
}

func primAll(it *Interp, argList, env value.Value) value.Value {
	if value.Count(argList) == 0 {
		return arityErr("all", "all expr ...")
	}

	return lastOrNil(it.EvalList(argList, env))
}

// primLambda constructs a Closure. Per §9, if the defining environment
// is structurally equal to the current top-level environment, Nil is
// stored in its place, meaning "resolve free variables against the
// caller's environment at call time" instead of a fixed capture — the
// closure will therefore see top-level bindings installed *after* its
// own construction.
func primLambda(it *Interp, argList, env value.Value) value.Value {
	capturedEnv := env
	if value.Equal(env, it.Global.Env()) {
		capturedEnv = value.Nil
	}

	return &value.Closure{
		Params: value.Car(argList),
		Body:   value.Cdr(argList),
		Env:    capturedEnv,
	}
}

func primMacro(it *Interp, argList, env value.Value) value.Value {
	return &value.Macro{
		Params: value.Car(argList),
		Body:   value.Cdr(argList),
	}
}

// primGlobal binds a symbol in the top-level environment — the only
// primitive that mutates Interp.Global, and the only way user code
// reaches the top level rather than the caller's lexical scope.
func primGlobal(it *Interp, argList, env value.Value) value.Value {
	if value.Count(argList) != 2 {
		return arityErr("global", "global variable expr")
	}
	sym := value.Car(argList)
	val := it.Eval(value.Car(value.Cdr(argList)), env)
	it.Global.Extend(sym, val)

	return sym
}
