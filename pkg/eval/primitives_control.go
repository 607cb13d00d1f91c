package eval

import "github.com/kelchtermans/turtle/internal/value"

func primIf(it *Interp, argList, env value.Value) value.Value {
	if value.Count(argList) != 3 {
		return arityErr("if", "if test-expr then-expr else-expr")
	}

	test := !value.IsNil(it.Eval(value.Car(argList), env))
	rest := value.Cdr(argList)
	if test {
		return it.Eval(value.Car(rest), env)
	}

	return it.Eval(value.Car(value.Cdr(rest)), env)
}

func primWhen(it *Interp, argList, env value.Value) value.Value {
	if value.Count(argList) < 2 {
		return arityErr("when", "when test-expr then-expr ...")
	}
	if value.IsNil(it.Eval(value.Car(argList), env)) {
		return value.Nil
	}

	return primAll(it, value.Cdr(argList), env)
}

func primUnless(it *Interp, argList, env value.Value) value.Value {
	if value.Count(argList) < 2 {
		return arityErr("unless", "unless test-expr then-expr ...")
	}
	if !value.IsNil(it.Eval(value.Car(argList), env)) {
		return value.Nil
	}

	return primAll(it, value.Cdr(argList), env)
}

// primCond evaluates each clause's test in order and sequences the
// first matching clause's rest. If no clause matches, the loop runs
// off the end of the list and the lookup for a "then" list to sequence
// falls through car/cdr-on-non-Cons, which is error-shaped by design
// (§4.5): the result is the same error-symbol `all` itself would
// produce for an empty body, not a dedicated "no clause matched"
// message. This is the original's behavior, not an omission.
func primCond(it *Interp, argList, env value.Value) value.Value {
	const clauseUsage = "cond clause ... WHERE clause is of the form (test-expr then-expr ...)"
	if value.Count(argList) == 0 {
		return arityErr("cond", "cond clause ...")
	}
	for l := argList; !value.IsNil(l); {
		c, ok := l.(*value.Cons)
		if !ok {
			break
		}
		if value.Count(c.Car) < 2 {
			return arityErr("cond", clauseUsage)
		}
		l = c.Cdr
	}

	rest := argList
	for {
		c, ok := rest.(*value.Cons)
		if !ok {
			break
		}
		if !value.IsNil(it.Eval(value.Car(c.Car), env)) {
			break
		}
		rest = c.Cdr
	}
	thenList := value.Cdr(value.Car(rest))

	return primAll(it, thenList, env)
}
