package eval

import "github.com/kelchtermans/turtle/internal/value"

func primAnd(it *Interp, argList, env value.Value) value.Value {
	if value.Count(argList) == 0 {
		return arityErr("and", "and expr ...")
	}

	var result value.Value = value.Nil
	for {
		c, ok := argList.(*value.Cons)
		if !ok {
			break
		}
		result = it.Eval(c.Car, env)
		if value.IsNil(result) {
			break
		}
		argList = c.Cdr
	}

	return result
}

func primOr(it *Interp, argList, env value.Value) value.Value {
	if value.Count(argList) == 0 {
		return arityErr("or", "or expr ...")
	}

	var result value.Value = value.Nil
	for {
		c, ok := argList.(*value.Cons)
		if !ok {
			break
		}
		result = it.Eval(c.Car, env)
		if !value.IsNil(result) {
			break
		}
		argList = c.Cdr
	}

	return result
}

func primNot(it *Interp, argList, env value.Value) value.Value {
	if value.Count(argList) != 1 {
		return arityErr("not?", "not? expr")
	}
	l := it.EvalList(argList, env)

	return value.Bool(value.IsNil(value.Car(l)))
}

func primEq(it *Interp, argList, env value.Value) value.Value {
	if value.Count(argList) != 2 {
		return arityErr("eq?", "eq? expr-1 expr-2")
	}
	l := it.EvalList(argList, env)

	return value.Bool(value.Equal(value.Car(l), value.Car(value.Cdr(l))))
}
