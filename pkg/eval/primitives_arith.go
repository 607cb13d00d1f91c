package eval

import "github.com/kelchtermans/turtle/internal/value"

// foldNumbers evaluates argList, type-checks every element as a
// Number, and folds them left to right starting from the first
// element via combine. It is shared by +, -, *, / — their only
// difference is combine and (for -) the unary-negate special case
// handled by the caller.
func foldNumbers(it *Interp, argList, env value.Value, combine func(acc, x float64) float64) (float64, int, bool) {
	l := it.EvalList(argList, env)
	first, ok := value.Car(l).(value.Number)
	if !ok {
		return 0, 0, false
	}
	n := float64(first)
	count := 0
	rest := value.Cdr(l)
	for {
		c, ok := rest.(*value.Cons)
		if !ok {
			break
		}
		x, ok := c.Car.(value.Number)
		if !ok {
			return 0, 0, false
		}
		n = combine(n, float64(x))
		count++
		rest = c.Cdr
	}

	return n, count, true
}

func primAdd(it *Interp, argList, env value.Value) value.Value {
	if value.Count(argList) == 0 {
		return arityErr("+", "+ number ...")
	}
	n, _, ok := foldNumbers(it, argList, env, func(acc, x float64) float64 { return acc + x })
	if !ok {
		return arityErr("+", "+ number ...")
	}

	return value.Number(n)
}

// primSub implements unary negation: `(- n)` folds over zero
// additional operands, so the caller flips its sign instead.
func primSub(it *Interp, argList, env value.Value) value.Value {
	if value.Count(argList) == 0 {
		return arityErr("-", "- number ...")
	}
	n, count, ok := foldNumbers(it, argList, env, func(acc, x float64) float64 { return acc - x })
	if !ok {
		return arityErr("-", "- number ...")
	}
	if count == 0 {
		n = -n
	}

	return value.Number(n)
}

func primMul(it *Interp, argList, env value.Value) value.Value {
	if value.Count(argList) == 0 {
		return arityErr("*", "* number ...")
	}
	n, _, ok := foldNumbers(it, argList, env, func(acc, x float64) float64 { return acc * x })
	if !ok {
		return arityErr("*", "* number ...")
	}

	return value.Number(n)
}

// primDiv folds the same way as the others; a single argument leaves
// the accumulator untouched, so `(/ n)` returns n unchanged.
func primDiv(it *Interp, argList, env value.Value) value.Value {
	if value.Count(argList) == 0 {
		return arityErr("/", "/ number ...")
	}
	n, _, ok := foldNumbers(it, argList, env, func(acc, x float64) float64 { return acc / x })
	if !ok {
		return arityErr("/", "/ number ...")
	}

	return value.Number(n)
}
