package eval

import (
	"fmt"

	"github.com/kelchtermans/turtle/internal/value"
)

// expandEscapes reproduces fnPrintf's escape handling exactly,
// bug included: `\n` and `\t` expand to newline/tab, but any other
// `\X` writes only the backslash byte and silently drops X rather
// than reporting an unknown escape.
func expandEscapes(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i == len(s)-1 {
			out = append(out, s[i])
			continue
		}
		switch s[i+1] {
		case 'n':
			out = append(out, '\n')
		case 't':
			out = append(out, '\t')
		default:
			out = append(out, '\\')
		}
		i++
	}

	return string(out)
}

// primPrintf writes each evaluated string argument, escape-expanded,
// to the interpreter's configured output and returns the last one
// written.
func primPrintf(it *Interp, argList, env value.Value) value.Value {
	if value.Count(argList) == 0 {
		return arityErr("printf", "printf string ...")
	}
	l := it.EvalList(argList, env)

	var last value.Value = value.Nil
	for c := l; ; {
		cons, ok := c.(*value.Cons)
		if !ok {
			break
		}
		s, ok := cons.Car.(value.String)
		if !ok {
			return arityErr("printf", "printf string ...")
		}
		fmt.Fprint(it.Stdout, expandEscapes(string(s)))
		last = s
		c = cons.Cdr
	}

	return last
}

// primStringToCharList conses one Number (the byte's value) per
// character onto the front of the result, so the resulting list
// comes out in reverse order — the original's behavior, kept as-is
// rather than "fixed" (§9).
func primStringToCharList(it *Interp, argList, env value.Value) value.Value {
	if value.Count(argList) != 1 {
		return arityErr("string->char-list", "string->char-list str")
	}
	v := it.Eval(value.Car(argList), env)
	s, ok := v.(value.String)
	if !ok {
		return arityErr("string->char-list", "string->char-list str")
	}

	var list value.Value = value.Nil
	for i := 0; i < len(s); i++ {
		list = value.NewCons(value.Number(float64(s[i])), list)
	}

	return list
}
