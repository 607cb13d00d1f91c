package value

// Equal implements structural equality (§4.1): unequal Kinds are never
// equal; Symbol/String compare their bytes; Number compares with plain
// ==, so NaN != NaN the same as IEEE-754 and the original's bitwise
// double comparison; Primitive compares its table index; Cons, Closure,
// and Macro recurse into their underlying pair structure.
//
// The reader never builds cyclic structure and no primitive mutates a
// Cons after construction, so the value graph is always a finite DAG —
// this recursion is not guarded against cycles, matching §3's stated
// assumption.
func Equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}

	switch av := a.(type) {
	case Symbol:
		return av == b.(Symbol)
	case String:
		return av == b.(String)
	case Number:
		return av == b.(Number)
	case nilValue:
		return true
	case Primitive:
		return av == b.(Primitive)
	case *Cons:
		bv := b.(*Cons)

		return Equal(av.Car, bv.Car) && Equal(av.Cdr, bv.Cdr)
	case *Closure:
		bv := b.(*Closure)

		return Equal(av.Params, bv.Params) && Equal(av.Body, bv.Body) && Equal(av.Env, bv.Env)
	case *Macro:
		bv := b.(*Macro)

		return Equal(av.Params, bv.Params) && Equal(av.Body, bv.Body)
	default:
		return false
	}
}
