package value

// An environment is, per §3, nothing more than a Value: a list of
// `(key . value)` pairs, scanned left-to-right on lookup so that the
// most recently prepended binding of a key shadows any older one further
// down the list. There is no dedicated
// Environment type — any *Cons alist (or Nil, for the empty
// environment) already is one. These three functions are the complete
// alist algebra §4.5 specifies.

// Car returns the car of a Cons, or an error-symbol if v is not a
// Cons — the same fault-tolerant behavior as cons.c's car().
func Car(v Value) Value {
	c, ok := v.(*Cons)
	if !ok {
		return Errorf("car FAILED")
	}

	return c.Car
}

// Cdr returns the cdr of a Cons, or an error-symbol if v is not a
// Cons.
func Cdr(v Value) Value {
	c, ok := v.(*Cons)
	if !ok {
		return Errorf("cdr FAILED")
	}

	return c.Cdr
}

// AssocCons prepends `(key . v)` to alist, returning the extended
// environment. The argument alist is never mutated; extension always
// allocates a new head cell, which is what makes sharing environments
// between closures safe.
func AssocCons(key, v, alist Value) Value {
	return NewCons(NewCons(key, v), alist)
}

// AssocRef scans alist for the first pair whose key is structurally
// equal to key and returns its value, or an error-symbol on miss.
func AssocRef(key, alist Value) Value {
	for {
		c, ok := alist.(*Cons)
		if !ok {
			return Errorf("ASSOC REF FAILED")
		}
		if pair, ok := c.Car.(*Cons); ok && Equal(key, pair.Car) {
			return pair.Cdr
		}
		alist = c.Cdr
	}
}

// AssocList binds parameters to arguments onto alist (§4.5):
//
//   - keys is Nil: extra values are discarded, alist is returned as is.
//   - keys is a Cons: bind car(keys) to car(values), recurse on the
//     tails. If values runs out early, car/cdr on its non-Cons tail
//     yield error-symbols that get bound just like any other value —
//     this is the original's behavior, not a defensive check added
//     here.
//   - keys is a bare Symbol ("rest" parameter): bind the whole
//     remaining values list to it.
func AssocList(keys, values, alist Value) Value {
	if IsNil(keys) {
		return alist
	}
	if kc, ok := keys.(*Cons); ok {
		return AssocList(kc.Cdr, Cdr(values), AssocCons(kc.Car, Car(values), alist))
	}

	return AssocCons(keys, values, alist)
}

// Global is the process-wide mutable top-level environment slot (§3:
// "a single mutable slot ... replaced, not mutated in place"). The REPL
// driver owns one instance; primitives like `global` call Extend to
// swap in a new alist head.
type Global struct {
	env Value
}

// NewGlobal creates a top-level environment seeded with env (typically
// Nil, extended by the primitive table at startup).
func NewGlobal(env Value) *Global {
	return &Global{env: env}
}

// Env returns the current top-level alist.
func (g *Global) Env() Value { return g.env }

// Extend replaces the top-level slot with a new alist binding key to v,
// and returns the new alist for convenience.
func (g *Global) Extend(key, v Value) Value {
	g.env = AssocCons(key, v, g.env)

	return g.env
}
