package value

import "fmt"

// Kind discriminates the tagged variants of Value. A Value's Kind never
// changes after construction (§3 of the spec: "a Value's tag is
// immutable for its lifetime").
type Kind uint8

const (
	KindSymbol Kind = iota
	KindString
	KindNumber
	KindNil
	KindCons
	KindPrimitive
	KindClosure
	KindMacro
)

func (k Kind) String() string {
	switch k {
	case KindSymbol:
		return "symbol"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindNil:
		return "nil"
	case KindCons:
		return "cons"
	case KindPrimitive:
		return "primitive"
	case KindClosure:
		return "closure"
	case KindMacro:
		return "macro"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Value is the interface every runtime datum implements. It carries no
// printing or evaluation behavior of its own — those belong to the
// printer and evaluator packages respectively — only its tag.
type Value interface {
	Kind() Kind
}

// Symbol is a name. Identity is textual equality; symbols are used both
// as variable references and, under quote, as literal data.
type Symbol string

// Kind implements Value.
func (Symbol) Kind() Kind { return KindSymbol }

// String is an opaque byte sequence, distinct from Symbol in both the
// reader and the printer.
type String string

// Kind implements Value.
func (String) Kind() Kind { return KindString }

// Number is a 64-bit floating point number, the language's only numeric
// type.
type Number float64

// Kind implements Value.
func (Number) Kind() Kind { return KindNumber }

// nilValue is the unique empty-list / false value. It is a zero-size
// struct so every reference compares equal by type; Nil below is the
// single instance callers use.
type nilValue struct{}

// Kind implements Value.
func (nilValue) Kind() Kind { return KindNil }

// Nil is the unique empty-list / false value (§3). Comparisons against
// it (IsNil) check the Kind tag only.
var Nil Value = nilValue{}

// IsNil reports whether v is the Nil value.
func IsNil(v Value) bool { return v.Kind() == KindNil }

// Cons is an ordered pair. Lists are right-nested Cons chains
// terminated by Nil; an improper list terminates with a non-Nil,
// non-Cons tail. Car/Cdr are never mutated after construction — no
// primitive in pkg/eval writes to an existing *Cons.
type Cons struct {
	Car Value
	Cdr Value
}

// Kind implements Value.
func (*Cons) Kind() Kind { return KindCons }

// NewCons builds a single pair.
func NewCons(car, cdr Value) *Cons { return &Cons{Car: car, Cdr: cdr} }

// Primitive is a small integer index into the primitives table (§4.6).
// The table itself lives in pkg/eval to avoid an import cycle; this
// package only knows the index is a Value.
type Primitive uint8

// Kind implements Value.
func (Primitive) Kind() Kind { return KindPrimitive }

// Closure is a user-defined function: `((params . body) . capturedEnv)`
// per §3. Env is Nil when the closure was defined at top level — at
// call time Nil means "use the caller's environment" (§9's dynamic/
// lexical hybrid).
type Closure struct {
	Params Value // a Symbol, or a (possibly improper) list of Symbols
	Body   Value // list of body forms, evaluated in sequence
	Env    Value // Nil, or a concrete captured environment
}

// Kind implements Value.
func (*Closure) Kind() Kind { return KindClosure }

// Macro is a user-defined syntactic transformer: `(params . body)`, no
// captured environment — macros always expand in the caller's
// environment (§4.4).
type Macro struct {
	Params Value
	Body   Value
}

// Kind implements Value.
func (*Macro) Kind() Kind { return KindMacro }

// List builds a proper list (right-nested Cons chain terminated by
// Nil) from the given items, in order.
func List(items ...Value) Value {
	var tail Value = Nil
	for i := len(items) - 1; i >= 0; i-- {
		tail = NewCons(items[i], tail)
	}

	return tail
}

// Slice walks a (possibly improper) list and returns its elements in
// order along with the final tail: Nil for a proper list, or the
// non-Cons, non-Nil value terminating an improper one.
func Slice(v Value) (elems []Value, tail Value) {
	for {
		c, ok := v.(*Cons)
		if !ok {
			return elems, v
		}
		elems = append(elems, c.Car)
		v = c.Cdr
	}
}

// Count returns the number of Cons cells in v's spine, stopping at the
// first non-Cons tail — the same traversal `consCount` in the original
// C source performs, used by primitives to validate arity before
// evaluating arguments.
func Count(v Value) int {
	n := 0
	for {
		c, ok := v.(*Cons)
		if !ok {
			return n
		}
		n++
		v = c.Cdr
	}
}
