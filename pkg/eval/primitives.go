package eval

import "github.com/kelchtermans/turtle/internal/value"

// PrimitiveFn is the signature every table entry implements: given the
// unevaluated argument tail of its call site and the calling
// environment, produce a result. Arity and type checking are each
// primitive's own responsibility (§4.6); violations return an
// error-symbol rather than panicking.
type PrimitiveFn func(it *Interp, argList, env value.Value) value.Value

// primitiveEntry names one table slot; its position is the Value a
// Primitive carries (§3: "a small integer index into the primitives
// table").
type primitiveEntry struct {
	Name string
	Fn   PrimitiveFn
}

// primitiveTable is the fixed, ordered primitives table (§4.6). Order
// matters only in that it fixes each entry's index — nothing in the
// language depends on the specific numbering, but it is kept stable
// here so Primitive values print the same index run to run.
var primitiveTable = []primitiveEntry{
	// fundamental
	{"cons", primCons},
	{"car", primCar},
	{"cdr", primCdr},
	{"eval", primEval},
	{"quote", primQuote},
	{"all", primAll},
	{"lambda", primLambda},
	{"macro", primMacro},
	{"global", primGlobal},

	// logical operators
	{"and", primAnd},
	{"or", primOr},
	{"not?", primNot},
	{"eq?", primEq},

	// control flow
	{"if", primIf},
	{"when", primWhen},
	{"unless", primUnless},
	{"cond", primCond},

	// arithmetic
	{"+", primAdd},
	{"-", primSub},
	{"*", primMul},
	{"/", primDiv},

	// string
	{"printf", primPrintf},
	{"string->char-list", primStringToCharList},

	// system
	{"cd", primCd},
	{"cwd", primCwd},
	{"run", primRun},
	{"daemon", primDaemon},
	{"pipe", primPipe},
}

// arityErr builds the error-symbol a primitive returns on an arity or
// type violation, in the "ERROR: NAME FAILED; MUST BE OF THE FORM
// (usage)" shape every primitive in the original uses.
func arityErr(name, usage string) value.Value {
	return value.Errorf("%s FAILED; MUST BE OF THE FORM (%s)", name, usage)
}
