package value

import (
	"fmt"
	"strings"
)

// errorPrefix marks a Symbol as a recoverable, value-shaped error (§7).
// Any domain error — arity mismatch, wrong type, unknown variable,
// applying a non-applicable value — produces one of these instead of a
// Go error; it flows through evaluation like any other value and is
// printed as its text.
const errorPrefix = "ERROR:"

// Truth is the distinguished truthy symbol. Falsity is Nil, not a
// distinct Value (§4.6).
const Truth Symbol = "#t"

// Errorf builds a recoverable error-symbol with the given message.
func Errorf(format string, args ...any) Symbol {
	return Symbol(errorPrefix + " " + fmt.Sprintf(format, args...))
}

// IsError reports whether v is an error-symbol produced by Errorf.
func IsError(v Value) bool {
	s, ok := v.(Symbol)

	return ok && strings.HasPrefix(string(s), errorPrefix)
}

// Bool converts a Go bool into the language's truth value: Truth or
// Nil. Used by primitives (eq?, not?, run, pipe) that test a
// condition and need to return the result as a Value.
func Bool(b bool) Value {
	if b {
		return Truth
	}

	return Nil
}
