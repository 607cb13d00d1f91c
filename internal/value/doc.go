// Package value implements the runtime value system for the turtle
// expression language.
//
// Every runtime datum is a Value — one of a small, fixed set of tagged
// variants: Symbol, String, Number, Nil, *Cons, Primitive, *Closure, and
// *Macro. There is no separate AST type: a form read from source is
// already a Value (a Symbol, a Number, or a *Cons chain), and the same
// tree is handed straight to the evaluator and, for quote/macro, handed
// right back out as a result. This is what makes the language
// homoiconic — code and data share one representation.
//
// Tags are immutable for the lifetime of a Value, and Cons cells are
// never mutated after construction (no set-car!/set-cdr!): the value
// graph is a finite, purely functional DAG that can be freely shared
// between environments and closures without defensive copying.
package value
