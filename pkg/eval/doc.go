// Package eval implements the turtle evaluator: the mutually recursive
// Eval/EvalList/Apply trio (§4.4), the environment-binding helpers they
// lean on (§4.5, in internal/value), and the fixed primitives table
// (§4.6) that gives the three applicable Value kinds — Primitive,
// *value.Closure, *value.Macro — their behavior.
//
// Package layout follows the teacher's pkg/eval split (evaluator.go for
// the core dispatch, one file per primitive group) rather than one
// monolithic file, even though turtle's evaluator is a handful of
// cases instead of Nix's dozen AST node types:
//
//   - evaluator.go: Interp, Eval, EvalList, Apply
//   - primitives.go: the primitive table and registration
//   - primitives_core.go: cons, car, cdr, eval, quote, all, lambda,
//     macro, global
//   - primitives_logic.go: and, or, not?, eq?
//   - primitives_control.go: if, when, unless, cond
//   - primitives_arith.go: + - * /
//   - primitives_string.go: printf, string->char-list
//   - primitives_system.go: cd, cwd, run, daemon, pipe (internal/shell)
//
// Every primitive receives the unevaluated argument tail of its call
// site and decides for itself whether and how to evaluate it — the
// table only fixes arity and dispatch, not evaluation order, which is
// why control-flow forms like `if` and `cond` are ordinary table
// entries rather than special forms wired into Eval.
package eval
