// Package shell backs the language's process-spawning primitives
// (cd, cwd, run, daemon, pipe). It has no third-party dependency: no
// library in the retrieved pack wraps fork/exec process supervision,
// so this package is built directly on os/exec, the stdlib's own
// idiomatic wrapper over exactly those syscalls. Its fluent
// PipelineBuilder mirrors the builder-pattern shape used elsewhere in
// the corpus for multi-stage, incrementally configured construction.
package shell
