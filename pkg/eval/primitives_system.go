package eval

import (
	"github.com/kelchtermans/turtle/internal/shell"
	"github.com/kelchtermans/turtle/internal/value"
)

// primCd changes the interpreter process's working directory. On
// success it returns the path it changed to; on failure, Nil.
func primCd(it *Interp, argList, env value.Value) value.Value {
	if value.Count(argList) != 1 {
		return arityErr("cd", "cd string")
	}
	v := it.Eval(value.Car(argList), env)
	path, ok := v.(value.String)
	if !ok {
		return arityErr("cd", "cd string")
	}
	if err := shell.Cd(string(path)); err != nil {
		return value.Nil
	}

	return path
}

func primCwd(it *Interp, argList, env value.Value) value.Value {
	if value.Count(argList) != 0 {
		return arityErr("cwd", "cwd")
	}
	dir, err := shell.Cwd()
	if err != nil {
		return value.Nil
	}

	return value.String(dir)
}

// stringsOf walks an already-evaluated list and collects its String
// elements, reporting false the first time it finds anything else.
func stringsOf(l value.Value) ([]string, bool) {
	var out []string
	for {
		c, ok := l.(*value.Cons)
		if !ok {
			break
		}
		s, ok := c.Car.(value.String)
		if !ok {
			return nil, false
		}
		out = append(out, string(s))
		l = c.Cdr
	}

	return out, true
}

// primRun runs each evaluated string argument as a command,
// sequentially, and reports whether all of them exited zero. A
// command that fails to start at all (e.g. not found) is just another
// way for a child to not exit zero — in the original, execvp failure
// happens inside the forked child, which exits nonzero, so the parent
// only ever sees an ordinary failed exit (§4.6: "truth if every child
// exited 0, else Nil"), never a distinguished error. shell.RunAll
// reports a start failure as a non-nil err rather than folding it into
// its bool the way an exit-status failure is, so that distinction is
// undone here rather than surfaced as an arity/usage error.
func primRun(it *Interp, argList, env value.Value) value.Value {
	if value.Count(argList) < 1 {
		return arityErr("run", "run arg-string ...")
	}
	cmds, ok := stringsOf(it.EvalList(argList, env))
	if !ok {
		return arityErr("run", "run arg-string ...")
	}
	allSuccess, err := shell.RunAll(cmds)
	if err != nil {
		return value.Bool(false)
	}

	return value.Bool(allSuccess)
}

// primDaemon starts its command without waiting for it, always
// returning truth once the fork succeeds.
func primDaemon(it *Interp, argList, env value.Value) value.Value {
	if value.Count(argList) != 1 {
		return arityErr("daemon", "daemon arg-string")
	}
	v := it.Eval(value.Car(argList), env)
	cmdline, ok := v.(value.String)
	if !ok {
		return arityErr("daemon", "daemon arg-string")
	}
	if err := shell.Daemon(string(cmdline)); err != nil {
		return value.Nil
	}

	return value.Truth
}

// primPipe wires its evaluated string arguments into a left-to-right
// process pipeline and reports whether every stage exited zero. As in
// primRun, a stage that fails to start is reported as plain falsity,
// not an arity/usage error — the same execvp-fails-in-the-child
// reasoning applies to every stage of the pipeline.
func primPipe(it *Interp, argList, env value.Value) value.Value {
	if value.Count(argList) < 2 {
		return arityErr("pipe", "pipe arg-string-1 arg-string-2 ...")
	}
	cmds, ok := stringsOf(it.EvalList(argList, env))
	if !ok {
		return arityErr("pipe", "pipe arg-string-1 arg-string-2 ...")
	}
	allSuccess, err := shell.NewPipeline(cmds...).Run()
	if err != nil {
		return value.Bool(false)
	}

	return value.Bool(allSuccess)
}
