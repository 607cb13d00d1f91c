// Package repl implements the interactive driver loop (§2 "REPL
// driver", §6 CLI): prompt, read one form, evaluate it against the
// top-level environment, print the result, repeat. Line editing and
// history are delegated to github.com/chzyer/readline, the same
// library launix-de/memcp's embedded Scheme REPL uses, in place of a
// bare bufio.Scanner loop.
package repl
