// Package reader implements the turtle reader (§4.2): a single-byte
// lookahead scanner over an io.Reader that tokenizes and parses one
// complete form per call to Read.
//
// There is no separate lexer/parser split with token-type enums the way
// a general-purpose language needs one (contrast the teacher's
// pkg/lexer + pkg/parser, built for Nix's operator precedence and
// keyword set): turtle's token set is tiny — four delimiter bytes, a
// quote mark, a double-quoted string, or a bare atom run — so the
// tokenizer and the tree builder share one piece of state (the current
// lookahead byte) and live in one package, the way src/turtle.c's
// nextToken/parse/parseList do.
//
// Read returns exactly one value.Value per call; io.EOF surfaces as an
// error so the REPL driver can terminate cleanly (§5: "EOF on stdin
// terminates the process").
package reader
