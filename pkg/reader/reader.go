package reader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/kelchtermans/turtle/internal/value"
)

// maxTokenLen is the usable token length: BUFFER_SIZE in the original
// C source is 64 bytes including the NUL terminator (§4.2), leaving 63
// usable content bytes. Excess bytes are silently dropped, matching the
// original rather than raising the cap.
const maxTokenLen = 63

// Reader scans forms out of an io.Reader one byte of lookahead at a
// time.
type Reader struct {
	br   *bufio.Reader
	look byte
	eof  bool
	err  error
}

// New wraps r for reading. The initial lookahead byte is a space so the
// first call to nextToken immediately fetches real input.
func New(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r), look: ' '}
}

// Read scans and parses exactly one complete form. It returns io.EOF
// once the underlying stream is exhausted and no further input remains
// — note that a token already fully read before hitting end of stream
// is still returned; io.EOF is only reported once a *new* token is
// requested and there is nothing left, so the last form typed before
// EOF is not lost. If the underlying io.Reader ever fails with
// something other than io.EOF — e.g. an interactive line source
// reporting that the user interrupted the current line — that error is
// returned as-is instead of being collapsed into io.EOF, so a caller
// driving a long-lived Reader across an interactive session can tell
// "abandon this form" apart from "the stream is really over."
func (r *Reader) Read() (value.Value, error) {
	tok, err := r.nextToken()
	if err != nil {
		return nil, err
	}

	return r.parseToken(tok)
}

// peek advances the lookahead byte by one, skipping a line comment
// (';' to newline) if encountered (§4.2). It never panics or aborts the
// process; instead it sets r.eof, which nextToken checks once it
// actually needs another byte. This is the Go-idiomatic stand-in for
// the original's immediate exit(0) on EOF (see DESIGN.md, pkg/reader):
// deferring the EOF signal by one token means a fully-read final form
// still gets returned to the caller instead of discarded mid-peek. A
// non-io.EOF error is remembered in r.err so nextToken can report the
// real cause instead of a generic io.EOF.
func (r *Reader) peek() {
	b, err := r.br.ReadByte()
	if err != nil {
		r.eof = true
		if err != io.EOF {
			r.err = err
		}

		return
	}
	r.look = b
	if r.look == ';' {
		for r.look != '\n' {
			b, err := r.br.ReadByte()
			if err != nil {
				r.eof = true
				if err != io.EOF {
					r.err = err
				}

				return
			}
			r.look = b
		}
	}
}

func isBracket(b byte) bool {
	return b == '(' || b == ')' || b == '[' || b == ']'
}

// nextToken implements §4.2's tokenizer: whitespace (any byte <= 0x20)
// is skipped between tokens, then the current lookahead dispatches to
// one of a single delimiter byte, a quoted string, or a bare atom run.
func (r *Reader) nextToken() (string, error) {
	for !r.eof && r.look <= ' ' {
		r.peek()
	}
	if r.eof {
		if r.err != nil {
			return "", r.err
		}

		return "", io.EOF
	}

	var buf []byte

	switch {
	case r.look == '\'' || isBracket(r.look):
		buf = append(buf, r.look)
		r.peek()

	case r.look == '"':
		for {
			if len(buf) < maxTokenLen {
				buf = append(buf, r.look)
			}
			r.peek()
			if r.eof || r.look == '"' || r.look == '\n' {
				break
			}
		}
		if r.eof || r.look != '"' {
			fmt.Fprintln(os.Stderr, "nextToken: missing closing double quote")
		}
		r.peek()

	default:
		for {
			if len(buf) < maxTokenLen {
				buf = append(buf, r.look)
			}
			r.peek()
			if r.eof || r.look <= ' ' || isBracket(r.look) {
				break
			}
		}
	}

	return string(buf), nil
}

// parseToken dispatches on a token already fetched by nextToken,
// mirroring the split between readInput (tokenize-then-parse) and
// parse (parse the already-tokenized buffer) in src/turtle.c.
func (r *Reader) parseToken(tok string) (value.Value, error) {
	switch {
	case tok == "'":
		inner, err := r.Read()
		if err != nil {
			return nil, err
		}

		return value.List(value.Symbol("quote"), inner), nil

	case tok == "(":
		return r.parseList(')')

	case tok == "[":
		return r.parseList(']')

	case len(tok) > 0 && tok[0] == '"':
		return value.String(tok[1:]), nil

	default:
		if n, err := strconv.ParseFloat(tok, 64); err == nil {
			return value.Number(n), nil
		}

		return value.Symbol(tok), nil
	}
}

// parseList reads forms until the matching closer byte, building a
// right-nested Cons chain. A "." token between forms marks the next
// form as an improper tail; per the original, the token that should
// follow the tail (expected to be the closer) is consumed but not
// validated.
func (r *Reader) parseList(closer byte) (value.Value, error) {
	tok, err := r.nextToken()
	if err != nil {
		return nil, err
	}

	if len(tok) == 1 && tok[0] == closer {
		return value.Nil, nil
	}

	if tok == "." {
		tail, err := r.Read()
		if err != nil {
			return nil, err
		}
		if _, err := r.nextToken(); err != nil {
			return nil, err
		}

		return tail, nil
	}

	head, err := r.parseToken(tok)
	if err != nil {
		return nil, err
	}

	rest, err := r.parseList(closer)
	if err != nil {
		return nil, err
	}

	return value.NewCons(head, rest), nil
}
