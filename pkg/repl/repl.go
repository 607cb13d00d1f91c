package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"

	"github.com/kelchtermans/turtle/pkg/eval"
	"github.com/kelchtermans/turtle/pkg/printer"
	"github.com/kelchtermans/turtle/pkg/reader"
)

const (
	newPrompt  = "> "
	contPrompt = ". "
)

// errInterrupted is what lineSource.Read reports when the user hits
// ^C while typing a line, distinct from io.EOF so Run can tell
// "abandon the form in progress" apart from "the stream is over."
var errInterrupted = errors.New("repl: interrupted")

// lineEditor is the slice of *readline.Instance that lineSource needs.
// Narrowing to an interface keeps lineSource (and the fix below) unit
// testable with a fake line editor instead of a real terminal.
type lineEditor interface {
	Readline() (string, error)
	SetPrompt(string)
}

// lineSource adapts a lineEditor into the io.Reader a reader.Reader
// reads from, pulling one Readline() line at a time only once the
// tokenizer has exhausted everything already typed. Because a single
// reader.Reader persists across Readline() calls, a form split over
// several lines — or several complete forms typed on one line — is
// read exactly as the continuous byte stream §4.2/§6 describes: bytes
// left over after one form are simply still there for the next Read
// call, never discarded.
type lineSource struct {
	rl      lineEditor
	pending []byte
	prompt  string
}

// Read implements io.Reader, pulling a new line from rl whenever the
// buffered leftovers from the previous one run dry.
func (ls *lineSource) Read(p []byte) (int, error) {
	if len(ls.pending) == 0 {
		ls.rl.SetPrompt(ls.prompt)
		line, err := ls.rl.Readline()
		switch {
		case err == readline.ErrInterrupt:
			return 0, errInterrupted
		case err != nil:
			return 0, err
		}
		ls.pending = append([]byte(line), '\n')
		ls.prompt = contPrompt
	}

	n := copy(p, ls.pending)
	ls.pending = ls.pending[n:]

	return n, nil
}

// Run drives the read-eval-print loop against a fresh interpreter
// until stdin is exhausted. It returns the process exit code: 0 once
// input ends (§5: "EOF on stdin terminates the process (exit 0) ...
// which may be mid-expression"), 1 if the line editor itself cannot
// start.
func Run() int {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            newPrompt,
		HistoryFile:       historyPath(),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "turtle:", err)

		return 1
	}
	defer rl.Close()

	it := eval.New()
	src := &lineSource{rl: rl, prompt: newPrompt}
	rdr := reader.New(src)

	for {
		form, rerr := rdr.Read()
		switch {
		case rerr == errInterrupted:
			// Whatever was mid-parse belongs to the abandoned form; a
			// fresh Reader over the same lineSource starts clean for
			// the next one.
			src.pending = nil
			src.prompt = newPrompt
			rdr = reader.New(src)

			continue
		case rerr == io.EOF:
			return 0
		case rerr != nil:
			fmt.Fprintln(os.Stderr, "turtle:", rerr)

			return 1
		}

		src.prompt = newPrompt
		result := it.Eval(form, it.Global.Env())
		printer.Fprint(os.Stdout, result)
		fmt.Fprintln(os.Stdout)
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".turtle_history"
	}

	return filepath.Join(home, ".turtle_history")
}
