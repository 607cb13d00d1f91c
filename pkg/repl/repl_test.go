package repl

import (
	"io"
	"testing"

	"github.com/chzyer/readline"

	"github.com/kelchtermans/turtle/pkg/eval"
	"github.com/kelchtermans/turtle/pkg/printer"
	"github.com/kelchtermans/turtle/pkg/reader"
)

// fakeEditor is a lineEditor that replays a fixed script of lines
// (each paired with an error, usually nil) and records every prompt it
// was asked to show.
type fakeEditor struct {
	lines   []string
	errs    []error
	i       int
	prompts []string
}

func newFakeEditor(lines ...string) *fakeEditor {
	return &fakeEditor{lines: lines, errs: make([]error, len(lines))}
}

func (f *fakeEditor) Readline() (string, error) {
	if f.i >= len(f.lines) {
		return "", io.EOF
	}
	line, err := f.lines[f.i], f.errs[f.i]
	f.i++

	return line, err
}

func (f *fakeEditor) SetPrompt(p string) {
	f.prompts = append(f.prompts, p)
}

// TestLineSourceFeedsSingleLineWithTwoForms is a regression test: a
// previous version of the REPL driver rebuilt a fresh reader.Reader
// from the whole accumulated line on every Readline() call and
// discarded whatever the first parsed form left unconsumed, silently
// dropping a second form typed on the same line.
func TestLineSourceFeedsSingleLineWithTwoForms(t *testing.T) {
	fe := newFakeEditor("(global double (lambda (x) (+ x x))) (double 21)")
	src := &lineSource{rl: fe, prompt: newPrompt}
	rdr := reader.New(src)
	it := eval.New()

	first, err := rdr.Read()
	if err != nil {
		t.Fatalf("first Read() error: %v", err)
	}
	if got := printer.Sprint(it.Eval(first, it.Global.Env())); got != "double" {
		t.Fatalf("first form evaluated to %q, want %q", got, "double")
	}

	second, err := rdr.Read()
	if err != nil {
		t.Fatalf("second Read() error: %v", err)
	}
	if got := printer.Sprint(it.Eval(second, it.Global.Env())); got != "42.000000" {
		t.Fatalf("second form evaluated to %q, want %q", got, "42.000000")
	}

	if fe.i != 1 {
		t.Errorf("Readline() called %d times, want 1 (both forms fit on the one fed line)", fe.i)
	}
}

func TestLineSourceAccumulatesAcrossLines(t *testing.T) {
	fe := newFakeEditor("(+ 1", "2)")
	src := &lineSource{rl: fe, prompt: newPrompt}
	rdr := reader.New(src)
	it := eval.New()

	form, err := rdr.Read()
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if got := printer.Sprint(it.Eval(form, it.Global.Env())); got != "3.000000" {
		t.Fatalf("form evaluated to %q, want %q", got, "3.000000")
	}
	if fe.i != 2 {
		t.Errorf("Readline() called %d times, want 2", fe.i)
	}
	if len(fe.prompts) < 2 || fe.prompts[1] != contPrompt {
		t.Errorf("prompts = %v, want second prompt to be the continuation prompt %q", fe.prompts, contPrompt)
	}
}

func TestLineSourceReportsInterrupt(t *testing.T) {
	fe := &fakeEditor{lines: []string{""}, errs: []error{readline.ErrInterrupt}}
	src := &lineSource{rl: fe, prompt: newPrompt}

	if _, err := src.Read(make([]byte, 16)); err != errInterrupted {
		t.Fatalf("Read() error = %v, want errInterrupted", err)
	}
}

func TestHistoryPathIsNonEmpty(t *testing.T) {
	if historyPath() == "" {
		t.Errorf("historyPath() = empty string")
	}
}
