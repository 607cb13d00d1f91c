package shell

import "testing"

func TestSplitCommandOnWhitespaceRuns(t *testing.T) {
	got := splitCommand("echo  \thello\nworld\r\f\v!")
	want := []string{"echo", "hello", "world", "!"}
	if len(got) != len(want) {
		t.Fatalf("splitCommand() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("splitCommand()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSplitCommandEmptyString(t *testing.T) {
	if got := splitCommand("   \t "); len(got) != 0 {
		t.Fatalf("splitCommand(whitespace) = %v, want empty", got)
	}
}

func TestRunAllSucceeds(t *testing.T) {
	ok, err := RunAll([]string{"true"})
	if err != nil {
		t.Fatalf("RunAll() error: %v", err)
	}
	if !ok {
		t.Fatalf("RunAll([true]) = false, want true")
	}
}

func TestRunAllReportsFailure(t *testing.T) {
	ok, err := RunAll([]string{"false"})
	if err != nil {
		t.Fatalf("RunAll() error: %v", err)
	}
	if ok {
		t.Fatalf("RunAll([false]) = true, want false")
	}
}

func TestRunAllSkipsBlankCommand(t *testing.T) {
	ok, err := RunAll([]string{"  ", "true"})
	if err != nil {
		t.Fatalf("RunAll() error: %v", err)
	}
	if !ok {
		t.Fatalf("RunAll() = false, want true")
	}
}

func TestPipelineRunsStagesInOrder(t *testing.T) {
	ok, err := NewPipeline("echo hello", "cat").Run()
	if err != nil {
		t.Fatalf("Pipeline.Run() error: %v", err)
	}
	if !ok {
		t.Fatalf("Pipeline.Run() = false, want true")
	}
}

func TestPipelineReportsStageFailure(t *testing.T) {
	ok, err := NewPipeline("false", "cat").Run()
	if err != nil {
		t.Fatalf("Pipeline.Run() error: %v", err)
	}
	if ok {
		t.Fatalf("Pipeline.Run() = true, want false")
	}
}

func TestCwdReturnsNonEmptyPath(t *testing.T) {
	dir, err := Cwd()
	if err != nil {
		t.Fatalf("Cwd() error: %v", err)
	}
	if dir == "" {
		t.Fatalf("Cwd() = empty string")
	}
}
