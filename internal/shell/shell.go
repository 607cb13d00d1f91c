package shell

import (
	"os"
	"os/exec"
	"strings"
)

// splitCommand tokenizes a command string the way the original's
// strtok(str, " \t\n\r\f\v") does: runs of any of those bytes
// separate tokens, and leading/trailing runs produce no empty
// tokens.
func splitCommand(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			return true
		default:
			return false
		}
	})
}

// Cd changes the process's working directory.
func Cd(path string) error {
	return os.Chdir(path)
}

// Cwd returns the process's current working directory.
func Cwd() (string, error) {
	return os.Getwd()
}

// RunAll runs each command string to completion, one after another,
// inheriting the calling process's stdio. It reports whether every
// command exited zero.
func RunAll(commands []string) (bool, error) {
	allSuccess := true
	for _, cmdline := range commands {
		args := splitCommand(cmdline)
		if len(args) == 0 {
			continue
		}
		cmd := exec.Command(args[0], args[1:]...)
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			if _, isExitErr := err.(*exec.ExitError); !isExitErr {
				return false, err
			}
			allSuccess = false
		}
	}

	return allSuccess, nil
}

// Daemon starts a command and does not wait for it, mirroring the
// original's fork-without-reap behavior: the child is left to the
// operating system rather than collected with wait(2).
func Daemon(cmdline string) error {
	args := splitCommand(cmdline)
	if len(args) == 0 {
		return nil
	}
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Start()
}

// PipelineBuilder assembles a left-to-right process pipeline
// (command-1 | command-2 | ... | command-N), one command string per
// stage, connected with anonymous pipes.
type PipelineBuilder struct {
	stages []string
}

// NewPipeline starts a pipeline builder with its stage command
// strings, in execution order.
func NewPipeline(stages ...string) *PipelineBuilder {
	return &PipelineBuilder{stages: stages}
}

// AddStage appends one more stage to the end of the pipeline.
func (pb *PipelineBuilder) AddStage(cmdline string) *PipelineBuilder {
	pb.stages = append(pb.stages, cmdline)

	return pb
}

// Run wires every stage's stdout to the next stage's stdin, starts
// them all, and waits for each to finish. It reports whether every
// stage exited zero.
func (pb *PipelineBuilder) Run() (bool, error) {
	n := len(pb.stages)
	if n == 0 {
		return true, nil
	}

	cmds := make([]*exec.Cmd, n)
	for i, cmdline := range pb.stages {
		args := splitCommand(cmdline)
		cmds[i] = exec.Command(args[0], args[1:]...)
		cmds[i].Stderr = os.Stderr
	}
	cmds[0].Stdin = os.Stdin
	cmds[n-1].Stdout = os.Stdout

	closers := make([]func() error, 0, n-1)
	for i := 0; i < n-1; i++ {
		r, w, err := os.Pipe()
		if err != nil {
			return false, err
		}
		cmds[i].Stdout = w
		cmds[i+1].Stdin = r
		closers = append(closers, w.Close, r.Close)
	}

	for _, cmd := range cmds {
		if err := cmd.Start(); err != nil {
			return false, err
		}
	}
	for _, closeFn := range closers {
		closeFn()
	}

	allSuccess := true
	for _, cmd := range cmds {
		if err := cmd.Wait(); err != nil {
			if _, isExitErr := err.(*exec.ExitError); !isExitErr {
				return false, err
			}
			allSuccess = false
		}
	}

	return allSuccess, nil
}
