// Package process runs shell command lines and ordered command sequences in
// which individual steps may be allowed to fail.
package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"mvdan.cc/sh/v3/shell"
)

// Result is the outcome of running one command line
type Result struct {
	ExitStatus int
	Output     string
}

// Runner executes a single command line.
// A non-nil error means the command could not be run at all.
type Runner interface {
	Run(ctx context.Context, line string) (Result, error)
}

// ExecRunner runs command lines as child processes
type ExecRunner struct {
	workingDir string
}

// NewExecRunner creates an ExecRunner. An empty workingDir uses the current directory.
func NewExecRunner(workingDir string) *ExecRunner {
	return &ExecRunner{workingDir: workingDir}
}

// Run splits line into words using shell quoting rules and executes it,
// capturing stdout and stderr together.
func (r *ExecRunner) Run(ctx context.Context, line string) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	args, err := shell.Fields(line, os.Getenv)
	if err != nil {
		return Result{ExitStatus: -1}, fmt.Errorf("failed to parse command %q: %w", line, err)
	}
	if len(args) == 0 {
		return Result{ExitStatus: -1}, fmt.Errorf("empty command")
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	err = cmd.Run()
	result := Result{Output: output.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitStatus = exitErr.ExitCode()
			return result, nil
		}
		result.ExitStatus = -1
		return result, err
	}
	return result, nil
}
