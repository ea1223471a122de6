/*
Copyright © 2025 Jayson Grace <jayson.e.grace@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/

package builder

import (
	"bytes"
	"context"
	stderrors "errors"
	"os"
	"os/exec"
)

// Command describes a single external process invocation.
type Command struct {
	// Args is the full argument vector; Args[0] is the executable.
	Args []string

	// Dir is the working directory for the process. Empty means the
	// current directory.
	Dir string
}

// Runner executes external commands on behalf of the build pipeline.
type Runner interface {
	// Run executes the command with stdio inherited from the parent
	// process and returns its exit status. A spawn failure (e.g. the
	// executable is not installed) is reported through the error; the
	// returned status is then nonzero so callers can treat both
	// failure modes the same way.
	Run(ctx context.Context, cmd Command) (int, error)

	// Output executes the command capturing its stdout. Stderr stays
	// attached to the parent process so diagnostics from the invoked
	// tool reach the user directly.
	Output(ctx context.Context, cmd Command) ([]byte, int, error)
}

// ExecRunner runs commands as real subprocesses via os/exec.
type ExecRunner struct{}

// Run executes the command with inherited stdio and blocks until it exits.
func (ExecRunner) Run(ctx context.Context, cmd Command) (int, error) {
	c := exec.CommandContext(ctx, cmd.Args[0], cmd.Args[1:]...)
	c.Dir = cmd.Dir
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	return wait(c)
}

// Output executes the command capturing stdout and blocks until it exits.
func (ExecRunner) Output(ctx context.Context, cmd Command) ([]byte, int, error) {
	var stdout bytes.Buffer

	c := exec.CommandContext(ctx, cmd.Args[0], cmd.Args[1:]...)
	c.Dir = cmd.Dir
	c.Stdout = &stdout
	c.Stderr = os.Stderr

	code, err := wait(c)
	return stdout.Bytes(), code, err
}

// wait runs the prepared command and maps the outcome to an exit status.
func wait(c *exec.Cmd) (int, error) {
	if err := c.Run(); err != nil {
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		// The process never started, e.g. executable not found.
		return 1, err
	}
	return 0, nil
}
