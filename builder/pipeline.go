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

// Package builder drives the multi-stage build pipeline: it compiles the
// kernel, hands the binary to the bootloader crate's own image builder,
// and optionally boots the result in qemu. Stages run strictly in order;
// the first failure halts the pipeline and its exit status propagates
// unchanged.
package builder

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cowdogmoo/bootforge/cli"
	"github.com/cowdogmoo/bootforge/config"
	"github.com/cowdogmoo/bootforge/logging"
	"github.com/spf13/afero"
)

// Stage identifies one ordered step of the build pipeline.
type Stage int

// Pipeline stages, in execution order.
const (
	// StageEnsureOutputDir creates the output directory if absent.
	StageEnsureOutputDir Stage = iota
	// StageCompile compiles the kernel to a normal binary.
	StageCompile
	// StageBuildImage turns the binary into bootable disk images.
	StageBuildImage
	// StageRun boots the disk image in qemu.
	StageRun

	// stageDone terminates the state machine.
	stageDone
)

// String returns the stage's human-readable name.
func (s Stage) String() string {
	switch s {
	case StageEnsureOutputDir:
		return "create output directory"
	case StageCompile:
		return "compile kernel"
	case StageBuildImage:
		return "build boot image"
	case StageRun:
		return "run qemu"
	default:
		return "unknown stage"
	}
}

// StageError reports a failed pipeline stage together with the exit
// status the pipeline terminates with.
type StageError struct {
	// Stage is the stage that failed.
	Stage Stage

	// Code is the exit status to propagate.
	Code int

	// Err is the underlying error for failures that are not a plain
	// nonzero subprocess exit (e.g. a spawn failure).
	Err error
}

// Error returns the error message for the failed stage.
func (e *StageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to %s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("failed to %s: exit status %d", e.Stage, e.Code)
}

// Unwrap returns the underlying error.
func (e *StageError) Unwrap() error {
	return e.Err
}

// Pipeline executes the build stages for a single invocation.
type Pipeline struct {
	cfg    *config.Config
	opts   cli.BuildOptions
	paths  config.Paths
	runner Runner
	fs     afero.Fs
}

// NewPipeline returns a pipeline over the given configuration, validated
// build options, and resolved paths. The runner and filesystem are
// injected so tests can substitute recorders and an in-memory fs.
func NewPipeline(cfg *config.Config, opts cli.BuildOptions, paths config.Paths, runner Runner, fs afero.Fs) *Pipeline {
	return &Pipeline{
		cfg:    cfg,
		opts:   opts,
		paths:  paths,
		runner: runner,
		fs:     fs,
	}
}

// Run executes the pipeline stages in order and returns the final exit
// status. A stage failure halts the pipeline; later stages never run.
// The qemu stage's own exit status is returned without an error, since
// it reflects the emulated program rather than a build defect.
func (p *Pipeline) Run(ctx context.Context) (int, error) {
	for stage := StageEnsureOutputDir; stage != stageDone; stage = p.next(stage) {
		code, err := p.execute(ctx, stage)
		if err != nil {
			return code, &StageError{Stage: stage, Code: code, Err: err}
		}
		if code != 0 {
			if stage == StageRun {
				return code, nil
			}
			return code, &StageError{Stage: stage, Code: code}
		}
	}
	return 0, nil
}

// next returns the stage following s. The run stage only exists when the
// run option was given.
func (p *Pipeline) next(s Stage) Stage {
	switch s {
	case StageEnsureOutputDir:
		return StageCompile
	case StageCompile:
		return StageBuildImage
	case StageBuildImage:
		if p.opts.Run {
			return StageRun
		}
		return stageDone
	default:
		return stageDone
	}
}

// execute runs a single stage and returns its exit status.
func (p *Pipeline) execute(ctx context.Context, stage Stage) (int, error) {
	if stage == StageEnsureOutputDir {
		if err := p.fs.MkdirAll(p.paths.OutDir, 0o755); err != nil {
			return 1, err
		}
		return 0, nil
	}

	cmd := p.command(stage)
	logging.Debug("stage %q: %s", stage, strings.Join(cmd.Args, " "))
	return p.runner.Run(ctx, cmd)
}

// command builds the subprocess invocation for a stage.
func (p *Pipeline) command(stage Stage) Command {
	switch stage {
	case StageCompile:
		return p.compileCommand()
	case StageBuildImage:
		return p.imageCommand()
	case StageRun:
		return p.runCommand()
	default:
		return Command{}
	}
}

// compileCommand invokes the project's own build.
func (p *Pipeline) compileCommand() Command {
	args := []string{p.cfg.Cargo.Binary, "build"}
	if p.opts.Release {
		args = append(args, "--release")
	}
	return Command{Args: args, Dir: p.paths.ProjectDir}
}

// imageCommand invokes the bootloader crate's own builder, which must run
// from the crate's source directory.
func (p *Pipeline) imageCommand() Command {
	return Command{
		Args: []string{
			p.cfg.Cargo.Binary, "builder",
			"--kernel-manifest", p.paths.ManifestPath,
			"--kernel-binary", p.paths.KernelBinary,
			"--target-dir", p.paths.TargetDir,
			"--out-dir", p.paths.OutDir,
		},
		Dir: p.paths.DependencyRoot,
	}
}

// runCommand boots the UEFI disk image in qemu.
func (p *Pipeline) runCommand() Command {
	args := []string{p.cfg.Qemu.Binary, "-bios", p.cfg.Qemu.BIOS, p.paths.UEFIImage}
	if p.opts.Gdb {
		args = append(args, p.gdbFlags()...)
	}
	return Command{Args: args, Dir: p.paths.ProjectDir}
}

// gdbFlags tells qemu to open a gdb server and pause execution until a
// debugger attaches. -s is shorthand for the default port only.
func (p *Pipeline) gdbFlags() []string {
	if p.cfg.Qemu.GdbPort == config.DefaultGdbPort {
		return []string{"-s", "-S"}
	}
	return []string{"-gdb", "tcp::" + strconv.Itoa(p.cfg.Qemu.GdbPort), "-S"}
}
