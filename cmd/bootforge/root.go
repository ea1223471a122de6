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

package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/cowdogmoo/bootforge/builder"
	"github.com/cowdogmoo/bootforge/cargo"
	"github.com/cowdogmoo/bootforge/cli"
	"github.com/cowdogmoo/bootforge/config"
	bferrors "github.com/cowdogmoo/bootforge/errors"
	"github.com/cowdogmoo/bootforge/logging"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bootforge [release] [run] [gdb] [help]",
	Short: "Bootforge - Bootable disk image builder for the kernel project",
	Long: `Bootforge compiles the kernel, locates the bootloader crate inside the
resolved dependency graph, invokes the crate's own builder to produce
bootable disk images under out/, and optionally boots the result in qemu.

Options are bare tokens, not flags; run 'bootforge help' for the full
option descriptions.`,
	Args: cobra.ArbitraryArgs,
	// The option surface is bare tokens; nothing on the command line is
	// a flag, so everything must reach the parser untouched.
	DisableFlagParsing: true,
	SilenceErrors:      true,
	SilenceUsage:       true,
	RunE:               runBuild,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// runBuild parses the options, resolves the bootloader crate's location
// from the dependency graph, and drives the build pipeline.
func runBuild(cmd *cobra.Command, args []string) error {
	opts, err := cli.Parse(args)
	if err != nil {
		return reportUsageError(cmd, err)
	}

	cfg, err := config.Load()
	if err != nil {
		return bferrors.Wrap("load configuration", "", err)
	}

	logging.Initialize(cfg.Log.Level, cfg.Log.Format, false, false)
	logging.Debug("bootforge %s", version)
	logging.Debug("effective configuration:\n%s", cfg.Dump())

	runner := builder.ExecRunner{}

	// The metadata query only succeeds from the project root; cargo
	// reports the cause on stderr itself.
	meta, err := cargo.LoadMetadata(cmd.Context(), runner, cfg.Cargo.Binary)
	if err != nil {
		return &bferrors.ExitError{Code: 1, Err: err}
	}

	dep, err := meta.LocateDependency(cfg.Cargo.BootloaderCrate)
	if err != nil {
		return &bferrors.ExitError{Code: 1, Err: err}
	}
	logging.Debug("located %s %s at %s", cfg.Cargo.BootloaderCrate, dep.Version, dep.RootDir)
	checkBootloaderVersion(cfg, dep)

	projectDir, err := os.Getwd()
	if err != nil {
		return bferrors.Wrap("determine project directory", "", err)
	}

	paths := config.ResolvePaths(cfg, opts.Release, dep.RootDir, projectDir)

	pipeline := builder.NewPipeline(cfg, opts, paths, runner, afero.NewOsFs())
	code, err := pipeline.Run(cmd.Context())
	if err != nil {
		return &bferrors.ExitError{Code: code, Err: err}
	}
	if code != 0 {
		// The emulator's own exit status passes through unmodified.
		return &bferrors.ExitError{Code: code}
	}

	if !opts.Run {
		logging.Info("boot images written to %s", paths.OutDir)
	}
	return nil
}

// reportUsageError prints the usage contract for an option error: help
// exits successfully, everything else prints the message plus usage and
// exits nonzero.
func reportUsageError(cmd *cobra.Command, err error) error {
	out := cmd.OutOrStdout()

	if stderrors.Is(err, cli.ErrHelp) {
		fmt.Fprint(out, cli.Help())
		return nil
	}

	fmt.Fprintf(out, "Error: %v\n", err)

	var unknown *cli.UnknownOptionError
	if stderrors.As(err, &unknown) && unknown.Suggestion != "" {
		fmt.Fprintf(out, "Did you mean %q?\n", unknown.Suggestion)
	}

	fmt.Fprint(out, cli.Usage())
	return &bferrors.ExitError{Code: 1, Err: nil}
}

// checkBootloaderVersion warns when the resolved bootloader version falls
// outside the supported constraint. The image builder's CLI surface is
// what the pipeline depends on, so this never fails the build.
func checkBootloaderVersion(cfg *config.Config, dep cargo.LocatedDependency) {
	ok, err := cargo.CompatibleVersion(dep.Version, cfg.Cargo.BootloaderConstraint)
	if err != nil {
		logging.Debug("skipping bootloader version check: %v", err)
		return
	}
	if !ok {
		logging.Warn("%s %s does not satisfy the supported constraint %q; the image build may fail",
			cfg.Cargo.BootloaderCrate, dep.Version, cfg.Cargo.BootloaderConstraint)
	}
}
