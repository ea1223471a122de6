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
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/cowdogmoo/bootforge/cli"
	bferrors "github.com/cowdogmoo/bootforge/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{Use: "bootforge"}
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	return cmd, &buf
}

func parseError(t *testing.T, args []string) error {
	t.Helper()
	_, err := cli.Parse(args)
	require.Error(t, err)
	return err
}

func TestReportUsageErrorHelp(t *testing.T) {
	cmd, buf := newTestCommand()

	err := reportUsageError(cmd, parseError(t, []string{"help"}))

	assert.NoError(t, err, "help should exit successfully")
	out := buf.String()
	assert.Contains(t, out, "usage: bootforge")
	assert.Contains(t, out, "release")
	assert.Contains(t, out, "gdb")
	assert.NotContains(t, out, "Error:")
}

func TestReportUsageErrorUnknownOption(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		wantSuggestion string
	}{
		{
			name:           "typo suggests closest option",
			args:           []string{"realease"},
			wantSuggestion: "release",
		},
		{
			name:           "flag syntax suggests bare token",
			args:           []string{"--run"},
			wantSuggestion: "run",
		},
		{
			name: "no suggestion for distant token",
			args: []string{"xyzzy"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, buf := newTestCommand()

			err := reportUsageError(cmd, parseError(t, tt.args))

			var exitErr *bferrors.ExitError
			require.True(t, stderrors.As(err, &exitErr))
			assert.Equal(t, 1, exitErr.Code)

			out := buf.String()
			assert.Contains(t, out, "Error:")
			assert.Contains(t, out, tt.args[0])
			assert.Contains(t, out, "usage: bootforge")
			if tt.wantSuggestion != "" {
				assert.Contains(t, out, "Did you mean \""+tt.wantSuggestion+"\"?")
			} else {
				assert.NotContains(t, out, "Did you mean")
			}
		})
	}
}

func TestReportUsageErrorDuplicateOption(t *testing.T) {
	cmd, buf := newTestCommand()

	err := reportUsageError(cmd, parseError(t, []string{"run", "run"}))

	var exitErr *bferrors.ExitError
	require.True(t, stderrors.As(err, &exitErr))
	assert.Equal(t, 1, exitErr.Code)

	out := buf.String()
	assert.Contains(t, out, "Error:")
	assert.Contains(t, out, "run")
	assert.Contains(t, out, "usage: bootforge")
}

func TestReportUsageErrorGdbWithoutRun(t *testing.T) {
	cmd, buf := newTestCommand()

	err := reportUsageError(cmd, parseError(t, []string{"gdb"}))

	var exitErr *bferrors.ExitError
	require.True(t, stderrors.As(err, &exitErr))
	assert.Equal(t, 1, exitErr.Code)
	assert.Contains(t, buf.String(), "in conjunction with")
}

func TestRootCommandConfiguration(t *testing.T) {
	assert.True(t, rootCmd.DisableFlagParsing,
		"bare-token options must reach the parser untouched")
	assert.True(t, rootCmd.SilenceUsage)
	assert.True(t, rootCmd.SilenceErrors)
	assert.NotNil(t, rootCmd.RunE)
}
