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

package logging_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/cowdogmoo/bootforge/logging"
)

func TestNewCustomLogger(t *testing.T) {
	tests := []struct {
		name      string
		level     slog.Level
		wantLevel slog.Level
		wantQuiet bool
	}{
		{
			name:      "info level",
			level:     slog.LevelInfo,
			wantLevel: slog.LevelInfo,
			wantQuiet: false,
		},
		{
			name:      "debug level",
			level:     slog.LevelDebug,
			wantLevel: slog.LevelDebug,
			wantQuiet: false,
		},
		{
			name:      "error level",
			level:     slog.LevelError,
			wantLevel: slog.LevelError,
			wantQuiet: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := logging.NewCustomLogger(tt.level)
			if logger == nil {
				t.Fatal("expected non-nil logger")
				return
			}
			if logger.LogLevel != tt.wantLevel {
				t.Errorf("got level %v, want %v",
					logger.LogLevel, tt.wantLevel)
			}
			if logger.Quiet != tt.wantQuiet {
				t.Errorf("got quiet %v, want %v",
					logger.Quiet, tt.wantQuiet)
			}
		})
	}
}

func TestNewCustomLoggerWithOptions(t *testing.T) {
	tests := []struct {
		name         string
		logLevelStr  string
		outputFormat string
		quiet        bool
		verbose      bool
		wantLevel    slog.Level
		wantOutput   logging.OutputType
	}{
		{
			name:         "defaults",
			logLevelStr:  "info",
			outputFormat: "plain",
			wantLevel:    slog.LevelInfo,
			wantOutput:   logging.PlainOutput,
		},
		{
			name:         "color output",
			logLevelStr:  "warn",
			outputFormat: "color",
			wantLevel:    slog.LevelWarn,
			wantOutput:   logging.ColorOutput,
		},
		{
			name:         "verbose forces debug level",
			logLevelStr:  "info",
			outputFormat: "plain",
			verbose:      true,
			wantLevel:    slog.LevelDebug,
			wantOutput:   logging.PlainOutput,
		},
		{
			name:         "unknown level falls back to info",
			logLevelStr:  "bogus",
			outputFormat: "text",
			wantLevel:    slog.LevelInfo,
			wantOutput:   logging.PlainOutput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := logging.NewCustomLoggerWithOptions(
				tt.logLevelStr, tt.outputFormat, tt.quiet, tt.verbose)
			if logger == nil {
				t.Fatal("expected non-nil logger")
				return
			}
			if logger.LogLevel != tt.wantLevel {
				t.Errorf("got level %v, want %v",
					logger.LogLevel, tt.wantLevel)
			}
			if logger.OutputType != tt.wantOutput {
				t.Errorf("got output type %v, want %v",
					logger.OutputType, tt.wantOutput)
			}
			if logger.Quiet != tt.quiet {
				t.Errorf("got quiet %v, want %v", logger.Quiet, tt.quiet)
			}
			if logger.Verbose != tt.verbose {
				t.Errorf("got verbose %v, want %v",
					logger.Verbose, tt.verbose)
			}
		})
	}
}

func TestConsoleGating(t *testing.T) {
	tests := []struct {
		name    string
		quiet   bool
		verbose bool
		log     func(l *logging.CustomLogger)
		want    bool
	}{
		{
			name: "info shown by default",
			log:  func(l *logging.CustomLogger) { l.Info("building") },
			want: true,
		},
		{
			name: "debug hidden by default",
			log:  func(l *logging.CustomLogger) { l.Debug("argv dump") },
			want: false,
		},
		{
			name:    "debug shown in verbose mode",
			verbose: true,
			log:     func(l *logging.CustomLogger) { l.Debug("argv dump") },
			want:    true,
		},
		{
			name:  "info hidden in quiet mode",
			quiet: true,
			log:   func(l *logging.CustomLogger) { l.Info("building") },
			want:  false,
		},
		{
			name:  "warn hidden in quiet mode",
			quiet: true,
			log:   func(l *logging.CustomLogger) { l.Warn("old bootloader") },
			want:  false,
		},
		{
			name:  "error shown in quiet mode",
			quiet: true,
			log:   func(l *logging.CustomLogger) { l.Error("compile failed") },
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := logging.NewCustomLogger(slog.LevelDebug)
			logger.ConsoleWriter = &buf
			logger.SetQuiet(tt.quiet)
			logger.SetVerbose(tt.verbose)

			tt.log(logger)

			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("message written = %v, want %v (output: %q)",
					got, tt.want, buf.String())
			}
		})
	}
}

func TestErrorAcceptsErrorValues(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewCustomLogger(slog.LevelInfo)
	logger.ConsoleWriter = &buf

	logger.Error(errors.New("qemu-system-x86_64 not found"))

	if !strings.Contains(buf.String(), "qemu-system-x86_64 not found") {
		t.Errorf("expected error message in output, got %q", buf.String())
	}
}

func TestPlainOutputHasNoLevelPrefix(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewCustomLogger(slog.LevelInfo)
	logger.ConsoleWriter = &buf

	logger.Info("compiling kernel for %s", "x86_64-unknown-caesarsallad")

	out := buf.String()
	if strings.Contains(out, "[INFO]") {
		t.Errorf("plain output should not carry a level prefix, got %q", out)
	}
	if !strings.Contains(out, "compiling kernel for x86_64-unknown-caesarsallad") {
		t.Errorf("expected formatted message in output, got %q", out)
	}
}

func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		levelStr string
		want     slog.Level
	}{
		{name: "debug", levelStr: "debug", want: slog.LevelDebug},
		{name: "info", levelStr: "info", want: slog.LevelInfo},
		{name: "warn", levelStr: "warn", want: slog.LevelWarn},
		{name: "error", levelStr: "error", want: slog.LevelError},
		{name: "unknown defaults to info", levelStr: "trace", want: slog.LevelInfo},
		{name: "empty defaults to info", levelStr: "", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := logging.DetermineLogLevel(tt.levelStr); got != tt.want {
				t.Errorf("DetermineLogLevel(%q) = %v, want %v",
					tt.levelStr, got, tt.want)
			}
		})
	}
}
