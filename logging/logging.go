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

// Package logging provides a custom logger with support for multiple output
// formats and log levels. All tool output that is not a collaborator's own
// stdio stream goes through this package.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
)

// LogLevel represents the severity level of a log message
type LogLevel int

// OutputType represents the output format for logs
type OutputType int

// Output types for different log formats
const (
	PlainOutput OutputType = iota
	ColorOutput
)

// Log levels for different types of log messages.
// Ordered from least to most severe for numeric comparison.
const (
	// DebugLevel represents debug messages (lowest severity)
	DebugLevel LogLevel = iota
	// InfoLevel represents informational messages
	InfoLevel
	// WarnLevel represents warning messages
	WarnLevel
	// ErrorLevel represents error messages (highest severity)
	ErrorLevel
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "INFO"
	}
}

// CustomLogger wraps the logging functionality with custom formatting options.
type CustomLogger struct {
	mu            sync.Mutex
	LogLevel      slog.Level
	OutputType    OutputType
	Quiet         bool
	ConsoleWriter io.Writer
	Verbose       bool
}

// formatMessage handles formatting based on output type and log level.
// For ColorOutput, it includes a colored level prefix.
// For PlainOutput, it returns the message as-is.
func (l *CustomLogger) formatMessage(level LogLevel, message string, args ...interface{}) string {
	formattedMsg := fmt.Sprintf(message, args...)

	if l.OutputType != ColorOutput {
		return formattedMsg
	}

	// Apply colored level prefix for color output
	switch level {
	case DebugLevel:
		return color.HiBlackString("[DEBUG] %s", formattedMsg)
	case InfoLevel:
		return color.HiGreenString("[INFO] %s", formattedMsg)
	case WarnLevel:
		return color.HiYellowString("[WARN] %s", formattedMsg)
	case ErrorLevel:
		return color.HiRedString("[ERROR] %s", formattedMsg)
	default:
		return formattedMsg
	}
}

// shouldShowOnConsoleLocked determines if a message should be shown on console.
// This method must be called while holding l.mu.
// Logic:
// - In quiet mode, only errors are shown
// - In verbose mode, all messages are shown
// - Otherwise, show messages at INFO level and above (INFO, WARN, ERROR)
func (l *CustomLogger) shouldShowOnConsoleLocked(level LogLevel) bool {
	// In quiet mode, only show errors
	if l.Quiet {
		return level == ErrorLevel
	}

	// In verbose mode, show all messages
	if l.Verbose {
		return true
	}

	// Default: show INFO and above (INFO, WARN, ERROR but not DEBUG)
	return level >= InfoLevel
}

func (l *CustomLogger) log(level LogLevel, message string, args ...interface{}) {
	formattedMsg := l.formatMessage(level, message, args...)
	timestamp := time.Now().Format("2006-01-02 15:04:05")

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.shouldShowOnConsoleLocked(level) || l.ConsoleWriter == nil {
		return
	}

	if _, err := fmt.Fprintf(l.ConsoleWriter, "[%s] %s\n", timestamp, formattedMsg); err != nil {
		// Fallback to stderr if ConsoleWriter fails
		fmt.Fprintf(os.Stderr, "[%s] %s\n", timestamp, formattedMsg)
	}
}

// NewCustomLogger creates a new instance of CustomLogger.
func NewCustomLogger(level slog.Level) *CustomLogger {
	return &CustomLogger{
		LogLevel:      level,
		Quiet:         false,
		ConsoleWriter: os.Stderr, // Default to stderr for CLI output
		Verbose:       false,
		OutputType:    PlainOutput,
	}
}

// NewCustomLoggerWithOptions creates a new CustomLogger with full configuration.
func NewCustomLoggerWithOptions(logLevelStr, outputFormat string, quiet, verbose bool) *CustomLogger {
	logLevel := DetermineLogLevel(logLevelStr)

	// Map the format string to the appropriate OutputType
	outputType := PlainOutput
	switch outputFormat {
	case "color":
		outputType = ColorOutput
	case "text", "plain":
		outputType = PlainOutput
	}

	// If verbose is set, ensure we're at least at debug level
	if verbose {
		if logLevel > slog.LevelDebug {
			logLevel = slog.LevelDebug
		}
	}

	return &CustomLogger{
		LogLevel:      logLevel,
		OutputType:    outputType,
		Quiet:         quiet,
		ConsoleWriter: os.Stderr,
		Verbose:       verbose,
	}
}

// SetQuiet enables or disables quiet mode.
// In quiet mode, only error messages are displayed.
// This method is thread-safe.
func (l *CustomLogger) SetQuiet(quiet bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Quiet = quiet
}

// SetVerbose enables or disables verbose mode.
// In verbose mode, info and debug messages are displayed on console.
// This method is thread-safe.
func (l *CustomLogger) SetVerbose(verbose bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Verbose = verbose
}

// Info logs an informational message.
func (l *CustomLogger) Info(format string, args ...interface{}) {
	l.log(InfoLevel, format, args...)
}

// Warn logs a warning message.
func (l *CustomLogger) Warn(format string, args ...interface{}) {
	l.log(WarnLevel, format, args...)
}

// Debug logs a debug message.
func (l *CustomLogger) Debug(format string, args ...interface{}) {
	l.log(DebugLevel, format, args...)
}

// Error logs an error message. It accepts either an error, a format string,
// or any other value as the first argument.
func (l *CustomLogger) Error(firstArg interface{}, args ...interface{}) {
	switch v := firstArg.(type) {
	case error:
		if len(args) == 0 {
			l.log(ErrorLevel, "%s", v.Error())
		} else {
			l.log(ErrorLevel, v.Error(), args...)
		}
	case string:
		l.log(ErrorLevel, v, args...)
	default:
		l.log(ErrorLevel, "%v", v)
	}
}

// DetermineLogLevel converts a string to slog.Level
func DetermineLogLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Global logger support

var (
	loggerMu sync.Mutex
	logger   = NewCustomLogger(slog.LevelInfo)
)

// Initialize configures the global logger from the final configuration
// values. It is safe to log before Initialize; messages use the defaults.
func Initialize(logLevelStr, outputFormat string, quiet, verbose bool) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = NewCustomLoggerWithOptions(logLevelStr, outputFormat, quiet, verbose)
}

// Default returns the global logger.
func Default() *CustomLogger {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	return logger
}

// Info logs an informational message using the global logger.
func Info(message string, args ...interface{}) {
	Default().Info(message, args...)
}

// Warn logs a warning message using the global logger.
func Warn(message string, args ...interface{}) {
	Default().Warn(message, args...)
}

// Error logs an error message using the global logger.
func Error(firstArg interface{}, args ...interface{}) {
	Default().Error(firstArg, args...)
}

// Debug logs a debug message using the global logger.
func Debug(message string, args ...interface{}) {
	Default().Debug(message, args...)
}
