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

// Package cli parses and validates the bare-token command-line surface of
// bootforge. The tool takes no dashed flags; every argument is one of the
// recognized option tokens.
package cli

import (
	"errors"
	"fmt"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Option tokens recognized on the command line.
const (
	OptionRelease = "release"
	OptionRun     = "run"
	OptionGdb     = "gdb"
	OptionHelp    = "help"
)

// knownOptions lists every recognized token, in usage order.
var knownOptions = []string{OptionRelease, OptionRun, OptionGdb, OptionHelp}

// ErrHelp is returned by Parse when the help option is present. The caller
// prints the help text and exits successfully without further validation.
var ErrHelp = errors.New("help requested")

// UnknownOptionError reports a token that is not a recognized option.
type UnknownOptionError struct {
	// Option is the offending token.
	Option string

	// Suggestion is the closest recognized option, if one is close
	// enough to be worth mentioning.
	Suggestion string
}

// Error returns the error message for the unknown option.
func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option %q", e.Option)
}

// DuplicateOptionError reports an option that appeared more than once.
type DuplicateOptionError struct {
	// Option is the repeated token.
	Option string
}

// Error returns the error message for the duplicate option.
func (e *DuplicateOptionError) Error() string {
	return fmt.Sprintf("option %q specified twice", e.Option)
}

// Parse converts the raw argument sequence into validated BuildOptions.
//
// Tokens are processed in order. The help token short-circuits with ErrHelp
// regardless of what follows it; any unrecognized or repeated token stops
// parsing with the corresponding error. After all tokens are consumed the
// option combination is validated.
func Parse(args []string) (BuildOptions, error) {
	var opts BuildOptions
	used := make(map[string]bool, len(knownOptions))

	for _, arg := range args {
		if arg == OptionHelp {
			return BuildOptions{}, ErrHelp
		}

		switch arg {
		case OptionRelease, OptionRun, OptionGdb:
			if used[arg] {
				return BuildOptions{}, &DuplicateOptionError{Option: arg}
			}
			used[arg] = true
		default:
			return BuildOptions{}, &UnknownOptionError{
				Option:     arg,
				Suggestion: suggestOption(arg),
			}
		}

		switch arg {
		case OptionRelease:
			opts.Release = true
		case OptionRun:
			opts.Run = true
		case OptionGdb:
			opts.Gdb = true
		}
	}

	if err := validateOptions(opts); err != nil {
		return BuildOptions{}, err
	}

	return opts, nil
}

// maxSuggestionDistance is the largest edit distance still considered a
// plausible typo of a recognized option.
const maxSuggestionDistance = 2

// suggestOption returns the recognized option closest to the given token,
// or "" when nothing is close enough to be a plausible typo.
func suggestOption(arg string) string {
	best := ""
	bestDistance := maxSuggestionDistance + 1

	for _, opt := range knownOptions {
		if d := fuzzy.LevenshteinDistance(arg, opt); d < bestDistance {
			best = opt
			bestDistance = d
		}
	}
	return best
}
