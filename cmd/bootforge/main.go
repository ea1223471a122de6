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

// Package main implements the bootforge CLI tool for building the kernel
// project into bootable disk images and running them in qemu.
package main

import (
	stderrors "errors"
	"os"

	bferrors "github.com/cowdogmoo/bootforge/errors"
	"github.com/cowdogmoo/bootforge/logging"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := Execute(); err != nil {
		var exitErr *bferrors.ExitError
		if stderrors.As(err, &exitErr) {
			if exitErr.Err != nil {
				logging.Error(exitErr.Err)
			}
			os.Exit(exitErr.Code)
		}

		logging.Error(err)
		os.Exit(1)
	}
}
