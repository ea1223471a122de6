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

package cli

// Usage returns the short usage message printed alongside option errors.
func Usage() string {
	return `usage: bootforge [options...]
  available options: release, run, gdb, help
`
}

// Help returns the full help screen listing every option.
func Help() string {
	return `usage: bootforge [options...]
  options:
     release
         Build the kernel with 'cargo build --release'.
         This enables optimizations and doesn't emit debug info.
     run
         After building the disk image, run it in qemu.
         qemu needs to be installed for this to work.
         To install, follow instructions at https://www.qemu.org/download/.
     gdb
         Tells qemu to wait for a connection from gdb at port 1234
         before starting execution.
         Must be used in conjunction with 'run'.
     help
         Prints this help screen, and then exits.
`
}
