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

package config

import (
	"fmt"
	"path/filepath"
)

// Paths holds every filesystem location the build pipeline needs. All
// paths are derived once, after the dependency graph has been resolved,
// and are immutable afterwards.
type Paths struct {
	// ProjectDir is the kernel project root the tool was invoked from.
	ProjectDir string

	// ManifestPath is the project's Cargo.toml.
	ManifestPath string

	// TargetDir is the project's cargo target directory.
	TargetDir string

	// OutDir is the directory the boot images are written to.
	OutDir string

	// KernelBinary is where the compiled kernel is expected after the
	// compile stage. The path encodes the build profile.
	KernelBinary string

	// DependencyRoot is the bootloader crate's source directory; its
	// builder runs with this as working directory.
	DependencyRoot string

	// BIOSImage is the legacy-BIOS bootable disk image the image
	// builder emits.
	BIOSImage string

	// UEFIApp is the standalone UEFI application the image builder
	// emits.
	UEFIApp string

	// UEFIFilesystem is the UEFI FAT filesystem image the image
	// builder emits.
	UEFIFilesystem string

	// UEFIImage is the UEFI bootable disk image the image builder
	// emits. This is the image qemu boots.
	UEFIImage string
}

// ResolvePaths derives the pipeline's filesystem locations from the
// configuration, the resolved dependency root, and the project directory.
// It is a pure function: no I/O is performed and nothing is created.
func ResolvePaths(cfg *Config, release bool, dependencyRoot, projectDir string) Paths {
	profile := "debug"
	if release {
		profile = "release"
	}

	targetDir := filepath.Join(projectDir, "target")
	outDir := filepath.Join(projectDir, "out")
	binName := cfg.Kernel.BinaryName

	return Paths{
		ProjectDir:     projectDir,
		ManifestPath:   filepath.Join(projectDir, cfg.Kernel.ManifestName),
		TargetDir:      targetDir,
		OutDir:         outDir,
		KernelBinary:   filepath.Join(targetDir, cfg.Kernel.TargetTriple, profile, binName),
		DependencyRoot: dependencyRoot,
		BIOSImage:      filepath.Join(outDir, fmt.Sprintf("boot-bios-%s.img", binName)),
		UEFIApp:        filepath.Join(outDir, fmt.Sprintf("boot-uefi-%s.efi", binName)),
		UEFIFilesystem: filepath.Join(outDir, fmt.Sprintf("boot-uefi-%s.fat", binName)),
		UEFIImage:      filepath.Join(outDir, fmt.Sprintf("boot-uefi-%s.img", binName)),
	}
}
