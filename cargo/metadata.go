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

// Package cargo queries the package manager for the project's resolved
// dependency graph and locates dependencies on disk. The untyped JSON
// document cargo emits is validated once at this boundary into a typed
// model; nothing downstream touches raw metadata.
package cargo

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/cowdogmoo/bootforge/builder"
	"github.com/cowdogmoo/bootforge/errors"
)

// Metadata is the typed form of the `cargo metadata` document, reduced to
// the fields dependency location needs.
type Metadata struct {
	// Packages lists every package in the resolved graph.
	Packages []Package `json:"packages"`

	// Resolve is the dependency graph itself.
	Resolve Resolve `json:"resolve"`
}

// Resolve holds the resolved dependency graph.
type Resolve struct {
	// Root is the package id of the project's own package.
	Root string `json:"root"`

	// Nodes lists one entry per package with its outgoing edges.
	Nodes []Node `json:"nodes"`
}

// Node is a single package's entry in the dependency graph.
type Node struct {
	// ID is the package id of this node.
	ID string `json:"id"`

	// Deps are the node's direct dependencies.
	Deps []Dep `json:"deps"`
}

// Dep is one dependency edge of a graph node.
type Dep struct {
	// Name is the dependency's crate name as declared in the manifest.
	Name string `json:"name"`

	// Pkg is the package id the edge points at.
	Pkg string `json:"pkg"`
}

// Package describes one package in the resolved graph.
type Package struct {
	// ID is the unique package id.
	ID string `json:"id"`

	// Name is the crate name.
	Name string `json:"name"`

	// Version is the resolved semantic version.
	Version string `json:"version"`

	// ManifestPath is the absolute path of the package's Cargo.toml.
	ManifestPath string `json:"manifest_path"`
}

// LocatedDependency is the result of resolving a dependency's on-disk
// location from the graph.
type LocatedDependency struct {
	// RootDir is the directory containing the dependency's manifest.
	RootDir string

	// Version is the dependency's resolved version string.
	Version string
}

// QueryError reports a nonzero exit from the metadata subprocess. The
// tool already printed its diagnostics on stderr, so the message stays
// short.
type QueryError struct {
	// ExitCode is the subprocess's exit status.
	ExitCode int
}

// Error returns the error message for the failed query.
func (e *QueryError) Error() string {
	return fmt.Sprintf("cargo metadata exited with status %d", e.ExitCode)
}

// NotFoundError reports a dependency name that the project's root package
// does not declare.
type NotFoundError struct {
	// Name is the dependency name that was searched for.
	Name string
}

// Error returns the error message for the missing dependency.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no dependency %q found", e.Name)
}

// OutputRunner executes a command capturing its stdout. It is satisfied
// by builder.ExecRunner and by test doubles.
type OutputRunner interface {
	Output(ctx context.Context, cmd builder.Command) ([]byte, int, error)
}

// LoadMetadata runs the package manager's metadata query from the current
// directory and parses its output. The query only succeeds when run from
// a valid project root; a nonzero exit is fatal and carries no retry.
func LoadMetadata(ctx context.Context, runner OutputRunner, cargoBinary string) (*Metadata, error) {
	out, code, err := runner.Output(ctx, builder.Command{
		Args: []string{cargoBinary, "metadata"},
	})
	if err != nil {
		return nil, errors.Wrap("run cargo metadata", "", err)
	}
	if code != 0 {
		return nil, &QueryError{ExitCode: code}
	}

	var meta Metadata
	if err := json.Unmarshal(out, &meta); err != nil {
		return nil, errors.Wrap("parse cargo metadata", "", err)
	}

	return &meta, nil
}

// LocateDependency resolves the on-disk location of the named dependency
// of the project's root package.
//
// The traversal is a deliberate linear scan stopping at the first edge
// whose name matches; dependency counts are small and the graph is parsed
// once per invocation, so no index is built.
func (m *Metadata) LocateDependency(name string) (LocatedDependency, error) {
	pkgID := ""
	for _, node := range m.Resolve.Nodes {
		if node.ID != m.Resolve.Root {
			continue
		}
		for _, dep := range node.Deps {
			if dep.Name == name {
				pkgID = dep.Pkg
				break
			}
		}
		break
	}

	if pkgID == "" {
		return LocatedDependency{}, &NotFoundError{Name: name}
	}

	// A valid edge always has a matching package entry; a miss here
	// means the metadata source broke its own contract.
	for _, pkg := range m.Packages {
		if pkg.ID == pkgID {
			return LocatedDependency{
				RootDir: filepath.Dir(pkg.ManifestPath),
				Version: pkg.Version,
			}, nil
		}
	}

	return LocatedDependency{}, fmt.Errorf("corrupt cargo metadata: package %q referenced by the dependency graph is missing from the package list", pkgID)
}
