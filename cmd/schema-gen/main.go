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

// Package main generates a JSON schema from the bootforge configuration
// structure. The generated schema enables IDE autocompletion and
// validation for the config YAML file.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cowdogmoo/bootforge/config"
	"github.com/invopop/jsonschema"
)

var (
	output = flag.String("o", "schema/bootforge-config.json", "Output path for JSON schema")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Generate schema from Config struct
	reflector := jsonschema.Reflector{
		ExpandedStruct:            true,
		DoNotReference:            false,
		AllowAdditionalProperties: false,
	}

	// Extract type-level doc comments from Go source files so type
	// definitions carry descriptions; field-level descriptions are
	// handled automatically by the reflector.
	if err := reflector.AddGoComments("github.com/cowdogmoo/bootforge", "./"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to extract type-level comments: %v\n", err)
		// Continue anyway - we still have field-level descriptions from inline comments
	}

	schema := reflector.Reflect(&config.Config{})

	// Add schema metadata
	schema.ID = jsonschema.ID("https://cowdogmoo.github.io/bootforge/schema/config.json")
	schema.Title = "Bootforge Configuration"
	schema.Description = "Schema for the bootforge config.yaml file"

	// Example config to help users understand the structure
	schema.Examples = []interface{}{
		map[string]interface{}{
			"cargo": map[string]interface{}{
				"binary":                "cargo",
				"bootloader_crate":      "bootloader",
				"bootloader_constraint": ">=0.10.0",
			},
			"kernel": map[string]interface{}{
				"binary_name":   "brynolv-evper-ofjall-project",
				"target_triple": "x86_64-unknown-caesarsallad",
				"manifest_name": "Cargo.toml",
			},
			"qemu": map[string]interface{}{
				"binary":   "qemu-system-x86_64",
				"bios":     "bios.bin",
				"gdb_port": 1234,
			},
			"log": map[string]interface{}{
				"level":  "info",
				"format": "color",
			},
		},
	}

	// Marshal to pretty JSON
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	// Ensure output directory exists
	if err := os.MkdirAll(filepath.Dir(*output), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	data = append(data, '\n')

	if err := os.WriteFile(*output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write schema: %w", err)
	}

	fmt.Printf("Schema written to %s\n", *output)
	return nil
}
