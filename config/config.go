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

// Package config loads the bootforge configuration and derives the
// filesystem paths the build pipeline works with.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the global bootforge configuration.
// This is for environment-specific settings (tool locations, target
// identity); the build options themselves come from the command line.
type Config struct {
	Cargo  CargoConfig  `mapstructure:"cargo" json:"cargo"`
	Kernel KernelConfig `mapstructure:"kernel" json:"kernel"`
	Qemu   QemuConfig   `mapstructure:"qemu" json:"qemu"`
	Log    LogConfig    `mapstructure:"log" json:"log"`
}

// CargoConfig holds package-manager related configuration
type CargoConfig struct {
	// Binary is the cargo executable to invoke.
	Binary string `mapstructure:"binary" json:"binary"`

	// BootloaderCrate is the name of the boot-image generator
	// dependency declared in the project manifest.
	BootloaderCrate string `mapstructure:"bootloader_crate" json:"bootloader_crate"`

	// BootloaderConstraint is the semver constraint the resolved
	// bootloader version is checked against. An incompatible version
	// logs a warning but never fails the build.
	BootloaderConstraint string `mapstructure:"bootloader_constraint" json:"bootloader_constraint"`
}

// KernelConfig identifies the kernel project being built
type KernelConfig struct {
	// BinaryName is the name of the compiled kernel executable.
	BinaryName string `mapstructure:"binary_name" json:"binary_name"`

	// TargetTriple is the custom bare-metal target the kernel is
	// compiled for.
	TargetTriple string `mapstructure:"target_triple" json:"target_triple"`

	// ManifestName is the file name of the project manifest.
	ManifestName string `mapstructure:"manifest_name" json:"manifest_name"`
}

// QemuConfig holds emulator configuration
type QemuConfig struct {
	// Binary is the qemu executable to invoke.
	Binary string `mapstructure:"binary" json:"binary"`

	// BIOS is the firmware file passed to qemu's -bios flag.
	BIOS string `mapstructure:"bios" json:"bios"`

	// GdbPort is the TCP port qemu listens on for a debugger when the
	// gdb option is given.
	GdbPort int `mapstructure:"gdb_port" json:"gdb_port"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level" json:"level"`
	Format string `mapstructure:"format" json:"format"`
}

// DefaultGdbPort is the port qemu's -s shorthand listens on.
const DefaultGdbPort = 1234

// Load reads the bootforge configuration with the usual precedence:
// environment variables (BOOTFORGE_*) over config file over built-in
// defaults. A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and type
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Look in these locations (in order)
	home, err := os.UserHomeDir()
	if err == nil {
		v.AddConfigPath(filepath.Join(home, ".bootforge"))
		v.AddConfigPath(filepath.Join(home, ".config", "bootforge")) // XDG standard
	}
	v.AddConfigPath(".")

	setDefaults(v)

	// Environment variable support
	// BOOTFORGE_QEMU_BINARY, BOOTFORGE_LOG_LEVEL, etc.
	v.SetEnvPrefix("BOOTFORGE")
	v.AutomaticEnv()
	bindEnvVars(v)

	// Read config file (optional - doesn't error if missing)
	_ = v.ReadInConfig()

	// Unmarshal into Config struct
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults registers the built-in defaults, which reproduce the
// kernel project's fixed build identity.
func setDefaults(v *viper.Viper) {
	v.SetDefault("cargo.binary", "cargo")
	v.SetDefault("cargo.bootloader_crate", "bootloader")
	v.SetDefault("cargo.bootloader_constraint", ">=0.10.0")

	v.SetDefault("kernel.binary_name", "brynolv-evper-ofjall-project")
	v.SetDefault("kernel.target_triple", "x86_64-unknown-caesarsallad")
	v.SetDefault("kernel.manifest_name", "Cargo.toml")

	v.SetDefault("qemu.binary", "qemu-system-x86_64")
	v.SetDefault("qemu.bios", "bios.bin")
	v.SetDefault("qemu.gdb_port", DefaultGdbPort)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "color")
}

// bindEnvVars explicitly binds each nested key to its environment
// variable name. Nested keys contain dots, which never appear in env
// names, so every binding spells out the underscore form.
func bindEnvVars(v *viper.Viper) {
	bindings := map[string]string{
		"cargo.binary":                "BOOTFORGE_CARGO_BINARY",
		"cargo.bootloader_crate":      "BOOTFORGE_CARGO_BOOTLOADER_CRATE",
		"cargo.bootloader_constraint": "BOOTFORGE_CARGO_BOOTLOADER_CONSTRAINT",
		"kernel.binary_name":          "BOOTFORGE_KERNEL_BINARY_NAME",
		"kernel.target_triple":        "BOOTFORGE_KERNEL_TARGET_TRIPLE",
		"kernel.manifest_name":        "BOOTFORGE_KERNEL_MANIFEST_NAME",
		"qemu.binary":                 "BOOTFORGE_QEMU_BINARY",
		"qemu.bios":                   "BOOTFORGE_QEMU_BIOS",
		"qemu.gdb_port":               "BOOTFORGE_QEMU_GDB_PORT",
		"log.level":                   "BOOTFORGE_LOG_LEVEL",
		"log.format":                  "BOOTFORGE_LOG_FORMAT",
	}
	for key, envName := range bindings {
		_ = v.BindEnv(key, envName)
	}
}

// Dump renders the effective configuration as YAML for debug logging.
func (c *Config) Dump() string {
	out, err := yaml.Marshal(c)
	if err != nil {
		return ""
	}
	return string(out)
}
