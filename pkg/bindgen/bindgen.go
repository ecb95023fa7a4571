// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package bindgen defines the public interface for tauri-ts, a generator of
// typed TypeScript bindings for Tauri command handlers written in Rust.
package bindgen

import (
	"context"
	"errors"
)

// Error types for the Generator API.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrConflicts     = errors.New("conflicting type resolutions")
	ErrDrift         = errors.New("generated files are out of date")
	ErrNoCommands    = errors.New("no commands found")
)

// InputConfig locates the Rust sources to analyze.
type InputConfig struct {
	SourceDir      string   // Crate source directory (required)
	Exclude        []string // Path substrings or names to skip
	UseCargoExpand bool     // Supplement facts with cargo-expand output
	CargoManifest  string   // Cargo.toml path for cargo-expand (optional)
}

// OutputConfig names the generated TypeScript files.
type OutputConfig struct {
	TypesFile    string // Path for the generated types file
	CommandsFile string // Path for the generated commands file
}

// NamingConfig adjusts emitted identifiers.
type NamingConfig struct {
	TypePrefix         string
	TypeSuffix         string
	FunctionPrefix     string
	FunctionSuffix     string
	PreserveFieldNames bool // keep snake_case field names verbatim
}

// Config configures a Generator instance.
type Config struct {
	Input   InputConfig
	Output  OutputConfig
	Naming  NamingConfig
	Check   bool // compare outputs instead of writing them
	Verbose bool // report per-file progress to stderr
}

// Result holds the outcome of a Generator.Generate invocation.
type Result struct {
	FilesScanned  int      // Rust files discovered
	ParseFailures []string // Files skipped because they did not parse
	Commands      int      // Command signatures found
	TypesEmitted  int      // Declarations written to the types file
	Drift         []string // Out-of-date outputs (check mode only)
}

// Generator produces TypeScript bindings for one crate.
type Generator interface {
	// Generate runs the full pipeline: scan sources, extract facts,
	// resolve every type reachable from a command signature to its
	// defining file, and emit the types and commands files.
	Generate(ctx context.Context) (*Result, error)
}
