// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package bindgen

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/petar-djukic/tauri-ts/internal/generator"
	"github.com/petar-djukic/tauri-ts/internal/pipeline"
)

const (
	defaultTypesFile    = "src/generated/types.ts"
	defaultCommandsFile = "src/generated/commands.ts"
)

// defaultExcludes skip the directories that never hold command sources.
var defaultExcludes = []string{"target", "tests"}

// New validates the config, applies defaults, and returns a ready-to-use
// Generator. No I/O beyond checking the source directory happens here; the
// scan runs in Generate.
func New(cfg Config) (Generator, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	applyDefaults(&cfg)
	return &generatorAdapter{cfg: cfg}, nil
}

// generatorAdapter adapts internal/pipeline.Run to the public Generator
// interface.
type generatorAdapter struct {
	cfg Config
}

func (a *generatorAdapter) Generate(ctx context.Context) (*Result, error) {
	pr, err := pipeline.Run(ctx, pipeline.Config{
		SourceDir:      a.cfg.Input.SourceDir,
		Exclude:        a.cfg.Input.Exclude,
		UseCargoExpand: a.cfg.Input.UseCargoExpand,
		CargoManifest:  a.cfg.Input.CargoManifest,
		TypesFile:      a.cfg.Output.TypesFile,
		CommandsFile:   a.cfg.Output.CommandsFile,
		Naming: generator.Options{
			TypePrefix:         a.cfg.Naming.TypePrefix,
			TypeSuffix:         a.cfg.Naming.TypeSuffix,
			FunctionPrefix:     a.cfg.Naming.FunctionPrefix,
			FunctionSuffix:     a.cfg.Naming.FunctionSuffix,
			PreserveFieldNames: a.cfg.Naming.PreserveFieldNames,
		},
		Check:   a.cfg.Check,
		Verbose: a.cfg.Verbose,
		Stderr:  os.Stderr,
	})
	if pr == nil {
		return &Result{}, translateErr(err)
	}
	return &Result{
		FilesScanned:  pr.FilesScanned,
		ParseFailures: pr.ParseFailures,
		Commands:      pr.Commands,
		TypesEmitted:  pr.TypesEmitted,
		Drift:         pr.Drift,
	}, translateErr(err)
}

// translateErr maps pipeline sentinels onto the public ones so callers can
// errors.Is against this package only.
func translateErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pipeline.ErrConflicts):
		return rewrap(err, pipeline.ErrConflicts, ErrConflicts)
	case errors.Is(err, pipeline.ErrDrift):
		return rewrap(err, pipeline.ErrDrift, ErrDrift)
	case errors.Is(err, pipeline.ErrNoCommands):
		return rewrap(err, pipeline.ErrNoCommands, ErrNoCommands)
	}
	return err
}

func rewrap(err, inner, public error) error {
	detail := strings.TrimPrefix(err.Error(), inner.Error())
	detail = strings.TrimPrefix(detail, ": ")
	if detail == "" {
		return public
	}
	return fmt.Errorf("%w: %s", public, detail)
}

// validateConfig checks that required fields are present.
func validateConfig(cfg Config) error {
	if cfg.Input.SourceDir == "" {
		return fmt.Errorf("Input.SourceDir is required")
	}
	if info, err := os.Stat(cfg.Input.SourceDir); err != nil || !info.IsDir() {
		return fmt.Errorf("Input.SourceDir %q does not exist or is not a directory", cfg.Input.SourceDir)
	}
	return nil
}

// applyDefaults fills in zero-value fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Output.TypesFile == "" {
		cfg.Output.TypesFile = defaultTypesFile
	}
	if cfg.Output.CommandsFile == "" {
		cfg.Output.CommandsFile = defaultCommandsFile
	}
	if cfg.Input.Exclude == nil {
		cfg.Input.Exclude = defaultExcludes
	}
}
