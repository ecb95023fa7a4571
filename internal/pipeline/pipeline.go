// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package pipeline wires the stages together: scan the crate, extract
// per-file facts, build and freeze the resolution index, collect the type
// closure reachable from command signatures, and emit the TypeScript
// outputs.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/petar-djukic/tauri-ts/internal/expand"
	"github.com/petar-djukic/tauri-ts/internal/generator"
	"github.com/petar-djukic/tauri-ts/internal/parser"
	"github.com/petar-djukic/tauri-ts/internal/resolver"
	"github.com/petar-djukic/tauri-ts/internal/scanner"
	"github.com/petar-djukic/tauri-ts/pkg/types"
)

var (
	// ErrConflicts means at least one type name resolved to two different
	// defining files from different use sites. The run stops rather than
	// guessing which definition the frontend should see.
	ErrConflicts = errors.New("conflicting type resolutions")

	// ErrDrift means check mode found the on-disk outputs differ from what
	// generation produces now.
	ErrDrift = errors.New("generated files are out of date")

	// ErrNoCommands means the scan found no annotated commands at all,
	// which almost always indicates a wrong source directory.
	ErrNoCommands = errors.New("no commands found")
)

// Config carries everything one run needs.
type Config struct {
	SourceDir      string
	Exclude        []string
	UseCargoExpand bool
	CargoManifest  string

	TypesFile    string
	CommandsFile string
	Naming       generator.Options

	Check   bool
	Verbose bool
	Stderr  io.Writer
}

// Result summarizes a run.
type Result struct {
	FilesScanned  int
	ParseFailures []string
	Commands      int
	TypesEmitted  int
	Drift         []string // populated in check mode
}

// Run executes the whole pipeline. In check mode nothing is written; the
// on-disk outputs are compared against fresh generation instead.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	out := cfg.Stderr
	if out == nil {
		out = io.Discard
	}
	logf := func(format string, args ...any) {
		if cfg.Verbose {
			fmt.Fprintf(out, format+"\n", args...)
		}
	}

	files, err := scanner.New(cfg.SourceDir, cfg.Exclude).Scan()
	if err != nil {
		return nil, err
	}
	logf("scanned %d files under %s", len(files), cfg.SourceDir)

	result := &Result{FilesScanned: len(files)}

	p := parser.New()
	var allFacts []*types.FileFacts
	for _, rel := range files {
		src, err := os.ReadFile(filepath.Join(cfg.SourceDir, filepath.FromSlash(rel)))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", rel, err)
		}
		facts, err := p.ParseFile(ctx, rel, src)
		if err != nil {
			// A file that does not parse contributes no facts but never
			// aborts the run.
			result.ParseFailures = append(result.ParseFailures, rel)
			logf("skipping %s: %v", rel, err)
			continue
		}
		logf("parsed %s: %d commands, %d structs, %d enums",
			rel, len(facts.Commands), len(facts.Structs), len(facts.Enums))
		allFacts = append(allFacts, facts)
	}

	builder := resolver.NewBuilder()
	for _, facts := range allFacts {
		builder.AddScope(resolver.BuildScope(facts))
	}

	var structs []types.StructDecl
	var enums []types.EnumDecl
	var aliases []types.AliasDecl
	var commands []types.CommandSignature
	for _, facts := range allFacts {
		structs = append(structs, facts.Structs...)
		enums = append(enums, facts.Enums...)
		aliases = append(aliases, facts.Aliases...)
		commands = append(commands, facts.Commands...)
	}

	if cfg.UseCargoExpand {
		expanded, err := runExpand(ctx, cfg, p, logf)
		if err != nil {
			return nil, err
		}
		if expanded != nil {
			for _, s := range expanded.Structs {
				builder.AddSynthetic(s.Name, expand.SourceName)
			}
			for _, e := range expanded.Enums {
				builder.AddSynthetic(e.Name, expand.SourceName)
			}
			structs = append(structs, expanded.Structs...)
			enums = append(enums, expanded.Enums...)
		}
	}

	if len(commands) == 0 {
		return result, fmt.Errorf("%w: %s", ErrNoCommands, cfg.SourceDir)
	}
	result.Commands = len(commands)

	idx := builder.Freeze()
	res := resolver.New(idx)

	fieldIdx := resolver.BuildFieldIndex(structs, enums)
	for _, a := range aliases {
		if base, ok := res.ResolveAliasTarget(a.Name, a.SourceFile); ok {
			fieldIdx.Add(a.Name, a.SourceFile, types.CustomRef(base))
		}
	}

	collected := resolver.NewCollector(res).Collect(commands, fieldIdx)
	if len(collected.Conflicts) > 0 {
		return result, conflictError(collected.Conflicts)
	}

	structsOut, enumsOut, aliasesOut := filterDecls(structs, enums, aliases, collected.Resolved, res)
	result.TypesEmitted = len(structsOut) + len(enumsOut) + len(aliasesOut)
	logf("resolved %d types for %d commands", result.TypesEmitted, result.Commands)

	registered := make([]string, 0, result.TypesEmitted)
	for _, s := range structsOut {
		registered = append(registered, s.Name)
	}
	for _, e := range enumsOut {
		registered = append(registered, e.Name)
	}
	for _, a := range aliasesOut {
		registered = append(registered, a.Name)
	}

	genCtx := generator.NewContext(cfg.Naming, registered)
	typesTS := generator.GenerateTypes(structsOut, enumsOut, aliasesOut, genCtx)
	commandsTS := generator.GenerateCommands(commands, genCtx,
		generator.RelativeImportPath(filepath.ToSlash(cfg.CommandsFile), filepath.ToSlash(cfg.TypesFile)))

	outputs := []output{
		{path: cfg.TypesFile, content: typesTS},
		{path: cfg.CommandsFile, content: commandsTS},
	}
	if cfg.Check {
		return checkOutputs(result, outputs, out)
	}
	for _, o := range outputs {
		if err := writeFile(o.path, o.content); err != nil {
			return result, err
		}
		logf("wrote %s", o.path)
	}
	return result, nil
}

func runExpand(ctx context.Context, cfg Config, p *parser.Parser, logf func(string, ...any)) (*types.FileFacts, error) {
	src, err := expand.Run(ctx, expand.Config{
		ManifestPath: cfg.CargoManifest,
		WorkDir:      cfg.SourceDir,
	})
	if err != nil {
		return nil, err
	}
	facts, err := p.ParseExpanded(ctx, expand.SourceName, src)
	if err != nil {
		logf("skipping expanded output: %v", err)
		return nil, nil
	}
	logf("cargo expand contributed %d structs, %d enums", len(facts.Structs), len(facts.Enums))
	return facts, nil
}

// filterDecls keeps exactly the declarations the collector resolved: the
// (name, file) pair must match, and the first declaration of a name wins.
func filterDecls(structs []types.StructDecl, enums []types.EnumDecl, aliases []types.AliasDecl, resolved map[string]string, res *resolver.Resolver) ([]types.StructDecl, []types.EnumDecl, []generator.AliasDef) {
	seen := make(map[string]bool)
	keep := func(name, file string) bool {
		if resolved[name] != file || seen[name] {
			return false
		}
		seen[name] = true
		return true
	}

	var structsOut []types.StructDecl
	for _, s := range structs {
		if keep(s.Name, s.SourceFile) {
			structsOut = append(structsOut, s)
		}
	}
	var enumsOut []types.EnumDecl
	for _, e := range enums {
		if keep(e.Name, e.SourceFile) {
			enumsOut = append(enumsOut, e)
		}
	}
	var aliasesOut []generator.AliasDef
	for _, a := range aliases {
		if !keep(a.Name, a.SourceFile) {
			continue
		}
		base := a.Base
		if flattened, ok := res.ResolveAliasTarget(a.Name, a.SourceFile); ok {
			base = flattened
		}
		aliasesOut = append(aliasesOut, generator.AliasDef{Name: a.Name, Base: base})
	}
	return structsOut, enumsOut, aliasesOut
}

func conflictError(conflicts map[string][]string) error {
	names := make([]string, 0, len(conflicts))
	for name := range conflicts {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(name + " defined in " + strings.Join(conflicts[name], ", "))
	}
	return fmt.Errorf("%w: %s", ErrConflicts, b.String())
}

func writeFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
