// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package resolver

import (
	"sort"

	"github.com/petar-djukic/tauri-ts/pkg/types"
)

// Builder accumulates file scopes and synthetic declarations during the
// scan phase. Freeze produces the immutable Index that all resolution runs
// against; no lookup may happen against a partially populated builder.
type Builder struct {
	scopes       map[string]*types.FileScope
	moduleToFile map[string]string
	locations    map[string][]string // type name -> defining files, scan order
	synthetic    map[string][]string // macro-origin names, kept only if no real entry
}

// NewBuilder returns an empty index builder.
func NewBuilder() *Builder {
	return &Builder{
		scopes:       make(map[string]*types.FileScope),
		moduleToFile: make(map[string]string),
		locations:    make(map[string][]string),
		synthetic:    make(map[string][]string),
	}
}

// AddScope registers a file scope, its module mapping, and its local type
// declarations. The same file never lists twice for a name.
func (b *Builder) AddScope(scope *types.FileScope) {
	b.scopes[scope.Path] = scope
	b.moduleToFile[scope.Module.Key()] = scope.Path
	for name := range scope.LocalTypes {
		b.addLocation(b.locations, name, scope.Path)
	}
}

// AddSynthetic registers a type name reported by a source with no owning
// scope (e.g. macro expansion). Synthetic entries survive Freeze only for
// names that no real source file declares.
func (b *Builder) AddSynthetic(name, file string) {
	b.addLocation(b.synthetic, name, file)
}

func (b *Builder) addLocation(m map[string][]string, name, file string) {
	for _, f := range m[name] {
		if f == file {
			return
		}
	}
	m[name] = append(m[name], file)
}

// Freeze finishes the scan phase and returns the read-only index.
func (b *Builder) Freeze() *Index {
	idx := &Index{
		scopes:       b.scopes,
		moduleToFile: b.moduleToFile,
		locations:    make(map[string][]string, len(b.locations)),
	}
	for name, files := range b.locations {
		idx.locations[name] = files
	}
	// Real declarations always take priority over synthetic ones.
	for name, files := range b.synthetic {
		if _, exists := idx.locations[name]; !exists {
			idx.locations[name] = files
		}
	}
	for path := range b.scopes {
		idx.files = append(idx.files, path)
	}
	sort.Strings(idx.files)
	return idx
}

// Index is the frozen global view of a scanned crate. It is safe for any
// number of resolution calls; nothing mutates it after Freeze.
type Index struct {
	scopes       map[string]*types.FileScope
	moduleToFile map[string]string
	locations    map[string][]string
	files        []string // sorted scope paths, the explicit tie-break order
}

// Scope returns the scope for a file, or nil if the file was never scanned.
func (idx *Index) Scope(file string) *types.FileScope {
	return idx.scopes[file]
}

// FileForModule returns the file registered for a canonical module path
// key, or "".
func (idx *Index) FileForModule(key string) string {
	return idx.moduleToFile[key]
}

// LocationsOf returns every file defining name, in first-seen scan order.
// Callers must not mutate the returned slice.
func (idx *Index) LocationsOf(name string) []string {
	return idx.locations[name]
}

// Files returns all scanned file paths in sorted order.
func (idx *Index) Files() []string {
	return idx.files
}
