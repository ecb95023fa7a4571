// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package resolver

import (
	"github.com/petar-djukic/tauri-ts/pkg/types"
)

// declKey identifies one declaration: two files may each define the same
// name, and each definition expands independently.
type declKey struct {
	name string
	file string
}

// FieldIndex maps a declaration to the type expressions of its fields and
// variant payloads, the edges the closure follows.
type FieldIndex map[declKey][]types.TypeExpr

// BuildFieldIndex indexes struct fields and enum variant payloads by
// (name, owning file).
func BuildFieldIndex(structs []types.StructDecl, enums []types.EnumDecl) FieldIndex {
	idx := make(FieldIndex)
	for _, s := range structs {
		key := declKey{name: s.Name, file: s.SourceFile}
		for _, f := range s.Fields {
			idx[key] = append(idx[key], f.Type)
		}
		if _, ok := idx[key]; !ok {
			idx[key] = nil
		}
	}
	for _, e := range enums {
		key := declKey{name: e.Name, file: e.SourceFile}
		for _, v := range e.Variants {
			idx[key] = append(idx[key], v.Tuple...)
			for _, f := range v.Fields {
				idx[key] = append(idx[key], f.Type)
			}
		}
		if _, ok := idx[key]; !ok {
			idx[key] = nil
		}
	}
	return idx
}

// Add records an extra outgoing edge for a declaration. The pipeline uses
// this to chain alias declarations to their base types so the closure pulls
// the underlying declaration along.
func (idx FieldIndex) Add(name, file string, expr types.TypeExpr) {
	key := declKey{name: name, file: file}
	idx[key] = append(idx[key], expr)
}

// Collector computes the closure of custom types reachable from command
// signatures, resolving every reference through the path resolver.
type Collector struct {
	res *Resolver
}

// NewCollector returns a collector driving res.
func NewCollector(res *Resolver) *Collector {
	return &Collector{res: res}
}

// Collect seeds from every signature's argument and return expressions,
// then transitively expands field and variant references. Each expansion
// resolves in the declaration's owning file, not the original call site.
//
// Unresolved and ambiguous references drop silently. A conflict is recorded
// the instant a name resolves to a second distinct file and is fatal for
// the caller; the collector itself just reports it.
func (c *Collector) Collect(signatures []types.CommandSignature, fields FieldIndex) *types.TypeCollectionResult {
	result := types.NewTypeCollectionResult()
	var worklist []declKey

	record := func(name string, res types.Resolution) {
		if !res.Hit() {
			return
		}
		existing, ok := result.Resolved[name]
		if !ok {
			result.Resolved[name] = res.File
			worklist = append(worklist, declKey{name: name, file: res.File})
			return
		}
		if existing == res.File {
			return
		}
		list := result.Conflicts[name]
		if len(list) == 0 {
			list = []string{existing}
		}
		for _, f := range list {
			if f == res.File {
				result.Conflicts[name] = list
				return
			}
		}
		result.Conflicts[name] = append(list, res.File)
	}

	walk := func(expr types.TypeExpr, fromFile string) {
		for _, ref := range expr.CustomRefs(nil) {
			record(ref, c.res.ResolveType(ref, fromFile))
		}
	}

	for _, sig := range signatures {
		for _, arg := range sig.Args {
			walk(arg.Type, sig.SourceFile)
		}
		if sig.Return != nil {
			walk(*sig.Return, sig.SourceFile)
		}
	}

	processed := make(map[declKey]bool)
	for len(worklist) > 0 {
		item := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		if processed[item] {
			continue
		}
		processed[item] = true

		for _, expr := range fields[item] {
			walk(expr, item.file)
		}
	}

	return result
}
