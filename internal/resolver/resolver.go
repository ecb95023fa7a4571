// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package resolver

import (
	"strings"

	"github.com/petar-djukic/tauri-ts/pkg/types"
)

// Resolver answers "which file defines this type reference?" against a
// frozen index. It holds no mutable state; every call walks the same
// snapshot, so results are deterministic and safe to repeat.
type Resolver struct {
	idx *Index
}

// New returns a resolver over a frozen index.
func New(idx *Index) *Resolver {
	return &Resolver{idx: idx}
}

// Index exposes the underlying frozen index.
func (r *Resolver) Index() *Index {
	return r.idx
}

// ResolveType resolves a type reference, as written at a use site in
// fromFile, to its defining file. typePath is one or more segments joined
// by "::". fromFile may lack a scope (synthetic facts); resolution then
// falls back directly to the global index.
//
// Shadowing policy, applied at every level: explicit import > wildcard
// import > global fallback.
func (r *Resolver) ResolveType(typePath, fromFile string) types.Resolution {
	segments := strings.Split(typePath, types.PathSeparator)
	visited := make(map[string]bool)
	if len(segments) == 1 {
		return r.resolveSingle(segments[0], fromFile, visited)
	}
	return r.resolveSegments(segments, fromFile, visited)
}

// resolveSingle resolves a bare type name in the context of fromFile.
func (r *Resolver) resolveSingle(name, fromFile string, visited map[string]bool) types.Resolution {
	scope := r.idx.Scope(fromFile)
	if scope == nil {
		return r.globalFallback(name, nil)
	}

	if _, ok := scope.LocalTypes[name]; ok {
		return types.Found(fromFile)
	}

	if imp, ok := scope.Imports[name]; ok {
		res := r.resolveImport(imp, scope, visited)
		return wrapAlias(res, name, imp.OriginalName)
	}

	for _, wildcard := range scope.WildcardImports {
		target, ok := canonicalize(wildcard, scope.Module)
		if !ok {
			continue
		}
		if res := r.lookupInModule(target, name, scope, visited); res.Hit() {
			return res
		}
	}

	return r.globalFallback(name, scope)
}

// resolveSegments resolves a path-qualified reference such as
// "shared::Config" or "crate::v1::types::User".
func (r *Resolver) resolveSegments(segments []string, fromFile string, visited map[string]bool) types.Resolution {
	scope := r.idx.Scope(fromFile)
	if scope == nil {
		// No scope to canonicalize against; the best we can do is look the
		// final name up globally.
		return r.globalFallback(segments[len(segments)-1], nil)
	}

	// A leading locally imported name splices the import's recorded path in
	// front of the remaining segments.
	if imp, ok := scope.Imports[segments[0]]; ok {
		spliced := append(imp.Path.Clone(), segments[1:]...)
		abs, ok := canonicalize(spliced, scope.Module)
		if !ok {
			return types.NotFound()
		}
		return r.resolveAbsolute(abs, scope, visited)
	}

	abs, ok := canonicalize(segments, scope.Module)
	if !ok {
		return types.NotFound()
	}
	return r.resolveAbsolute(abs, scope, visited)
}

// resolveImport resolves an explicit import binding from the scope that
// declares it: canonicalize the recorded path against the owning module,
// then resolve it as an absolute path.
func (r *Resolver) resolveImport(imp types.ImportedType, owner *types.FileScope, visited map[string]bool) types.Resolution {
	abs, ok := canonicalize(imp.Path, owner.Module)
	if !ok {
		return types.NotFound()
	}
	return r.resolveAbsolute(abs, owner, visited)
}

// resolveAbsolute resolves a canonical path of the form module_prefix +
// type_name. fromScope supplies the sibling tie-break context for the
// global fallback and is the original querying file's scope throughout a
// resolution, regardless of how many re-export hops were taken.
func (r *Resolver) resolveAbsolute(abs types.ModulePath, fromScope *types.FileScope, visited map[string]bool) types.Resolution {
	if len(abs) < 2 {
		return types.NotFound()
	}
	name := abs[len(abs)-1]
	prefix := abs[:len(abs)-1]

	if res := r.lookupInModule(prefix, name, fromScope, visited); res.Hit() {
		return res
	}

	// Covers declarations with no owning scope, e.g. macro-origin symbols.
	return r.globalFallback(name, fromScope)
}

// lookupInModule searches one module for a type name: local declaration,
// then explicit import (re-export), then each wildcard import target,
// transitively. The visited set bounds cyclic re-export graphs; revisiting
// a module for the same resolution can never change the outcome.
func (r *Resolver) lookupInModule(module types.ModulePath, name string, fromScope *types.FileScope, visited map[string]bool) types.Resolution {
	key := module.Key()
	if visited[key] {
		return types.NotFound()
	}
	visited[key] = true

	file := r.idx.FileForModule(key)
	if file == "" {
		return types.NotFound()
	}
	scope := r.idx.Scope(file)
	if scope == nil {
		return types.NotFound()
	}

	if _, ok := scope.LocalTypes[name]; ok {
		return types.Found(file)
	}

	if imp, ok := scope.Imports[name]; ok {
		res := r.resolveImportVia(imp, scope, fromScope, visited)
		return wrapAlias(res, name, imp.OriginalName)
	}

	for _, wildcard := range scope.WildcardImports {
		target, ok := canonicalize(wildcard, scope.Module)
		if !ok {
			continue
		}
		if res := r.lookupInModule(target, name, fromScope, visited); res.Hit() {
			return res
		}
	}

	return types.NotFound()
}

// resolveImportVia resolves an import found while walking a re-export
// chain. The path canonicalizes against the module that wrote the import;
// the tie-break context stays with the original querying file.
func (r *Resolver) resolveImportVia(imp types.ImportedType, owner, fromScope *types.FileScope, visited map[string]bool) types.Resolution {
	abs, ok := canonicalize(imp.Path, owner.Module)
	if !ok {
		return types.NotFound()
	}
	return r.resolveAbsolute(abs, fromScope, visited)
}

// globalFallback resolves a bare name against the whole index. A single
// candidate wins outright. With several, a candidate whose module is a
// sibling of the querying file's module wins if it is the only such
// sibling; otherwise the reference is ambiguous, candidates in first-seen
// order.
func (r *Resolver) globalFallback(name string, fromScope *types.FileScope) types.Resolution {
	locations := r.idx.LocationsOf(name)
	switch len(locations) {
	case 0:
		return types.NotFound()
	case 1:
		return types.Found(locations[0])
	}

	if fromScope != nil {
		var sibling string
		count := 0
		for _, loc := range locations {
			locScope := r.idx.Scope(loc)
			if locScope == nil {
				continue
			}
			if locScope.Module.IsSiblingOf(fromScope.Module) {
				sibling = loc
				count++
			}
		}
		if count == 1 {
			return types.Found(sibling)
		}
	}

	return types.Ambiguous(locations)
}

// canonicalize turns a possibly relative path into an absolute one against
// the current module: a root anchor resets to the root, super pops one
// level (failing at the root), self is a no-op, and anything else pushes.
// A bare leading segment starts from the current module path.
func canonicalize(path types.ModulePath, current types.ModulePath) (types.ModulePath, bool) {
	abs := current.Clone()
	if len(abs) == 0 {
		abs = types.ModulePath{types.RootSegment}
	}
	if len(path) > 0 && path[0] == types.RootSegment {
		abs = types.ModulePath{types.RootSegment}
		path = path[1:]
	}
	for _, seg := range path {
		switch seg {
		case types.RootSegment:
			abs = types.ModulePath{types.RootSegment}
		case types.SuperSegment:
			if len(abs) <= 1 {
				return nil, false
			}
			abs = abs[:len(abs)-1]
		case types.SelfSegment:
			// no-op
		default:
			abs = append(abs, seg)
		}
	}
	return abs, true
}

// wrapAlias applies the FoundWithAlias wrapping rule: a hit reached through
// a renamed import reports the original name. A wrapping recorded deeper in
// the chain is closer to the definition site and wins.
func wrapAlias(res types.Resolution, localName, originalName string) types.Resolution {
	if !res.Hit() {
		return res
	}
	if res.Status == types.StatusFoundWithAlias {
		return res
	}
	if originalName != localName {
		return types.FoundWithAlias(res.File, originalName)
	}
	return res
}
