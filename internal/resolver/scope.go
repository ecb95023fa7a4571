// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package resolver implements module-aware type resolution for a scanned
// Rust crate: per-file scopes, a frozen global index, path resolution with
// the crate's shadowing and re-export rules, and the transitive collection
// of every custom type reachable from command signatures.
package resolver

import (
	"github.com/petar-djukic/tauri-ts/pkg/types"
)

// BuildScope turns raw per-file facts into a FileScope: local declaration
// table, import table, wildcard list, alias table, and the canonical module
// path derived from the file's location.
func BuildScope(facts *types.FileFacts) *types.FileScope {
	scope := &types.FileScope{
		Path:        facts.Path,
		Module:      types.ModuleFromFile(facts.Path),
		LocalTypes:  make(map[string]types.TypeKind),
		Imports:     make(map[string]types.ImportedType),
		TypeAliases: make(map[string]string),
	}

	for _, s := range facts.Structs {
		scope.LocalTypes[s.Name] = types.KindStruct
	}
	for _, e := range facts.Enums {
		scope.LocalTypes[e.Name] = types.KindEnum
	}
	for _, a := range facts.Aliases {
		scope.LocalTypes[a.Name] = types.KindAlias
		scope.TypeAliases[a.Name] = a.Base
	}

	for _, imp := range facts.Imports {
		if imp.IsWildcard {
			scope.WildcardImports = append(scope.WildcardImports, types.ModulePath(imp.Path).Clone())
			continue
		}
		if imp.LocalName == "" || len(imp.Path) == 0 {
			continue
		}
		scope.Imports[imp.LocalName] = types.ImportedType{
			Path:         types.ModulePath(imp.Path).Clone(),
			OriginalName: imp.Path[len(imp.Path)-1],
		}
	}

	return scope
}
