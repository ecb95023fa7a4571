// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

// TypeKind identifies the category of a locally declared type.
type TypeKind int

const (
	KindStruct TypeKind = iota
	KindEnum
	KindAlias
)

// String returns the human-readable name of the type kind.
func (k TypeKind) String() string {
	switch k {
	case KindStruct:
		return "struct"
	case KindEnum:
		return "enum"
	case KindAlias:
		return "alias"
	default:
		return "unknown"
	}
}

// ImportedType records one explicit use-declaration binding.
type ImportedType struct {
	Path         ModulePath // Path as written in source, possibly relative
	OriginalName string     // Name before any `as` rename (last path segment)
}

// FileScope is the frozen per-file resolution context: what the file
// declares, what it imports, and where it sits in the module tree.
type FileScope struct {
	Path            string                  // Source file path (relative to the crate root)
	Module          ModulePath              // Canonical module path
	LocalTypes      map[string]TypeKind     // Locally declared type names
	Imports         map[string]ImportedType // Local name -> import binding
	WildcardImports []ModulePath            // `use path::*` targets, possibly relative
	TypeAliases     map[string]string       // Alias name -> outermost base name (one hop)
}
