// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines shared types used across tauri-ts packages.
package types

import (
	"path/filepath"
	"strings"
)

// Path segment keywords of the Rust module system.
const (
	RootSegment  = "crate" // root anchor
	SuperSegment = "super" // parent module
	SelfSegment  = "self"  // current module
)

// PathSeparator joins module path segments in source references.
const PathSeparator = "::"

// ModulePath is a root-anchored sequence of segments identifying a file's
// logical position in the module hierarchy, e.g. ["crate", "resources"] for
// src/resources/mod.rs.
type ModulePath []string

// String returns the "::"-joined form, e.g. "crate::resources".
func (p ModulePath) String() string {
	return strings.Join(p, PathSeparator)
}

// Key returns the canonical map key for this path. It is the same as
// String; a named method keeps index code honest about what it hashes.
func (p ModulePath) Key() string {
	return strings.Join(p, PathSeparator)
}

// Parent returns the path with the last segment removed, or nil at the root.
func (p ModulePath) Parent() ModulePath {
	if len(p) <= 1 {
		return nil
	}
	return p[:len(p)-1]
}

// Equal reports whether two module paths have identical segments.
func (p ModulePath) Equal(other ModulePath) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy. Resolution code appends to paths while
// canonicalizing, so shared backing arrays are never safe.
func (p ModulePath) Clone() ModulePath {
	out := make(ModulePath, len(p))
	copy(out, p)
	return out
}

// IsSiblingOf reports whether both paths have depth >= 2 and share the same
// parent. Used by the global-fallback tie-break.
func (p ModulePath) IsSiblingOf(other ModulePath) bool {
	if len(p) < 2 || len(other) < 2 {
		return false
	}
	return p.Parent().Equal(other.Parent())
}

// ModuleFromFile derives the canonical module path for a source file located
// at relPath (relative to the crate source root, slash or native separators).
// mod.rs, lib.rs, and main.rs do not contribute a segment:
//
//	commands.rs           -> crate::commands
//	resources/mod.rs      -> crate::resources
//	resources/types.rs    -> crate::resources::types
func ModuleFromFile(relPath string) ModulePath {
	path := ModulePath{RootSegment}
	rel := filepath.ToSlash(relPath)
	for _, part := range strings.Split(rel, "/") {
		if part == "" || part == "." {
			continue
		}
		if part == "mod.rs" || part == "lib.rs" || part == "main.rs" {
			continue
		}
		path = append(path, strings.TrimSuffix(part, ".rs"))
	}
	return path
}
