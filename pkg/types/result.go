// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

// ResolutionStatus discriminates the outcome of a type resolution.
type ResolutionStatus int

const (
	StatusFound ResolutionStatus = iota
	StatusFoundWithAlias
	StatusAmbiguous
	StatusNotFound
)

// String returns the human-readable name of the status.
func (s ResolutionStatus) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusFoundWithAlias:
		return "found_with_alias"
	case StatusAmbiguous:
		return "ambiguous"
	case StatusNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Resolution is the outcome of resolving one type reference from one file.
type Resolution struct {
	Status       ResolutionStatus
	File         string   // Defining file for Found / FoundWithAlias
	OriginalName string   // Pre-rename name for FoundWithAlias
	Candidates   []string // All candidate files for Ambiguous, first-seen order
}

// Found reports a definite defining file.
func Found(file string) Resolution {
	return Resolution{Status: StatusFound, File: file}
}

// FoundWithAlias reports a defining file reached through a renamed import.
func FoundWithAlias(file, originalName string) Resolution {
	return Resolution{Status: StatusFoundWithAlias, File: file, OriginalName: originalName}
}

// Ambiguous reports that more than one defining file is reachable.
func Ambiguous(candidates []string) Resolution {
	return Resolution{Status: StatusAmbiguous, Candidates: candidates}
}

// NotFound reports that no defining file is reachable.
func NotFound() Resolution {
	return Resolution{Status: StatusNotFound}
}

// Hit reports whether the resolution names a single defining file.
func (r Resolution) Hit() bool {
	return r.Status == StatusFound || r.Status == StatusFoundWithAlias
}

// TypeCollectionResult is the output of the usage collector.
type TypeCollectionResult struct {
	// Resolved maps each reachable custom type name to its defining file.
	Resolved map[string]string
	// Conflicts maps names that resolved to more than one distinct file to
	// every file seen, first-seen order, deduplicated. Any entry here is
	// fatal for the enclosing pipeline.
	Conflicts map[string][]string
}

// NewTypeCollectionResult returns an empty result with initialized maps.
func NewTypeCollectionResult() *TypeCollectionResult {
	return &TypeCollectionResult{
		Resolved:  make(map[string]string),
		Conflicts: make(map[string][]string),
	}
}
