// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package generator

import "strings"

// Options carries the naming knobs applied to emitted identifiers.
type Options struct {
	TypePrefix         string
	TypeSuffix         string
	FunctionPrefix     string
	FunctionSuffix     string
	PreserveFieldNames bool
}

// Context holds the options plus the set of type names the types file
// declares. Prefixes and suffixes apply only to declared types; references
// to anything else pass through untouched.
type Context struct {
	opts       Options
	registered map[string]bool
}

// NewContext creates a generation context for the given declared type names.
func NewContext(opts Options, typeNames []string) *Context {
	registered := make(map[string]bool, len(typeNames))
	for _, n := range typeNames {
		registered[n] = true
	}
	return &Context{opts: opts, registered: registered}
}

// IsDeclaredType reports whether name is declared in the generated types
// file. Scoped references count by their final segment.
func (c *Context) IsDeclaredType(name string) bool {
	return c.registered[lastSegment(name)]
}

// TypeName renders the TypeScript name for a declared Rust type.
func (c *Context) TypeName(name string) string {
	return c.opts.TypePrefix + lastSegment(name) + c.opts.TypeSuffix
}

// FuncName renders the TypeScript wrapper name for a Rust command.
func (c *Context) FuncName(name string) string {
	return c.opts.FunctionPrefix + ToCamelCase(name) + c.opts.FunctionSuffix
}

// FieldName renders a field or variant-field name, honoring
// PreserveFieldNames.
func (c *Context) FieldName(name string) string {
	if c.opts.PreserveFieldNames {
		return name
	}
	return ToCamelCase(name)
}

func lastSegment(name string) string {
	if idx := strings.LastIndex(name, "::"); idx >= 0 {
		return name[idx+2:]
	}
	return name
}
