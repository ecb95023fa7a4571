// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

// CommandArg is one parameter of an exported command.
type CommandArg struct {
	Name string // Argument name as written in Rust (snake_case)
	Type TypeExpr
}

// CommandSignature is an exported entry point: a function carrying the
// command attribute, as extracted from source.
type CommandSignature struct {
	Name       string       // Rust function name
	Args       []CommandArg // Ordered parameters, injected framework params removed
	Return     *TypeExpr    // nil for unit/void returns
	SourceFile string       // File the command was found in
	RenameAll  string       // Field-naming policy from the attribute ("" = default)
}

// StructField is one named field of a struct or struct-variant.
type StructField struct {
	Name string // Final wire name (serde rename already applied)
	Type TypeExpr
}

// StructDecl is a serializable struct declaration.
type StructDecl struct {
	Name       string
	Generics   []string // Type parameter names, e.g. ["T"]
	Fields     []StructField
	SourceFile string
}

// VariantKind discriminates enum variant payload shapes.
type VariantKind int

const (
	VariantUnit VariantKind = iota
	VariantTuple
	VariantStruct
)

// EnumVariant is one variant of an enum declaration.
type EnumVariant struct {
	Name   string // Final wire name (serde rename already applied)
	Kind   VariantKind
	Tuple  []TypeExpr    // VariantTuple payload
	Fields []StructField // VariantStruct payload
}

// EnumDecl is a serializable enum declaration.
type EnumDecl struct {
	Name       string
	Generics   []string // Type parameter names, e.g. ["T"]
	Variants   []EnumVariant
	SourceFile string
}

// AliasDecl is a type alias declaration, flattened to its outermost base
// name: `type Users = Vec<User>` records Base "Vec".
type AliasDecl struct {
	Name       string
	Base       string
	SourceFile string
}

// RawImport is one use-declaration binding before scope construction.
type RawImport struct {
	LocalName  string   // Binding name in the importing file ("" for wildcards)
	Path       []string // Segments as written, including crate/self/super
	IsWildcard bool
}

// FileFacts is everything the extraction layer reports for one source file.
// The resolver turns these into a FileScope; the pipeline aggregates the
// declarations and commands across files.
type FileFacts struct {
	Path     string // Relative to the crate source root
	Imports  []RawImport
	Structs  []StructDecl
	Enums    []EnumDecl
	Aliases  []AliasDecl
	Commands []CommandSignature
}
