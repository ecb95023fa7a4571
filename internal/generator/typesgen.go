// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package generator

import (
	"strings"

	"github.com/petar-djukic/tauri-ts/pkg/types"
)

const fileHeader = "// This file was automatically generated by tauri-ts. Do not edit manually.\n"

// AliasDef pairs an alias name with its flattened base name for emission.
type AliasDef struct {
	Name string
	Base string
}

// GenerateTypes renders the types file: one interface per struct, one union
// per enum, and one type alias per AliasDef, in the order given.
func GenerateTypes(structs []types.StructDecl, enums []types.EnumDecl, aliases []AliasDef, ctx *Context) string {
	var b strings.Builder
	b.WriteString(fileHeader)

	for _, s := range structs {
		b.WriteString("\n")
		writeInterface(&b, s, ctx)
	}
	for _, e := range enums {
		b.WriteString("\n")
		writeEnumUnion(&b, e, ctx)
	}
	for _, a := range aliases {
		b.WriteString("\nexport type " + ctx.TypeName(a.Name) + " = " + aliasBaseTS(a.Base, ctx) + ";\n")
	}
	return b.String()
}

func aliasBaseTS(base string, ctx *Context) string {
	if ctx.IsDeclaredType(base) {
		return ctx.TypeName(base)
	}
	return primitiveTS(base)
}

func writeInterface(b *strings.Builder, s types.StructDecl, ctx *Context) {
	b.WriteString("export interface " + ctx.TypeName(s.Name))
	if len(s.Generics) > 0 {
		b.WriteString("<" + strings.Join(s.Generics, ", ") + ">")
	}
	b.WriteString(" {\n")
	for _, f := range s.Fields {
		b.WriteString("  " + fieldKey(ctx.FieldName(f.Name)) + ": " + TSType(f.Type, ctx) + ";\n")
	}
	b.WriteString("}\n")
}

// writeEnumUnion renders serde's externally tagged representation: unit
// variants are bare string literals, data variants are single-key objects.
func writeEnumUnion(b *strings.Builder, e types.EnumDecl, ctx *Context) {
	b.WriteString("export type " + ctx.TypeName(e.Name))
	if len(e.Generics) > 0 {
		b.WriteString("<" + strings.Join(e.Generics, ", ") + ">")
	}
	b.WriteString(" =")

	if len(e.Variants) == 0 {
		b.WriteString(" never;\n")
		return
	}

	unitOnly := true
	for _, v := range e.Variants {
		if v.Kind != types.VariantUnit {
			unitOnly = false
			break
		}
	}

	if unitOnly {
		parts := make([]string, len(e.Variants))
		for i, v := range e.Variants {
			parts[i] = `"` + v.Name + `"`
		}
		b.WriteString(" " + strings.Join(parts, " | ") + ";\n")
		return
	}

	for _, v := range e.Variants {
		b.WriteString("\n  | " + variantTS(v, ctx))
	}
	b.WriteString(";\n")
}

func variantTS(v types.EnumVariant, ctx *Context) string {
	switch v.Kind {
	case types.VariantTuple:
		if len(v.Tuple) == 1 {
			return "{ " + v.Name + ": " + TSType(v.Tuple[0], ctx) + " }"
		}
		parts := make([]string, len(v.Tuple))
		for i, t := range v.Tuple {
			parts[i] = TSType(t, ctx)
		}
		return "{ " + v.Name + ": [" + strings.Join(parts, ", ") + "] }"
	case types.VariantStruct:
		parts := make([]string, len(v.Fields))
		for i, f := range v.Fields {
			parts[i] = fieldKey(ctx.FieldName(f.Name)) + ": " + TSType(f.Type, ctx)
		}
		return "{ " + v.Name + ": { " + strings.Join(parts, "; ") + " } }"
	}
	return `"` + v.Name + `"`
}

// fieldKey quotes a property name when it is not a valid bare identifier
// (serde renames can contain anything).
func fieldKey(name string) string {
	if name == "" {
		return `""`
	}
	for i, c := range name {
		valid := c == '_' || c == '$' ||
			(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
			(i > 0 && c >= '0' && c <= '9')
		if !valid {
			return `"` + name + `"`
		}
	}
	return name
}
