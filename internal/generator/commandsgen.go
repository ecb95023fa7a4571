// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package generator

import (
	"path"
	"strings"

	"github.com/petar-djukic/tauri-ts/pkg/types"
)

// GenerateCommands renders the commands file: one typed async invoke
// wrapper per command, importing referenced types from typesImport.
func GenerateCommands(signatures []types.CommandSignature, ctx *Context, typesImport string) string {
	var b strings.Builder
	b.WriteString(fileHeader)
	b.WriteString("\nimport { invoke } from \"@tauri-apps/api/core\";\n")

	if used := usedTypeNames(signatures, ctx); len(used) > 0 {
		b.WriteString("import type { " + strings.Join(used, ", ") + " } from \"" + typesImport + "\";\n")
	}

	for _, sig := range signatures {
		b.WriteString("\n")
		writeWrapper(&b, sig, ctx)
	}
	return b.String()
}

func writeWrapper(b *strings.Builder, sig types.CommandSignature, ctx *Context) {
	params := make([]string, len(sig.Args))
	payload := make([]string, len(sig.Args))
	for i, arg := range sig.Args {
		param := ToCamelCase(arg.Name)
		params[i] = param + ": " + TSType(arg.Type, ctx)
		payload[i] = payloadEntry(invokeKey(arg.Name, sig.RenameAll), param)
	}

	ret := "void"
	if sig.Return != nil {
		ret = TSType(*sig.Return, ctx)
	}

	b.WriteString("export async function " + ctx.FuncName(sig.Name) + "(" + strings.Join(params, ", ") + "): Promise<" + ret + "> {\n")
	b.WriteString("  return await invoke(\"" + sig.Name + "\"")
	if len(payload) > 0 {
		b.WriteString(", { " + strings.Join(payload, ", ") + " }")
	}
	b.WriteString(");\n}\n")
}

// invokeKey is the payload key Tauri matches against the Rust parameter
// name: camelCase by default, verbatim under rename_all = "snake_case".
func invokeKey(argName, renameAll string) string {
	if renameAll == "snake_case" {
		return argName
	}
	return ToCamelCase(argName)
}

func payloadEntry(key, value string) string {
	if key == value {
		return key
	}
	return fieldKey(key) + ": " + value
}

// usedTypeNames collects the declared types referenced by any signature, in
// first-use order.
func usedTypeNames(signatures []types.CommandSignature, ctx *Context) []string {
	seen := make(map[string]bool)
	var names []string
	add := func(expr types.TypeExpr) {
		for _, ref := range expr.CustomRefs(nil) {
			if !ctx.IsDeclaredType(ref) {
				continue
			}
			name := ctx.TypeName(ref)
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	for _, sig := range signatures {
		for _, arg := range sig.Args {
			add(arg.Type)
		}
		if sig.Return != nil {
			add(*sig.Return)
		}
	}
	return names
}

// RelativeImportPath computes the TypeScript import specifier for the types
// file as seen from the commands file, without the .ts extension.
func RelativeImportPath(commandsFile, typesFile string) string {
	rel := relSlash(path.Dir(path.Clean(commandsFile)), path.Clean(typesFile))
	rel = strings.TrimSuffix(rel, ".ts")
	if !strings.HasPrefix(rel, ".") {
		rel = "./" + rel
	}
	return rel
}

func relSlash(fromDir, to string) string {
	from := strings.Split(fromDir, "/")
	target := strings.Split(to, "/")
	if fromDir == "." || fromDir == "" {
		from = nil
	}
	common := 0
	for common < len(from) && common < len(target)-1 && from[common] == target[common] {
		common++
	}
	var parts []string
	for i := common; i < len(from); i++ {
		parts = append(parts, "..")
	}
	parts = append(parts, target[common:]...)
	return strings.Join(parts, "/")
}
