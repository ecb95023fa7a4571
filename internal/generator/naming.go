// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package generator emits the TypeScript bindings: a types file with
// interfaces and unions, and a commands file with invoke wrappers.
package generator

import "strings"

// ToCamelCase converts snake_case to camelCase. Leading underscores never
// capitalize the first letter; doubled and trailing underscores collapse.
func ToCamelCase(s string) string {
	var b strings.Builder
	capitalizeNext := false
	seenNonUnderscore := false
	for _, c := range s {
		switch {
		case c == '_':
			if seenNonUnderscore {
				capitalizeNext = true
			}
		case capitalizeNext:
			b.WriteString(strings.ToUpper(string(c)))
			capitalizeNext = false
		case !seenNonUnderscore:
			b.WriteString(strings.ToLower(string(c)))
			seenNonUnderscore = true
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// ToSnakeCase converts PascalCase or camelCase to snake_case.
func ToSnakeCase(s string) string {
	var b strings.Builder
	for i, c := range s {
		if c >= 'A' && c <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(c - 'A' + 'a')
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}
