// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package parser

import "strings"

// Attribute inspection works on source text rather than AST shape: attribute
// token trees vary too much across macros for structural matching to pay off.

// isCommandAttr reports whether any attribute marks the function as an IPC
// command: #[tauri::command] or #[command], with or without arguments.
func isCommandAttr(attrs []string) bool {
	for _, attr := range attrs {
		inner := attrBody(attr)
		for _, prefix := range []string{"tauri::command", "tauri :: command", "command"} {
			if !strings.HasPrefix(inner, prefix) {
				continue
			}
			rest := strings.TrimSpace(inner[len(prefix):])
			if rest == "" || strings.HasPrefix(rest, "(") {
				return true
			}
		}
	}
	return false
}

// renameAll extracts the rename_all value from a command attribute, if any.
func renameAll(attrs []string) string {
	for _, attr := range attrs {
		if !isCommandAttr([]string{attr}) {
			continue
		}
		if v, ok := quotedValue(attrBody(attr), "rename_all"); ok {
			return v
		}
	}
	return ""
}

// derivesSerde reports whether a derive attribute names Serialize or
// Deserialize, which is what marks a declaration as crossing the IPC
// boundary.
func derivesSerde(attrs []string) bool {
	for _, attr := range attrs {
		inner := attrBody(attr)
		if !strings.HasPrefix(inner, "derive") {
			continue
		}
		if strings.Contains(inner, "Serialize") || strings.Contains(inner, "Deserialize") {
			return true
		}
	}
	return false
}

// serdeRename extracts #[serde(rename = "...")] from field or variant
// attributes. rename_all on a container is a different knob and is ignored
// here.
func serdeRename(attrs []string) (string, bool) {
	for _, attr := range attrs {
		inner := attrBody(attr)
		if !strings.HasPrefix(inner, "serde") {
			continue
		}
		if v, ok := quotedValue(inner, "rename"); ok {
			return v, true
		}
	}
	return "", false
}

// attrBody strips the #[ ... ] shell and leading whitespace.
func attrBody(attr string) string {
	inner := strings.TrimSpace(attr)
	inner = strings.TrimPrefix(inner, "#")
	inner = strings.TrimPrefix(inner, "[")
	inner = strings.TrimSuffix(inner, "]")
	return strings.TrimSpace(inner)
}

// quotedValue finds `key = "value"` inside an attribute body. A key match
// followed by another identifier character (rename vs rename_all) does not
// count.
func quotedValue(body, key string) (string, bool) {
	for start := 0; ; {
		idx := strings.Index(body[start:], key)
		if idx < 0 {
			return "", false
		}
		pos := start + idx
		start = pos + len(key)
		if pos > 0 && isIdentChar(body[pos-1]) {
			continue
		}
		if start < len(body) && isIdentChar(body[start]) {
			continue
		}
		rest := strings.TrimSpace(body[start:])
		if !strings.HasPrefix(rest, "=") {
			continue
		}
		rest = strings.TrimSpace(rest[1:])
		if !strings.HasPrefix(rest, `"`) {
			continue
		}
		rest = rest[1:]
		end := strings.Index(rest, `"`)
		if end < 0 {
			return "", false
		}
		return rest[:end], true
	}
}

func isIdentChar(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
