// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package parser

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/petar-djukic/tauri-ts/pkg/types"
)

// tauriInjected lists parameter types the runtime injects on the Rust side.
// They never cross the IPC boundary, so the generated wrappers drop them.
var tauriInjected = map[string]bool{
	"State":         true,
	"Window":        true,
	"AppHandle":     true,
	"Webview":       true,
	"WebviewWindow": true,
}

// command extracts the signature of an annotated function. Injected
// parameters and self receivers are skipped; a unit return becomes no
// return.
func (w *itemWalker) command(node *sitter.Node, path, renameAll string) (types.CommandSignature, bool) {
	name := node.ChildByFieldName("name")
	if name == nil {
		return types.CommandSignature{}, false
	}
	sig := types.CommandSignature{
		Name:       name.Content(w.src),
		SourceFile: path,
		RenameAll:  renameAll,
	}

	if params := node.ChildByFieldName("parameters"); params != nil {
		for i := 0; i < int(params.NamedChildCount()); i++ {
			child := params.NamedChild(i)
			if child.Type() != "parameter" {
				continue // self_parameter, attributes
			}
			arg, ok := w.commandArg(child)
			if !ok {
				continue
			}
			sig.Args = append(sig.Args, arg)
		}
	}

	if ret := node.ChildByFieldName("return_type"); ret != nil {
		expr := w.typeExpr(ret, nil)
		if expr.Kind != types.ExprUnit {
			sig.Return = &expr
		}
	}
	return sig, true
}

func (w *itemWalker) commandArg(node *sitter.Node) (types.CommandArg, bool) {
	pattern := node.ChildByFieldName("pattern")
	ty := node.ChildByFieldName("type")
	if pattern == nil || ty == nil || pattern.Type() != "identifier" {
		return types.CommandArg{}, false
	}
	if tauriInjected[typeHeadName(ty, w.src)] {
		return types.CommandArg{}, false
	}
	return types.CommandArg{
		Name: pattern.Content(w.src),
		Type: w.typeExpr(ty, nil),
	}, true
}

// typeHeadName returns the last path segment of the head of a type node,
// looking through references and generic arguments.
func typeHeadName(node *sitter.Node, src []byte) string {
	switch node.Type() {
	case "reference_type", "pointer_type":
		if inner := node.ChildByFieldName("type"); inner != nil {
			return typeHeadName(inner, src)
		}
	case "generic_type":
		if head := node.ChildByFieldName("type"); head != nil {
			return typeHeadName(head, src)
		}
	case "scoped_type_identifier":
		if name := node.ChildByFieldName("name"); name != nil {
			return name.Content(src)
		}
	}
	return node.Content(src)
}
