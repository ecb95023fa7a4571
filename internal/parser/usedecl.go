// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package parser

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/petar-djukic/tauri-ts/pkg/types"
)

// useImports flattens one use declaration into raw imports. Nested groups
// expand to one import per leaf; paths are recorded exactly as written, with
// leading crate/self/super segments preserved for later canonicalization.
func (w *itemWalker) useImports(node *sitter.Node) []types.RawImport {
	arg := node.ChildByFieldName("argument")
	if arg == nil {
		return nil
	}
	var out []types.RawImport
	w.walkUseTree(arg, nil, &out)
	return out
}

func (w *itemWalker) walkUseTree(node *sitter.Node, prefix []string, out *[]types.RawImport) {
	switch node.Type() {
	case "identifier", "crate", "self", "super":
		path := appendPath(prefix, node.Content(w.src))
		*out = append(*out, types.RawImport{LocalName: path[len(path)-1], Path: path})

	case "scoped_identifier":
		path := appendPath(prefix, w.pathSegments(node)...)
		*out = append(*out, types.RawImport{LocalName: path[len(path)-1], Path: path})

	case "use_as_clause":
		pathNode := node.ChildByFieldName("path")
		alias := node.ChildByFieldName("alias")
		if pathNode == nil || alias == nil {
			return
		}
		path := appendPath(prefix, w.pathSegments(pathNode)...)
		*out = append(*out, types.RawImport{LocalName: alias.Content(w.src), Path: path})

	case "use_list":
		for i := 0; i < int(node.NamedChildCount()); i++ {
			w.walkUseTree(node.NamedChild(i), prefix, out)
		}

	case "scoped_use_list":
		pathNode := node.ChildByFieldName("path")
		list := node.ChildByFieldName("list")
		if list == nil {
			return
		}
		next := prefix
		if pathNode != nil {
			next = appendPath(prefix, w.pathSegments(pathNode)...)
		}
		w.walkUseTree(list, next, out)

	case "use_wildcard":
		path := appendPath(prefix)
		if node.NamedChildCount() > 0 {
			path = appendPath(prefix, w.pathSegments(node.NamedChild(0))...)
		}
		*out = append(*out, types.RawImport{Path: path, IsWildcard: true})
	}
}

// pathSegments flattens a (possibly scoped) path node into its segments.
func (w *itemWalker) pathSegments(node *sitter.Node) []string {
	if node.Type() == "scoped_identifier" {
		var segs []string
		if p := node.ChildByFieldName("path"); p != nil {
			segs = w.pathSegments(p)
		}
		if name := node.ChildByFieldName("name"); name != nil {
			segs = append(segs, name.Content(w.src))
		}
		return segs
	}
	return []string{node.Content(w.src)}
}

// appendPath copies prefix before appending so sibling group entries never
// share backing arrays.
func appendPath(prefix []string, segs ...string) []string {
	path := make([]string, 0, len(prefix)+len(segs))
	path = append(path, prefix...)
	return append(path, segs...)
}
