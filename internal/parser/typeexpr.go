// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package parser

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/petar-djukic/tauri-ts/pkg/types"
)

// wellKnownExternal lists types from common crates with a fixed JSON shape
// (chrono, time, uuid, decimal crates, std paths and addresses, serde_json
// Value, bytes). They map like primitives and never enter the usage closure.
var wellKnownExternal = map[string]bool{
	"DateTime": true, "NaiveDateTime": true, "NaiveDate": true, "NaiveTime": true,
	"OffsetDateTime": true, "PrimitiveDateTime": true, "Date": true, "Time": true,
	"Uuid":    true,
	"Decimal": true, "BigDecimal": true,
	"PathBuf": true, "Path": true,
	"Url":    true,
	"IpAddr": true, "Ipv4Addr": true, "Ipv6Addr": true,
	"Duration": true,
	"Value":    true,
	"Bytes":    true,
}

// smart pointers with no serialized representation of their own
var transparentWrappers = map[string]bool{
	"Box": true, "Arc": true, "Rc": true,
}

// typeExpr classifies a type node. generics holds the type parameters of
// the declaring item, so T inside Page<T> stays a parameter instead of
// becoming a custom reference.
func (w *itemWalker) typeExpr(node *sitter.Node, generics map[string]bool) types.TypeExpr {
	switch node.Type() {
	case "primitive_type":
		name := node.Content(w.src)
		if name == "str" || name == "char" {
			return types.Primitive("String")
		}
		return types.Primitive(name)

	case "type_identifier":
		return w.classifyName(node.Content(w.src), node.Content(w.src), nil, generics)

	case "scoped_type_identifier":
		last := node.Content(w.src)
		if name := node.ChildByFieldName("name"); name != nil {
			last = name.Content(w.src)
		}
		return w.classifyName(last, scopedPath(node, w.src), nil, generics)

	case "generic_type":
		head := node.ChildByFieldName("type")
		if head == nil {
			return types.Unrecognized(node.Content(w.src))
		}
		args := w.typeArguments(node.ChildByFieldName("type_arguments"), generics)
		last := typeHeadName(head, w.src)
		full := head.Content(w.src)
		if head.Type() == "scoped_type_identifier" {
			full = scopedPath(head, w.src)
		}
		return w.classifyName(last, full, args, generics)

	case "reference_type":
		if inner := node.ChildByFieldName("type"); inner != nil {
			return w.typeExpr(inner, generics)
		}
		return types.Unrecognized(node.Content(w.src))

	case "tuple_type":
		var elems []types.TypeExpr
		for i := 0; i < int(node.NamedChildCount()); i++ {
			elems = append(elems, w.typeExpr(node.NamedChild(i), generics))
		}
		return types.TupleOf(elems...)

	case "unit_type":
		return types.Unit()

	case "array_type":
		if elem := node.ChildByFieldName("element"); elem != nil {
			return types.List(w.typeExpr(elem, generics))
		}
		return types.Unrecognized(node.Content(w.src))
	}

	return types.Unrecognized(node.Content(w.src))
}

// classifyName resolves a head name plus its type arguments into an
// expression. last is the final path segment; full keeps any leading path
// segments for custom references.
func (w *itemWalker) classifyName(last, full string, args []types.TypeExpr, generics map[string]bool) types.TypeExpr {
	if generics[last] && last == full {
		return types.GenericParam(last)
	}

	switch last {
	case "String", "str", "char":
		return types.Primitive("String")
	case "i8", "i16", "i32", "i64", "i128", "isize",
		"u8", "u16", "u32", "u64", "u128", "usize",
		"f32", "f64", "bool":
		return types.Primitive(last)
	case "Vec", "VecDeque", "HashSet", "BTreeSet":
		if len(args) < 1 {
			return types.Unrecognized(last + "<?>")
		}
		return types.List(args[0])
	case "Option":
		if len(args) < 1 {
			return types.Unrecognized("Option<?>")
		}
		return types.Optional(args[0])
	case "Result":
		if len(args) < 1 {
			return types.Unrecognized("Result<?>")
		}
		return types.Fallible(args[0])
	case "HashMap", "BTreeMap":
		if len(args) < 2 {
			return types.Unrecognized(last + "<?, ?>")
		}
		return types.MapOf(args[0], args[1])
	}

	if wellKnownExternal[last] {
		return types.Primitive(last)
	}
	if transparentWrappers[last] {
		if len(args) < 1 {
			return types.Unrecognized(last + "<?>")
		}
		return args[0]
	}
	return types.CustomRef(full)
}

// typeArguments collects the type nodes of a type_arguments list, skipping
// lifetimes and const arguments.
func (w *itemWalker) typeArguments(node *sitter.Node, generics map[string]bool) []types.TypeExpr {
	if node == nil {
		return nil
	}
	var args []types.TypeExpr
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "lifetime", "type_binding", "const_block", "block":
			continue
		}
		args = append(args, w.typeExpr(child, generics))
	}
	return args
}

// scopedPath renders a scoped type path as a "::"-joined string without
// whitespace surprises.
func scopedPath(node *sitter.Node, src []byte) string {
	name := ""
	if n := node.ChildByFieldName("name"); n != nil {
		name = n.Content(src)
	}
	p := node.ChildByFieldName("path")
	if p == nil {
		return name
	}
	prefix := p.Content(src)
	if p.Type() == "scoped_type_identifier" || p.Type() == "scoped_identifier" {
		prefix = scopedPath(p, src)
	}
	return prefix + "::" + name
}
