// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package parser extracts per-file syntactic facts from Rust sources using
// tree-sitter: use declarations, serializable struct/enum declarations, type
// aliases, and command signatures. Resolution happens elsewhere; this package
// records paths exactly as written.
package parser

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/rust"

	"github.com/petar-djukic/tauri-ts/pkg/types"
)

// Parser turns Rust source text into FileFacts.
type Parser struct {
	lang *sitter.Language
}

// New creates a parser for Rust sources.
func New() *Parser {
	return &Parser{lang: rust.GetLanguage()}
}

// ParseFile parses one source file. relPath is the crate-relative path used
// as the owning file of every extracted fact. Struct and enum declarations
// are kept only when they derive Serialize or Deserialize.
func (p *Parser) ParseFile(ctx context.Context, relPath string, src []byte) (*types.FileFacts, error) {
	return p.parse(ctx, relPath, src, true)
}

// ParseExpanded parses macro-expanded output (cargo expand). Derive
// attributes are gone after expansion, so every struct and enum is kept.
func (p *Parser) ParseExpanded(ctx context.Context, relPath string, src []byte) (*types.FileFacts, error) {
	return p.parse(ctx, relPath, src, false)
}

func (p *Parser) parse(ctx context.Context, relPath string, src []byte, requireSerde bool) (*types.FileFacts, error) {
	root, err := sitter.ParseCtx(ctx, src, p.lang)
	if err != nil || root == nil {
		return nil, fmt.Errorf("parse %s: %w", relPath, err)
	}

	w := &itemWalker{src: src, requireSerde: requireSerde}
	facts := &types.FileFacts{Path: relPath}
	w.collect(root, facts)
	return facts, nil
}

// itemWalker visits item lists (source files, inline mod bodies, impl
// bodies), pairing each item with the attribute_item siblings preceding it.
type itemWalker struct {
	src          []byte
	requireSerde bool
}

func (w *itemWalker) collect(list *sitter.Node, facts *types.FileFacts) {
	var attrs []string
	for i := 0; i < int(list.NamedChildCount()); i++ {
		child := list.NamedChild(i)
		switch child.Type() {
		case "attribute_item":
			attrs = append(attrs, child.Content(w.src))
			continue
		case "line_comment", "block_comment", "inner_attribute_item":
			continue
		case "use_declaration":
			facts.Imports = append(facts.Imports, w.useImports(child)...)
		case "struct_item":
			if !w.requireSerde || derivesSerde(attrs) {
				facts.Structs = append(facts.Structs, w.structDecl(child, facts.Path))
			}
		case "enum_item":
			if !w.requireSerde || derivesSerde(attrs) {
				facts.Enums = append(facts.Enums, w.enumDecl(child, facts.Path))
			}
		case "type_item":
			if alias, ok := w.aliasDecl(child, facts.Path); ok {
				facts.Aliases = append(facts.Aliases, alias)
			}
		case "function_item":
			if isCommandAttr(attrs) {
				if cmd, ok := w.command(child, facts.Path, renameAll(attrs)); ok {
					facts.Commands = append(facts.Commands, cmd)
				}
			}
		case "mod_item", "impl_item":
			if body := child.ChildByFieldName("body"); body != nil {
				w.collect(body, facts)
			}
		}
		attrs = attrs[:0]
	}
}

func (w *itemWalker) structDecl(node *sitter.Node, path string) types.StructDecl {
	decl := types.StructDecl{SourceFile: path}
	if name := node.ChildByFieldName("name"); name != nil {
		decl.Name = name.Content(w.src)
	}
	decl.Generics = w.typeParams(node.ChildByFieldName("type_parameters"))
	generics := nameSet(decl.Generics)

	body := node.ChildByFieldName("body")
	if body == nil {
		return decl // unit struct
	}
	switch body.Type() {
	case "field_declaration_list":
		decl.Fields = w.namedFields(body, generics)
	case "ordered_field_declaration_list":
		decl.Fields = w.orderedFields(body, generics)
	}
	return decl
}

func (w *itemWalker) enumDecl(node *sitter.Node, path string) types.EnumDecl {
	decl := types.EnumDecl{SourceFile: path}
	if name := node.ChildByFieldName("name"); name != nil {
		decl.Name = name.Content(w.src)
	}
	decl.Generics = w.typeParams(node.ChildByFieldName("type_parameters"))
	generics := nameSet(decl.Generics)

	body := node.ChildByFieldName("body")
	if body == nil {
		return decl
	}

	var attrs []string
	for i := 0; i < int(body.NamedChildCount()); i++ {
		child := body.NamedChild(i)
		switch child.Type() {
		case "attribute_item":
			attrs = append(attrs, child.Content(w.src))
			continue
		case "enum_variant":
			decl.Variants = append(decl.Variants, w.enumVariant(child, attrs, generics))
		}
		attrs = attrs[:0]
	}
	return decl
}

func (w *itemWalker) enumVariant(node *sitter.Node, attrs []string, generics map[string]bool) types.EnumVariant {
	v := types.EnumVariant{Kind: types.VariantUnit}
	if name := node.ChildByFieldName("name"); name != nil {
		v.Name = name.Content(w.src)
	}
	if renamed, ok := serdeRename(attrs); ok {
		v.Name = renamed
	}

	body := node.ChildByFieldName("body")
	if body == nil {
		return v
	}
	switch body.Type() {
	case "ordered_field_declaration_list":
		v.Kind = types.VariantTuple
		for _, f := range w.orderedFields(body, generics) {
			v.Tuple = append(v.Tuple, f.Type)
		}
	case "field_declaration_list":
		v.Kind = types.VariantStruct
		v.Fields = w.namedFields(body, generics)
	}
	return v
}

// namedFields walks a field_declaration_list, honoring per-field serde
// renames.
func (w *itemWalker) namedFields(body *sitter.Node, generics map[string]bool) []types.StructField {
	var fields []types.StructField
	var attrs []string
	for i := 0; i < int(body.NamedChildCount()); i++ {
		child := body.NamedChild(i)
		switch child.Type() {
		case "attribute_item":
			attrs = append(attrs, child.Content(w.src))
			continue
		case "field_declaration":
			f := types.StructField{Type: types.Unrecognized("missing type")}
			if name := child.ChildByFieldName("name"); name != nil {
				f.Name = name.Content(w.src)
			}
			if renamed, ok := serdeRename(attrs); ok {
				f.Name = renamed
			}
			if ty := child.ChildByFieldName("type"); ty != nil {
				f.Type = w.typeExpr(ty, generics)
			}
			fields = append(fields, f)
		}
		attrs = attrs[:0]
	}
	return fields
}

// orderedFields walks a tuple body, naming positions field0..fieldN.
func (w *itemWalker) orderedFields(body *sitter.Node, generics map[string]bool) []types.StructField {
	var fields []types.StructField
	for i := 0; i < int(body.ChildCount()); i++ {
		if body.FieldNameForChild(i) != "type" {
			continue
		}
		fields = append(fields, types.StructField{
			Name: fmt.Sprintf("field%d", len(fields)),
			Type: w.typeExpr(body.Child(i), generics),
		})
	}
	return fields
}

// aliasDecl records `type Name = Base;` with the base flattened to its
// outermost head name, which is what alias-chain resolution follows.
func (w *itemWalker) aliasDecl(node *sitter.Node, path string) (types.AliasDecl, bool) {
	name := node.ChildByFieldName("name")
	target := node.ChildByFieldName("type")
	if name == nil || target == nil {
		return types.AliasDecl{}, false
	}
	return types.AliasDecl{
		Name:       name.Content(w.src),
		Base:       w.headName(target),
		SourceFile: path,
	}, true
}

// headName reduces a type node to the name an alias chain continues with.
func (w *itemWalker) headName(node *sitter.Node) string {
	switch node.Type() {
	case "generic_type":
		if head := node.ChildByFieldName("type"); head != nil {
			return w.headName(head)
		}
	case "reference_type":
		if inner := node.ChildByFieldName("type"); inner != nil {
			return w.headName(inner)
		}
	case "scoped_type_identifier":
		return scopedPath(node, w.src)
	}
	return node.Content(w.src)
}

func (w *itemWalker) typeParams(node *sitter.Node) []string {
	if node == nil {
		return nil
	}
	var params []string
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "type_identifier":
			params = append(params, child.Content(w.src))
		case "constrained_type_parameter":
			if left := child.ChildByFieldName("left"); left != nil && left.Type() == "type_identifier" {
				params = append(params, left.Content(w.src))
			}
		}
	}
	return params
}

func nameSet(names []string) map[string]bool {
	if len(names) == 0 {
		return nil
	}
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
