// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/tauri-ts/pkg/types"
)

func command(name, sourceFile string, ret types.TypeExpr, args ...types.CommandArg) types.CommandSignature {
	return types.CommandSignature{
		Name:       name,
		Args:       args,
		Return:     &ret,
		SourceFile: sourceFile,
	}
}

func TestCollect_ImportedReturnType(t *testing.T) {
	// File X declares User; file Y imports it and declares the command.
	userDecl := types.StructDecl{
		Name:       "User",
		SourceFile: "x.rs",
		Fields: []types.StructField{
			{Name: "id", Type: types.Primitive("i32")},
			{Name: "name", Type: types.Primitive("String")},
		},
	}
	x := &types.FileFacts{Path: "x.rs", Structs: []types.StructDecl{userDecl}}
	y := imports(&types.FileFacts{Path: "y.rs"}, "User", "crate", "x", "User")

	idx := buildIndex(t, x, y)
	c := NewCollector(New(idx))

	sigs := []types.CommandSignature{
		command("get_user", "y.rs", types.CustomRef("User"),
			types.CommandArg{Name: "id", Type: types.Primitive("i32")}),
	}
	result := c.Collect(sigs, BuildFieldIndex([]types.StructDecl{userDecl}, nil))

	assert.Equal(t, map[string]string{"User": "x.rs"}, result.Resolved)
	assert.Empty(t, result.Conflicts)
}

func TestCollect_AmbiguousSeedDropsSilently(t *testing.T) {
	// X and Y both declare User; Z is a sibling of neither, so the bare
	// reference is ambiguous and contributes nothing.
	idx := buildIndex(t,
		file("x/types.rs", "User"),
		file("y/types.rs", "User"),
		file("z.rs"),
	)
	c := NewCollector(New(idx))

	sigs := []types.CommandSignature{command("who", "z.rs", types.CustomRef("User"))}
	result := c.Collect(sigs, FieldIndex{})

	assert.NotContains(t, result.Resolved, "User")
	assert.Empty(t, result.Conflicts)
}

func TestCollect_ClosurePullsFieldTypes(t *testing.T) {
	// X declares Item{tag: Tag} and Tag; Y only imports Item. The closure
	// resolves Tag in Item's own file, which Y never imports.
	itemDecl := types.StructDecl{
		Name:       "Item",
		SourceFile: "x.rs",
		Fields:     []types.StructField{{Name: "tag", Type: types.CustomRef("Tag")}},
	}
	tagDecl := types.StructDecl{Name: "Tag", SourceFile: "x.rs"}
	x := &types.FileFacts{Path: "x.rs", Structs: []types.StructDecl{itemDecl, tagDecl}}
	y := imports(&types.FileFacts{Path: "y.rs"}, "Item", "crate", "x", "Item")

	idx := buildIndex(t, x, y)
	c := NewCollector(New(idx))

	sigs := []types.CommandSignature{command("get_item", "y.rs", types.CustomRef("Item"))}
	result := c.Collect(sigs, BuildFieldIndex([]types.StructDecl{itemDecl, tagDecl}, nil))

	assert.Equal(t, "x.rs", result.Resolved["Item"])
	assert.Equal(t, "x.rs", result.Resolved["Tag"])
	assert.Empty(t, result.Conflicts)
}

func TestCollect_ConflictOnDivergentResolutions(t *testing.T) {
	// A command in b.rs returns shared::Config (file f1); a command in
	// c.rs resolves its own Config to f2.
	f1 := file("shared.rs", "Config")
	f2 := file("other/config.rs", "Config")
	b := imports(&types.FileFacts{Path: "b.rs"}, "shared", "crate", "shared")
	c := imports(&types.FileFacts{Path: "c.rs"}, "Config", "crate", "other", "config", "Config")

	idx := buildIndex(t, f1, f2, b, c)
	collector := NewCollector(New(idx))

	sigs := []types.CommandSignature{
		command("load", "b.rs", types.CustomRef("shared::Config")),
		command("load_other", "c.rs", types.CustomRef("Config")),
	}
	result := collector.Collect(sigs, FieldIndex{})

	require.Contains(t, result.Conflicts, "Config")
	assert.Equal(t, []string{"shared.rs", "other/config.rs"}, result.Conflicts["Config"])
}

func TestCollect_ConflictCandidatesDeduplicate(t *testing.T) {
	f1 := file("shared.rs", "Config")
	f2 := file("other/config.rs", "Config")
	b := imports(&types.FileFacts{Path: "b.rs"}, "shared", "crate", "shared")
	c := imports(&types.FileFacts{Path: "c.rs"}, "Config", "crate", "other", "config", "Config")

	idx := buildIndex(t, f1, f2, b, c)
	collector := NewCollector(New(idx))

	sigs := []types.CommandSignature{
		command("load", "b.rs", types.CustomRef("shared::Config")),
		command("load_other", "c.rs", types.CustomRef("Config")),
		command("load_again", "c.rs", types.CustomRef("Config")),
	}
	result := collector.Collect(sigs, FieldIndex{})

	assert.Equal(t, []string{"shared.rs", "other/config.rs"}, result.Conflicts["Config"])
}

func TestCollect_WrapperTypesAreTransparent(t *testing.T) {
	userDecl := types.StructDecl{Name: "User", SourceFile: "types.rs"}
	pageDecl := types.StructDecl{Name: "Page", SourceFile: "types.rs"}
	facts := &types.FileFacts{Path: "types.rs", Structs: []types.StructDecl{userDecl, pageDecl}}

	idx := buildIndex(t, facts)
	c := NewCollector(New(idx))

	ret := types.Fallible(types.List(types.CustomRef("User")))
	sigs := []types.CommandSignature{
		command("list", "types.rs", ret,
			types.CommandArg{Name: "page", Type: types.Optional(types.CustomRef("Page"))},
			types.CommandArg{Name: "filters", Type: types.MapOf(types.Primitive("String"), types.TupleOf(types.Primitive("bool"), types.CustomRef("User")))},
		),
	}
	result := c.Collect(sigs, BuildFieldIndex([]types.StructDecl{userDecl, pageDecl}, nil))

	assert.Equal(t, "types.rs", result.Resolved["User"])
	assert.Equal(t, "types.rs", result.Resolved["Page"])
}

func TestCollect_EnumVariantPayloadsExpand(t *testing.T) {
	detailDecl := types.StructDecl{Name: "Detail", SourceFile: "types.rs"}
	eventDecl := types.EnumDecl{
		Name:       "Event",
		SourceFile: "types.rs",
		Variants: []types.EnumVariant{
			{Name: "Ping", Kind: types.VariantUnit},
			{Name: "Payload", Kind: types.VariantTuple, Tuple: []types.TypeExpr{types.CustomRef("Detail")}},
		},
	}
	facts := &types.FileFacts{
		Path:    "types.rs",
		Structs: []types.StructDecl{detailDecl},
		Enums:   []types.EnumDecl{eventDecl},
	}

	idx := buildIndex(t, facts)
	c := NewCollector(New(idx))

	sigs := []types.CommandSignature{command("next_event", "types.rs", types.CustomRef("Event"))}
	result := c.Collect(sigs, BuildFieldIndex([]types.StructDecl{detailDecl}, []types.EnumDecl{eventDecl}))

	assert.Equal(t, "types.rs", result.Resolved["Event"])
	assert.Equal(t, "types.rs", result.Resolved["Detail"])
}

func TestCollect_Idempotent(t *testing.T) {
	itemDecl := types.StructDecl{
		Name:       "Item",
		SourceFile: "x.rs",
		Fields:     []types.StructField{{Name: "tag", Type: types.CustomRef("Tag")}},
	}
	tagDecl := types.StructDecl{Name: "Tag", SourceFile: "x.rs"}
	x := &types.FileFacts{Path: "x.rs", Structs: []types.StructDecl{itemDecl, tagDecl}}
	y := imports(&types.FileFacts{Path: "y.rs"}, "Item", "crate", "x", "Item")

	idx := buildIndex(t, x, y)
	c := NewCollector(New(idx))
	fieldIdx := BuildFieldIndex([]types.StructDecl{itemDecl, tagDecl}, nil)
	sigs := []types.CommandSignature{command("get_item", "y.rs", types.CustomRef("Item"))}

	first := c.Collect(sigs, fieldIdx)
	second := c.Collect(sigs, fieldIdx)

	assert.Equal(t, first.Resolved, second.Resolved)
	assert.Equal(t, first.Conflicts, second.Conflicts)
}

func TestCollect_NoReturnNoArgs(t *testing.T) {
	idx := buildIndex(t, file("commands.rs"))
	c := NewCollector(New(idx))

	sigs := []types.CommandSignature{{Name: "ping", SourceFile: "commands.rs"}}
	result := c.Collect(sigs, FieldIndex{})

	assert.Empty(t, result.Resolved)
	assert.Empty(t, result.Conflicts)
}

func TestCollect_SameNameTwoFilesExpandSeparately(t *testing.T) {
	// Two files define User and two commands reach each through explicit
	// multi-segment paths. The first hit wins and expands its fields; the
	// second distinct file records a conflict and is not expanded.
	v1User := types.StructDecl{
		Name: "User", SourceFile: "v1/types.rs",
		Fields: []types.StructField{{Name: "meta", Type: types.CustomRef("Meta")}},
	}
	meta := types.StructDecl{Name: "Meta", SourceFile: "v1/types.rs"}
	v2User := types.StructDecl{
		Name: "User", SourceFile: "v2/types.rs",
		Fields: []types.StructField{{Name: "extra", Type: types.CustomRef("Extra")}},
	}
	extra := types.StructDecl{Name: "Extra", SourceFile: "v2/types.rs"}

	idx := buildIndex(t,
		&types.FileFacts{Path: "v1/types.rs", Structs: []types.StructDecl{v1User, meta}},
		&types.FileFacts{Path: "v2/types.rs", Structs: []types.StructDecl{v2User, extra}},
		file("commands.rs"),
	)
	c := NewCollector(New(idx))

	sigs := []types.CommandSignature{
		command("get_v1", "commands.rs", types.CustomRef("crate::v1::types::User")),
		command("get_v2", "commands.rs", types.CustomRef("crate::v2::types::User")),
	}
	result := c.Collect(sigs, BuildFieldIndex([]types.StructDecl{v1User, meta, v2User, extra}, nil))

	require.Contains(t, result.Conflicts, "User")
	assert.Equal(t, []string{"v1/types.rs", "v2/types.rs"}, result.Conflicts["User"])
	// The first-seen definition still expanded its fields.
	assert.Equal(t, "v1/types.rs", result.Resolved["Meta"])
}
