// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/petar-djukic/tauri-ts/pkg/types"
)

func TestToCamelCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"get_user", "getUser"},
		{"get_user_by_id", "getUserById"},
		{"hello", "hello"},
		{"HELLO", "hELLO"},
		{"get__user", "getUser"},
		{"_private", "private"},
		{"__private_field", "privateField"},
		{"trailing_", "trailing"},
		{"a", "a"},
		{"get_user_1", "getUser1"},
		{"getUser", "getUser"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToCamelCase(tt.in), tt.in)
	}
}

func TestToSnakeCase(t *testing.T) {
	assert.Equal(t, "pod_info", ToSnakeCase("PodInfo"))
	assert.Equal(t, "user", ToSnakeCase("User"))
	assert.Equal(t, "get_user", ToSnakeCase("getUser"))
}

func TestTSType(t *testing.T) {
	ctx := NewContext(Options{}, []string{"User"})

	tests := []struct {
		name string
		expr types.TypeExpr
		want string
	}{
		{"string", types.Primitive("String"), "string"},
		{"number", types.Primitive("i32"), "number"},
		{"boolean", types.Primitive("bool"), "boolean"},
		{"datetime", types.Primitive("DateTime"), "string"},
		{"uuid", types.Primitive("Uuid"), "string"},
		{"duration", types.Primitive("Duration"), "number"},
		{"json value", types.Primitive("Value"), "unknown"},
		{"bytes", types.Primitive("Bytes"), "number[]"},
		{"list", types.List(types.CustomRef("User")), "User[]"},
		{"optional", types.Optional(types.Primitive("String")), "string | null"},
		{"fallible unwraps", types.Fallible(types.CustomRef("User")), "User"},
		{"map", types.MapOf(types.Primitive("String"), types.Primitive("i64")), "Record<string, number>"},
		{"tuple", types.TupleOf(types.Primitive("bool"), types.CustomRef("User")), "[boolean, User]"},
		{"unit", types.Unit(), "void"},
		{"generic param", types.GenericParam("T"), "T"},
		{"scoped declared", types.CustomRef("crate::models::User"), "User"},
		{"undeclared passes through", types.CustomRef("External"), "External"},
		{"unrecognized", types.Unrecognized("dyn Trait"), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TSType(tt.expr, ctx))
		})
	}
}

func TestGenerateTypes_Interface(t *testing.T) {
	ctx := NewContext(Options{}, []string{"User"})
	out := GenerateTypes([]types.StructDecl{{
		Name: "User",
		Fields: []types.StructField{
			{Name: "id", Type: types.Primitive("i32")},
			{Name: "display_name", Type: types.Primitive("String")},
			{Name: "tags", Type: types.List(types.Primitive("String"))},
		},
	}}, nil, nil, ctx)

	assert.Contains(t, out, "export interface User {")
	assert.Contains(t, out, "  id: number;")
	assert.Contains(t, out, "  displayName: string;")
	assert.Contains(t, out, "  tags: string[];")
	assert.Contains(t, out, "automatically generated")
}

func TestGenerateTypes_PreserveFieldNames(t *testing.T) {
	ctx := NewContext(Options{PreserveFieldNames: true}, []string{"User"})
	out := GenerateTypes([]types.StructDecl{{
		Name:   "User",
		Fields: []types.StructField{{Name: "display_name", Type: types.Primitive("String")}},
	}}, nil, nil, ctx)

	assert.Contains(t, out, "  display_name: string;")
	assert.NotContains(t, out, "displayName")
}

func TestGenerateTypes_NamePrefixSuffix(t *testing.T) {
	ctx := NewContext(Options{TypePrefix: "I", TypeSuffix: "Dto"}, []string{"User", "Item"})
	out := GenerateTypes([]types.StructDecl{{
		Name:   "User",
		Fields: []types.StructField{{Name: "item", Type: types.CustomRef("Item")}},
	}}, nil, nil, ctx)

	assert.Contains(t, out, "export interface IUserDto {")
	assert.Contains(t, out, "  item: IItemDto;")
}

func TestGenerateTypes_GenericInterface(t *testing.T) {
	ctx := NewContext(Options{}, []string{"Page"})
	out := GenerateTypes([]types.StructDecl{{
		Name:     "Page",
		Generics: []string{"T"},
		Fields: []types.StructField{
			{Name: "items", Type: types.List(types.GenericParam("T"))},
			{Name: "total", Type: types.Primitive("u64")},
		},
	}}, nil, nil, ctx)

	assert.Contains(t, out, "export interface Page<T> {")
	assert.Contains(t, out, "  items: T[];")
}

func TestGenerateTypes_UnitEnumIsStringUnion(t *testing.T) {
	ctx := NewContext(Options{}, []string{"Mode"})
	out := GenerateTypes(nil, []types.EnumDecl{{
		Name: "Mode",
		Variants: []types.EnumVariant{
			{Name: "On", Kind: types.VariantUnit},
			{Name: "Off", Kind: types.VariantUnit},
		},
	}}, nil, ctx)

	assert.Contains(t, out, `export type Mode = "On" | "Off";`)
}

func TestGenerateTypes_DataEnumIsTaggedUnion(t *testing.T) {
	ctx := NewContext(Options{}, []string{"Event", "Detail"})
	out := GenerateTypes(nil, []types.EnumDecl{{
		Name: "Event",
		Variants: []types.EnumVariant{
			{Name: "Ping", Kind: types.VariantUnit},
			{Name: "Message", Kind: types.VariantTuple, Tuple: []types.TypeExpr{types.Primitive("String")}},
			{Name: "Pair", Kind: types.VariantTuple, Tuple: []types.TypeExpr{types.Primitive("i32"), types.Primitive("i32")}},
			{Name: "Moved", Kind: types.VariantStruct, Fields: []types.StructField{
				{Name: "x", Type: types.Primitive("f64")},
				{Name: "detail", Type: types.CustomRef("Detail")},
			}},
		},
	}}, nil, ctx)

	assert.Contains(t, out, `| "Ping"`)
	assert.Contains(t, out, "| { Message: string }")
	assert.Contains(t, out, "| { Pair: [number, number] }")
	assert.Contains(t, out, "| { Moved: { x: number; detail: Detail } }")
}

func TestGenerateTypes_Aliases(t *testing.T) {
	ctx := NewContext(Options{}, []string{"User", "UserId", "UserRef"})
	out := GenerateTypes(nil, nil, []AliasDef{
		{Name: "UserId", Base: "u64"},
		{Name: "UserRef", Base: "User"},
	}, ctx)

	assert.Contains(t, out, "export type UserId = number;")
	assert.Contains(t, out, "export type UserRef = User;")
}

func TestGenerateCommands_Wrapper(t *testing.T) {
	ctx := NewContext(Options{}, []string{"User"})
	ret := types.Fallible(types.List(types.CustomRef("User")))
	out := GenerateCommands([]types.CommandSignature{{
		Name: "list_users",
		Args: []types.CommandArg{
			{Name: "page_size", Type: types.Primitive("u32")},
		},
		Return: &ret,
	}}, ctx, "./types")

	assert.Contains(t, out, `import { invoke } from "@tauri-apps/api/core";`)
	assert.Contains(t, out, `import type { User } from "./types";`)
	assert.Contains(t, out, "export async function listUsers(pageSize: number): Promise<User[]> {")
	assert.Contains(t, out, `return await invoke("list_users", { pageSize });`)
}

func TestGenerateCommands_NoArgsNoReturn(t *testing.T) {
	ctx := NewContext(Options{}, nil)
	out := GenerateCommands([]types.CommandSignature{{Name: "ping"}}, ctx, "./types")

	assert.Contains(t, out, "export async function ping(): Promise<void> {")
	assert.Contains(t, out, `return await invoke("ping");`)
	assert.NotContains(t, out, "import type")
}

func TestGenerateCommands_SnakeCasePayloadKeys(t *testing.T) {
	ctx := NewContext(Options{}, nil)
	out := GenerateCommands([]types.CommandSignature{{
		Name:      "save_user",
		RenameAll: "snake_case",
		Args:      []types.CommandArg{{Name: "user_id", Type: types.Primitive("i32")}},
	}}, ctx, "./types")

	assert.Contains(t, out, "export async function saveUser(userId: number)")
	assert.Contains(t, out, `invoke("save_user", { user_id: userId })`)
}

func TestGenerateCommands_FunctionNaming(t *testing.T) {
	ctx := NewContext(Options{FunctionPrefix: "api", FunctionSuffix: "Cmd"}, nil)
	out := GenerateCommands([]types.CommandSignature{{Name: "get_user"}}, ctx, "./types")
	assert.Contains(t, out, "export async function apigetUserCmd(")
}

func TestGenerateCommands_OptionalReturn(t *testing.T) {
	ctx := NewContext(Options{}, []string{"User"})
	ret := types.Fallible(types.Optional(types.CustomRef("User")))
	out := GenerateCommands([]types.CommandSignature{{
		Name:   "find_user",
		Return: &ret,
	}}, ctx, "./types")

	assert.Contains(t, out, "Promise<User | null>")
}

func TestRelativeImportPath(t *testing.T) {
	tests := []struct {
		commands, types, want string
	}{
		{"src/generated/commands.ts", "src/generated/types.ts", "./types"},
		{"src/api/commands.ts", "src/models/types.ts", "../models/types"},
		{"commands.ts", "types.ts", "./types"},
		{"src/commands.ts", "src/gen/types.ts", "./gen/types"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RelativeImportPath(tt.commands, tt.types), tt.commands)
	}
}
