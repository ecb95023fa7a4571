// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package generator

import (
	"strings"

	"github.com/petar-djukic/tauri-ts/pkg/types"
)

// TSType renders a type expression as TypeScript. The Result error channel
// is gone by construction; rejection carries it at runtime.
func TSType(expr types.TypeExpr, ctx *Context) string {
	switch expr.Kind {
	case types.ExprPrimitive:
		return primitiveTS(expr.Name)
	case types.ExprList:
		return TSType(*expr.Elem, ctx) + "[]"
	case types.ExprOptional:
		return TSType(*expr.Elem, ctx) + " | null"
	case types.ExprFallible:
		return TSType(*expr.Elem, ctx)
	case types.ExprMap:
		return "Record<" + TSType(*expr.Key, ctx) + ", " + TSType(*expr.Value, ctx) + ">"
	case types.ExprTuple:
		if len(expr.Elems) == 0 {
			return "void"
		}
		parts := make([]string, len(expr.Elems))
		for i, e := range expr.Elems {
			parts[i] = TSType(e, ctx)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case types.ExprCustom:
		if ctx.IsDeclaredType(expr.Name) {
			return ctx.TypeName(expr.Name)
		}
		return lastSegment(expr.Name)
	case types.ExprGeneric:
		return expr.Name
	case types.ExprUnit:
		return "void"
	}
	return "unknown"
}

func primitiveTS(name string) string {
	switch name {
	case "String", "str", "char":
		return "string"
	case "i8", "i16", "i32", "i64", "i128", "isize",
		"u8", "u16", "u32", "u64", "u128", "usize",
		"f32", "f64":
		return "number"
	case "bool":
		return "boolean"
	case "DateTime", "NaiveDateTime", "NaiveDate", "NaiveTime",
		"OffsetDateTime", "PrimitiveDateTime", "Date", "Time",
		"Uuid", "Decimal", "BigDecimal", "PathBuf", "Path",
		"IpAddr", "Ipv4Addr", "Ipv6Addr", "Url":
		return "string" // serialized as strings on the wire
	case "Duration":
		return "number"
	case "Value":
		return "unknown"
	case "Bytes":
		return "number[]"
	}
	return "unknown"
}
