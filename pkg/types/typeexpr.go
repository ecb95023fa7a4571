// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

// TypeExprKind discriminates the TypeExpr variant.
type TypeExprKind int

const (
	ExprPrimitive    TypeExprKind = iota // String, i32, bool, Uuid, ...
	ExprList                             // Vec<T>, slices, arrays
	ExprOptional                         // Option<T>
	ExprFallible                         // Result<T, E>; only T is kept
	ExprMap                              // HashMap<K, V>, BTreeMap<K, V>
	ExprTuple                            // (A, B, ...)
	ExprCustom                           // Reference to a custom type, possibly path-qualified
	ExprGeneric                          // Type parameter of the declaring item (T, U, ...)
	ExprUnit                             // ()
	ExprUnrecognized                     // Anything the extractor cannot classify
)

// TypeExpr is a recursive type expression extracted from a signature or a
// field. Exactly the children relevant to each kind are populated.
type TypeExpr struct {
	Kind  TypeExprKind
	Name  string     // Primitive name, custom reference path, generic param, or description
	Elem  *TypeExpr  // List, Optional, Fallible element
	Key   *TypeExpr  // Map key
	Value *TypeExpr  // Map value
	Elems []TypeExpr // Tuple elements
}

// Primitive returns a primitive type expression.
func Primitive(name string) TypeExpr {
	return TypeExpr{Kind: ExprPrimitive, Name: name}
}

// List returns a list expression wrapping elem.
func List(elem TypeExpr) TypeExpr {
	return TypeExpr{Kind: ExprList, Elem: &elem}
}

// Optional returns an optional expression wrapping elem.
func Optional(elem TypeExpr) TypeExpr {
	return TypeExpr{Kind: ExprOptional, Elem: &elem}
}

// Fallible returns a fallible expression keeping only the success payload.
func Fallible(ok TypeExpr) TypeExpr {
	return TypeExpr{Kind: ExprFallible, Elem: &ok}
}

// MapOf returns a map expression.
func MapOf(key, value TypeExpr) TypeExpr {
	return TypeExpr{Kind: ExprMap, Key: &key, Value: &value}
}

// TupleOf returns a tuple expression.
func TupleOf(elems ...TypeExpr) TypeExpr {
	return TypeExpr{Kind: ExprTuple, Elems: elems}
}

// CustomRef returns a reference to a custom type. name may be a bare name
// ("User") or a "::"-joined path ("shared::Config").
func CustomRef(name string) TypeExpr {
	return TypeExpr{Kind: ExprCustom, Name: name}
}

// GenericParam returns a type-parameter expression.
func GenericParam(name string) TypeExpr {
	return TypeExpr{Kind: ExprGeneric, Name: name}
}

// Unit returns the unit expression.
func Unit() TypeExpr {
	return TypeExpr{Kind: ExprUnit}
}

// Unrecognized returns a fallback expression carrying a description.
func Unrecognized(desc string) TypeExpr {
	return TypeExpr{Kind: ExprUnrecognized, Name: desc}
}

// CustomRefs appends the custom reference names reachable inside e, in
// source order, to out and returns it. Wrapper kinds are transparent.
func (e TypeExpr) CustomRefs(out []string) []string {
	switch e.Kind {
	case ExprCustom:
		out = append(out, e.Name)
	case ExprList, ExprOptional, ExprFallible:
		if e.Elem != nil {
			out = e.Elem.CustomRefs(out)
		}
	case ExprMap:
		if e.Key != nil {
			out = e.Key.CustomRefs(out)
		}
		if e.Value != nil {
			out = e.Value.CustomRefs(out)
		}
	case ExprTuple:
		for _, el := range e.Elems {
			out = el.CustomRefs(out)
		}
	}
	return out
}
