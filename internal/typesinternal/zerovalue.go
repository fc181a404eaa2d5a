// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package typesinternal

import (
	"go/types"
)

// ZeroString returns the Go source of the zero value of type t,
// writing package-qualified names with qf.
//
// It reports false if t has no zero value that can be written as an
// expression, such as a tuple or a type set.
func ZeroString(t types.Type, qf types.Qualifier) (string, bool) {
	switch t := t.(type) {
	case *types.Basic:
		switch {
		case t.Info()&types.IsBoolean != 0:
			return "false", true
		case t.Info()&types.IsNumeric != 0:
			return "0", true
		case t.Info()&types.IsString != 0:
			return `""`, true
		case t.Kind() == types.UnsafePointer, t.Kind() == types.UntypedNil:
			return "nil", true
		}
		return "", false // invalid
	case *types.Pointer, *types.Slice, *types.Interface, *types.Chan, *types.Map, *types.Signature:
		return "nil", true
	case *types.Named, *types.Alias:
		switch under := t.Underlying().(type) {
		case *types.Struct, *types.Array:
			return types.TypeString(t, qf) + "{}", true
		default:
			return ZeroString(under, qf)
		}
	case *types.Array, *types.Struct:
		return types.TypeString(t, qf) + "{}", true
	case *types.TypeParam:
		return "*new(" + types.TypeString(t, qf) + ")", true
	}
	return "", false // tuples, type sets
}

// LiteralString returns the Go source of a comparable literal of type t
// that evaluates to a non-nil value of exactly that type when converted to
// an interface: T{} for a struct or array type, &T{} for a pointer to a
// struct type, and T(zero) for a defined or predeclared basic type.
//
// It reports false for any other type.
func LiteralString(t types.Type, qf types.Qualifier) (string, bool) {
	if ptr, ok := types.Unalias(t).(*types.Pointer); ok {
		if _, ok := ptr.Elem().Underlying().(*types.Struct); ok {
			return "&" + types.TypeString(ptr.Elem(), qf) + "{}", true
		}
		return "", false
	}
	if !types.Comparable(t) {
		return "", false
	}
	switch under := t.Underlying().(type) {
	case *types.Struct, *types.Array:
		return types.TypeString(t, qf) + "{}", true
	case *types.Basic:
		zero, ok := ZeroString(under, qf)
		if !ok || zero == "nil" {
			return "", false
		}
		return types.TypeString(t, qf) + "(" + zero + ")", true
	}
	return "", false
}
