// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package unionswitch defines an Analyzer that reports switches over
// union interfaces that do not handle every variant.
//
// # Analyzer unionswitch
//
// unionswitch: check that switches over union interfaces are exhaustive
//
// A union is an interface type whose declaration carries a
// //union:variants directive listing the only types that may implement
// it, in a fixed order:
//
//	//union:variants Circle, *Square, geo.Polygon
//	type Shape interface{ isShape() }
//
// Each entry is a Go type expression resolved in the scope of the file
// that declares the interface. Entries that do not denote a defined type,
// or a pointer to one, are ignored, as are duplicates.
//
// The analyzer reports each type switch whose guard has a union type,
// and each expression switch whose tag has a union type, when some
// variant is not matched by any case:
//
//	switch s.(type) {
//	case Circle:
//	case *Square:
//	}
//
// reports "switch on union Shape is missing cases for geo.Polygon".
//
// In a type switch a case covers the type it names. In an expression
// switch a case covers the static type of its value, so both
// Square{Side: 1} and Square{Side: 2} cover Square whatever the field
// values. A default clause covers no variant.
//
// The suggested fix adds one case per missing variant, in declaration
// order, before a trailing default clause or at the end of the switch.
// A type switch gets "case T:"; an expression switch gets a case whose
// value is a literal of the variant, such as "case Circle{}:". Such a
// case is a placeholder to be edited: it compares the value with that one
// literal, so it is not a type test, and "case &Square{}:" never matches
// at all, since a new pointer equals no other.
//
// When every existing case returns a single value, or when the switch is
// a terminating statement, each new case returns the zero values of the
// function's results. A new case above a trailing default clause goes
// above the comment lines that precede the default.
//
// Switches in generated files are not reported unless -generated is set.
// The -directive flag adds directive names besides union:variants, and
// -config names a YAML file with the keys directives, generated and
// exclude (package path patterns that are not reported).
package unionswitch
