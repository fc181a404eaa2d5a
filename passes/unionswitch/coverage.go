// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unionswitch

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/types/typeutil"
)

// A form is the syntactic shape of a switch over a union.
type form int

const (
	typeSwitch  form = iota // switch [x :=] v.(type) { case T: }
	valueSwitch             // switch v { case T{...}: }
)

// A construct is a switch statement whose subject may have a union type.
type construct struct {
	stmt      ast.Stmt // *ast.TypeSwitchStmt or *ast.SwitchStmt
	form      form
	switchPos token.Pos
	subject   ast.Expr // the value switched on
	bound     bool     // the type switch declares a variable
	body      *ast.BlockStmt
}

// newConstruct returns the construct for a switch statement n.
// It reports false for switches without a tag.
func newConstruct(n ast.Node) (*construct, bool) {
	switch n := n.(type) {
	case *ast.TypeSwitchStmt:
		c := &construct{stmt: n, form: typeSwitch, switchPos: n.Switch, body: n.Body}
		switch assign := n.Assign.(type) {
		case *ast.ExprStmt:
			c.subject = typeSwitchGuard(assign.X)
		case *ast.AssignStmt:
			if len(assign.Rhs) == 1 {
				c.subject = typeSwitchGuard(assign.Rhs[0])
				c.bound = true
			}
		}
		return c, c.subject != nil
	case *ast.SwitchStmt:
		if n.Tag == nil {
			return nil, false
		}
		return &construct{stmt: n, form: valueSwitch, switchPos: n.Switch, subject: n.Tag, body: n.Body}, true
	}
	return nil, false
}

// typeSwitchGuard returns x for an expression x.(type).
func typeSwitchGuard(e ast.Expr) ast.Expr {
	if assert, ok := ast.Unparen(e).(*ast.TypeAssertExpr); ok && assert.Type == nil {
		return assert.X
	}
	return nil
}

// A patternKind classifies one case of a switch.
type patternKind int

const (
	typeTest      patternKind = iota // case T: in a type switch
	boundTypeTest                    // case T: in a type switch that declares a variable
	structTest                       // case T{...}: or case &T{...}: in an expression switch
	valueTest                        // any other case value in an expression switch
	nilTest                          // case nil:
	defaultCase                      // default:
)

var patternKindNames = [...]string{
	typeTest:      "type test",
	boundTypeTest: "bound type test",
	structTest:    "struct test",
	valueTest:     "value test",
	nilTest:       "nil test",
	defaultCase:   "default",
}

func (k patternKind) String() string {
	if 0 <= k && int(k) < len(patternKindNames) {
		return patternKindNames[k]
	}
	return "patternKind(?)"
}

// A pattern is one case expression, or a default clause.
type pattern struct {
	kind patternKind
	expr ast.Expr   // nil for defaultCase
	typ  types.Type // the type the pattern covers; nil if none or unresolved
}

// patternsOf returns the patterns of c's clauses in source order.
func patternsOf(info *types.Info, c *construct) []pattern {
	var patterns []pattern
	for _, stmt := range c.body.List {
		clause, ok := stmt.(*ast.CaseClause)
		if !ok {
			continue
		}
		if clause.List == nil {
			patterns = append(patterns, pattern{kind: defaultCase})
			continue
		}
		for _, e := range clause.List {
			patterns = append(patterns, classify(info, c, e))
		}
	}
	return patterns
}

// classify returns the pattern of case expression e of c.
func classify(info *types.Info, c *construct, e ast.Expr) pattern {
	p := pattern{expr: e}
	if isNil(info, e) {
		p.kind = nilTest
		return p
	}
	tv, ok := info.Types[e]
	switch c.form {
	case typeSwitch:
		p.kind = typeTest
		if c.bound {
			p.kind = boundTypeTest
		}
		if ok && tv.IsType() {
			p.typ = types.Unalias(tv.Type)
		}
	case valueSwitch:
		p.kind = valueTest
		if isCompositeLit(e) {
			p.kind = structTest
		}
		// The dynamic type of an interface value is unknown.
		if ok && tv.IsValue() && !types.IsInterface(tv.Type) {
			p.typ = types.Unalias(tv.Type)
		}
	}
	if p.typ == types.Typ[types.Invalid] {
		p.typ = nil
	}
	return p
}

func isNil(info *types.Info, e ast.Expr) bool {
	id, ok := ast.Unparen(e).(*ast.Ident)
	if !ok {
		return false
	}
	_, ok = info.Uses[id].(*types.Nil)
	return ok
}

// isCompositeLit reports whether e is T{...} or &T{...}.
func isCompositeLit(e ast.Expr) bool {
	e = ast.Unparen(e)
	if unary, ok := e.(*ast.UnaryExpr); ok && unary.Op == token.AND {
		e = ast.Unparen(unary.X)
	}
	_, ok := e.(*ast.CompositeLit)
	return ok
}

// coverage is the set of types matched by the cases of a switch.
type coverage struct {
	covered  typeutil.Map // set of types.Type
	catchAll bool         // the switch has a default clause
}

// coverageOf returns the coverage of c's clauses.
// A type covered by several cases is recorded once.
func coverageOf(info *types.Info, c *construct) *coverage {
	cov := new(coverage)
	for _, p := range patternsOf(info, c) {
		switch {
		case p.kind == defaultCase:
			cov.catchAll = true
		case p.typ != nil:
			cov.covered.Set(p.typ, true)
		}
	}
	return cov
}

func (cov *coverage) covers(t types.Type) bool {
	return cov.covered.At(t) != nil
}

// missing returns the variants not covered, in the given order.
func (cov *coverage) missing(variants []types.Type) []types.Type {
	var missing []types.Type
	for _, v := range variants {
		if !cov.covers(v) {
			missing = append(missing, v)
		}
	}
	return missing
}
