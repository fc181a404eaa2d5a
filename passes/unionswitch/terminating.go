// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unionswitch

import (
	"go/ast"
	"go/token"
	"go/types"
)

// isTerminating reports whether s is a terminating statement in the sense
// of the Go language: control never reaches the statement that follows it.
// label is the label of s, or "".
func isTerminating(info *types.Info, s ast.Stmt, label string) bool {
	switch s := s.(type) {
	case *ast.ReturnStmt:
		return true

	case *ast.BranchStmt:
		return s.Tok == token.GOTO

	case *ast.ExprStmt:
		return isPanic(info, s.X)

	case *ast.BlockStmt:
		return len(s.List) > 0 && isTerminating(info, s.List[len(s.List)-1], "")

	case *ast.IfStmt:
		return s.Else != nil &&
			isTerminating(info, s.Body, "") &&
			isTerminating(info, s.Else, "")

	case *ast.LabeledStmt:
		return isTerminating(info, s.Stmt, s.Label.Name)

	case *ast.ForStmt:
		return s.Cond == nil && !hasBreak(s.Body, label)

	case *ast.SwitchStmt:
		return terminatingClauses(info, s.Body, label)

	case *ast.TypeSwitchStmt:
		return terminatingClauses(info, s.Body, label)

	case *ast.SelectStmt:
		for _, stmt := range s.Body.List {
			clause, ok := stmt.(*ast.CommClause)
			if !ok || len(clause.Body) == 0 || !isTerminating(info, clause.Body[len(clause.Body)-1], "") {
				return false
			}
		}
		return !hasBreak(s.Body, label)
	}
	return false
}

// terminatingClauses reports whether the switch with the given body
// terminates: it has a default clause, every clause ends in a terminating
// statement or a fallthrough, and no break leaves it.
func terminatingClauses(info *types.Info, body *ast.BlockStmt, label string) bool {
	hasDefault := false
	for _, stmt := range body.List {
		clause, ok := stmt.(*ast.CaseClause)
		if !ok || len(clause.Body) == 0 {
			return false
		}
		if clause.List == nil {
			hasDefault = true
		}
		last := clause.Body[len(clause.Body)-1]
		if br, ok := last.(*ast.BranchStmt); ok && br.Tok == token.FALLTHROUGH {
			continue
		}
		if !isTerminating(info, last, "") {
			return false
		}
	}
	return hasDefault && !hasBreak(body, label)
}

// hasBreak reports whether body contains a break that leaves the
// statement whose body it is: an unlabeled break outside any nested for,
// switch or select statement, or a break with the given label.
func hasBreak(body ast.Node, label string) bool {
	found := false
	var visit func(root ast.Node, nested bool)
	visit = func(root ast.Node, nested bool) {
		ast.Inspect(root, func(n ast.Node) bool {
			if found {
				return false
			}
			switch n := n.(type) {
			case *ast.FuncLit:
				return false
			case *ast.ForStmt, *ast.RangeStmt, *ast.SwitchStmt, *ast.TypeSwitchStmt, *ast.SelectStmt:
				if n != root && !nested {
					visit(n, true)
					return false
				}
			case *ast.BranchStmt:
				if n.Tok == token.BREAK {
					if n.Label == nil {
						found = !nested
					} else {
						found = label != "" && n.Label.Name == label
					}
				}
			}
			return true
		})
	}
	visit(body, false)
	return found
}

// isPanic reports whether e is a call of the built-in panic function.
func isPanic(info *types.Info, e ast.Expr) bool {
	call, ok := ast.Unparen(e).(*ast.CallExpr)
	if !ok {
		return false
	}
	id, ok := ast.Unparen(call.Fun).(*ast.Ident)
	if !ok {
		return false
	}
	b, ok := info.Uses[id].(*types.Builtin)
	return ok && b.Name() == "panic"
}
