// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unionswitch

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"go/types"
	"strconv"
	"strings"

	"github.com/atomsproject/unionswitch/internal/typesinternal"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/astutil"
)

// SuggestedFix computes the fix for the switch statement at start in
// file. It recomputes the union and the coverage of the switch from env,
// so it may be called long after the diagnostic was reported.
//
// It returns nil if the switch no longer misses any variant.
func SuggestedFix(env *Env, file *ast.File, start, end token.Pos) (*analysis.SuggestedFix, error) {
	path, _ := astutil.PathEnclosingInterval(file, start, end)
	for i, n := range path {
		switch n.(type) {
		case *ast.SwitchStmt, *ast.TypeSwitchStmt:
			c, ok := newConstruct(n)
			if !ok {
				return nil, errors.New("switch statement has no tag")
			}
			return suggestedFix(env, file, c, reversed(path[i:]))
		}
	}
	return nil, errors.New("no switch statement found")
}

// reversed returns a copy of path, innermost node last.
func reversed(path []ast.Node) []ast.Node {
	stack := make([]ast.Node, len(path))
	for i, n := range path {
		stack[len(path)-1-i] = n
	}
	return stack
}

// suggestedFix returns the fix that adds a case for each variant that c
// misses. stack holds the ancestors of c, ending with c itself.
func suggestedFix(env *Env, file *ast.File, c *construct, stack []ast.Node) (*analysis.SuggestedFix, error) {
	_, variants, ok := lookupUnion(env, env.Info.TypeOf(c.subject))
	if !ok {
		return nil, nil
	}
	cov := coverageOf(env.Info, c)
	missing := cov.missing(variants)
	if len(missing) == 0 {
		return nil, nil
	}

	qual := typesinternal.NewFileQualifier(file, env.Pkg, env.Info)
	clauses, err := synthesize(missing, c.form, exitResults(env.Info, c, stack), qual)
	if err != nil {
		return nil, err
	}
	updated, at := splice(c.body.List, clauses, cov.catchAll)

	// Insert before the clause that follows the new ones, if any.
	pos := c.body.Rbrace
	if next := at + len(clauses); next < len(updated) {
		prev := c.body.Lbrace
		if at > 0 {
			prev = c.body.List[at-1].End()
		}
		pos = insertPos(env.Fset, file, prev, updated[next])
	}
	text, err := render(clauses)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(missing))
	for i, v := range missing {
		names[i], _ = qual.TypeString(v)
	}
	return &analysis.SuggestedFix{
		Message: fmt.Sprintf("Add cases for %s", strings.Join(names, ", ")),
		TextEdits: []analysis.TextEdit{{
			Pos:     pos,
			End:     pos,
			NewText: text,
		}},
	}, nil
}

// synthesize returns one clause per missing variant, in order.
//
// In a type switch the clause tests the variant type; in an expression
// switch it compares with a literal of the variant. If results is non-nil
// the clause returns from the function, otherwise its body is empty.
func synthesize(missing []types.Type, form form, results *types.Tuple, qual *typesinternal.FileQualifier) ([]*ast.CaseClause, error) {
	clauses := make([]*ast.CaseClause, 0, len(missing))
	for _, v := range missing {
		var (
			src string
			ok  bool
		)
		switch form {
		case typeSwitch:
			src, ok = qual.TypeString(v)
		case valueSwitch:
			src, ok = qual.LiteralString(v)
		}
		if !ok {
			return nil, fmt.Errorf("cannot write a case for %s in this file", v)
		}
		label, err := parser.ParseExpr(src)
		if err != nil {
			return nil, fmt.Errorf("case for %s: %w", v, err)
		}
		clause := &ast.CaseClause{List: []ast.Expr{label}}
		if results != nil {
			clause.Body = []ast.Stmt{placeholder(results, v, qual)}
		}
		clauses = append(clauses, clause)
	}
	return clauses, nil
}

// placeholder returns the statement that ends a clause added for variant
// in a function with the given results: a return of their zero values,
// a bare return if the results are named, or a panic when some zero value
// cannot be written in the file.
func placeholder(results *types.Tuple, variant types.Type, qual *typesinternal.FileQualifier) ast.Stmt {
	ret := &ast.ReturnStmt{}
	for i := 0; i < results.Len(); i++ {
		zero, ok := qual.ZeroString(results.At(i).Type())
		if !ok {
			ret = nil
			break
		}
		e, err := parser.ParseExpr(zero)
		if err != nil {
			ret = nil
			break
		}
		ret.Results = append(ret.Results, e)
	}
	if ret != nil {
		return ret
	}
	if results.Len() > 0 && results.At(0).Name() != "" {
		return &ast.ReturnStmt{}
	}
	name, _ := qual.TypeString(variant)
	msg := "unhandled " + name
	return &ast.ExprStmt{X: &ast.CallExpr{
		Fun:  ast.NewIdent("panic"),
		Args: []ast.Expr{&ast.BasicLit{Kind: token.STRING, Value: strconv.Quote(msg)}},
	}}
}

// exitResults returns the results of the function enclosing c if each
// clause added to c must return from it: c yields a value, or c is a
// terminating statement. Otherwise it returns nil. stack holds the
// ancestors of c, ending with c itself.
func exitResults(info *types.Info, c *construct, stack []ast.Node) *types.Tuple {
	sig := signatureOf(info, enclosingFunc(stack))
	if sig == nil || sig.Results().Len() == 0 || len(c.body.List) == 0 {
		return nil
	}
	if yields(c, sig) || isTerminating(info, c.stmt, labelOf(stack)) {
		return sig.Results()
	}
	return nil
}

// yields reports whether every clause of c ends by returning the single
// result of sig.
func yields(c *construct, sig *types.Signature) bool {
	if sig.Results().Len() != 1 {
		return false
	}
	for _, stmt := range c.body.List {
		clause, ok := stmt.(*ast.CaseClause)
		if !ok || len(clause.Body) == 0 {
			return false
		}
		ret, ok := clause.Body[len(clause.Body)-1].(*ast.ReturnStmt)
		if !ok || len(ret.Results) != 1 {
			return false
		}
	}
	return true
}

func signatureOf(info *types.Info, fn ast.Node) *types.Signature {
	switch fn := fn.(type) {
	case *ast.FuncDecl:
		if obj, ok := info.Defs[fn.Name].(*types.Func); ok {
			sig, _ := obj.Type().(*types.Signature)
			return sig
		}
	case *ast.FuncLit:
		sig, _ := info.TypeOf(fn).(*types.Signature)
		return sig
	}
	return nil
}

// labelOf returns the label of the last node on stack, or "".
func labelOf(stack []ast.Node) string {
	if len(stack) < 2 {
		return ""
	}
	if l, ok := stack[len(stack)-2].(*ast.LabeledStmt); ok {
		return l.Label.Name
	}
	return ""
}

// insertPos returns where clauses are inserted ahead of next, whose
// predecessor ends at prev: the start of the line of the comments
// directly above next, if they stand on lines of their own at the
// indentation of next, or next itself.
func insertPos(fset *token.FileSet, file *ast.File, prev token.Pos, next ast.Stmt) token.Pos {
	pos := next.Pos()
	if fset == nil {
		return pos
	}
	tf := fset.File(pos)
	if tf == nil {
		return pos
	}
	at := tf.Position(pos)
	above := at.Line
	for i := len(file.Comments) - 1; i >= 0; i-- {
		cg := file.Comments[i]
		if cg.Pos() >= pos {
			continue
		}
		if cg.Pos() <= prev {
			break
		}
		start := tf.Position(cg.Pos())
		if tf.Line(cg.End()) != above-1 || start.Line <= tf.Line(prev) || start.Column != at.Column {
			break
		}
		above = start.Line
	}
	if above == at.Line {
		return pos
	}
	return tf.LineStart(above)
}

// splice returns clauses with added inserted before the last clause if
// it is a default clause, or appended otherwise, and the index of the
// first added clause. The order of clauses and of added is preserved.
// hasDefault reports whether clauses contain a default clause at all.
func splice(clauses []ast.Stmt, added []*ast.CaseClause, hasDefault bool) ([]ast.Stmt, int) {
	at := len(clauses)
	if hasDefault && at > 0 && isDefault(clauses[at-1]) {
		at--
	}
	updated := make([]ast.Stmt, 0, len(clauses)+len(added))
	updated = append(updated, clauses[:at]...)
	for _, clause := range added {
		updated = append(updated, clause)
	}
	return append(updated, clauses[at:]...), at
}

func isDefault(stmt ast.Stmt) bool {
	clause, ok := stmt.(*ast.CaseClause)
	return ok && clause.List == nil
}

// render formats clauses, one per line.
func render(clauses []*ast.CaseClause) ([]byte, error) {
	var buf bytes.Buffer
	fset := token.NewFileSet()
	for _, clause := range clauses {
		if err := format.Node(&buf, fset, clause); err != nil {
			return nil, err
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
