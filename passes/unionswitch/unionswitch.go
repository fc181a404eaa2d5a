// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unionswitch

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const Doc = `check that switches over union interfaces are exhaustive

The unionswitch analysis reports type switches and expression switches on
values of a union interface, declared by a //union:variants directive, that
do not have a case for every variant, and suggests adding the missing cases.`

// Category is the category of the analyzer's diagnostics.
const Category = "unionswitch"

var Analyzer = &analysis.Analyzer{
	Name:      "unionswitch",
	Doc:       Doc,
	URL:       "https://pkg.go.dev/github.com/atomsproject/unionswitch/passes/unionswitch",
	Requires:  []*analysis.Analyzer{inspect.Analyzer},
	FactTypes: []analysis.Fact{new(unionFact)},
	Run:       run,
}

func run(pass *analysis.Pass) (any, error) {
	cfg, err := settings()
	if err != nil {
		return nil, err
	}

	// Facts are exported even for excluded packages,
	// since their importers may switch on the unions.
	exportUnionFacts(pass, cfg.Directives)
	if cfg.excluded(pass.Pkg.Path()) {
		return nil, nil
	}

	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	for _, diag := range Diagnose(NewEnv(pass), inspect, cfg.Generated) {
		pass.Report(diag)
	}
	return nil, nil
}

// Diagnose returns a diagnostic for each switch over a union that does
// not cover every variant. Each diagnostic carries the fix computed by
// [SuggestedFix], when one can be written.
//
// Switches in generated files are skipped unless generated is set.
func Diagnose(env *Env, inspect *inspector.Inspector, generated bool) []analysis.Diagnostic {
	var (
		diags []analysis.Diagnostic
		file  *ast.File
	)
	nodeFilter := []ast.Node{
		(*ast.File)(nil),
		(*ast.SwitchStmt)(nil),
		(*ast.TypeSwitchStmt)(nil),
	}
	inspect.WithStack(nodeFilter, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return true
		}
		if f, ok := n.(*ast.File); ok {
			file = f
			return generated || !ast.IsGenerated(f)
		}
		c, ok := newConstruct(n)
		if !ok {
			return true
		}
		rep := check(env, c)
		if rep == nil {
			return true
		}
		diag := rep.diagnostic(env)
		if fix, err := suggestedFix(env, file, c, stack); err == nil && fix != nil {
			diag.SuggestedFixes = []analysis.SuggestedFix{*fix}
		}
		diags = append(diags, diag)
		return true
	})
	return diags
}

// A report describes a switch over a union that misses variants.
type report struct {
	c       *construct
	union   *types.Named
	missing []types.Type // in declaration order
}

// check returns the report for c, or nil if c does not switch on a
// union or covers all of its variants.
func check(env *Env, c *construct) *report {
	union, variants, ok := lookupUnion(env, env.Info.TypeOf(c.subject))
	if !ok {
		return nil
	}
	missing := coverageOf(env.Info, c).missing(variants)
	if len(missing) == 0 {
		return nil
	}
	return &report{c: c, union: union, missing: missing}
}

// diagnostic returns the diagnostic of r, anchored on the switch keyword.
func (r *report) diagnostic(env *Env) analysis.Diagnostic {
	qual := func(p *types.Package) string {
		if p == env.Pkg {
			return ""
		}
		return p.Name()
	}
	return analysis.Diagnostic{
		Pos:      r.c.switchPos,
		End:      r.c.switchPos + token.Pos(len(token.SWITCH.String())),
		Category: Category,
		Message: fmt.Sprintf("switch on union %s is missing cases for %s",
			types.TypeString(r.union, qual), typeList(r.missing, qual)),
	}
}

// typeList returns the comma-separated names of types.
func typeList(ts []types.Type, qual types.Qualifier) string {
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = types.TypeString(t, qual)
	}
	return strings.Join(names, ", ")
}

// enclosingFunc returns the innermost function declaration or literal
// on the stack, or nil.
func enclosingFunc(stack []ast.Node) ast.Node {
	for i := len(stack) - 1; i >= 0; i-- {
		switch n := stack[i].(type) {
		case *ast.FuncDecl, *ast.FuncLit:
			return n
		}
	}
	return nil
}
