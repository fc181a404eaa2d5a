// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unionswitch

import (
	"go/ast"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const coverageSrc = `package p

//union:variants A, *B, C, Num
type U interface{}

type A struct{ N int }

type B struct{}

type C struct{}

type Num int

var other U

func f(u U) {
	switch x := u.(type) {
	case A, *B:
		_ = x
	case nil:
	default:
	}
	switch u {
	case A{N: 1}, &B{}:
	case Num(2), other, (nil):
	case C{}:
	case A{N: 2}:
	}
	switch u.(type) {
	case A, Missing:
	}
	switch {
	}
	switch 1 {
	}
}
`

// switches returns the switch statements of f in source order.
func switches(f *ast.File) []ast.Node {
	var nodes []ast.Node
	ast.Inspect(f, func(n ast.Node) bool {
		switch n.(type) {
		case *ast.SwitchStmt, *ast.TypeSwitchStmt:
			nodes = append(nodes, n)
		}
		return true
	})
	return nodes
}

type patternSummary struct {
	kind patternKind
	typ  string
}

func summarize(tp *testPackage, patterns []pattern) []patternSummary {
	var summary []patternSummary
	for _, p := range patterns {
		s := patternSummary{kind: p.kind}
		if p.typ != nil {
			s.typ = types.TypeString(p.typ, types.RelativeTo(tp.pkg))
		}
		summary = append(summary, s)
	}
	return summary
}

func TestPatterns(t *testing.T) {
	tp := load(t, coverageSrc)
	require.NotEmpty(t, tp.errors) // undefined: Missing

	nodes := switches(tp.file)
	require.Len(t, nodes, 5)

	c, ok := newConstruct(nodes[0])
	require.True(t, ok)
	assert.Equal(t, typeSwitch, c.form)
	assert.True(t, c.bound)
	assert.Equal(t, []patternSummary{
		{boundTypeTest, "A"},
		{boundTypeTest, "*B"},
		{nilTest, ""},
		{defaultCase, ""},
	}, summarize(tp, patternsOf(tp.info, c)))

	c, ok = newConstruct(nodes[1])
	require.True(t, ok)
	assert.Equal(t, valueSwitch, c.form)
	assert.Equal(t, []patternSummary{
		{structTest, "A"},
		{structTest, "*B"},
		{valueTest, "Num"},
		{valueTest, ""},
		{nilTest, ""},
		{structTest, "C"},
		{structTest, "A"},
	}, summarize(tp, patternsOf(tp.info, c)))

	c, ok = newConstruct(nodes[2])
	require.True(t, ok)
	assert.False(t, c.bound)
	assert.Equal(t, []patternSummary{
		{typeTest, "A"},
		{typeTest, ""},
	}, summarize(tp, patternsOf(tp.info, c)))

	_, ok = newConstruct(nodes[3])
	assert.False(t, ok, "switch without tag")

	c, ok = newConstruct(nodes[4])
	require.True(t, ok)
	_, _, ok = lookupUnion(tp.env(), tp.info.TypeOf(c.subject))
	assert.False(t, ok, "switch on a constant")
}

func TestCoverage(t *testing.T) {
	tp := load(t, coverageSrc)
	env := tp.env()
	nodes := switches(tp.file)

	for _, test := range []struct {
		node     ast.Node
		missing  []string
		catchAll bool
		covered  int
	}{
		{nodes[0], []string{"C", "Num"}, true, 2},
		{nodes[1], nil, false, 4},
		{nodes[2], []string{"*B", "C", "Num"}, false, 1},
	} {
		c, ok := newConstruct(test.node)
		require.True(t, ok)
		_, variants, ok := lookupUnion(env, tp.info.TypeOf(c.subject))
		require.True(t, ok)

		cov := coverageOf(tp.info, c)
		assert.Equal(t, test.catchAll, cov.catchAll)
		assert.Equal(t, test.covered, cov.covered.Len())

		var missing []string
		for _, v := range cov.missing(variants) {
			missing = append(missing, types.TypeString(v, types.RelativeTo(tp.pkg)))
		}
		assert.Equal(t, test.missing, missing)
	}
}

func TestPointerVariantsAreDistinct(t *testing.T) {
	tp := load(t, `package p

//union:variants T, *T
type U interface{}

type T struct{}

func f(u U) {
	switch u.(type) {
	case *T:
	}
}
`)
	require.Len(t, tp.errors, 0)

	c, ok := newConstruct(switches(tp.file)[0])
	require.True(t, ok)
	rep := check(tp.env(), c)
	require.NotNil(t, rep)
	assert.Equal(t, "U", rep.union.Obj().Name())
	require.Len(t, rep.missing, 1)
	assert.True(t, types.Identical(tp.typeOf("T"), rep.missing[0]))
}

func TestPatternKindString(t *testing.T) {
	assert.Equal(t, "bound type test", boundTypeTest.String())
	assert.Equal(t, "default", defaultCase.String())
	assert.Equal(t, "patternKind(?)", patternKind(42).String())
}
