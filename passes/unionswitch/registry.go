// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unionswitch

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/types/objectpath"
	"golang.org/x/tools/go/types/typeutil"
)

// defaultDirective is the comment directive that declares a union.
const defaultDirective = "union:variants"

// A unionFact marks an interface type name as a union and records its
// variants in declaration order.
type unionFact struct {
	Variants []variantRef
}

func (*unionFact) AFact() {}

func (f *unionFact) String() string {
	names := make([]string, len(f.Variants))
	for i, v := range f.Variants {
		names[i] = v.String()
	}
	return "union " + strings.Join(names, ", ")
}

// A variantRef identifies a variant type without reference to a
// types.Package, so that it can be serialized with the fact.
type variantRef struct {
	PkgPath string          // empty for predeclared types
	Path    objectpath.Path // path of the type name within PkgPath
	Name    string
	Pointer bool // the variant is *Name
}

func (v variantRef) String() string {
	if v.Pointer {
		return "*" + v.Name
	}
	return v.Name
}

// newVariantRef returns the reference to t, which must be a defined
// type or a pointer to one.
func newVariantRef(t types.Type) (variantRef, bool) {
	var ref variantRef
	t = types.Unalias(t)
	if ptr, ok := t.(*types.Pointer); ok {
		ref.Pointer = true
		t = types.Unalias(ptr.Elem())
	}
	var obj *types.TypeName
	switch t := t.(type) {
	case *types.Named:
		if t.TypeArgs().Len() > 0 {
			return ref, false // instantiations have no object path
		}
		obj = t.Obj()
	case *types.Basic:
		obj, _ = types.Universe.Lookup(t.Name()).(*types.TypeName)
	}
	if obj == nil {
		return ref, false
	}
	ref.Name = obj.Name()
	if obj.Pkg() == nil {
		return ref, true // predeclared
	}
	path, err := objectpath.For(obj)
	if err != nil {
		return ref, false // local type
	}
	ref.PkgPath = obj.Pkg().Path()
	ref.Path = path
	return ref, true
}

// resolve returns the variant type, looking for its package in the
// import graph of roots. It returns nil if the type cannot be found.
func (v variantRef) resolve(roots ...*types.Package) types.Type {
	var obj types.Object
	if v.PkgPath == "" {
		obj = types.Universe.Lookup(v.Name)
	} else {
		pkg := findPackage(v.PkgPath, roots)
		if pkg == nil {
			return nil
		}
		var err error
		if obj, err = objectpath.Object(pkg, v.Path); err != nil {
			return nil
		}
	}
	tname, ok := obj.(*types.TypeName)
	if !ok {
		return nil
	}
	t := tname.Type()
	if v.Pointer {
		t = types.NewPointer(t)
	}
	return t
}

// findPackage searches the import graph of roots, breadth first,
// for the package with the given path.
func findPackage(path string, roots []*types.Package) *types.Package {
	seen := make(map[*types.Package]bool)
	queue := append([]*types.Package(nil), roots...)
	for len(queue) > 0 {
		pkg := queue[0]
		queue = queue[1:]
		if pkg == nil || seen[pkg] {
			continue
		}
		seen[pkg] = true
		if pkg.Path() == path {
			return pkg
		}
		queue = append(queue, pkg.Imports()...)
	}
	return nil
}

// An Env provides the type information of one package that is needed to
// check its switches and to compute fixes for them.
type Env struct {
	Fset *token.FileSet
	Pkg  *types.Package
	Info *types.Info

	// ImportObjectFact retrieves the union fact of an interface type
	// name declared in Pkg or in one of its dependencies.
	ImportObjectFact func(obj types.Object, fact analysis.Fact) bool
}

// NewEnv returns the Env of the package being analyzed by pass.
func NewEnv(pass *analysis.Pass) *Env {
	return &Env{
		Fset:             pass.Fset,
		Pkg:              pass.Pkg,
		Info:             pass.TypesInfo,
		ImportObjectFact: pass.ImportObjectFact,
	}
}

// lookupUnion reports whether t is a union type and, if so, returns
// the named union type and its variants in declaration order.
//
// Variants are decoded from the fact on every call; variants that can no
// longer be found are dropped.
func lookupUnion(env *Env, t types.Type) (*types.Named, []types.Type, bool) {
	if t == nil {
		return nil, nil, false
	}
	named, ok := types.Unalias(t).(*types.Named)
	if !ok || !types.IsInterface(named) {
		return nil, nil, false
	}
	var fact unionFact
	if !env.ImportObjectFact(named.Origin().Obj(), &fact) {
		return nil, nil, false
	}
	var (
		variants []types.Type
		seen     typeutil.Map
	)
	for _, ref := range fact.Variants {
		v := ref.resolve(env.Pkg, named.Obj().Pkg())
		if v == nil || seen.At(v) != nil {
			continue
		}
		seen.Set(v, true)
		variants = append(variants, v)
	}
	return named, variants, len(variants) > 0
}

// findUnions returns the union facts of the package-level interface
// declarations in files that carry one of the directives.
func findUnions(fset *token.FileSet, pkg *types.Package, info *types.Info, files []*ast.File, directives []string) map[*types.TypeName]*unionFact {
	unions := make(map[*types.TypeName]*unionFact)
	for _, file := range files {
		for _, decl := range file.Decls {
			decl, ok := decl.(*ast.GenDecl)
			if !ok || decl.Tok != token.TYPE {
				continue
			}
			for _, spec := range decl.Specs {
				spec := spec.(*ast.TypeSpec)
				if spec.Assign.IsValid() {
					continue // alias
				}
				args, ok := directiveArgs(spec.Doc, directives)
				if !ok && !decl.Lparen.IsValid() {
					args, ok = directiveArgs(decl.Doc, directives)
				}
				if !ok {
					continue
				}
				obj, ok := info.Defs[spec.Name].(*types.TypeName)
				if !ok || !types.IsInterface(obj.Type()) {
					continue
				}
				if refs := resolveVariants(fset, pkg, spec.Pos(), args); len(refs) > 0 {
					unions[obj] = &unionFact{Variants: refs}
				}
			}
		}
	}
	return unions
}

// exportUnionFacts exports a unionFact for each union declared in the
// package.
func exportUnionFacts(pass *analysis.Pass, directives []string) {
	for obj, fact := range findUnions(pass.Fset, pass.Pkg, pass.TypesInfo, pass.Files, directives) {
		pass.ExportObjectFact(obj, fact)
	}
}

// resolveVariants evaluates each entry of a directive's type list at
// pos and returns references to the distinct variant types.
// Entries that are not type expressions, do not type-check, or do not
// denote a defined type or a pointer to one are dropped.
func resolveVariants(fset *token.FileSet, pkg *types.Package, pos token.Pos, args string) []variantRef {
	var (
		refs []variantRef
		seen typeutil.Map
	)
	for _, src := range splitTypeList(args) {
		tv, err := types.Eval(fset, pkg, pos, src)
		if err != nil || !tv.IsType() {
			continue
		}
		t := types.Unalias(tv.Type)
		if seen.At(t) != nil {
			continue
		}
		ref, ok := newVariantRef(t)
		if !ok {
			continue
		}
		seen.Set(t, true)
		refs = append(refs, ref)
	}
	return refs
}

// directiveArgs returns the arguments of the first comment in doc of
// the form "//name args", for any of the given directive names.
func directiveArgs(doc *ast.CommentGroup, directives []string) (string, bool) {
	if doc == nil {
		return "", false
	}
	for _, c := range doc.List {
		text, ok := strings.CutPrefix(c.Text, "//")
		if !ok {
			continue // block comment
		}
		for _, name := range directives {
			rest, ok := strings.CutPrefix(text, name)
			if !ok {
				continue
			}
			if rest == "" {
				return "", true
			}
			if rest[0] == ' ' || rest[0] == '\t' {
				return strings.TrimSpace(rest), true
			}
		}
	}
	return "", false
}

// splitTypeList splits a comma-separated list of type expressions.
// Commas inside brackets, parentheses or braces do not separate entries.
func splitTypeList(list string) []string {
	var (
		entries []string
		depth   int
		start   int
	)
	add := func(entry string) {
		if entry = strings.TrimSpace(entry); entry != "" {
			entries = append(entries, entry)
		}
	}
	for i := 0; i < len(list); i++ {
		switch list[i] {
		case '[', '(', '{':
			depth++
		case ']', ')', '}':
			depth--
		case ',':
			if depth == 0 {
				add(list[start:i])
				start = i + 1
			}
		}
	}
	add(list[start:])
	return entries
}
