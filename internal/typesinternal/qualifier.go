// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package typesinternal

import (
	"go/ast"
	"go/types"
)

// A FileQualifier writes types as they must be spelled in one file of a
// package, using the names under which that file imports other packages.
type FileQualifier struct {
	pkg     *types.Package
	imports map[*types.Package]string
}

// NewFileQualifier returns the qualifier for file f of package pkg.
func NewFileQualifier(f *ast.File, pkg *types.Package, info *types.Info) *FileQualifier {
	imports := make(map[*types.Package]string)
	for _, imp := range f.Imports {
		pkgname := info.PkgNameOf(imp)
		if pkgname == nil || pkgname.Name() == "_" {
			continue
		}
		imports[pkgname.Imported()] = pkgname.Name()
	}
	return &FileQualifier{pkg: pkg, imports: imports}
}

// qualifier returns a types.Qualifier that clears *ok when it meets a
// package the file does not import.
func (q *FileQualifier) qualifier(ok *bool) types.Qualifier {
	return func(p *types.Package) string {
		if p == q.pkg {
			return ""
		}
		name, found := q.imports[p]
		if !found {
			*ok = false
			return p.Name()
		}
		if name == "." {
			return ""
		}
		return name
	}
}

// Accessible reports whether t, or the type t points to, is a defined
// type that the file can refer to by name.
func (q *FileQualifier) Accessible(t types.Type) bool {
	t = types.Unalias(t)
	if ptr, ok := t.(*types.Pointer); ok {
		t = types.Unalias(ptr.Elem())
	}
	named, ok := t.(*types.Named)
	if !ok {
		return true
	}
	obj := named.Obj()
	return obj.Pkg() == nil || obj.Pkg() == q.pkg || obj.Exported()
}

// TypeString returns t written for the file.
// It reports false if t mentions a package the file does not import
// or an unexported type of another package.
func (q *FileQualifier) TypeString(t types.Type) (string, bool) {
	ok := q.Accessible(t)
	s := types.TypeString(t, q.qualifier(&ok))
	return s, ok
}

// ZeroString is like [ZeroString] for the file.
func (q *FileQualifier) ZeroString(t types.Type) (string, bool) {
	ok := q.Accessible(t)
	s, writable := ZeroString(t, q.qualifier(&ok))
	return s, ok && writable
}

// LiteralString is like [LiteralString] for the file.
func (q *FileQualifier) LiteralString(t types.Type) (string, bool) {
	ok := q.Accessible(t)
	s, writable := LiteralString(t, q.qualifier(&ok))
	return s, ok && writable
}
