// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The unionswitch command applies the unionswitch analysis to the
// specified packages of Go source code, reporting switches over union
// interfaces that miss variants.
//
// Run with:
//
//	$ go run ./cmd/unionswitch -- packages...
//
// and add -fix to insert the missing cases.
package main

import (
	"github.com/atomsproject/unionswitch/passes/unionswitch"
	"golang.org/x/tools/go/analysis/singlechecker"
)

func main() { singlechecker.Main(unionswitch.Analyzer) }
