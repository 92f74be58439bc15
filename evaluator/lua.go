// Copyright the yamss-go authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evaluator

import "github.com/dynasolve/yamss/structure"

// Lua documents the scripting-language load type's seam without
// implementing it: spec.md §1 explicitly places user expression scripting
// out of scope, treating it as an opaque NodeEvaluator supplied by an
// external collaborator. A real build wires a Lua (or other embeddable
// script) engine in here; this stub keeps the "lua" load type addressable
// from config so a document naming it fails with a clear ConfigError
// instead of a silent zero-force load.
type Lua struct {
	Source string
}

// NewLua records the script source for error reporting; it performs no
// compilation or execution.
func NewLua(source string) *Lua { return &Lua{Source: source} }

// Evaluate always returns zero: see the Lua type doc. Any caller relying
// on this evaluator for a real value has a configuration bug, which the
// config factory should have already rejected (see config.buildEvaluator).
func (l *Lua) Evaluate(complex128, *structure.Node) [structure.NumDofs]float64 {
	return [structure.NumDofs]float64{}
}
