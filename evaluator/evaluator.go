// Copyright the yamss-go authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package evaluator implements the NodeEvaluator variants a Load can be
// driven by: named analytic functions (Builtin), externally-injected
// per-step forces (Interface, the co-simulation extension point), and a
// documented seam for scripted expressions (Lua) that the core
// deliberately does not implement (spec.md §1 Non-goals).
package evaluator

import "github.com/dynasolve/yamss/structure"

// Type discriminates the evaluator variants recognized by the config
// factory (spec.md §6.1 loads.load[*].type).
type Type string

const (
	TypeBuiltin   Type = "builtin"
	TypeInterface Type = "interface"
	TypeLua       Type = "lua"
)

var _ structure.NodeEvaluator = (*Builtin)(nil)
var _ structure.NodeEvaluator = (*Interface)(nil)
var _ structure.NodeEvaluator = (*Lua)(nil)
