// Copyright the yamss-go authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evaluator

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/dynasolve/yamss/structure"
)

func TestNewConstantEvaluatesSameForceAtAnyTime(tst *testing.T) {
	chk.PrintTitle("evaluator Builtin NewConstant")
	b := NewConstant([structure.NumDofs]float64{1, 2, 3, 0, 0, 0})
	n := structure.NewNode(1, 1)
	f0 := b.Evaluate(0, n)
	f1 := b.Evaluate(complex(5, 0), n)
	chk.Scalar(tst, "fx@t0", 1e-15, f0[0], 1)
	chk.Scalar(tst, "fy@t0", 1e-15, f0[1], 2)
	chk.Scalar(tst, "fx@t5", 1e-15, f1[0], 1)
}

func TestInterfaceDefaultsToZeroForUnsetNode(tst *testing.T) {
	chk.PrintTitle("evaluator Interface default zero")
	i := NewInterface()
	n := structure.NewNode(7, 1)
	f := i.Evaluate(0, n)
	chk.Scalar(tst, "fx", 1e-15, f[0], 0)
}

func TestInterfaceReturnsMostRecentlySetForce(tst *testing.T) {
	chk.PrintTitle("evaluator Interface Set/Evaluate")
	i := NewInterface()
	n := structure.NewNode(7, 1)
	i.Set(7, [structure.NumDofs]float64{9, 0, 0, 0, 0, 0})
	f := i.Evaluate(0, n)
	chk.Scalar(tst, "fx", 1e-15, f[0], 9)
}

func TestLuaAlwaysEvaluatesZero(tst *testing.T) {
	chk.PrintTitle("evaluator Lua stub")
	l := NewLua("return 1")
	n := structure.NewNode(1, 1)
	f := l.Evaluate(0, n)
	for d := 0; d < structure.NumDofs; d++ {
		chk.Scalar(tst, "f", 1e-15, f[d], 0)
	}
}
