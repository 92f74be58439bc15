// Copyright the yamss-go authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evaluator

import (
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/dynasolve/yamss/structure"
	"github.com/dynasolve/yamss/yerr"
)

// Builtin drives one DoF's time history per named analytic function, the
// way the teacher's inp/func.go backs a simulation's boundary conditions
// with gosl/fun.TimeSpace functions ("cte", "rmp", ...) instead of a
// scripting engine. Six independent time-functions (one per physical DoF)
// make up a single physical force pattern, the same at every node.
type Builtin struct {
	dofFuncs [structure.NumDofs]fun.TimeSpace
}

// NewBuiltin returns a Builtin evaluator. kinds[d] and prms[d] name and
// parameterize the function driving DoF d ("zero"/"" leaves that DoF at
// zero for all time).
func NewBuiltin(kinds [structure.NumDofs]string, prms [structure.NumDofs]dbf.Params) (*Builtin, error) {
	b := &Builtin{}
	for d := 0; d < structure.NumDofs; d++ {
		if kinds[d] == "" || kinds[d] == "zero" || kinds[d] == "none" {
			b.dofFuncs[d] = &fun.Zero
			continue
		}
		f, err := fun.New(kinds[d], prms[d])
		if err != nil {
			return nil, yerr.Wrap(yerr.ConfigError, "evaluator.builtin", err)
		}
		b.dofFuncs[d] = f
	}
	return b, nil
}

// NewConstant is a convenience constructor for the common case of a
// constant 6-vector force applied for all time.
func NewConstant(force [structure.NumDofs]float64) *Builtin {
	b := &Builtin{}
	for d := 0; d < structure.NumDofs; d++ {
		if force[d] == 0 {
			b.dofFuncs[d] = &fun.Zero
			continue
		}
		cte, err := fun.New("cte", dbf.Params{&dbf.P{N: "c", V: force[d]}})
		if err != nil {
			// "cte" is always available; a failure here means gosl/fun's
			// registry changed shape underneath us.
			panic(err)
		}
		b.dofFuncs[d] = cte
	}
	return b
}

// Evaluate returns the 6-vector force at the real part of t (builtin
// functions are defined over real time; an imaginary clock component, as
// used by steady-state/harmonic runs, does not change the sampled value).
func (b *Builtin) Evaluate(t complex128, n *structure.Node) [structure.NumDofs]float64 {
	tr := real(t)
	var out [structure.NumDofs]float64
	for d := 0; d < structure.NumDofs; d++ {
		if b.dofFuncs[d] == nil {
			continue
		}
		out[d] = b.dofFuncs[d].F(tr, nil)
	}
	return out
}
