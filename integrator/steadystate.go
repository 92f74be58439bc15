// Copyright the yamss-go authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrator

import (
	"gonum.org/v1/gonum/mat"

	"github.com/dynasolve/yamss/eom"
	"github.com/dynasolve/yamss/structure"
	"github.com/dynasolve/yamss/yerr"
)

// SteadyState solves K·q = f with f from loads at the current time, and
// sets q̇ = q̈ = 0 (spec.md §4.3.3). Stencil 1: there is no prior state to
// read.
type SteadyState struct{}

func NewSteadyState() *SteadyState { return &SteadyState{} }

func (o *SteadyState) StencilSize() int { return 1 }

func (o *SteadyState) Step(e *eom.EOM, s *structure.Structure) error {
	cur := e.Current()

	if err := s.ApplyLoads(cur.Time); err != nil {
		return err
	}
	f := s.GeneralizedForce()

	m := e.NumModes()
	q := mat.NewVecDense(m, nil)
	if err := q.SolveVec(e.Stiffness, f); err != nil {
		return yerr.Wrap(yerr.SingularSystem, "integrator.steady_state", err)
	}
	if err := eom.CheckFinite(q); err != nil {
		return err
	}

	cur.F.CopyVec(f)
	cur.Q.CopyVec(q)
	cur.Qdot.ScaleVec(0, cur.Qdot)
	cur.Qddt.ScaleVec(0, cur.Qddt)
	return nil
}
