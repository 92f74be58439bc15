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

// NewmarkBeta implements the Newmark-β family (spec.md §4.3.1). Stencil 2:
// it reads the previous committed state from eom.Prior(1) and writes the
// new state into eom.Current().
type NewmarkBeta struct {
	Beta, Gamma float64
}

// NewNewmarkBeta returns a NewmarkBeta integrator with the reference
// defaults (β=1/4, γ=1/2), the constant-average-acceleration method.
func NewNewmarkBeta() *NewmarkBeta { return &NewmarkBeta{Beta: 0.25, Gamma: 0.5} }

func (o *NewmarkBeta) StencilSize() int { return 2 }

// newmarkCoefs holds the eight α-coefficients derived from β, γ and Δt,
// mirroring the teacher's DynCoefs (fem/dyncoefs.go) pattern of factoring
// integration coefficients out of the step logic that consumes them.
type newmarkCoefs struct {
	a0, a1, a2, a3, a4, a5, a6, a7 float64
}

func computeNewmarkCoefs(beta, gamma, dt float64) newmarkCoefs {
	return newmarkCoefs{
		a0: 1.0 / (beta * dt * dt),
		a1: gamma / (beta * dt),
		a2: 1.0 / (beta * dt),
		a3: 1.0/(2.0*beta) - 1.0,
		a4: gamma/beta - 1.0,
		a5: 0.5 * dt * (gamma/beta - 2.0),
		a6: dt * (1.0 - gamma),
		a7: dt * gamma,
	}
}

func (o *NewmarkBeta) Step(e *eom.EOM, s *structure.Structure) error {
	cur := e.Current()
	prev := e.Prior(1)
	dt := cur.Dt
	c := computeNewmarkCoefs(o.Beta, o.Gamma, dt)

	if err := s.ApplyLoads(cur.Time); err != nil {
		return err
	}
	f := s.GeneralizedForce()

	m := e.NumModes()
	u, du, ddu := prev.Q, prev.Qdot, prev.Qddt

	v := mat.NewVecDense(m, nil) // a0*u + a2*du + a3*ddu
	v.AddScaledVec(v, c.a0, u)
	v.AddScaledVec(v, c.a2, du)
	v.AddScaledVec(v, c.a3, ddu)

	w := mat.NewVecDense(m, nil) // a1*u + a4*du + a5*ddu
	w.AddScaledVec(w, c.a1, u)
	w.AddScaledVec(w, c.a4, du)
	w.AddScaledVec(w, c.a5, ddu)

	var mv, cw mat.VecDense
	mv.MulVec(e.Mass, v)
	cw.MulVec(e.Damping, w)

	fEff := mat.NewVecDense(m, nil)
	fEff.AddVec(f, &mv)
	fEff.AddVec(fEff, &cw)

	var kEff mat.Dense
	kEff.Scale(c.a0, e.Mass)
	var caTerm mat.Dense
	caTerm.Scale(c.a1, e.Damping)
	kEff.Add(&kEff, &caTerm)
	kEff.Add(&kEff, e.Stiffness)

	uNew := mat.NewVecDense(m, nil)
	if err := uNew.SolveVec(&kEff, fEff); err != nil {
		return yerr.Wrap(yerr.SingularSystem, "integrator.newmark_beta", err)
	}

	dduNew := mat.NewVecDense(m, nil) // a0*(u_new-u) - a2*du - a3*ddu
	dduNew.SubVec(uNew, u)
	dduNew.ScaleVec(c.a0, dduNew)
	dduNew.AddScaledVec(dduNew, -c.a2, du)
	dduNew.AddScaledVec(dduNew, -c.a3, ddu)

	duNew := mat.NewVecDense(m, nil) // du + a6*ddu + a7*ddu_new
	duNew.AddVec(du, scaled(m, c.a6, ddu))
	duNew.AddScaledVec(duNew, c.a7, dduNew)

	if err := eom.CheckFinite(uNew); err != nil {
		return err
	}

	cur.Q.CopyVec(uNew)
	cur.Qdot.CopyVec(duNew)
	cur.Qddt.CopyVec(dduNew)
	cur.F.CopyVec(f)
	return nil
}

func scaled(m int, a float64, v mat.Vector) *mat.VecDense {
	out := mat.NewVecDense(m, nil)
	out.ScaleVec(a, v)
	return out
}
