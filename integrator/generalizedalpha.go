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

// GeneralizedAlpha implements the generalized-α method (spec.md §4.3.2):
// second order, unconditionally stable, with controllable numerical
// damping via α_m/α_f. Stencil 2. Loads are evaluated at t - α_f·Δt rather
// than at t, unlike Newmark-β.
type GeneralizedAlpha struct {
	AlphaM, AlphaF, Beta, Gamma float64
}

// NewGeneralizedAlpha returns a GeneralizedAlpha integrator with the
// reference defaults (α_m=2/7, α_f=3/7, β=1/49, γ=9/14).
func NewGeneralizedAlpha() *GeneralizedAlpha {
	return &GeneralizedAlpha{AlphaM: 2.0 / 7.0, AlphaF: 3.0 / 7.0, Beta: 1.0 / 49.0, Gamma: 9.0 / 14.0}
}

func (o *GeneralizedAlpha) StencilSize() int { return 2 }

type alphaCoefs struct {
	k0, k1, k2, k3     float64
	a0, a1             float64
	b0, b1, b2         float64
	c0, c1, c2, c3, c4 float64
	c5, c6, c7         float64
}

func computeAlphaCoefs(alphaM, alphaF, beta, gamma, dt float64) alphaCoefs {
	var c alphaCoefs
	c.k0 = 1.0 / (1.0 - alphaF)
	c.k1 = c.k0 * alphaM
	c.k2 = c.k0 * alphaF
	c.k3 = c.k0 * (1.0 - alphaM)
	c.a0 = dt * (1.0 - gamma)
	c.a1 = dt - c.a0
	c.b0 = 1.0 / (beta * dt * dt)
	c.b1 = dt * c.b0
	c.b2 = 1.0/(2.0*beta) - 1.0
	c.c0 = c.k3 * c.b0
	c.c1 = gamma * c.b1
	c.c2 = c.k3 * c.b1
	c.c3 = c.k3*c.b2 - c.k1
	c.c4 = gamma/beta - 1.0 - c.k2
	c.c5 = 0.5 * dt * (gamma/beta - 2.0)
	c.c6 = -c.k2
	c.c7 = c.k0
	return c
}

func (o *GeneralizedAlpha) Step(e *eom.EOM, s *structure.Structure) error {
	cur := e.Current()
	prev := e.Prior(1)
	dt := cur.Dt
	c := computeAlphaCoefs(o.AlphaM, o.AlphaF, o.Beta, o.Gamma, dt)

	tEval := cur.Time - complex(o.AlphaF*dt, 0)
	if err := s.ApplyLoads(tEval); err != nil {
		return err
	}
	g := s.GeneralizedForce()

	m := e.NumModes()
	u, du, ddu := prev.Q, prev.Qdot, prev.Qddt

	f := scaled(m, c.c7, g)

	p := mat.NewVecDense(m, nil) // c0*u + c2*du + c3*ddu
	p.AddScaledVec(p, c.c0, u)
	p.AddScaledVec(p, c.c2, du)
	p.AddScaledVec(p, c.c3, ddu)

	q := mat.NewVecDense(m, nil) // c1*u + c4*du + c5*ddu
	q.AddScaledVec(q, c.c1, u)
	q.AddScaledVec(q, c.c4, du)
	q.AddScaledVec(q, c.c5, ddu)

	r := scaled(m, c.c6, u)

	var mp, cq, kr mat.VecDense
	mp.MulVec(e.Mass, p)
	cq.MulVec(e.Damping, q)
	kr.MulVec(e.Stiffness, r)

	fEff := mat.NewVecDense(m, nil)
	fEff.AddVec(f, &mp)
	fEff.AddVec(fEff, &cq)
	fEff.AddVec(fEff, &kr)

	var kEff mat.Dense
	kEff.Scale(c.c0, e.Mass)
	var caTerm mat.Dense
	caTerm.Scale(c.c1, e.Damping)
	kEff.Add(&kEff, &caTerm)
	kEff.Add(&kEff, e.Stiffness)

	uNew := mat.NewVecDense(m, nil)
	if err := uNew.SolveVec(&kEff, fEff); err != nil {
		return yerr.Wrap(yerr.SingularSystem, "integrator.generalized_alpha", err)
	}

	dduNew := mat.NewVecDense(m, nil) // b0*(u_new-u) - b1*du - b2*ddu
	dduNew.SubVec(uNew, u)
	dduNew.ScaleVec(c.b0, dduNew)
	dduNew.AddScaledVec(dduNew, -c.b1, du)
	dduNew.AddScaledVec(dduNew, -c.b2, ddu)

	duNew := mat.NewVecDense(m, nil) // du + a0*ddu + a1*ddu_new
	duNew.AddVec(du, scaled(m, c.a0, ddu))
	duNew.AddScaledVec(duNew, c.a1, dduNew)

	if err := eom.CheckFinite(uNew); err != nil {
		return err
	}

	cur.Q.CopyVec(uNew)
	cur.Qdot.CopyVec(duNew)
	cur.Qddt.CopyVec(dduNew)
	// Resync the stored iterate force with the real (unscaled) applied
	// generalized force, not the c7-scaled quantity used internally above
	// — mirrors the reference's trailing eom.compute_force() call.
	cur.F.CopyVec(g)
	return nil
}
