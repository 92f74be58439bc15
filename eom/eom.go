// Copyright the yamss-go authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eom

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"

	"github.com/dynasolve/yamss/yerr"
)

// EOM owns the mass/damping/stiffness matrices and a ring of the last S
// iterates (the integrator's stencil). Iterates[0] is always the newest;
// Iterates[k] is the state k steps ago. A freshly-built EOM has identity
// matrices, zero iterates, and time zero — the same initial condition as
// the reference `eom<T>` constructor.
type EOM struct {
	m int // number of modes

	Mass      *mat.Dense
	Damping   *mat.Dense
	Stiffness *mat.Dense

	// Iterates[0] is the current step; higher indices are progressively
	// older. len(Iterates) == stencil size S.
	Iterates []*Iterate
}

// New returns an EOM with m modes and a stencil of s iterates (s is
// almost always 1 or 2; see Integrator.StencilSize).
func New(m, s int) *EOM {
	if m <= 0 {
		chk.Panic("eom: number of modes must be positive (m=%d)", m)
	}
	if s <= 0 {
		chk.Panic("eom: stencil size must be positive (s=%d)", s)
	}
	o := &EOM{
		m:         m,
		Mass:      identity(m),
		Damping:   identity(m),
		Stiffness: identity(m),
		Iterates:  make([]*Iterate, s),
	}
	for i := range o.Iterates {
		o.Iterates[i] = NewIterate(m)
	}
	return o
}

func identity(m int) *mat.Dense {
	d := mat.NewDense(m, m, nil)
	for i := 0; i < m; i++ {
		d.Set(i, i, 1)
	}
	return d
}

// NumModes returns M.
func (o *EOM) NumModes() int { return o.m }

// StencilSize returns S, the number of retained iterates.
func (o *EOM) StencilSize() int { return len(o.Iterates) }

// Current returns the newest iterate, Iterates[0].
func (o *EOM) Current() *Iterate { return o.Iterates[0] }

// Prior returns the iterate k steps before the current one. k=0 is the
// same as Current.
func (o *EOM) Prior(k int) *Iterate {
	if k < 0 || k >= len(o.Iterates) {
		chk.Panic("eom: prior step %d out of stencil range [0,%d)", k, len(o.Iterates))
	}
	return o.Iterates[k]
}

// Advance shifts the iterate ring right by one (the oldest entry is
// dropped, the newest is duplicated into slot 1) and writes dt into the
// new Iterates[0]. If the stencil holds more than one iterate,
// Iterates[0].Time is set to Iterates[1].Time + dt. No solve happens here;
// it is purely bookkeeping, matching eom<T>::advance in the reference.
func (o *EOM) Advance(dt float64) {
	s := len(o.Iterates)
	prevStep := o.Iterates[0].Step
	for n := s - 1; n > 0; n-- {
		o.Iterates[n].copyFrom(o.Iterates[n-1])
	}
	o.Iterates[0].Step = prevStep + 1
	o.Iterates[0].Dt = dt
	if s > 1 {
		o.Iterates[0].Time = o.Iterates[1].Time + complex(dt, 0)
	}
}

// ComputeAcceleration solves M·q̈ = f - C·q̇ - K·q for the current iterate,
// using its own q, q̇, f. Used once at Runner.Initialize.
func (o *EOM) ComputeAcceleration() error {
	cur := o.Current()
	rhs := mat.NewVecDense(o.m, nil)
	rhs.MulVec(o.Damping, cur.Qdot)
	var kq mat.VecDense
	kq.MulVec(o.Stiffness, cur.Q)
	rhs.SubVec(cur.F, rhs)
	rhs.SubVec(rhs, &kq)

	var qddt mat.VecDense
	if err := qddt.SolveVec(o.Mass, rhs); err != nil {
		return yerr.Wrap(yerr.SingularSystem, "eom.compute_acceleration", err)
	}
	if err := checkFinite(&qddt); err != nil {
		return err
	}
	cur.Qddt.CopyVec(&qddt)
	return nil
}

// checkFinite reports yerr.NumericalOverflow if any entry of v is NaN or
// infinite.
func checkFinite(v mat.Vector) error {
	for i := 0; i < v.Len(); i++ {
		x := v.AtVec(i)
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return yerr.New(yerr.NumericalOverflow, "eom", "non-finite value at index %d", i)
		}
	}
	return nil
}

// CheckFinite is the exported form of checkFinite, used by integrators
// after they write a new iterate.
func CheckFinite(v mat.Vector) error { return checkFinite(v) }
