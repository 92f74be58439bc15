// Copyright the yamss-go authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eom holds the equation-of-motion state: the per-step Iterate
// snapshot and the EOM ring that retains the stencil an integrator needs.
package eom

import "gonum.org/v1/gonum/mat"

// Iterate is a snapshot of the modal state at one step: step index, time,
// time step, and the four length-M vectors (displacement, velocity,
// acceleration, force). Time is complex128 so that a harmonic/steady-state
// analysis can carry an imaginary clock component without a second code
// path; real-valued runs simply keep the imaginary part at zero.
type Iterate struct {
	Step int
	Time complex128
	Dt   float64

	Q    *mat.VecDense // displacement
	Qdot *mat.VecDense // velocity
	Qddt *mat.VecDense // acceleration
	F    *mat.VecDense // generalized force
}

// NewIterate returns a zeroed Iterate of length m.
func NewIterate(m int) *Iterate {
	return &Iterate{
		Q:    mat.NewVecDense(m, nil),
		Qdot: mat.NewVecDense(m, nil),
		Qddt: mat.NewVecDense(m, nil),
		F:    mat.NewVecDense(m, nil),
	}
}

// Len returns M, the number of modal coordinates.
func (it *Iterate) Len() int { return it.Q.Len() }

// Clone returns a deep copy of it.
func (it *Iterate) Clone() *Iterate {
	c := &Iterate{Step: it.Step, Time: it.Time, Dt: it.Dt}
	c.Q = mat.VecDenseCopyOf(it.Q)
	c.Qdot = mat.VecDenseCopyOf(it.Qdot)
	c.Qddt = mat.VecDenseCopyOf(it.Qddt)
	c.F = mat.VecDenseCopyOf(it.F)
	return c
}

// copyFrom overwrites it in place with a's values (used when shifting the
// EOM ring, to avoid reallocating vectors every step).
func (it *Iterate) copyFrom(a *Iterate) {
	it.Step = a.Step
	it.Time = a.Time
	it.Dt = a.Dt
	it.Q.CopyVec(a.Q)
	it.Qdot.CopyVec(a.Qdot)
	it.Qddt.CopyVec(a.Qddt)
	it.F.CopyVec(a.F)
}
