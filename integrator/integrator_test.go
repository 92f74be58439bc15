// Copyright the yamss-go authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrator

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/dynasolve/yamss/eom"
	"github.com/dynasolve/yamss/structure"
)

// sho builds a single-mode EOM for an undamped oscillator m*q̈ + k*q = 0
// with mass 1 and stiffness k, stencil sized for the given integrator.
func sho(k float64, stencil int) *eom.EOM {
	e := eom.New(1, stencil)
	e.Stiffness.Set(0, 0, k)
	e.Damping.Set(0, 0, 0)
	return e
}

func TestNewmarkBetaFreeVibrationConservesAmplitude(tst *testing.T) {
	chk.PrintTitle("integrator NewmarkBeta free vibration")
	k := 4.0 // omega = 2
	e := sho(k, 2)
	e.Current().Q.SetVec(0, 1.0)
	s := structure.New(1)

	nb := NewNewmarkBeta()
	dt := 0.01
	steps := int(2 * math.Pi / 2 / dt) // one full period
	for i := 0; i < steps; i++ {
		e.Advance(dt)
		if err := nb.Step(e, s); err != nil {
			tst.Fatal(err)
		}
	}
	chk.Scalar(tst, "q after one period", 0.05, e.Current().Q.AtVec(0), 1.0)
}

func TestGeneralizedAlphaStepProducesFiniteState(tst *testing.T) {
	chk.PrintTitle("integrator GeneralizedAlpha step")
	e := sho(4.0, 2)
	e.Current().Q.SetVec(0, 1.0)
	s := structure.New(1)

	ga := NewGeneralizedAlpha()
	e.Advance(0.01)
	if err := ga.Step(e, s); err != nil {
		tst.Fatal(err)
	}
	if err := eom.CheckFinite(e.Current().Q); err != nil {
		tst.Fatal(err)
	}
}

func TestSteadyStateSolvesKqEqualsF(tst *testing.T) {
	chk.PrintTitle("integrator SteadyState")
	e := sho(4.0, 1)
	s := structure.New(1)
	n, err := s.AddNode(1)
	if err != nil {
		tst.Fatal(err)
	}
	n.SetMode(0, [structure.NumDofs]float64{1, 0, 0, 0, 0, 0})
	if _, err := s.AddElement(1, structure.Point, []int{1}); err != nil {
		tst.Fatal(err)
	}
	ev := constEvaluator{force: [structure.NumDofs]float64{8, 0, 0, 0, 0, 0}}
	load, err := s.AddLoad(1, ev)
	if err != nil {
		tst.Fatal(err)
	}
	load.AddElement(1)

	ss := NewSteadyState()
	if err := ss.Step(e, s); err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "q = f/k", 1e-12, e.Current().Q.AtVec(0), 2.0)
	chk.Scalar(tst, "qdot zeroed", 1e-15, e.Current().Qdot.AtVec(0), 0)
}

type constEvaluator struct{ force [structure.NumDofs]float64 }

func (c constEvaluator) Evaluate(complex128, *structure.Node) [structure.NumDofs]float64 {
	return c.force
}
