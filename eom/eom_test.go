// Copyright the yamss-go authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eom

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

func TestNewIdentityAndZeroIterates(tst *testing.T) {
	chk.PrintTitle("eom New")
	o := New(2, 2)
	chk.IntAssert(o.NumModes(), 2)
	chk.IntAssert(o.StencilSize(), 2)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			chk.Scalar(tst, "mass", 1e-15, o.Mass.At(i, j), want)
		}
	}
	chk.Scalar(tst, "q0", 1e-15, o.Current().Q.AtVec(0), 0)
}

func TestAdvanceShiftsRingAndTime(tst *testing.T) {
	chk.PrintTitle("eom Advance")
	o := New(1, 2)
	o.Current().Q.SetVec(0, 5)
	o.Current().Time = complex(0, 0)
	o.Advance(0.1)
	chk.Scalar(tst, "prior Q", 1e-15, o.Prior(1).Q.AtVec(0), 5)
	chk.IntAssert(o.Current().Step, 1)
	chk.Scalar(tst, "time", 1e-15, real(o.Current().Time), 0.1)

	o.Current().Q.SetVec(0, 7)
	o.Advance(0.1)
	chk.Scalar(tst, "prior Q after 2nd advance", 1e-15, o.Prior(1).Q.AtVec(0), 7)
	chk.IntAssert(o.Current().Step, 2)
	chk.Scalar(tst, "time after 2nd advance", 1e-15, real(o.Current().Time), 0.2)
}

func TestComputeAccelerationSolvesMqddtEqualsF(tst *testing.T) {
	chk.PrintTitle("eom ComputeAcceleration")
	o := New(1, 1)
	o.Mass.Set(0, 0, 2.0)
	o.Current().F.SetVec(0, 4.0)
	if err := o.ComputeAcceleration(); err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "qddt", 1e-12, o.Current().Qddt.AtVec(0), 2.0)
}

func TestComputeAccelerationSingularMassFails(tst *testing.T) {
	chk.PrintTitle("eom ComputeAcceleration singular mass")
	o := New(1, 1)
	o.Mass.Set(0, 0, 0.0)
	o.Current().F.SetVec(0, 1.0)
	if err := o.ComputeAcceleration(); err == nil {
		tst.Fatal("expected singular-mass error")
	}
}

func TestCheckFiniteRejectsInf(tst *testing.T) {
	chk.PrintTitle("eom CheckFinite")
	v := mat.NewVecDense(1, []float64{1})
	v.SetVec(0, 1.0/zero())
	if err := CheckFinite(v); err == nil {
		tst.Fatal("expected non-finite error")
	}
}

func zero() float64 { return 0 }
