// Copyright the yamss-go authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runner

import (
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/dynasolve/yamss/eom"
	"github.com/dynasolve/yamss/integrator"
	"github.com/dynasolve/yamss/observer"
	"github.com/dynasolve/yamss/structure"
)

type constEvaluator struct{ force [structure.NumDofs]float64 }

func (c constEvaluator) Evaluate(complex128, *structure.Node) [structure.NumDofs]float64 {
	return c.force
}

func buildSingleModeSystem(tst *testing.T) (*eom.EOM, *structure.Structure) {
	e := eom.New(1, 2)
	e.Stiffness.Set(0, 0, 4.0)
	s := structure.New(1)
	n, err := s.AddNode(1)
	if err != nil {
		tst.Fatal(err)
	}
	n.SetMode(0, [structure.NumDofs]float64{1, 0, 0, 0, 0, 0})
	if _, err := s.AddElement(1, structure.Point, []int{1}); err != nil {
		tst.Fatal(err)
	}
	load, err := s.AddLoad(1, constEvaluator{})
	if err != nil {
		tst.Fatal(err)
	}
	load.AddElement(1)
	return e, s
}

func TestRunnerInitializeStepFinalizeWritesSummary(tst *testing.T) {
	chk.PrintTitle("runner Initialize/Step/Finalize")
	e, s := buildSingleModeSystem(tst)
	r := New(e, s, integrator.NewNewmarkBeta())
	r.SetTimeStep(0.01)
	r.SetFinalTime(complex(0.1, 0))

	sum := observer.NewSummary("summary.txt")
	r.AddObserver(sum)

	dir, err := os.MkdirTemp("", "yamss-runner-test-")
	if err != nil {
		tst.Fatal(err)
	}
	defer os.RemoveAll(dir)

	if err := r.Initialize(dir); err != nil {
		tst.Fatal(err)
	}
	if err := r.Run(); err != nil {
		tst.Fatal(err)
	}
	if err := r.Finalize(); err != nil {
		tst.Fatal(err)
	}

	chk.IntAssert(len(r.Files()), 1)
	if _, err := os.Stat(dir + "/summary.txt"); err != nil {
		tst.Fatalf("expected summary.txt to be written: %v", err)
	}
}

func TestAdvanceAndSubiterateComposeToStep(tst *testing.T) {
	chk.PrintTitle("runner Advance+Subiterate vs Step")
	e1, s1 := buildSingleModeSystem(tst)
	r1 := New(e1, s1, integrator.NewNewmarkBeta())
	r1.SetTimeStep(0.01)
	if err := r1.Initialize(tst.TempDir()); err != nil {
		tst.Fatal(err)
	}
	r1.Advance()
	if err := r1.Subiterate(); err != nil {
		tst.Fatal(err)
	}

	e2, s2 := buildSingleModeSystem(tst)
	r2 := New(e2, s2, integrator.NewNewmarkBeta())
	r2.SetTimeStep(0.01)
	if err := r2.Initialize(tst.TempDir()); err != nil {
		tst.Fatal(err)
	}
	if err := r2.Step(); err != nil {
		tst.Fatal(err)
	}

	chk.Scalar(tst, "q", 1e-15, r1.EOM.Current().Q.AtVec(0), r2.EOM.Current().Q.AtVec(0))
}
