// Copyright the yamss-go authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package observer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/dynasolve/yamss/eom"
	"github.com/dynasolve/yamss/structure"
)

func buildOneNodeSystem(tst *testing.T) (*eom.EOM, *structure.Structure) {
	e := eom.New(1, 1)
	e.Current().Q.SetVec(0, 2.0)
	s := structure.New(1)
	n, err := s.AddNode(1)
	if err != nil {
		tst.Fatal(err)
	}
	n.SetMode(0, [structure.NumDofs]float64{1, 0, 0, 0, 0, 0})
	return e, s
}

func TestModesWritesShapesOnceAtInitialize(tst *testing.T) {
	chk.PrintTitle("observer Modes")
	e, s := buildOneNodeSystem(tst)
	dir := tst.TempDir()
	o := NewModes("")
	if err := o.Initialize(e, s, dir); err != nil {
		tst.Fatal(err)
	}
	if err := o.Update(e, s); err != nil {
		tst.Fatal(err)
	}
	if err := o.Finalize(e, s); err != nil {
		tst.Fatal(err)
	}
	chk.IntAssert(len(o.Files()), 1)
	if _, err := os.Stat(filepath.Join(dir, "modes.txt")); err != nil {
		tst.Fatalf("expected modes.txt: %v", err)
	}
}

func TestMotionRecordsEveryNodeWhenKeysEmpty(tst *testing.T) {
	chk.PrintTitle("observer Motion")
	e, s := buildOneNodeSystem(tst)
	dir := tst.TempDir()
	o := NewMotion("", nil)
	if err := o.Initialize(e, s, dir); err != nil {
		tst.Fatal(err)
	}
	chk.IntAssert(len(o.lines), 1)
	if err := o.Update(e, s); err != nil {
		tst.Fatal(err)
	}
	chk.IntAssert(len(o.lines), 2)
	if err := o.Finalize(e, s); err != nil {
		tst.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "motion.txt")); err != nil {
		tst.Fatalf("expected motion.txt: %v", err)
	}
}

func TestPointTracksSingleNode(tst *testing.T) {
	chk.PrintTitle("observer Point")
	e, s := buildOneNodeSystem(tst)
	dir := tst.TempDir()
	o := NewPoint("", 1)
	if err := o.Initialize(e, s, dir); err != nil {
		tst.Fatal(err)
	}
	if err := o.Finalize(e, s); err != nil {
		tst.Fatal(err)
	}
	chk.IntAssert(len(o.lines), 1)
}

func TestPointUnknownNodeFails(tst *testing.T) {
	chk.PrintTitle("observer Point unknown node")
	e, s := buildOneNodeSystem(tst)
	o := NewPoint("", 99)
	if err := o.Initialize(e, s, tst.TempDir()); err == nil {
		tst.Fatal("expected error for unknown node key")
	}
}

func TestPtreeNestsEveryNodeUnderStepHeading(tst *testing.T) {
	chk.PrintTitle("observer Ptree")
	e, s := buildOneNodeSystem(tst)
	dir := tst.TempDir()
	o := NewPtree("")
	if err := o.Initialize(e, s, dir); err != nil {
		tst.Fatal(err)
	}
	if err := o.Update(e, s); err != nil {
		tst.Fatal(err)
	}
	chk.IntAssert(len(o.lines), 4) // 2 headings + 2 node lines
	if err := o.Finalize(e, s); err != nil {
		tst.Fatal(err)
	}
}

func TestSummaryTracksMinMaxAcrossSteps(tst *testing.T) {
	chk.PrintTitle("observer Summary")
	e, s := buildOneNodeSystem(tst)
	dir := tst.TempDir()
	o := NewSummary("")
	if err := o.Initialize(e, s, dir); err != nil {
		tst.Fatal(err)
	}
	e.Current().Q.SetVec(0, -1.0)
	if err := o.Update(e, s); err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "qMin", 1e-15, o.qMin[0], -1.0)
	chk.Scalar(tst, "qMax", 1e-15, o.qMax[0], 2.0)
	if err := o.Finalize(e, s); err != nil {
		tst.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "summary.txt")); err != nil {
		tst.Fatalf("expected summary.txt: %v", err)
	}
}
