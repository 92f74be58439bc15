// Copyright the yamss-go authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package structure

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestNormalAndAreaOfUnitSquare(tst *testing.T) {
	chk.PrintTitle("structure Normal/Area unit square")
	s := New(1)
	positions := [][3]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	for i, p := range positions {
		n, err := s.AddNode(i + 1)
		if err != nil {
			tst.Fatal(err)
		}
		n.Position = [NumDofs]float64{p[0], p[1], p[2], 0, 0, 0}
	}
	if _, err := s.AddElement(1, Quad, []int{1, 2, 3, 4}); err != nil {
		tst.Fatal(err)
	}
	normal, err := s.Normal(1)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "nx", 1e-12, normal[0], 0)
	chk.Scalar(tst, "ny", 1e-12, normal[1], 0)
	chk.Scalar(tst, "nz", 1e-12, normal[2], 1)

	area, err := s.Area(1)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "area", 1e-12, area, 1.0)
}

func TestNormalDefaultsToZForFewerThanThreeVertices(tst *testing.T) {
	chk.PrintTitle("structure Normal for LINE")
	s := New(1)
	if _, err := s.AddNode(1); err != nil {
		tst.Fatal(err)
	}
	if _, err := s.AddNode(2); err != nil {
		tst.Fatal(err)
	}
	if _, err := s.AddElement(1, Line, []int{1, 2}); err != nil {
		tst.Fatal(err)
	}
	normal, err := s.Normal(1)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "nz default", 1e-12, normal[2], 1)
}
