// Copyright the yamss-go authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/dynasolve/yamss/structure"
)

func TestOffsetsSkipInactiveDofs(tst *testing.T) {
	chk.PrintTitle("wire Offsets")
	var active [structure.NumDofs]bool
	active[0] = true
	active[2] = true
	offsets := Offsets(active, 3)
	chk.IntAssert(offsets[0], 0)
	chk.IntAssert(offsets[1], -1)
	chk.IntAssert(offsets[2], 3)
	chk.IntAssert(offsets[3], -1)
}

func TestFlattenUnflattenRoundTrip(tst *testing.T) {
	chk.PrintTitle("wire Flatten/Unflatten round trip")
	var active [structure.NumDofs]bool
	active[0] = true
	active[1] = true
	values := [][structure.NumDofs]float64{
		{1, 2, 0, 0, 0, 0},
		{3, 4, 0, 0, 0, 0},
		{5, 6, 0, 0, 0, 0},
	}
	flat := Flatten(active, values)
	chk.IntAssert(len(flat), 6) // 2 active dofs * 3 nodes

	back := Unflatten(active, 3, flat)
	for i := range values {
		chk.Scalar(tst, "x", 1e-15, back[i][0], values[i][0])
		chk.Scalar(tst, "y", 1e-15, back[i][1], values[i][1])
		chk.Scalar(tst, "z stays zero", 1e-15, back[i][2], 0)
	}
}

func TestFlattenLayoutIsDofMajorNodeMinor(tst *testing.T) {
	chk.PrintTitle("wire DoF-major node-minor layout")
	var active [structure.NumDofs]bool
	active[0] = true
	active[1] = true
	values := [][structure.NumDofs]float64{
		{10, 20, 0, 0, 0, 0},
		{11, 21, 0, 0, 0, 0},
	}
	flat := Flatten(active, values)
	// dof 0 occupies indices [0,2), dof 1 occupies [2,4)
	chk.Scalar(tst, "flat[0]", 1e-15, flat[0], 10)
	chk.Scalar(tst, "flat[1]", 1e-15, flat[1], 11)
	chk.Scalar(tst, "flat[2]", 1e-15, flat[2], 20)
	chk.Scalar(tst, "flat[3]", 1e-15, flat[3], 21)
}
