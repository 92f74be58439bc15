// Copyright the yamss-go authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

// ExpandGrid bilinearly interpolates the translational positions of a
// grid's 4 corners across a (resU+1)×(resV+1) array of points and returns
// a regular mesh of QUAD elements over them — the mesh-authoring
// convenience spec.md §6.1 names (structure.grids.grid[*]) and
// SPEC_FULL.md §5 calls out as a supplemented feature. Positions are
// returned row-major (v outer, u inner); quads index into that slice,
// wound consistently with the corner order corner00→corner10→corner11→
// corner01.
func ExpandGrid(corner00, corner10, corner11, corner01 [3]float64, resU, resV int) (positions [][3]float64, quads [][4]int) {
	nu, nv := resU+1, resV+1
	positions = make([][3]float64, 0, nu*nv)
	for j := 0; j < nv; j++ {
		v := float64(j) / float64(resV)
		for i := 0; i < nu; i++ {
			u := float64(i) / float64(resU)
			positions = append(positions, bilinear(corner00, corner10, corner11, corner01, u, v))
		}
	}
	idx := func(i, j int) int { return j*nu + i }
	quads = make([][4]int, 0, resU*resV)
	for j := 0; j < resV; j++ {
		for i := 0; i < resU; i++ {
			quads = append(quads, [4]int{idx(i, j), idx(i+1, j), idx(i+1, j+1), idx(i, j+1)})
		}
	}
	return positions, quads
}

func bilinear(c00, c10, c11, c01 [3]float64, u, v float64) [3]float64 {
	var out [3]float64
	w00 := (1 - u) * (1 - v)
	w10 := u * (1 - v)
	w11 := u * v
	w01 := (1 - u) * v
	for d := 0; d < 3; d++ {
		out[d] = w00*c00[d] + w10*c10[d] + w11*c11[d] + w01*c01[d]
	}
	return out
}
