// Copyright the yamss-go authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wire implements the flat-array layout spec.md §6.3 defines for
// an interface Load's RPC-facing arrays: DoF-major, node-minor. For an
// interface Load with N nodes and D active DoFs, index = offset[d] + n,
// where offset[d] is the count of active DoFs strictly before d, times N.
package wire

import "github.com/dynasolve/yamss/structure"

// Offsets returns, for each of the 6 physical DoFs, the flat-array offset
// at which that DoF's N values begin — or -1 if the DoF is inactive.
// offset[d] = N * (number of active DoFs before d).
func Offsets(active [structure.NumDofs]bool, n int) [structure.NumDofs]int {
	var offsets [structure.NumDofs]int
	count := 0
	for d := 0; d < structure.NumDofs; d++ {
		if active[d] {
			offsets[d] = count * n
			count++
		} else {
			offsets[d] = -1
		}
	}
	return offsets
}

// Flatten packs values (one [6]float64 per node, in node order) into a
// length D·N array laid out DoF-major, node-minor.
func Flatten(active [structure.NumDofs]bool, values [][structure.NumDofs]float64) []float64 {
	n := len(values)
	offsets := Offsets(active, n)
	d := 0
	for _, ok := range active {
		if ok {
			d++
		}
	}
	out := make([]float64, d*n)
	for node, v := range values {
		for dof := 0; dof < structure.NumDofs; dof++ {
			if offsets[dof] < 0 {
				continue
			}
			out[offsets[dof]+node] = v[dof]
		}
	}
	return out
}

// Unflatten reverses Flatten: it demultiplexes a length D·N flat array
// across the active DoFs for n nodes, returning one [6]float64 per node
// (inactive DoFs read as zero).
func Unflatten(active [structure.NumDofs]bool, n int, flat []float64) [][structure.NumDofs]float64 {
	offsets := Offsets(active, n)
	out := make([][structure.NumDofs]float64, n)
	for dof := 0; dof < structure.NumDofs; dof++ {
		if offsets[dof] < 0 {
			continue
		}
		for node := 0; node < n; node++ {
			out[node][dof] = flat[offsets[dof]+node]
		}
	}
	return out
}
