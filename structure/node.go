// Copyright the yamss-go authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package structure holds the geometric model shared by every stage of a
// run: nodes, elements, loads, and the active-DoF mask that projects
// nodal forces into modal generalized force.
package structure

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// NumDofs is the number of physical degrees of freedom carried at every
// node: three translations followed by three rotations.
const NumDofs = 6

// Node is per-vertex state: a unique key, 6-DoF position, a 6-DoF force
// accumulator, and an (M×6) mode-shape matrix Φ used to project modal
// displacement onto the physical DoFs at this node.
type Node struct {
	Key      int
	Position [NumDofs]float64
	Force    [NumDofs]float64
	Modes    *mat.Dense // M rows, 6 columns
}

// NewNode returns a Node with m modes and zeroed position, force and
// mode-shape matrix.
func NewNode(key, m int) *Node {
	if m <= 0 {
		chk.Panic("structure: node %d requires a positive number of modes (m=%d)", key, m)
	}
	return &Node{Key: key, Modes: mat.NewDense(m, NumDofs, nil)}
}

// ClearForce zeroes the force accumulator.
func (n *Node) ClearForce() {
	n.Force = [NumDofs]float64{}
}

// AddForce accumulates a 6-vector of force into the node's accumulator.
func (n *Node) AddForce(f [NumDofs]float64) {
	for i := range n.Force {
		n.Force[i] += f[i]
	}
}

// SetMode stores the mode shape row for the given mode index.
func (n *Node) SetMode(mode int, shape [NumDofs]float64) {
	for d := 0; d < NumDofs; d++ {
		n.Modes.Set(mode, d, shape[d])
	}
}

// GeneralizedForce returns Φ·diag(active)·F, the modal projection of this
// node's accumulated physical force restricted to the active DoFs.
func (n *Node) GeneralizedForce(active [NumDofs]bool) *mat.VecDense {
	m, _ := n.Modes.Dims()
	g := mat.NewVecDense(m, nil)
	for d := 0; d < NumDofs; d++ {
		if !active[d] {
			continue
		}
		if n.Force[d] == 0 {
			continue
		}
		var col mat.VecDense
		col.ColViewOf(n.Modes, d)
		g.AddScaledVec(g, n.Force[d], &col)
	}
	return g
}

// PhysicalDisplacement reconstructs this node's 6-DoF displacement field
// from a modal displacement vector q via mode superposition: x = Φᵀ·q.
func (n *Node) PhysicalDisplacement(q mat.Vector) [NumDofs]float64 {
	m, _ := n.Modes.Dims()
	if q.Len() != m {
		chk.Panic("structure: node %d expects %d modal coordinates, got %d", n.Key, m, q.Len())
	}
	var out [NumDofs]float64
	for d := 0; d < NumDofs; d++ {
		var sum float64
		for i := 0; i < m; i++ {
			sum += n.Modes.At(i, d) * q.AtVec(i)
		}
		out[d] = sum
	}
	return out
}
