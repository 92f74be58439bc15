// Copyright the yamss-go authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evaluator

import "github.com/dynasolve/yamss/structure"

// Interface is the co-simulation extension point: a NodeEvaluator whose
// forces are written by an external caller between steps (via SetLoading,
// package rpc/wire) rather than computed from an expression. A node
// absent from the map evaluates to zero, matching the reference
// evaluator::interface<T>::operator().
type Interface struct {
	forces map[int][structure.NumDofs]float64
}

// NewInterface returns an Interface evaluator with no forces set.
func NewInterface() *Interface {
	return &Interface{forces: map[int][structure.NumDofs]float64{}}
}

// Set replaces the force entry for node key. Co-sim state lives in the
// Load (via this evaluator), guarded by the single-thread-per-job
// invariant (spec.md §5, §9): no two goroutines ever call Set and
// Evaluate on the same Interface concurrently.
func (i *Interface) Set(key int, force [structure.NumDofs]float64) {
	i.forces[key] = force
}

// Evaluate returns the force most recently Set for n, or zero if none was
// ever set for this node.
func (i *Interface) Evaluate(_ complex128, n *structure.Node) [structure.NumDofs]float64 {
	f, ok := i.forces[n.Key]
	if !ok {
		return [structure.NumDofs]float64{}
	}
	return f
}
