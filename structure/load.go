// Copyright the yamss-go authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package structure

// NodeEvaluator maps (time, node) to a 6-vector of force. It is the only
// extension point the co-simulation façade and the builtin/scripted load
// types share; Structure.ApplyLoads never knows which concrete evaluator
// it is driving.
type NodeEvaluator interface {
	Evaluate(t complex128, n *Node) [NumDofs]float64
}

// Load is a named collection of element keys (whose vertices form the
// load's node set) plus explicitly-added node keys, paired with a single
// NodeEvaluator. A Load never holds a second, shared owner of its
// Evaluator: the co-simulation façade reaches the evaluator through
// Structure.WithInterfaceEvaluator instead of holding its own pointer, so
// there is exactly one owner for the lifetime of the Load.
type Load struct {
	Key         int
	elementKeys map[int]bool
	extraNodes  map[int]bool
	Evaluator   NodeEvaluator
}

// NewLoad returns a Load with no referenced elements or nodes yet.
func NewLoad(key int, ev NodeEvaluator) *Load {
	return &Load{Key: key, elementKeys: map[int]bool{}, extraNodes: map[int]bool{}, Evaluator: ev}
}

// AddElement adds a referenced element key.
func (l *Load) AddElement(key int) { l.elementKeys[key] = true }

// AddNode adds an explicitly-referenced node key (one not reachable
// through an element's vertex list, e.g. a point load with no element).
func (l *Load) AddNode(key int) { l.extraNodes[key] = true }

// ElementKeys returns the referenced element keys.
func (l *Load) ElementKeys() []int {
	out := make([]int, 0, len(l.elementKeys))
	for k := range l.elementKeys {
		out = append(out, k)
	}
	return out
}

// ExtraNodeKeys returns the explicitly-added node keys.
func (l *Load) ExtraNodeKeys() []int {
	out := make([]int, 0, len(l.extraNodes))
	for k := range l.extraNodes {
		out = append(out, k)
	}
	return out
}
