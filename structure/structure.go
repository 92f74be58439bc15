// Copyright the yamss-go authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package structure

import (
	"gonum.org/v1/gonum/mat"
)

// Structure is the registry of nodes, elements and loads active in a run,
// together with the active-DoF mask used by GeneralizedForce. All Load
// vertex references must resolve to existing Nodes at ApplyLoads time;
// keys are unique per registry (per spec.md §3).
type Structure struct {
	numModes int
	active   [NumDofs]bool

	nodes    map[int]*Node
	elements map[int]*Element
	loads    map[int]*Load
	// loadOrder preserves insertion order so ApplyLoads/GeneralizedForce
	// are reproducible given identical inputs (spec.md §8 invariant 4).
	loadOrder []int
}

// New returns a Structure for m modes with every DoF active.
func New(m int) *Structure {
	s := &Structure{
		numModes: m,
		nodes:    map[int]*Node{},
		elements: map[int]*Element{},
		loads:    map[int]*Load{},
	}
	for d := range s.active {
		s.active[d] = true
	}
	return s
}

// NumModes returns M.
func (s *Structure) NumModes() int { return s.numModes }

// ActivateDof / DeactivateDof toggle participation of physical DoF i
// (i ∈ [0,6)) in GeneralizedForce's projection.
func (s *Structure) ActivateDof(i int)   { s.active[i] = true }
func (s *Structure) DeactivateDof(i int) { s.active[i] = false }

// IsActive reports whether DoF i currently participates in projection.
func (s *Structure) IsActive(i int) bool { return s.active[i] }

// ActiveDofs returns a copy of the 6-element active-DoF mask.
func (s *Structure) ActiveDofs() [NumDofs]bool { return s.active }

// NumActiveDofs counts the active entries of the mask.
func (s *Structure) NumActiveDofs() int {
	n := 0
	for _, a := range s.active {
		if a {
			n++
		}
	}
	return n
}

// AddNode registers a new Node under key. Fails with yerr.DuplicateKey if
// the key is already present.
func (s *Structure) AddNode(key int) (*Node, error) {
	if _, ok := s.nodes[key]; ok {
		return nil, duplicateNode(key)
	}
	n := NewNode(key, s.numModes)
	s.nodes[key] = n
	return n, nil
}

// GetNode returns the Node registered under key, or yerr.UnknownKey.
func (s *Structure) GetNode(key int) (*Node, error) {
	n, ok := s.nodes[key]
	if !ok {
		return nil, unknownNode(key)
	}
	return n, nil
}

// Nodes returns every registered node, in no particular order.
func (s *Structure) Nodes() []*Node {
	out := make([]*Node, 0, len(s.nodes))
	for _, n := range s.nodes {
		out = append(out, n)
	}
	return out
}

// NumNodes returns the number of registered nodes.
func (s *Structure) NumNodes() int { return len(s.nodes) }

// AddElement registers a new Element. Fails with yerr.DuplicateKey if the
// key is already present.
func (s *Structure) AddElement(key int, shape Shape, vertices []int) (*Element, error) {
	if _, ok := s.elements[key]; ok {
		return nil, duplicateElement(key)
	}
	e, err := NewElement(key, shape, vertices)
	if err != nil {
		return nil, err
	}
	s.elements[key] = e
	return e, nil
}

// GetElement returns the Element registered under key, or yerr.UnknownKey.
func (s *Structure) GetElement(key int) (*Element, error) {
	e, ok := s.elements[key]
	if !ok {
		return nil, unknownElement(key)
	}
	return e, nil
}

// Elements returns every registered element, in no particular order.
func (s *Structure) Elements() []*Element {
	out := make([]*Element, 0, len(s.elements))
	for _, e := range s.elements {
		out = append(out, e)
	}
	return out
}

// AddLoad registers a new Load. Fails with yerr.DuplicateKey if the key is
// already present.
func (s *Structure) AddLoad(key int, ev NodeEvaluator) (*Load, error) {
	if _, ok := s.loads[key]; ok {
		return nil, duplicateLoad(key)
	}
	l := NewLoad(key, ev)
	s.loads[key] = l
	s.loadOrder = append(s.loadOrder, key)
	return l, nil
}

// GetLoad returns the Load registered under key, or yerr.UnknownKey.
func (s *Structure) GetLoad(key int) (*Load, error) {
	l, ok := s.loads[key]
	if !ok {
		return nil, unknownLoad(key)
	}
	return l, nil
}

// WithInterfaceEvaluator runs fn with the Evaluator registered for loadKey,
// without exposing Load's internals or requiring a type-switch/downcast at
// the call site (spec.md §9's cyclic-pointer redesign note: the co-sim
// façade reaches the evaluator this way instead of holding its own
// pointer into the Load).
func (s *Structure) WithInterfaceEvaluator(loadKey int, fn func(NodeEvaluator) error) error {
	l, err := s.GetLoad(loadKey)
	if err != nil {
		return err
	}
	return fn(l.Evaluator)
}

// NodeKeysForLoad resolves a Load's node set: the union of the vertices of
// its referenced elements plus any explicitly-added node keys, in
// ascending key order. Callers (notably package wire via the RPC
// interface/movement/loading operations) rely on this order being stable
// and reproducible across calls for the same Load (spec.md §6.3, §8
// invariant 4) — ranging over the underlying set map directly would not
// give that guarantee, since Go randomizes map iteration order.
func (s *Structure) NodeKeysForLoad(loadKey int) ([]int, error) {
	l, err := s.GetLoad(loadKey)
	if err != nil {
		return nil, err
	}
	set := map[int]bool{}
	for _, ek := range l.ElementKeys() {
		e, err := s.GetElement(ek)
		if err != nil {
			return nil, err
		}
		for _, v := range e.Vertices {
			set[v] = true
		}
	}
	for _, nk := range l.ExtraNodeKeys() {
		set[nk] = true
	}
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sortInts(out)
	return out, nil
}

// ApplyLoads zeroes every node's force accumulator, then for each Load (in
// registration order) evaluates its NodeEvaluator at time t for every node
// in the load's resolved node set and accumulates the result.
func (s *Structure) ApplyLoads(t complex128) error {
	for _, n := range s.nodes {
		n.ClearForce()
	}
	for _, key := range s.loadOrder {
		l := s.loads[key]
		nodeKeys, err := s.NodeKeysForLoad(key)
		if err != nil {
			return err
		}
		for _, nk := range nodeKeys {
			n, err := s.GetNode(nk)
			if err != nil {
				return err
			}
			n.AddForce(l.Evaluator.Evaluate(t, n))
		}
	}
	return nil
}

// GeneralizedForce computes g = Σₙ Φₙᵀ·diag(a)·Fₙ ∈ ℝᴹ, the modal
// projection of active physical nodal forces. Summation order follows a
// stable iteration (sorted by node key) so the result is reproducible
// bit-for-bit given identical inputs (spec.md §8 invariant 4).
func (s *Structure) GeneralizedForce() *mat.VecDense {
	g := mat.NewVecDense(s.numModes, nil)
	for _, key := range s.sortedNodeKeys() {
		n := s.nodes[key]
		g.AddVec(g, n.GeneralizedForce(s.active))
	}
	return g
}

func (s *Structure) sortedNodeKeys() []int {
	keys := make([]int, 0, len(s.nodes))
	for k := range s.nodes {
		keys = append(keys, k)
	}
	sortInts(keys)
	return keys
}

// sortInts sorts small int slices in place by insertion sort: node/load
// node-set counts are small (per-job structural models), and this keeps
// the package free of a sort import solely for deterministic iteration
// order.
func sortInts(keys []int) {
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
}
