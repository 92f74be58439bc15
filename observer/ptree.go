// Copyright the yamss-go authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package observer

import (
	"github.com/cpmech/gosl/io"

	"github.com/dynasolve/yamss/eom"
	"github.com/dynasolve/yamss/structure"
)

// Ptree writes the full per-node physical state (displacement, velocity,
// acceleration) nested under a per-step heading, a denser alternative to
// Motion for callers that want every node's full 6-DoF response instead
// of a flat per-node line.
type Ptree struct {
	FileName string

	lines  []string
	outDir string
}

// NewPtree returns a Ptree observer writing to fileName (default
// "ptree.txt").
func NewPtree(fileName string) *Ptree {
	if fileName == "" {
		fileName = "ptree.txt"
	}
	return &Ptree{FileName: fileName}
}

func (o *Ptree) Initialize(e *eom.EOM, s *structure.Structure, outDir string) error {
	o.outDir = outDir
	o.record(e, s)
	return nil
}

func (o *Ptree) Update(e *eom.EOM, s *structure.Structure) error {
	o.record(e, s)
	return nil
}

func (o *Ptree) record(e *eom.EOM, s *structure.Structure) {
	cur := e.Current()
	o.lines = append(o.lines, io.Sf("step=%d t=%v", cur.Step, real(cur.Time)))
	for _, n := range s.Nodes() {
		x := n.PhysicalDisplacement(cur.Q)
		v := n.PhysicalDisplacement(cur.Qdot)
		a := n.PhysicalDisplacement(cur.Qddt)
		o.lines = append(o.lines, io.Sf("  node %d: x=%v v=%v a=%v", n.Key, x, v, a))
	}
}

func (o *Ptree) Finalize(*eom.EOM, *structure.Structure) error {
	return io.WriteFileSD(o.outDir, o.FileName, io.Sf("%s\n", join(o.lines)))
}

func (o *Ptree) Files() map[string]bool { return map[string]bool{o.FileName: true} }
