// Copyright the yamss-go authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package observer

import (
	"github.com/cpmech/gosl/io"

	"github.com/dynasolve/yamss/eom"
	"github.com/dynasolve/yamss/structure"
)

// Motion writes the physical-space displacement time history (mode
// superposition via Node.PhysicalDisplacement) for a chosen set of nodes,
// one line per step, appended across Update calls and flushed at
// Finalize.
type Motion struct {
	FileName string
	NodeKeys []int // empty means every node in the structure

	lines  []string
	outDir string
}

// NewMotion returns a Motion observer writing to fileName (default
// "motion.txt"). If nodeKeys is empty, every structure node is recorded.
func NewMotion(fileName string, nodeKeys []int) *Motion {
	if fileName == "" {
		fileName = "motion.txt"
	}
	return &Motion{FileName: fileName, NodeKeys: nodeKeys}
}

func (o *Motion) Initialize(e *eom.EOM, s *structure.Structure, outDir string) error {
	o.lines = nil
	o.outDir = outDir
	return o.record(e, s)
}

func (o *Motion) Update(e *eom.EOM, s *structure.Structure) error {
	return o.record(e, s)
}

func (o *Motion) record(e *eom.EOM, s *structure.Structure) error {
	cur := e.Current()
	keys := o.NodeKeys
	if len(keys) == 0 {
		for _, n := range s.Nodes() {
			keys = append(keys, n.Key)
		}
	}
	for _, key := range keys {
		n, err := s.GetNode(key)
		if err != nil {
			return err
		}
		x := n.PhysicalDisplacement(cur.Q)
		o.lines = append(o.lines, io.Sf("step=%d t=%v node=%d x=%v", cur.Step, real(cur.Time), key, x))
	}
	return nil
}

func (o *Motion) Finalize(*eom.EOM, *structure.Structure) error {
	return io.WriteFileSD(o.outDir, o.FileName, io.Sf("%s\n", join(o.lines)))
}

func (o *Motion) Files() map[string]bool { return map[string]bool{o.FileName: true} }
