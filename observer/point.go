// Copyright the yamss-go authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package observer

import (
	"github.com/cpmech/gosl/io"

	"github.com/dynasolve/yamss/eom"
	"github.com/dynasolve/yamss/structure"
)

// Point records the physical displacement time history of a single node
// — the narrow case of Motion restricted to exactly one node key, broken
// out as its own observer type because spec.md §6.1 recognizes "point"
// and "motion" as distinct output kinds.
type Point struct {
	FileName string
	NodeKey  int

	lines  []string
	outDir string
}

// NewPoint returns a Point observer tracking nodeKey, writing to fileName
// (default "point.txt").
func NewPoint(fileName string, nodeKey int) *Point {
	if fileName == "" {
		fileName = "point.txt"
	}
	return &Point{FileName: fileName, NodeKey: nodeKey}
}

func (o *Point) Initialize(e *eom.EOM, s *structure.Structure, outDir string) error {
	o.outDir = outDir
	return o.record(e, s)
}

func (o *Point) Update(e *eom.EOM, s *structure.Structure) error {
	return o.record(e, s)
}

func (o *Point) record(e *eom.EOM, s *structure.Structure) error {
	n, err := s.GetNode(o.NodeKey)
	if err != nil {
		return err
	}
	cur := e.Current()
	x := n.PhysicalDisplacement(cur.Q)
	o.lines = append(o.lines, io.Sf("t=%v x=%v", real(cur.Time), x))
	return nil
}

func (o *Point) Finalize(*eom.EOM, *structure.Structure) error {
	return io.WriteFileSD(o.outDir, o.FileName, io.Sf("%s\n", join(o.lines)))
}

func (o *Point) Files() map[string]bool { return map[string]bool{o.FileName: true} }
