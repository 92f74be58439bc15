// Copyright the yamss-go authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package observer

import (
	"github.com/cpmech/gosl/io"

	"github.com/dynasolve/yamss/eom"
	"github.com/dynasolve/yamss/structure"
)

// Modes writes the structure's mode-shape matrices, once, at
// initialization: a static description of the modal basis, not a time
// history (it never writes anything at Update).
type Modes struct {
	FileName string
	lines    []string
}

// NewModes returns a Modes observer that writes to fileName (default
// "modes.txt" if empty).
func NewModes(fileName string) *Modes {
	if fileName == "" {
		fileName = "modes.txt"
	}
	return &Modes{FileName: fileName}
}

func (o *Modes) Initialize(e *eom.EOM, s *structure.Structure, outDir string) error {
	o.lines = append(o.lines, io.Sf("modes=%d nodes=%d", e.NumModes(), s.NumNodes()))
	for _, n := range s.Nodes() {
		rows, cols := n.Modes.Dims()
		o.lines = append(o.lines, io.Sf("node %d modes(%dx%d):", n.Key, rows, cols))
		for i := 0; i < rows; i++ {
			row := make([]float64, cols)
			for j := 0; j < cols; j++ {
				row[j] = n.Modes.At(i, j)
			}
			o.lines = append(o.lines, io.Sf("  %v", row))
		}
	}
	return io.WriteFileSD(outDir, o.FileName, io.Sf("%s\n", join(o.lines)))
}

func (o *Modes) Update(*eom.EOM, *structure.Structure) error { return nil }

func (o *Modes) Finalize(*eom.EOM, *structure.Structure) error { return nil }

func (o *Modes) Files() map[string]bool { return map[string]bool{o.FileName: true} }

func join(lines []string) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}
