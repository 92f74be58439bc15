// Copyright the yamss-go authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package observer

import (
	"math"

	"github.com/cpmech/gosl/io"

	"github.com/dynasolve/yamss/eom"
	"github.com/dynasolve/yamss/structure"
)

// Summary tracks the extrema of every modal coordinate over a run and
// writes a one-shot report at Finalize — the cheapest observer to wire up
// and a natural first thing to check after a run, mirroring the
// teacher's onexit "Success"/"CPU time" banner in spirit.
type Summary struct {
	FileName string

	steps  int
	qMin   []float64
	qMax   []float64
	outDir string
}

// NewSummary returns a Summary observer writing to fileName (default
// "summary.txt").
func NewSummary(fileName string) *Summary {
	if fileName == "" {
		fileName = "summary.txt"
	}
	return &Summary{FileName: fileName}
}

func (o *Summary) Initialize(e *eom.EOM, s *structure.Structure, outDir string) error {
	o.outDir = outDir
	m := e.NumModes()
	o.qMin = make([]float64, m)
	o.qMax = make([]float64, m)
	for i := 0; i < m; i++ {
		o.qMin[i] = math.Inf(1)
		o.qMax[i] = math.Inf(-1)
	}
	return o.record(e)
}

func (o *Summary) Update(e *eom.EOM, _ *structure.Structure) error {
	return o.record(e)
}

func (o *Summary) record(e *eom.EOM) error {
	cur := e.Current()
	o.steps++
	for i := 0; i < cur.Q.Len(); i++ {
		v := cur.Q.AtVec(i)
		if v < o.qMin[i] {
			o.qMin[i] = v
		}
		if v > o.qMax[i] {
			o.qMax[i] = v
		}
	}
	return nil
}

func (o *Summary) Finalize(e *eom.EOM, _ *structure.Structure) error {
	cur := e.Current()
	body := io.Sf("steps=%d final_time=%v\nq_min=%v\nq_max=%v\n", o.steps, real(cur.Time), o.qMin, o.qMax)
	return io.WriteFileSD(o.outDir, o.FileName, body)
}

func (o *Summary) Files() map[string]bool { return map[string]bool{o.FileName: true} }
