// Copyright the yamss-go authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package observer implements the stateless Observer contract (spec.md
// §4.5): initialize/update/finalize callbacks driven by Runner, plus the
// concrete output writers recognized by the config factory.
package observer

import (
	"github.com/dynasolve/yamss/eom"
	"github.com/dynasolve/yamss/structure"
)

// Observer never mutates eom or structure; each callback reads from
// eom.Current() only — the current step.
type Observer interface {
	Initialize(e *eom.EOM, s *structure.Structure, outDir string) error
	Update(e *eom.EOM, s *structure.Structure) error
	Finalize(e *eom.EOM, s *structure.Structure) error
	// Files returns the set of output files this observer declares,
	// relative to the out-directory passed to Initialize.
	Files() map[string]bool
}

// Type discriminates the observer variants recognized by the config
// factory (spec.md §6.1 outputs.output[*].type).
type Type string

const (
	TypeModes   Type = "modes"
	TypeMotion  Type = "motion"
	TypePoint   Type = "point"
	TypePtree   Type = "ptree"
	TypeSummary Type = "summary"
)
