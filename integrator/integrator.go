// Copyright the yamss-go authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package integrator implements the pure step functions over an EOM and a
// Structure: Newmark-β, generalized-α, and steady-state (spec.md §4.3).
package integrator

import (
	"github.com/dynasolve/yamss/eom"
	"github.com/dynasolve/yamss/structure"
)

// Integrator advances an EOM by one step, reading the previous committed
// state from eom.Prior(1) and writing displacement, velocity,
// acceleration and force into eom.Current(). It is responsible for
// calling structure.ApplyLoads at the appropriate sub-time and storing
// structure.GeneralizedForce() as the new force. On error the current
// iterate is left exactly as Advance set it up — no partial commit.
type Integrator interface {
	StencilSize() int
	Step(e *eom.EOM, s *structure.Structure) error
}

// Type discriminates the integrator variants recognized by the config
// factory (spec.md §6.1 solution.method.type).
type Type string

const (
	TypeNewmarkBeta       Type = "newmark_beta"
	TypeGeneralizedAlpha  Type = "generalized_alpha"
	TypeSteadyState       Type = "steady_state"
)
