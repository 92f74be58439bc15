// Copyright the yamss-go authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package runner orchestrates initialize → step* → finalize over a shared
// EOM, Structure and Integrator, calling registered Observers along the
// way (spec.md §4.4). Runner exclusively owns its EOM, Structure,
// Integrator and observer list.
package runner

import (
	"github.com/cpmech/gosl/io"

	"github.com/dynasolve/yamss/eom"
	"github.com/dynasolve/yamss/integrator"
	"github.com/dynasolve/yamss/observer"
	"github.com/dynasolve/yamss/structure"
)

// Runner is not safe for concurrent use: within one job the entire step
// pipeline runs on a single goroutine (spec.md §5). Multiple jobs may run
// concurrently. Neither job.Registry nor rpc.Service serializes operations
// on the same job, so concurrent calls that reach one Runner are not
// synchronized.
type Runner struct {
	EOM        *eom.EOM
	Structure  *structure.Structure
	Integrator integrator.Integrator

	dt        float64
	finalTime complex128
	observers []observer.Observer
	outDir    string
}

// New returns a Runner over the given EOM/Structure/Integrator, with the
// reference defaults Δt=0.01 and final time=1.0.
func New(e *eom.EOM, s *structure.Structure, it integrator.Integrator) *Runner {
	return &Runner{
		EOM:        e,
		Structure:  s,
		Integrator: it,
		dt:         0.01,
		finalTime:  complex(1.0, 0),
	}
}

// SetTimeStep / SetFinalTime override the run's Δt and final time.
func (r *Runner) SetTimeStep(dt float64)            { r.dt = dt }
func (r *Runner) SetFinalTime(t complex128)         { r.finalTime = t }
func (r *Runner) TimeStep() float64                 { return r.dt }
func (r *Runner) FinalTime() complex128             { return r.finalTime }
func (r *Runner) AddObserver(o observer.Observer)    { r.observers = append(r.observers, o) }
func (r *Runner) Observers() []observer.Observer     { return r.observers }

// Initialize evaluates loads at t=0, sets iterate[0].force to the
// generalized force, computes the initial acceleration, and notifies
// every observer (spec.md §4.4).
func (r *Runner) Initialize(outDir string) error {
	r.outDir = outDir
	cur := r.EOM.Current()
	if err := r.Structure.ApplyLoads(cur.Time); err != nil {
		return err
	}
	cur.F.CopyVec(r.Structure.GeneralizedForce())
	if err := r.EOM.ComputeAcceleration(); err != nil {
		return err
	}
	for _, o := range r.observers {
		if err := o.Initialize(r.EOM, r.Structure, outDir); err != nil {
			return err
		}
	}
	return nil
}

// Advance shifts the EOM ring by Δt without solving — the first half of
// Step, exposed on its own for the co-simulation façade (spec.md §4.4,
// §4.6).
func (r *Runner) Advance() { r.EOM.Advance(r.dt) }

// Subiterate runs the integrator once over the current EOM/Structure
// state without advancing the ring first — the second half of Step,
// exposed on its own so an external coupler can re-solve the same time
// station after injecting new co-simulation forces.
func (r *Runner) Subiterate() error {
	return r.Integrator.Step(r.EOM, r.Structure)
}

// Step performs one full time step: Advance, Subiterate, then notify
// every observer of the committed state.
func (r *Runner) Step() error {
	r.Advance()
	if err := r.Subiterate(); err != nil {
		return err
	}
	for _, o := range r.observers {
		if err := o.Update(r.EOM, r.Structure); err != nil {
			return err
		}
	}
	return nil
}

// StepN performs n full steps, stopping at the first error.
func (r *Runner) StepN(n int) error {
	for i := 0; i < n; i++ {
		if err := r.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Finalize notifies every observer that the run has ended.
func (r *Runner) Finalize() error {
	for _, o := range r.observers {
		if err := o.Finalize(r.EOM, r.Structure); err != nil {
			return err
		}
	}
	return nil
}

// Run steps until the real part of the current time reaches FinalTime —
// preserving the reference's convention of ordering a possibly-complex
// clock by its real part only (spec.md §9).
func (r *Runner) Run() error {
	for real(r.EOM.Current().Time) < real(r.finalTime) {
		if err := r.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Files returns the union of every observer's declared output files —
// used by the RPC façade to decide which files to transport back
// (spec.md §4.4).
func (r *Runner) Files() map[string]bool {
	out := map[string]bool{}
	for _, o := range r.observers {
		for f := range o.Files() {
			out[f] = true
		}
	}
	return out
}

// Report prints the current step's time and modal state, mirroring the
// teacher's debug_print_*_results helpers in fem/fem.go.
func (r *Runner) Report() {
	cur := r.EOM.Current()
	io.Pf("step=%d time=%v q=%v\n", cur.Step, real(cur.Time), cur.Q.RawVector().Data)
}
