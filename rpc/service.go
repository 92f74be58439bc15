// Copyright the yamss-go authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"github.com/dynasolve/yamss/config"
	"github.com/dynasolve/yamss/evaluator"
	"github.com/dynasolve/yamss/job"
	"github.com/dynasolve/yamss/runner"
	"github.com/dynasolve/yamss/structure"
	"github.com/dynasolve/yamss/wire"
	"github.com/dynasolve/yamss/yerr"
)

// JobKey re-exports job.Key, the opaque handle every operation below
// (other than Create/RunJob) addresses.
type JobKey = job.Key

// Create mints a new job from the input document at url and returns its
// key.
func (s *Service) Create(url string) (JobKey, error) {
	key, err := s.registry.Create(url)
	return key, newFault(err)
}

// Release drops the job registered under key.
func (s *Service) Release(key JobKey) {
	s.registry.Release(key)
}

func (s *Service) run(key JobKey, fn func(*runner.Runner) error) error {
	return guard(func() error {
		r, err := s.registry.Get(key)
		if err != nil {
			return err
		}
		return fn(r)
	})
}

// Initialize runs Runner.Initialize for key, staging output under the
// job's working directory.
func (s *Service) Initialize(key JobKey) error {
	return s.run(key, func(r *runner.Runner) error {
		dir, err := s.registry.WorkDir(key)
		if err != nil {
			return err
		}
		return r.Initialize(dir)
	})
}

// Step performs one full time step.
func (s *Service) Step(key JobKey) error {
	return s.run(key, func(r *runner.Runner) error { return r.Step() })
}

// StepN performs n full time steps.
func (s *Service) StepN(key JobKey, n int) error {
	return s.run(key, func(r *runner.Runner) error { return r.StepN(n) })
}

// Advance shifts the EOM ring without solving, the co-simulation half-step
// primitive (spec.md §4.6).
func (s *Service) Advance(key JobKey) error {
	return s.run(key, func(r *runner.Runner) error { r.Advance(); return nil })
}

// Subiterate runs the integrator once without advancing the ring first.
func (s *Service) Subiterate(key JobKey) error {
	return s.run(key, func(r *runner.Runner) error { return r.Subiterate() })
}

// Report prints the current step's modal state to the console.
func (s *Service) Report(key JobKey) error {
	return s.run(key, func(r *runner.Runner) error { r.Report(); return nil })
}

// Finalize notifies every observer that the run has ended.
func (s *Service) Finalize(key JobKey) error {
	return s.run(key, func(r *runner.Runner) error { return r.Finalize() })
}

// Run steps until the configured final time and pushes declared output
// files back to the job's origin URL.
func (s *Service) Run(key JobKey) error {
	if err := s.run(key, func(r *runner.Runner) error { return r.Run() }); err != nil {
		return err
	}
	return newFault(s.registry.PushOutputs(key))
}

// RunJob creates a job from url, initializes, runs to completion,
// finalizes, pushes outputs, and releases it — the one-shot convenience
// operation spec.md §6.2 names alongside the step-by-step primitives.
func (s *Service) RunJob(url string) error {
	key, err := s.Create(url)
	if err != nil {
		return err
	}
	defer s.Release(key)
	if err := s.Initialize(key); err != nil {
		return err
	}
	if err := s.run(key, func(r *runner.Runner) error { return r.Run() }); err != nil {
		return err
	}
	if err := s.Finalize(key); err != nil {
		return err
	}
	return newFault(s.registry.PushOutputs(key))
}

// SetFinalTime overrides the configured final time for key.
func (s *Service) SetFinalTime(key JobKey, t complex128) error {
	return s.run(key, func(r *runner.Runner) error { r.SetFinalTime(t); return nil })
}

// GetActiveDofs returns the 6-element active-DoF mask.
func (s *Service) GetActiveDofs(key JobKey) (mask [structure.NumDofs]bool, err error) {
	err = s.run(key, func(r *runner.Runner) error {
		mask = r.Structure.ActiveDofs()
		return nil
	})
	return
}

// GetNumberOfActiveDofs returns the count of active DoFs.
func (s *Service) GetNumberOfActiveDofs(key JobKey) (n int, err error) {
	err = s.run(key, func(r *runner.Runner) error { n = r.Structure.NumActiveDofs(); return nil })
	return
}

// GetNumberOfNodes returns the number of registered nodes.
func (s *Service) GetNumberOfNodes(key JobKey) (n int, err error) {
	err = s.run(key, func(r *runner.Runner) error { n = r.Structure.NumNodes(); return nil })
	return
}

// GetTime returns the current committed time.
func (s *Service) GetTime(key JobKey) (t complex128, err error) {
	err = s.run(key, func(r *runner.Runner) error { t = r.EOM.Current().Time; return nil })
	return
}

// GetTimeStep returns the configured Δt.
func (s *Service) GetTimeStep(key JobKey) (dt float64, err error) {
	err = s.run(key, func(r *runner.Runner) error { dt = r.TimeStep(); return nil })
	return
}

// GetFinalTime returns the configured final time.
func (s *Service) GetFinalTime(key JobKey) (t complex128, err error) {
	err = s.run(key, func(r *runner.Runner) error { t = r.FinalTime(); return nil })
	return
}

// ModeShape is one node's contribution to the modal basis, addressed by
// node key, for GetModes.
type ModeShape struct {
	NodeKey int
	Shapes  [][structure.NumDofs]float64 // one row per mode
}

// GetModes returns every node's mode-shape matrix.
func (s *Service) GetModes(key JobKey) (shapes []ModeShape, err error) {
	err = s.run(key, func(r *runner.Runner) error {
		for _, n := range r.Structure.Nodes() {
			rows, cols := n.Modes.Dims()
			rowShapes := make([][structure.NumDofs]float64, rows)
			for i := 0; i < rows; i++ {
				for j := 0; j < cols; j++ {
					rowShapes[i][j] = n.Modes.At(i, j)
				}
			}
			shapes = append(shapes, ModeShape{NodeKey: n.Key, Shapes: rowShapes})
		}
		return nil
	})
	return
}

// NodeInfo is the DTO returned by GetNode.
type NodeInfo struct {
	Key      int
	Position [structure.NumDofs]float64
	Force    [structure.NumDofs]float64
}

// GetNode returns position/force for nodeKey.
func (s *Service) GetNode(key JobKey, nodeKey int) (info NodeInfo, err error) {
	err = s.run(key, func(r *runner.Runner) error {
		n, err := r.Structure.GetNode(nodeKey)
		if err != nil {
			return err
		}
		info = NodeInfo{Key: n.Key, Position: n.Position, Force: n.Force}
		return nil
	})
	return
}

// State is the DTO returned by GetState: the full modal snapshot of the
// current iterate.
type State struct {
	Step              int
	Time              complex128
	Q, Qdot, Qddt, F  []float64
}

// GetState returns the current iterate's modal state.
func (s *Service) GetState(key JobKey) (st State, err error) {
	err = s.run(key, func(r *runner.Runner) error {
		cur := r.EOM.Current()
		st = State{
			Step: cur.Step,
			Time: cur.Time,
			Q:    append([]float64{}, cur.Q.RawVector().Data...),
			Qdot: append([]float64{}, cur.Qdot.RawVector().Data...),
			Qddt: append([]float64{}, cur.Qddt.RawVector().Data...),
			F:    append([]float64{}, cur.F.RawVector().Data...),
		}
		return nil
	})
	return
}

// Interface is the static topology of an interface Load's node set, the
// wire-layout description a co-simulation coupler needs once before it
// starts exchanging per-step state (spec.md §6.3).
type Interface struct {
	NodeKeys        []int
	Active          [structure.NumDofs]bool
	NodeCoordinates []float64 // flat, DoF-major node-minor (translations only populate x,y,z)
	ElementTypes    []int
	ElementVertices []int
}

// GetInterface returns the node/element topology backing loadKey.
func (s *Service) GetInterface(key JobKey, loadKey int) (out Interface, err error) {
	err = s.run(key, func(r *runner.Runner) error {
		st := r.Structure
		nodeKeys, err := st.NodeKeysForLoad(loadKey)
		if err != nil {
			return err
		}
		active := st.ActiveDofs()
		values := make([][structure.NumDofs]float64, len(nodeKeys))
		for i, nk := range nodeKeys {
			n, err := st.GetNode(nk)
			if err != nil {
				return err
			}
			values[i] = n.Position
		}
		load, err := st.GetLoad(loadKey)
		if err != nil {
			return err
		}
		var types, vertices []int
		for _, ek := range load.ElementKeys() {
			e, err := st.GetElement(ek)
			if err != nil {
				return err
			}
			types = append(types, int(e.Shape))
			vertices = append(vertices, e.Vertices...)
		}
		out = Interface{
			NodeKeys:        nodeKeys,
			Active:          active,
			NodeCoordinates: wire.Flatten(active, values),
			ElementTypes:    types,
			ElementVertices: vertices,
		}
		return nil
	})
	return
}

// Movement is the per-step kinematic state of an interface Load's node
// set (spec.md §6.3): flat, DoF-major node-minor arrays in the same
// NodeKeys order GetInterface returned.
type Movement struct {
	Displacements, Velocities, Accelerations []float64
}

// GetMovement returns the current displacement/velocity/acceleration of
// loadKey's node set.
func (s *Service) GetMovement(key JobKey, loadKey int) (out Movement, err error) {
	err = s.run(key, func(r *runner.Runner) error {
		st := r.Structure
		nodeKeys, err := st.NodeKeysForLoad(loadKey)
		if err != nil {
			return err
		}
		active := st.ActiveDofs()
		cur := r.EOM.Current()
		disp := make([][structure.NumDofs]float64, len(nodeKeys))
		vel := make([][structure.NumDofs]float64, len(nodeKeys))
		acc := make([][structure.NumDofs]float64, len(nodeKeys))
		for i, nk := range nodeKeys {
			n, err := st.GetNode(nk)
			if err != nil {
				return err
			}
			disp[i] = n.PhysicalDisplacement(cur.Q)
			vel[i] = n.PhysicalDisplacement(cur.Qdot)
			acc[i] = n.PhysicalDisplacement(cur.Qddt)
		}
		out = Movement{
			Displacements: wire.Flatten(active, disp),
			Velocities:    wire.Flatten(active, vel),
			Accelerations: wire.Flatten(active, acc),
		}
		return nil
	})
	return
}

// SetLoading writes forces (flat, DoF-major node-minor, over loadKey's
// node set in NodeKeysForLoad order) into loadKey's Interface evaluator.
// Fails with a ConfigError-kind Fault if loadKey's evaluator is not an
// Interface.
func (s *Service) SetLoading(key JobKey, loadKey int, forces []float64) error {
	return s.run(key, func(r *runner.Runner) error {
		st := r.Structure
		nodeKeys, err := st.NodeKeysForLoad(loadKey)
		if err != nil {
			return err
		}
		active := st.ActiveDofs()
		values := wire.Unflatten(active, len(nodeKeys), forces)
		return st.WithInterfaceEvaluator(loadKey, func(ev structure.NodeEvaluator) error {
			iface, ok := ev.(*evaluator.Interface)
			if !ok {
				return yerr.New(yerr.ConfigError, "rpc.set_loading", "load %d is not an interface evaluator", loadKey)
			}
			for i, nk := range nodeKeys {
				iface.Set(nk, values[i])
			}
			return nil
		})
	})
}

// builderFor adapts config.Build to job.Builder, kept here (rather than
// in package job) so job never imports config and stays agnostic of the
// XML document format.
func builderFor() job.Builder { return config.Build }
