// Copyright the yamss-go authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"encoding/xml"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/dynasolve/yamss/eom"
	"github.com/dynasolve/yamss/evaluator"
	"github.com/dynasolve/yamss/integrator"
	"github.com/dynasolve/yamss/observer"
	"github.com/dynasolve/yamss/runner"
	"github.com/dynasolve/yamss/structure"
	"github.com/dynasolve/yamss/yerr"
)

// Read unmarshals the input document at path. It is exported separately
// from Build so callers (and tests) can inspect a parsed Document without
// constructing a full Runner.
func Read(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, yerr.Wrap(yerr.ConfigError, "config.read", err)
	}
	var doc Document
	if err := xml.Unmarshal(b, &doc); err != nil {
		return nil, yerr.Wrap(yerr.ConfigError, "config.read", err)
	}
	return &doc, nil
}

// Build parses the input document at path and constructs the Runner it
// describes. Its signature matches job.Builder, the core's only contract
// with this package (spec.md §6.1): nothing outside config imports
// encoding/xml.
func Build(path string) (*runner.Runner, error) {
	doc, err := Read(path)
	if err != nil {
		return nil, err
	}
	return build(doc)
}

func build(doc *Document) (*runner.Runner, error) {
	m := len(doc.Modes.Modes)
	if m == 0 {
		return nil, yerr.New(yerr.ConfigError, "config.build", "modes section must declare at least one mode")
	}

	it, err := buildIntegrator(doc.Solution.Method)
	if err != nil {
		return nil, err
	}

	s := structure.New(m)
	if doc.Solution.Dofs != nil {
		applyDofMask(s, doc.Solution.Dofs)
	}

	if err := buildNodes(s, doc.Structure.Nodes); err != nil {
		return nil, err
	}
	if err := buildElements(s, doc.Structure.Elements); err != nil {
		return nil, err
	}
	nextElementKey, nextNodeKey := nextKeys(doc)
	if err := buildGrids(s, doc.Structure.Grids, &nextElementKey, &nextNodeKey); err != nil {
		return nil, err
	}
	if err := buildModes(s, doc.Modes.Modes); err != nil {
		return nil, err
	}
	if err := buildLoads(s, doc.Loads.Loads); err != nil {
		return nil, err
	}

	e, err := buildEOM(m, it.StencilSize(), doc.EOM)
	if err != nil {
		return nil, err
	}

	r := runner.New(e, s, it)
	if doc.Solution.Time.Step > 0 {
		r.SetTimeStep(doc.Solution.Time.Step)
	}
	if doc.Solution.Time.Span > 0 {
		r.SetFinalTime(complex(doc.Solution.Time.Span, 0))
	}

	for _, out := range doc.Outputs.Outputs {
		o, err := buildObserver(out)
		if err != nil {
			return nil, err
		}
		r.AddObserver(o)
	}

	return r, nil
}

// nextKeys returns keys strictly greater than every explicitly-declared
// node/element key, the starting point for grid-generated nodes/elements
// so they never collide with document-declared ones.
func nextKeys(doc *Document) (nextElement, nextNode int) {
	for _, n := range doc.Structure.Nodes {
		if n.ID >= nextNode {
			nextNode = n.ID + 1
		}
	}
	for _, list := range [][]ElementSpec{doc.Structure.Elements.Points, doc.Structure.Elements.Lines, doc.Structure.Elements.Triangles, doc.Structure.Elements.Quads} {
		for _, e := range list {
			if e.ID >= nextElement {
				nextElement = e.ID + 1
			}
		}
	}
	return nextElement, nextNode
}

func buildIntegrator(spec MethodSpec) (integrator.Integrator, error) {
	switch integrator.Type(spec.Type) {
	case integrator.TypeNewmarkBeta, "":
		nb := integrator.NewNewmarkBeta()
		if v, ok := paramFloat(spec.Parameters, "beta"); ok {
			nb.Beta = v
		}
		if v, ok := paramFloat(spec.Parameters, "gamma"); ok {
			nb.Gamma = v
		}
		return nb, nil
	case integrator.TypeGeneralizedAlpha:
		ga := integrator.NewGeneralizedAlpha()
		if v, ok := paramFloat(spec.Parameters, "alpha_m"); ok {
			ga.AlphaM = v
		}
		if v, ok := paramFloat(spec.Parameters, "alpha_f"); ok {
			ga.AlphaF = v
		}
		if v, ok := paramFloat(spec.Parameters, "beta"); ok {
			ga.Beta = v
		}
		if v, ok := paramFloat(spec.Parameters, "gamma"); ok {
			ga.Gamma = v
		}
		return ga, nil
	case integrator.TypeSteadyState:
		return integrator.NewSteadyState(), nil
	default:
		return nil, yerr.New(yerr.ConfigError, "config.build_integrator", "unknown method type %q", spec.Type)
	}
}

func applyDofMask(s *structure.Structure, spec *DofsSpec) {
	for d := 0; d < structure.NumDofs; d++ {
		s.DeactivateDof(d)
	}
	if spec.X != nil {
		s.ActivateDof(0)
	}
	if spec.Y != nil {
		s.ActivateDof(1)
	}
	if spec.Z != nil {
		s.ActivateDof(2)
	}
	if spec.P != nil {
		s.ActivateDof(3)
	}
	if spec.Q != nil {
		s.ActivateDof(4)
	}
	if spec.R != nil {
		s.ActivateDof(5)
	}
}

func buildNodes(s *structure.Structure, specs []NodeSpec) error {
	for _, spec := range specs {
		n, err := s.AddNode(spec.ID)
		if err != nil {
			return err
		}
		n.Position = spec.position()
	}
	return nil
}

func buildElements(s *structure.Structure, specs ElementsSpec) error {
	groups := []struct {
		shape structure.Shape
		list  []ElementSpec
	}{
		{structure.Point, specs.Points},
		{structure.Line, specs.Lines},
		{structure.Triangle, specs.Triangles},
		{structure.Quad, specs.Quads},
	}
	for _, g := range groups {
		for _, e := range g.list {
			if _, err := s.AddElement(e.ID, g.shape, e.vertices()); err != nil {
				return err
			}
		}
	}
	return nil
}

func buildGrids(s *structure.Structure, specs []GridSpec, nextElementKey, nextNodeKey *int) error {
	for _, g := range specs {
		c00, err := cornerPosition(s, g.Corner00)
		if err != nil {
			return err
		}
		c10, err := cornerPosition(s, g.Corner10)
		if err != nil {
			return err
		}
		c11, err := cornerPosition(s, g.Corner11)
		if err != nil {
			return err
		}
		c01, err := cornerPosition(s, g.Corner01)
		if err != nil {
			return err
		}
		resU, resV := g.ResU, g.ResV
		if resU <= 0 {
			resU = 1
		}
		if resV <= 0 {
			resV = 1
		}
		positions, quads := ExpandGrid(c00, c10, c11, c01, resU, resV)
		keys := make([]int, len(positions))
		for i, p := range positions {
			key := *nextNodeKey
			*nextNodeKey++
			n, err := s.AddNode(key)
			if err != nil {
				return err
			}
			n.Position = [structure.NumDofs]float64{p[0], p[1], p[2], 0, 0, 0}
			keys[i] = key
		}
		for _, q := range quads {
			key := *nextElementKey
			*nextElementKey++
			vertices := []int{keys[q[0]], keys[q[1]], keys[q[2]], keys[q[3]]}
			if _, err := s.AddElement(key, structure.Quad, vertices); err != nil {
				return err
			}
		}
	}
	return nil
}

func cornerPosition(s *structure.Structure, nodeKey int) ([3]float64, error) {
	n, err := s.GetNode(nodeKey)
	if err != nil {
		return [3]float64{}, err
	}
	return [3]float64{n.Position[0], n.Position[1], n.Position[2]}, nil
}

func buildModes(s *structure.Structure, specs []ModeSpec) error {
	for i, spec := range specs {
		if spec.Shape != nil {
			if err := buildModeFromShape(s, i, *spec.Shape); err != nil {
				return err
			}
			continue
		}
		for _, ns := range spec.Nodes {
			n, err := s.GetNode(ns.ID)
			if err != nil {
				return err
			}
			n.SetMode(i, ns.shape())
		}
	}
	return nil
}

func buildModeFromShape(s *structure.Structure, mode int, spec ShapeSpec) error {
	prms := toParams(spec.Parameters)
	f, err := fun.New(spec.Type, prms)
	if err != nil {
		return yerr.Wrap(yerr.ConfigError, "config.build_mode", err)
	}
	for _, n := range s.Nodes() {
		x := n.Position[:3]
		var shape [structure.NumDofs]float64
		shape[0] = f.F(0, x)
		n.SetMode(mode, shape)
	}
	return nil
}

func buildLoads(s *structure.Structure, specs []LoadSpec) error {
	for _, spec := range specs {
		ev, err := buildEvaluator(spec)
		if err != nil {
			return err
		}
		load, err := s.AddLoad(spec.ID, ev)
		if err != nil {
			return err
		}
		if err := resolveLoadElements(s, load, spec.Elements); err != nil {
			return err
		}
	}
	return nil
}

func resolveLoadElements(s *structure.Structure, load *structure.Load, spec LoadElements) error {
	switch {
	case spec.All != nil:
		for _, e := range s.Elements() {
			load.AddElement(e.Key)
		}
	case spec.Range != nil:
		for _, e := range s.Elements() {
			if e.Key >= spec.Range.From && e.Key <= spec.Range.To {
				load.AddElement(e.Key)
			}
		}
	default:
		for _, ref := range spec.Element {
			load.AddElement(ref.ID)
		}
	}
	return nil
}

func buildEvaluator(spec LoadSpec) (structure.NodeEvaluator, error) {
	switch spec.Type {
	case string(evaluator.TypeInterface):
		return evaluator.NewInterface(), nil
	case string(evaluator.TypeBuiltin), "":
		return buildBuiltin(spec.Parameters)
	case string(evaluator.TypeLua):
		return nil, yerr.New(yerr.ConfigError, "config.build_evaluator", "lua load evaluators are not implemented")
	default:
		return nil, yerr.New(yerr.ConfigError, "config.build_evaluator", "unknown load type %q", spec.Type)
	}
}

var amplitudeNames = [structure.NumDofs]string{"fx", "fy", "fz", "fp", "fq", "fr"}

func buildBuiltin(params []ParamSpec) (*evaluator.Builtin, error) {
	kind, _ := paramString(params, "kind")
	if kind == "" {
		kind = "cte"
	}
	var amps [structure.NumDofs]float64
	for d, name := range amplitudeNames {
		if v, ok := paramFloat(params, name); ok {
			amps[d] = v
		}
	}
	base := dbf.Params{}
	for _, p := range params {
		if p.Name == "kind" || isAmplitudeName(p.Name) {
			continue
		}
		v, err := strconv.ParseFloat(p.Value, 64)
		if err != nil {
			return nil, yerr.Wrap(yerr.ConfigError, "config.build_builtin", err)
		}
		base = append(base, &dbf.P{N: p.Name, V: v})
	}

	var kinds [structure.NumDofs]string
	var prms [structure.NumDofs]dbf.Params
	for d := 0; d < structure.NumDofs; d++ {
		if amps[d] == 0 {
			kinds[d] = "zero"
			continue
		}
		kinds[d] = kind
		dofParams := dbf.Params{&dbf.P{N: "c", V: amps[d]}}
		dofParams = append(dofParams, base...)
		prms[d] = dofParams
	}
	return evaluator.NewBuiltin(kinds, prms)
}

func isAmplitudeName(name string) bool {
	for _, n := range amplitudeNames {
		if n == name {
			return true
		}
	}
	return false
}

func buildEOM(m, stencil int, spec EOMSection) (*eom.EOM, error) {
	e := eom.New(m, stencil)
	mass, err := parseMatrix(spec.Matrices.Mass, m)
	if err != nil {
		return nil, err
	}
	damping, err := parseMatrix(spec.Matrices.Damping, m)
	if err != nil {
		return nil, err
	}
	stiffness, err := parseMatrix(spec.Matrices.Stiffness, m)
	if err != nil {
		return nil, err
	}
	e.Mass = mass
	e.Damping = damping
	e.Stiffness = stiffness

	q, err := parseVector(spec.InitialConditions.Displacement, m)
	if err != nil {
		return nil, err
	}
	qdot, err := parseVector(spec.InitialConditions.Velocity, m)
	if err != nil {
		return nil, err
	}
	e.Current().Q.CopyVec(q)
	e.Current().Qdot.CopyVec(qdot)
	return e, nil
}

func buildObserver(spec OutputSpec) (observer.Observer, error) {
	file := spec.param("file", "")
	switch observer.Type(spec.Type) {
	case observer.TypeModes:
		return observer.NewModes(file), nil
	case observer.TypeMotion:
		return observer.NewMotion(file, parseNodeList(spec.param("nodes", ""))), nil
	case observer.TypePoint:
		key, _ := strconv.Atoi(spec.param("node", "0"))
		return observer.NewPoint(file, key), nil
	case observer.TypePtree:
		return observer.NewPtree(file), nil
	case observer.TypeSummary:
		return observer.NewSummary(file), nil
	default:
		return nil, yerr.New(yerr.ConfigError, "config.build_observer", "unknown output type %q", spec.Type)
	}
}

func parseNodeList(s string) []int {
	fields := strings.Fields(s)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		if v, err := strconv.Atoi(f); err == nil {
			out = append(out, v)
		}
	}
	return out
}

func paramFloat(params []ParamSpec, name string) (float64, bool) {
	for _, p := range params {
		if p.Name == name {
			v, err := strconv.ParseFloat(p.Value, 64)
			if err != nil {
				return 0, false
			}
			return v, true
		}
	}
	return 0, false
}

func paramString(params []ParamSpec, name string) (string, bool) {
	for _, p := range params {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

func toParams(specs []ParamSpec) dbf.Params {
	out := make(dbf.Params, 0, len(specs))
	for _, p := range specs {
		v, err := strconv.ParseFloat(p.Value, 64)
		if err != nil {
			continue
		}
		out = append(out, &dbf.P{N: p.Name, V: v})
	}
	return out
}
