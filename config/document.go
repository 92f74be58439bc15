// Copyright the yamss-go authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config implements the external input-document reader (spec.md
// §6.1): an XML tree unmarshaled with the standard library's
// encoding/xml into tagged structs, the same shape of concern the
// teacher's inp package meets with encoding/json for its own (.sim)
// documents — stdlib decoding against a tag-annotated struct tree is the
// pattern this package keeps, not the JSON encoding itself.
package config

import "encoding/xml"

// Document is the root of an input document (spec.md §6.1). Build rejects
// a document whose Modes section declares no mode. Every other section,
// Solution included, may be omitted: a missing Solution is not rejected,
// and Build then uses a Newmark-β integrator with the Runner's default
// time step and final time.
type Document struct {
	XMLName   xml.Name        `xml:"yamss"`
	Solution  SolutionSection `xml:"solution"`
	Structure StructureSection `xml:"structure"`
	Modes     ModesSection    `xml:"modes"`
	EOM       EOMSection      `xml:"eom"`
	Loads     LoadsSection    `xml:"loads"`
	Outputs   OutputsSection  `xml:"outputs"`
}

// SolutionSection configures the integrator and the time span of a run.
type SolutionSection struct {
	Method MethodSpec `xml:"method"`
	Time   TimeSpec   `xml:"time"`
	Dofs   *DofsSpec  `xml:"dofs"`
}

// MethodSpec names the integrator type and its parameters.
type MethodSpec struct {
	Type       string          `xml:"type,attr"`
	Parameters []ParamSpec     `xml:"parameters>param"`
}

// TimeSpec gives the fixed time step and final time of a run.
type TimeSpec struct {
	Step float64 `xml:"step"`
	Span float64 `xml:"span"`
}

// DofsSpec toggles which of the six physical DoFs participate in modal
// projection; presence of an element activates the named DoF, absence
// deactivates it (spec.md §6.1).
type DofsSpec struct {
	X *struct{} `xml:"x"`
	Y *struct{} `xml:"y"`
	Z *struct{} `xml:"z"`
	P *struct{} `xml:"p"`
	Q *struct{} `xml:"q"`
	R *struct{} `xml:"r"`
}

// ParamSpec is a single named parameter, the document-level unit that
// config/build.go turns into a gosl/fun/dbf.Params entry. Value is kept
// as text since a parameter may name a number, a file path, or a load
// evaluator kind depending on context; callers parse it as needed.
type ParamSpec struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// StructureSection describes the geometric model: nodes, topological
// elements, and bilinear-patched grids that expand into QUAD meshes.
type StructureSection struct {
	Nodes    []NodeSpec    `xml:"nodes>node"`
	Elements ElementsSpec  `xml:"elements"`
	Grids    []GridSpec    `xml:"grids>grid"`
}

// NodeSpec is one structure.nodes.node[*] entry: a key and a 6-DoF
// position.
type NodeSpec struct {
	ID int     `xml:"id,attr"`
	X  float64 `xml:"x,attr"`
	Y  float64 `xml:"y,attr"`
	Z  float64 `xml:"z,attr"`
	P  float64 `xml:"p,attr"`
	Q  float64 `xml:"q,attr"`
	R  float64 `xml:"r,attr"`
}

func (n NodeSpec) position() [6]float64 { return [6]float64{n.X, n.Y, n.Z, n.P, n.Q, n.R} }

// ElementsSpec groups the four shapes an input document can declare
// directly (grids expand into further QUADs at build time).
type ElementsSpec struct {
	Points    []ElementSpec `xml:"point"`
	Lines     []ElementSpec `xml:"line"`
	Triangles []ElementSpec `xml:"tria"`
	Quads     []ElementSpec `xml:"quad"`
}

// ElementSpec is one topological element: a key and its ordered vertex
// (node) keys, attribute-named v0..v3 to stay flat in XML.
type ElementSpec struct {
	ID int    `xml:"id,attr"`
	V0 *int   `xml:"v0,attr"`
	V1 *int   `xml:"v1,attr"`
	V2 *int   `xml:"v2,attr"`
	V3 *int   `xml:"v3,attr"`
}

func (e ElementSpec) vertices() []int {
	var out []int
	for _, v := range []*int{e.V0, e.V1, e.V2, e.V3} {
		if v != nil {
			out = append(out, *v)
		}
	}
	return out
}

// GridSpec is a bilinear-patched grid: 4 corner node keys plus (u,v)
// resolutions, expanding to a regular mesh of QUAD elements
// (config.ExpandGrid, a supplemented feature).
type GridSpec struct {
	ID       int `xml:"id,attr"`
	Corner00 int `xml:"corner00,attr"`
	Corner10 int `xml:"corner10,attr"`
	Corner11 int `xml:"corner11,attr"`
	Corner01 int `xml:"corner01,attr"`
	ResU     int `xml:"resu,attr"`
	ResV     int `xml:"resv,attr"`
}

// ModesSection lists the mode shapes available to every node, either
// explicitly per-node or via a parametric shape function evaluated over
// every registered node.
type ModesSection struct {
	Modes []ModeSpec `xml:"mode"`
}

// ModeSpec is one modes.mode[*] entry.
type ModeSpec struct {
	Nodes []ModeNodeSpec `xml:"nodes>node"`
	Shape *ShapeSpec     `xml:"shape"`
}

// ModeNodeSpec gives the 6-DoF mode shape of a single node.
type ModeNodeSpec struct {
	ID int     `xml:"id,attr"`
	X  float64 `xml:"x,attr"`
	Y  float64 `xml:"y,attr"`
	Z  float64 `xml:"z,attr"`
	P  float64 `xml:"p,attr"`
	Q  float64 `xml:"q,attr"`
	R  float64 `xml:"r,attr"`
}

func (n ModeNodeSpec) shape() [6]float64 { return [6]float64{n.X, n.Y, n.Z, n.P, n.Q, n.R} }

// ShapeSpec names a parametric mode-shape function evaluated over node
// position, e.g. a sinusoidal beam mode.
type ShapeSpec struct {
	Type       string      `xml:"type,attr"`
	Parameters []ParamSpec `xml:"parameters>param"`
}

// EOMSection gives the mass/damping/stiffness matrices and the initial
// modal state.
type EOMSection struct {
	Matrices           MatricesSpec           `xml:"matrices"`
	InitialConditions  InitialConditionsSpec  `xml:"initial_conditions"`
}

// MatricesSpec holds the three matrix literals (spec.md §6.1), each
// parsed by config/matrix.go.
type MatricesSpec struct {
	Mass      string `xml:"mass"`
	Damping   string `xml:"damping"`
	Stiffness string `xml:"stiffness"`
}

// InitialConditionsSpec holds the two vector literals for the first
// iterate.
type InitialConditionsSpec struct {
	Displacement string `xml:"displacement"`
	Velocity     string `xml:"velocity"`
}

// LoadsSection lists every Load in the structure.
type LoadsSection struct {
	Loads []LoadSpec `xml:"load"`
}

// LoadSpec is one loads.load[*] entry: a key, an evaluator discriminator
// ("lua" or "interface" — build.go rejects "lua" per the documented
// evaluator.Lua stub, "builtin" is accepted as a third recognized kind
// for named analytic functions), its parameters, and the elements/nodes
// it applies to.
type LoadSpec struct {
	ID         int          `xml:"id,attr"`
	Type       string       `xml:"type,attr"`
	Parameters []ParamSpec  `xml:"parameters>param"`
	Elements   LoadElements `xml:"elements"`
}

// LoadElements resolves which elements (and therefore which nodes) a
// Load applies to: either every element in the structure, a contiguous
// ID range, or an explicit list.
type LoadElements struct {
	All     *struct{}      `xml:"all"`
	Range   *ElementsRange `xml:"range"`
	Element []ElementRef   `xml:"element"`
}

// ElementsRange is an inclusive [From,To] element-key range.
type ElementsRange struct {
	From int `xml:"from,attr"`
	To   int `xml:"to,attr"`
}

// ElementRef names a single explicitly-referenced element key.
type ElementRef struct {
	ID int `xml:"id,attr"`
}

// OutputsSection lists every Observer attached to a run.
type OutputsSection struct {
	Outputs []OutputSpec `xml:"output"`
}

// OutputSpec is one outputs.output[*] entry.
type OutputSpec struct {
	Type       string      `xml:"type,attr"`
	Parameters []ParamSpec `xml:"parameters>param"`
}

func (o OutputSpec) param(name, def string) string {
	for _, p := range o.Parameters {
		if p.Name == name {
			return p.Value
		}
	}
	return def
}
