// Copyright the yamss-go authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package structure

import "math"

// vec3 is a translational 3-vector, used only by the geometry helpers
// below (position DoFs 0,1,2 of a Node).
type vec3 [3]float64

func sub(a, b vec3) vec3 { return vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }

func cross(a, b vec3) vec3 {
	return vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func dot(a, b vec3) float64 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

func norm(a vec3) float64 { return math.Sqrt(dot(a, a)) }

func (s *Structure) translations(key int) (vec3, error) {
	n, err := s.GetNode(key)
	if err != nil {
		return vec3{}, err
	}
	return vec3{n.Position[0], n.Position[1], n.Position[2]}, nil
}

// Normal returns the unit normal of an element: the cross product of
// edges v0→v1 and v0→v(n-1), using translational components only. For
// elements with fewer than 3 vertices the default normal is +z, since a
// point or line has no well-defined plane.
//
// spec.md §9 leaves the nonplanar-quad case unspecified; this
// implementation always uses only the first and last edges from vertex 0,
// so a nonplanar QUAD's normal depends on vertex ordering alone — callers
// should not assume it is meaningful for warped quads.
func (s *Structure) Normal(elementKey int) ([3]float64, error) {
	e, err := s.GetElement(elementKey)
	if err != nil {
		return [3]float64{}, err
	}
	if len(e.Vertices) < 3 {
		return [3]float64{0, 0, 1}, nil
	}
	v0, err := s.translations(e.Vertices[0])
	if err != nil {
		return [3]float64{}, err
	}
	v1, err := s.translations(e.Vertices[1])
	if err != nil {
		return [3]float64{}, err
	}
	vn, err := s.translations(e.Vertices[len(e.Vertices)-1])
	if err != nil {
		return [3]float64{}, err
	}
	n := cross(sub(v1, v0), sub(vn, v0))
	l := norm(n)
	if l == 0 {
		return [3]float64{0, 0, 1}, nil
	}
	return [3]float64{n[0] / l, n[1] / l, n[2] / l}, nil
}

// Area returns the signed planar area of an element: 0.5·normal·Σᵢ vᵢ×vᵢ₊₁
// over the (cyclically-closed) vertex loop, using translational
// components only. Elements with fewer than 3 vertices have zero area.
func (s *Structure) Area(elementKey int) (float64, error) {
	e, err := s.GetElement(elementKey)
	if err != nil {
		return 0, err
	}
	if len(e.Vertices) < 3 {
		return 0, nil
	}
	normal, err := s.Normal(elementKey)
	if err != nil {
		return 0, err
	}
	n := len(e.Vertices)
	verts := make([]vec3, n)
	for i, vk := range e.Vertices {
		v, err := s.translations(vk)
		if err != nil {
			return 0, err
		}
		verts[i] = v
	}
	var sum vec3
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		c := cross(verts[i], verts[j])
		sum[0] += c[0]
		sum[1] += c[1]
		sum[2] += c[2]
	}
	return 0.5 * dot(vec3(normal), sum), nil
}
