// Package mesh provides a value-type triangle mesh used throughout the
// interlock pipeline, along with constructors for the interlock primitive
// solids.
//
// A Mesh is a flat triangle soup. All operations treat the receiver as
// immutable and return new meshes, so boolean pipelines can fold over a
// sequence of mesh values without aliasing surprises.
package mesh

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh is a triangulated solid boundary. A well formed mesh is closed,
// consistently wound with outward facing normals and free of
// self-intersections. Mesh does not enforce these properties; use
// Watertight to check the closedness part of the contract.
type Mesh []r3.Triangle

// IsEmpty reports whether the mesh has no triangles.
func (m Mesh) IsEmpty() bool { return len(m) == 0 }

// Bounds returns the axis-aligned bounding box of the mesh.
// The zero box is returned for an empty mesh.
func (m Mesh) Bounds() r3.Box {
	if len(m) == 0 {
		return r3.Box{}
	}
	bb := r3.Box{Min: m[0][0], Max: m[0][0]}
	for _, t := range m {
		for _, v := range t {
			bb.Min = minElem(bb.Min, v)
			bb.Max = maxElem(bb.Max, v)
		}
	}
	return bb
}

// Volume returns the signed volume enclosed by the mesh, computed by
// summing signed tetrahedra against the origin. The result is positive
// when triangles wind outward and meaningless for open meshes.
func (m Mesh) Volume() float64 {
	var v float64
	for _, t := range m {
		v += r3.Dot(t[0], r3.Cross(t[1], t[2]))
	}
	return v / 6
}

// Centroid returns the volume centroid of the enclosed solid. For an
// empty mesh or one enclosing zero volume the zero vector is returned.
func (m Mesh) Centroid() r3.Vec {
	var c r3.Vec
	var vol float64
	for _, t := range m {
		// Tetrahedron (origin, t0, t1, t2): signed volume weight and
		// centroid at the vertex average.
		v := r3.Dot(t[0], r3.Cross(t[1], t[2]))
		vol += v
		c = r3.Add(c, r3.Scale(v/4, r3.Add(t[0], r3.Add(t[1], t[2]))))
	}
	if vol == 0 {
		return r3.Vec{}
	}
	return r3.Scale(1/vol, c)
}

// Watertight reports whether every edge is shared by exactly two
// triangles of opposite orientation, which is the closedness half of the
// manifold contract boolean engines require. Vertex positions are
// compared exactly, so meshes whose adjoining triangles do not share
// bit-identical vertices are reported as open.
func (m Mesh) Watertight() bool {
	if len(m) == 0 {
		return false
	}
	edges := make(map[[2]r3.Vec]int, 3*len(m))
	for _, t := range m {
		for i := 0; i < 3; i++ {
			a, b := t[i], t[(i+1)%3]
			if a == b {
				return false // degenerate edge
			}
			edges[[2]r3.Vec{a, b}]++
		}
	}
	for e, n := range edges {
		if n != 1 || edges[[2]r3.Vec{e[1], e[0]}] != 1 {
			return false
		}
	}
	return true
}

// Flipped returns a copy of the mesh with every triangle's winding
// reversed, negating the enclosed signed volume.
func (m Mesh) Flipped() Mesh {
	out := make(Mesh, len(m))
	for i, t := range m {
		out[i] = r3.Triangle{t[0], t[2], t[1]}
	}
	return out
}

func minElem(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
}

func maxElem(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}
