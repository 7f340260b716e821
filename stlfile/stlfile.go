// Package stlfile loads and saves triangle meshes as STL files.
// Parsing and serialization are delegated to github.com/hschendel/stl,
// which handles both the binary and ASCII encodings.
package stlfile

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/hschendel/stl"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/KitchNasty02/CustomInterlockResearch/mesh"
)

// Load reads an STL file. Vertices holding NaN or infinite components
// are rejected: they poison every downstream bounds and boolean
// computation.
func Load(path string) (mesh.Mesh, error) {
	solid, err := stl.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("stlfile: read %s: %w", path, err)
	}
	m := make(mesh.Mesh, len(solid.Triangles))
	for i, t := range solid.Triangles {
		for j, v := range t.Vertices {
			if !finite(v) {
				return nil, fmt.Errorf("stlfile: %s: non-finite vertex in triangle %d", path, i)
			}
			m[i][j] = r3.Vec{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
		}
	}
	return m, nil
}

// Save writes the mesh to path as binary STL. Facet normals are
// recomputed from the triangle winding; degenerate triangles get a zero
// normal, as permitted by the format.
func Save(path string, m mesh.Mesh) error {
	if len(m) == 0 {
		return fmt.Errorf("stlfile: refusing to write empty mesh to %s", path)
	}
	solid := stl.Solid{Triangles: make([]stl.Triangle, len(m))}
	for i, t := range m {
		var st stl.Triangle
		n := t.Normal()
		if norm := r3.Norm(n); norm > 0 {
			n = r3.Scale(1/norm, n)
			st.Normal = stl.Vec3{float32(n.X), float32(n.Y), float32(n.Z)}
		}
		for j, v := range t {
			st.Vertices[j] = stl.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
		}
		solid.Triangles[i] = st
	}
	if err := solid.WriteFile(path); err != nil {
		return fmt.Errorf("stlfile: write %s: %w", path, err)
	}
	return nil
}

func finite(v stl.Vec3) bool {
	return !(math32.IsNaN(v[0]) || math32.IsInf(v[0], 0) ||
		math32.IsNaN(v[1]) || math32.IsInf(v[1], 0) ||
		math32.IsNaN(v[2]) || math32.IsInf(v[2], 0))
}
