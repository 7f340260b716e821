package mesh

import "gonum.org/v1/gonum/spatial/r3"

// Translate returns a copy of the mesh moved by delta.
func (m Mesh) Translate(delta r3.Vec) Mesh {
	out := make(Mesh, len(m))
	for i, t := range m {
		for j, v := range t {
			out[i][j] = r3.Add(v, delta)
		}
	}
	return out
}

// Rotate returns a copy of the mesh rotated by alpha radians about the
// line through point in the direction of axis. Winding order is
// preserved, so a watertight mesh stays watertight.
func (m Mesh) Rotate(alpha float64, axis, point r3.Vec) Mesh {
	rot := r3.NewRotation(alpha, axis)
	out := make(Mesh, len(m))
	for i, t := range m {
		for j, v := range t {
			out[i][j] = r3.Add(point, rot.Rotate(r3.Sub(v, point)))
		}
	}
	return out
}
