package interlock

import (
	"fmt"
	"math"

	"github.com/KitchNasty02/CustomInterlockResearch/mesh"
)

// CutFaceBounds is the bounding box of the planar cut face projected
// onto the in-plane axes Y and Z.
type CutFaceBounds struct {
	// Width and Height are the Y and Z extents of the face.
	Width  float64
	Height float64

	MinY, MaxY float64
	MinZ, MaxZ float64
}

// inset shrinks the bounds by d on every side, keeping features away
// from the outer part surface. The result can be inverted (negative
// extents) when d consumes the whole face; callers quantize that to an
// empty plan.
func (b CutFaceBounds) inset(d float64) CutFaceBounds {
	b.MinY += d
	b.MaxY -= d
	b.MinZ += d
	b.MaxZ -= d
	b.Width = b.MaxY - b.MinY
	b.Height = b.MaxZ - b.MinZ
	return b
}

// planeTol is the absolute distance within which a vertex counts as
// lying on the cut plane.
const planeTol = 1e-5

// SplitFace locates the planar cut face of a left mesh half, which lies
// at the half's maximum X coordinate, and returns its projected bounds.
func SplitFace(m mesh.Mesh) (CutFaceBounds, error) {
	if m.IsEmpty() {
		return CutFaceBounds{}, fmt.Errorf("%w: empty mesh", ErrNoCutFace)
	}
	return SplitFaceAt(m, m.Bounds().Max.X)
}

// SplitFaceAt returns the bounds of the cut face at the plane x = planeX.
// Vertices farther than the plane tolerance are ignored; if none remain
// the cut is malformed or non-planar and ErrNoCutFace is returned.
func SplitFaceAt(m mesh.Mesh, planeX float64) (CutFaceBounds, error) {
	var b CutFaceBounds
	found := false
	for _, t := range m {
		for _, v := range t {
			if math.Abs(v.X-planeX) >= planeTol {
				continue
			}
			if !found {
				b.MinY, b.MaxY = v.Y, v.Y
				b.MinZ, b.MaxZ = v.Z, v.Z
				found = true
				continue
			}
			b.MinY = math.Min(b.MinY, v.Y)
			b.MaxY = math.Max(b.MaxY, v.Y)
			b.MinZ = math.Min(b.MinZ, v.Z)
			b.MaxZ = math.Max(b.MaxZ, v.Z)
		}
	}
	if !found {
		return CutFaceBounds{}, fmt.Errorf("%w: plane x=%g", ErrNoCutFace, planeX)
	}
	b.Width = b.MaxY - b.MinY
	b.Height = b.MaxZ - b.MinZ
	return b, nil
}
