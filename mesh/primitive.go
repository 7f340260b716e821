package mesh

import "gonum.org/v1/gonum/spatial/r3"

// Interlock primitive solids. All primitives are closed, outward-wound
// 12-triangle polyhedra centered at the origin with the depth axis along
// X, which is the split axis of the interlock pipeline.

// Box returns an axis-aligned box with the given extents.
// Box panics if any extent is not positive.
func Box(size r3.Vec) Mesh {
	return Frustum(size.Y, size.Z, size.Y, size.Z, size.X)
}

// Dovetail returns the linear dovetail solid: an isosceles trapezoid
// cross-section in the XZ plane (parallel sides smallH at +X and largeH
// at -X, separated by depth) extruded along Y by width.
// Dovetail panics if any dimension is not positive.
func Dovetail(width, smallH, largeH, depth float64) Mesh {
	return Frustum(width, smallH, width, largeH, depth)
}

// Frustum returns a trapezoidal pyramid frustum along the X axis: the
// small face (smallY wide, smallZ tall) sits at x = +depth/2 and the
// large face (largeY, largeZ) at x = -depth/2. Both faces are
// axis-aligned rectangles centered on the X axis.
// Frustum panics if any dimension is not positive or a large dimension
// is smaller than its small counterpart.
func Frustum(smallY, smallZ, largeY, largeZ, depth float64) Mesh {
	switch {
	case smallY <= 0 || smallZ <= 0 || depth <= 0:
		panic("mesh: frustum dimensions must be positive")
	case largeY < smallY || largeZ < smallZ:
		panic("mesh: frustum large face must not be smaller than small face")
	}
	var (
		// large face, x = -depth/2
		l0 = r3.Vec{X: -depth / 2, Y: -largeY / 2, Z: -largeZ / 2}
		l1 = r3.Vec{X: -depth / 2, Y: largeY / 2, Z: -largeZ / 2}
		l2 = r3.Vec{X: -depth / 2, Y: largeY / 2, Z: largeZ / 2}
		l3 = r3.Vec{X: -depth / 2, Y: -largeY / 2, Z: largeZ / 2}
		// small face, x = +depth/2
		s0 = r3.Vec{X: depth / 2, Y: -smallY / 2, Z: -smallZ / 2}
		s1 = r3.Vec{X: depth / 2, Y: smallY / 2, Z: -smallZ / 2}
		s2 = r3.Vec{X: depth / 2, Y: smallY / 2, Z: smallZ / 2}
		s3 = r3.Vec{X: depth / 2, Y: -smallY / 2, Z: smallZ / 2}
	)
	return Mesh{
		// large face (-X out)
		{l0, l3, l2}, {l0, l2, l1},
		// small face (+X out)
		{s0, s1, s2}, {s0, s2, s3},
		// -Y side
		{l0, s0, s3}, {l0, s3, l3},
		// +Y side
		{l1, l2, s2}, {l1, s2, s1},
		// -Z side
		{l0, l1, s1}, {l0, s1, s0},
		// +Z side
		{l3, s3, s2}, {l3, s2, l2},
	}
}
