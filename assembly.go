package interlock

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/KitchNasty02/CustomInterlockResearch/csg"
	"github.com/KitchNasty02/CustomInterlockResearch/mesh"
)

// Result is the outcome of one interlock generation call.
type Result struct {
	Left, Right mesh.Mesh
	// Plan and Extent report the layout that was applied, for
	// diagnostics and testing.
	Plan   PlacementPlan
	Extent QuantizedExtent
	// Degenerate is set when no feature fits the available extent after
	// wall avoidance. The input meshes pass through untouched and no
	// boolean call is issued. It usually means the avoidance distance or
	// layer counts are too large for the part, so callers should surface
	// it as a warning rather than ignore it.
	Degenerate bool
}

// Generate adds the interlock family described by p along the cut seam
// of the two halves. The left half must carry its cut face at its
// maximum X coordinate, the right half at its minimum, as produced by
// Split.
//
// The boolean assembly folds over the placement plan: each step consumes
// the previous mesh pair and produces a new one, alternating which half
// receives the protrusion. Even placements add the feature to the left
// half and cut it from the right; odd placements are turned 180 degrees
// about the vertical line through their centroid (inverting the taper
// for dovetail families) and keyed the other way. After the last
// placement both halves get an unconditional repair pass.
//
// Any failure aborts the whole call: errors from cut-face analysis and
// layout propagate unchanged, and a boolean result that comes back empty
// stops the fold at its placement index. Engines implementing
// csg.ExactEngine additionally have every result checked for
// watertightness, since further features must not be stacked on
// corrupted topology; approximate re-meshing engines are exempt because
// their output fails an exact edge-pairing check by construction.
func Generate(eng csg.Engine, rep csg.Repairer, prof Profile, p Params, left, right mesh.Mesh) (Result, error) {
	if eng == nil || rep == nil {
		return Result{}, errors.New("interlock: nil boolean engine or repairer")
	}
	if !prof.valid() {
		return Result{}, fmt.Errorf("interlock: invalid printer profile %+v", prof)
	}
	p = p.withDefaults(prof)
	if err := p.validate(); err != nil {
		return Result{}, err
	}
	if left.IsEmpty() || right.IsEmpty() {
		return Result{}, errors.New("interlock: empty mesh half")
	}

	face, err := SplitFace(left)
	if err != nil {
		return Result{}, err
	}
	lay, err := planLayout(prof, p, face)
	if err != nil {
		return Result{}, err
	}

	res := Result{Left: left, Right: right, Plan: lay.plan, Extent: lay.extent}
	if len(lay.plan) == 0 {
		res.Degenerate = true
		return res, nil
	}

	tmpl := NewTemplateCache().solid(lay.key)
	if p.Kind == Dovetail3D && p.Inverted {
		// Large face protrudes past the cut plane instead of the small
		// one. The template is Y-symmetric, so this only mirrors X.
		tmpl = tmpl.Rotate(math.Pi, r3.Vec{Z: 1}, r3.Vec{})
	}
	planeX := left.Bounds().Max.X
	exact := engineExact(eng)

	for i, pl := range lay.plan {
		prim := lay.place(tmpl, planeX, pl)
		if pl.Role == RoleLeft {
			if res.Left, err = boolStep(i, "left union", exact)(eng.Union(res.Left, prim)); err != nil {
				return Result{}, err
			}
			if res.Right, err = boolStep(i, "right difference", exact)(eng.Difference(res.Right, prim)); err != nil {
				return Result{}, err
			}
		} else {
			if res.Left, err = boolStep(i, "left difference", exact)(eng.Difference(res.Left, prim)); err != nil {
				return Result{}, err
			}
			if res.Right, err = boolStep(i, "right union", exact)(eng.Union(res.Right, prim)); err != nil {
				return Result{}, err
			}
		}
	}

	res.Left, res.Right, err = repairPair(rep, res.Left, res.Right)
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

// featureLayout is the fully resolved layout for one generation call.
type featureLayout struct {
	extent QuantizedExtent
	plan   PlacementPlan
	key    templateKey
	// crossCenter centers the primitive on the axis perpendicular to the
	// layout axis within the cut face.
	crossCenter float64
	axis        Axis
	kind        Kind
}

// planLayout resolves the feature sizing and placement sequence for a
// defaults-resolved Params against the analyzed cut face. A wall
// avoidance that consumes the whole face yields a zero extent and nil
// plan, not an error.
func planLayout(prof Profile, p Params, face CutFaceBounds) (featureLayout, error) {
	region := face.inset(p.Avoidance)
	lay := featureLayout{axis: p.Axis, kind: p.Kind}
	if region.Width <= 0 || region.Height <= 0 {
		return lay, nil
	}

	switch p.Kind {
	case Beam:
		depth := float64(p.DepthLayers) * prof.NozzleSize
		if p.Axis == AxisY {
			pitch := float64(p.WidthLayers) * prof.LayerHeight
			lay.extent = QuantizeExtent(region.Width, pitch)
			center := face.MinY + face.Width/2
			start := center - lay.extent.Physical/2
			lay.plan = PlanPlacements(start, start+lay.extent.Physical, pitch)
			lay.key = templateKey{kind: Beam, width: pitch, height: region.Height, depth: depth}
			lay.crossCenter = face.MinZ + face.Height/2
			break
		}
		pitch := float64(p.HeightLayers) * prof.LayerHeight
		lay.extent = QuantizeExtent(region.Height, pitch)
		center := face.MinZ + face.Height/2
		start := center - lay.extent.Physical/2
		lay.plan = PlanPlacements(start, start+lay.extent.Physical, pitch)
		lay.key = templateKey{kind: Beam, width: region.Width, height: pitch, depth: depth}
		lay.crossCenter = face.MinY + face.Width/2

	case Dovetail:
		small := float64(p.HeightLayers) * prof.LayerHeight
		large, _, err := SolveTaper(small, p.TaperAngle, prof)
		if err != nil {
			return lay, err
		}
		lay.extent = QuantizeExtent(region.Height, small)
		center := face.MinZ + face.Height/2
		start := center - lay.extent.Physical/2
		// The large face, not the small one, consumes the layout axis:
		// step by it so alternately-turned wedges nest instead of
		// overlapping.
		lay.plan = PlanPlacements(start, start+lay.extent.Physical, large)
		lay.key = templateKey{
			kind:   Dovetail,
			width:  region.Width,
			height: small, height2: large,
			// Only half of the wedge crosses into the other half.
			depth: 2 * float64(p.DepthLayers) * prof.NozzleSize,
		}
		lay.crossCenter = face.MinY + face.Width/2

	case Dovetail3D:
		smallZ := float64(p.HeightLayers) * prof.LayerHeight
		smallY := region.Width * p.WidthFraction
		largeZ, _, err := SolveTaper(smallZ, p.TaperAngleZ, prof)
		if err != nil {
			return lay, fmt.Errorf("z axis: %w", err)
		}
		largeY, _, err := SolveTaperFrom(smallY, smallZ, p.TaperAngleY, prof)
		if err != nil {
			return lay, fmt.Errorf("y axis: %w", err)
		}
		lay.extent = QuantizeExtent(region.Height, smallZ)
		center := face.MinZ + face.Height/2
		start := center - lay.extent.Physical/2
		lay.plan = PlanPlacements(start, start+lay.extent.Physical, largeZ)
		lay.key = templateKey{
			kind:  Dovetail3D,
			width: smallY, width2: largeY,
			height: smallZ, height2: largeZ,
			depth: 2 * float64(p.DepthLayers) * prof.NozzleSize,
		}
		lay.crossCenter = face.MinY + face.Width/2
	}
	return lay, nil
}

// place copies the template into world coordinates for one placement.
// Beams alternate sides of the cut plane by a half depth; dovetail
// families straddle the plane and odd placements turn 180 degrees about
// the vertical line through their centroid so the taper inverts.
func (lay featureLayout) place(tmpl mesh.Mesh, planeX float64, pl Placement) mesh.Mesh {
	odd := pl.Role == RoleRight
	if lay.kind == Beam {
		off := lay.key.depth / 2
		if odd {
			off = -off
		}
		if lay.axis == AxisY {
			return tmpl.Translate(r3.Vec{X: planeX + off, Y: pl.Position, Z: lay.crossCenter})
		}
		return tmpl.Translate(r3.Vec{X: planeX + off, Y: lay.crossCenter, Z: pl.Position})
	}
	prim := tmpl.Translate(r3.Vec{X: planeX, Y: lay.crossCenter, Z: pl.Position})
	if odd {
		prim = prim.Rotate(math.Pi, r3.Vec{Z: 1}, prim.Centroid())
	}
	return prim
}

// engineExact reports whether eng promises exact boolean topology.
func engineExact(eng csg.Engine) bool {
	e, ok := eng.(csg.ExactEngine)
	return ok && e.Exact()
}

// boolStep wraps one boolean engine call with the sanity checks the
// fold relies on: the call must succeed and produce geometry, and an
// exact engine must keep the watertight invariant.
func boolStep(placement int, op string, exact bool) func(mesh.Mesh, error) (mesh.Mesh, error) {
	return func(m mesh.Mesh, err error) (mesh.Mesh, error) {
		switch {
		case err != nil:
			return nil, fmt.Errorf("interlock: placement %d: %s: %w", placement, op, err)
		case m.IsEmpty():
			return nil, fmt.Errorf("interlock: placement %d: %s returned an empty mesh", placement, op)
		case exact && !m.Watertight():
			return nil, fmt.Errorf("placement %d: %s: %w", placement, op, ErrNonManifold)
		}
		return m, nil
	}
}

// Split halves a watertight mesh at its volume-centroid X coordinate.
func Split(eng csg.Engine, rep csg.Repairer, m mesh.Mesh) (left, right mesh.Mesh, err error) {
	if m.IsEmpty() {
		return nil, nil, errors.New("interlock: cannot split an empty mesh")
	}
	return SplitAt(eng, rep, m, m.Centroid().X)
}

// SplitAt halves a mesh at the plane x = planeX. The left half keeps
// x < planeX, the right half x >= planeX; both are repaired before
// returning. The cut is realized by differencing and intersecting
// against an oversized cutter box covering everything beyond the plane.
func SplitAt(eng csg.Engine, rep csg.Repairer, m mesh.Mesh, planeX float64) (left, right mesh.Mesh, err error) {
	if eng == nil || rep == nil {
		return nil, nil, errors.New("interlock: nil boolean engine or repairer")
	}
	if m.IsEmpty() {
		return nil, nil, errors.New("interlock: cannot split an empty mesh")
	}
	bb := m.Bounds()
	size := r3.Sub(bb.Max, bb.Min)
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		return nil, nil, fmt.Errorf("interlock: mesh is flat, bounds %+v", bb)
	}
	c := r3.Scale(0.5, r3.Add(bb.Min, bb.Max))
	cutter := mesh.Box(r3.Vec{X: 2 * size.X, Y: 2 * size.Y, Z: 2 * size.Z}).
		Translate(r3.Vec{X: planeX + size.X, Y: c.Y, Z: c.Z})

	left, err = eng.Difference(m, cutter)
	if err != nil {
		return nil, nil, fmt.Errorf("interlock: split left half: %w", err)
	}
	right, err = eng.Intersection(m, cutter)
	if err != nil {
		return nil, nil, fmt.Errorf("interlock: split right half: %w", err)
	}
	return repairPair(rep, left, right)
}

func repairPair(rep csg.Repairer, left, right mesh.Mesh) (mesh.Mesh, mesh.Mesh, error) {
	var err error
	for _, half := range []struct {
		name string
		m    *mesh.Mesh
	}{{"left", &left}, {"right", &right}} {
		if *half.m, err = rep.FillHoles(*half.m); err != nil {
			return nil, nil, fmt.Errorf("interlock: fill holes in %s half: %w", half.name, err)
		}
		if *half.m, err = rep.FixNormals(*half.m); err != nil {
			return nil, nil, fmt.Errorf("interlock: fix normals in %s half: %w", half.name, err)
		}
	}
	return left, right, nil
}
