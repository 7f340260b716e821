// Package sdfcsg implements the csg.Engine and csg.Repairer interfaces
// on top of the github.com/soypat/sdf toolkit. Operand meshes are
// imported as signed distance fields, combined with SDF set operations
// and re-meshed with the octree marching-cubes renderer.
//
// The results are approximate: re-meshing quantizes surfaces to the
// render resolution, so sharp edges are slightly rounded and volumes
// drift by a resolution-dependent amount. For exact CSG substitute an
// engine backed by an exact kernel behind the same interface.
package sdfcsg

import (
	"errors"
	"fmt"

	"github.com/soypat/sdf"
	"github.com/soypat/sdf/helpers/sdfexp"
	"github.com/soypat/sdf/render"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/KitchNasty02/CustomInterlockResearch/csg"
	"github.com/KitchNasty02/CustomInterlockResearch/mesh"
)

// Compile-time interface checks.
var (
	_ csg.Engine      = (*Engine)(nil)
	_ csg.ExactEngine = (*Engine)(nil)
	_ csg.Repairer    = Repair{}
)

// defaultCells controls marching-cubes tessellation resolution along the
// longest bounding box axis.
const defaultCells = 200

// Engine is an SDF-backed boolean engine. Use New or NewWithResolution;
// the zero value renders at an unusably coarse resolution.
type Engine struct {
	cells int
}

// Exact reports false: marching-cubes output carries unshared vertices
// and the occasional degenerate edge, so results are sound solids but
// not exactly paired topology.
func (e *Engine) Exact() bool { return false }

// New returns an Engine at the default render resolution.
func New() *Engine { return NewWithResolution(defaultCells) }

// NewWithResolution returns an Engine that re-meshes results with the
// given number of marching-cubes cells along the longest axis.
func NewWithResolution(cells int) *Engine {
	if cells <= 0 {
		cells = defaultCells
	}
	return &Engine{cells: cells}
}

// Union returns the union of all operands.
func (e *Engine) Union(m ...mesh.Mesh) (mesh.Mesh, error) {
	if len(m) == 0 {
		return nil, errors.New("sdfcsg: union needs at least one operand")
	}
	sdfs := make([]sdf.SDF3, len(m))
	for i, op := range m {
		s, err := importMesh(op)
		if err != nil {
			return nil, fmt.Errorf("sdfcsg: union operand %d: %w", i, err)
		}
		sdfs[i] = s
	}
	return e.remesh(sdf.Union3D(sdfs...))
}

// Difference returns the first operand minus all following operands.
func (e *Engine) Difference(m ...mesh.Mesh) (mesh.Mesh, error) {
	if len(m) < 2 {
		return nil, errors.New("sdfcsg: difference needs at least two operands")
	}
	acc, err := importMesh(m[0])
	if err != nil {
		return nil, fmt.Errorf("sdfcsg: difference operand 0: %w", err)
	}
	for i, op := range m[1:] {
		s, err := importMesh(op)
		if err != nil {
			return nil, fmt.Errorf("sdfcsg: difference operand %d: %w", i+1, err)
		}
		acc = sdf.Difference3D(acc, s)
	}
	return e.remesh(acc)
}

// Intersection returns the intersection of all operands.
func (e *Engine) Intersection(m ...mesh.Mesh) (mesh.Mesh, error) {
	if len(m) < 2 {
		return nil, errors.New("sdfcsg: intersection needs at least two operands")
	}
	acc, err := importMesh(m[0])
	if err != nil {
		return nil, fmt.Errorf("sdfcsg: intersection operand 0: %w", err)
	}
	for i, op := range m[1:] {
		s, err := importMesh(op)
		if err != nil {
			return nil, fmt.Errorf("sdfcsg: intersection operand %d: %w", i+1, err)
		}
		acc = sdf.Intersect3D(acc, s)
	}
	return e.remesh(acc)
}

func importMesh(m mesh.Mesh) (sdf.SDF3, error) {
	if len(m) == 0 {
		return nil, errors.New("empty mesh")
	}
	model := make([]r3.Triangle, len(m))
	for i, t := range m {
		model[i] = r3.Triangle(t)
	}
	return sdfexp.ImportModel(model, 0)
}

func (e *Engine) remesh(s sdf.SDF3) (mesh.Mesh, error) {
	tris, err := render.RenderAll(render.NewOctreeRenderer(s, e.cells))
	if err != nil {
		return nil, fmt.Errorf("sdfcsg: remesh: %w", err)
	}
	out := make(mesh.Mesh, len(tris))
	for i, t := range tris {
		out[i] = r3.Triangle(t)
	}
	return out, nil
}

// Repair implements csg.Repairer for meshes produced by Engine.
// Marching cubes emits closed surfaces, so FillHoles has nothing to do.
type Repair struct{}

// FillHoles returns the mesh unchanged.
func (Repair) FillHoles(m mesh.Mesh) (mesh.Mesh, error) { return m, nil }

// FixNormals flips every triangle when the enclosed signed volume is
// negative, i.e. when the whole mesh winds inward. Locally inconsistent
// winding is not repaired.
func (Repair) FixNormals(m mesh.Mesh) (mesh.Mesh, error) {
	if m.Volume() < 0 {
		return m.Flipped(), nil
	}
	return m, nil
}
