package interlock

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/KitchNasty02/CustomInterlockResearch/mesh"
)

// templateKey identifies one unique primitive geometry: the feature kind
// and its fully resolved dimensions. Tapered kinds carry the large-end
// dimensions alongside the small end.
type templateKey struct {
	kind          Kind
	width, height float64 // small end for tapered kinds
	width2        float64 // large-end width, Dovetail3D only
	height2       float64 // large-end height, tapered kinds
	depth         float64
}

// TemplateCache memoizes primitive template solids by their resolved
// geometry, so trigonometric sizing and mesh construction run once per
// unique combination and every repeated placement reuses bit-identical
// geometry. Templates are immutable after construction; placements copy
// and rigidly transform them. The cache lives for one pipeline run and
// is not safe for concurrent writers.
type TemplateCache struct {
	built map[templateKey]mesh.Mesh
}

// NewTemplateCache returns an empty cache.
func NewTemplateCache() *TemplateCache {
	return &TemplateCache{built: make(map[templateKey]mesh.Mesh)}
}

// solid returns the template for k, building it on first use. The
// returned mesh is centered at the origin with depth along X: beams are
// boxes, dovetails and 3D dovetails are frusta with the small face at
// +X. Callers must not modify the result.
func (c *TemplateCache) solid(k templateKey) mesh.Mesh {
	if m, ok := c.built[k]; ok {
		return m
	}
	var m mesh.Mesh
	switch k.kind {
	case Beam:
		m = mesh.Box(r3.Vec{X: k.depth, Y: k.width, Z: k.height})
	case Dovetail:
		m = mesh.Dovetail(k.width, k.height, k.height2, k.depth)
	case Dovetail3D:
		m = mesh.Frustum(k.width, k.height, k.width2, k.height2, k.depth)
	default:
		panic("interlock: unknown feature kind " + k.kind.String())
	}
	c.built[k] = m
	return m
}
