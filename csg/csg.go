// Package csg defines the boundary between the interlock generator and
// its external solid-modeling collaborators: the boolean engine and the
// mesh repair pass. The core drives these interfaces and never depends
// on a particular backend.
package csg

import "github.com/KitchNasty02/CustomInterlockResearch/mesh"

// Engine performs boolean set operations on closed triangle meshes.
//
// Every operand must be watertight and consistently wound; results on
// malformed input are undefined. Calls are synchronous and
// non-cancellable: the engine is assumed to terminate. Operations on
// identical inputs are deterministic, so callers never retry.
type Engine interface {
	// Union returns the solid covered by at least one operand.
	Union(m ...mesh.Mesh) (mesh.Mesh, error)
	// Difference returns the first operand minus all following operands.
	Difference(m ...mesh.Mesh) (mesh.Mesh, error)
	// Intersection returns the solid covered by every operand.
	Intersection(m ...mesh.Mesh) (mesh.Mesh, error)
}

// ExactEngine is optionally implemented by engines whose boolean results
// preserve closed topology exactly. Callers police watertightness only
// on such engines: approximate backends that re-mesh their results may
// emit degenerate edges and unshared vertices that an exact edge-pairing
// check would reject even though the solid is sound.
type ExactEngine interface {
	Engine
	// Exact reports whether results keep the operands' topology exact.
	Exact() bool
}

// Repairer is a best-effort cleanup pass applied after boolean assembly.
// Neither operation guarantees success; both must be idempotent and safe
// to call on already-clean meshes.
type Repairer interface {
	// FillHoles closes boundary gaps introduced by numerical imprecision.
	FillHoles(m mesh.Mesh) (mesh.Mesh, error)
	// FixNormals rewinds triangles so normals face consistently outward.
	FixNormals(m mesh.Mesh) (mesh.Mesh, error)
}
