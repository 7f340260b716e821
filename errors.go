package interlock

import "errors"

// Precondition violations are fatal to the generation call and propagate
// unchanged; quantization degeneracy is not an error (see Result).
var (
	// ErrNoCutFace reports that no vertices lie within tolerance of the
	// cut plane, signalling a malformed or non-planar cut.
	ErrNoCutFace = errors.New("interlock: no vertices on the cut plane")
	// ErrBadTaper reports a zero or negative taper angle, which has no
	// defined dovetail geometry.
	ErrBadTaper = errors.New("interlock: taper angle must be positive")
	// ErrNonManifold reports a boolean result that failed the
	// watertightness sanity check. Further features must not be stacked
	// on corrupted topology, so the generation call aborts.
	ErrNonManifold = errors.New("interlock: boolean result is not watertight")
)
