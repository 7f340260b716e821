// Package interlock generates mechanical interlocking features along the
// seam of a part that was split in two for separate printing. Features
// (rectangular beams, tapered dovetails and 3D dovetails) are laid out
// across the cut face, quantized to whole print layers, and keyed into
// the two halves through alternating boolean union and difference
// operations so the reassembled part holds together with a form fit.
//
// The split is assumed planar and perpendicular to the X axis, with the
// left half carrying its cut face at its maximum X coordinate. Boolean
// operations, mesh repair and file I/O are external collaborators; see
// the csg, csg/sdfcsg and stlfile packages.
package interlock

// Profile holds the printer settings that quantize feature sizing.
// It is threaded explicitly through every call, so several profiles can
// be evaluated side by side and tests can inject arbitrary values.
type Profile struct {
	// LayerHeight is the deposition layer thickness in mm. Feature
	// heights are constrained to whole multiples of it.
	LayerHeight float64
	// NozzleSize is the extrusion nozzle diameter in mm. Feature depths
	// and the default wall avoidance are sized in nozzle widths.
	NozzleSize float64
}

// DefaultProfile returns the Prusa 0.15 mm quality preset.
func DefaultProfile() Profile {
	return Profile{LayerHeight: 0.15, NozzleSize: 0.4}
}

func (p Profile) valid() bool {
	return p.LayerHeight > 0 && p.NozzleSize > 0
}
