package interlock

import (
	"errors"
	"fmt"
)

// Kind selects the interlock feature family.
type Kind int

const (
	// Beam is a rectangular box keyed straight into the opposite half.
	Beam Kind = iota
	// Dovetail is a linear tapered wedge resisting pull-apart along the
	// layout axis.
	Dovetail
	// Dovetail3D tapers independently on both in-plane axes, resisting
	// pull-apart in every in-plane direction.
	Dovetail3D
)

func (k Kind) String() (str string) {
	switch k {
	case Beam:
		str = "beam"
	case Dovetail:
		str = "dovetail"
	case Dovetail3D:
		str = "dovetail3d"
	default:
		str = "unknown"
	}
	return str
}

// Axis selects the layout axis the features are stacked along.
type Axis int

const (
	// AxisZ stacks features vertically along the cut face.
	AxisZ Axis = iota
	// AxisY stacks features horizontally. Only beams support it.
	AxisY
)

func (a Axis) String() (str string) {
	switch a {
	case AxisZ:
		str = "Z"
	case AxisY:
		str = "Y"
	default:
		str = "unknown"
	}
	return str
}

// Params describes one interlock feature family. The zero value of every
// field selects its documented default, resolved against a Profile at
// the start of generation; Params is never modified after that.
type Params struct {
	Kind Kind
	// Axis is the layout axis. Dovetail families always lay out along Z.
	Axis Axis

	// WidthLayers, HeightLayers and DepthLayers size the feature in
	// layer-height (width, height) and nozzle-width (depth) multiples.
	// All default to 2.
	WidthLayers  int
	HeightLayers int
	DepthLayers  int

	// TaperAngle is the linear dovetail taper in degrees, default 10.
	TaperAngle float64
	// TaperAngleZ and TaperAngleY are the 3D dovetail tapers in degrees,
	// default 10 each.
	TaperAngleZ float64
	TaperAngleY float64

	// Avoidance keeps features clear of the outer part surface.
	// Defaults to the profile's nozzle size.
	Avoidance float64

	// Inverted makes the 3D dovetail protrude its large face past the
	// cut plane instead of its small face.
	Inverted bool

	// WidthFraction sizes the 3D dovetail's small width as a fraction of
	// the available cut-face width. The reference sizing rule is one
	// half; treat it as tunable until the sizing intent is settled.
	WidthFraction float64
}

func (p Params) withDefaults(prof Profile) Params {
	if p.WidthLayers == 0 {
		p.WidthLayers = 2
	}
	if p.HeightLayers == 0 {
		p.HeightLayers = 2
	}
	if p.DepthLayers == 0 {
		p.DepthLayers = 2
	}
	if p.TaperAngle == 0 {
		p.TaperAngle = 10
	}
	if p.TaperAngleZ == 0 {
		p.TaperAngleZ = 10
	}
	if p.TaperAngleY == 0 {
		p.TaperAngleY = 10
	}
	if p.Avoidance == 0 {
		p.Avoidance = prof.NozzleSize
	}
	if p.WidthFraction == 0 {
		p.WidthFraction = 0.5
	}
	return p
}

// validate checks a defaults-resolved Params.
func (p Params) validate() error {
	switch p.Kind {
	case Beam, Dovetail, Dovetail3D:
	default:
		return fmt.Errorf("interlock: unknown feature kind %d", int(p.Kind))
	}
	if p.Axis != AxisZ && p.Axis != AxisY {
		return fmt.Errorf("interlock: unknown layout axis %d", int(p.Axis))
	}
	if p.Axis == AxisY && p.Kind != Beam {
		return fmt.Errorf("interlock: %v features lay out along Z only", p.Kind)
	}
	if p.WidthLayers < 1 || p.HeightLayers < 1 || p.DepthLayers < 1 {
		return errors.New("interlock: layer counts must be at least 1")
	}
	if p.Avoidance < 0 {
		return fmt.Errorf("interlock: avoidance distance %g must not be negative", p.Avoidance)
	}
	switch p.Kind {
	case Dovetail:
		if p.TaperAngle <= 0 {
			return fmt.Errorf("%w: got %g degrees", ErrBadTaper, p.TaperAngle)
		}
	case Dovetail3D:
		if p.TaperAngleZ <= 0 || p.TaperAngleY <= 0 {
			return fmt.Errorf("%w: got %g (Z) and %g (Y) degrees", ErrBadTaper, p.TaperAngleZ, p.TaperAngleY)
		}
		if p.WidthFraction <= 0 || p.WidthFraction > 1 {
			return fmt.Errorf("interlock: width fraction %g outside (0, 1]", p.WidthFraction)
		}
	}
	return nil
}
