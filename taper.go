package interlock

import (
	"fmt"
	"math"
)

// SolveTaper derives the large-end dimension of a tapered feature from
// its small end and taper angle. The large end grows by one taper delta
// per side and is then snapped to the nearest layer-height multiple
// (two decimals) so the printed feature lands on whole layers. Snapping
// never shrinks the large end below the small end.
//
// The computation is pure: identical inputs produce bit-identical
// results, which placement templates rely on.
func SolveTaper(small, angleDeg float64, prof Profile) (large, delta float64, err error) {
	return SolveTaperFrom(small, small, angleDeg, prof)
}

// SolveTaperFrom is SolveTaper with the taper run taken from ref instead
// of small. The 3D dovetail widens its Y faces over the feature's Z
// height, so its Y large end grows by the Z small height times the Y
// angle's tangent, not by its own (much larger) width.
func SolveTaperFrom(small, ref, angleDeg float64, prof Profile) (large, delta float64, err error) {
	if angleDeg <= 0 {
		return 0, 0, fmt.Errorf("%w: got %g degrees", ErrBadTaper, angleDeg)
	}
	if small <= 0 || ref <= 0 {
		return 0, 0, fmt.Errorf("interlock: taper dimensions %g and %g must be positive", small, ref)
	}
	if !prof.valid() {
		return 0, 0, fmt.Errorf("interlock: invalid printer profile %+v", prof)
	}
	delta = ref * math.Tan(angleDeg*math.Pi/180)
	factor := math.Round((small + 2*delta) / prof.LayerHeight)
	large = round(factor*prof.LayerHeight, 2)
	if large < small {
		// A shallow taper can snap below the small end; take the next
		// layer up instead so the frustum stays a frustum.
		large = round((factor+1)*prof.LayerHeight, 2)
	}
	return large, delta, nil
}
