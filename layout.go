package interlock

// Role selects which mesh half receives the protruding feature of a
// placement; the other half receives the matching recess.
type Role int

const (
	// RoleLeft protrudes from the left half into the right.
	RoleLeft Role = iota
	// RoleRight protrudes from the right half into the left.
	RoleRight
)

func (r Role) String() (str string) {
	switch r {
	case RoleLeft:
		str = "left"
	case RoleRight:
		str = "right"
	default:
		str = "unknown"
	}
	return str
}

// Placement is one feature position along the layout axis.
type Placement struct {
	Position float64
	Role     Role
}

// PlacementPlan is the ordered sequence of placements spanning the
// quantized pattern extent. Roles alternate by index parity starting
// with RoleLeft; consecutive positions differ by exactly one pitch.
type PlacementPlan []Placement

// PlanPlacements steps from start by pitch while the position stays
// below end. Positions are computed by multiplication, not accumulation,
// so spacing does not drift over long plans. A non-positive pitch or an
// empty interval produces a nil plan.
func PlanPlacements(start, end, pitch float64) PlacementPlan {
	if pitch <= 0 || end <= start {
		return nil
	}
	var plan PlacementPlan
	// Epsilon keeps a rounding-polluted end value from admitting one
	// spurious placement exactly on the interval boundary.
	eps := pitch * 1e-9
	for i := 0; ; i++ {
		pos := start + float64(i)*pitch
		if pos >= end-eps {
			break
		}
		role := RoleLeft
		if i%2 != 0 {
			role = RoleRight
		}
		plan = append(plan, Placement{Position: pos, Role: role})
	}
	return plan
}
