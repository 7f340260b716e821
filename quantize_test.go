package interlock_test

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	interlock "github.com/KitchNasty02/CustomInterlockResearch"
)

func TestQuantizeExtent(t *testing.T) {
	for _, tc := range []struct {
		name          string
		extent, pitch float64
		count         int
		physical      float64
	}{
		// 29.2/0.3 = 97.33: overflow would be 0.67 pitch, stay at 97.
		{"tensile height", 29.2, 0.3, 97, 29.1},
		// f = 99.5 sits exactly on the tie: ceil-f = 0.5 >= 0.25, so the
		// rule is asymmetric and rounds down.
		{"half pitch tie", 29.85, 0.3, 99, 29.7},
		// f = 99.933: one more feature overflows by under a quarter
		// pitch, take it.
		{"slight overflow", 29.98, 0.3, 100, 30},
		{"exact fit", 30, 0.3, 100, 30},
		{"single feature", 0.31, 0.3, 1, 0.3},
		{"zero extent", 0, 0.3, 0, 0},
		{"negative extent", -1, 0.3, 0, 0},
		{"zero pitch", 10, 0, 0, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			q := interlock.QuantizeExtent(tc.extent, tc.pitch)
			if q.Count != tc.count {
				t.Errorf("count = %d, want %d", q.Count, tc.count)
			}
			if !scalar.EqualWithinAbs(q.Physical, tc.physical, 1e-9) {
				t.Errorf("physical = %g, want %g", q.Physical, tc.physical)
			}
		})
	}
}

// The physical size never exceeds the available extent by more than a
// half pitch and is always a whole multiple of the pitch.
func TestQuantizeExtentBounds(t *testing.T) {
	for _, pitch := range []float64{0.1, 0.15, 0.3, 0.45, 1.2} {
		for extent := 0.05; extent < 40; extent += 0.37 {
			q := interlock.QuantizeExtent(extent, pitch)
			if q.Physical > extent+pitch/2+1e-9 {
				t.Fatalf("extent %g pitch %g: physical %g overflows by more than a half pitch",
					extent, pitch, q.Physical)
			}
			if !scalar.EqualWithinAbs(q.Physical, float64(q.Count)*pitch, 1e-3) {
				t.Fatalf("extent %g pitch %g: physical %g is not %d pitches",
					extent, pitch, q.Physical, q.Count)
			}
		}
	}
}
