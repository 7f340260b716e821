package interlock

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/KitchNasty02/CustomInterlockResearch/mesh"
)

func TestSplitFace(t *testing.T) {
	// A 2x20x30 half with its cut face at x=6, off-center in Y and Z.
	half := mesh.Box(r3.Vec{X: 2, Y: 20, Z: 30}).Translate(r3.Vec{X: 5, Y: 3, Z: 7})
	b, err := SplitFace(half)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range []struct {
		name      string
		got, want float64
	}{
		{"Width", b.Width, 20},
		{"Height", b.Height, 30},
		{"MinY", b.MinY, -7},
		{"MaxY", b.MaxY, 13},
		{"MinZ", b.MinZ, -8},
		{"MaxZ", b.MaxZ, 22},
	} {
		if !scalar.EqualWithinAbs(c.got, c.want, 1e-12) {
			t.Errorf("%s = %g, want %g", c.name, c.got, c.want)
		}
	}
}

func TestSplitFaceAtMissingPlane(t *testing.T) {
	half := mesh.Box(r3.Vec{X: 2, Y: 2, Z: 2})
	if _, err := SplitFaceAt(half, 100); !errors.Is(err, ErrNoCutFace) {
		t.Errorf("err = %v, want ErrNoCutFace", err)
	}
	if _, err := SplitFace(nil); !errors.Is(err, ErrNoCutFace) {
		t.Errorf("empty mesh: err = %v, want ErrNoCutFace", err)
	}
}

func TestCutFaceInset(t *testing.T) {
	b := CutFaceBounds{Width: 20, Height: 30, MinY: -10, MaxY: 10, MinZ: -15, MaxZ: 15}
	in := b.inset(0.4)
	if !scalar.EqualWithinAbs(in.Width, 19.2, 1e-12) || !scalar.EqualWithinAbs(in.Height, 29.2, 1e-12) {
		t.Errorf("inset extents = %g x %g, want 19.2 x 29.2", in.Width, in.Height)
	}
	// Avoidance bigger than the half-extent flips the interval; callers
	// rely on the non-positive extent to plan zero features.
	if in := b.inset(11); in.Width >= 0 {
		t.Errorf("over-inset width = %g, want negative", in.Width)
	}
}
