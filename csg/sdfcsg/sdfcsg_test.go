package sdfcsg_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	interlock "github.com/KitchNasty02/CustomInterlockResearch"
	"github.com/KitchNasty02/CustomInterlockResearch/csg/sdfcsg"
	"github.com/KitchNasty02/CustomInterlockResearch/mesh"
)

// volumeNear allows for the surface quantization of marching-cubes
// re-meshing, which dominates engine error at test resolutions.
func volumeNear(t *testing.T, m mesh.Mesh, want float64) {
	t.Helper()
	if m.IsEmpty() {
		t.Fatal("engine returned an empty mesh")
	}
	got := m.Volume()
	if math.Abs(got-want)/want > 0.15 {
		t.Errorf("volume %g, want %g within 15%%", got, want)
	}
}

func TestEngineOperandCounts(t *testing.T) {
	eng := sdfcsg.New()
	if _, err := eng.Union(); err == nil {
		t.Error("union of nothing succeeded")
	}
	box := mesh.Box(r3.Vec{X: 1, Y: 1, Z: 1})
	if _, err := eng.Difference(box); err == nil {
		t.Error("difference with a single operand succeeded")
	}
	if _, err := eng.Intersection(box); err == nil {
		t.Error("intersection with a single operand succeeded")
	}
	if _, err := eng.Union(mesh.Mesh{}); err == nil {
		t.Error("union of an empty mesh succeeded")
	}
}

func TestEngineBooleans(t *testing.T) {
	if testing.Short() {
		t.Skip("re-meshing is slow")
	}
	eng := sdfcsg.NewWithResolution(64)
	a := mesh.Box(r3.Vec{X: 10, Y: 10, Z: 10})
	b := a.Translate(r3.Vec{X: 5})

	union, err := eng.Union(a, b)
	if err != nil {
		t.Fatal(err)
	}
	volumeNear(t, union, 1500)

	diff, err := eng.Difference(a, b)
	if err != nil {
		t.Fatal(err)
	}
	volumeNear(t, diff, 500)

	inter, err := eng.Intersection(a, b)
	if err != nil {
		t.Fatal(err)
	}
	volumeNear(t, inter, 500)
}

func TestGenerateThroughEngine(t *testing.T) {
	if testing.Short() {
		t.Skip("re-meshing is slow")
	}
	eng := sdfcsg.NewWithResolution(48)
	rep := sdfcsg.Repair{}
	left := mesh.Box(r3.Vec{X: 2, Y: 6, Z: 6}).Translate(r3.Vec{X: -1})
	right := mesh.Box(r3.Vec{X: 2, Y: 6, Z: 6}).Translate(r3.Vec{X: 1})

	// Thick layers keep the features well above the render resolution.
	prof := interlock.Profile{LayerHeight: 0.6, NozzleSize: 0.4}
	res, err := interlock.Generate(eng, rep, prof, interlock.Params{Kind: interlock.Beam}, left, right)
	if err != nil {
		t.Fatal(err)
	}
	if res.Degenerate {
		t.Fatal("run came back degenerate")
	}
	if res.Extent.Count != 4 {
		t.Errorf("quantized count %d, want 4", res.Extent.Count)
	}
	// Keying moves as much material across the seam as it removes.
	volumeNear(t, res.Left, 72)
	volumeNear(t, res.Right, 72)
	if maxX := res.Left.Bounds().Max.X; maxX < 0.4 {
		t.Errorf("left half reaches x=%g, want protrusions past the seam", maxX)
	}
	if minX := res.Right.Bounds().Min.X; minX > -0.4 {
		t.Errorf("right half reaches x=%g, want protrusions past the seam", minX)
	}
}

func TestRepairFixNormals(t *testing.T) {
	rep := sdfcsg.Repair{}
	box := mesh.Box(r3.Vec{X: 2, Y: 2, Z: 2})

	fixed, err := rep.FixNormals(box.Flipped())
	if err != nil {
		t.Fatal(err)
	}
	if fixed.Volume() <= 0 {
		t.Error("inward-wound box was not flipped outward")
	}

	same, err := rep.FixNormals(box)
	if err != nil {
		t.Fatal(err)
	}
	if same.Volume() != box.Volume() {
		t.Error("clean box was modified")
	}

	filled, err := rep.FillHoles(box)
	if err != nil || len(filled) != len(box) {
		t.Errorf("fill holes changed a closed mesh: %v", err)
	}
}
