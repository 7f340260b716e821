package interlock

import "testing"

func TestValidateWidthFraction(t *testing.T) {
	p := Params{
		Kind:         Dovetail3D,
		WidthLayers:  2,
		HeightLayers: 2,
		DepthLayers:  2,
		TaperAngleZ:  10,
		TaperAngleY:  10,
		Avoidance:    0.4,
	}
	for _, tc := range []struct {
		fraction float64
		ok       bool
	}{
		{0.5, true},
		{1, true},
		{0, false}, // a zero-width feature has no geometry
		{-0.25, false},
		{1.5, false},
	} {
		p.WidthFraction = tc.fraction
		err := p.validate()
		if tc.ok && err != nil {
			t.Errorf("fraction %g rejected: %v", tc.fraction, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("fraction %g accepted", tc.fraction)
		}
	}
}

func TestWithDefaults(t *testing.T) {
	p := Params{}.withDefaults(DefaultProfile())
	if p.WidthLayers != 2 || p.HeightLayers != 2 || p.DepthLayers != 2 {
		t.Errorf("layer defaults %d/%d/%d, want 2 each", p.WidthLayers, p.HeightLayers, p.DepthLayers)
	}
	if p.TaperAngle != 10 || p.TaperAngleZ != 10 || p.TaperAngleY != 10 {
		t.Error("taper angles did not default to 10 degrees")
	}
	if p.Avoidance != 0.4 {
		t.Errorf("avoidance defaulted to %g, want the nozzle size", p.Avoidance)
	}
	if p.WidthFraction != 0.5 {
		t.Errorf("width fraction defaulted to %g, want 0.5", p.WidthFraction)
	}
	if err := p.validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}
