package interlock

import "testing"

func TestTemplateCacheReuse(t *testing.T) {
	c := NewTemplateCache()
	k := templateKey{kind: Beam, width: 19.2, height: 0.3, depth: 0.8}
	a := c.solid(k)
	b := c.solid(k)
	if &a[0] != &b[0] {
		t.Error("identical key rebuilt the template")
	}
	other := c.solid(templateKey{kind: Beam, width: 19.2, height: 0.6, depth: 0.8})
	if &a[0] == &other[0] {
		t.Error("different key shared a template")
	}
}

func TestTemplateCacheKinds(t *testing.T) {
	c := NewTemplateCache()
	for _, k := range []templateKey{
		{kind: Beam, width: 2, height: 0.3, depth: 0.8},
		{kind: Dovetail, width: 2, height: 0.3, height2: 0.45, depth: 1.6},
		{kind: Dovetail3D, width: 1, width2: 1.2, height: 0.3, height2: 0.45, depth: 1.6},
	} {
		m := c.solid(k)
		if len(m) != 12 {
			t.Errorf("%v template: %d triangles, want 12", k.kind, len(m))
		}
		if !m.Watertight() {
			t.Errorf("%v template is not watertight", k.kind)
		}
	}
}

func TestTemplateCacheUnknownKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewTemplateCache().solid(templateKey{kind: Kind(42), width: 1, height: 1, depth: 1})
}
