package mapmeta

import "testing"

func TestNewLayerKind(t *testing.T) {
	cases := []struct {
		name string
		tag  LayerKindTag
		want LayerKindTag
	}{
		{"tiles", LayerKindTiles, LayerKindTiles},
		{"decorations", LayerKindDecorations, LayerKindDecorations},
		{"entities", LayerKindEntities, LayerKindEntities},
		{"unknown_falls_back", LayerKindTag("bogus"), LayerKindTiles},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			k := NewLayerKind(c.tag)
			if k.Tag() != c.want {
				t.Fatalf("expected tag %q, got %q", c.want, k.Tag())
			}
			set := 0
			if k.Tiles != nil {
				set++
			}
			if k.Decorations != nil {
				set++
			}
			if k.Entities != nil {
				set++
			}
			if set != 1 {
				t.Fatalf("expected exactly one variant set, got %d", set)
			}
		})
	}
}

func TestMapCreateFormValidity(t *testing.T) {
	cases := []struct {
		name string
		form MapCreateForm
		want bool
	}{
		{"defaults_unnamed", NewMapCreateForm(), false},
		{"named_defaults", MapCreateForm{Name: "cavern", Width: 27, Height: 21}, true},
		{"width_at_floor", MapCreateForm{Name: "cavern", Width: 10, Height: 21}, false},
		{"height_at_floor", MapCreateForm{Name: "cavern", Width: 27, Height: 10}, false},
		{"just_above_floor", MapCreateForm{Name: "cavern", Width: 11, Height: 11}, true},
		{"zero_size", MapCreateForm{Name: "cavern"}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.form.IsValid(); got != c.want {
				t.Fatalf("IsValid() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestFormDefaults(t *testing.T) {
	mf := NewMapCreateForm()
	if mf.Width != 27 || mf.Height != 21 {
		t.Fatalf("expected 27x21 defaults, got %dx%d", mf.Width, mf.Height)
	}
	lf := NewLayerCreateForm()
	if lf.Kind != LayerKindTiles {
		t.Fatalf("expected tiles default kind, got %q", lf.Kind)
	}
	if lf.Name != "" {
		t.Fatalf("expected empty default layer name")
	}
}
