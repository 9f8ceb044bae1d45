package scene

import (
	"testing"

	"github.com/milk9111/mapmaker/geom"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		spawn        int
		despawnIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_despawn_middle", 3, 1},
		{"none_despawned", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.spawn)
			for i := 0; i < c.spawn; i++ {
				ents = append(ents, w.Spawn())
			}
			for i, e := range ents {
				if !w.IsAlive(e) {
					t.Fatalf("entity %d should be alive after spawn", i)
				}
			}
			if c.despawnIndex >= 0 {
				w.Despawn(ents[c.despawnIndex])
				if w.IsAlive(ents[c.despawnIndex]) {
					t.Fatalf("entity should not be alive after despawn")
				}
				for i, e := range ents {
					if i != c.despawnIndex && !w.IsAlive(e) {
						t.Fatalf("entity %d should survive a sibling despawn", i)
					}
				}
			}
		})
	}
}

func TestWorldStaleHandle(t *testing.T) {
	w := NewWorld()
	e := w.Spawn()
	w.Despawn(e)

	reused := w.Spawn()
	if w.IsAlive(e) {
		t.Fatalf("stale handle should stay dead after slot reuse")
	}
	if !w.IsAlive(reused) {
		t.Fatalf("reused slot should be alive")
	}
	if e == reused {
		t.Fatalf("stale and reused handles should differ in generation")
	}
}

func TestWorldComponents(t *testing.T) {
	w := NewWorld()
	h := NewComponent[int]()

	e1 := w.Spawn()
	e2 := w.Spawn()

	if err := Add(w, e1, h, 10); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := Add(w, e2, h, 20); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	v, ok := Get(w, e1, h)
	if !ok || v != 10 {
		t.Fatalf("expected 10, got %v ok=%v", v, ok)
	}
	if !Has(w, e2, h) {
		t.Fatalf("expected e2 to carry the component")
	}

	// Replacing overwrites in place.
	if err := Add(w, e1, h, 11); err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	if v, _ := Get(w, e1, h); v != 11 {
		t.Fatalf("expected replaced value 11, got %v", v)
	}

	if !Remove(w, e1, h) {
		t.Fatalf("remove should report presence")
	}
	if Has(w, e1, h) {
		t.Fatalf("component should be gone after remove")
	}
	if Remove(w, e1, h) {
		t.Fatalf("second remove should report absence")
	}

	dead := w.Spawn()
	w.Despawn(dead)
	if err := Add(w, dead, h, 1); err != ErrEntityNotAlive {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestWorldEntitiesSkipsDead(t *testing.T) {
	w := NewWorld()
	h := NewComponent[string]()

	e1 := w.Spawn()
	e2 := w.Spawn()
	e3 := w.Spawn()
	for _, e := range []Entity{e1, e2, e3} {
		if err := Add(w, e, h, "x"); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}
	w.Despawn(e2)

	got := Entities(w, h)
	if len(got) != 2 {
		t.Fatalf("expected 2 live carriers, got %d", len(got))
	}
	for _, e := range got {
		if e == e2 {
			t.Fatalf("dead entity leaked into Entities result")
		}
	}
}

func TestWorldChildren(t *testing.T) {
	w := NewWorld()
	parent := w.Spawn()
	a := w.Spawn()
	b := w.Spawn()

	if err := w.AttachChild(parent, a); err != nil {
		t.Fatalf("attach failed: %v", err)
	}
	if err := w.AttachChild(parent, b); err != nil {
		t.Fatalf("attach failed: %v", err)
	}
	if err := w.AttachChild(parent, parent); err != ErrSelfAttach {
		t.Fatalf("expected ErrSelfAttach, got %v", err)
	}

	kids := w.Children(parent)
	if len(kids) != 2 || kids[0] != a || kids[1] != b {
		t.Fatalf("expected children in attach order, got %v", kids)
	}

	// Despawning the parent takes the children with it.
	w.Despawn(parent)
	if w.IsAlive(a) || w.IsAlive(b) {
		t.Fatalf("children should despawn with their parent")
	}
}

func TestWorldVisibilityAndTransform(t *testing.T) {
	w := NewWorld()
	e := w.Spawn()

	if !w.Visible(e) {
		t.Fatalf("nodes should spawn visible")
	}
	w.SetVisibility(e, false)
	if w.Visible(e) {
		t.Fatalf("expected hidden after SetVisibility(false)")
	}

	tr, ok := w.LocalTransform(e)
	if !ok {
		t.Fatalf("spawned node should have a transform")
	}
	if tr.Scale.X != 1 || tr.Scale.Y != 1 {
		t.Fatalf("expected unit scale default, got %v", tr.Scale)
	}

	w.SetLocalTransform(e, geom.Vec3{X: 3, Y: -4, Z: 2}, geom.Vec2{X: 1, Y: 1})
	tr, _ = w.LocalTransform(e)
	if tr.Translation.X != 3 || tr.Translation.Y != -4 || tr.Translation.Z != 2 {
		t.Fatalf("unexpected translation %v", tr.Translation)
	}
}
