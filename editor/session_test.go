package editor

import (
	"testing"

	"github.com/milk9111/mapmaker/mapmeta"
)

func TestSessionDefaults(t *testing.T) {
	s := NewSession()
	if !s.ShowGrid {
		t.Fatalf("grid should start visible")
	}
	if s.CurrentLayerIndex != 0 {
		t.Fatalf("expected first layer selected, got %d", s.CurrentLayerIndex)
	}
	if s.ShowMapCreate || s.ShowLayerCreate || s.ShowMapExport {
		t.Fatalf("no dialog should start open")
	}
	if s.HiddenCount() != 0 {
		t.Fatalf("hidden set should start empty")
	}
}

func TestSessionToggleLayerHidden(t *testing.T) {
	s := NewSession()

	s.ToggleLayerHidden(2)
	if !s.LayerHidden(2) {
		t.Fatalf("layer 2 should be hidden after toggle")
	}
	if s.LayerHidden(0) {
		t.Fatalf("layer 0 should be unaffected")
	}

	// Toggling twice restores the original state.
	s.ToggleLayerHidden(2)
	if s.LayerHidden(2) {
		t.Fatalf("second toggle should unhide layer 2")
	}
	if s.HiddenCount() != 0 {
		t.Fatalf("hidden set should be empty again, has %d", s.HiddenCount())
	}
}

func TestSessionSelectLayerUnvalidated(t *testing.T) {
	s := NewSession()
	s.SelectLayer(99)
	if s.CurrentLayerIndex != 99 {
		t.Fatalf("selection should record the raw index, got %d", s.CurrentLayerIndex)
	}
	s.SelectLayer(-1)
	if s.CurrentLayerIndex != -1 {
		t.Fatalf("negative indices record as-is, got %d", s.CurrentLayerIndex)
	}
}

func TestSessionDialogFormReset(t *testing.T) {
	s := NewSession()

	s.OpenMapCreate()
	if !s.ShowMapCreate {
		t.Fatalf("open should show the map dialog")
	}
	s.MapForm.Name = "scratch"
	s.MapForm.Width = 50
	s.CloseMapCreate()
	if s.ShowMapCreate {
		t.Fatalf("close should hide the map dialog")
	}
	if s.MapForm != mapmeta.NewMapCreateForm() {
		t.Fatalf("close should reset the map form, got %+v", s.MapForm)
	}

	s.LayerForm.Name = "scratch"
	s.LayerForm.Kind = mapmeta.LayerKindEntities
	s.OpenLayerCreate()
	if !s.ShowLayerCreate {
		t.Fatalf("open should show the layer dialog")
	}
	if s.LayerForm != mapmeta.NewLayerCreateForm() {
		t.Fatalf("open should start from a fresh layer form, got %+v", s.LayerForm)
	}
	s.CloseLayerCreate()
	if s.ShowLayerCreate {
		t.Fatalf("close should hide the layer dialog")
	}
}

func TestSessionSignals(t *testing.T) {
	s := NewSession()
	if got := s.DrainSignals(); got != nil {
		t.Fatalf("expected no signals, got %v", got)
	}

	s.Request(SignalPlay)
	s.Request(SignalMainMenu)
	got := s.DrainSignals()
	if len(got) != 2 || got[0] != SignalPlay || got[1] != SignalMainMenu {
		t.Fatalf("expected [play mainmenu], got %v", got)
	}
	if s.DrainSignals() != nil {
		t.Fatalf("drain should clear the queue")
	}
}
