package mapmeta

import (
	"strings"
	"testing"

	"github.com/milk9111/mapmaker/geom"
)

func TestExportYAML(t *testing.T) {
	m := &Map{
		Name:     "Test",
		GridSize: geom.UVec2{X: 27, Y: 21},
		TileSize: geom.UVec2{X: 10, Y: 10},
		Layers: []Layer{
			{Name: "Ground", Kind: NewLayerKind(LayerKindTiles)},
			{Name: "Deco", Kind: NewLayerKind(LayerKindDecorations)},
		},
	}

	out, err := ExportYAML(m)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	for _, want := range []string{"name: Test", "Ground", "Deco", "grid_size", "tile_size"} {
		if !strings.Contains(out, want) {
			t.Fatalf("export missing %q:\n%s", want, out)
		}
	}

	// Layer order must survive serialization.
	if strings.Index(out, "Ground") > strings.Index(out, "Deco") {
		t.Fatalf("layers exported out of order:\n%s", out)
	}

	// Only the tagged variant appears per layer.
	if strings.Count(out, "tiles:") != 1 {
		t.Fatalf("expected one tiles variant:\n%s", out)
	}
	if strings.Count(out, "decorations:") != 1 {
		t.Fatalf("expected one decorations variant:\n%s", out)
	}
	if strings.Contains(out, "entities:") {
		t.Fatalf("unexpected entities variant:\n%s", out)
	}
}

func TestExportYAMLNoMap(t *testing.T) {
	if _, err := ExportYAML(nil); err == nil {
		t.Fatalf("expected error for nil map")
	}
}
