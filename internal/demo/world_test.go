package demo

import "testing"

func TestBuildWorld_Deterministic(t *testing.T) {
	a := BuildWorld(20, 15, 16, 7)
	b := BuildWorld(20, 15, 16, 7)
	for y := 0; y < 15; y++ {
		for x := 0; x < 20; x++ {
			for _, l := range []int{LayerGround, LayerActors, LayerCanopy} {
				ta, tb := a.TileImage(x, y, l), b.TileImage(x, y, l)
				if (ta == nil) != (tb == nil) {
					t.Fatalf("cell (%d,%d,%d) differs between identical seeds", x, y, l)
				}
			}
		}
	}
}

func TestBuildWorld_LayersAndCoverage(t *testing.T) {
	data := BuildWorld(24, 18, 16, 3)
	layers := data.VisibleTileLayers()
	if len(layers) != 3 || layers[0] != LayerGround || layers[2] != LayerCanopy {
		t.Fatalf("layers = %v, want ground/actors/canopy", layers)
	}
	// The ground layer must be fully covered; holes would show stale
	// buffer pixels.
	for y := 0; y < 18; y++ {
		for x := 0; x < 24; x++ {
			if data.TileImage(x, y, LayerGround) == nil {
				t.Fatalf("ground hole at (%d,%d)", x, y)
			}
		}
	}
}

func TestNewTileSet_Resizes(t *testing.T) {
	ts := NewTileSet(32)
	for k := TileKind(0); k < tileKindCount; k++ {
		w, h := ts.Tile(k).Size()
		if w != 32 || h != 32 {
			t.Fatalf("tile %d size = %dx%d, want 32x32", k, w, h)
		}
	}
}

func TestRunBench_Smoke(t *testing.T) {
	scs := Scenarios(40*16, 40*16, 16)
	for _, sc := range scs {
		res := RunBench(BenchConfig{
			ViewportW: 64, ViewportH: 64,
			MapW: 40, MapH: 40,
			TileSize: 16,
			Padding:  2,
			Frames:   30,
			Scenario: sc,
		})
		if res.Frames != 30 {
			t.Fatalf("%s: frames = %d, want 30", sc.Name, res.Frames)
		}
		if res.TileFetches == 0 {
			t.Fatalf("%s: no tiles were fetched", sc.Name)
		}
	}
}

func TestRunBench_PanFetchesEdgeBandsOnly(t *testing.T) {
	scs := Scenarios(200*16, 200*16, 16)
	var pan Scenario
	for _, sc := range scs {
		if sc.Name == "pan" {
			pan = sc
		}
	}
	res := RunBench(BenchConfig{
		ViewportW: 80, ViewportH: 80,
		MapW: 200, MapH: 200,
		TileSize: 16,
		Padding:  0,
		Frames:   60,
		Scenario: pan,
	})
	// First frame paints the whole 5x5 view across 3 layers; each later
	// frame moves one tile and fetches one 5-tile column across 3 layers.
	// Allow slack for the centering band of the first reconciliation.
	const firstFrame = 5 * 5 * 3
	const perFrame = 5 * 3
	upper := firstFrame + perFrame*60 + firstFrame
	if res.TileFetches > upper {
		t.Fatalf("pan fetched %d tiles, want edge bands only (<= %d)", res.TileFetches, upper)
	}
}
