package demo

import (
	"math/rand"

	"github.com/multatronic/pyscroll"
)

// World layer indices. Sprites live on LayerActors; the canopy above them
// exercises the renderer's occlusion repair.
const (
	LayerGround = 0
	LayerActors = 1
	LayerCanopy = 2
)

// BuildWorld generates a deterministic w x h tile map from seed: a grass
// base with water pools and a path, scattered bushes and rocks on the ground
// layer, and tree canopies on the layer above the actors.
func BuildWorld(w, h, tileSize int, seed int64) *pyscroll.StaticData {
	rng := rand.New(rand.NewSource(seed))
	ts := NewTileSet(tileSize)
	data := pyscroll.NewStaticData(w, h, tileSize, tileSize)

	// Ground: two grass shades in deterministic noise.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			kind := TileGrass
			if rng.Intn(4) == 0 {
				kind = TileGrassDark
			}
			data.SetTile(x, y, LayerGround, ts.Tile(kind))
		}
	}

	// Water pools: a few rectangular ponds.
	for i := 0; i < max(1, w*h/400); i++ {
		px := rng.Intn(w)
		py := rng.Intn(h)
		pw := rng.Intn(4) + 2
		ph := rng.Intn(3) + 2
		for y := py; y < min(h, py+ph); y++ {
			for x := px; x < min(w, px+pw); x++ {
				data.SetTile(x, y, LayerGround, ts.Tile(TileWater))
			}
		}
	}

	// A path wandering left to right.
	py := h / 2
	for x := 0; x < w; x++ {
		data.SetTile(x, py, LayerGround, ts.Tile(TilePath))
		py += rng.Intn(3) - 1
		if py < 1 {
			py = 1
		}
		if py > h-2 {
			py = h - 2
		}
	}

	// Clutter sits on the actor layer: bushes and rocks share it with the
	// hero, and layer ties go to the sprite, so the hero walks over them.
	for i := 0; i < w*h/30; i++ {
		x, y := rng.Intn(w), rng.Intn(h)
		kind := TileBush
		if rng.Intn(3) == 0 {
			kind = TileRock
		}
		data.SetTile(x, y, LayerActors, ts.Tile(kind))
	}

	// Canopy clusters above the actors.
	for i := 0; i < max(1, w*h/200); i++ {
		cx, cy := rng.Intn(w), rng.Intn(h)
		span := rng.Intn(2) + 2
		for y := cy - span/2; y <= cy+span/2; y++ {
			for x := cx - span/2; x <= cx+span/2; x++ {
				if x >= 0 && x < w && y >= 0 && y < h {
					data.SetTile(x, y, LayerCanopy, ts.Tile(TileCanopy))
				}
			}
		}
	}
	return data
}
