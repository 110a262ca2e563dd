package demo

import (
	"image/color"

	"github.com/multatronic/pyscroll"
)

// baseTileSize is the native size the tile art is drawn at. Art is rendered
// once at this size and rescaled when the requested tile size differs.
const baseTileSize = 16

// TileKind enumerates the procedural tile art used by the demo world.
type TileKind uint8

const (
	TileGrass TileKind = iota
	TileGrassDark
	TileWater
	TilePath
	TileBush
	TileRock
	TileCanopy
	tileKindCount // sentinel
)

// tilePalette holds the flat base color per kind.
var tilePalette = [tileKindCount]color.RGBA{
	TileGrass:     {R: 58, G: 112, B: 52, A: 255},
	TileGrassDark: {R: 48, G: 96, B: 44, A: 255},
	TileWater:     {R: 38, G: 76, B: 148, A: 255},
	TilePath:      {R: 148, G: 128, B: 92, A: 255},
	TileBush:      {R: 34, G: 78, B: 36, A: 255},
	TileRock:      {R: 112, G: 112, B: 118, A: 255},
	TileCanopy:    {R: 26, G: 92, B: 40, A: 255},
}

// TileSet is the demo's baked tile art, one surface per kind, at a uniform
// tile size.
type TileSet struct {
	Size  int
	tiles [tileKindCount]*pyscroll.Surface
}

// NewTileSet bakes the procedural art at the requested tile size. Art is
// drawn at the native 16px and rescaled with nearest-neighbour sampling so
// other sizes keep the pixel-art look.
func NewTileSet(size int) *TileSet {
	ts := &TileSet{Size: size}
	for k := TileKind(0); k < tileKindCount; k++ {
		t := bakeTile(k)
		if size != baseTileSize {
			t = pyscroll.ResizeSurface(t, size, size)
		}
		ts.tiles[k] = t
	}
	return ts
}

// Tile returns the surface for a kind.
func (ts *TileSet) Tile(k TileKind) *pyscroll.Surface { return ts.tiles[k] }

// bakeTile draws one tile at the native size. The art is deliberately
// simple: a base fill plus a few accents so scrolling and occlusion are
// easy to eyeball.
func bakeTile(k TileKind) *pyscroll.Surface {
	s := pyscroll.NewSurface(baseTileSize, baseTileSize)
	base := tilePalette[k]
	s.Fill(base)

	switch k {
	case TileGrass, TileGrassDark:
		// Sparse blades, offset per kind so adjacent tiles don't tile
		// visibly.
		blade := color.RGBA{R: base.R + 18, G: base.G + 20, B: base.B + 10, A: 255}
		for i := 0; i < 5; i++ {
			x := (i*7 + int(k)*3) % baseTileSize
			y := (i*5 + int(k)*5) % baseTileSize
			s.Set(x, y, blade)
			s.Set(x, y-1, blade)
		}
	case TileWater:
		ripple := color.RGBA{R: 64, G: 110, B: 180, A: 255}
		for x := 0; x < baseTileSize; x++ {
			s.Set(x, (x/3)%4+4, ripple)
			s.Set(x, (x/3)%4+11, ripple)
		}
	case TilePath:
		pebble := color.RGBA{R: 120, G: 104, B: 76, A: 255}
		for i := 0; i < 4; i++ {
			s.Set((i*5+2)%baseTileSize, (i*9+3)%baseTileSize, pebble)
		}
	case TileBush:
		leaf := color.RGBA{R: 52, G: 108, B: 50, A: 255}
		for y := 2; y < baseTileSize-2; y++ {
			for x := 2; x < baseTileSize-2; x++ {
				if (x+y)%3 == 0 {
					s.Set(x, y, leaf)
				}
			}
		}
	case TileRock:
		shade := color.RGBA{R: 88, G: 88, B: 94, A: 255}
		for y := baseTileSize / 2; y < baseTileSize; y++ {
			for x := 0; x < baseTileSize; x++ {
				if (x+y)%2 == 0 {
					s.Set(x, y, shade)
				}
			}
		}
	case TileCanopy:
		// The canopy sits on the layer above sprites; a ragged edge makes
		// the occlusion repair visible when the hero walks beneath.
		light := color.RGBA{R: 40, G: 118, B: 54, A: 255}
		for y := 0; y < baseTileSize; y++ {
			for x := 0; x < baseTileSize; x++ {
				if (x*3+y*5)%7 == 0 {
					s.Set(x, y, light)
				}
			}
		}
	}
	return s
}

// HeroSprite draws the demo's walking square at the given tile size: a
// bright tunic with a darker head band, unmistakable against the terrain.
func HeroSprite(size int) *pyscroll.Surface {
	s := pyscroll.NewSurface(baseTileSize, baseTileSize)
	tunic := color.RGBA{R: 208, G: 64, B: 48, A: 255}
	band := color.RGBA{R: 140, G: 36, B: 28, A: 255}
	for y := 1; y < baseTileSize-1; y++ {
		for x := 3; x < baseTileSize-3; x++ {
			s.Set(x, y, tunic)
		}
	}
	for x := 3; x < baseTileSize-3; x++ {
		s.Set(x, 3, band)
		s.Set(x, 4, band)
	}
	if size != baseTileSize {
		s = pyscroll.ResizeSurface(s, size, size)
	}
	return s
}
