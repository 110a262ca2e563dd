package pyscroll

import "sort"

// MapData supplies tile geometry and images to a Renderer. Any map format
// can drive the renderer by adapting to this interface.
//
// TileImage returns nil for an absent tile: a coordinate outside the map or
// an empty cell. Absence is an ordinary outcome, never an error.
type MapData interface {
	// TileWidth returns the width of one tile in pixels.
	TileWidth() int
	// TileHeight returns the height of one tile in pixels.
	TileHeight() int
	// Width returns the map width in tiles.
	Width() int
	// Height returns the map height in tiles.
	Height() int
	// VisibleTileLayers returns the visible layer indices in ascending
	// order. Layers are drawn back to front.
	VisibleTileLayers() []int
	// TileImage returns the image for a cell, or nil when absent.
	TileImage(x, y, layer int) *Surface
}

// StaticData is an in-memory MapData backed by a sparse cell map. It is the
// simplest way to feed the renderer from generated or hand-built content.
type StaticData struct {
	tileW, tileH int
	w, h         int
	layers       []int
	cells        map[TileCoord]*Surface
}

// NewStaticData creates an empty map of w x h tiles of the given pixel size.
func NewStaticData(w, h, tileW, tileH int) *StaticData {
	return &StaticData{
		tileW: tileW,
		tileH: tileH,
		w:     w,
		h:     h,
		cells: make(map[TileCoord]*Surface),
	}
}

// SetTile places img at the cell, registering the layer on first use.
// A nil img clears the cell.
func (d *StaticData) SetTile(x, y, layer int, img *Surface) {
	c := TileCoord{x, y, layer}
	if img == nil {
		delete(d.cells, c)
		return
	}
	d.cells[c] = img
	for _, l := range d.layers {
		if l == layer {
			return
		}
	}
	d.layers = append(d.layers, layer)
	sort.Ints(d.layers)
}

func (d *StaticData) TileWidth() int  { return d.tileW }
func (d *StaticData) TileHeight() int { return d.tileH }
func (d *StaticData) Width() int      { return d.w }
func (d *StaticData) Height() int     { return d.h }

// VisibleTileLayers returns every layer that has received at least one tile.
func (d *StaticData) VisibleTileLayers() []int { return d.layers }

// TileImage returns the stored image, or nil outside the map or for an
// empty cell.
func (d *StaticData) TileImage(x, y, layer int) *Surface {
	if x < 0 || x >= d.w || y < 0 || y >= d.h {
		return nil
	}
	return d.cells[TileCoord{x, y, layer}]
}
