package pyscroll

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// SliceTileset cuts a tileset image into cellW x cellH tiles, row-major from
// the top-left corner. Partial cells at the right and bottom edges are
// discarded. The returned surfaces are copies; the source image is not
// retained.
func SliceTileset(src image.Image, cellW, cellH int) []*Surface {
	if cellW <= 0 || cellH <= 0 {
		return nil
	}
	b := src.Bounds()
	cols := b.Dx() / cellW
	rows := b.Dy() / cellH
	tiles := make([]*Surface, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			t := NewSurface(cellW, cellH)
			sp := image.Pt(b.Min.X+col*cellW, b.Min.Y+row*cellH)
			xdraw.Copy(t.img, image.Point{}, src, image.Rectangle{sp, sp.Add(image.Pt(cellW, cellH))}, xdraw.Src, nil)
			tiles = append(tiles, t)
		}
	}
	return tiles
}

// ResizeSurface scales s to w x h with nearest-neighbour sampling, which
// keeps pixel art crisp. The colorkey carries over to the result.
func ResizeSurface(s *Surface, w, h int) *Surface {
	out := NewSurface(w, h)
	xdraw.NearestNeighbor.Scale(out.img, out.img.Bounds(), s.img, s.img.Bounds(), xdraw.Src, nil)
	out.colorkey = s.colorkey
	return out
}
