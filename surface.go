package pyscroll

import (
	"image"
	"image/color"
	"image/draw"
)

// Surface is a rectangular RGBA pixel buffer with optional colorkey
// transparency and a clip rectangle. It is the blit target and source for
// everything in this package: tiles, the scroll buffer, and final frames.
//
// A Surface is not safe for concurrent use.
type Surface struct {
	img      *image.RGBA
	colorkey *color.RGBA
	clip     image.Rectangle
}

// NewSurface creates a blank surface of the given pixel size.
func NewSurface(w, h int) *Surface {
	r := image.Rect(0, 0, w, h)
	return &Surface{img: image.NewRGBA(r), clip: r}
}

// NewSurfaceFromImage copies an arbitrary image into a new surface.
func NewSurfaceFromImage(src image.Image) *Surface {
	b := src.Bounds()
	s := NewSurface(b.Dx(), b.Dy())
	draw.Draw(s.img, s.img.Bounds(), src, b.Min, draw.Src)
	return s
}

// Size returns the surface dimensions in pixels.
func (s *Surface) Size() (w, h int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Bounds returns the surface rectangle anchored at the origin.
func (s *Surface) Bounds() image.Rectangle { return s.img.Bounds() }

// RGBA exposes the backing image, e.g. for uploading to a GPU texture.
// Mutating it mutates the surface.
func (s *Surface) RGBA() *image.RGBA { return s.img }

// At returns the pixel at (x, y), or zero outside the surface.
func (s *Surface) At(x, y int) color.RGBA {
	if !(image.Point{x, y}.In(s.img.Bounds())) {
		return color.RGBA{}
	}
	return s.img.RGBAAt(x, y)
}

// Set writes one pixel, ignoring writes outside the surface.
func (s *Surface) Set(x, y int, c color.RGBA) {
	if (image.Point{x, y}.In(s.img.Bounds())) {
		s.img.SetRGBA(x, y, c)
	}
}

// SetColorkey marks a color as transparent for blits that use this surface
// as a source. Pass nil to disable colorkey transparency. Alpha is ignored
// when matching.
func (s *Surface) SetColorkey(c *color.RGBA) {
	if c == nil {
		s.colorkey = nil
		return
	}
	key := *c
	s.colorkey = &key
}

// Colorkey returns the active colorkey, or nil.
func (s *Surface) Colorkey() *color.RGBA { return s.colorkey }

// Clip returns the current clip rectangle.
func (s *Surface) Clip() image.Rectangle { return s.clip }

// SetClip restricts destination writes to r (intersected with the surface).
// A zero rectangle resets the clip to the full surface.
func (s *Surface) SetClip(r image.Rectangle) {
	if r.Empty() {
		s.clip = s.img.Bounds()
		return
	}
	s.clip = r.Intersect(s.img.Bounds())
}

// Fill floods the whole surface with c, ignoring the clip.
func (s *Surface) Fill(c color.RGBA) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// FillRect fills r with c, clipped to the surface and the clip rect.
func (s *Surface) FillRect(r image.Rectangle, c color.RGBA) {
	r = r.Intersect(s.clip)
	if r.Empty() {
		return
	}
	draw.Draw(s.img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// Blit copies src onto s with src's top-left corner at (x, y), honoring the
// destination clip and src's colorkey. Source alpha is composited over the
// destination.
func (s *Surface) Blit(src *Surface, x, y int) {
	sb := src.img.Bounds()
	dst := image.Rect(x, y, x+sb.Dx(), y+sb.Dy()).Intersect(s.clip)
	if dst.Empty() {
		return
	}
	sp := image.Point{sb.Min.X + dst.Min.X - x, sb.Min.Y + dst.Min.Y - y}
	if src.colorkey == nil {
		draw.Draw(s.img, dst, src.img, sp, draw.Over)
		return
	}
	key := *src.colorkey
	for dy := 0; dy < dst.Dy(); dy++ {
		srow := src.img.PixOffset(sp.X, sp.Y+dy)
		drow := s.img.PixOffset(dst.Min.X, dst.Min.Y+dy)
		for dx := 0; dx < dst.Dx(); dx++ {
			si := srow + dx*4
			if src.img.Pix[si] == key.R && src.img.Pix[si+1] == key.G && src.img.Pix[si+2] == key.B {
				continue
			}
			di := drow + dx*4
			copy(s.img.Pix[di:di+4], src.img.Pix[si:si+4])
		}
	}
}

// Scroll shifts the pixel content of the surface in place by (dx, dy).
// Pixels shifted in from outside keep whatever was previously stored there;
// callers repaint the exposed band. Shifting by at least a full dimension is
// a no-op.
func (s *Surface) Scroll(dx, dy int) {
	b := s.img.Bounds()
	w, h := b.Dx(), b.Dy()
	if dx == 0 && dy == 0 || abs(dx) >= w || abs(dy) >= h {
		return
	}
	srcX, dstX := max(0, -dx), max(0, dx)
	srcY, dstY := max(0, -dy), max(0, dy)
	spanW := (w - abs(dx)) * 4
	spanH := h - abs(dy)

	// Walk rows in the direction that never reads an already-written row.
	for i := 0; i < spanH; i++ {
		row := i
		if dy > 0 {
			row = spanH - 1 - i
		}
		so := s.img.PixOffset(b.Min.X+srcX, b.Min.Y+srcY+row)
		do := s.img.PixOffset(b.Min.X+dstX, b.Min.Y+dstY+row)
		copy(s.img.Pix[do:do+spanW], s.img.Pix[so:so+spanW])
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
