package pyscroll

import (
	"image"
	"sort"
)

// Sprite is a member of a Group: an image at a world-space rectangle on a
// tile layer. The Group translates it to screen space each draw; foreground
// map tiles on higher layers still cover it correctly.
type Sprite struct {
	Image *Surface
	Rect  image.Rectangle
	Layer int
}

// Group draws a set of layered sprites over a scrolling map, keeping the
// renderer centered and translating sprite world rects into the drawables
// the renderer composites.
type Group struct {
	renderer *Renderer
	sprites  []*Sprite
	size     image.Point
}

// NewGroup creates a group driving r.
func NewGroup(r *Renderer) *Group {
	return &Group{renderer: r}
}

// Renderer returns the underlying renderer.
func (g *Group) Renderer() *Renderer { return g.renderer }

// Add inserts a sprite. Adding the same sprite twice is a no-op.
func (g *Group) Add(s *Sprite) {
	for _, have := range g.sprites {
		if have == s {
			return
		}
	}
	g.sprites = append(g.sprites, s)
}

// Remove deletes a sprite, preserving the order of the rest.
func (g *Group) Remove(s *Sprite) {
	for i, have := range g.sprites {
		if have == s {
			g.sprites = append(g.sprites[:i], g.sprites[i+1:]...)
			return
		}
	}
}

// Sprites returns the members in insertion order.
func (g *Group) Sprites() []*Sprite { return g.sprites }

// Center requests the map be centered on a world pixel. Sprites keep their
// world rects; only their screen positions change.
func (g *Group) Center(x, y float64) {
	g.renderer.Center(x, y)
}

// Draw renders the map and all sprites onto dst, sizing the renderer to dst
// on first use or when dst changes size. Sprites are drawn in ascending
// layer order, insertion order within a layer. Returns the dirty screen
// rects from the renderer.
func (g *Group) Draw(dst *Surface) ([]image.Rectangle, error) {
	w, h := dst.Size()
	if g.size != image.Pt(w, h) {
		if err := g.renderer.SetSize(w, h); err != nil {
			return nil, err
		}
		g.size = image.Pt(w, h)
	}

	ox, oy := g.renderer.SpriteOffset()
	drawables := make([]Drawable, 0, len(g.sprites))
	for _, s := range g.sprites {
		drawables = append(drawables, Drawable{
			Image: s.Image,
			Rect:  s.Rect.Add(image.Pt(ox, oy)),
			Layer: s.Layer,
		})
	}
	sort.SliceStable(drawables, func(i, j int) bool {
		return drawables[i].Layer < drawables[j].Layer
	})
	return g.renderer.Draw(dst, dst.Bounds(), drawables)
}
