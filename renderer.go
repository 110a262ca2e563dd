package pyscroll

import (
	"errors"
	"image"
	"image/color"
	"math"
)

// Configuration errors reported by Draw and SetSize.
var (
	// ErrNoMapData is returned when the renderer has no data source.
	ErrNoMapData = errors.New("pyscroll: no map data set")
	// ErrNoSize is returned when the renderer size was never set and
	// cannot be inferred from the draw target.
	ErrNoSize = errors.New("pyscroll: renderer size not set")
)

const (
	defaultPadding    = 4
	defaultUpdateRate = 10

	// Subdivision depth for the occlusion-repair quadtree. The cell count
	// is small (buffer extent squared) so one split level is enough to
	// beat a linear scan without bloating the tree.
	layerTreeDepth = 2
)

// Drawable is an externally owned entity composited on top of the map for
// one frame: an image at a screen-space rectangle on a tile layer. Map tiles
// on strictly higher layers are repainted over it; tiles on the same layer
// lose ties to the drawable.
type Drawable struct {
	Image *Surface
	Rect  image.Rectangle
	Layer int
}

// Renderer draws a scrolling orthogonal tile map. It keeps the visible
// region plus a padding margin rendered in an off-screen buffer; camera
// moves scroll the buffer in place and repaint only the tiles exposed at
// the edges.
//
// A Renderer is single-threaded: all mutation happens inside the caller's
// Center/Draw/Update/Flush calls and no call may run concurrently with
// another.
type Renderer struct {
	// Padding is the number of extra buffered tiles beyond the viewport.
	// It hides scroll latency; changes take effect on the next SetSize.
	Padding int
	// ClampCamera keeps the requested center inside the map so no tiles
	// outside it are ever requested. When the map is smaller than the
	// viewport on an axis, the camera locks to the map midpoint there.
	ClampCamera bool
	// FlushOnDraw drains the redraw queue before every Draw. Disable it
	// to spread redraw cost across frames with Update.
	FlushOnDraw bool
	// UpdateRate is the maximum number of tiles Update blits per call.
	UpdateRate int
	// BackgroundColor fills the default tile used for absent base-layer
	// cells. Takes effect on the next SetData.
	BackgroundColor color.RGBA

	data        MapData
	mapRect     image.Rectangle
	defaultTile *Surface
	colorkey    *color.RGBA

	size         image.Point
	buffer       *Surface
	view         image.Rectangle
	tree         *QuadTree
	halfW, halfH int

	offsetX, offsetY int
	prevX, prevY     int
	blank            bool
	idle             bool

	queue tileQueue

	pendingCenter bool
	centerX       float64
	centerY       float64
}

// NewRenderer creates a renderer for data with the given viewport pixel
// size. Pass zero dimensions to defer sizing until the first Draw, which
// then infers the size from the draw target.
func NewRenderer(data MapData, w, h int) *Renderer {
	r := &Renderer{
		Padding:         defaultPadding,
		FlushOnDraw:     true,
		UpdateRate:      defaultUpdateRate,
		BackgroundColor: color.RGBA{A: 0xff},
	}
	if data != nil {
		r.SetData(data)
	}
	if w > 0 && h > 0 {
		r.SetSize(w, h)
	}
	return r
}

// SetData swaps the data source and regenerates the default tile. The
// buffer content is not touched: call Redraw if the new source changes
// visible tiles, or SetSize if its tile geometry differs.
func (r *Renderer) SetData(data MapData) {
	r.data = data
	if data == nil {
		r.defaultTile = nil
		r.mapRect = image.Rectangle{}
		return
	}
	tw, th := data.TileWidth(), data.TileHeight()
	r.mapRect = image.Rect(0, 0, data.Width()*tw, data.Height()*th)
	r.defaultTile = NewSurface(tw, th)
	r.defaultTile.Fill(r.BackgroundColor)
	logger().Debug("pyscroll: data source swapped",
		"map_w", data.Width(), "map_h", data.Height(), "tile_w", tw, "tile_h", th)
}

// Data returns the active data source.
func (r *Renderer) Data() MapData { return r.data }

// SetSize sets the viewport size in pixels, allocates the padded buffer,
// and rebuilds the occlusion quadtree over its tile grid. The buffer starts
// blank; the first Draw after SetSize performs a full redraw.
func (r *Renderer) SetSize(w, h int) error {
	if r.data == nil {
		return ErrNoMapData
	}
	if w <= 0 || h <= 0 {
		return ErrNoSize
	}
	tw, th := r.data.TileWidth(), r.data.TileHeight()
	r.mapRect = image.Rect(0, 0, r.data.Width()*tw, r.data.Height()*th)

	bw := w + tw*r.Padding
	bh := h + th*r.Padding
	r.buffer = NewSurface(bw, bh)
	if r.colorkey != nil {
		r.buffer.SetColorkey(r.colorkey)
		r.buffer.Fill(*r.colorkey)
	}
	r.view = image.Rect(0, 0, ceilDiv(bw, tw), ceilDiv(bh, th))
	r.halfW = w / 2
	r.halfH = h / 2

	cells := make([]image.Rectangle, 0, r.view.Dx()*r.view.Dy())
	for y := 0; y < r.view.Dy(); y++ {
		for x := 0; x < r.view.Dx(); x++ {
			cells = append(cells, image.Rect(x*tw, y*th, (x+1)*tw, (y+1)*th))
		}
	}
	r.tree = NewQuadTree(cells, layerTreeDepth, image.Rectangle{})

	r.size = image.Pt(w, h)
	r.blank = true
	r.idle = false
	r.offsetX, r.offsetY = 0, 0
	r.prevX, r.prevY = 0, 0
	r.queue.reset()
	logger().Debug("pyscroll: buffer allocated",
		"viewport_w", w, "viewport_h", h, "buffer_w", bw, "buffer_h", bh,
		"view_w", r.view.Dx(), "view_h", r.view.Dy(), "padding", r.Padding)
	return nil
}

// Size returns the viewport size in pixels, zero before SetSize.
func (r *Renderer) Size() (w, h int) { return r.size.X, r.size.Y }

// SetColorkey declares a color as transparent in the buffer, so the caller
// can layer the map over its own backdrop. Pass nil to disable.
func (r *Renderer) SetColorkey(c *color.RGBA) {
	if c == nil {
		r.colorkey = nil
		if r.buffer != nil {
			r.buffer.SetColorkey(nil)
		}
		return
	}
	key := *c
	r.colorkey = &key
	if r.buffer != nil {
		r.buffer.SetColorkey(&key)
		r.buffer.Fill(key)
	}
}

// Center requests that the view be centered on the world pixel (x, y). The
// request is recorded only; the next Draw performs the single reconciliation
// no matter how many Center calls landed in between.
func (r *Renderer) Center(x, y float64) {
	r.centerX, r.centerY = x, y
	r.pendingCenter = true
}

// Scroll moves the camera by a pixel vector relative to the last requested
// center.
func (r *Renderer) Scroll(dx, dy float64) {
	if r.pendingCenter {
		r.Center(r.centerX+dx, r.centerY+dy)
		return
	}
	r.Center(float64(r.prevX)+dx, float64(r.prevY)+dy)
}

// SpriteOffset returns the translation from world pixels to screen pixels
// for the last requested center, after camera clamping. Adding it to a world
// rect yields the screen rect to pass to Draw.
func (r *Renderer) SpriteOffset() (x, y int) {
	cx, cy := int(math.Round(r.centerX)), int(math.Round(r.centerY))
	cx, cy = r.clampCenter(cx, cy)
	return r.halfW - cx, r.halfH - cy
}

// UpdateTile marks one tile for redraw on the next drain. Use it after
// mutating the map data under a live renderer.
func (r *Renderer) UpdateTile(c TileCoord) { r.queue.push(c) }

// UpdateTiles marks several tiles for redraw on the next drain.
func (r *Renderer) UpdateTiles(coords []TileCoord) { r.queue.push(coords...) }

// Update blits at most UpdateRate queued tiles into the buffer. Calling it
// from the game tick spreads redraw cost across frames; with FlushOnDraw
// enabled it is optional.
func (r *Renderer) Update() {
	if r.UpdateRate <= 0 {
		return
	}
	r.blitTiles(r.UpdateRate)
}

// Flush blits queued tiles into the buffer until the queue is empty.
func (r *Renderer) Flush() {
	r.blitTiles(-1)
}

// Redraw repaints every tile in the view. It is the slow path; scrolling
// normally repaints edge bands only.
func (r *Renderer) Redraw() {
	if r.data == nil || r.buffer == nil {
		return
	}
	r.queue.reset()
	layers := r.data.VisibleTileLayers()
	for y := r.view.Min.Y; y < r.view.Max.Y; y++ {
		for x := r.view.Min.X; x < r.view.Max.X; x++ {
			for _, l := range layers {
				r.queue.push(TileCoord{x, y, l})
			}
		}
	}
	logger().Debug("pyscroll: full redraw", "tiles", r.queue.len())
	r.Flush()
}

// Draw reconciles any pending center request, scrolls and patches the
// buffer, blits it onto dst offset by the sub-tile remainder, and composites
// drawables with occlusion repair. Output is clipped to area; a zero area
// means all of dst.
//
// The returned rectangles cover every region of dst that changed, for
// partial-redisplay schemes. Absent such a scheme the result can be ignored.
func (r *Renderer) Draw(dst *Surface, area image.Rectangle, drawables []Drawable) ([]image.Rectangle, error) {
	if r.data == nil {
		return nil, ErrNoMapData
	}
	if r.buffer == nil {
		w, h := dst.Size()
		if err := r.SetSize(w, h); err != nil {
			return nil, err
		}
	}

	if r.pendingCenter {
		r.centerMap(r.centerX, r.centerY)
		r.pendingCenter = false
	}
	if r.blank {
		r.Redraw()
		r.blank = false
	}
	if r.FlushOnDraw && r.queue.len() > 0 {
		r.Flush()
	}

	if area.Empty() {
		area = dst.Bounds()
	}
	prevClip := dst.Clip()
	dst.SetClip(area)

	ox := area.Min.X - r.offsetX
	oy := area.Min.Y - r.offsetY
	dst.Blit(r.buffer, ox, oy)

	var dirty []image.Rectangle
	if len(drawables) > 0 {
		dirty = r.overdraw(dst, ox, oy, drawables)
	}
	if !r.idle {
		dirty = []image.Rectangle{area}
	}

	dst.SetClip(prevClip)
	return dirty, nil
}

// clampCenter applies the camera clamp policy to a rounded center point.
func (r *Renderer) clampCenter(x, y int) (int, int) {
	if !r.ClampCamera {
		return x, y
	}
	if r.mapRect.Max.X < r.size.X {
		x = r.mapRect.Max.X / 2
	} else if x < r.halfW {
		x = r.halfW
	} else if x > r.mapRect.Max.X-r.halfW {
		x = r.mapRect.Max.X - r.halfW
	}
	if r.mapRect.Max.Y < r.size.Y {
		y = r.mapRect.Max.Y / 2
	} else if y < r.halfH {
		y = r.halfH
	} else if y > r.mapRect.Max.Y-r.halfH {
		y = r.mapRect.Max.Y - r.halfH
	}
	return x, y
}

// centerMap performs the one reconciliation per frame: camera math, view
// shift, in-place buffer scroll, and edge-band enqueue.
func (r *Renderer) centerMap(px, py float64) {
	x := int(math.Round(px))
	y := int(math.Round(py))
	x, y = r.clampCenter(x, y)

	if x == r.prevX && y == r.prevY {
		r.idle = true
		return
	}
	r.idle = false

	tw := r.data.TileWidth()
	th := r.data.TileHeight()
	hpad := r.Padding / 2

	// Floored division so positions left of or above the origin still
	// produce an offset in [0, tile).
	left := floorDiv(x-r.halfW, tw)
	top := floorDiv(y-r.halfH, th)
	offX := floorMod(x-r.halfW, tw)
	offY := floorMod(y-r.halfH, th)

	dx := left - hpad - r.view.Min.X
	dy := top - hpad - r.view.Min.Y

	r.offsetX = offX + hpad*tw
	r.offsetY = offY + hpad*th

	if dx != 0 || dy != 0 {
		r.view = r.view.Add(image.Pt(dx, dy))
		if abs(dx) >= r.view.Dx() || abs(dy) >= r.view.Dy() {
			// Jumped past everything buffered; nothing survives a scroll.
			r.queue.reset()
			r.blank = true
		} else {
			r.buffer.Scroll(-dx*tw, -dy*th)
			r.queueEdgeTiles(dx, dy)
		}
	}

	r.prevX, r.prevY = x, y
}

// queueEdgeTiles enqueues the tile bands exposed by a view shift of
// (dx, dy): a band of |dx| columns on the entered side, a band of |dy| rows,
// each across every visible layer.
func (r *Renderer) queueEdgeTiles(dx, dy int) {
	layers := r.data.VisibleTileLayers()
	v := r.view

	pushCols := func(x0, x1 int) {
		for y := v.Min.Y; y < v.Max.Y; y++ {
			for x := x0; x < x1; x++ {
				for _, l := range layers {
					r.queue.push(TileCoord{x, y, l})
				}
			}
		}
	}
	pushRows := func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := v.Min.X; x < v.Max.X; x++ {
				for _, l := range layers {
					r.queue.push(TileCoord{x, y, l})
				}
			}
		}
	}

	if dx > 0 {
		pushCols(v.Max.X-dx, v.Max.X)
	} else if dx < 0 {
		pushCols(v.Min.X, v.Min.X-dx)
	}
	if dy > 0 {
		pushRows(v.Max.Y-dy, v.Max.Y)
	} else if dy < 0 {
		pushRows(v.Min.Y, v.Min.Y-dy)
	}
}

// blitTiles drains up to limit tiles from the queue into the buffer; a
// negative limit drains everything.
//
// Without a colorkey, an absent base-layer cell is painted with the default
// tile and absent upper layers are skipped. With a colorkey, every base-layer
// entry keys out its cell before the tile (if any) lands, so uncovered
// ground stays transparent.
func (r *Renderer) blitTiles(limit int) {
	if r.queue.len() == 0 {
		return
	}
	tw := r.data.TileWidth()
	th := r.data.TileHeight()
	ltw := r.view.Min.X * tw
	tth := r.view.Min.Y * th

	var base int
	if layers := r.data.VisibleTileLayers(); len(layers) > 0 {
		base = layers[0]
	}

	if r.colorkey != nil {
		key := *r.colorkey
		for n := 0; limit < 0 || n < limit; n++ {
			c, ok := r.queue.next()
			if !ok {
				break
			}
			dx, dy := c.X*tw-ltw, c.Y*th-tth
			if c.Layer == base {
				r.buffer.FillRect(image.Rect(dx, dy, dx+tw, dy+th), key)
			}
			if tile := r.data.TileImage(c.X, c.Y, c.Layer); tile != nil {
				r.buffer.Blit(tile, dx, dy)
			}
		}
		return
	}

	for n := 0; limit < 0 || n < limit; n++ {
		c, ok := r.queue.next()
		if !ok {
			break
		}
		tile := r.data.TileImage(c.X, c.Y, c.Layer)
		if tile == nil {
			if c.Layer != base {
				continue
			}
			tile = r.defaultTile
		}
		r.buffer.Blit(tile, c.X*tw-ltw, c.Y*th-tth)
	}
}

// overdraw blits the drawables and repairs occlusion: for each drawable,
// every overlapping tile on a strictly higher layer is refetched and
// repainted on top. Ties go to the drawable. Returns the screen rects
// touched.
func (r *Renderer) overdraw(dst *Surface, ox, oy int, drawables []Drawable) []image.Rectangle {
	tw := r.data.TileWidth()
	th := r.data.TileHeight()
	layers := r.data.VisibleTileLayers()

	dirty := make([]image.Rectangle, 0, len(drawables))
	for _, d := range drawables {
		dst.Blit(d.Image, d.Rect.Min.X, d.Rect.Min.Y)
		dirty = append(dirty, d.Rect)
	}

	for _, d := range drawables {
		local := d.Rect.Sub(image.Pt(ox, oy))
		for _, cell := range r.tree.Hit(local) {
			cx := cell.Min.X/tw + r.view.Min.X
			cy := cell.Min.Y/th + r.view.Min.Y
			for _, l := range layers {
				if l <= d.Layer {
					continue
				}
				if tile := r.data.TileImage(cx, cy, l); tile != nil {
					dst.Blit(tile, cell.Min.X+ox, cell.Min.Y+oy)
				}
			}
		}
	}
	return dirty
}
