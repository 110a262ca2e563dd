package pyscroll

import "image"

// QuadTree is a static spatial index over axis-aligned rectangles. It is
// built once and then queried with Hit; it never mutates after construction.
//
// Membership tests against the node center lines are inclusive, so an item
// touching a center line is stored under every quadrant it touches. An item
// overlapping all four quadrants is kept at the node itself instead of being
// duplicated down every branch. Together these guarantee that Hit never
// misses an overlap at a quadrant boundary.
type QuadTree struct {
	items  []image.Rectangle
	cx, cy int
	nw     *QuadTree
	ne     *QuadTree
	se     *QuadTree
	sw     *QuadTree
}

// NewQuadTree builds a quadtree over items with at most depth levels of
// subdivision. A depth of zero or less stores everything in one flat node.
// bounds is the bounding box of all items; pass the zero rectangle to have
// it computed from the items.
func NewQuadTree(items []image.Rectangle, depth int, bounds image.Rectangle) *QuadTree {
	t := &QuadTree{}
	if depth <= 0 || len(items) == 0 {
		t.items = items
		return t
	}

	if bounds.Empty() {
		bounds = items[0]
		for _, r := range items[1:] {
			bounds = bounds.Union(r)
		}
	}
	cx := (bounds.Min.X + bounds.Max.X) / 2
	cy := (bounds.Min.Y + bounds.Max.Y) / 2
	t.cx, t.cy = cx, cy

	var nwItems, neItems, seItems, swItems []image.Rectangle
	for _, r := range items {
		inNW := r.Min.X <= cx && r.Min.Y <= cy
		inSW := r.Min.X <= cx && r.Max.Y >= cy
		inNE := r.Max.X >= cx && r.Min.Y <= cy
		inSE := r.Max.X >= cx && r.Max.Y >= cy

		if inNW && inNE && inSE && inSW {
			t.items = append(t.items, r)
			continue
		}
		if inNW {
			nwItems = append(nwItems, r)
		}
		if inNE {
			neItems = append(neItems, r)
		}
		if inSE {
			seItems = append(seItems, r)
		}
		if inSW {
			swItems = append(swItems, r)
		}
	}

	if len(nwItems) > 0 {
		t.nw = NewQuadTree(nwItems, depth-1, image.Rect(bounds.Min.X, bounds.Min.Y, cx, cy))
	}
	if len(neItems) > 0 {
		t.ne = NewQuadTree(neItems, depth-1, image.Rect(cx, bounds.Min.Y, bounds.Max.X, cy))
	}
	if len(seItems) > 0 {
		t.se = NewQuadTree(seItems, depth-1, image.Rect(cx, cy, bounds.Max.X, bounds.Max.Y))
	}
	if len(swItems) > 0 {
		t.sw = NewQuadTree(swItems, depth-1, image.Rect(bounds.Min.X, cy, cx, bounds.Max.Y))
	}
	return t
}

// Hit returns every indexed rectangle that overlaps rect. Duplicates from
// boundary storage are removed; the order of the result is unspecified.
func (t *QuadTree) Hit(rect image.Rectangle) []image.Rectangle {
	seen := make(map[image.Rectangle]struct{})
	t.hit(rect, seen)
	out := make([]image.Rectangle, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	return out
}

func (t *QuadTree) hit(rect image.Rectangle, acc map[image.Rectangle]struct{}) {
	for _, r := range t.items {
		if r.Overlaps(rect) {
			acc[r] = struct{}{}
		}
	}
	if t.nw != nil && rect.Min.X <= t.cx && rect.Min.Y <= t.cy {
		t.nw.hit(rect, acc)
	}
	if t.sw != nil && rect.Min.X <= t.cx && rect.Max.Y >= t.cy {
		t.sw.hit(rect, acc)
	}
	if t.ne != nil && rect.Max.X >= t.cx && rect.Min.Y <= t.cy {
		t.ne.hit(rect, acc)
	}
	if t.se != nil && rect.Max.X >= t.cx && rect.Max.Y >= t.cy {
		t.se.hit(rect, acc)
	}
}
