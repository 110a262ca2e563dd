package pyscroll

// TileCoord identifies one cell of the tile grid on a specific layer.
type TileCoord struct {
	X, Y, Layer int
}

// tileQueue is an ordered sequence of tile coordinates waiting to be blitted
// into the buffer. Later entries for the same coordinate simply overwrite the
// earlier pixels, so duplicates are harmless. It is consumed by exactly one
// call site at a time, either a bounded batch (Update) or a full drain
// (Flush).
type tileQueue struct {
	coords []TileCoord
	head   int
}

func (q *tileQueue) push(coords ...TileCoord) {
	q.coords = append(q.coords, coords...)
}

func (q *tileQueue) next() (TileCoord, bool) {
	if q.head >= len(q.coords) {
		return TileCoord{}, false
	}
	c := q.coords[q.head]
	q.head++
	if q.head == len(q.coords) {
		q.reset()
	}
	return c, true
}

func (q *tileQueue) len() int {
	return len(q.coords) - q.head
}

func (q *tileQueue) reset() {
	q.coords = q.coords[:0]
	q.head = 0
}
