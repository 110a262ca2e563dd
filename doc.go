// Package pyscroll renders large tile-grid maps onto a small viewport by
// keeping a persistent off-screen buffer that is scrolled, not redrawn, when
// the camera moves. Only the edge band of tiles exposed by a scroll is
// repainted, so the per-frame cost tracks camera speed rather than viewport
// size. A quadtree over the buffer's tile cells restores depth ordering
// between the map and foreground drawables after compositing.
//
// The package owns no map format and no window. Map content arrives through
// the MapData interface and finished frames live on software Surfaces that
// the caller presents however it likes (see cmd/demo for an Ebitengine
// front end).
package pyscroll
