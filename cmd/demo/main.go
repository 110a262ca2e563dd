package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/multatronic/pyscroll/internal/demo"
)

func main() {
	var cfg demo.Config
	var scale int
	flag.IntVar(&cfg.ViewportW, "width", 480, "viewport width in pixels")
	flag.IntVar(&cfg.ViewportH, "height", 320, "viewport height in pixels")
	flag.IntVar(&cfg.MapW, "map-width", 120, "map width in tiles")
	flag.IntVar(&cfg.MapH, "map-height", 120, "map height in tiles")
	flag.IntVar(&cfg.TileSize, "tile", 16, "tile size in pixels")
	flag.IntVar(&cfg.Padding, "padding", 4, "buffered tiles beyond the viewport")
	flag.BoolVar(&cfg.ClampCamera, "clamp", true, "keep the camera inside the map")
	flag.BoolVar(&cfg.Colorkey, "colorkey", false, "render the map with colorkey transparency over a backdrop")
	flag.Int64Var(&cfg.Seed, "seed", 42, "world generation seed")
	flag.IntVar(&scale, "scale", 2, "window upscale factor")
	flag.Parse()

	ebiten.SetWindowTitle("pyscroll demo")
	ebiten.SetWindowSize(cfg.ViewportW*scale, cfg.ViewportH*scale)
	if err := ebiten.RunGame(demo.New(cfg)); err != nil {
		log.Fatal(err)
	}
}
