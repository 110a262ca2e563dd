package demo

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/multatronic/pyscroll"
)

// heroSpeed is the walk speed in pixels per tick at the native tile size.
const heroSpeed = 2.5

// frameWindow is how many recent frame times the HUD report keeps.
const frameWindow = 120

var (
	colorkeyMagenta = color.RGBA{R: 255, B: 255, A: 255}
	backdropColor   = color.RGBA{R: 16, G: 12, B: 24, A: 255}
)

// Config parameterizes the windowed demo.
type Config struct {
	ViewportW, ViewportH int
	MapW, MapH           int // in tiles
	TileSize             int
	Padding              int
	ClampCamera          bool
	Colorkey             bool
	Seed                 int64
}

// Game is the Ebitengine front end: a hero walking a generated world with
// the camera locked to it. The map itself is rendered by pyscroll into a
// software frame that is uploaded to the GPU once per Draw.
type Game struct {
	cfg   Config
	group *pyscroll.Group
	hero  *pyscroll.Sprite

	heroX, heroY float64

	frame *pyscroll.Surface
	tex   *ebiten.Image

	showHUD  bool
	prevKeys map[ebiten.Key]bool

	frameTimes [frameWindow]time.Duration
	frameIdx   int
	frameCount int
}

// New builds the demo world and wires the scroll group.
func New(cfg Config) *Game {
	data := BuildWorld(cfg.MapW, cfg.MapH, cfg.TileSize, cfg.Seed)
	r := pyscroll.NewRenderer(data, 0, 0)
	r.Padding = cfg.Padding
	r.ClampCamera = cfg.ClampCamera
	if cfg.Colorkey {
		// Renders the map over the backdrop fill in Draw instead of
		// opaquely; uncovered cells (none in the generated world, but any
		// custom data source may have them) show the backdrop.
		r.SetColorkey(&colorkeyMagenta)
	}

	g := &Game{
		cfg:      cfg,
		group:    pyscroll.NewGroup(r),
		showHUD:  true,
		prevKeys: make(map[ebiten.Key]bool),
		heroX:    float64(cfg.MapW*cfg.TileSize) / 2,
		heroY:    float64(cfg.MapH*cfg.TileSize) / 2,
		frame:    pyscroll.NewSurface(cfg.ViewportW, cfg.ViewportH),
	}
	g.hero = &pyscroll.Sprite{
		Image: HeroSprite(cfg.TileSize),
		Layer: LayerActors,
	}
	g.group.Add(g.hero)
	g.syncHeroRect()
	return g
}

func (g *Game) syncHeroRect() {
	half := g.cfg.TileSize / 2
	x := int(g.heroX) - half
	y := int(g.heroY) - half
	g.hero.Rect = image.Rect(x, y, x+g.cfg.TileSize, y+g.cfg.TileSize)
}

// keyPressedOnce reports a key transition from up to down since last tick.
func (g *Game) keyPressedOnce(k ebiten.Key) bool {
	down := ebiten.IsKeyPressed(k)
	was := g.prevKeys[k]
	g.prevKeys[k] = down
	return down && !was
}

func (g *Game) Update() error {
	speed := heroSpeed * float64(g.cfg.TileSize) / baseTileSize
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		g.heroX -= speed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		g.heroX += speed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		g.heroY -= speed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		g.heroY += speed
	}

	// Keep the hero on the map.
	maxX := float64(g.cfg.MapW * g.cfg.TileSize)
	maxY := float64(g.cfg.MapH * g.cfg.TileSize)
	g.heroX = min(max(g.heroX, 0), maxX)
	g.heroY = min(max(g.heroY, 0), maxY)
	g.syncHeroRect()

	g.group.Center(g.heroX, g.heroY)
	// Drain a few queued tiles per tick so edge bands rarely land on the
	// draw path.
	g.group.Renderer().Update()

	if g.keyPressedOnce(ebiten.KeyF1) {
		g.showHUD = !g.showHUD
	}
	if g.keyPressedOnce(ebiten.KeyC) {
		if err := clipboard.WriteAll(g.Report()); err == nil {
			fmt.Println("frame report copied to clipboard")
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	t0 := time.Now()
	if g.cfg.Colorkey {
		g.frame.Fill(backdropColor)
	}
	if _, err := g.group.Draw(g.frame); err != nil {
		panic(err)
	}
	if g.tex == nil {
		g.tex = ebiten.NewImage(g.cfg.ViewportW, g.cfg.ViewportH)
	}
	g.tex.WritePixels(g.frame.RGBA().Pix)
	screen.DrawImage(g.tex, nil)

	g.frameTimes[g.frameIdx] = time.Since(t0)
	g.frameIdx = (g.frameIdx + 1) % frameWindow
	g.frameCount++

	if g.showHUD {
		ebitenutil.DebugPrintAt(screen, g.hudLine(), 4, 4)
		ebitenutil.DebugPrintAt(screen, "arrows/WASD move  F1 hud  C copy report", 4, g.cfg.ViewportH-16)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.ViewportW, g.cfg.ViewportH
}

func (g *Game) hudLine() string {
	avg, worst := g.frameStats()
	return fmt.Sprintf("fps %0.0f  draw %0.2fms (worst %0.2fms)  hero (%0.0f,%0.0f)",
		ebiten.ActualFPS(), avg.Seconds()*1000, worst.Seconds()*1000, g.heroX, g.heroY)
}

func (g *Game) frameStats() (avg, worst time.Duration) {
	n := min(g.frameCount, frameWindow)
	if n == 0 {
		return 0, 0
	}
	var sum time.Duration
	for i := 0; i < n; i++ {
		d := g.frameTimes[i]
		sum += d
		if d > worst {
			worst = d
		}
	}
	return sum / time.Duration(n), worst
}

// Report formats the recent frame timings for the clipboard.
func (g *Game) Report() string {
	avg, worst := g.frameStats()
	var b strings.Builder
	fmt.Fprintf(&b, "pyscroll demo frame report\n")
	fmt.Fprintf(&b, "map: %dx%d tiles @ %dpx, viewport %dx%d, padding %d\n",
		g.cfg.MapW, g.cfg.MapH, g.cfg.TileSize, g.cfg.ViewportW, g.cfg.ViewportH, g.cfg.Padding)
	fmt.Fprintf(&b, "frames sampled: %d\n", min(g.frameCount, frameWindow))
	fmt.Fprintf(&b, "draw time: avg %0.3fms, worst %0.3fms\n", avg.Seconds()*1000, worst.Seconds()*1000)
	fmt.Fprintf(&b, "hero: (%0.0f, %0.0f)\n", g.heroX, g.heroY)
	return b.String()
}
