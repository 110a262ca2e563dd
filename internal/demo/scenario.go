package demo

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/multatronic/pyscroll"
)

// Scenario is a scripted camera path for benchmarking: Step returns the
// world-pixel center to request on a given frame.
type Scenario struct {
	Name string
	Step func(frame int) (x, y float64)
}

// Scenarios returns the standard camera paths over a map of the given pixel
// size. pan strafes at one tile per frame, orbit circles the map center with
// sub-tile motion, jump teleports to random points.
func Scenarios(mapW, mapH float64, tileSize int) []Scenario {
	rng := rand.New(rand.NewSource(99))
	jumps := make([][2]float64, 256)
	for i := range jumps {
		jumps[i] = [2]float64{rng.Float64() * mapW, rng.Float64() * mapH}
	}
	return []Scenario{
		{
			Name: "pan",
			Step: func(frame int) (float64, float64) {
				return float64(frame * tileSize), mapH / 2
			},
		},
		{
			Name: "orbit",
			Step: func(frame int) (float64, float64) {
				a := float64(frame) * 0.05
				r := math.Min(mapW, mapH) / 4
				return mapW/2 + math.Cos(a)*r, mapH/2 + math.Sin(a)*r
			},
		},
		{
			Name: "jump",
			Step: func(frame int) (float64, float64) {
				p := jumps[frame%len(jumps)]
				return p[0], p[1]
			},
		},
	}
}

// BenchConfig parameterizes one benchmark run.
type BenchConfig struct {
	ViewportW, ViewportH int
	MapW, MapH           int // in tiles
	TileSize             int
	Padding              int
	Frames               int
	ClampCamera          bool
	Scenario             Scenario
}

// BenchResult is the outcome of one run.
type BenchResult struct {
	Scenario    string
	Frames      int
	TileFetches int // data source requests, a proxy for tiles repainted
	Total       time.Duration
	PerFrame    time.Duration
	P95         time.Duration
}

// countingData counts tile image requests on the way through.
type countingData struct {
	*pyscroll.StaticData
	fetches int
}

func (d *countingData) TileImage(x, y, layer int) *pyscroll.Surface {
	d.fetches++
	return d.StaticData.TileImage(x, y, layer)
}

// RunBench drives one renderer through the scenario and measures frame
// times. Each run owns its renderer and surfaces, so runs may execute on
// separate goroutines.
func RunBench(cfg BenchConfig) BenchResult {
	data := &countingData{StaticData: BuildWorld(cfg.MapW, cfg.MapH, cfg.TileSize, 1234)}
	r := pyscroll.NewRenderer(data, 0, 0)
	r.Padding = cfg.Padding
	r.ClampCamera = cfg.ClampCamera
	if err := r.SetSize(cfg.ViewportW, cfg.ViewportH); err != nil {
		panic(fmt.Sprintf("demo: bench setup: %v", err))
	}
	dst := pyscroll.NewSurface(cfg.ViewportW, cfg.ViewportH)

	frameTimes := make([]time.Duration, 0, cfg.Frames)
	start := time.Now()
	for frame := 0; frame < cfg.Frames; frame++ {
		x, y := cfg.Scenario.Step(frame)
		t0 := time.Now()
		r.Center(x, y)
		if _, err := r.Draw(dst, dst.Bounds(), nil); err != nil {
			panic(fmt.Sprintf("demo: bench draw: %v", err))
		}
		frameTimes = append(frameTimes, time.Since(t0))
	}
	total := time.Since(start)

	sort.Slice(frameTimes, func(i, j int) bool { return frameTimes[i] < frameTimes[j] })
	var p95 time.Duration
	if len(frameTimes) > 0 {
		p95 = frameTimes[len(frameTimes)*95/100]
	}
	res := BenchResult{
		Scenario:    cfg.Scenario.Name,
		Frames:      cfg.Frames,
		TileFetches: data.fetches,
		Total:       total,
		P95:         p95,
	}
	if cfg.Frames > 0 {
		res.PerFrame = total / time.Duration(cfg.Frames)
	}
	return res
}
