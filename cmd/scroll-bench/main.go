package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/multatronic/pyscroll/internal/demo"
)

func main() {
	var frames int
	var viewport int
	var mapSize int
	var tile int
	var padding int
	var clamp bool
	var scenario string
	var parallel int

	flag.IntVar(&frames, "frames", 2000, "frames per scenario run")
	flag.IntVar(&viewport, "viewport", 480, "square viewport size in pixels")
	flag.IntVar(&mapSize, "map", 300, "square map size in tiles")
	flag.IntVar(&tile, "tile", 16, "tile size in pixels")
	flag.IntVar(&padding, "padding", 4, "buffered tiles beyond the viewport")
	flag.BoolVar(&clamp, "clamp", true, "keep the camera inside the map")
	flag.StringVar(&scenario, "scenario", "all", "scenario name (pan, orbit, jump) or all")
	flag.IntVar(&parallel, "parallel", 0, "max concurrent runs (0 = one per scenario)")
	flag.Parse()

	if frames <= 0 {
		fmt.Println("error: -frames must be > 0")
		return
	}

	all := demo.Scenarios(float64(mapSize*tile), float64(mapSize*tile), tile)
	var selected []demo.Scenario
	for _, sc := range all {
		if scenario == "all" || scenario == sc.Name {
			selected = append(selected, sc)
		}
	}
	if len(selected) == 0 {
		fmt.Printf("error: unknown scenario %q\n", scenario)
		return
	}

	fmt.Printf("scroll-bench: %d frames, viewport %dx%d, map %dx%d @ %dpx, padding %d\n\n",
		frames, viewport, viewport, mapSize, mapSize, tile, padding)

	// Each run owns its renderer, so runs are independent and can execute
	// concurrently.
	results := make([]demo.BenchResult, len(selected))
	var g errgroup.Group
	if parallel > 0 {
		g.SetLimit(parallel)
	}
	for i, sc := range selected {
		g.Go(func() error {
			results[i] = demo.RunBench(demo.BenchConfig{
				ViewportW:   viewport,
				ViewportH:   viewport,
				MapW:        mapSize,
				MapH:        mapSize,
				TileSize:    tile,
				Padding:     padding,
				Frames:      frames,
				ClampCamera: clamp,
				Scenario:    sc,
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Scenario < results[j].Scenario })

	fmt.Printf("%-10s %10s %14s %12s %12s %14s\n",
		"scenario", "frames", "tile fetches", "frame avg", "frame p95", "fetches/frame")
	fmt.Println(strings.Repeat("-", 78))
	for _, res := range results {
		fmt.Printf("%-10s %10d %14d %12s %12s %14.1f\n",
			res.Scenario, res.Frames, res.TileFetches,
			res.PerFrame.Round(time.Microsecond), res.P95.Round(time.Microsecond),
			float64(res.TileFetches)/float64(res.Frames))
	}
}
