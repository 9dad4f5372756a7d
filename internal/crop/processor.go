// Package crop renders the individual sub-images a split produced: each
// rectangle is cropped out of the source raster and written as a WebP file
// named after its output index.
package crop

import (
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/litai12/Tanva-sub005/internal/split"

	"github.com/HugoSmits86/nativewebp"
)

// Config holds shared resources for one crop run.
type Config struct {
	OutputDir string
	Workers   int
	Progress  bool // print a periodic rate line while running
}

// Result holds the outcome of rendering one rectangle.
type Result struct {
	Index   int
	Path    string
	Success bool
	Error   string
}

// Run renders all rectangles against the source image using a worker pool.
// Rectangle coordinates are interpreted in the source image's own pixel
// space, never in display space.
func Run(cfg Config, src *image.NRGBA, rects []split.Rect) []Result {
	total := len(rects)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress {
		go func() {
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						rate := float64(p) / elapsed
						fmt.Printf("  [%d/%d] %.1f crops/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	// Worker pool
	rectChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range rectChan {
				results[idx] = processRect(cfg, src, rects[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range rects {
		rectChan <- i
	}
	close(rectChan)

	wg.Wait()
	close(done)

	return results
}

func processRect(cfg Config, src *image.NRGBA, r split.Rect) Result {
	window := image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height).Intersect(src.Bounds())
	if window.Empty() {
		return Result{
			Index: r.Index,
			Error: fmt.Sprintf("rect %d outside source bounds", r.Index),
		}
	}

	// Copy the window into an origin-anchored buffer
	tile := image.NewNRGBA(image.Rect(0, 0, window.Dx(), window.Dy()))
	draw.Draw(tile, tile.Bounds(), src, window.Min, draw.Src)

	outPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("%d.webp", r.Index))
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return Result{Index: r.Index, Error: err.Error()}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return Result{Index: r.Index, Error: err.Error()}
	}
	defer f.Close()

	if err := nativewebp.Encode(f, tile, nil); err != nil {
		return Result{Index: r.Index, Error: fmt.Sprintf("WebP encode: %v", err)}
	}

	return Result{Index: r.Index, Path: outPath, Success: true}
}
