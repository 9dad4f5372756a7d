package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/litai12/Tanva-sub005/internal/source"
	"github.com/litai12/Tanva-sub005/internal/split"
)

// splitinfo prints what the background heuristic sees for an image and, when
// detection would run, the regions it finds. Useful for tuning thresholds
// against real composites.
func main() {
	count := flag.Int("count", split.DefaultCount, "Requested output count (1-50)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: splitinfo [-count N] <image>")
		os.Exit(1)
	}
	path := flag.Arg(0)

	img, err := source.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := split.DefaultOptions()
	stats, err := split.Analyze(img, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	b := img.Bounds()
	fmt.Printf("Image: %s (%dx%d, %d px)\n", path, b.Dx(), b.Dy(), stats.FullPixels)
	fmt.Printf("Sample: %dx%d\n", stats.SampledWidth, stats.SampledHeight)
	fmt.Printf("White: %d/%d (ratio %.3f, threshold %.2f)\n",
		stats.WhitePixels, stats.TotalPixels, stats.WhiteRatio, opts.MinWhiteRatio)

	if !stats.Detect {
		reason := "background not a white canvas"
		if stats.WhiteRatio >= opts.MinWhiteRatio {
			reason = fmt.Sprintf("image over %d px detection gate", opts.MaxDetectPixels)
		}
		fmt.Printf("Decision: grid fallback (%s)\n", reason)
	} else {
		fmt.Println("Decision: region detection")
	}

	res, err := split.Split(img, *count)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rects: %d (requested %d)\n", len(res.Rects), *count)
	for _, r := range res.Rects {
		fmt.Printf("  [%2d] x=%-5d y=%-5d w=%-5d h=%d\n", r.Index, r.X, r.Y, r.Width, r.Height)
	}
}
