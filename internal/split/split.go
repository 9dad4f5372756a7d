package split

import "image"

// Split decomposes img into crop rectangles for the requested output count
// using the default options. Content-based detection runs when the sampled
// background looks like a white canvas and the image is small enough;
// otherwise, or when detection comes back degenerate, a deterministic grid
// takes over. The returned Result carries geometry only and is safe to
// persist as-is.
//
// img must be anchored at (0,0), as source.Decode produces.
func Split(img *image.NRGBA, requested int) (Result, error) {
	return SplitWithOptions(img, requested, DefaultOptions())
}

// SplitWithOptions is Split with explicit detection options.
func SplitWithOptions(img *image.NRGBA, requested int, opts Options) (Result, error) {
	if img == nil {
		return Result{}, ErrEmptySource
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return Result{}, ErrEmptySource
	}

	stats, err := Analyze(img, opts)
	if err != nil {
		return Result{}, err
	}

	var regions []region
	if stats.Detect {
		regions = detectRegions(img, opts)
	}

	// A single region is the whole-image degenerate case; far more regions
	// than anyone asked for means the fill latched onto texture rather
	// than a layout. Either way the grid fallback is the honest answer.
	limit := 2 * maxInt(requested, DefaultCount)
	rects := make([]Rect, 0, len(regions))
	if len(regions) > 1 && len(regions) <= limit {
		for i, r := range regions {
			rects = append(rects, Rect{
				Index:  i,
				X:      r.minX,
				Y:      r.minY,
				Width:  r.width(),
				Height: r.height(),
			})
		}
	} else {
		rects = gridRects(clamp(requested, 1, MaxRects), w, h)
	}

	if len(rects) > MaxRects {
		rects = rects[:MaxRects]
	}

	return Result{Rects: rects, SourceWidth: w, SourceHeight: h}, nil
}

// Analyze runs the sampler and background heuristic without splitting.
func Analyze(img *image.NRGBA, opts Options) (HeuristicStats, error) {
	if img == nil {
		return HeuristicStats{}, ErrEmptySource
	}
	b := img.Bounds()
	sampled, err := sample(img, opts)
	if err != nil {
		return HeuristicStats{}, err
	}
	return analyzeBackground(sampled, b.Dx()*b.Dy(), opts), nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
