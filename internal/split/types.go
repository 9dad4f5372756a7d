// Package split decomposes a composite raster image into axis-aligned
// crop rectangles: content-based detection over a white background when
// that looks worthwhile, deterministic grid tiling otherwise.
package split

// MaxRects is the hard cap on rectangles returned by one split.
const MaxRects = 50

// DefaultCount is the assumed output count when the caller requests none.
const DefaultCount = 9

// Rect is one crop window in source pixel coordinates.
// Index is the stable 0-based output-port identity.
type Rect struct {
	Index  int `json:"index"`
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Result is the outcome of one split: geometry only, no pixel data.
// Rects are in reading order; Rects[i].Index == i.
type Result struct {
	Rects        []Rect `json:"rects"`
	SourceWidth  int    `json:"sourceWidth"`
	SourceHeight int    `json:"sourceHeight"`
}

// region is a connected component's bounding box, inclusive on both ends.
type region struct {
	minX, minY int
	maxX, maxY int
}

func (r region) width() int  { return r.maxX - r.minX + 1 }
func (r region) height() int { return r.maxY - r.minY + 1 }

// Options holds the detection tuning knobs.
type Options struct {
	WhiteThreshold  uint8   // channel value at or above which a pixel counts as white
	MinWhiteRatio   float64 // minimum sampled white fraction to attempt detection
	MaxDetectPixels int     // full-resolution pixel count above which detection is skipped
	MinRegionSize   int     // components with width or height <= this are noise
	RowBucket       int     // vertical quantization for reading order
	SampleSize      int     // max edge of the downsampled heuristic buffer
}

// DefaultOptions returns the standard detection options.
func DefaultOptions() Options {
	return Options{
		WhiteThreshold:  250,
		MinWhiteRatio:   0.55,
		MaxDetectPixels: 2_000_000,
		MinRegionSize:   20,
		RowBucket:       50,
		SampleSize:      96,
	}
}

// ReconcilePorts returns the output-port count a node should display after a
// split found the given number of rectangles. The count only grows
// automatically, never shrinks, and stays within [1, MaxRects].
func ReconcilePorts(current, found int) int {
	n := current
	if found > n {
		n = found
	}
	return clamp(n, 1, MaxRects)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
