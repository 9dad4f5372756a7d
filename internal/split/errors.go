package split

import "errors"

// Sentinel errors for the failure states a split can end in. A failed split
// always surfaces the zero Result, never a partial rectangle list.
var (
	// ErrEmptySource means no source image or bytes were supplied.
	ErrEmptySource = errors.New("split: empty source")

	// ErrDecode means the source bytes could not be rasterized.
	ErrDecode = errors.New("split: decode source")

	// ErrRaster means a pixel buffer could not be allocated, typically
	// because the source dimensions are degenerate.
	ErrRaster = errors.New("split: raster surface")

	// ErrWorker means the background execution strategy failed. The host
	// recovers from it by retrying inline; callers only see it when both
	// strategies are exhausted.
	ErrWorker = errors.New("split: worker execution")
)
