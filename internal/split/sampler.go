package split

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// sample downsamples src to at most opts.SampleSize on each axis. Each
// dimension is capped independently; images already small enough pass
// through untouched. The buffer feeds only the background heuristic, so a
// cheap bilinear scale is enough.
func sample(src *image.NRGBA, opts Options) (*image.NRGBA, error) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrRaster, w, h)
	}

	sw, sh := w, h
	if sw > opts.SampleSize {
		sw = opts.SampleSize
	}
	if sh > opts.SampleSize {
		sh = opts.SampleSize
	}
	if sw == w && sh == h {
		return src, nil
	}

	dst := image.NewNRGBA(image.Rect(0, 0, sw, sh))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst, nil
}
