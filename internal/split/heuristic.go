package split

import "image"

// HeuristicStats records what the background pre-check saw and decided.
type HeuristicStats struct {
	SampledWidth  int
	SampledHeight int
	WhitePixels   int
	TotalPixels   int
	WhiteRatio    float64
	FullPixels    int
	Detect        bool // true when full-resolution region detection should run
}

// analyzeBackground classifies the sampled buffer and decides whether a full
// flood fill is worth running. Two gates: the background must look like a
// mostly-white canvas, and the full-resolution image must be small enough
// that an O(pixels) pass stays cheap.
func analyzeBackground(sampled *image.NRGBA, fullPixels int, opts Options) HeuristicStats {
	b := sampled.Bounds()
	w, h := b.Dx(), b.Dy()

	white := 0
	for y := 0; y < h; y++ {
		row := sampled.Pix[y*sampled.Stride : y*sampled.Stride+w*4]
		for x := 0; x < w; x++ {
			i := x * 4
			if row[i] >= opts.WhiteThreshold && row[i+1] >= opts.WhiteThreshold && row[i+2] >= opts.WhiteThreshold {
				white++
			}
		}
	}

	total := w * h
	st := HeuristicStats{
		SampledWidth:  w,
		SampledHeight: h,
		WhitePixels:   white,
		TotalPixels:   total,
		FullPixels:    fullPixels,
	}
	if total > 0 {
		st.WhiteRatio = float64(white) / float64(total)
	}

	st.Detect = st.WhiteRatio >= opts.MinWhiteRatio && fullPixels <= opts.MaxDetectPixels
	return st
}
