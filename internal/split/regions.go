package split

import (
	"image"
	"sort"
)

// detectRegions finds bounding boxes of connected non-white content in the
// full-resolution image. 4-connected BFS flood fill with one visited flag
// per pixel; total work is O(width*height) regardless of region count.
// Components no larger than MinRegionSize on either axis are dropped as
// noise (anti-aliasing specks, stray pixels).
func detectRegions(img *image.NRGBA, opts Options) []region {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	stride := img.Stride

	isWhite := func(x, y int) bool {
		i := y*stride + x*4
		return img.Pix[i] >= opts.WhiteThreshold &&
			img.Pix[i+1] >= opts.WhiteThreshold &&
			img.Pix[i+2] >= opts.WhiteThreshold
	}

	visited := make([]bool, w*h)
	queue := make([]int, 0, 1024)
	var regions []region

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			if visited[idx] {
				continue
			}
			visited[idx] = true
			if isWhite(x, y) {
				continue
			}

			// BFS from this pixel, growing the bounding box as each
			// pixel is dequeued.
			r := region{minX: x, minY: y, maxX: x, maxY: y}
			queue = queue[:0]
			queue = append(queue, idx)

			for head := 0; head < len(queue); head++ {
				curr := queue[head]
				cy := curr / w
				cx := curr % w

				if cx < r.minX {
					r.minX = cx
				}
				if cx > r.maxX {
					r.maxX = cx
				}
				if cy < r.minY {
					r.minY = cy
				}
				if cy > r.maxY {
					r.maxY = cy
				}

				for _, n := range [4][2]int{{cx, cy - 1}, {cx, cy + 1}, {cx - 1, cy}, {cx + 1, cy}} {
					nx, ny := n[0], n[1]
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					ni := ny*w + nx
					if visited[ni] {
						continue
					}
					if isWhite(nx, ny) {
						visited[ni] = true
						continue
					}
					visited[ni] = true
					queue = append(queue, ni)
				}
			}

			if r.width() > opts.MinRegionSize && r.height() > opts.MinRegionSize {
				regions = append(regions, r)
			}
		}
	}

	orderRegions(regions, opts.RowBucket)
	return regions
}

// orderRegions sorts into reading order: top-to-bottom by quantized row
// bucket, then left-to-right. The bucket tolerates sub-images that sit in
// one visual row but are a few pixels off vertically.
func orderRegions(regions []region, rowBucket int) {
	sort.SliceStable(regions, func(i, j int) bool {
		ri, rj := regions[i].minY/rowBucket, regions[j].minY/rowBucket
		if ri != rj {
			return ri < rj
		}
		return regions[i].minX < regions[j].minX
	})
}
