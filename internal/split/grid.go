package split

import "math"

// gridRects partitions a width×height image into n near-equal cells,
// cols = ceil(sqrt(n)) wide. Cell edges are computed independently per cell
// by rounding the ideal fractional boundary, so rounding error never drifts
// across the grid and the last row/column absorbs any remainder. Cells never
// overlap; when n fills the grid exactly they tile [0,width)×[0,height).
//
// Every cell must be at least one pixel, so n is capped at the pixel count
// and the grid shape at the image dimensions; an image smaller than the
// requested count yields fewer rectangles rather than cells outside it.
func gridRects(n, width, height int) []Rect {
	n = clamp(n, 1, MaxRects)
	if n > width*height {
		n = width * height
	}
	cols := int(math.Ceil(math.Sqrt(float64(n))))
	if cols > width {
		cols = width
	}
	rows := (n + cols - 1) / cols
	if rows > height {
		rows = height
		cols = (n + rows - 1) / rows
	}

	rects := make([]Rect, 0, n)
	for i := 0; i < n; i++ {
		col := i % cols
		row := i / cols

		x0 := boundary(col, cols, width)
		x1 := boundary(col+1, cols, width)
		y0 := boundary(row, rows, height)
		y1 := boundary(row+1, rows, height)

		r := Rect{
			Index:  i,
			X:      x0,
			Y:      y0,
			Width:  x1 - x0,
			Height: y1 - y0,
		}
		if r.Width < 1 {
			r.Width = 1
		}
		if r.Height < 1 {
			r.Height = 1
		}
		rects = append(rects, r)
	}
	return rects
}

func boundary(i, parts, extent int) int {
	return int(math.Round(float64(i) / float64(parts) * float64(extent)))
}
