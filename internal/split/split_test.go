package split

import (
	"image"
	"reflect"
	"testing"
)

func TestSplitWhiteCanvasFallsBackToGrid(t *testing.T) {
	// Pure white: detection runs, finds nothing, grid takes over.
	res, err := Split(whiteImage(300, 300), 4)
	if err != nil {
		t.Fatal(err)
	}
	if res.SourceWidth != 300 || res.SourceHeight != 300 {
		t.Errorf("source %dx%d, want 300x300", res.SourceWidth, res.SourceHeight)
	}

	want := []Rect{
		{Index: 0, X: 0, Y: 0, Width: 150, Height: 150},
		{Index: 1, X: 150, Y: 0, Width: 150, Height: 150},
		{Index: 2, X: 0, Y: 150, Width: 150, Height: 150},
		{Index: 3, X: 150, Y: 150, Width: 150, Height: 150},
	}
	if !reflect.DeepEqual(res.Rects, want) {
		t.Errorf("got %+v, want %+v", res.Rects, want)
	}
}

func TestSplitDetectedRegions(t *testing.T) {
	img := whiteImage(800, 400)
	paintBlack(img, 50, 50, 50)
	paintBlack(img, 700, 50, 50)

	res, err := Split(img, 2)
	if err != nil {
		t.Fatal(err)
	}

	want := []Rect{
		{Index: 0, X: 50, Y: 50, Width: 50, Height: 50},
		{Index: 1, X: 700, Y: 50, Width: 50, Height: 50},
	}
	if !reflect.DeepEqual(res.Rects, want) {
		t.Errorf("got %+v, want %+v", res.Rects, want)
	}

	for _, r := range res.Rects {
		if r.X < 0 || r.Y < 0 || r.X+r.Width > 800 || r.Y+r.Height > 400 {
			t.Errorf("rect %+v escapes source bounds", r)
		}
	}
}

func TestSplitSingleRegionIsDegenerate(t *testing.T) {
	// One big block of content: a single region is the whole-image case,
	// so the requested count wins via the grid.
	img := whiteImage(400, 400)
	paintBlack(img, 100, 100, 200)

	res, err := Split(img, 6)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Rects) != 6 {
		t.Fatalf("got %d rects, want grid of 6", len(res.Rects))
	}
}

func TestSplitTooManyRegionsIsDegenerate(t *testing.T) {
	// 25 separate squares with requested count 2: over 2*max(2, 9) = 18,
	// so detection is discarded for the grid.
	img := whiteImage(1000, 1000)
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			paintBlack(img, 40+col*190, 40+row*190, 30)
		}
	}

	res, err := Split(img, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Rects) != 2 {
		t.Fatalf("got %d rects, want grid of 2", len(res.Rects))
	}
}

func TestSplitKeepsManyRegionsWhenRequested(t *testing.T) {
	// Same 25 squares but a requested count of 20 raises the degeneracy
	// limit to 40, so the detected layout survives.
	img := whiteImage(1000, 1000)
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			paintBlack(img, 40+col*190, 40+row*190, 30)
		}
	}

	res, err := Split(img, 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Rects) != 25 {
		t.Fatalf("got %d rects, want 25 detected regions", len(res.Rects))
	}
	for i, r := range res.Rects {
		if r.Index != i {
			t.Errorf("rect %d has index %d", i, r.Index)
		}
	}
}

func TestSplitRequestedCountClamped(t *testing.T) {
	res, err := Split(grayImage(500, 500), 500)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Rects) != MaxRects {
		t.Errorf("got %d rects, want %d", len(res.Rects), MaxRects)
	}

	res, err = Split(grayImage(500, 500), -3)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Rects) != 1 {
		t.Errorf("got %d rects, want 1", len(res.Rects))
	}
}

func TestSplitNilSource(t *testing.T) {
	if _, err := Split(nil, 4); err != ErrEmptySource {
		t.Errorf("got %v, want ErrEmptySource", err)
	}
}

func TestSplitDeterministic(t *testing.T) {
	build := func() *image.NRGBA {
		img := whiteImage(600, 600)
		paintBlack(img, 30, 30, 100)
		paintBlack(img, 300, 40, 120)
		paintBlack(img, 60, 350, 90)
		return img
	}

	a, err := Split(build(), 4)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Split(build(), 4)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("two splits of identical input differ:\n%+v\n%+v", a, b)
	}
}

func TestReconcilePorts(t *testing.T) {
	tests := []struct {
		current, found, want int
	}{
		{1, 4, 4},   // grows to the result
		{6, 4, 6},   // never auto-shrinks
		{9, 9, 9},   // unchanged
		{0, 0, 1},   // floor
		{3, 80, 50}, // ceiling
	}
	for _, tt := range tests {
		if got := ReconcilePorts(tt.current, tt.found); got != tt.want {
			t.Errorf("ReconcilePorts(%d, %d) = %d, want %d",
				tt.current, tt.found, got, tt.want)
		}
		if got := ReconcilePorts(tt.current, tt.found); got < clamp(tt.current, 1, MaxRects) {
			t.Errorf("port count shrank: %d → %d", tt.current, got)
		}
	}
}
