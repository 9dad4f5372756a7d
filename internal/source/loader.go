// Package source decodes split-engine input images into a normalized NRGBA
// raster. All formats the canvas accepts are handled here: PNG, JPEG, GIF,
// WebP and BMP by registration, TGA as an explicit fallback.
package source

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Decode rasterizes encoded image bytes into an NRGBA buffer with bounds
// anchored at (0,0).
func Decode(data []byte) (*image.NRGBA, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("source: empty image data")
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		// TGA has no magic bytes; registering it with image.Decode
		// would capture every input, so it is tried explicitly last.
		timg, terr := tga.Decode(bytes.NewReader(data))
		if terr != nil {
			return nil, fmt.Errorf("source: decode: %w", err)
		}
		img, format = timg, "tga"
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("source: decode %s: empty bounds", format)
	}
	return toNRGBA(img), nil
}

// Load reads and decodes an image file.
func Load(path string) (*image.NRGBA, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("source: read %s: %w", path, err)
	}
	img, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("source: %s: %w", path, err)
	}
	return img, nil
}

// toNRGBA converts any image to NRGBA format at origin (0,0).
func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	switch src.(type) {
	case *image.YCbCr, *image.Gray:
		// No alpha channel — draw and force alpha to 255
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
		for i := 3; i < len(dst.Pix); i += 4 {
			dst.Pix[i] = 255
		}
	default:
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				i := dst.PixOffset(x, y)
				dst.Pix[i] = c.R
				dst.Pix[i+1] = c.G
				dst.Pix[i+2] = c.B
				dst.Pix[i+3] = c.A
			}
		}
	}
	return dst
}
