package sprite

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Mirror flips src left to right.
func Mirror(src image.Image) *image.RGBA {
	b := src.Bounds()
	return transform(src, f64.Aff3{
		-1, 0, float64(b.Min.X + b.Max.X),
		0, 1, 0,
	})
}

// FlipVertical flips src top to bottom.
func FlipVertical(src image.Image) *image.RGBA {
	b := src.Bounds()
	return transform(src, f64.Aff3{
		1, 0, 0,
		0, -1, float64(b.Min.Y + b.Max.Y),
	})
}

// Rotate180 turns src half a turn around its center.
func Rotate180(src image.Image) *image.RGBA {
	b := src.Bounds()
	return transform(src, f64.Aff3{
		-1, 0, float64(b.Min.X + b.Max.X),
		0, -1, float64(b.Min.Y + b.Max.Y),
	})
}

// transform maps src onto a same-sized canvas; m takes source to destination coordinates.
func transform(src image.Image, m f64.Aff3) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(b)
	draw.NearestNeighbor.Transform(dst, m, src, b, draw.Src, nil)
	return dst
}
