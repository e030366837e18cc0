package gfx

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/samdwyer/roomrunner/internal/world"
)

// Renderer draws rects and sprites onto an ebiten image.
type Renderer struct {
	target        *ebiten.Image
	width, height int
	images        map[image.Image]*ebiten.Image
}

// NewRenderer creates a renderer for a logical screen of the given size.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		width:  width,
		height: height,
		images: make(map[image.Image]*ebiten.Image),
	}
}

// SetTarget sets the image drawn on by later calls.
func (r *Renderer) SetTarget(target *ebiten.Image) {
	r.target = target
}

// DrawRect fills rect with c.
func (r *Renderer) DrawRect(rect world.Rect, c color.Color) {
	vector.DrawFilledRect(r.target,
		float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H),
		c, false)
}

// DrawSprite draws img with its top-left corner at pos.
// Each source image is uploaded once and reused.
func (r *Renderer) DrawSprite(img image.Image, pos world.Vec) {
	eimg, ok := r.images[img]
	if !ok {
		eimg = ebiten.NewImageFromImage(img)
		r.images[img] = eimg
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(pos.X), float64(pos.Y))
	r.target.DrawImage(eimg, op)
}

// Size returns the logical screen size.
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}
