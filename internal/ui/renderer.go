package ui

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roomrunner/internal/world"
)

// columnsPerCell keeps map cells roughly square in a terminal.
const columnsPerCell = 2

// Renderer draws the game as one terminal cell pair per map cell.
type Renderer struct {
	screen        *Screen
	cell          int
	width, height int
}

// NewRenderer creates a renderer for a logical screen of width x height pixels
// made of cell-sized map cells.
func NewRenderer(screen *Screen, cell, width, height int) *Renderer {
	return &Renderer{screen: screen, cell: cell, width: width, height: height}
}

// DrawRect paints every map cell the rect touches.
func (r *Renderer) DrawRect(rect world.Rect, c color.Color) {
	style := tcell.StyleDefault.Background(tcell.FromImageColor(c))
	r.fill(rect, ' ', style)
}

// DrawSprite marks the cells under the sprite, tinted with the sprite's center pixel.
func (r *Renderer) DrawSprite(img image.Image, pos world.Vec) {
	b := img.Bounds()
	center := img.At((b.Min.X+b.Max.X)/2, (b.Min.Y+b.Max.Y)/2)
	style := tcell.StyleDefault.
		Foreground(tcell.ColorBlack).
		Background(tcell.FromImageColor(center)).
		Bold(true)
	r.fill(world.NewRect(pos, world.Vec{X: b.Dx(), Y: b.Dy()}), '@', style)
}

// Size returns the logical screen size in pixels.
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

func (r *Renderer) fill(rect world.Rect, ch rune, style tcell.Style) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}
	for y := rect.Y / r.cell; y <= (rect.Y+rect.H-1)/r.cell; y++ {
		for x := rect.X / r.cell; x <= (rect.X+rect.W-1)/r.cell; x++ {
			for i := 0; i < columnsPerCell; i++ {
				r.screen.SetContent(x*columnsPerCell+i, y, ch, style)
			}
		}
	}
}
