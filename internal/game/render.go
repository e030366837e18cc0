package game

import (
	"image"
	"image/color"

	"github.com/samdwyer/roomrunner/internal/world"
)

// Renderer is the drawing surface a frontend provides.
type Renderer interface {
	DrawRect(r world.Rect, c color.Color)
	DrawSprite(img image.Image, pos world.Vec)
	// Size returns the logical screen size in pixels.
	Size() (width, height int)
}

// Draw paints the floor, the room's walls and doors, then the player.
// Drawing never advances the animation; only Tick does.
func (g *Game) Draw(r Renderer) {
	w, h := r.Size()
	r.DrawRect(world.Rect{W: w, H: h}, g.cfg.FloorColor)

	room := g.player.Room
	for _, wall := range room.Walls {
		r.DrawRect(wall, g.cfg.WallColor)
	}
	for _, door := range room.Doors {
		r.DrawRect(door.Rect, g.cfg.DoorColor)
	}

	r.DrawSprite(g.sheet.Frame(g.player.Heading, g.frame), g.player.Pos)
}
