package entity

import "github.com/samdwyer/roomrunner/internal/world"

// resolveMove applies vel to a box at pos and pushes it back out of walls.
//
// Each overlapping wall is tested by undoing one axis at a time: if the box
// still overlaps with x undone, the y movement is at fault and is limited; if
// it still overlaps with y undone, the x movement is limited. Limited axes are
// restored to their old value and stay limited for the remaining walls, which
// lets the box slide along a wall face on the free axis. Walls are visited in
// order against the partially resolved box, so corner hits against several
// walls depend on wall order.
//
// A diagonal move that only clips a corner leaves both single-axis undos clear;
// in that case the whole move is dropped so the box never ends inside a wall.
func resolveMove(pos, size, vel world.Vec, walls []world.Rect) world.Vec {
	old := pos
	box := world.NewRect(pos.Add(vel), size)

	limitX, limitY := false, false
	for _, wall := range walls {
		if !box.Overlaps(wall) {
			continue
		}

		box.X -= vel.X
		if box.Overlaps(wall) {
			limitY = true
		}
		box.X += vel.X

		box.Y -= vel.Y
		if box.Overlaps(wall) {
			limitX = true
		}
		box.Y += vel.Y

		if limitX {
			box.X = old.X
		}
		if limitY {
			box.Y = old.Y
		}
	}

	for _, wall := range walls {
		if box.Overlaps(wall) {
			return old
		}
	}
	return box.Min()
}
