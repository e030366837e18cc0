package world

// Vec is an integer 2D vector used for positions, velocities and offsets.
type Vec struct {
	X, Y int
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Rect is an axis-aligned box in pixel coordinates.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Dimensions
}

// NewRect builds a rect at pos with the given size.
func NewRect(pos, size Vec) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
}

// Min returns the top-left corner.
func (r Rect) Min() Vec {
	return Vec{X: r.X, Y: r.Y}
}

// Translate returns r moved by d.
func (r Rect) Translate(d Vec) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Contains returns true if the given point is inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Overlaps returns true if r and other share any area.
// Rects that only touch along an edge do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.X+other.W &&
		r.X+r.W > other.X &&
		r.Y < other.Y+other.H &&
		r.Y+r.H > other.Y
}
