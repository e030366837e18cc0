package entity

import (
	"testing"

	"github.com/samdwyer/roomrunner/internal/world"
)

func TestResolveMove(t *testing.T) {
	size := world.Vec{X: 10, Y: 10}

	tests := []struct {
		name  string
		pos   world.Vec
		vel   world.Vec
		walls []world.Rect
		want  world.Vec
	}{
		{
			name: "free move",
			pos:  world.Vec{X: 0, Y: 0},
			vel:  world.Vec{X: 5, Y: 5},
			want: world.Vec{X: 5, Y: 5},
		},
		{
			name:  "blocked head on",
			pos:   world.Vec{X: 0, Y: 0},
			vel:   world.Vec{X: 5},
			walls: []world.Rect{{X: 12, Y: 0, W: 10, H: 10}},
			want:  world.Vec{X: 0, Y: 0},
		},
		{
			name:  "slide down along a wall on the right",
			pos:   world.Vec{X: 0, Y: 0},
			vel:   world.Vec{X: 5, Y: 5},
			walls: []world.Rect{{X: 12, Y: -20, W: 10, H: 60}},
			want:  world.Vec{X: 0, Y: 5},
		},
		{
			name:  "slide right along a floor",
			pos:   world.Vec{X: 0, Y: 0},
			vel:   world.Vec{X: 5, Y: 5},
			walls: []world.Rect{{X: -20, Y: 12, W: 60, H: 10}},
			want:  world.Vec{X: 5, Y: 0},
		},
		{
			name:  "diagonal into a convex corner is dropped",
			pos:   world.Vec{X: 10, Y: 10},
			vel:   world.Vec{X: 5, Y: 5},
			walls: []world.Rect{{X: 20, Y: 20, W: 10, H: 10}},
			want:  world.Vec{X: 10, Y: 10},
		},
		{
			name: "inside corner blocks both axes",
			pos:  world.Vec{X: 10, Y: 10},
			vel:  world.Vec{X: -5, Y: -5},
			walls: []world.Rect{
				{X: 0, Y: 0, W: 40, H: 10},
				{X: 0, Y: 0, W: 10, H: 40},
			},
			want: world.Vec{X: 10, Y: 10},
		},
	}

	for _, tt := range tests {
		got := resolveMove(tt.pos, size, tt.vel, tt.walls)
		if got != tt.want {
			t.Errorf("%s: resolveMove = %+v, want %+v", tt.name, got, tt.want)
		}
		for _, w := range tt.walls {
			if world.NewRect(got, size).Overlaps(w) {
				t.Errorf("%s: result overlaps wall %+v", tt.name, w)
			}
		}
	}
}

func TestFacingFrom(t *testing.T) {
	tests := []struct {
		n, s, e, w bool
		want       Direction
	}{
		{true, false, true, false, DirNorthEast},
		{true, false, false, true, DirNorthWest},
		{false, true, true, false, DirSouthEast},
		{false, true, false, true, DirSouthWest},
		{true, false, false, false, DirNorth},
		{false, false, false, true, DirWest},
		{true, true, false, false, DirNone},
		{true, true, true, false, DirEast},
		{false, false, false, false, DirNone},
	}

	for _, tt := range tests {
		if got := FacingFrom(tt.n, tt.s, tt.e, tt.w); got != tt.want {
			t.Errorf("FacingFrom(%v,%v,%v,%v) = %v, want %v", tt.n, tt.s, tt.e, tt.w, got, tt.want)
		}
	}
}
