package world

import (
	"context"
	"errors"
	"testing"
)

// Two 5x4 rooms joined left-to-right; each door cell is one 10px cell.
var (
	roomA = []string{
		"XXXXXXXXXXXXXXX",
		"XXX         D00",
		"XXX         D00",
		"XXXXXXXXXXXXXXX",
	}
	roomB = []string{
		"XXXXXXXXXXXXXXX",
		"D01         XXX",
		"D01         XXX",
		"XXXXXXXXXXXXXXX",
	}
)

func testOptions() AtlasOptions {
	return AtlasOptions{
		Cell:   Vec{X: 10, Y: 10},
		Grid:   Vec{X: 5, Y: 4},
		Player: Vec{X: 10, Y: 10},
	}
}

func testLayouts() map[RoomID]*TileMap {
	return map[RoomID]*TileMap{
		"a": MustParseTileMap("a", roomA),
		"b": MustParseTileMap("b", roomB),
	}
}

func TestNewAtlasValid(t *testing.T) {
	g := NewGraph([]Connection{
		{From: "D00", To: "D01", Room: "b", Offset: Vec{X: 10}},
		{From: "D01", To: "D00", Room: "a", Offset: Vec{X: -10}},
	})

	a, err := NewAtlas(testLayouts(), g, testOptions())
	if err != nil {
		t.Fatalf("NewAtlas failed: %v", err)
	}
	if len(a.Warnings()) != 0 {
		t.Errorf("Expected no warnings, got %v", a.Warnings())
	}
	if got := a.Rooms(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Rooms() = %v, want [a b]", got)
	}

	room, err := a.Enter(context.Background(), "b")
	if err != nil {
		t.Fatalf("Enter failed: %v", err)
	}
	if room.ID != "b" {
		t.Errorf("Room.ID = %q, want b", room.ID)
	}
	d, ok := room.Door("D01")
	if !ok || d.X != 0 || d.Y != 10 {
		t.Errorf("Door(D01) = %+v, %v; want first D01 at (0,10)", d, ok)
	}

	again, _ := a.Enter(context.Background(), "b")
	if again == room {
		t.Error("Enter should build a new Room every time")
	}

	if _, err := a.Enter(context.Background(), "nowhere"); !errors.Is(err, ErrUnknownRoom) {
		t.Errorf("Enter(nowhere): error = %v, want ErrUnknownRoom", err)
	}
}

func TestNewAtlasErrors(t *testing.T) {
	tests := []struct {
		name  string
		conns []Connection
		opts  func(*AtlasOptions)
		want  error
	}{
		{
			name: "door without connection",
			conns: []Connection{
				{From: "D00", To: "D01", Room: "b", Offset: Vec{X: 10}},
			},
			want: ErrNoConnection,
		},
		{
			name: "unknown destination room",
			conns: []Connection{
				{From: "D00", To: "D01", Room: "c", Offset: Vec{X: 10}},
				{From: "D01", To: "D00", Room: "a", Offset: Vec{X: -10}},
			},
			want: ErrUnknownRoom,
		},
		{
			name: "missing destination door",
			conns: []Connection{
				{From: "D00", To: "D07", Room: "b", Offset: Vec{X: 10}},
				{From: "D01", To: "D00", Room: "a", Offset: Vec{X: -10}},
			},
			want: ErrMissingDoor,
		},
		{
			name: "spawn inside wall",
			conns: []Connection{
				{From: "D00", To: "D01", Room: "b", Offset: Vec{Y: -10}},
				{From: "D01", To: "D00", Room: "a", Offset: Vec{X: -10}},
			},
			want: ErrSpawnBlocked,
		},
		{
			name: "grid mismatch",
			conns: []Connection{
				{From: "D00", To: "D01", Room: "b", Offset: Vec{X: 10}},
				{From: "D01", To: "D00", Room: "a", Offset: Vec{X: -10}},
			},
			opts: func(o *AtlasOptions) { o.Grid = Vec{X: 6, Y: 4} },
			want: ErrGridSize,
		},
	}

	for _, tt := range tests {
		opts := testOptions()
		if tt.opts != nil {
			tt.opts(&opts)
		}
		_, err := NewAtlas(testLayouts(), NewGraph(tt.conns), opts)
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: error = %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestNewAtlasSpawnOnDoorWarns(t *testing.T) {
	g := NewGraph([]Connection{
		{From: "D00", To: "D01", Room: "b"},
		{From: "D01", To: "D00", Room: "a", Offset: Vec{X: -10}},
	})

	a, err := NewAtlas(testLayouts(), g, testOptions())
	if err != nil {
		t.Fatalf("NewAtlas failed: %v", err)
	}
	if len(a.Warnings()) != 1 {
		t.Errorf("Expected 1 warning, got %v", a.Warnings())
	}
}
