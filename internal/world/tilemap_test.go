package world

import (
	"errors"
	"testing"
)

func TestBuildWallDoorFloor(t *testing.T) {
	m, err := ParseTileMap("test", []string{"XXXD00   "})
	if err != nil {
		t.Fatalf("ParseTileMap failed: %v", err)
	}

	walls, doors := m.Build(Vec{X: 30, Y: 30})

	if len(walls) != 1 {
		t.Fatalf("Expected 1 wall, got %d", len(walls))
	}
	if want := (Rect{X: 0, Y: 0, W: 30, H: 30}); walls[0] != want {
		t.Errorf("Wall = %+v, want %+v", walls[0], want)
	}

	if len(doors) != 1 {
		t.Fatalf("Expected 1 door, got %d", len(doors))
	}
	if want := (Door{Rect: Rect{X: 30, Y: 0, W: 30, H: 30}, ID: "D00"}); doors[0] != want {
		t.Errorf("Door = %+v, want %+v", doors[0], want)
	}
}

func TestBuildCursorAdvancesPerRow(t *testing.T) {
	m := MustParseTileMap("test", []string{
		"XXX      ",
		"   ...XXX",
		"D01D01   ",
	})

	walls, doors := m.Build(Vec{X: 20, Y: 10})

	wantWalls := []Rect{
		{X: 0, Y: 0, W: 20, H: 10},
		{X: 40, Y: 10, W: 20, H: 10},
	}
	if len(walls) != len(wantWalls) {
		t.Fatalf("Expected %d walls, got %d", len(wantWalls), len(walls))
	}
	for i := range wantWalls {
		if walls[i] != wantWalls[i] {
			t.Errorf("Wall %d = %+v, want %+v", i, walls[i], wantWalls[i])
		}
	}

	if len(doors) != 2 {
		t.Fatalf("Expected 2 doors, got %d", len(doors))
	}
	if doors[0].X != 0 || doors[1].X != 20 || doors[0].Y != 20 {
		t.Errorf("Unexpected door positions: %+v", doors)
	}
}

func TestParseTileMapCountsCharacters(t *testing.T) {
	m, err := ParseTileMap("unicode", []string{"é  XXX", "·D00··"})
	if err != nil {
		t.Fatalf("ParseTileMap failed: %v", err)
	}
	if m.Cols() != 2 || m.Rows() != 2 {
		t.Fatalf("Size = %dx%d, want 2x2", m.Cols(), m.Rows())
	}
	if got := m.Cell(0, 0); got != "é  " {
		t.Errorf("Cell(0,0) = %q, want %q", got, "é  ")
	}
	if got := m.Cell(1, 1); got != "0··" {
		t.Errorf("Cell(1,1) = %q, want %q", got, "0··")
	}

	walls, doors := m.Build(Vec{X: 10, Y: 10})
	if len(walls) != 1 || walls[0].X != 10 || walls[0].Y != 0 {
		t.Errorf("Expected one wall at (10,0), got %+v", walls)
	}
	if len(doors) != 0 {
		t.Errorf("Expected no doors, got %+v", doors)
	}

	if _, err := ParseTileMap("unicode", []string{"éé"}); !errors.Is(err, ErrCellLength) {
		t.Errorf("Two characters: error = %v, want ErrCellLength", err)
	}
}

func TestParseTileMapErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want error
	}{
		{"partial cell", []string{"XXXXX"}, ErrCellLength},
		{"ragged rows", []string{"XXXXXX", "XXX"}, ErrRaggedMap},
		{"partial cell in later row", []string{"XXX", "XX"}, ErrCellLength},
	}

	for _, tt := range tests {
		_, err := ParseTileMap("bad", tt.rows)
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: error = %v, want %v", tt.name, err, tt.want)
		}
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) {
			t.Errorf("%s: expected a *ConfigError, got %T", tt.name, err)
		} else if cfgErr.Room != "bad" {
			t.Errorf("%s: ConfigError.Room = %q, want %q", tt.name, cfgErr.Room, "bad")
		}
	}
}

func TestCellCodes(t *testing.T) {
	tests := []struct {
		code CellCode
		wall bool
		door bool
	}{
		{"XXX", true, false},
		{"D00", false, true},
		{"D09", false, true},
		{"D10", false, false},
		{"   ", false, false},
		{"...", false, false},
	}

	for _, tt := range tests {
		if tt.code.IsWall() != tt.wall {
			t.Errorf("%q.IsWall() = %v, want %v", tt.code, tt.code.IsWall(), tt.wall)
		}
		if tt.code.IsDoor() != tt.door {
			t.Errorf("%q.IsDoor() = %v, want %v", tt.code, tt.code.IsDoor(), tt.door)
		}
	}
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 30, H: 30}

	tests := []struct {
		other Rect
		want  bool
	}{
		{Rect{X: 29, Y: 29, W: 10, H: 10}, true},
		{Rect{X: 30, Y: 0, W: 10, H: 10}, false}, // touching edge
		{Rect{X: 0, Y: 30, W: 10, H: 10}, false},
		{Rect{X: -5, Y: -5, W: 50, H: 50}, true},
	}

	for _, tt := range tests {
		if got := a.Overlaps(tt.other); got != tt.want {
			t.Errorf("%+v.Overlaps(%+v) = %v, want %v", a, tt.other, got, tt.want)
		}
		if got := tt.other.Overlaps(a); got != tt.want {
			t.Errorf("Overlaps is not symmetric for %+v", tt.other)
		}
	}
}
