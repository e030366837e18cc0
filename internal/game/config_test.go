package game

import (
	"image/color"
	"testing"

	"github.com/samdwyer/roomrunner/internal/world"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.ScreenWidth != 900 || cfg.ScreenHeight != 600 || cfg.CellSize != 30 {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
	if cfg.Grid() != (world.Vec{X: 30, Y: 20}) {
		t.Errorf("Grid = %+v, want 30x20", cfg.Grid())
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("ROOMRUNNER_PLAYER_SPEED", "7")
	t.Setenv("ROOMRUNNER_FRONTEND", "terminal")
	t.Setenv("ROOMRUNNER_DEBUG", "true")
	t.Setenv("ROOMRUNNER_START_ROOM", "hall")
	t.Setenv("ROOMRUNNER_WALL_COLOR", "#102030")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.PlayerSpeed != 7 {
		t.Errorf("PlayerSpeed = %d, want 7", cfg.PlayerSpeed)
	}
	if cfg.Frontend != FrontendTerminal {
		t.Errorf("Frontend = %q, want terminal", cfg.Frontend)
	}
	if !cfg.Debug {
		t.Error("Debug should be true")
	}
	if cfg.StartRoom != "hall" {
		t.Errorf("StartRoom = %q, want hall", cfg.StartRoom)
	}
	if want := (color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 255}); cfg.WallColor != want {
		t.Errorf("WallColor = %v, want %v", cfg.WallColor, want)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name, value string
	}{
		{"ROOMRUNNER_CELL_SIZE", "thirty"},
		{"ROOMRUNNER_CELL_SIZE", "0"},
		{"ROOMRUNNER_TPS", "-1"},
		{"ROOMRUNNER_DEBUG", "maybe"},
		{"ROOMRUNNER_FRONTEND", "opengl"},
		{"ROOMRUNNER_DOOR_COLOR", "grey"},
	}

	for _, tt := range tests {
		t.Run(tt.name+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.name, tt.value)
			if _, err := LoadConfig(); err == nil {
				t.Errorf("Expected an error for %s=%q", tt.name, tt.value)
			}
		})
	}
}
