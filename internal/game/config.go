package game

import (
	"fmt"
	"image/color"
	"os"
	"strconv"

	"github.com/samdwyer/roomrunner/internal/gamedata"
	"github.com/samdwyer/roomrunner/internal/world"
)

// Frontend selects how the game is shown.
type Frontend string

const (
	// FrontendEbiten opens a window and draws sprites.
	FrontendEbiten Frontend = "ebiten"
	// FrontendTerminal draws the rooms as terminal cells.
	FrontendTerminal Frontend = "terminal"
)

// envPrefix is prepended to every configuration variable.
const envPrefix = "ROOMRUNNER_"

// Config holds game configuration options.
type Config struct {
	// Logical screen size in pixels. The tile grid is derived from it.
	ScreenWidth  int
	ScreenHeight int
	// CellSize is the side of one map cell in pixels.
	CellSize int

	PlayerSize  int
	PlayerSpeed int
	// StartRoom overrides the start room declared in rooms.json when set.
	StartRoom string
	StartX    int
	StartY    int

	// TPS is the number of ticks per second.
	TPS      int
	Frontend Frontend
	Debug    bool
	// DataDir loads maps, connections and sprites from disk instead of the embedded data.
	DataDir string

	WallColor  color.RGBA
	DoorColor  color.RGBA
	FloorColor color.RGBA
}

// DefaultConfig returns the configuration used when no variables are set.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  900,
		ScreenHeight: 600,
		CellSize:     30,
		PlayerSize:   50,
		PlayerSpeed:  5,
		StartX:       100,
		StartY:       100,
		TPS:          60,
		Frontend:     FrontendEbiten,
		WallColor:    gamedata.MustParseHexColor("#000000"),
		DoorColor:    gamedata.MustParseHexColor("#808080"),
		FloorColor:   gamedata.MustParseHexColor("#FFFFFF"),
	}
}

// LoadConfig reads ROOMRUNNER_* environment variables on top of the defaults.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	ints := []struct {
		name string
		dst  *int
	}{
		{"SCREEN_WIDTH", &cfg.ScreenWidth},
		{"SCREEN_HEIGHT", &cfg.ScreenHeight},
		{"CELL_SIZE", &cfg.CellSize},
		{"PLAYER_SIZE", &cfg.PlayerSize},
		{"PLAYER_SPEED", &cfg.PlayerSpeed},
		{"START_X", &cfg.StartX},
		{"START_Y", &cfg.StartY},
		{"TPS", &cfg.TPS},
	}
	for _, v := range ints {
		if err := envInt(v.name, v.dst); err != nil {
			return cfg, err
		}
	}

	colors := []struct {
		name string
		dst  *color.RGBA
	}{
		{"WALL_COLOR", &cfg.WallColor},
		{"DOOR_COLOR", &cfg.DoorColor},
		{"FLOOR_COLOR", &cfg.FloorColor},
	}
	for _, v := range colors {
		if err := envColor(v.name, v.dst); err != nil {
			return cfg, err
		}
	}

	if s, ok := os.LookupEnv(envPrefix + "DEBUG"); ok {
		debug, err := strconv.ParseBool(s)
		if err != nil {
			return cfg, fmt.Errorf("invalid %sDEBUG: %w", envPrefix, err)
		}
		cfg.Debug = debug
	}
	if s, ok := os.LookupEnv(envPrefix + "FRONTEND"); ok {
		cfg.Frontend = Frontend(s)
	}
	cfg.StartRoom = os.Getenv(envPrefix + "START_ROOM")
	cfg.DataDir = os.Getenv(envPrefix + "DATA_DIR")

	return cfg, cfg.Validate()
}

// Validate checks that the values can run a game.
func (c Config) Validate() error {
	positive := []struct {
		name  string
		value int
	}{
		{"SCREEN_WIDTH", c.ScreenWidth},
		{"SCREEN_HEIGHT", c.ScreenHeight},
		{"CELL_SIZE", c.CellSize},
		{"PLAYER_SIZE", c.PlayerSize},
		{"PLAYER_SPEED", c.PlayerSpeed},
		{"TPS", c.TPS},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("invalid %s%s: must be positive, got %d", envPrefix, p.name, p.value)
		}
	}

	switch c.Frontend {
	case FrontendEbiten, FrontendTerminal:
	default:
		return fmt.Errorf("invalid %sFRONTEND: %q", envPrefix, c.Frontend)
	}
	return nil
}

// Grid returns the number of map cells that fit on the screen.
func (c Config) Grid() world.Vec {
	return world.Vec{X: c.ScreenWidth / c.CellSize, Y: c.ScreenHeight / c.CellSize}
}

// AtlasOptions returns the geometry maps are validated against.
func (c Config) AtlasOptions() world.AtlasOptions {
	return world.AtlasOptions{
		Cell:   world.Vec{X: c.CellSize, Y: c.CellSize},
		Grid:   c.Grid(),
		Player: world.Vec{X: c.PlayerSize, Y: c.PlayerSize},
	}
}

func envInt(name string, dst *int) error {
	s, ok := os.LookupEnv(envPrefix + name)
	if !ok {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid %s%s: %w", envPrefix, name, err)
	}
	*dst = v
	return nil
}

func envColor(name string, dst *color.RGBA) error {
	s, ok := os.LookupEnv(envPrefix + name)
	if !ok {
		return nil
	}
	c, err := gamedata.ParseHexColor(s)
	if err != nil {
		return fmt.Errorf("invalid %s%s: %w", envPrefix, name, err)
	}
	*dst = c
	return nil
}
