package game

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/roomrunner/data"
	"github.com/samdwyer/roomrunner/internal/entity"
	"github.com/samdwyer/roomrunner/internal/gamedata"
	"github.com/samdwyer/roomrunner/internal/sprite"
	"github.com/samdwyer/roomrunner/internal/telemetry"
	"github.com/samdwyer/roomrunner/internal/world"
)

// Game holds the entire game state.
type Game struct {
	cfg    Config
	player *entity.Player
	sheet  *sprite.Sheet
	anim   sprite.Animator
	frame  int // walk frame chosen by the last tick
	logger *zap.Logger
	state  State

	ticks       int
	transitions int
}

// New loads the level and sprites and places the player in the start room.
func New(ctx context.Context, cfg Config, logger *zap.Logger) (*Game, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	if logger == nil {
		logger = zap.NewNop()
	}

	fsys := fs.FS(data.FS())
	if cfg.DataDir != "" {
		fsys = os.DirFS(cfg.DataDir)
	}

	level, err := gamedata.LoadLevel(fsys, cfg.AtlasOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to load level: %w", err)
	}
	for _, w := range level.Atlas.Warnings() {
		logger.Warn("level data", zap.String("warning", w))
	}

	sheet, err := sprite.LoadSheet(fsys, data.SpriteDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load sprites: %w", err)
	}

	start := level.Start
	if cfg.StartRoom != "" {
		start = world.RoomID(cfg.StartRoom)
	}
	player, err := entity.NewPlayer(ctx, level.Atlas, entity.PlayerOptions{
		Start:  start,
		Pos:    world.Vec{X: cfg.StartX, Y: cfg.StartY},
		Size:   world.Vec{X: cfg.PlayerSize, Y: cfg.PlayerSize},
		Speed:  cfg.PlayerSpeed,
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to place player: %w", err)
	}

	span.SetAttributes(
		attribute.Int("level.rooms", len(level.Atlas.Rooms())),
		attribute.Int("level.connections", len(level.Atlas.Graph().Connections())),
		attribute.String("player.room", string(start)),
		attribute.Int("player.start_x", cfg.StartX),
		attribute.Int("player.start_y", cfg.StartY),
	)
	logger.Info("game ready",
		zap.String("room", string(start)),
		zap.Int("rooms", len(level.Atlas.Rooms())),
		zap.String("frontend", string(cfg.Frontend)),
	)

	return &Game{
		cfg:    cfg,
		player: player,
		sheet:  sheet,
		logger: logger,
		state:  StatePlaying,
	}, nil
}

// Tick runs one step of the loop with the currently held keys.
// It returns an error only when the level data turns out to be broken.
func (g *Game) Tick(ctx context.Context, in entity.InputSource) error {
	if g.state != StatePlaying {
		return nil
	}
	g.ticks++

	step, err := g.player.Update(ctx, in)
	if err != nil {
		g.state = StateStopped
		return fmt.Errorf("tick %d: %w", g.ticks, err)
	}
	g.frame = g.anim.Next(g.player.Motion())
	if tr := step.Transition; tr != nil {
		g.transitions++
		g.logger.Info("entered room",
			zap.String("room", string(tr.To)),
			zap.String("via", string(tr.Door)),
			zap.Int("tick", g.ticks),
		)
	}
	return nil
}

// Stop ends the loop after the current tick.
func (g *Game) Stop() {
	if g.state == StatePlaying {
		g.logger.Info("stopping", zap.Int("ticks", g.ticks), zap.Int("transitions", g.transitions))
	}
	g.state = StateStopped
}

// State returns the loop state.
func (g *Game) State() State {
	return g.state
}

// Player returns the player.
func (g *Game) Player() *entity.Player {
	return g.player
}

// Config returns the configuration the game was started with.
func (g *Game) Config() Config {
	return g.cfg
}

// Ticks returns the number of ticks run so far.
func (g *Game) Ticks() int {
	return g.ticks
}
