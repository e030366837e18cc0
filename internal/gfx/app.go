// Package gfx runs the game in an ebiten window.
package gfx

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/samdwyer/roomrunner/internal/game"
)

const windowTitle = "roomrunner"

// App adapts a game.Game to ebiten's Update/Draw/Layout loop.
type App struct {
	ctx      context.Context
	game     *game.Game
	renderer *Renderer
	keyboard Keyboard
	logger   *zap.Logger
}

// NewApp creates the ebiten adapter for g.
func NewApp(ctx context.Context, g *game.Game, logger *zap.Logger) *App {
	cfg := g.Config()
	return &App{
		ctx:      ctx,
		game:     g,
		renderer: NewRenderer(cfg.ScreenWidth, cfg.ScreenHeight),
		logger:   logger,
	}
}

// Run opens the window and blocks until the game stops or ctx is cancelled.
func Run(ctx context.Context, g *game.Game, logger *zap.Logger) error {
	cfg := g.Config()
	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetTPS(cfg.TPS)

	logger.Info("opening window",
		zap.Int("width", cfg.ScreenWidth),
		zap.Int("height", cfg.ScreenHeight),
		zap.Int("tps", cfg.TPS),
	)
	err := ebiten.RunGame(NewApp(ctx, g, logger))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update runs one game tick.
func (a *App) Update() error {
	if a.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		a.game.Stop()
	}
	if a.game.State() == game.StateStopped {
		return ebiten.Termination
	}
	if err := a.game.Tick(a.ctx, a.keyboard); err != nil {
		a.logger.Error("tick failed", zap.Error(err))
		return err
	}
	return nil
}

// Draw paints the current frame.
func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.SetTarget(screen)
	a.game.Draw(a.renderer)
}

// Layout keeps the logical screen size fixed; ebiten scales it to the window.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.renderer.Size()
}
