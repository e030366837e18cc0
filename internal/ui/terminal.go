package ui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/samdwyer/roomrunner/internal/game"
)

// Run drives the game in the terminal until it stops or ctx is cancelled.
func Run(ctx context.Context, g *game.Game, logger *zap.Logger) error {
	screen, err := NewScreen()
	if err != nil {
		return err
	}
	defer screen.Close()

	cfg := g.Config()
	renderer := NewRenderer(screen, cfg.CellSize, cfg.ScreenWidth, cfg.ScreenHeight)
	keys := NewHeldKeys(DefaultHoldTicks)

	quit := make(chan struct{})
	defer close(quit)
	events := screen.Events(quit)

	ticker := time.NewTicker(time.Second / time.Duration(cfg.TPS))
	defer ticker.Stop()

	logger.Info("running in terminal", zap.Int("tps", cfg.TPS))

	// Main game loop
	for g.State() == game.StatePlaying {
		select {
		case <-ctx.Done():
			g.Stop()

		case ev, ok := <-events:
			if !ok {
				g.Stop()
				continue
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if keys.HandleKey(ev) {
					g.Stop()
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			keys.Advance()
			if err := g.Tick(ctx, keys); err != nil {
				logger.Error("tick failed", zap.Error(err))
				return err
			}
			screen.Clear()
			g.Draw(renderer)
			screen.Show()
		}
	}
	return nil
}
