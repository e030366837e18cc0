package gfx

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/samdwyer/roomrunner/internal/entity"
)

// Keyboard reports held arrow keys (or WASD) from ebiten.
type Keyboard struct{}

var keyBindings = map[entity.Key][]ebiten.Key{
	entity.KeyLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	entity.KeyRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	entity.KeyUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	entity.KeyDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
}

// Held returns true if any key bound to k is pressed.
func (Keyboard) Held(k entity.Key) bool {
	for _, key := range keyBindings[k] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
