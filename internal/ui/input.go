package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roomrunner/internal/entity"
)

// DefaultHoldTicks is how long a key press counts as held without a repeat.
const DefaultHoldTicks = 15

// HeldKeys turns terminal key presses into held-key state.
// Terminals only report presses and auto-repeats, so a key counts as held
// for a few ticks after its last press. Pressing a key releases its opposite.
type HeldKeys struct {
	tick     int
	hold     int
	lastSeen map[entity.Key]int
}

// NewHeldKeys creates held-key state with the given hold window in ticks.
func NewHeldKeys(hold int) *HeldKeys {
	return &HeldKeys{hold: hold, lastSeen: make(map[entity.Key]int)}
}

// Press records a press of k at the current tick.
func (h *HeldKeys) Press(k entity.Key) {
	h.lastSeen[k] = h.tick
	delete(h.lastSeen, opposite(k))
}

// Advance moves to the next tick.
func (h *HeldKeys) Advance() {
	h.tick++
}

// Held returns true if k was pressed within the hold window.
func (h *HeldKeys) Held(k entity.Key) bool {
	t, ok := h.lastSeen[k]
	return ok && h.tick-t < h.hold
}

// HandleKey records direction keys and reports whether the key asks to quit.
func (h *HeldKeys) HandleKey(ev *tcell.EventKey) (quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		h.Press(entity.KeyLeft)
	case tcell.KeyRight:
		h.Press(entity.KeyRight)
	case tcell.KeyUp:
		h.Press(entity.KeyUp)
	case tcell.KeyDown:
		h.Press(entity.KeyDown)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'a':
			h.Press(entity.KeyLeft)
		case 'd':
			h.Press(entity.KeyRight)
		case 'w':
			h.Press(entity.KeyUp)
		case 's':
			h.Press(entity.KeyDown)
		}
	}
	return false
}

func opposite(k entity.Key) entity.Key {
	switch k {
	case entity.KeyLeft:
		return entity.KeyRight
	case entity.KeyRight:
		return entity.KeyLeft
	case entity.KeyUp:
		return entity.KeyDown
	default:
		return entity.KeyUp
	}
}
