// Package game runs the tick loop: input, movement, room transitions and drawing.
package game

// State represents whether the loop should keep running.
type State int

const (
	// StatePlaying is the normal running state.
	StatePlaying State = iota
	// StateStopped means the frontend should exit its loop.
	StateStopped
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}
