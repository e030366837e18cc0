package entity

import "math"

// velTolerance is the speed below which the player counts as standing.
const velTolerance = 0.1

// MotionState selects between the standing and walking animations.
type MotionState int

const (
	// Standing is shown while no movement was applied this tick.
	Standing MotionState = iota
	// Walking cycles through the walk frames.
	Walking
)

// String returns a human-readable state name.
func (s MotionState) String() string {
	switch s {
	case Standing:
		return "standing"
	case Walking:
		return "walking"
	default:
		return "unknown"
	}
}

// MotionOf derives the motion state from a velocity.
func MotionOf(vx, vy int) MotionState {
	if math.Abs(float64(vx)) < velTolerance && math.Abs(float64(vy)) < velTolerance {
		return Standing
	}
	return Walking
}
