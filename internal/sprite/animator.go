// Package sprite selects and loads the player's animation frames.
package sprite

import "github.com/samdwyer/roomrunner/internal/entity"

const (
	// FramesPerDirection is the length of every walk cycle.
	FramesPerDirection = 5

	counterCap = 50 // counter stops increasing here
	walkWrap   = 30 // walking restarts the cycle at 1 once the counter reaches this
)

// Animator paces the walk cycle. It advances once per game tick.
type Animator struct {
	counter int
}

// Next advances the counter and returns the frame index for state.
// Standing always shows frame 0, but the counter keeps running so that
// walking resumes wherever the counter happens to be.
func (a *Animator) Next(state entity.MotionState) int {
	if a.counter < counterCap {
		a.counter++
	}
	if state != entity.Walking {
		return 0
	}
	if a.counter >= walkWrap {
		a.counter = 1
	}
	return FrameIndex(a.counter)
}

// Counter returns the current counter value.
func (a *Animator) Counter() int {
	return a.counter
}

// FrameIndex maps a counter value to one of the five frames.
func FrameIndex(counter int) int {
	switch {
	case counter < 5:
		return 0
	case counter < 10:
		return 1
	case counter < 15:
		return 2
	case counter < 20:
		return 3
	default:
		return 4
	}
}
