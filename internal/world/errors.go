package world

import (
	"errors"
	"fmt"
)

// Sentinel errors for broken level data. They are always wrapped in a ConfigError.
var (
	ErrRaggedMap     = errors.New("map rows have unequal length")
	ErrCellLength    = errors.New("map row is not a whole number of cells")
	ErrGridSize      = errors.New("map size does not match the screen grid")
	ErrUnknownRoom   = errors.New("unknown room")
	ErrDuplicateRoom = errors.New("room defined more than once")
	ErrNoConnection  = errors.New("door has no outgoing connection")
	ErrMissingDoor   = errors.New("destination door not found")
	ErrSpawnBlocked  = errors.New("spawn position overlaps a wall")
)

// ConfigError reports level data that cannot be played.
// These are never recovered from: they mean the maps or connection table are wrong.
type ConfigError struct {
	Op   string // What was being done ("parse", "lookup", "enter", "validate")
	Room RoomID // Room involved, if any
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Room == "" {
		return fmt.Sprintf("world: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("world: %s %s: %v", e.Op, e.Room, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func configErr(op string, room RoomID, format string, args ...any) error {
	return &ConfigError{Op: op, Room: room, Err: fmt.Errorf(format, args...)}
}
