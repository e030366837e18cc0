// Package entity provides the player and its movement rules.
package entity

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/roomrunner/internal/telemetry"
	"github.com/samdwyer/roomrunner/internal/world"
)

const (
	// DefaultSpeed is the distance moved per tick on each held axis.
	DefaultSpeed = 5
	// DefaultSize is the player's side length in pixels.
	DefaultSize = 50
)

// PlayerOptions configures a new player.
type PlayerOptions struct {
	Start  world.RoomID // Room to start in
	Pos    world.Vec    // Start position (top-left)
	Size   world.Vec    // Bounding box size; zero means DefaultSize square
	Speed  int          // Pixels per tick; zero means DefaultSpeed
	Logger *zap.Logger  // Optional; nil disables logging
}

// Player is the controllable entity. It owns its position and facing and
// looks at the current room's walls and doors, but never keeps an old room
// around after a transition.
type Player struct {
	Pos     world.Vec   // Top-left of the bounding box
	Size    world.Vec   // Bounding box size
	Vel     world.Vec   // Displacement requested this tick
	Speed   int         // Pixels per tick per axis
	Facing  Direction   // Direction held this tick, DirNone when idle
	Heading Direction   // Last non-idle facing; used for sprites
	Room    *world.Room // Active room

	atlas  *world.Atlas
	logger *zap.Logger
}

// Transition describes a room change that happened during a tick.
type Transition struct {
	Door    world.CellCode // Door that was touched
	From    world.RoomID   // Room left
	To      world.RoomID   // Room entered
	Arrival world.CellCode // Door the player was placed at
}

// Step reports what a tick did.
type Step struct {
	Moved      bool
	Transition *Transition
}

// NewPlayer creates a player in the start room.
func NewPlayer(ctx context.Context, atlas *world.Atlas, opts PlayerOptions) (*Player, error) {
	if opts.Size == (world.Vec{}) {
		opts.Size = world.Vec{X: DefaultSize, Y: DefaultSize}
	}
	if opts.Speed == 0 {
		opts.Speed = DefaultSpeed
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	room, err := atlas.Enter(ctx, opts.Start)
	if err != nil {
		return nil, err
	}

	p := &Player{
		Pos:     opts.Pos,
		Size:    opts.Size,
		Speed:   opts.Speed,
		Facing:  DirNone,
		Heading: DirSouth,
		Room:    room,
		atlas:   atlas,
		logger:  opts.Logger,
	}
	if room.Blocked(p.Rect()) {
		return nil, &world.ConfigError{
			Op:   "spawn",
			Room: room.ID,
			Err:  fmt.Errorf("start (%d,%d): %w", p.Pos.X, p.Pos.Y, world.ErrSpawnBlocked),
		}
	}
	return p, nil
}

// Rect returns the player's bounding box.
func (p *Player) Rect() world.Rect {
	return world.NewRect(p.Pos, p.Size)
}

// Motion returns whether the player walked this tick.
func (p *Player) Motion() MotionState {
	return MotionOf(p.Vel.X, p.Vel.Y)
}

// Update runs one tick of movement: read held keys, move with wall sliding,
// update facing, then take a door if the player ends up on one.
// Errors only come from broken level data.
func (p *Player) Update(ctx context.Context, in InputSource) (Step, error) {
	left, right := in.Held(KeyLeft), in.Held(KeyRight)
	up, down := in.Held(KeyUp), in.Held(KeyDown)

	var west, east, north, south bool
	p.Vel = world.Vec{}
	if left && !right {
		p.Vel.X -= p.Speed
		west = true
	}
	if right && !left {
		p.Vel.X += p.Speed
		east = true
	}
	if up && !down {
		p.Vel.Y -= p.Speed
		north = true
	}
	if down && !up {
		p.Vel.Y += p.Speed
		south = true
	}

	old := p.Pos
	p.Pos = resolveMove(p.Pos, p.Size, p.Vel, p.Room.Walls)

	p.Facing = FacingFrom(north, south, east, west)
	if p.Facing != DirNone {
		p.Heading = p.Facing
	}

	step := Step{Moved: p.Pos != old}

	door, ok := p.Room.DoorAt(p.Rect())
	if !ok {
		return step, nil
	}
	tr, err := p.transition(ctx, door)
	if err != nil {
		return step, err
	}
	step.Transition = tr
	return step, nil
}

// transition moves the player through door into the connected room.
func (p *Player) transition(ctx context.Context, door world.Door) (*Transition, error) {
	tracer := telemetry.Tracer("entity")
	ctx, span := tracer.Start(ctx, "player.transition")
	defer span.End()

	conn, err := p.atlas.Graph().Lookup(door.ID)
	if err != nil {
		return nil, err
	}

	next, err := p.atlas.Enter(ctx, conn.Room)
	if err != nil {
		return nil, err
	}
	arrival, ok := next.Door(conn.To)
	if !ok {
		return nil, &world.ConfigError{
			Op:   "transition",
			Room: conn.Room,
			Err:  fmt.Errorf("door %s: %w", conn.To, world.ErrMissingDoor),
		}
	}

	tr := &Transition{Door: door.ID, From: p.Room.ID, To: next.ID, Arrival: conn.To}
	p.Room = next
	p.Pos = arrival.Min().Add(conn.Offset)

	span.SetAttributes(
		attribute.String("door", string(tr.Door)),
		attribute.String("room.from", string(tr.From)),
		attribute.String("room.to", string(tr.To)),
		attribute.String("door.arrival", string(tr.Arrival)),
		attribute.Int("player.x", p.Pos.X),
		attribute.Int("player.y", p.Pos.Y),
	)
	p.logger.Debug("room transition",
		zap.String("door", string(tr.Door)),
		zap.String("from", string(tr.From)),
		zap.String("to", string(tr.To)),
		zap.Int("x", p.Pos.X),
		zap.Int("y", p.Pos.Y),
	)
	return tr, nil
}
