package world

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roomrunner/internal/telemetry"
)

// AtlasOptions describes the geometry the maps are checked against.
type AtlasOptions struct {
	Cell   Vec // Cell size in pixels
	Grid   Vec // Expected columns and rows of every map; zero skips the check
	Player Vec // Player size, used to check spawn positions
}

// Atlas holds every map layout and the connection graph, validated together.
type Atlas struct {
	maps     map[RoomID]*TileMap
	graph    *Graph
	cell     Vec
	warnings []string
}

// NewAtlas validates the maps against the graph and returns an atlas that can build rooms.
//
// Validation fails if a map does not fit the grid, a door has no outgoing connection,
// a connection targets an unknown room or a door that does not exist there,
// or a spawn position overlaps a wall.
func NewAtlas(layouts map[RoomID]*TileMap, graph *Graph, opts AtlasOptions) (*Atlas, error) {
	a := &Atlas{
		maps:     make(map[RoomID]*TileMap, len(layouts)),
		graph:    graph,
		cell:     opts.Cell,
		warnings: graph.Lint(),
	}
	maps.Copy(a.maps, layouts)

	ids := slices.Sorted(maps.Keys(a.maps))
	for _, id := range ids {
		m := a.maps[id]
		if opts.Grid != (Vec{}) && (m.Cols() != opts.Grid.X || m.Rows() != opts.Grid.Y) {
			return nil, configErr("validate", id, "map is %dx%d cells, screen fits %dx%d: %w",
				m.Cols(), m.Rows(), opts.Grid.X, opts.Grid.Y, ErrGridSize)
		}
	}

	rooms := make(map[RoomID]*Room, len(ids))
	for _, id := range ids {
		rooms[id] = NewRoom(id, a.maps[id], a.cell)
	}

	for _, id := range ids {
		checked := mapset.New[CellCode]()
		for _, d := range rooms[id].Doors {
			if checked.Has(d.ID) {
				continue
			}
			checked.Put(d.ID)
			if !graph.Has(d.ID) {
				return nil, configErr("validate", id, "door %s: %w", d.ID, ErrNoConnection)
			}
		}
	}

	for i, c := range graph.Connections() {
		room, ok := rooms[c.Room]
		if !ok {
			return nil, configErr("validate", c.Room, "connection %d from %s: %w", i, c.From, ErrUnknownRoom)
		}
		door, ok := room.Door(c.To)
		if !ok {
			return nil, configErr("validate", c.Room, "connection %d from %s: door %s: %w", i, c.From, c.To, ErrMissingDoor)
		}
		spawn := NewRect(door.Min().Add(c.Offset), opts.Player)
		if room.Blocked(spawn) {
			return nil, configErr("validate", c.Room, "connection %d from %s: spawn at (%d,%d): %w",
				i, c.From, spawn.X, spawn.Y, ErrSpawnBlocked)
		}
		if d, ok := room.DoorAt(spawn); ok {
			a.warnings = append(a.warnings,
				fmt.Sprintf("connection %d from %s spawns on door %s in %s", i, c.From, d.ID, c.Room))
		}
	}

	return a, nil
}

// Graph returns the connection graph.
func (a *Atlas) Graph() *Graph {
	return a.graph
}

// Warnings returns non-fatal problems found during validation.
func (a *Atlas) Warnings() []string {
	return a.warnings
}

// Rooms returns the known room ids in sorted order.
func (a *Atlas) Rooms() []RoomID {
	return slices.Sorted(maps.Keys(a.maps))
}

// Enter builds a fresh Room for the given map.
func (a *Atlas) Enter(ctx context.Context, id RoomID) (*Room, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "room.enter")
	defer span.End()

	m, ok := a.maps[id]
	if !ok {
		span.SetAttributes(attribute.String("error", "unknown room"))
		return nil, configErr("enter", id, "%w", ErrUnknownRoom)
	}
	room := NewRoom(id, m, a.cell)

	span.SetAttributes(
		attribute.String("room.id", string(id)),
		attribute.Int("room.walls", len(room.Walls)),
		attribute.Int("room.doors", len(room.Doors)),
	)
	return room, nil
}
