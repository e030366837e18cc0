package world

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Connection is a directed edge of the room graph: touching door From
// moves the player next to door To in Room, shifted by Offset.
type Connection struct {
	From   CellCode
	To     CellCode
	Room   RoomID
	Offset Vec
}

// Graph is the door-to-door connection table, kept in declaration order.
type Graph struct {
	conns []Connection
}

// NewGraph creates a graph from connections in declaration order.
func NewGraph(conns []Connection) *Graph {
	g := &Graph{conns: make([]Connection, len(conns))}
	copy(g.conns, conns)
	return g
}

// Lookup returns the first connection leaving the given door.
func (g *Graph) Lookup(door CellCode) (Connection, error) {
	for _, c := range g.conns {
		if c.From == door {
			return c, nil
		}
	}
	return Connection{}, configErr("lookup", "", "door %s: %w", door, ErrNoConnection)
}

// Has returns true if the door has an outgoing connection.
func (g *Graph) Has(door CellCode) bool {
	_, err := g.Lookup(door)
	return err == nil
}

// Connections returns all connections in declaration order.
func (g *Graph) Connections() []Connection {
	return g.conns
}

// Lint reports connections that can never be used because an earlier
// connection leaves the same door.
func (g *Graph) Lint() []string {
	var warnings []string
	seen := mapset.New[CellCode]()
	for i, c := range g.conns {
		if seen.Has(c.From) {
			warnings = append(warnings,
				fmt.Sprintf("connection %d (%s -> %s in %s) is unreachable: %s already connected", i, c.From, c.To, c.Room, c.From))
			continue
		}
		seen.Put(c.From)
	}
	return warnings
}
