package gamedata

import (
	"io/fs"

	"github.com/samdwyer/roomrunner/internal/world"
)

// ConnectionsFilename is the connection table inside the data filesystem.
const ConnectionsFilename = "connections.json"

// ConnectionDef is one row of the connection table.
type ConnectionDef struct {
	From    string `json:"from"`    // Door touched (e.g., "D00")
	To      string `json:"to"`      // Door the player arrives at
	Room    string `json:"room"`    // Room containing the arrival door
	OffsetX int    `json:"offsetX"` // Spawn offset from the arrival door
	OffsetY int    `json:"offsetY"`
}

// ConnectionsFile represents the structure of connections.json.
type ConnectionsFile struct {
	Connections []ConnectionDef `json:"connections"`
}

// LoadConnections loads the connection table from fsys.
func LoadConnections(fsys fs.FS) ([]ConnectionDef, error) {
	file, err := LoadFrom[ConnectionsFile](fsys, ConnectionsFilename)
	if err != nil {
		return nil, err
	}
	return file.Connections, nil
}

// Graph converts the table into a room graph, keeping declaration order.
func Graph(defs []ConnectionDef) *world.Graph {
	conns := make([]world.Connection, len(defs))
	for i, d := range defs {
		conns[i] = world.Connection{
			From:   world.CellCode(d.From),
			To:     world.CellCode(d.To),
			Room:   world.RoomID(d.Room),
			Offset: world.Vec{X: d.OffsetX, Y: d.OffsetY},
		}
	}
	return world.NewGraph(conns)
}
