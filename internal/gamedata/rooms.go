package gamedata

import (
	"io/fs"

	"github.com/samdwyer/roomrunner/internal/world"
)

// RoomsFilename is the map file inside the data filesystem.
const RoomsFilename = "rooms.json"

// RoomDef is one map layout loaded from JSON.
type RoomDef struct {
	ID   string   `json:"id"`   // Room identifier used by connections (e.g., "hall")
	Rows []string `json:"rows"` // Map rows of 3-character cells
}

// RoomsFile represents the structure of rooms.json.
type RoomsFile struct {
	Start string    `json:"start"` // Room the player starts in unless configured otherwise
	Rooms []RoomDef `json:"rooms"`
}

// LoadRooms loads the room definitions from fsys.
func LoadRooms(fsys fs.FS) (RoomsFile, error) {
	return LoadFrom[RoomsFile](fsys, RoomsFilename)
}

// TileMaps parses every room into a tile map keyed by room id.
// Room ids must be unique.
func (f RoomsFile) TileMaps() (map[world.RoomID]*world.TileMap, error) {
	maps := make(map[world.RoomID]*world.TileMap, len(f.Rooms))
	for _, r := range f.Rooms {
		id := world.RoomID(r.ID)
		if _, ok := maps[id]; ok {
			return nil, &world.ConfigError{Op: "parse", Room: id, Err: world.ErrDuplicateRoom}
		}
		m, err := world.ParseTileMap(id, r.Rows)
		if err != nil {
			return nil, err
		}
		maps[id] = m
	}
	return maps, nil
}
