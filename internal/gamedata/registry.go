package gamedata

import (
	"io/fs"

	"github.com/samdwyer/roomrunner/data"
	"github.com/samdwyer/roomrunner/internal/world"
)

// Level is everything loaded from a data filesystem.
type Level struct {
	Atlas *world.Atlas
	Start world.RoomID // Start room declared in rooms.json
}

// LoadLevel loads rooms and connections from fsys and validates them together.
func LoadLevel(fsys fs.FS, opts world.AtlasOptions) (*Level, error) {
	rooms, err := LoadRooms(fsys)
	if err != nil {
		return nil, err
	}
	layouts, err := rooms.TileMaps()
	if err != nil {
		return nil, err
	}

	defs, err := LoadConnections(fsys)
	if err != nil {
		return nil, err
	}

	atlas, err := world.NewAtlas(layouts, Graph(defs), opts)
	if err != nil {
		return nil, err
	}
	return &Level{Atlas: atlas, Start: world.RoomID(rooms.Start)}, nil
}

// MustLoadLevel loads the embedded level, panicking on error.
func MustLoadLevel(opts world.AtlasOptions) *Level {
	level, err := LoadLevel(data.FS(), opts)
	if err != nil {
		panic(err)
	}
	return level
}
