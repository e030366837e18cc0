package world

// Door is a door cell and the code identifying it in the room graph.
type Door struct {
	Rect
	ID CellCode
}

// Room is the collision geometry of the active map.
// A Room is never mutated; entering another room builds a new one.
type Room struct {
	ID    RoomID
	Walls []Rect
	Doors []Door
}

// NewRoom builds the walls and doors of a map.
func NewRoom(id RoomID, m *TileMap, cell Vec) *Room {
	walls, doors := m.Build(cell)
	return &Room{ID: id, Walls: walls, Doors: doors}
}

// Door returns the first door with the given code.
func (r *Room) Door(id CellCode) (Door, bool) {
	for _, d := range r.Doors {
		if d.ID == id {
			return d, true
		}
	}
	return Door{}, false
}

// DoorAt returns the first door overlapping rect.
func (r *Room) DoorAt(rect Rect) (Door, bool) {
	for _, d := range r.Doors {
		if rect.Overlaps(d.Rect) {
			return d, true
		}
	}
	return Door{}, false
}

// Blocked returns true if rect overlaps any wall.
func (r *Room) Blocked(rect Rect) bool {
	for _, w := range r.Walls {
		if rect.Overlaps(w) {
			return true
		}
	}
	return false
}
