package entity

// Direction is the single facing of the player. At most one direction is
// active at a time; DirNone means no direction key is held.
type Direction uint8

const (
	DirNone Direction = iota
	DirNorth
	DirSouth
	DirEast
	DirWest
	DirNorthEast
	DirNorthWest
	DirSouthEast
	DirSouthWest
)

// Directions lists the eight compass directions.
var Directions = []Direction{
	DirNorth, DirSouth, DirEast, DirWest,
	DirNorthEast, DirNorthWest, DirSouthEast, DirSouthWest,
}

// String returns the direction name used for sprite files.
func (d Direction) String() string {
	switch d {
	case DirNorth:
		return "north"
	case DirSouth:
		return "south"
	case DirEast:
		return "east"
	case DirWest:
		return "west"
	case DirNorthEast:
		return "north_east"
	case DirNorthWest:
		return "north_west"
	case DirSouthEast:
		return "south_east"
	case DirSouthWest:
		return "south_west"
	default:
		return "none"
	}
}

// FacingFrom combines cardinal movement flags into one direction.
// Two adjacent cardinals become the diagonal between them; opposing flags cancel.
func FacingFrom(north, south, east, west bool) Direction {
	if north && south {
		north, south = false, false
	}
	if east && west {
		east, west = false, false
	}

	switch {
	case north && east:
		return DirNorthEast
	case north && west:
		return DirNorthWest
	case south && east:
		return DirSouthEast
	case south && west:
		return DirSouthWest
	case north:
		return DirNorth
	case south:
		return DirSouth
	case east:
		return DirEast
	case west:
		return DirWest
	default:
		return DirNone
	}
}
