// Package world provides tile map parsing, rooms and the door graph between them.
package world

import "github.com/zyedidia/generic/mapset"

// CellWidth is the number of characters encoding one map cell.
const CellWidth = 3

// CellCode is a 3-character map cell.
type CellCode string

const (
	// CellWall marks an impassable wall cell.
	CellWall CellCode = "XXX"
	// CellFloor is the canonical empty cell. Any unrecognised code is floor as well.
	CellFloor CellCode = "   "
)

// DoorCodes is the fixed set of codes that mark a door cell.
var DoorCodes = []CellCode{"D00", "D01", "D02", "D03", "D04", "D05", "D06", "D07", "D08", "D09"}

var doorCodeSet = func() mapset.Set[CellCode] {
	s := mapset.New[CellCode]()
	for _, c := range DoorCodes {
		s.Put(c)
	}
	return s
}()

// IsWall returns true if the cell is a wall.
func (c CellCode) IsWall() bool {
	return c == CellWall
}

// IsDoor returns true if the cell is one of the door codes.
func (c CellCode) IsDoor() bool {
	return doorCodeSet.Has(c)
}
