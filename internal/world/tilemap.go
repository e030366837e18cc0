package world

// RoomID names one of the predefined map layouts.
type RoomID string

// TileMap is a validated grid of 3-character cells for one room.
type TileMap struct {
	cells [][]CellCode
	cols  int
}

// ParseTileMap checks the rows of a textual map and splits them into cells.
// Every row must be a whole number of cells and all rows must have the same length.
// Lengths count characters, not bytes.
func ParseTileMap(id RoomID, rows []string) (*TileMap, error) {
	m := &TileMap{cells: make([][]CellCode, len(rows))}

	width := 0
	for i, row := range rows {
		chars := []rune(row)
		if len(chars)%CellWidth != 0 {
			return nil, configErr("parse", id, "row %d has %d characters: %w", i, len(chars), ErrCellLength)
		}
		if i == 0 {
			width = len(chars)
		} else if len(chars) != width {
			return nil, configErr("parse", id, "row %d has %d characters, row 0 has %d: %w",
				i, len(chars), width, ErrRaggedMap)
		}

		cells := make([]CellCode, 0, len(chars)/CellWidth)
		for c := 0; c < len(chars); c += CellWidth {
			cells = append(cells, CellCode(chars[c:c+CellWidth]))
		}
		m.cells[i] = cells
	}
	m.cols = width / CellWidth
	return m, nil
}

// MustParseTileMap parses a map, panicking on error.
func MustParseTileMap(id RoomID, rows []string) *TileMap {
	m, err := ParseTileMap(id, rows)
	if err != nil {
		panic(err)
	}
	return m
}

// Cols returns the number of cells per row.
func (m *TileMap) Cols() int {
	return m.cols
}

// Rows returns the number of rows.
func (m *TileMap) Rows() int {
	return len(m.cells)
}

// Cell returns the code at the given column and row.
func (m *TileMap) Cell(col, row int) CellCode {
	return m.cells[row][col]
}

// Build walks the grid and emits a wall rect for every wall cell and a door for every door cell.
// Cells are cell.X by cell.Y pixels and the grid starts at (0, 0).
func (m *TileMap) Build(cell Vec) (walls []Rect, doors []Door) {
	x, y := 0, 0
	for row := range m.cells {
		for col := 0; col < m.cols; col++ {
			code := m.Cell(col, row)
			r := Rect{X: x, Y: y, W: cell.X, H: cell.Y}
			switch {
			case code.IsWall():
				walls = append(walls, r)
			case code.IsDoor():
				doors = append(doors, Door{Rect: r, ID: code})
			}
			x += cell.X
		}
		x = 0
		y += cell.Y
	}
	return walls, doors
}
