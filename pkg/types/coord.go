package types

import "fmt"

// Coord is a zero-based (row, column) cell position in a schematic.
// Components are signed so neighbour probes may step off the grid.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Neighbors are the eight offsets around a cell, row-major, excluding the cell itself.
var Neighbors = [8]Coord{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Add returns c translated by the offset d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Point converts the cell to a 1-based line:column position.
func (c Coord) Point() SourcePoint {
	return SourcePoint{Line: c.Row + 1, Column: c.Col + 1}
}

// Less orders coordinates row-major.
func (c Coord) Less(o Coord) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

func (c Coord) String() string {
	return fmt.Sprintf("(r%d, c%d)", c.Row, c.Col)
}
