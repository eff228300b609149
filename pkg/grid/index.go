package grid

import "github.com/praetorian-inc/schematic/pkg/types"

// Index maps every digit cell to the number that covers it.
// It is built once from the number arena and is read-only afterwards.
type Index struct {
	owner map[types.Coord]types.NumberID
}

// NewIndex builds an index over numbers. Spans must not overlap within a row.
func NewIndex(numbers []types.Number) *Index {
	size := 0
	for _, n := range numbers {
		size += n.Width()
	}

	idx := &Index{owner: make(map[types.Coord]types.NumberID, size)}
	for _, n := range numbers {
		for col := n.StartCol; col <= n.EndCol; col++ {
			idx.owner[types.Coord{Row: n.Row, Col: col}] = n.ID
		}
	}
	return idx
}

// Lookup returns the number occupying c, if any.
func (idx *Index) Lookup(c types.Coord) (types.NumberID, bool) {
	id, ok := idx.owner[c]
	return id, ok
}

// Len returns the number of indexed cells.
func (idx *Index) Len() int {
	return len(idx.owner)
}
