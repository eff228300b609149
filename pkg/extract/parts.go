package extract

import (
	"sort"

	"github.com/praetorian-inc/schematic/pkg/grid"
	"github.com/praetorian-inc/schematic/pkg/types"
)

// SumPartNumbers sums every number adjacent to at least one symbol.
// Each number contributes once no matter how many symbols it touches.
func SumPartNumbers(s *grid.Schematic) (uint64, error) {
	counted := NewTracker()

	var sum uint64
	for _, sym := range s.Symbols() {
		for _, id := range s.Adjacent(sym.Coord) {
			if !counted.Mark(id) {
				continue
			}
			var err error
			if sum, err = checkedAdd(sum, s.Number(id).Value); err != nil {
				return 0, err
			}
		}
	}
	return sum, nil
}

// PartNumbers lists the counted part numbers with the symbols each touches,
// ordered by row then start column.
func PartNumbers(s *grid.Schematic, id types.SchematicID) []*types.PartNumber {
	byNumber := make(map[types.NumberID]*types.PartNumber)

	for _, sym := range s.Symbols() {
		for _, nid := range s.Adjacent(sym.Coord) {
			p, ok := byNumber[nid]
			if !ok {
				n := s.Number(nid)
				p = &types.PartNumber{
					SchematicID: id,
					Number:      n,
					Location:    n.Location(),
				}
				p.ID = p.ComputeID()
				byNumber[nid] = p
			}
			p.Symbols = append(p.Symbols, sym)
		}
	}

	parts := make([]*types.PartNumber, 0, len(byNumber))
	for _, p := range byNumber {
		parts = append(parts, p)
	}
	sort.Slice(parts, func(i, j int) bool {
		return parts[i].Number.ID < parts[j].Number.ID
	})
	return parts
}
