package grid

import "github.com/praetorian-inc/schematic/pkg/types"

// Schematic is the scanned, immutable view of an engine diagram.
// It is safe for concurrent readers.
type Schematic struct {
	Rows int
	Cols int

	symbols []types.Symbol
	digits  map[types.Coord]struct{}
	numbers []types.Number
	index   *Index
}

func newSchematic(rows, cols int, symbols []types.Symbol, digits map[types.Coord]struct{}, numbers []types.Number) *Schematic {
	return &Schematic{
		Rows:    rows,
		Cols:    cols,
		symbols: symbols,
		digits:  digits,
		numbers: numbers,
		index:   NewIndex(numbers),
	}
}

// Symbols returns the symbol cells in row-major order.
func (s *Schematic) Symbols() []types.Symbol {
	out := make([]types.Symbol, len(s.symbols))
	copy(out, s.symbols)
	return out
}

// Gears returns the '*' symbols in row-major order.
func (s *Schematic) Gears() []types.Symbol {
	var out []types.Symbol
	for _, sym := range s.symbols {
		if sym.IsGear() {
			out = append(out, sym)
		}
	}
	return out
}

// Numbers returns the number arena; the index of each entry is its ID.
func (s *Schematic) Numbers() []types.Number {
	out := make([]types.Number, len(s.numbers))
	copy(out, s.numbers)
	return out
}

// Number returns the arena entry for id.
func (s *Schematic) Number(id types.NumberID) types.Number {
	return s.numbers[id]
}

// IsDigit reports whether c is covered by some number.
func (s *Schematic) IsDigit(c types.Coord) bool {
	_, ok := s.digits[c]
	return ok
}

// DigitCount returns the size of the digit-coordinate set.
func (s *Schematic) DigitCount() int {
	return len(s.digits)
}

// Resolve returns the number that occupies c.
func (s *Schematic) Resolve(c types.Coord) (types.NumberID, bool) {
	if !s.IsDigit(c) {
		return 0, false
	}
	return s.index.Lookup(c)
}

// Adjacent returns the distinct numbers touching c, in probe order.
func (s *Schematic) Adjacent(c types.Coord) []types.NumberID {
	var ids []types.NumberID
	for _, d := range types.Neighbors {
		id, ok := s.Resolve(c.Add(d))
		if !ok || containsID(ids, id) {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func containsID(ids []types.NumberID, id types.NumberID) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}
