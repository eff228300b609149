package types

// NumberID addresses a Number inside the arena of the schematic that produced it.
type NumberID int

// Number is one maximal run of digits within a single row.
// StartCol <= EndCol, and spans never overlap within a row.
type Number struct {
	ID       NumberID `json:"id"`
	Row      int      `json:"row"`
	StartCol int      `json:"start_col"`
	EndCol   int      `json:"end_col"`
	Value    uint64   `json:"value"`
}

// Covers reports whether c lies on the number's span.
func (n Number) Covers(c Coord) bool {
	return c.Row == n.Row && n.StartCol <= c.Col && c.Col <= n.EndCol
}

// Width returns the number of cells the run occupies.
func (n Number) Width() int {
	return n.EndCol - n.StartCol + 1
}

// Location returns the 1-based source span of the run.
func (n Number) Location() Location {
	return Location{Source: SourceSpan{
		Start: Coord{Row: n.Row, Col: n.StartCol}.Point(),
		End:   Coord{Row: n.Row, Col: n.EndCol}.Point(),
	}}
}

// GearChar marks the symbol that can act as a gear.
const GearChar = '*'

// Symbol is a cell holding anything other than a digit or '.'.
type Symbol struct {
	Coord
	Char rune `json:"char"`
}

// IsGear reports whether the symbol is a gear candidate.
func (s Symbol) IsGear() bool {
	return s.Char == GearChar
}
