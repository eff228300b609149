package types

// SourcePoint is line:column position (1-based).
type SourcePoint struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// SourceSpan is start-end line:column range (inclusive).
type SourceSpan struct {
	Start SourcePoint `json:"start"`
	End   SourcePoint `json:"end"`
}

// Location describes where an entity sits in the schematic text.
type Location struct {
	Source SourceSpan `json:"source"`
}

// PointLocation is the location of a single cell.
func PointLocation(c Coord) Location {
	p := c.Point()
	return Location{Source: SourceSpan{Start: p, End: p}}
}
