package types

// SchematicRecord is the stored shape of an analyzed grid.
type SchematicRecord struct {
	ID   SchematicID `json:"id"`
	Rows int         `json:"rows"`
	Cols int         `json:"cols"`
}

// Summary is the full result of analyzing one schematic.
type Summary struct {
	SchematicID SchematicID   `json:"schematic_id"`
	Source      string        `json:"source,omitempty"`
	Rows        int           `json:"rows"`
	Cols        int           `json:"cols"`
	PartSum     uint64        `json:"part_sum"`
	GearSum     uint64        `json:"gear_sum"`
	Parts       []*PartNumber `json:"parts,omitempty"`
	Gears       []*GearRatio  `json:"gears,omitempty"`
}

// Record returns the storable shape of the summary.
func (s *Summary) Record() SchematicRecord {
	return SchematicRecord{ID: s.SchematicID, Rows: s.Rows, Cols: s.Cols}
}
