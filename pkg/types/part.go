package types

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
)

// PartNumber is a number counted toward the part-number sum.
type PartNumber struct {
	ID          string      `json:"id"` // SHA-1(schematic_id + '\0' + row + '\0' + start_col)
	SchematicID SchematicID `json:"schematic_id"`
	Number      Number      `json:"number"`
	Location    Location    `json:"location"`
	Symbols     []Symbol    `json:"symbols,omitempty"` // every symbol the number touches
}

// ComputeID derives the part's stable ID from its schematic and position.
// Two parts with the same value in different cells get different IDs.
func (p *PartNumber) ComputeID() string {
	return positionID(p.SchematicID, Coord{Row: p.Number.Row, Col: p.Number.StartCol})
}

// GearRatio is a gear touching exactly two distinct numbers.
type GearRatio struct {
	ID          string      `json:"id"` // SHA-1(schematic_id + '\0' + row + '\0' + col)
	SchematicID SchematicID `json:"schematic_id"`
	Gear        Coord       `json:"gear"`
	Location    Location    `json:"location"`
	Numbers     [2]Number   `json:"numbers"`
	Ratio       uint64      `json:"ratio"`
}

// ComputeID derives the gear's stable ID from its schematic and position.
func (g *GearRatio) ComputeID() string {
	return positionID(g.SchematicID, g.Gear)
}

func positionID(id SchematicID, c Coord) string {
	h := sha1.New()

	h.Write(id[:])
	h.Write([]byte{0})

	h.Write([]byte(fmt.Sprintf("%d", c.Row)))
	h.Write([]byte{0})

	h.Write([]byte(fmt.Sprintf("%d", c.Col)))

	return hex.EncodeToString(h.Sum(nil))
}
