package types

import (
	"crypto/sha1"
	"database/sql/driver"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// SchematicID is a Git-style SHA-1 content hash (20 bytes) of a schematic's text.
type SchematicID [20]byte

// ComputeSchematicID computes the ID: SHA-1("blob {len}\0{content}").
// Identical grids share an ID regardless of where they were read from.
func ComputeSchematicID(content []byte) SchematicID {
	header := fmt.Sprintf("blob %d\x00", len(content))
	h := sha1.New()
	h.Write([]byte(header))
	h.Write(content)

	var id SchematicID
	copy(id[:], h.Sum(nil))
	return id
}

// Hex returns 40-character hex string.
func (id SchematicID) Hex() string {
	return hex.EncodeToString(id[:])
}

// Short returns the first 12 hex characters, for display.
func (id SchematicID) Short() string {
	return id.Hex()[:12]
}

// String implements Stringer (returns Hex()).
func (id SchematicID) String() string {
	return id.Hex()
}

// ParseSchematicID parses 40-char hex string to SchematicID.
func ParseSchematicID(hexStr string) (SchematicID, error) {
	if len(hexStr) != 40 {
		return SchematicID{}, fmt.Errorf("invalid schematic ID length: expected 40, got %d", len(hexStr))
	}

	decoded, err := hex.DecodeString(hexStr)
	if err != nil {
		return SchematicID{}, fmt.Errorf("invalid hex string: %w", err)
	}

	var id SchematicID
	copy(id[:], decoded)
	return id, nil
}

// MarshalJSON implements json.Marshaler.
func (id SchematicID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.Hex())
}

// UnmarshalJSON implements json.Unmarshaler.
func (id *SchematicID) UnmarshalJSON(data []byte) error {
	var hexStr string
	if err := json.Unmarshal(data, &hexStr); err != nil {
		return err
	}

	parsed, err := ParseSchematicID(hexStr)
	if err != nil {
		return err
	}

	*id = parsed
	return nil
}

// Value implements driver.Valuer for SQL serialization.
func (id SchematicID) Value() (driver.Value, error) {
	return id.Hex(), nil
}

// Scan implements sql.Scanner for SQL deserialization.
func (id *SchematicID) Scan(value interface{}) error {
	if value == nil {
		return fmt.Errorf("cannot scan nil into SchematicID")
	}

	var hexStr string
	switch v := value.(type) {
	case string:
		hexStr = v
	case []byte:
		hexStr = string(v)
	default:
		return fmt.Errorf("cannot scan type %T into SchematicID", value)
	}

	parsed, err := ParseSchematicID(hexStr)
	if err != nil {
		return err
	}

	*id = parsed
	return nil
}
