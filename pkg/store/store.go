package store

import (
	"strings"

	"github.com/praetorian-inc/schematic/pkg/types"
)

// Store provides persistence for analysis results.
// This interface abstracts the underlying storage implementation,
// allowing for different backends (memory, SQLite, PostgreSQL).
type Store interface {
	// AddSchematic stores a schematic record (idempotent).
	AddSchematic(rec types.SchematicRecord) error

	// AddProvenance associates provenance with a schematic.
	AddProvenance(id types.SchematicID, prov types.Provenance) error

	// AddPartNumber stores a counted part number (deduplicated by ID).
	AddPartNumber(p *types.PartNumber) error

	// AddGearRatio stores a contributing gear (deduplicated by ID).
	AddGearRatio(g *types.GearRatio) error

	// GetSchematics retrieves all schematic records.
	GetSchematics() ([]types.SchematicRecord, error)

	// GetPartNumbers retrieves the part numbers of one schematic.
	GetPartNumbers(id types.SchematicID) ([]*types.PartNumber, error)

	// GetAllPartNumbers retrieves every stored part number.
	GetAllPartNumbers() ([]*types.PartNumber, error)

	// GetGearRatios retrieves the gears of one schematic.
	GetGearRatios(id types.SchematicID) ([]*types.GearRatio, error)

	// GetAllGearRatios retrieves every stored gear.
	GetAllGearRatios() ([]*types.GearRatio, error)

	// GetProvenance retrieves the first provenance of a schematic.
	GetProvenance(id types.SchematicID) (types.Provenance, error)

	// GetAllProvenance retrieves every provenance of a schematic.
	GetAllProvenance(id types.SchematicID) ([]types.Provenance, error)

	// SchematicExists checks if a schematic has already been analyzed.
	SchematicExists(id types.SchematicID) (bool, error)

	// Close closes the underlying connection.
	Close() error
}

// Config for store initialization.
type Config struct {
	// Path selects the backend:
	//   ":memory:"            in-memory store (useful for testing)
	//   "postgres://..."      PostgreSQL DSN
	//   anything else         SQLite database file
	Path string
}

// MemoryPath selects the in-memory backend.
const MemoryPath = ":memory:"

// IsPostgresDSN reports whether path names a PostgreSQL database.
func IsPostgresDSN(path string) bool {
	return strings.HasPrefix(path, "postgres://") || strings.HasPrefix(path, "postgresql://")
}
