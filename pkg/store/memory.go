package store

import (
	"fmt"
	"sync"

	"github.com/praetorian-inc/schematic/pkg/types"
)

// MemoryStore implements Store using in-memory data structures.
// Used for ":memory:" paths, the serve loop, and WASM builds.
type MemoryStore struct {
	mu         sync.RWMutex
	schematics []types.SchematicRecord
	seen       map[types.SchematicID]bool
	parts      []*types.PartNumber
	partIDs    map[string]bool
	gears      []*types.GearRatio
	gearIDs    map[string]bool
	provenance map[types.SchematicID][]types.Provenance
}

// NewMemory creates a new in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{
		seen:       make(map[types.SchematicID]bool),
		partIDs:    make(map[string]bool),
		gearIDs:    make(map[string]bool),
		provenance: make(map[types.SchematicID][]types.Provenance),
	}
}

// AddSchematic stores a schematic record.
func (m *MemoryStore) AddSchematic(rec types.SchematicRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.seen[rec.ID] {
		// Idempotent - already exists
		return nil
	}
	m.seen[rec.ID] = true
	m.schematics = append(m.schematics, rec)
	return nil
}

// AddProvenance associates provenance with a schematic.
func (m *MemoryStore) AddProvenance(id types.SchematicID, prov types.Provenance) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.provenance[id] {
		if p.Kind() == prov.Kind() && p.Path() == prov.Path() {
			return nil
		}
	}
	m.provenance[id] = append(m.provenance[id], prov)
	return nil
}

// AddPartNumber stores a part number (deduplicated).
func (m *MemoryStore) AddPartNumber(p *types.PartNumber) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.partIDs[p.ID] {
		return nil
	}
	m.partIDs[p.ID] = true
	m.parts = append(m.parts, p)
	return nil
}

// AddGearRatio stores a gear (deduplicated).
func (m *MemoryStore) AddGearRatio(g *types.GearRatio) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.gearIDs[g.ID] {
		return nil
	}
	m.gearIDs[g.ID] = true
	m.gears = append(m.gears, g)
	return nil
}

// GetSchematics retrieves all schematic records in insertion order.
func (m *MemoryStore) GetSchematics() ([]types.SchematicRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]types.SchematicRecord, len(m.schematics))
	copy(result, m.schematics)
	return result, nil
}

// GetPartNumbers retrieves the part numbers of one schematic.
func (m *MemoryStore) GetPartNumbers(id types.SchematicID) ([]*types.PartNumber, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := []*types.PartNumber{}
	for _, p := range m.parts {
		if p.SchematicID == id {
			result = append(result, p)
		}
	}
	return result, nil
}

// GetAllPartNumbers retrieves every stored part number.
func (m *MemoryStore) GetAllPartNumbers() ([]*types.PartNumber, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Return a copy to avoid external modifications
	result := make([]*types.PartNumber, len(m.parts))
	copy(result, m.parts)
	return result, nil
}

// GetGearRatios retrieves the gears of one schematic.
func (m *MemoryStore) GetGearRatios(id types.SchematicID) ([]*types.GearRatio, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := []*types.GearRatio{}
	for _, g := range m.gears {
		if g.SchematicID == id {
			result = append(result, g)
		}
	}
	return result, nil
}

// GetAllGearRatios retrieves every stored gear.
func (m *MemoryStore) GetAllGearRatios() ([]*types.GearRatio, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*types.GearRatio, len(m.gears))
	copy(result, m.gears)
	return result, nil
}

// GetProvenance retrieves the first provenance of a schematic.
func (m *MemoryStore) GetProvenance(id types.SchematicID) (types.Provenance, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	provs := m.provenance[id]
	if len(provs) == 0 {
		return nil, fmt.Errorf("no provenance found for schematic %s", id.Hex())
	}
	return provs[0], nil
}

// GetAllProvenance retrieves every provenance of a schematic.
func (m *MemoryStore) GetAllProvenance(id types.SchematicID) ([]types.Provenance, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]types.Provenance, len(m.provenance[id]))
	copy(result, m.provenance[id])
	return result, nil
}

// SchematicExists checks if a schematic has already been analyzed.
func (m *MemoryStore) SchematicExists(id types.SchematicID) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.seen[id], nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error {
	return nil
}
