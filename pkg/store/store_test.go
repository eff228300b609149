//go:build !wasm

package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/praetorian-inc/schematic/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backends returns a fresh store per backend under test.
// PostgreSQL runs only when SCHEMATIC_TEST_POSTGRES_DSN is set.
func backends(t *testing.T) map[string]func(t *testing.T) Store {
	b := map[string]func(t *testing.T) Store{
		"memory": func(t *testing.T) Store {
			return NewMemory()
		},
		"sqlite": func(t *testing.T) Store {
			s, err := NewSQLite(filepath.Join(t.TempDir(), "schematic.db"))
			require.NoError(t, err)
			return s
		},
	}
	if dsn := os.Getenv("SCHEMATIC_TEST_POSTGRES_DSN"); dsn != "" {
		b["postgres"] = func(t *testing.T) Store {
			s, err := NewPostgres(dsn)
			require.NoError(t, err)
			for _, table := range []string{"part_numbers", "gear_ratios", "provenance", "schematics"} {
				_, err := s.db.Exec("DELETE FROM " + table)
				require.NoError(t, err)
			}
			return s
		}
	}
	return b
}

func fixture() (types.SchematicRecord, *types.PartNumber, *types.GearRatio) {
	id := types.ComputeSchematicID([]byte("467*35"))
	rec := types.SchematicRecord{ID: id, Rows: 1, Cols: 6}

	a := types.Number{ID: 0, Row: 0, StartCol: 0, EndCol: 2, Value: 467}
	b := types.Number{ID: 1, Row: 0, StartCol: 4, EndCol: 5, Value: 35}
	gear := types.Symbol{Coord: types.Coord{Row: 0, Col: 3}, Char: '*'}

	part := &types.PartNumber{
		SchematicID: id,
		Number:      a,
		Location:    a.Location(),
		Symbols:     []types.Symbol{gear},
	}
	part.ID = part.ComputeID()

	ratio := &types.GearRatio{
		SchematicID: id,
		Gear:        gear.Coord,
		Location:    types.PointLocation(gear.Coord),
		Numbers:     [2]types.Number{a, b},
		Ratio:       467 * 35,
	}
	ratio.ID = ratio.ComputeID()

	return rec, part, ratio
}

func TestStore_E2E(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			// Arrange
			s := open(t)
			defer s.Close()
			rec, part, gear := fixture()

			// Act
			require.NoError(t, s.AddSchematic(rec))
			require.NoError(t, s.AddProvenance(rec.ID, types.FileProvenance{FilePath: "/tmp/03.txt"}))
			require.NoError(t, s.AddPartNumber(part))
			require.NoError(t, s.AddGearRatio(gear))

			// Assert - schematics
			records, err := s.GetSchematics()
			require.NoError(t, err)
			require.Len(t, records, 1)
			assert.Equal(t, rec, records[0])

			exists, err := s.SchematicExists(rec.ID)
			require.NoError(t, err)
			assert.True(t, exists)

			exists, err = s.SchematicExists(types.ComputeSchematicID([]byte("other")))
			require.NoError(t, err)
			assert.False(t, exists)

			// Assert - parts round-trip
			parts, err := s.GetPartNumbers(rec.ID)
			require.NoError(t, err)
			require.Len(t, parts, 1)
			assert.Equal(t, part.ID, parts[0].ID)
			assert.Equal(t, part.Number, parts[0].Number)
			assert.Equal(t, part.Location, parts[0].Location)
			assert.Equal(t, part.Symbols, parts[0].Symbols)

			// Assert - gears round-trip
			gears, err := s.GetGearRatios(rec.ID)
			require.NoError(t, err)
			require.Len(t, gears, 1)
			assert.Equal(t, gear.Ratio, gears[0].Ratio)
			assert.Equal(t, gear.Numbers, gears[0].Numbers)
			assert.Equal(t, gear.Gear, gears[0].Gear)
			assert.Equal(t, gear.Location, gears[0].Location)

			// Assert - provenance
			prov, err := s.GetProvenance(rec.ID)
			require.NoError(t, err)
			assert.Equal(t, "/tmp/03.txt", prov.Path())
			assert.Equal(t, "file", prov.Kind())
		})
	}
}

func TestStore_Idempotent(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			defer s.Close()
			rec, part, gear := fixture()
			prov := types.InlineProvenance{Source: "stdin"}

			// Act - add everything twice
			for i := 0; i < 2; i++ {
				require.NoError(t, s.AddSchematic(rec))
				require.NoError(t, s.AddProvenance(rec.ID, prov))
				require.NoError(t, s.AddPartNumber(part))
				require.NoError(t, s.AddGearRatio(gear))
			}

			// Assert - stored once
			records, err := s.GetSchematics()
			require.NoError(t, err)
			assert.Len(t, records, 1)

			parts, err := s.GetAllPartNumbers()
			require.NoError(t, err)
			assert.Len(t, parts, 1)

			gears, err := s.GetAllGearRatios()
			require.NoError(t, err)
			assert.Len(t, gears, 1)

			provs, err := s.GetAllProvenance(rec.ID)
			require.NoError(t, err)
			require.Len(t, provs, 1)
			assert.Equal(t, prov, provs[0])
		})
	}
}

func TestStore_LargeValues(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			defer s.Close()
			rec, part, _ := fixture()
			part.Number.Value = 18446744073709551615

			require.NoError(t, s.AddSchematic(rec))
			require.NoError(t, s.AddPartNumber(part))

			parts, err := s.GetAllPartNumbers()
			require.NoError(t, err)
			require.Len(t, parts, 1)
			assert.Equal(t, uint64(18446744073709551615), parts[0].Number.Value)
		})
	}
}

func TestStore_MissingProvenance(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			defer s.Close()

			_, err := s.GetProvenance(types.ComputeSchematicID([]byte("nothing")))
			assert.Error(t, err)

			provs, err := s.GetAllProvenance(types.ComputeSchematicID([]byte("nothing")))
			require.NoError(t, err)
			assert.Empty(t, provs)
		})
	}
}

func TestNew(t *testing.T) {
	// In-memory
	s, err := New(Config{Path: ":memory:"})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)
	s.Close()

	// SQLite file
	s, err = New(Config{Path: filepath.Join(t.TempDir(), "results.db")})
	require.NoError(t, err)
	require.IsType(t, &SQLStore{}, s)
	assert.Equal(t, DialectSQLite, s.(*SQLStore).Dialect())
	s.Close()

	// Empty path
	_, err = New(Config{})
	assert.Error(t, err)
}

func TestStore_Interface(t *testing.T) {
	var _ Store = (*SQLStore)(nil)
	var _ Store = (*MemoryStore)(nil)
}

func TestIsPostgresDSN(t *testing.T) {
	assert.True(t, IsPostgresDSN("postgres://user@localhost/db"))
	assert.True(t, IsPostgresDSN("postgresql://user@localhost/db"))
	assert.False(t, IsPostgresDSN("schematic.db"))
	assert.False(t, IsPostgresDSN(":memory:"))
}

func TestDialect_Rebind(t *testing.T) {
	query := "INSERT INTO t (a, b, c) VALUES (?, ?, ?)"

	assert.Equal(t, query, DialectSQLite.Rebind(query))
	assert.Equal(t, "INSERT INTO t (a, b, c) VALUES ($1, $2, $3)", DialectPostgres.Rebind(query))
	assert.Equal(t, "postgres", DialectPostgres.String())
	assert.Equal(t, "sqlite", DialectSQLite.String())
}
