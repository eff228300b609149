//go:build !wasm

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/praetorian-inc/schematic/pkg/types"
)

// SQLStore implements Store over database/sql.
// The SQLite and PostgreSQL backends share it and differ only in Dialect.
type SQLStore struct {
	db      *sql.DB
	dialect Dialect
}

func openSQL(driver, dsn string, d Dialect) (*SQLStore, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if d == DialectSQLite {
		// Serialize writers; the analyzer reads files in parallel.
		db.SetMaxOpenConns(1)
	}

	// Initialize schema
	if err := CreateSchema(db, d); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLStore{db: db, dialect: d}, nil
}

// Dialect returns the backend's SQL dialect.
func (s *SQLStore) Dialect() Dialect {
	return s.dialect
}

func (s *SQLStore) exec(query string, args ...any) error {
	_, err := s.db.Exec(s.dialect.Rebind(query), args...)
	return err
}

// AddSchematic stores a schematic record.
func (s *SQLStore) AddSchematic(rec types.SchematicRecord) error {
	err := s.exec(`
		INSERT INTO schematics (id, row_count, col_count) VALUES (?, ?, ?)
		ON CONFLICT DO NOTHING
	`, rec.ID.Hex(), rec.Rows, rec.Cols)
	if err != nil {
		return fmt.Errorf("inserting schematic: %w", err)
	}
	return nil
}

// AddProvenance associates provenance with a schematic.
func (s *SQLStore) AddProvenance(id types.SchematicID, prov types.Provenance) error {
	err := s.exec(`
		INSERT INTO provenance (schematic_id, type, path) VALUES (?, ?, ?)
		ON CONFLICT DO NOTHING
	`, id.Hex(), prov.Kind(), prov.Path())
	if err != nil {
		return fmt.Errorf("inserting provenance: %w", err)
	}
	return nil
}

// AddPartNumber stores a part number (deduplicated).
func (s *SQLStore) AddPartNumber(p *types.PartNumber) error {
	// Serialize symbols to JSON
	symbolsJSON, err := json.Marshal(p.Symbols)
	if err != nil {
		return fmt.Errorf("marshaling symbols: %w", err)
	}

	err = s.exec(`
		INSERT INTO part_numbers (id, schematic_id, number_id, row_index, start_col, end_col, value, symbols_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`,
		p.ID,
		p.SchematicID.Hex(),
		int(p.Number.ID),
		p.Number.Row,
		p.Number.StartCol,
		p.Number.EndCol,
		strconv.FormatUint(p.Number.Value, 10),
		string(symbolsJSON),
	)
	if err != nil {
		return fmt.Errorf("inserting part number: %w", err)
	}
	return nil
}

// AddGearRatio stores a gear (deduplicated).
func (s *SQLStore) AddGearRatio(g *types.GearRatio) error {
	numbersJSON, err := json.Marshal(g.Numbers)
	if err != nil {
		return fmt.Errorf("marshaling numbers: %w", err)
	}

	err = s.exec(`
		INSERT INTO gear_ratios (id, schematic_id, row_index, col_index, ratio, numbers_json)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`,
		g.ID,
		g.SchematicID.Hex(),
		g.Gear.Row,
		g.Gear.Col,
		strconv.FormatUint(g.Ratio, 10),
		string(numbersJSON),
	)
	if err != nil {
		return fmt.Errorf("inserting gear ratio: %w", err)
	}
	return nil
}

// GetSchematics retrieves all schematic records.
func (s *SQLStore) GetSchematics() ([]types.SchematicRecord, error) {
	rows, err := s.db.Query(`SELECT id, row_count, col_count FROM schematics ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying schematics: %w", err)
	}
	defer rows.Close()

	var records []types.SchematicRecord
	for rows.Next() {
		var rec types.SchematicRecord
		if err := rows.Scan(&rec.ID, &rec.Rows, &rec.Cols); err != nil {
			return nil, fmt.Errorf("scanning schematic: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schematics: %w", err)
	}
	return records, nil
}

const partColumns = `id, schematic_id, number_id, row_index, start_col, end_col, value, symbols_json`

// GetPartNumbers retrieves the part numbers of one schematic.
func (s *SQLStore) GetPartNumbers(id types.SchematicID) ([]*types.PartNumber, error) {
	return s.queryParts(`
		SELECT `+partColumns+` FROM part_numbers
		WHERE schematic_id = ?
		ORDER BY row_index, start_col
	`, id.Hex())
}

// GetAllPartNumbers retrieves every stored part number.
func (s *SQLStore) GetAllPartNumbers() ([]*types.PartNumber, error) {
	return s.queryParts(`
		SELECT ` + partColumns + ` FROM part_numbers
		ORDER BY schematic_id, row_index, start_col
	`)
}

func (s *SQLStore) queryParts(query string, args ...any) ([]*types.PartNumber, error) {
	rows, err := s.db.Query(s.dialect.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("querying part numbers: %w", err)
	}
	defer rows.Close()

	var parts []*types.PartNumber
	for rows.Next() {
		var p types.PartNumber
		var numberID int
		var value string
		var symbolsJSON sql.NullString

		err := rows.Scan(
			&p.ID,
			&p.SchematicID,
			&numberID,
			&p.Number.Row,
			&p.Number.StartCol,
			&p.Number.EndCol,
			&value,
			&symbolsJSON,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning part number: %w", err)
		}

		p.Number.ID = types.NumberID(numberID)
		if p.Number.Value, err = strconv.ParseUint(value, 10, 64); err != nil {
			return nil, fmt.Errorf("parsing part value: %w", err)
		}
		p.Location = p.Number.Location()

		if symbolsJSON.Valid && symbolsJSON.String != "" {
			if err := json.Unmarshal([]byte(symbolsJSON.String), &p.Symbols); err != nil {
				return nil, fmt.Errorf("unmarshaling symbols: %w", err)
			}
		}

		parts = append(parts, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating part numbers: %w", err)
	}
	return parts, nil
}

const gearColumns = `id, schematic_id, row_index, col_index, ratio, numbers_json`

// GetGearRatios retrieves the gears of one schematic.
func (s *SQLStore) GetGearRatios(id types.SchematicID) ([]*types.GearRatio, error) {
	return s.queryGears(`
		SELECT `+gearColumns+` FROM gear_ratios
		WHERE schematic_id = ?
		ORDER BY row_index, col_index
	`, id.Hex())
}

// GetAllGearRatios retrieves every stored gear.
func (s *SQLStore) GetAllGearRatios() ([]*types.GearRatio, error) {
	return s.queryGears(`
		SELECT ` + gearColumns + ` FROM gear_ratios
		ORDER BY schematic_id, row_index, col_index
	`)
}

func (s *SQLStore) queryGears(query string, args ...any) ([]*types.GearRatio, error) {
	rows, err := s.db.Query(s.dialect.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("querying gear ratios: %w", err)
	}
	defer rows.Close()

	var gears []*types.GearRatio
	for rows.Next() {
		var g types.GearRatio
		var ratio, numbersJSON string

		err := rows.Scan(&g.ID, &g.SchematicID, &g.Gear.Row, &g.Gear.Col, &ratio, &numbersJSON)
		if err != nil {
			return nil, fmt.Errorf("scanning gear ratio: %w", err)
		}

		if g.Ratio, err = strconv.ParseUint(ratio, 10, 64); err != nil {
			return nil, fmt.Errorf("parsing gear ratio: %w", err)
		}
		if err := json.Unmarshal([]byte(numbersJSON), &g.Numbers); err != nil {
			return nil, fmt.Errorf("unmarshaling numbers: %w", err)
		}
		g.Location = types.PointLocation(g.Gear)

		gears = append(gears, &g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating gear ratios: %w", err)
	}
	return gears, nil
}

// GetProvenance retrieves the first provenance of a schematic.
func (s *SQLStore) GetProvenance(id types.SchematicID) (types.Provenance, error) {
	provs, err := s.GetAllProvenance(id)
	if err != nil {
		return nil, err
	}
	if len(provs) == 0 {
		return nil, fmt.Errorf("no provenance found for schematic %s", id.Hex())
	}
	return provs[0], nil
}

// GetAllProvenance retrieves every provenance of a schematic.
func (s *SQLStore) GetAllProvenance(id types.SchematicID) ([]types.Provenance, error) {
	rows, err := s.db.Query(s.dialect.Rebind(`
		SELECT type, path FROM provenance
		WHERE schematic_id = ?
		ORDER BY path
	`), id.Hex())
	if err != nil {
		return nil, fmt.Errorf("querying provenance: %w", err)
	}
	defer rows.Close()

	provs := []types.Provenance{}
	for rows.Next() {
		var kind, path string
		if err := rows.Scan(&kind, &path); err != nil {
			return nil, fmt.Errorf("scanning provenance: %w", err)
		}
		provs = append(provs, types.NewProvenance(kind, path))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating provenance: %w", err)
	}
	return provs, nil
}

// SchematicExists checks if a schematic has already been analyzed.
func (s *SQLStore) SchematicExists(id types.SchematicID) (bool, error) {
	var count int
	err := s.db.QueryRow(s.dialect.Rebind("SELECT COUNT(*) FROM schematics WHERE id = ?"), id.Hex()).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking schematic existence: %w", err)
	}
	return count > 0, nil
}

// Close closes the database connection.
func (s *SQLStore) Close() error {
	return s.db.Close()
}
