//go:build !wasm

package store

import (
	"database/sql"
	"fmt"
)

// SchemaVersion is the current database schema version.
const SchemaVersion = 1

// CreateSchema creates the database schema if it doesn't exist.
func CreateSchema(db *sql.DB, d Dialect) error {
	// Create schema_version table
	if err := createSchemaVersionTable(db, d); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	// Create main tables
	if err := createSchematicsTable(db); err != nil {
		return fmt.Errorf("creating schematics table: %w", err)
	}

	if err := createPartNumbersTable(db); err != nil {
		return fmt.Errorf("creating part_numbers table: %w", err)
	}

	if err := createGearRatiosTable(db); err != nil {
		return fmt.Errorf("creating gear_ratios table: %w", err)
	}

	if err := createProvenanceTable(db); err != nil {
		return fmt.Errorf("creating provenance table: %w", err)
	}

	return nil
}

func createSchemaVersionTable(db *sql.DB, d Dialect) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Insert version if table is empty
	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM schema_version").Scan(&count)
	if err != nil {
		return err
	}

	if count == 0 {
		_, err = db.Exec(d.Rebind("INSERT INTO schema_version (version) VALUES (?)"), SchemaVersion)
		return err
	}

	return nil
}

func createSchematicsTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schematics (
			id TEXT PRIMARY KEY NOT NULL,
			row_count INTEGER NOT NULL,
			col_count INTEGER NOT NULL
		)
	`)
	return err
}

// Values are stored as decimal TEXT: a uint64 does not fit a signed 64-bit column.
func createPartNumbersTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS part_numbers (
			id TEXT PRIMARY KEY NOT NULL,
			schematic_id TEXT NOT NULL REFERENCES schematics(id),
			number_id INTEGER NOT NULL,
			row_index INTEGER NOT NULL,
			start_col INTEGER NOT NULL,
			end_col INTEGER NOT NULL,
			value TEXT NOT NULL,
			symbols_json TEXT
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_part_numbers_schematic_id ON part_numbers(schematic_id)
	`)
	return err
}

func createGearRatiosTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS gear_ratios (
			id TEXT PRIMARY KEY NOT NULL,
			schematic_id TEXT NOT NULL REFERENCES schematics(id),
			row_index INTEGER NOT NULL,
			col_index INTEGER NOT NULL,
			ratio TEXT NOT NULL,
			numbers_json TEXT NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_gear_ratios_schematic_id ON gear_ratios(schematic_id)
	`)
	return err
}

func createProvenanceTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS provenance (
			schematic_id TEXT NOT NULL REFERENCES schematics(id),
			type TEXT NOT NULL,
			path TEXT NOT NULL,
			UNIQUE(schematic_id, type, path)
		)
	`)
	if err != nil {
		return err
	}

	// Create index for efficient provenance lookup by schematic_id
	_, err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_provenance_schematic_id ON provenance(schematic_id)
	`)
	return err
}
