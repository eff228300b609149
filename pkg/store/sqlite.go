//go:build !wasm

package store

import (
	_ "modernc.org/sqlite"
)

// NewSQLite creates a SQLite-based store backed by the pure-Go modernc driver.
func NewSQLite(path string) (*SQLStore, error) {
	return openSQL("sqlite", path, DialectSQLite)
}
