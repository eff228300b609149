//go:build !wasm

package store

import "fmt"

// New creates a store for native builds.
func New(cfg Config) (Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("path is required")
	}

	switch {
	case cfg.Path == MemoryPath:
		return NewMemory(), nil
	case IsPostgresDSN(cfg.Path):
		return NewPostgres(cfg.Path)
	default:
		return NewSQLite(cfg.Path)
	}
}
