//go:build !wasm

package store

import (
	"fmt"
	"os"
)

// MergeConfig configures the merge operation.
type MergeConfig struct {
	// SourcePaths are the databases to merge from.
	SourcePaths []string
	// DestPath is the destination database (any path accepted by New).
	DestPath string
}

// MergeStats tracks merge operation statistics.
type MergeStats struct {
	SchematicsMerged  int
	PartNumbersMerged int
	GearRatiosMerged  int
	ProvenanceMerged  int
	SourcesProcessed  int
}

// Merge combines multiple result databases into one.
// Deduplication is handled by the destination's idempotent inserts.
func Merge(cfg MergeConfig) (*MergeStats, error) {
	if len(cfg.SourcePaths) == 0 {
		return nil, fmt.Errorf("no source databases specified")
	}
	if cfg.DestPath == "" {
		return nil, fmt.Errorf("destination path is required")
	}

	// Open/create destination database
	dest, err := New(Config{Path: cfg.DestPath})
	if err != nil {
		return nil, fmt.Errorf("opening destination database: %w", err)
	}
	defer dest.Close()

	stats := &MergeStats{}

	// Process each source database
	for _, sourcePath := range cfg.SourcePaths {
		sourceStats, err := mergeFrom(dest, sourcePath)
		if err != nil {
			return stats, fmt.Errorf("merging from %s: %w", sourcePath, err)
		}
		stats.SchematicsMerged += sourceStats.SchematicsMerged
		stats.PartNumbersMerged += sourceStats.PartNumbersMerged
		stats.GearRatiosMerged += sourceStats.GearRatiosMerged
		stats.ProvenanceMerged += sourceStats.ProvenanceMerged
		stats.SourcesProcessed++
	}

	return stats, nil
}

// mergeFrom copies data from a source database to the destination.
func mergeFrom(dest Store, sourcePath string) (*MergeStats, error) {
	if sourcePath == MemoryPath {
		return nil, fmt.Errorf("cannot merge from in-memory store")
	}
	if !IsPostgresDSN(sourcePath) {
		if _, err := os.Stat(sourcePath); err != nil {
			return nil, fmt.Errorf("source database not found: %w", err)
		}
	}

	source, err := New(Config{Path: sourcePath})
	if err != nil {
		return nil, fmt.Errorf("opening source database: %w", err)
	}
	defer source.Close()

	return Copy(dest, source)
}

// Copy transfers every record from src into dst.
func Copy(dst, src Store) (*MergeStats, error) {
	stats := &MergeStats{}

	records, err := src.GetSchematics()
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if err := dst.AddSchematic(rec); err != nil {
			return stats, fmt.Errorf("merging schematics: %w", err)
		}
		stats.SchematicsMerged++

		provs, err := src.GetAllProvenance(rec.ID)
		if err != nil {
			return stats, err
		}
		for _, prov := range provs {
			if err := dst.AddProvenance(rec.ID, prov); err != nil {
				return stats, fmt.Errorf("merging provenance: %w", err)
			}
			stats.ProvenanceMerged++
		}
	}

	parts, err := src.GetAllPartNumbers()
	if err != nil {
		return stats, err
	}
	for _, p := range parts {
		if err := dst.AddPartNumber(p); err != nil {
			return stats, fmt.Errorf("merging part numbers: %w", err)
		}
		stats.PartNumbersMerged++
	}

	gears, err := src.GetAllGearRatios()
	if err != nil {
		return stats, err
	}
	for _, g := range gears {
		if err := dst.AddGearRatio(g); err != nil {
			return stats, fmt.Errorf("merging gear ratios: %w", err)
		}
		stats.GearRatiosMerged++
	}

	return stats, nil
}
