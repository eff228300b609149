// Package enum discovers schematic files to analyze.
package enum

import (
	"context"

	"github.com/praetorian-inc/schematic/pkg/types"
)

// Callback receives one grid's content, its ID, and where it came from.
type Callback func(content []byte, id types.SchematicID, prov types.Provenance) error

// Enumerator discovers schematics from a source.
type Enumerator interface {
	// Enumerate yields grids from the source. The callback may be invoked
	// from several goroutines at once.
	Enumerate(ctx context.Context, callback Callback) error
}

// Config for enumeration.
type Config struct {
	// Root is the starting path for enumeration: a directory or a single file.
	Root string

	// Extensions limits enumeration to files with these extensions
	// (".txt" or "txt"). Empty means every text file.
	Extensions []string

	// IncludeHidden includes hidden files/directories (starting with .).
	IncludeHidden bool

	// MaxFileSize is the maximum file size to process (0 = no limit).
	MaxFileSize int64

	// FollowSymlinks follows symbolic links.
	FollowSymlinks bool
}
