// Package schematic sums part numbers and gear ratios in engine schematics.
//
// A schematic is a rectangular grid of text. Runs of digits are numbers,
// '.' is empty space and every other character is a symbol. A number
// touching a symbol (including diagonally) is a part number. A '*' symbol
// touching exactly two numbers is a gear, and its ratio is the product of
// those two numbers.
//
// # Basic Usage
//
// The package-level helpers analyze a grid without keeping any state:
//
//	parts, err := schematic.SumPartNumbers(grid)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	gears, err := schematic.SumGearRatios(grid)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(parts, gears)
//
// # With an Engine
//
// An Engine records every analyzed grid in a store so results can be
// reported or merged later:
//
//	engine, err := schematic.NewEngine(schematic.WithStorePath("results.db"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer engine.Close()
//
//	summary, err := engine.AnalyzeFile("input/03-1.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, gear := range summary.Gears {
//	    fmt.Printf("gear at %s: %d\n", gear.Gear, gear.Ratio)
//	}
//
// Structural problems are reported as *Error values and match the exported
// sentinels with errors.Is:
//
//	if errors.Is(err, schematic.ErrIrregularGrid) {
//	    // rows of different length
//	}
package schematic

import (
	"fmt"
	"os"

	"github.com/praetorian-inc/schematic/pkg/analyzer"
	"github.com/praetorian-inc/schematic/pkg/extract"
	"github.com/praetorian-inc/schematic/pkg/grid"
	"github.com/praetorian-inc/schematic/pkg/store"
	"github.com/praetorian-inc/schematic/pkg/types"
)

// Re-export commonly used types for convenience.
// Users can import just "github.com/praetorian-inc/schematic" without subpackages.
type (
	// Summary is the full result of analyzing one grid.
	Summary = types.Summary

	// PartNumber is a number adjacent to at least one symbol.
	PartNumber = types.PartNumber

	// GearRatio is a '*' symbol with exactly two adjacent numbers.
	GearRatio = types.GearRatio

	// Number is one maximal run of digits in a row.
	Number = types.Number

	// Symbol is any character other than a digit or '.'.
	Symbol = types.Symbol

	// Coord is a zero-based row and column in a grid.
	Coord = types.Coord

	// Location is a 1-based line and column span.
	Location = types.Location

	// Error is a structural fault in a grid or its input.
	Error = types.Error

	// DebugLogger receives debug output from an Engine.
	DebugLogger = analyzer.DebugLogger
)

// Re-export error sentinels.
var (
	ErrMalformedNumber = types.ErrMalformedNumber
	ErrIrregularGrid   = types.ErrIrregularGrid
	ErrMissingInput    = types.ErrMissingInput
	ErrOverflow        = types.ErrOverflow
)

// Engine analyzes grids and records the results.
type Engine struct {
	core   *analyzer.Core
	config *engineConfig
}

// engineConfig holds engine configuration.
type engineConfig struct {
	storePath string
	store     store.Store
	logger    DebugLogger
}

// Option configures an Engine.
type Option func(*engineConfig)

// WithStorePath records results in the store at path: ":memory:", a SQLite
// file, or a postgres:// DSN. Default is ":memory:".
func WithStorePath(path string) Option {
	return func(c *engineConfig) {
		c.storePath = path
	}
}

// WithStore records results in an already opened store. The Engine takes
// ownership and closes it on Close.
func WithStore(s store.Store) Option {
	return func(c *engineConfig) {
		c.store = s
	}
}

// WithLogger sends debug output to logger.
func WithLogger(logger DebugLogger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// NewEngine creates a new Engine with the given options.
//
// Example:
//
//	// In-memory engine
//	engine, err := schematic.NewEngine()
//
//	// Results kept in SQLite
//	engine, err := schematic.NewEngine(schematic.WithStorePath("schematic.db"))
func NewEngine(opts ...Option) (*Engine, error) {
	config := &engineConfig{storePath: store.MemoryPath}
	for _, opt := range opts {
		opt(config)
	}

	s := config.store
	if s == nil {
		var err error
		s, err = store.New(store.Config{Path: config.storePath})
		if err != nil {
			return nil, fmt.Errorf("opening store: %w", err)
		}
	}

	core, err := analyzer.NewCore(analyzer.Config{Store: s, Logger: config.logger})
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("creating analyzer: %w", err)
	}

	return &Engine{core: core, config: config}, nil
}

// Analyze analyzes a grid given as text. source labels the grid in reports.
func (e *Engine) Analyze(text, source string) (*Summary, error) {
	return e.core.Analyze(text, source)
}

// AnalyzeFile reads and analyzes the grid stored at path. An unreadable file
// is reported as ErrMissingInput.
func (e *Engine) AnalyzeFile(path string) (*Summary, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, types.WithPath(types.NewError(types.KindMissingInput, -1, -1, err), path)
	}
	return e.core.AnalyzeWithProvenance(content, types.FileProvenance{FilePath: path})
}

// Summaries returns every grid recorded in the engine's store, ordered by source.
func (e *Engine) Summaries() ([]*Summary, error) {
	return analyzer.Load(e.core.Store())
}

// Close releases the engine's store.
func (e *Engine) Close() error {
	return e.core.Close()
}

// SumPartNumbers returns the sum of every part number in text.
func SumPartNumbers(text string) (uint64, error) {
	s, err := grid.Scan(text)
	if err != nil {
		return 0, err
	}
	return extract.SumPartNumbers(s)
}

// SumGearRatios returns the sum of every gear ratio in text.
func SumGearRatios(text string) (uint64, error) {
	s, err := grid.Scan(text)
	if err != nil {
		return 0, err
	}
	return extract.SumGearRatios(s)
}
