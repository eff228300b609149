// Package analyzer runs the schematic engine over grid content and records
// the results in a store.
package analyzer

import (
	"fmt"
	"math/bits"

	"github.com/praetorian-inc/schematic/pkg/extract"
	"github.com/praetorian-inc/schematic/pkg/grid"
	"github.com/praetorian-inc/schematic/pkg/store"
	"github.com/praetorian-inc/schematic/pkg/types"
)

// Config configures a Core.
type Config struct {
	// Store receives every analyzed schematic. Nil means a fresh in-memory store.
	Store store.Store
	// Logger receives debug output. Nil means NoopLogger.
	Logger DebugLogger
}

// Core wraps the engine and a store for analysis operations
type Core struct {
	store  store.Store
	logger DebugLogger
}

// NewCore creates a new Core.
func NewCore(cfg Config) (*Core, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = NoopLogger{}
	}

	s := cfg.Store
	if s == nil {
		logger.Log("Creating in-memory store...")
		var err error
		s, err = store.New(store.Config{Path: store.MemoryPath})
		if err != nil {
			logger.Log("store.New failed: %v", err)
			return nil, err
		}
	}

	return &Core{store: s, logger: logger}, nil
}

// Store returns the store results are written to.
func (c *Core) Store() store.Store {
	return c.store
}

// Analyze analyzes a single grid given as text. source labels the grid in
// reports and is recorded as inline provenance.
func (c *Core) Analyze(content, source string) (*types.Summary, error) {
	return c.AnalyzeWithProvenance([]byte(content), types.InlineProvenance{Source: source})
}

// AnalyzeWithProvenance analyzes a grid and persists the schematic, its
// provenance, its part numbers and its contributing gears.
func (c *Core) AnalyzeWithProvenance(content []byte, prov types.Provenance) (*types.Summary, error) {
	sum, err := Summarize(content)
	if err != nil {
		if prov.Kind() == "file" {
			err = types.WithPath(err, prov.Path())
		}
		return nil, err
	}
	sum.Source = prov.Path()
	c.logger.Log("analyzed %s (%s): %d parts, %d gears", sum.Source, sum.SchematicID.Short(), len(sum.Parts), len(sum.Gears))

	if err := c.persist(sum, prov); err != nil {
		return nil, err
	}
	return sum, nil
}

func (c *Core) persist(sum *types.Summary, prov types.Provenance) error {
	if err := c.store.AddSchematic(sum.Record()); err != nil {
		return fmt.Errorf("storing schematic: %w", err)
	}
	if err := c.store.AddProvenance(sum.SchematicID, prov); err != nil {
		return fmt.Errorf("storing provenance: %w", err)
	}
	for _, p := range sum.Parts {
		if err := c.store.AddPartNumber(p); err != nil {
			return fmt.Errorf("storing part number: %w", err)
		}
	}
	for _, g := range sum.Gears {
		if err := c.store.AddGearRatio(g); err != nil {
			return fmt.Errorf("storing gear ratio: %w", err)
		}
	}
	return nil
}

// AnalyzeBatch analyzes multiple grids. Items that fail are reported in
// Errors and do not stop the batch.
func (c *Core) AnalyzeBatch(items []ContentItem) (*BatchResult, error) {
	result := &BatchResult{Results: []*types.Summary{}}

	for _, item := range items {
		sum, err := c.Analyze(item.Content, item.Source)
		if err != nil {
			c.logger.Log("skipping %s: %v", item.Source, err)
			result.Errors = append(result.Errors, ItemError{Source: item.Source, Error: err.Error()})
			continue
		}
		result.Results = append(result.Results, sum)

		if result.PartSum, err = addTotal(result.PartSum, sum.PartSum); err != nil {
			return nil, err
		}
		if result.GearSum, err = addTotal(result.GearSum, sum.GearSum); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Seen reports whether a grid with this content has already been stored.
func (c *Core) Seen(id types.SchematicID) (bool, error) {
	return c.store.SchematicExists(id)
}

// Close releases the store.
func (c *Core) Close() error {
	if c.store != nil {
		return c.store.Close()
	}
	return nil
}

// Summarize runs both extractors over a grid without touching any store.
func Summarize(content []byte) (*types.Summary, error) {
	s, err := grid.Scan(string(content))
	if err != nil {
		return nil, err
	}
	id := types.ComputeSchematicID(content)

	parts := extract.PartNumbers(s, id)
	gears, err := extract.GearRatios(s, id)
	if err != nil {
		return nil, err
	}

	sum := &types.Summary{
		SchematicID: id,
		Rows:        s.Rows,
		Cols:        s.Cols,
		Parts:       parts,
		Gears:       gears,
	}
	for _, p := range parts {
		if sum.PartSum, err = addTotal(sum.PartSum, p.Number.Value); err != nil {
			return nil, err
		}
	}
	for _, g := range gears {
		if sum.GearSum, err = addTotal(sum.GearSum, g.Ratio); err != nil {
			return nil, err
		}
	}
	return sum, nil
}

func addTotal(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, types.NewError(types.KindOverflow, -1, -1, fmt.Errorf("total %d + %d", a, b))
	}
	return sum, nil
}
