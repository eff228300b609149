package analyzer

import (
	"fmt"
	"sort"

	"github.com/praetorian-inc/schematic/pkg/store"
	"github.com/praetorian-inc/schematic/pkg/types"
)

// Totals adds up the part and gear sums of several grids.
func Totals(sums []*types.Summary) (partSum, gearSum uint64, err error) {
	for _, s := range sums {
		if partSum, err = addTotal(partSum, s.PartSum); err != nil {
			return 0, 0, err
		}
		if gearSum, err = addTotal(gearSum, s.GearSum); err != nil {
			return 0, 0, err
		}
	}
	return partSum, gearSum, nil
}

// Load rebuilds one summary per stored schematic, ordered by source.
// Schematics without provenance are labelled by their short ID.
func Load(s store.Store) ([]*types.Summary, error) {
	records, err := s.GetSchematics()
	if err != nil {
		return nil, fmt.Errorf("retrieving schematics: %w", err)
	}

	out := make([]*types.Summary, 0, len(records))
	for _, rec := range records {
		sum := &types.Summary{SchematicID: rec.ID, Rows: rec.Rows, Cols: rec.Cols}

		if prov, err := s.GetProvenance(rec.ID); err == nil {
			sum.Source = prov.Path()
		} else {
			sum.Source = rec.ID.Short()
		}

		if sum.Parts, err = s.GetPartNumbers(rec.ID); err != nil {
			return nil, fmt.Errorf("retrieving part numbers: %w", err)
		}
		for _, p := range sum.Parts {
			if sum.PartSum, err = addTotal(sum.PartSum, p.Number.Value); err != nil {
				return nil, err
			}
		}

		if sum.Gears, err = s.GetGearRatios(rec.ID); err != nil {
			return nil, fmt.Errorf("retrieving gear ratios: %w", err)
		}
		for _, g := range sum.Gears {
			if sum.GearSum, err = addTotal(sum.GearSum, g.Ratio); err != nil {
				return nil, err
			}
		}

		out = append(out, sum)
	}

	SortBySource(out)
	return out, nil
}

// SortBySource orders summaries by source, then by ID.
func SortBySource(sums []*types.Summary) {
	sort.Slice(sums, func(i, j int) bool {
		if sums[i].Source != sums[j].Source {
			return sums[i].Source < sums[j].Source
		}
		return sums[i].SchematicID.Hex() < sums[j].SchematicID.Hex()
	})
}
