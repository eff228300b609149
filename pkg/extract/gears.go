package extract

import (
	"github.com/praetorian-inc/schematic/pkg/grid"
	"github.com/praetorian-inc/schematic/pkg/types"
)

// SumGearRatios sums the ratio of every gear touching exactly two numbers.
// A number may take part in several gears.
func SumGearRatios(s *grid.Schematic) (uint64, error) {
	var sum uint64
	for _, gear := range s.Gears() {
		ids := s.Adjacent(gear.Coord)
		if len(ids) != 2 {
			continue
		}
		ratio, err := checkedMul(s.Number(ids[0]).Value, s.Number(ids[1]).Value, gear.Coord)
		if err != nil {
			return 0, err
		}
		if sum, err = checkedAdd(sum, ratio); err != nil {
			return 0, err
		}
	}
	return sum, nil
}

// GearRatios lists the gears that contribute to the ratio sum, in row-major order.
func GearRatios(s *grid.Schematic, id types.SchematicID) ([]*types.GearRatio, error) {
	var gears []*types.GearRatio
	for _, gear := range s.Gears() {
		ids := s.Adjacent(gear.Coord)
		if len(ids) != 2 {
			continue
		}
		a, b := s.Number(ids[0]), s.Number(ids[1])
		ratio, err := checkedMul(a.Value, b.Value, gear.Coord)
		if err != nil {
			return nil, err
		}
		g := &types.GearRatio{
			SchematicID: id,
			Gear:        gear.Coord,
			Location:    types.PointLocation(gear.Coord),
			Numbers:     [2]types.Number{a, b},
			Ratio:       ratio,
		}
		g.ID = g.ComputeID()
		gears = append(gears, g)
	}
	return gears, nil
}
