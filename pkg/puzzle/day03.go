package puzzle

import (
	"github.com/praetorian-inc/schematic/pkg/extract"
	"github.com/praetorian-inc/schematic/pkg/grid"
)

// PartNumbers sums every number adjacent to a symbol.
func PartNumbers(input string) (uint64, error) {
	s, err := grid.Scan(input)
	if err != nil {
		return 0, err
	}
	return extract.SumPartNumbers(s)
}

// GearRatios sums the ratios of gears touching exactly two numbers.
func GearRatios(input string) (uint64, error) {
	s, err := grid.Scan(input)
	if err != nil {
		return 0, err
	}
	return extract.SumGearRatios(s)
}
