// Package extract folds a scanned schematic into part-number and gear-ratio sums.
package extract

import (
	"fmt"
	"math/bits"

	"github.com/praetorian-inc/schematic/pkg/types"
)

// checkedAdd adds two sums, failing instead of wrapping.
func checkedAdd(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, types.NewError(types.KindOverflow, -1, -1, fmt.Errorf("%d + %d", a, b))
	}
	return sum, nil
}

// checkedMul multiplies two values, failing instead of wrapping.
func checkedMul(a, b uint64, at types.Coord) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, types.NewError(types.KindOverflow, at.Row, at.Col, fmt.Errorf("%d * %d", a, b))
	}
	return lo, nil
}
