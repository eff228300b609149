package registry

import (
	"fmt"
	"sort"

	"github.com/praetorian-inc/schematic/pkg/puzzle"
)

// solvers maps the names used in day tables to solver functions.
var solvers = map[string]Solver{
	"calibration":       format(puzzle.Calibration),
	"calibration-words": format(puzzle.CalibrationWords),
	"possible-games":    format(puzzle.PossibleGames),
	"cube-power":        format(puzzle.CubePower),
	"part-numbers":      format(puzzle.PartNumbers),
	"gear-ratios":       format(puzzle.GearRatios),
	"card-points":       format(puzzle.CardPoints),
	"card-copies":       format(puzzle.CardCopies),
}

func format[T int | uint64](f func(string) (T, error)) Solver {
	return func(input string) (string, error) {
		v, err := f(input)
		if err != nil {
			return "", err
		}
		return fmt.Sprint(v), nil
	}
}

// SolverNames lists the solver names a day table may reference.
func SolverNames() []string {
	names := make([]string, 0, len(solvers))
	for name := range solvers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupSolver returns the solver registered under name.
func LookupSolver(name string) (Solver, bool) {
	s, ok := solvers[name]
	return s, ok
}
