// Package runner dispatches day numbers to registered solutions and drives
// the interactive prompt.
package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/praetorian-inc/schematic/pkg/command"
	"github.com/praetorian-inc/schematic/pkg/registry"
	"github.com/praetorian-inc/schematic/pkg/types"
)

// DefaultLastDay is the last day "all" runs through.
const DefaultLastDay = 25

// clearScreen erases the terminal and homes the cursor.
const clearScreen = "\x1b[2J\x1b[1;1H"

// ErrInvalidDay is returned for day 0.
var ErrInvalidDay = errors.New("Invalid day")

// ErrNotFound is returned for a day with no registered solution.
var ErrNotFound = errors.New("solution not found")

// Runner runs registered solutions against input files.
type Runner struct {
	Registry *registry.Registry
	// InputDir holds one "<input>.txt" file per day.
	InputDir string
	Out      io.Writer
	// LastDay bounds the "all" command. Zero means DefaultLastDay.
	LastDay int
	// Clear erases the screen after each prompt answer.
	Clear bool
}

func (r *Runner) lastDay() int {
	if r.LastDay > 0 {
		return r.LastDay
	}
	return DefaultLastDay
}

// RunDay runs both parts of one day, printing a header and one line per part.
func (r *Runner) RunDay(day int) error {
	if day < 1 {
		return fmt.Errorf("%w %d", ErrInvalidDay, day)
	}
	sol, ok := r.Registry.Get(day)
	if !ok {
		return fmt.Errorf("Day %02d %w.", day, ErrNotFound)
	}

	path := filepath.Join(r.InputDir, sol.Input+".txt")
	data, err := os.ReadFile(path)
	if err != nil {
		return types.WithPath(types.NewError(types.KindMissingInput, -1, -1, err), path)
	}
	input := string(data)

	fmt.Fprintf(r.Out, "Day %02d:\n", day)
	var errs []error
	for i, part := range []*registry.Part{sol.One, sol.Two} {
		if part == nil {
			continue
		}
		start := time.Now()
		result, err := part.Solver(input)
		elapsed := time.Since(start)
		if err != nil {
			fmt.Fprintf(r.Out, "\tPart %d - %s: error: %v\n", i+1, part.Label, err)
			errs = append(errs, fmt.Errorf("day %02d part %d: %w", day, i+1, err))
			continue
		}
		fmt.Fprintf(r.Out, "\tPart %d - %s: %s (%s)\n", i+1, part.Label, result, elapsed)
	}
	return errors.Join(errs...)
}

// RunRange runs every day from lo to hi inclusive. A failing day prints its
// error and the range continues. It returns the number of days that failed.
func (r *Runner) RunRange(lo, hi int) int {
	failed := 0
	for day := lo; day <= hi; day++ {
		if err := r.RunDay(day); err != nil {
			fmt.Fprintln(r.Out, err)
			failed++
		}
	}
	fmt.Fprintln(r.Out)
	return failed
}

// Execute runs one parsed command and reports whether it asked to quit.
func (r *Runner) Execute(cmd command.Command) bool {
	switch cmd.Kind {
	case command.Quit:
		return true
	case command.All:
		fmt.Fprintln(r.Out, "Running all")
		r.RunRange(1, r.lastDay())
	case command.Range:
		fmt.Fprintf(r.Out, "Running days %d..=%d\n", cmd.Lo, cmd.Hi)
		r.RunRange(cmd.Lo, cmd.Hi)
	case command.Day:
		fmt.Fprintf(r.Out, "Running day %d\n", cmd.Lo)
		r.RunRange(cmd.Lo, cmd.Lo)
	}
	return false
}

func (r *Runner) prompt() {
	fmt.Fprintln(r.Out, "Which day would you like to run?")
	fmt.Fprintln(r.Out, "  a      for all days")
	fmt.Fprintln(r.Out, "  #      or enter a day number (eg 17)")
	fmt.Fprintln(r.Out, "  # - #  or enter a day range separated by a dash (eg 2-10)")
	fmt.Fprintln(r.Out, "  q      to quit")
	fmt.Fprint(r.Out, "-> ")
}

// Loop prompts for commands read from in until "q", end of input, or ctx
// is cancelled.
func (r *Runner) Loop(ctx context.Context, in io.Reader) error {
	if r.Clear {
		fmt.Fprint(r.Out, clearScreen)
	}
	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.prompt()
		if !scanner.Scan() {
			fmt.Fprintln(r.Out)
			return scanner.Err()
		}
		line := scanner.Text()
		if r.Clear {
			fmt.Fprint(r.Out, clearScreen)
		}

		cmd, err := command.Parse(line)
		if err != nil {
			fmt.Fprintf(r.Out, "Unrecognized command: '%s'\n", line)
			continue
		}
		if r.Execute(cmd) {
			return nil
		}
	}
}
