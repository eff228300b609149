// Package command parses the day dispatcher's interactive input.
package command

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies a dispatcher command.
type Kind int

const (
	// Quit ends the interactive loop.
	Quit Kind = iota + 1
	// All runs every day.
	All
	// Day runs a single day.
	Day
	// Range runs every day from Lo to Hi inclusive.
	Range
)

func (k Kind) String() string {
	switch k {
	case Quit:
		return "quit"
	case All:
		return "all"
	case Day:
		return "day"
	case Range:
		return "range"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Command is one parsed user instruction. Lo and Hi are set for Day
// (Lo == Hi) and Range.
type Command struct {
	Kind Kind
	Lo   int
	Hi   int
}

// Parse reads a command: "q" or "Q" quits, "a" or "A" runs all days,
// "N" runs one day, and "N-M" (spaces around the dash allowed) runs a range.
// Surrounding whitespace is ignored.
func Parse(input string) (Command, error) {
	s := strings.TrimSpace(input)

	switch s {
	case "q", "Q":
		return Command{Kind: Quit}, nil
	case "a", "A":
		return Command{Kind: All}, nil
	case "":
		return Command{}, fmt.Errorf("empty command")
	}

	if left, right, ok := strings.Cut(s, "-"); ok {
		lo, err := parseDay(left)
		if err != nil {
			return Command{}, fmt.Errorf("unrecognized command %q: %w", s, err)
		}
		hi, err := parseDay(right)
		if err != nil {
			return Command{}, fmt.Errorf("unrecognized command %q: %w", s, err)
		}
		return Command{Kind: Range, Lo: lo, Hi: hi}, nil
	}

	day, err := parseDay(s)
	if err != nil {
		return Command{}, fmt.Errorf("unrecognized command %q: %w", s, err)
	}
	return Command{Kind: Day, Lo: day, Hi: day}, nil
}

// parseDay accepts an unsigned decimal day number.
func parseDay(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, "+- \t") {
		return 0, fmt.Errorf("invalid day %q", s)
	}
	n, err := strconv.ParseUint(s, 10, 31)
	if err != nil {
		return 0, fmt.Errorf("invalid day %q", s)
	}
	return int(n), nil
}
