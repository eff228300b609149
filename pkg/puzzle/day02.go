package puzzle

import (
	"fmt"
	"strconv"
	"strings"
)

// Cubes counts cubes of each colour.
type Cubes struct {
	Red, Green, Blue int
}

// Bag is the loaded bag that decides which games are possible.
var Bag = Cubes{Red: 12, Green: 13, Blue: 14}

// Game is one line of cube draws.
type Game struct {
	ID    int
	Draws []Cubes
}

// Minimum returns the fewest cubes of each colour that make the game possible.
func (g Game) Minimum() Cubes {
	var m Cubes
	for _, d := range g.Draws {
		m.Red = max(m.Red, d.Red)
		m.Green = max(m.Green, d.Green)
		m.Blue = max(m.Blue, d.Blue)
	}
	return m
}

// PossibleWith reports whether every draw fits in bag.
func (g Game) PossibleWith(bag Cubes) bool {
	m := g.Minimum()
	return m.Red <= bag.Red && m.Green <= bag.Green && m.Blue <= bag.Blue
}

// ParseGame parses "Game 3: 8 green, 6 blue; 5 blue, 4 red".
func ParseGame(line string) (Game, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, fmt.Errorf("missing ':' in %q", line)
	}
	id, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(head, "Game")))
	if err != nil {
		return Game{}, fmt.Errorf("bad game id in %q: %w", head, err)
	}

	g := Game{ID: id}
	for _, draw := range strings.Split(body, ";") {
		var c Cubes
		for _, part := range strings.Split(draw, ",") {
			fields := strings.Fields(part)
			if len(fields) != 2 {
				return Game{}, fmt.Errorf("game %d: bad draw %q", id, strings.TrimSpace(part))
			}
			n, err := strconv.Atoi(fields[0])
			if err != nil {
				return Game{}, fmt.Errorf("game %d: bad count %q: %w", id, fields[0], err)
			}
			switch fields[1] {
			case "red":
				c.Red += n
			case "green":
				c.Green += n
			case "blue":
				c.Blue += n
			default:
				return Game{}, fmt.Errorf("game %d: unknown colour %q", id, fields[1])
			}
		}
		g.Draws = append(g.Draws, c)
	}
	return g, nil
}

func parseGames(input string) ([]Game, error) {
	var games []Game
	for _, line := range lines(input) {
		g, err := ParseGame(line)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, nil
}

// PossibleGames sums the IDs of games possible with Bag.
func PossibleGames(input string) (int, error) {
	games, err := parseGames(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, g := range games {
		if g.PossibleWith(Bag) {
			total += g.ID
		}
	}
	return total, nil
}

// CubePower sums the power (red * green * blue) of each game's minimum set.
func CubePower(input string) (int, error) {
	games, err := parseGames(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, g := range games {
		m := g.Minimum()
		total += m.Red * m.Green * m.Blue
	}
	return total, nil
}
