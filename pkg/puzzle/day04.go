package puzzle

import (
	"fmt"
	"strconv"
	"strings"
)

// Card is one scratchcard.
type Card struct {
	ID      int
	Winning []int
	Have    []int
}

// Matches counts the numbers on the card that are winning numbers.
func (c Card) Matches() int {
	win := make(map[int]struct{}, len(c.Winning))
	for _, n := range c.Winning {
		win[n] = struct{}{}
	}
	count := 0
	for _, n := range c.Have {
		if _, ok := win[n]; ok {
			count++
		}
	}
	return count
}

// ParseCard parses "Card 1: 41 48 83 | 83 86  6".
func ParseCard(line string) (Card, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return Card{}, fmt.Errorf("missing ':' in %q", line)
	}
	id, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(head, "Card")))
	if err != nil {
		return Card{}, fmt.Errorf("bad card id in %q: %w", head, err)
	}
	winStr, haveStr, ok := strings.Cut(body, "|")
	if !ok {
		return Card{}, fmt.Errorf("card %d: missing '|'", id)
	}

	c := Card{ID: id}
	if c.Winning, err = parseInts(winStr); err != nil {
		return Card{}, fmt.Errorf("card %d: %w", id, err)
	}
	if c.Have, err = parseInts(haveStr); err != nil {
		return Card{}, fmt.Errorf("card %d: %w", id, err)
	}
	return c, nil
}

func parseInts(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", f, err)
		}
		out = append(out, n)
	}
	return out, nil
}

func parseCards(input string) ([]Card, error) {
	var cards []Card
	for _, line := range lines(input) {
		c, err := ParseCard(line)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// CardPoints sums card scores: one point for the first match, doubled for
// each further match.
func CardPoints(input string) (int, error) {
	cards, err := parseCards(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, c := range cards {
		if m := c.Matches(); m > 0 {
			total += 1 << (m - 1)
		}
	}
	return total, nil
}

// CardCopies counts the cards held once every win has added copies of the
// cards that follow it. Wins never reach past the last card.
func CardCopies(input string) (int, error) {
	cards, err := parseCards(input)
	if err != nil {
		return 0, err
	}
	copies := make([]int, len(cards))
	for i := range copies {
		copies[i] = 1
	}
	total := 0
	for i, c := range cards {
		for j := i + 1; j <= i+c.Matches() && j < len(cards); j++ {
			copies[j] += copies[i]
		}
		total += copies[i]
	}
	return total, nil
}
