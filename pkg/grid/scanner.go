// Package grid turns engine-diagram text into an indexed, read-only schematic.
package grid

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/praetorian-inc/schematic/pkg/types"
)

// Empty marks a cell with nothing in it.
const Empty = '.'

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Scan reads a schematic from text in a single pass.
// Every row must have the same number of runes.
func Scan(text string) (*Schematic, error) {
	lines := splitRows(text)

	var (
		symbols []types.Symbol
		numbers []types.Number
		digits  = make(map[types.Coord]struct{})
		cols    = -1
	)

	for row, line := range lines {
		width := utf8.RuneCountInString(line)
		if cols < 0 {
			cols = width
		} else if width != cols {
			return nil, types.NewError(types.KindIrregularGrid, row, -1,
				fmt.Errorf("expected %d columns, got %d", cols, width))
		}

		r := rowScanner{row: row, line: line, next: types.NumberID(len(numbers))}
		rowNumbers, err := r.scan(digits, &symbols)
		if err != nil {
			return nil, err
		}
		numbers = append(numbers, rowNumbers...)
	}

	if cols < 0 {
		cols = 0
	}
	return newSchematic(len(lines), cols, symbols, digits, numbers), nil
}

// ScanReader reads all of r and scans it.
func ScanReader(r io.Reader) (*Schematic, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &types.Error{Kind: types.KindMissingInput, Row: -1, Col: -1, Err: err}
	}
	return Scan(string(data))
}

// ScanFile reads and scans the schematic at path.
func ScanFile(path string) (*Schematic, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &types.Error{Kind: types.KindMissingInput, Path: path, Row: -1, Col: -1, Err: err}
	}
	s, err := Scan(string(data))
	if err != nil {
		return nil, types.WithPath(err, path)
	}
	return s, nil
}

// splitRows splits on '\n', strips a trailing '\r' per row and drops the
// empty row after a final newline.
func splitRows(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// rowScanner holds the open digit run while a single row is scanned.
type rowScanner struct {
	row  int
	line string
	next types.NumberID

	start, end int // open run, start < 0 when closed
	numbers    []types.Number
}

func (r *rowScanner) scan(digits map[types.Coord]struct{}, symbols *[]types.Symbol) ([]types.Number, error) {
	r.start = -1
	runStart := 0 // byte offset of the open run

	col := 0
	for off, ch := range r.line {
		switch {
		case isDigit(ch):
			if r.start < 0 {
				r.start = col
				runStart = off
			}
			r.end = col
			digits[types.Coord{Row: r.row, Col: col}] = struct{}{}
		case ch == Empty:
			if err := r.close(r.line[runStart:off]); err != nil {
				return nil, err
			}
		default:
			if err := r.close(r.line[runStart:off]); err != nil {
				return nil, err
			}
			*symbols = append(*symbols, types.Symbol{
				Coord: types.Coord{Row: r.row, Col: col},
				Char:  ch,
			})
		}
		col++
	}

	// A run touching the end of the row is still open here.
	if err := r.close(r.line[runStart:]); err != nil {
		return nil, err
	}
	return r.numbers, nil
}

// close emits the open run, if any, parsing digits as its value.
func (r *rowScanner) close(digits string) error {
	if r.start < 0 {
		return nil
	}
	value, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return types.NewError(types.KindMalformedNumber, r.row, r.start, err)
	}
	r.numbers = append(r.numbers, types.Number{
		ID:       r.next,
		Row:      r.row,
		StartCol: r.start,
		EndCol:   r.end,
		Value:    value,
	})
	r.next++
	r.start = -1
	return nil
}
