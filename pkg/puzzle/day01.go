package puzzle

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// digitWords matches a digit or a spelled-out digit at every position.
// The lookahead keeps overlapping words such as "eightwo" both visible.
var digitWords = regexp2.MustCompile(`(?=([1-9]|one|two|three|four|five|six|seven|eight|nine))`, regexp2.None)

var wordValues = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9,
}

// Calibration sums the two-digit value formed by the first and last digit
// of each line. Lines without digits contribute nothing.
func Calibration(input string) (int, error) {
	total := 0
	for _, line := range lines(input) {
		first, last := -1, -1
		for _, r := range line {
			if r < '0' || r > '9' {
				continue
			}
			if first < 0 {
				first = int(r - '0')
			}
			last = int(r - '0')
		}
		if first >= 0 {
			total += first*10 + last
		}
	}
	return total, nil
}

// CalibrationWords is Calibration with spelled-out digits counting as digits.
func CalibrationWords(input string) (int, error) {
	total := 0
	for i, line := range lines(input) {
		digits, err := wordDigits(line)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		if len(digits) > 0 {
			total += digits[0]*10 + digits[len(digits)-1]
		}
	}
	return total, nil
}

func wordDigits(line string) ([]int, error) {
	var digits []int
	m, err := digitWords.FindStringMatch(line)
	for ; m != nil && err == nil; m, err = digitWords.FindNextMatch(m) {
		tok := m.GroupByNumber(1).String()
		if v, ok := wordValues[tok]; ok {
			digits = append(digits, v)
		} else {
			digits = append(digits, int(tok[0]-'0'))
		}
	}
	return digits, err
}
