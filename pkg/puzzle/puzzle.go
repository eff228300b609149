// Package puzzle holds the solvers for each day. Every solver takes the
// whole puzzle input as one string.
package puzzle

import "strings"

// lines splits input into its non-blank lines.
func lines(input string) []string {
	var out []string
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
