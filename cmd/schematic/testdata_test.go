package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleGrid = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
`

// writeGrid writes content to dir/name and returns the path.
func writeGrid(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// resetScanFlags restores scan flag defaults for a test.
func resetScanFlags(t *testing.T, output string) {
	t.Helper()
	scanOutputPath = output
	scanOutputFormat = "human"
	scanColor = "never"
	scanExtensions = nil
	scanMaxFileSize = 10 * 1024 * 1024
	scanIncludeHidden = false
	scanIncremental = false
	scanGears = false
	quiet = false
	verbose = false
}
