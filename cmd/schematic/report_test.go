package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/praetorian-inc/schematic/pkg/analyzer"
	"github.com/praetorian-inc/schematic/pkg/store"
	"github.com/praetorian-inc/schematic/pkg/types"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedStore analyzes grids into a fresh SQLite store and returns its path.
func seedStore(t *testing.T, grids map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "results.db")
	s, err := store.NewSQLite(path)
	require.NoError(t, err)
	core, err := analyzer.NewCore(analyzer.Config{Store: s})
	require.NoError(t, err)
	defer core.Close()

	for source, content := range grids {
		_, err := core.AnalyzeWithProvenance([]byte(content), types.FileProvenance{FilePath: source})
		require.NoError(t, err)
	}
	return path
}

func resetReportFlags(path string) {
	reportStorePath = path
	reportFormat = "human"
	reportColor = "never"
	reportGears = true
}

func TestRunReport_Human(t *testing.T) {
	// Arrange
	resetReportFlags(seedStore(t, map[string]string{"03.txt": sampleGrid}))
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	// Act
	err := runReport(cmd, nil)

	// Assert
	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "Schematic 1/1 (id ")
	assert.Contains(t, output, "Source: 03.txt")
	assert.Contains(t, output, "Grid: 10x10")
	assert.Contains(t, output, "Part numbers: 8 (sum 4361)")
	assert.Contains(t, output, "Gears: 2 (sum 467835)")
	assert.Contains(t, output, "2:4  467 * 35 = 16345")
	assert.Contains(t, output, "9:6  755 * 598 = 451490")
	assert.NotContains(t, output, "\x1b[")
}

func TestRunReport_JSON(t *testing.T) {
	resetReportFlags(seedStore(t, map[string]string{"a.txt": sampleGrid, "b.txt": "7*\n.3"}))
	reportFormat = "json"
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	err := runReport(cmd, nil)

	require.NoError(t, err)
	var report jsonReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	assert.Len(t, report.Schematics, 2)
	assert.Equal(t, uint64(4371), report.PartSum)
	assert.Equal(t, uint64(467856), report.GearSum)
}

func TestRunReport_SARIF(t *testing.T) {
	resetReportFlags(seedStore(t, map[string]string{"03.txt": sampleGrid}))
	reportFormat = "sarif"
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	err := runReport(cmd, nil)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"ruleId": "schematic.gear-ratio"`)
}

func TestRunReport_Errors(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	resetReportFlags(":memory:")
	assert.ErrorContains(t, runReport(cmd, nil), "in-memory")

	resetReportFlags(filepath.Join(t.TempDir(), "missing.db"))
	assert.ErrorContains(t, runReport(cmd, nil), "store not found")
}

func TestRunReport_Empty(t *testing.T) {
	resetReportFlags(seedStore(t, nil))
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	require.NoError(t, runReport(cmd, nil))
	assert.Contains(t, buf.String(), "No schematics.")
}
