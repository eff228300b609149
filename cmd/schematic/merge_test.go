package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/praetorian-inc/schematic/pkg/store"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newMergeCmd creates a fresh merge command for testing
func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:  "merge <source1.db> <source2.db> [source3.db...]",
		Args: cobra.MinimumNArgs(2),
		RunE: runMerge,
	}
	cmd.Flags().StringVarP(&mergeOutput, "output", "o", "merged.db", "Output store path")
	return cmd
}

func TestMergeCmd_RequiresMinimumArgs(t *testing.T) {
	cmd := newMergeCmd()
	cmd.SetArgs([]string{})
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	assert.ErrorContains(t, err, "requires at least 2 arg")

	cmd = newMergeCmd()
	cmd.SetArgs([]string{"source1.db"})
	cmd.SetErr(&bytes.Buffer{})
	err = cmd.Execute()
	assert.ErrorContains(t, err, "requires at least 2 arg")
}

func TestMergeCmd_MergesTwoStores(t *testing.T) {
	// Arrange
	source1 := seedStore(t, map[string]string{"03.txt": sampleGrid})
	source2 := seedStore(t, map[string]string{"tiny.txt": "7*\n.3", "03-copy.txt": sampleGrid})
	destPath := filepath.Join(t.TempDir(), "merged.db")

	var buf bytes.Buffer
	cmd := newMergeCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{source1, source2, "--output", destPath})

	// Act
	err := cmd.Execute()

	// Assert
	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "Merge complete:")
	assert.Contains(t, output, "Sources processed: 2")
	assert.Contains(t, output, "Output: "+destPath)

	merged, err := store.NewSQLite(destPath)
	require.NoError(t, err)
	defer merged.Close()

	// The sample grid appears in both sources but is stored once
	records, err := merged.GetSchematics()
	require.NoError(t, err)
	assert.Len(t, records, 2)

	parts, err := merged.GetAllPartNumbers()
	require.NoError(t, err)
	assert.Len(t, parts, 8+2)
}

func TestMergeCmd_MissingSource(t *testing.T) {
	dir := t.TempDir()
	cmd := newMergeCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(dir, "a.db"), filepath.Join(dir, "b.db"), "-o", filepath.Join(dir, "m.db")})

	err := cmd.Execute()

	assert.ErrorContains(t, err, "merge failed")
}
