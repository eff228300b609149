package enum

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/praetorian-inc/schematic/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collector gathers base names from concurrent callbacks.
type collector struct {
	mu    sync.Mutex
	names []string
}

func (c *collector) add(content []byte, id types.SchematicID, prov types.Provenance) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.names = append(c.names, filepath.Base(prov.Path()))
	return nil
}

func (c *collector) sorted() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := append([]string(nil), c.names...)
	sort.Strings(out)
	return out
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestFilesystemEnumerator(t *testing.T) {
	// Arrange
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "01.txt"), "467..\n...*.")
	writeFile(t, filepath.Join(tmpDir, "02.txt"), "..35.\n.....")
	writeFile(t, filepath.Join(tmpDir, "nested", "03.txt"), "617*.")

	var mu sync.Mutex
	var found []string

	// Act
	err := NewFilesystemEnumerator(Config{Root: tmpDir}).Enumerate(context.Background(),
		func(content []byte, id types.SchematicID, prov types.Provenance) error {
			assert.Equal(t, types.ComputeSchematicID(content), id)
			assert.Equal(t, "file", prov.Kind())
			mu.Lock()
			found = append(found, filepath.Base(prov.Path()))
			mu.Unlock()
			return nil
		})

	// Assert
	require.NoError(t, err)
	sort.Strings(found)
	assert.Equal(t, []string{"01.txt", "02.txt", "03.txt"}, found)
}

func TestFilesystemEnumerator_SingleFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "input.txt")
	writeFile(t, path, "1*2")

	c := &collector{}
	err := NewFilesystemEnumerator(Config{Root: path}).Enumerate(context.Background(), c.add)

	require.NoError(t, err)
	assert.Equal(t, []string{"input.txt"}, c.sorted())
}

func TestFilesystemEnumerator_MissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nope")

	err := NewFilesystemEnumerator(Config{Root: root}).Enumerate(context.Background(), (&collector{}).add)

	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrMissingInput))
	assert.Contains(t, err.Error(), root)
}

func TestFilesystemEnumerator_Extensions(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "grid.txt"), "1*")
	writeFile(t, filepath.Join(tmpDir, "grid.in"), "2*")
	writeFile(t, filepath.Join(tmpDir, "notes.md"), "# notes")

	c := &collector{}
	err := NewFilesystemEnumerator(Config{Root: tmpDir, Extensions: []string{"txt", ".IN"}}).
		Enumerate(context.Background(), c.add)

	require.NoError(t, err)
	assert.Equal(t, []string{"grid.in", "grid.txt"}, c.sorted())
}

func TestFilesystemEnumerator_HiddenFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "visible.txt"), "visible")
	writeFile(t, filepath.Join(tmpDir, ".hidden.txt"), "hidden")
	writeFile(t, filepath.Join(tmpDir, ".cache", "grid.txt"), "cached")

	// Without hidden files
	c := &collector{}
	err := NewFilesystemEnumerator(Config{Root: tmpDir}).Enumerate(context.Background(), c.add)
	require.NoError(t, err)
	assert.Equal(t, []string{"visible.txt"}, c.sorted())

	// With hidden files
	c = &collector{}
	err = NewFilesystemEnumerator(Config{Root: tmpDir, IncludeHidden: true}).Enumerate(context.Background(), c.add)
	require.NoError(t, err)
	assert.Equal(t, []string{".hidden.txt", "grid.txt", "visible.txt"}, c.sorted())
}

func TestFilesystemEnumerator_MaxFileSize(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "small.txt"), "small")
	writeFile(t, filepath.Join(tmpDir, "large.txt"), string(make([]byte, 2000)))

	c := &collector{}
	err := NewFilesystemEnumerator(Config{Root: tmpDir, MaxFileSize: 1000}).Enumerate(context.Background(), c.add)

	require.NoError(t, err)
	assert.Equal(t, []string{"small.txt"}, c.sorted())
}

func TestFilesystemEnumerator_BinaryFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "text.txt"), "12*")
	writeFile(t, filepath.Join(tmpDir, "binary.bin"), string([]byte{0x00, 0x01, 0x02}))

	c := &collector{}
	err := NewFilesystemEnumerator(Config{Root: tmpDir}).Enumerate(context.Background(), c.add)

	require.NoError(t, err)
	assert.Equal(t, []string{"text.txt"}, c.sorted())
}

func TestFilesystemEnumerator_Gitignore(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".gitignore"), "ignored.txt\n*.log\n")
	writeFile(t, filepath.Join(tmpDir, "included.txt"), "included")
	writeFile(t, filepath.Join(tmpDir, "ignored.txt"), "ignored")
	writeFile(t, filepath.Join(tmpDir, "run.log"), "log")

	c := &collector{}
	err := NewFilesystemEnumerator(Config{Root: tmpDir, IncludeHidden: true}).Enumerate(context.Background(), c.add)

	require.NoError(t, err)
	assert.Equal(t, []string{".gitignore", "included.txt"}, c.sorted())
}

func TestFilesystemEnumerator_CurrentDirectory(t *testing.T) {
	// Root "." must not be skipped as a hidden directory
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "03.txt"), "1*")

	originalDir, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(originalDir)
	require.NoError(t, os.Chdir(tmpDir))

	c := &collector{}
	err = NewFilesystemEnumerator(Config{Root: "."}).Enumerate(context.Background(), c.add)

	require.NoError(t, err)
	assert.Equal(t, []string{"03.txt"}, c.sorted())
}

func TestFilesystemEnumerator_CallbackError(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "a.txt"), "1")
	boom := errors.New("boom")

	err := NewFilesystemEnumerator(Config{Root: tmpDir}).Enumerate(context.Background(),
		func(content []byte, id types.SchematicID, prov types.Provenance) error {
			return boom
		})

	assert.ErrorIs(t, err, boom)
}

func TestFilesystemEnumerator_ContextCancellation(t *testing.T) {
	tmpDir := t.TempDir()
	for i := 0; i < 10; i++ {
		writeFile(t, filepath.Join(tmpDir, string(rune('a'+i))+".txt"), "content")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewFilesystemEnumerator(Config{Root: tmpDir}).Enumerate(ctx, (&collector{}).add)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsHidden(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     bool
	}{
		{"current dir", ".", false},
		{"parent dir", "..", false},
		{"hidden file", ".hidden", true},
		{"hidden directory", ".git", true},
		{"normal file", "file.txt", false},
		{"dotfile", ".gitignore", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isHidden(tt.filename))
		})
	}
}

func TestMatchesExtension(t *testing.T) {
	assert.True(t, matchesExtension("a/b.txt", nil))
	assert.True(t, matchesExtension("a/b.TXT", []string{"txt"}))
	assert.True(t, matchesExtension("a/b.txt", []string{" .txt "}))
	assert.False(t, matchesExtension("a/b", []string{"txt"}))
	assert.False(t, matchesExtension("a/b.md", []string{"txt", ""}))
}
